package logging

import (
	"strings"
	"testing"
)

func TestSanitizeAttributes(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    any
		expected any
	}{
		{
			name:     "plain attribute passes through",
			key:      "name",
			value:    "John Lennon",
			expected: "John Lennon",
		},
		{
			name:     "password key redacted",
			key:      "password",
			value:    "secret123",
			expected: RedactedText,
		},
		{
			name:     "api key redacted case-insensitively",
			key:      "API_KEY",
			value:    "abcdef",
			expected: RedactedText,
		},
		{
			name:     "token-bearing key redacted",
			key:      "refresh_token",
			value:    "abcdef",
			expected: RedactedText,
		},
		{
			name:     "non-string value passes through",
			key:      "headcount",
			value:    42,
			expected: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeAttributes(map[string]any{tt.key: tt.value})
			if got[tt.key] != tt.expected {
				t.Errorf("SanitizeAttributes()[%q] = %v, want %v", tt.key, got[tt.key], tt.expected)
			}
		})
	}
}

func TestSanitizeAttributes_NilMap(t *testing.T) {
	if got := SanitizeAttributes(nil); got != nil {
		t.Errorf("expected nil for nil input, got %v", got)
	}
}

func TestSanitizeAttributes_DoesNotMutateInput(t *testing.T) {
	attrs := map[string]any{"password": "secret"}
	SanitizeAttributes(attrs)
	if attrs["password"] != "secret" {
		t.Error("input map was mutated")
	}
}

func TestSanitizeAttributes_TruncatesLongValues(t *testing.T) {
	long := strings.Repeat("x", MaxAttributeLogLength*2)
	got := SanitizeAttributes(map[string]any{"description": long})

	s, ok := got["description"].(string)
	if !ok {
		t.Fatalf("expected string value, got %T", got["description"])
	}
	if len(s) != MaxAttributeLogLength+3 {
		t.Errorf("expected truncated length %d, got %d", MaxAttributeLogLength+3, len(s))
	}
	if !strings.HasSuffix(s, "...") {
		t.Error("expected ellipsis suffix on truncated value")
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("expected unchanged string, got %q", got)
	}
	if got := TruncateString("abcdefghij", 5); got != "abcde..." {
		t.Errorf("expected truncated string, got %q", got)
	}
}
