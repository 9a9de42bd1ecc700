package logging

import (
	"regexp"
)

const (
	// MaxAttributeLogLength is the maximum length of an attribute value to log
	MaxAttributeLogLength = 100
	// RedactedText is the replacement text for sensitive data
	RedactedText = "[REDACTED]"
)

// Pattern to match attribute keys that carry credentials or tokens.
// Entity attributes are caller-supplied, so anything secret-shaped is
// redacted before it reaches a log line.
var sensitiveKeyPattern = regexp.MustCompile(`(?i)(password|pwd|passwd|secret|token|api[_-]?key|credential)`)

// SanitizeAttributes returns a copy of an entity attribute map safe for
// logging: values under secret-bearing keys are redacted and long values are
// truncated. The input map is not modified.
func SanitizeAttributes(attrs map[string]any) map[string]any {
	if attrs == nil {
		return nil
	}

	sanitized := make(map[string]any, len(attrs))
	for k, v := range attrs {
		if sensitiveKeyPattern.MatchString(k) {
			sanitized[k] = RedactedText
			continue
		}
		if s, ok := v.(string); ok {
			sanitized[k] = TruncateString(s, MaxAttributeLogLength)
			continue
		}
		sanitized[k] = v
	}
	return sanitized
}

// TruncateString truncates a string to maxLen and adds ellipsis if needed
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
