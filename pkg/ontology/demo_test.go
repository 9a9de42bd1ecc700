package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDemoGraph_EntityCount(t *testing.T) {
	r, err := BuildDemoGraph()
	require.NoError(t, err)

	// 3 departments + human + skill + challenge + solution + project +
	// agent + dataset + system.
	assert.Equal(t, 11, r.Len())
	assert.Len(t, r.All(), 11)
}

func TestBuildDemoGraph_Departments(t *testing.T) {
	r, err := BuildDemoGraph()
	require.NoError(t, err)

	departments := r.Find("Department", nil)
	require.Len(t, departments, 3)
	assert.Equal(t, "HR", departments[0].Get("name", nil))
	assert.Equal(t, "Cloud Infra", departments[1].Get("name", nil))
	assert.Equal(t, "Finance", departments[2].Get("name", nil))
}

func TestBuildDemoGraph_HumanLinks(t *testing.T) {
	r, err := BuildDemoGraph()
	require.NoError(t, err)

	humans := r.Find("Human", map[string]any{"name": "John Lennon"})
	require.Len(t, humans, 1)
	john := humans[0]

	plain := john.PlainData()
	assert.Equal(t, []map[string]any{{"name": "HR"}}, plain.Links["department"])
	assert.Equal(t, []map[string]any{{"name": "AI Strategy"}}, plain.Links["skills"])
}

func TestBuildDemoGraph_SolutionChain(t *testing.T) {
	r, err := BuildDemoGraph()
	require.NoError(t, err)

	challenges := r.Find("Challenge", map[string]any{"title": "Automate Billing Reconciliation"})
	require.Len(t, challenges, 1)
	assert.Equal(t,
		[]map[string]any{{"description": "AI Ledger Matcher"}},
		challenges[0].PlainData().Links["solution"])

	projects := r.Find("Project", map[string]any{"title": "Billing AI MVP"})
	require.Len(t, projects, 1)
	project := projects[0].PlainData()
	assert.Equal(t, []map[string]any{{"description": "AI Ledger Matcher"}}, project.Links["solution"])
	assert.Equal(t, []map[string]any{{"name": "Credit Appraisal Agent"}}, project.Links["agent"])

	agents := r.Find("Agent", nil)
	require.Len(t, agents, 1)
	assert.Equal(t, []map[string]any{{"name": "billing_ledger.csv"}}, agents[0].PlainData().Links["dataset"])

	datasets := r.Find("Dataset", nil)
	require.Len(t, datasets, 1)
	assert.Equal(t, []map[string]any{{"name": "ERP-X"}}, datasets[0].PlainData().Links["system"])
}

func TestBuildDemoGraph_FreshRegistryEachCall(t *testing.T) {
	r1, err := BuildDemoGraph()
	require.NoError(t, err)
	r2, err := BuildDemoGraph()
	require.NoError(t, err)

	require.NotSame(t, r1, r2)
	mustCreate(t, r1, "Ticket", nil)
	assert.Equal(t, 12, r1.Len())
	assert.Equal(t, 11, r2.Len())
}
