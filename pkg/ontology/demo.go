package ontology

import "fmt"

// BuildDemoGraph constructs the fixed illustrative graph used by the demo
// dashboards and returns its registry: three departments, a human with a
// department and a skill, and a Challenge → Solution ← Project chain that
// continues Project → Agent → Dataset → System.
func BuildDemoGraph() (*Registry, error) {
	r := NewRegistry()

	hr, err := r.Create("Department", map[string]any{"name": "HR"})
	if err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}
	if _, err := r.Create("Department", map[string]any{"name": "Cloud Infra"}); err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}
	if _, err := r.Create("Department", map[string]any{"name": "Finance"}); err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}

	john, err := r.Create("Human", map[string]any{"name": "John Lennon"})
	if err != nil {
		return nil, fmt.Errorf("create human: %w", err)
	}
	john.Link("department", hr)

	aiStrategy, err := r.Create("Skill", map[string]any{"name": "AI Strategy"})
	if err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	john.Link("skills", aiStrategy)

	challenge, err := r.Create("Challenge", map[string]any{"title": "Automate Billing Reconciliation"})
	if err != nil {
		return nil, fmt.Errorf("create challenge: %w", err)
	}
	solution, err := r.Create("Solution", map[string]any{"description": "AI Ledger Matcher"})
	if err != nil {
		return nil, fmt.Errorf("create solution: %w", err)
	}
	challenge.Link("solution", solution)

	project, err := r.Create("Project", map[string]any{"title": "Billing AI MVP"})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	project.Link("solution", solution)

	agent, err := r.Create("Agent", map[string]any{"name": "Credit Appraisal Agent"})
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}
	project.Link("agent", agent)

	dataset, err := r.Create("Dataset", map[string]any{"name": "billing_ledger.csv"})
	if err != nil {
		return nil, fmt.Errorf("create dataset: %w", err)
	}
	agent.Link("dataset", dataset)

	system, err := r.Create("System", map[string]any{"name": "ERP-X"})
	if err != nil {
		return nil, fmt.Errorf("create system: %w", err)
	}
	dataset.Link("system", system)

	return r, nil
}
