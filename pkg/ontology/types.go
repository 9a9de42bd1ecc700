package ontology

// Type tags the kind of thing an entity represents. The catalog is closed:
// the eighteen values below are the only legal tags, and a tag's canonical
// string is its name.
type Type string

// The full type catalog.
const (
	TypeHuman      Type = "Human"
	TypeDepartment Type = "Department"
	TypeTeam       Type = "Team"
	TypeSkill      Type = "Skill"
	TypeChallenge  Type = "Challenge"
	TypeSolution   Type = "Solution"
	TypeProject    Type = "Project"
	TypeAgent      Type = "Agent"
	TypeDataset    Type = "Dataset"
	TypeWorkflow   Type = "Workflow"
	TypeSystem     Type = "System"
	TypeTicket     Type = "Ticket"
	TypeAsset      Type = "Asset"
	TypeCustomer   Type = "Customer"
	TypePolicy     Type = "Policy"
	TypeRiskFactor Type = "RiskFactor"
	TypeDecision   Type = "Decision"
	TypeEvent      Type = "Event"
)

// ValidTypes lists every tag in the catalog, in declaration order.
var ValidTypes = []Type{
	TypeHuman,
	TypeDepartment,
	TypeTeam,
	TypeSkill,
	TypeChallenge,
	TypeSolution,
	TypeProject,
	TypeAgent,
	TypeDataset,
	TypeWorkflow,
	TypeSystem,
	TypeTicket,
	TypeAsset,
	TypeCustomer,
	TypePolicy,
	TypeRiskFactor,
	TypeDecision,
	TypeEvent,
}

var validTypeSet = func() map[Type]struct{} {
	set := make(map[Type]struct{}, len(ValidTypes))
	for _, t := range ValidTypes {
		set[t] = struct{}{}
	}
	return set
}()

// IsValid reports whether t is one of the catalog tags. Matching is exact,
// including case.
func (t Type) IsValid() bool {
	_, ok := validTypeSet[t]
	return ok
}

// String returns the canonical display string for the tag.
func (t Type) String() string {
	return string(t)
}
