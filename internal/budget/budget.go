package budget

// DetailLevel selects one of the base allocation tiers.
type DetailLevel string

const (
	DetailMinimal       DetailLevel = "minimal"
	DetailStandard      DetailLevel = "standard"
	DetailComprehensive DetailLevel = "comprehensive"
)

// FocusArea is a caller hint that boosts one context component's allowance.
type FocusArea string

const (
	FocusNone           FocusArea = ""
	FocusGeneral        FocusArea = "general"
	FocusArchitecture   FocusArea = "architecture"
	FocusKnowledgeGraph FocusArea = "knowledge_graph"
	FocusWorkflow       FocusArea = "workflow"
	FocusAgent          FocusArea = "agent"
)

// Budget holds the per-component token allowances for one assembly request
// plus the nominal total. After a focus boost the Total deliberately keeps
// the pre-boost tier value; capping decisions use the live component sum,
// not Total.
type Budget struct {
	Readme       int
	Architecture int
	Glossary     int
	Snapshots    int
	Total        int
}

// ComponentSum returns the sum of the component allowances, excluding Total.
func (b Budget) ComponentSum() int {
	return b.Readme + b.Architecture + b.Glossary + b.Snapshots
}

// DefaultTables returns the built-in allocation tiers. Each tier's Total
// equals its component sum.
func DefaultTables() map[DetailLevel]Budget {
	return map[DetailLevel]Budget{
		DetailMinimal:       {Readme: 500, Architecture: 1000, Glossary: 500, Snapshots: 1000, Total: 3000},
		DetailStandard:      {Readme: 1000, Architecture: 2000, Glossary: 1000, Snapshots: 4000, Total: 8000},
		DetailComprehensive: {Readme: 2000, Architecture: 3000, Glossary: 2000, Snapshots: 8000, Total: 15000},
	}
}

// focusBoost multiplies the focused component's allowance.
const focusBoost = 2.0

// Allocator resolves token budgets from a tier table. Construct with
// NewAllocator; the zero value has no tiers and falls back to nothing.
type Allocator struct {
	tables map[DetailLevel]Budget
}

// NewAllocator returns an Allocator over the given tier table. A nil table
// uses DefaultTables. The table is treated as immutable configuration;
// Allocate never writes to it.
func NewAllocator(tables map[DetailLevel]Budget) *Allocator {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Allocator{tables: tables}
}

// Allocate computes the budget for one request.
//
// Unknown detail levels fall back to the standard tier. A focus area doubles
// the allowance of the component it maps to (general boosts the readme,
// architecture boosts the architecture document, and knowledge_graph,
// workflow, and agent all boost snapshots); other focus values change
// nothing. If the resulting component sum exceeds maxTokens, every component
// is scaled by maxTokens over that sum, truncating toward zero, and Total is
// set to exactly maxTokens. Budgets are never scaled up to fill unused
// headroom.
func (a *Allocator) Allocate(detail DetailLevel, focus FocusArea, maxTokens int) Budget {
	b, ok := a.tables[detail]
	if !ok {
		b = a.tables[DetailStandard]
	}

	switch focus {
	case FocusGeneral:
		b.Readme = int(float64(b.Readme) * focusBoost)
	case FocusArchitecture:
		b.Architecture = int(float64(b.Architecture) * focusBoost)
	case FocusKnowledgeGraph, FocusWorkflow, FocusAgent:
		b.Snapshots = int(float64(b.Snapshots) * focusBoost)
	}

	if sum := b.ComponentSum(); sum > maxTokens {
		scale := float64(maxTokens) / float64(sum)
		b.Readme = int(float64(b.Readme) * scale)
		b.Architecture = int(float64(b.Architecture) * scale)
		b.Glossary = int(float64(b.Glossary) * scale)
		b.Snapshots = int(float64(b.Snapshots) * scale)
		b.Total = maxTokens
	}
	return b
}
