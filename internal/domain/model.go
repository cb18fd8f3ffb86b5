package domain

// Severity classifies how strongly an issue counts against a layer.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Category names the rule family an issue belongs to.
type Category string

const (
	CategoryComponent Category = "component"
	CategoryToken     Category = "token"
	CategoryStyle     Category = "style"
)

// Issue represents one finding for a single layer. Info issues are positive
// confirmations and never count against the layer's compliance.
type Issue struct {
	Message  string   `json:"message"`
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
}

// Blocking reports whether the issue makes its layer non-compliant.
func (i Issue) Blocking() bool {
	return i.Severity == SeverityCritical || i.Severity == SeverityWarning
}

// LayerReport holds the evaluation result for one visited layer.
// Immutable once handed to the aggregator.
type LayerReport struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Kind      Kind     `json:"kind"`
	Path      []string `json:"path"`
	Issues    []Issue  `json:"issues"`
	Compliant bool     `json:"compliant"`
}

// TypeStat tracks running totals for one node kind.
type TypeStat struct {
	Total      int `json:"total"`
	Compliant  int `json:"compliant"`
	Percentage int `json:"percentage"`
}

// Summary is the headline view of an audit run.
type Summary struct {
	OverallScore      int    `json:"overallScore"`
	ComponentCoverage int    `json:"componentCoverage"`
	TokenCoverage     int    `json:"tokenCoverage"`
	StyleCoverage     int    `json:"styleCoverage"`
	TotalLayers       int    `json:"totalLayers"`
	CompliantLayers   int    `json:"compliantLayers"`
	AnalyzedRootName  string `json:"analyzedRootName"`
}

// Details carries the drill-down behind the summary.
type Details struct {
	ByKind       map[Kind]TypeStat `json:"byKind"`
	NonCompliant []LayerReport     `json:"nonCompliant"`
}

// CoverageReport is the complete result of one audit invocation.
type CoverageReport struct {
	Summary      Summary      `json:"summary"`
	Details      Details      `json:"details"`
	SettingsEcho EngineConfig `json:"settingsEcho"`
}

func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

// AuditEntry is one saved line of audit history.
type AuditEntry struct {
	Timestamp       string `json:"timestamp"`
	CommitHash      string `json:"commit_hash,omitempty"`
	Document        string `json:"document"`
	OverallScore    int    `json:"overall_score"`
	TotalLayers     int    `json:"total_layers"`
	CompliantLayers int    `json:"compliant_layers"`
}
