package schema

// ReportData is the top-level report document. It is created fresh per audit
// run from the catalog, merged once by the reconciler and read-only afterwards.
type ReportData struct {
	Meta       Meta        `json:"meta"`
	Scope      Scope       `json:"scope"`
	Summary    Summary     `json:"summary"`
	Principles []Principle `json:"principles"`
}

// Meta holds the user-supplied identity fields of an audit. The evaluator
// never writes here.
type Meta struct {
	Client      string `json:"client"`
	Product     string `json:"product"`
	Version     string `json:"version"`
	Date        string `json:"date"`
	Researchers string `json:"researchers"`
}

// Scope lists what was and was not examined.
type Scope struct {
	InScope  []string `json:"in_scope"`
	OutScope []string `json:"out_scope"`
}

// Summary carries the evaluator's narrative plus the derived scores.
type Summary struct {
	Conclusion string `json:"conclusion"`
	Feedback   string `json:"feedback"`
	Scores     Scores `json:"scores"`
}

// Scores keeps one slot per WCAG version. Both slots are filled identically
// because the catalog evaluates one active version at a time.
type Scores struct {
	LegacyLevel  Score `json:"legacy_level"`
	CurrentLevel Score `json:"current_level"`
}

// Score is a pass count over the number of criteria at level A or AA.
type Score struct {
	Pass  int `json:"pass"`
	Total int `json:"total"`
}

// Principle groups criteria. Criteria order is display order.
type Principle struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Criteria    []Criterion    `json:"criteria"`
	Stats       PrincipleStats `json:"stats"`
}

// PrincipleStats is a derived snapshot, recomputed after every merge.
type PrincipleStats struct {
	Pass  int `json:"pass"`
	Fail  int `json:"fail"`
	Total int `json:"total"`
}

// Criterion is one WCAG success criterion and its verdict.
type Criterion struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Level       Level     `json:"level"`
	Disciplines []string  `json:"disciplines"`
	Result      Result    `json:"result"`
	Reason      string    `json:"reason,omitempty"`
	Findings    []Finding `json:"findings,omitempty"`
}

// Finding is one observed problem instance backing a verdict.
type Finding struct {
	Location           string `json:"location"`
	Observation        string `json:"observation"`
	ProblemDescription string `json:"problemDescription"`
	Impact             string `json:"impact"`
	Advice             string `json:"advice"`
}

// CriterionRef is the id/name pair offered to the evaluator.
type CriterionRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Level is a WCAG conformance tier.
type Level string

const (
	LevelA  Level = "A"
	LevelAA Level = "AA"
)

// Levels lists the evaluated levels in display order.
var Levels = []Level{LevelA, LevelAA}

// IsScored reports whether criteria at this level count towards the scores.
func (l Level) IsScored() bool {
	return l == LevelA || l == LevelAA
}
