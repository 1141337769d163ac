package schema

// Evaluation is the parsed evaluator response. Results is sparse and may
// contain unknown or duplicate ids.
type Evaluation struct {
	Conclusion string    `json:"conclusion"`
	Feedback   string    `json:"feedback"`
	Results    []Verdict `json:"criteria_results"`
	// Model is the provider:model that produced the evaluation.
	Model string `json:"-"`
}

// Verdict is one per-criterion judgment as returned on the wire.
type Verdict struct {
	ID       string    `json:"id"`
	Result   Code      `json:"result"`
	Reason   string    `json:"reason,omitempty"`
	Findings []Finding `json:"findings,omitempty"`
}
