package schema

import "strings"

// Result is the internal verdict taxonomy stored on every criterion.
// Values are stable identifiers; use Label for display text.
type Result string

const (
	ResultPass          Result = "pass"
	ResultFail          Result = "fail"
	ResultNotApplicable Result = "not_applicable"
	ResultOutOfScope    Result = "out_of_scope"
	ResultNotChecked    Result = "not_checked"
)

// Results lists every taxonomy member in report column order.
var Results = []Result{ResultPass, ResultFail, ResultNotChecked, ResultNotApplicable, ResultOutOfScope}

// IsValid reports whether r is one of the five taxonomy members.
func (r Result) IsValid() bool {
	switch r {
	case ResultPass, ResultFail, ResultNotApplicable, ResultOutOfScope, ResultNotChecked:
		return true
	}
	return false
}

// Label returns the display text used in every rendered report.
func (r Result) Label() string {
	switch r {
	case ResultPass:
		return "Voldoet"
	case ResultFail:
		return "Voldoet niet"
	case ResultNotApplicable:
		return "Niet van toepassing"
	case ResultOutOfScope:
		return "Buiten scope"
	default:
		return "Geen oordeel"
	}
}

// HasFindings reports whether a findings section is shown for this verdict.
func (r Result) HasFindings() bool {
	return r == ResultPass || r == ResultFail
}

// Code returns the wire code for r. Unknown values map to CodeNotChecked.
func (r Result) Code() Code {
	switch r {
	case ResultPass:
		return CodePass
	case ResultFail:
		return CodeFail
	case ResultNotApplicable:
		return CodeNotApplicable
	case ResultOutOfScope:
		return CodeOutOfScope
	default:
		return CodeNotChecked
	}
}

// Code is the evaluator's wire vocabulary for a verdict.
type Code string

const (
	CodePass          Code = "PASS"
	CodeFail          Code = "FAIL"
	CodeNotApplicable Code = "NOT_APPLICABLE"
	CodeOutOfScope    Code = "OUT_OF_SCOPE"
	CodeNotChecked    Code = "NOT_CHECKED"
)

// Codes lists the closed vocabulary offered to the evaluator.
var Codes = []Code{CodePass, CodeFail, CodeNotApplicable, CodeOutOfScope, CodeNotChecked}

// ResultFromCode maps a raw wire code to the taxonomy. The mapping is total:
// surrounding whitespace and letter case are ignored, "NA" is accepted as an
// alias of NOT_APPLICABLE, and anything else becomes ResultNotChecked.
func ResultFromCode(c Code) Result {
	switch Code(strings.ToUpper(strings.TrimSpace(string(c)))) {
	case CodePass:
		return ResultPass
	case CodeFail:
		return ResultFail
	case CodeNotApplicable, "NA":
		return ResultNotApplicable
	case CodeOutOfScope:
		return ResultOutOfScope
	default:
		return ResultNotChecked
	}
}
