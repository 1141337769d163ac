// Package reconcile merges a sparse evaluator response into a full checklist
// report and recomputes everything derived from it.
package reconcile

import (
	"strings"

	"github.com/dshills/wcagaudit/internal/catalog"
	"github.com/dshills/wcagaudit/internal/schema"
	"github.com/dshills/wcagaudit/internal/stats"
)

// Lookup indexes verdicts by trimmed id. When an id occurs more than once
// the last occurrence wins. Ids are matched case-sensitively.
func Lookup(vs []schema.Verdict) map[string]schema.Verdict {
	m := make(map[string]schema.Verdict, len(vs))
	for _, v := range vs {
		id := strings.TrimSpace(v.ID)
		if id == "" {
			continue
		}
		m[id] = v
	}
	return m
}

// Reconcile applies ev to r in place and returns r.
//
// For each criterion with a matching verdict, the result is replaced by the
// mapped taxonomy value, the reason is copied when non-empty and findings are
// replaced wholesale when non-empty. Criteria without a verdict keep their
// current result. Ids in ev that are not in the report are ignored. Meta and
// scope are never touched. A nil ev is treated as an empty evaluation.
func Reconcile(r *schema.ReportData, ev *schema.Evaluation) *schema.ReportData {
	if r == nil {
		return nil
	}
	if ev == nil {
		ev = &schema.Evaluation{}
	}

	lookup := Lookup(ev.Results)
	for pi := range r.Principles {
		crits := r.Principles[pi].Criteria
		for ci := range crits {
			v, ok := lookup[crits[ci].ID]
			if !ok {
				continue
			}
			crits[ci].Result = schema.ResultFromCode(v.Result)
			if reason := strings.TrimSpace(v.Reason); reason != "" {
				crits[ci].Reason = reason
			}
			if len(v.Findings) > 0 {
				crits[ci].Findings = append([]schema.Finding(nil), v.Findings...)
			}
		}
	}

	Recompute(r)

	r.Summary.Conclusion = orDefault(ev.Conclusion, catalog.DefaultConclusion)
	r.Summary.Feedback = orDefault(ev.Feedback, catalog.DefaultFeedback)
	return r
}

// Recompute refreshes the stored principle stats and summary scores from the
// criteria. Both score slots receive the same A+AA score.
func Recompute(r *schema.ReportData) {
	if r == nil {
		return
	}
	tally := stats.Compute(r)
	for i := range r.Principles {
		c := tally.Principles[i]
		r.Principles[i].Stats = schema.PrincipleStats{
			Pass:  c.Pass,
			Fail:  c.Fail,
			Total: c.Total,
		}
	}
	score := tally.Scored.Score()
	r.Summary.Scores = schema.Scores{LegacyLevel: score, CurrentLevel: score}
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
