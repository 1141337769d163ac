// Package catalog holds the fixed WCAG 2.2 level A/AA checklist evaluated by
// every audit. Each call to Load builds a new value; nothing is shared.
package catalog

import (
	"strings"

	"github.com/dshills/wcagaudit/internal/schema"
)

// Version is the WCAG version the checklist is written against.
const Version = "2.2"

// LegacyVersion is the previous WCAG version reported in the score table.
const LegacyVersion = "2.1"

// DefaultConclusion is the summary text used until an evaluator replaces it.
const DefaultConclusion = "De analyse is voltooid."

// DefaultFeedback is used when the evaluator returns no feedback.
const DefaultFeedback = "Geen aanvullende feedback."

const understandingBase = "https://www.w3.org/WAI/WCAG22/Understanding/"

// Load returns a fresh checklist: four principles in fixed order, every
// criterion at ResultNotChecked, meta/scope/summary empty and the
// principle stats already consistent with the criteria.
func Load() *schema.ReportData {
	r := &schema.ReportData{
		Scope: schema.Scope{InScope: []string{}, OutScope: []string{}},
		Principles: []schema.Principle{
			perceivable(),
			operable(),
			understandable(),
			robust(),
		},
	}
	for i := range r.Principles {
		r.Principles[i].Stats.Total = len(r.Principles[i].Criteria)
	}
	return r
}

// Refs returns the id/name pairs of every criterion in catalog order.
func Refs() []schema.CriterionRef {
	var refs []schema.CriterionRef
	for _, p := range Load().Principles {
		for _, c := range p.Criteria {
			refs = append(refs, schema.CriterionRef{ID: c.ID, Name: c.Name})
		}
	}
	return refs
}

// Count returns the number of criteria in the checklist.
func Count() int {
	n := 0
	for _, p := range Load().Principles {
		n += len(p.Criteria)
	}
	return n
}

// Lookup returns the catalog definition of a criterion id.
func Lookup(id string) (schema.Criterion, bool) {
	for _, p := range Load().Principles {
		for _, c := range p.Criteria {
			if c.ID == id {
				return c, true
			}
		}
	}
	return schema.Criterion{}, false
}

// UnderstandingURL returns the W3C "Understanding" page for a criterion id,
// or "" when the id is not in the catalog.
func UnderstandingURL(id string) string {
	if slug, ok := slugs[id]; ok {
		return understandingBase + slug + ".html"
	}
	return ""
}

func criterion(id, name string, level schema.Level, disciplines, description string) schema.Criterion {
	return schema.Criterion{
		ID:          id,
		Name:        name,
		Description: description,
		Level:       level,
		Disciplines: splitDisciplines(disciplines),
		Result:      schema.ResultNotChecked,
	}
}

func splitDisciplines(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
