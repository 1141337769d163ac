package render

import (
	"strings"

	"github.com/dshills/wcagaudit/internal/catalog"
	"github.com/dshills/wcagaudit/internal/schema"
	"github.com/dshills/wcagaudit/internal/stats"
)

// report is the read-only view model all text renderers execute against.
// Every count in it comes from stats.Compute over the criteria.
type report struct {
	Meta        schema.Meta
	InScope     []string
	OutScope    []string
	Sample      []string
	Conclusion  string
	Feedback    string
	Version     string
	Levels      []levelRow
	Total       stats.Counts
	Scores      []scoreRow
	LevelTables []levelTable
	Criteria    []criterion
	Principles  []principle
	Standalone  bool
	Text        texts
}

// texts carries the fixed prose into the templates.
type texts struct {
	Intro       string
	Quote       string
	Levels      string
	Disclaimer  string
	Placeholder string
	NoFailures  string
}

var fixedTexts = texts{
	Intro:       introText,
	Quote:       quoteText,
	Levels:      levelsText,
	Disclaimer:  disclaimerText,
	Placeholder: findingsPlaceholder,
	NoFailures:  noFailuresText,
}

type levelRow struct {
	Level  schema.Level
	Counts stats.Counts
}

type scoreRow struct {
	Norm    string
	Pass    int
	Total   int
	Percent int
}

type levelTable struct {
	Level    schema.Level
	Criteria []criterion
}

type principle struct {
	Number      int
	Name        string
	Description string
	Counts      stats.Counts
	Criteria    []criterion
	// Reported holds the criteria that get a findings section in Markdown.
	Reported []criterion
}

type criterion struct {
	ID           string
	Name         string
	Description  string
	Level        schema.Level
	Disciplines  string
	Result       treatment
	Reason       string
	Explanation  string
	Findings     []schema.Finding
	ShowFindings bool
	URL          string
}

func newReport(r *schema.ReportData) *report {
	if r == nil {
		r = &schema.ReportData{}
	}
	tally := stats.Compute(r)

	v := &report{
		Meta:       withDefaults(r.Meta),
		InScope:    nonEmpty(r.Scope.InScope),
		OutScope:   nonEmpty(r.Scope.OutScope),
		Conclusion: strings.TrimSpace(r.Summary.Conclusion),
		Feedback:   strings.TrimSpace(r.Summary.Feedback),
		Version:    catalog.Version,
		Total:      tally.Scored,
		Text:       fixedTexts,
	}
	v.Sample = v.InScope
	if len(v.Sample) == 0 {
		v.Sample = []string{defaultSample}
	}

	for _, lc := range tally.Levels {
		v.Levels = append(v.Levels, levelRow{Level: lc.Level, Counts: lc.Counts})
	}
	score := tally.Scored
	for _, norm := range []string{catalog.LegacyVersion, catalog.Version} {
		v.Scores = append(v.Scores, scoreRow{
			Norm:    "WCAG " + norm + " (A+AA)",
			Pass:    score.Pass,
			Total:   score.Total,
			Percent: score.Percent(),
		})
	}
	for _, l := range schema.Levels {
		lt := levelTable{Level: l}
		for _, c := range stats.ByLevel(r, l) {
			lt.Criteria = append(lt.Criteria, newCriterion(c))
		}
		v.LevelTables = append(v.LevelTables, lt)
	}

	for i, p := range r.Principles {
		pv := principle{
			Number:      i + 1,
			Name:        p.Name,
			Description: p.Description,
			Counts:      tally.Principles[i],
		}
		for _, c := range p.Criteria {
			cv := newCriterion(c)
			pv.Criteria = append(pv.Criteria, cv)
			v.Criteria = append(v.Criteria, cv)
			if c.Result == schema.ResultFail || (c.Result == schema.ResultPass && len(c.Findings) > 0) {
				pv.Reported = append(pv.Reported, cv)
			}
		}
		v.Principles = append(v.Principles, pv)
	}
	return v
}

func newCriterion(c schema.Criterion) criterion {
	t := treat(c.Result)
	cv := criterion{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Level:        c.Level,
		Disciplines:  strings.Join(c.Disciplines, ", "),
		Result:       t,
		Reason:       strings.TrimSpace(c.Reason),
		Findings:     c.Findings,
		ShowFindings: c.Result.HasFindings(),
		URL:          catalog.UnderstandingURL(c.ID),
	}
	cv.Explanation = cv.Reason
	if cv.Explanation == "" {
		cv.Explanation = t.Default
	}
	if cv.Disciplines == "" {
		cv.Disciplines = "-"
	}
	return cv
}

func withDefaults(m schema.Meta) schema.Meta {
	m.Client = orDefault(m.Client, unknown)
	m.Product = orDefault(m.Product, unknown)
	m.Date = orDefault(m.Date, unknown)
	m.Researchers = orDefault(m.Researchers, unknown)
	m.Version = orDefault(m.Version, defaultVersion)
	return m
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}

func nonEmpty(items []string) []string {
	var out []string
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
