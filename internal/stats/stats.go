// Package stats derives every count shown in a report from the criteria
// themselves. Stored principle stats and scores are never read here.
package stats

import "github.com/dshills/wcagaudit/internal/schema"

// Counts is a per-result tally over a set of criteria.
type Counts struct {
	Pass          int
	Fail          int
	NotChecked    int
	NotApplicable int
	OutOfScope    int
	Total         int
}

// Of returns the count for a single result.
func (c Counts) Of(r schema.Result) int {
	switch r {
	case schema.ResultPass:
		return c.Pass
	case schema.ResultFail:
		return c.Fail
	case schema.ResultNotApplicable:
		return c.NotApplicable
	case schema.ResultOutOfScope:
		return c.OutOfScope
	default:
		return c.NotChecked
	}
}

// Score converts the counts into a pass/total score.
func (c Counts) Score() schema.Score {
	return schema.Score{Pass: c.Pass, Total: c.Total}
}

// Percent returns pass as a percentage of total rounded half up, 0 when
// total is 0.
func (c Counts) Percent() int {
	if c.Total == 0 {
		return 0
	}
	return (c.Pass*200 + c.Total) / (c.Total * 2)
}

func (c *Counts) add(r schema.Result) {
	switch r {
	case schema.ResultPass:
		c.Pass++
	case schema.ResultFail:
		c.Fail++
	case schema.ResultNotApplicable:
		c.NotApplicable++
	case schema.ResultOutOfScope:
		c.OutOfScope++
	default:
		c.NotChecked++
	}
	c.Total++
}

// ForCriteria tallies results over cs. Total is len(cs).
func ForCriteria(cs []schema.Criterion) Counts {
	var c Counts
	for _, cr := range cs {
		c.add(cr.Result)
	}
	return c
}

// LevelCounts pairs a level with its tally.
type LevelCounts struct {
	Level  schema.Level
	Counts Counts
}

// Tally is the full set of derived statistics for a report.
type Tally struct {
	// Levels has one entry per evaluated level, in schema.Levels order.
	Levels []LevelCounts
	// Scored covers every criterion at level A or AA.
	Scored Counts
	// All covers every criterion regardless of level.
	All Counts
	// Principles is parallel to ReportData.Principles.
	Principles []Counts
}

// Level returns the tally for l, zero when l is not evaluated.
func (t Tally) Level(l schema.Level) Counts {
	for _, lc := range t.Levels {
		if lc.Level == l {
			return lc.Counts
		}
	}
	return Counts{}
}

// Compute walks every criterion once. A nil report yields zero counts for
// every level.
func Compute(r *schema.ReportData) Tally {
	t := Tally{Levels: make([]LevelCounts, len(schema.Levels))}
	for i, l := range schema.Levels {
		t.Levels[i].Level = l
	}
	if r == nil {
		return t
	}
	t.Principles = make([]Counts, len(r.Principles))
	for pi, p := range r.Principles {
		t.Principles[pi] = ForCriteria(p.Criteria)
		for _, c := range p.Criteria {
			t.All.add(c.Result)
			if !c.Level.IsScored() {
				continue
			}
			t.Scored.add(c.Result)
			for i := range t.Levels {
				if t.Levels[i].Level == c.Level {
					t.Levels[i].Counts.add(c.Result)
				}
			}
		}
	}
	return t
}

// ByLevel returns the criteria at level l across all principles, in
// catalog order.
func ByLevel(r *schema.ReportData, l schema.Level) []schema.Criterion {
	if r == nil {
		return nil
	}
	var out []schema.Criterion
	for _, p := range r.Principles {
		for _, c := range p.Criteria {
			if c.Level == l {
				out = append(out, c)
			}
		}
	}
	return out
}
