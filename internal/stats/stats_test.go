package stats

import (
	"testing"

	"github.com/dshills/wcagaudit/internal/schema"
)

func crit(id string, level schema.Level, r schema.Result) schema.Criterion {
	return schema.Criterion{ID: id, Level: level, Result: r}
}

func sample() *schema.ReportData {
	return &schema.ReportData{
		Principles: []schema.Principle{
			{Name: "P1", Criteria: []schema.Criterion{
				crit("1", schema.LevelA, schema.ResultPass),
				crit("2", schema.LevelA, schema.ResultFail),
				crit("3", schema.LevelAA, schema.ResultNotApplicable),
			}},
			{Name: "P2", Criteria: []schema.Criterion{
				crit("4", schema.LevelAA, schema.ResultPass),
				crit("5", schema.LevelAA, schema.ResultOutOfScope),
				crit("6", schema.LevelA, schema.ResultNotChecked),
				crit("7", "AAA", schema.ResultPass),
			}},
		},
	}
}

func TestForCriteria(t *testing.T) {
	c := ForCriteria(sample().Principles[1].Criteria)
	if c.Total != 4 {
		t.Errorf("Total = %d, want 4", c.Total)
	}
	if c.Pass != 2 || c.OutOfScope != 1 || c.NotChecked != 1 {
		t.Errorf("unexpected counts: %+v", c)
	}
}

func TestForCriteria_UnknownResultIsNotChecked(t *testing.T) {
	c := ForCriteria([]schema.Criterion{crit("1", schema.LevelA, "bogus")})
	if c.NotChecked != 1 {
		t.Errorf("unknown result should count as not checked: %+v", c)
	}
}

func TestCompute_Levels(t *testing.T) {
	tally := Compute(sample())
	a := tally.Level(schema.LevelA)
	if a.Pass != 1 || a.Fail != 1 || a.NotChecked != 1 || a.Total != 3 {
		t.Errorf("level A: %+v", a)
	}
	aa := tally.Level(schema.LevelAA)
	if aa.Pass != 1 || aa.NotApplicable != 1 || aa.OutOfScope != 1 || aa.Total != 3 {
		t.Errorf("level AA: %+v", aa)
	}
	if tally.Level("AAA").Total != 0 {
		t.Error("AAA should not be tallied as a level")
	}
}

func TestCompute_ScoredExcludesOtherLevels(t *testing.T) {
	tally := Compute(sample())
	if tally.Scored.Total != 6 || tally.Scored.Pass != 2 {
		t.Errorf("scored: %+v", tally.Scored)
	}
	if tally.All.Total != 7 || tally.All.Pass != 3 {
		t.Errorf("all: %+v", tally.All)
	}
	if got := tally.Scored.Score(); got != (schema.Score{Pass: 2, Total: 6}) {
		t.Errorf("Score = %+v", got)
	}
}

func TestCompute_PrinciplesParallel(t *testing.T) {
	tally := Compute(sample())
	if len(tally.Principles) != 2 {
		t.Fatalf("expected 2 principle tallies, got %d", len(tally.Principles))
	}
	if tally.Principles[0].Total != 3 || tally.Principles[0].Fail != 1 {
		t.Errorf("principle 0: %+v", tally.Principles[0])
	}
}

func TestCompute_IgnoresStoredStats(t *testing.T) {
	r := sample()
	r.Principles[0].Stats = schema.PrincipleStats{Pass: 99, Fail: 99, Total: 99}
	r.Summary.Scores.CurrentLevel = schema.Score{Pass: 42, Total: 42}
	tally := Compute(r)
	if tally.Principles[0].Pass != 1 || tally.Scored.Pass != 2 {
		t.Errorf("stale stored stats leaked into tally: %+v", tally)
	}
}

func TestCompute_Nil(t *testing.T) {
	tally := Compute(nil)
	if len(tally.Levels) != len(schema.Levels) {
		t.Errorf("expected zero entries for every level, got %d", len(tally.Levels))
	}
	if tally.Scored.Total != 0 || tally.Principles != nil {
		t.Errorf("expected empty tally: %+v", tally)
	}
	if ByLevel(nil, schema.LevelA) != nil {
		t.Error("ByLevel(nil) should be nil")
	}
}

func TestByLevel_CatalogOrder(t *testing.T) {
	got := ByLevel(sample(), schema.LevelA)
	ids := ""
	for _, c := range got {
		ids += c.ID
	}
	if ids != "126" {
		t.Errorf("level A ids = %q, want %q", ids, "126")
	}
}

func TestCounts_OfAndPercent(t *testing.T) {
	c := Counts{Pass: 1, Fail: 2, NotChecked: 3, NotApplicable: 4, OutOfScope: 5, Total: 15}
	for r, want := range map[schema.Result]int{
		schema.ResultPass: 1, schema.ResultFail: 2, schema.ResultNotChecked: 3,
		schema.ResultNotApplicable: 4, schema.ResultOutOfScope: 5,
	} {
		if got := c.Of(r); got != want {
			t.Errorf("Of(%s) = %d, want %d", r, got, want)
		}
	}
	if c.Percent() != 7 {
		t.Errorf("Percent = %d, want 7", c.Percent())
	}
	if (Counts{Pass: 1, Total: 2}).Percent() != 50 {
		t.Error("Percent of 1/2 should be 50")
	}
	if (Counts{}).Percent() != 0 {
		t.Error("Percent of empty counts should be 0")
	}
}
