package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/wcagaudit/internal/schema"
)

func TestLoad_Shape(t *testing.T) {
	r := Load()
	require.Len(t, r.Principles, 4)
	names := []string{}
	for _, p := range r.Principles {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Waarneembaar", "Bedienbaar", "Begrijpelijk", "Robuust"}, names)
	assert.Len(t, r.Principles[0].Criteria, 20)
	assert.Len(t, r.Principles[1].Criteria, 20)
	assert.Len(t, r.Principles[2].Criteria, 13)
	assert.Len(t, r.Principles[3].Criteria, 3)
	assert.Equal(t, 56, Count())
}

func TestLoad_Defaults(t *testing.T) {
	r := Load()
	assert.Equal(t, schema.Meta{}, r.Meta)
	assert.Empty(t, r.Scope.InScope)
	assert.Empty(t, r.Scope.OutScope)
	assert.Equal(t, schema.Score{}, r.Summary.Scores.CurrentLevel)
	assert.Equal(t, schema.Score{}, r.Summary.Scores.LegacyLevel)
	for _, p := range r.Principles {
		assert.Equal(t, len(p.Criteria), p.Stats.Total, p.Name)
		assert.Zero(t, p.Stats.Pass)
		assert.Zero(t, p.Stats.Fail)
		for _, c := range p.Criteria {
			assert.Equal(t, schema.ResultNotChecked, c.Result, c.ID)
			assert.True(t, c.Level.IsScored(), c.ID)
			assert.NotEmpty(t, c.Name, c.ID)
			assert.NotEmpty(t, c.Description, c.ID)
			assert.NotEmpty(t, c.Disciplines, c.ID)
			assert.Empty(t, c.Findings, c.ID)
		}
	}
}

func TestLoad_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Load().Principles {
		for _, c := range p.Criteria {
			assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
			seen[c.ID] = true
		}
	}
	assert.Len(t, seen, Count())
}

func TestLoad_IndependentCopies(t *testing.T) {
	a := Load()
	b := Load()
	a.Meta.Client = "Acme"
	a.Principles[0].Name = "changed"
	a.Principles[0].Criteria[0].Result = schema.ResultFail
	a.Principles[0].Criteria[0].Disciplines[0] = "changed"
	a.Principles[1].Criteria = a.Principles[1].Criteria[:1]

	assert.Empty(t, b.Meta.Client)
	assert.Equal(t, "Waarneembaar", b.Principles[0].Name)
	assert.Equal(t, schema.ResultNotChecked, b.Principles[0].Criteria[0].Result)
	assert.Equal(t, "CMS", b.Principles[0].Criteria[0].Disciplines[0])
	assert.Len(t, b.Principles[1].Criteria, 20)
	assert.Equal(t, 56, Count())
}

func TestLoad_FocusVisibleIsAA(t *testing.T) {
	c, ok := Lookup("2.4.7")
	require.True(t, ok)
	assert.Equal(t, schema.LevelAA, c.Level)
}

func TestRefs_CatalogOrder(t *testing.T) {
	refs := Refs()
	require.Len(t, refs, Count())
	assert.Equal(t, schema.CriterionRef{ID: "1.1.1", Name: "Niet-tekstuele content"}, refs[0])
	assert.Equal(t, "4.1.3", refs[len(refs)-1].ID)
}

func TestUnderstandingURL(t *testing.T) {
	assert.Equal(t, "https://www.w3.org/WAI/WCAG22/Understanding/contrast-minimum.html", UnderstandingURL("1.4.3"))
	assert.Equal(t, "", UnderstandingURL("9.9.9"))
	for _, r := range Refs() {
		u := UnderstandingURL(r.ID)
		assert.True(t, strings.HasSuffix(u, ".html"), r.ID)
	}
	assert.Len(t, slugs, Count())
}

func TestSplitDisciplines(t *testing.T) {
	assert.Equal(t, []string{"UX/UI", "FE"}, splitDisciplines(" UX/UI, FE ,"))
	assert.Empty(t, splitDisciplines(""))
}
