package audit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/wcagaudit/internal/catalog"
	"github.com/dshills/wcagaudit/internal/evaluate"
	"github.com/dshills/wcagaudit/internal/sanitize"
	"github.com/dshills/wcagaudit/internal/schema"
)

type fakeEvaluator struct {
	ev    *schema.Evaluation
	err   error
	calls int
	html  string
	refs  []schema.CriterionRef
}

func (f *fakeEvaluator) Evaluate(_ context.Context, html string, refs []schema.CriterionRef) (*schema.Evaluation, error) {
	f.calls++
	f.html = html
	f.refs = refs
	return f.ev, f.err
}

func validInput() Input {
	return Input{
		HTML: "<main><img src=\"logo.png\"></main>",
		Meta: schema.Meta{Client: " Acme ", Product: "Portal", Version: "1.0", Date: "2026-10-16", Researchers: "J. Doe"},
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Input)
		fields []string
		msg    string
	}{
		{"ok", func(*Input) {}, nil, ""},
		{"blank html", func(in *Input) { in.HTML = " \n\t" }, []string{FieldHTML}, msgMissingHTML},
		{"missing client", func(in *Input) { in.Meta.Client = "" }, []string{FieldClient}, msgMissingMeta},
		{"missing product and researchers", func(in *Input) {
			in.Meta.Product = " "
			in.Meta.Researchers = ""
		}, []string{FieldProduct, FieldResearchers}, msgMissingMeta},
		{"html wins", func(in *Input) {
			in.HTML = ""
			in.Meta.Client = ""
		}, []string{FieldHTML, FieldClient}, msgMissingHTML},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := validInput()
			c.mutate(&in)
			err := Validate(in)
			if c.fields == nil {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, c.fields, ve.Fields)
			assert.Equal(t, c.msg, ve.Error())
		})
	}
}

func TestNewMeta(t *testing.T) {
	m := NewMeta(time.Date(2026, 3, 7, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "1.0", m.Version)
	assert.Equal(t, "2026-03-07", m.Date)
	assert.Empty(t, m.Client)
}

func TestRun_ValidationMakesNoCall(t *testing.T) {
	ev := &fakeEvaluator{}
	in := validInput()
	in.HTML = ""
	res, err := (&Service{Evaluator: ev}).Run(context.Background(), in)
	assert.Nil(t, res)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, 0, ev.calls)
}

func TestRun_Success(t *testing.T) {
	ev := &fakeEvaluator{ev: &schema.Evaluation{
		Conclusion: "Eén probleem.",
		Model:      "fake:test",
		Results:    []schema.Verdict{{ID: "1.1.1", Result: schema.CodeFail}, {ID: "2.4.2", Result: schema.CodePass}},
	}}
	in := validInput()
	in.HTML = "<main><script>track()</script><p>Hallo</p></main>"
	in.InScope = []string{" Homepage ", ""}

	res, err := (&Service{Evaluator: ev}).Run(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, res.Report)

	assert.Equal(t, 1, ev.calls)
	assert.Len(t, ev.refs, catalog.Count())
	assert.NotContains(t, ev.html, "track()")
	assert.Contains(t, ev.html, "<p>Hallo</p>")

	r := res.Report
	assert.Equal(t, "Acme", r.Meta.Client)
	assert.Equal(t, []string{"Homepage"}, r.Scope.InScope)
	assert.Equal(t, "Eén probleem.", r.Summary.Conclusion)
	assert.Equal(t, catalog.DefaultFeedback, r.Summary.Feedback)
	assert.Equal(t, schema.Score{Pass: 1, Total: catalog.Count()}, r.Summary.Scores.CurrentLevel)
	assert.Equal(t, "fake:test", res.Model)
	assert.Nil(t, res.Notice)
}

func TestRun_TruncatesLargeInput(t *testing.T) {
	ev := &fakeEvaluator{ev: &schema.Evaluation{}}
	in := validInput()
	in.HTML = "<p>" + strings.Repeat("a", 500) + "</p>"

	res, err := (&Service{Evaluator: ev, MaxInputChars: 100}).Run(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, res.Notice)
	assert.Equal(t, 100, res.Notice.KeptChars)
	assert.True(t, strings.HasSuffix(ev.html, sanitize.TruncationMarker))
}

func TestRun_EvaluationFailureReturnsNoReport(t *testing.T) {
	cause := &evaluate.Error{Kind: evaluate.KindMalformed, Err: errors.New("bad json")}
	ev := &fakeEvaluator{err: cause}
	res, err := (&Service{Evaluator: ev}).Run(context.Background(), validInput())
	assert.Nil(t, res)
	var ee *evaluate.Error
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, evaluate.KindMalformed, ee.Kind)
}

func TestRun_FreshReportPerRun(t *testing.T) {
	ev := &fakeEvaluator{ev: &schema.Evaluation{Results: []schema.Verdict{{ID: "1.1.1", Result: schema.CodeFail}}}}
	s := &Service{Evaluator: ev}
	first, err := s.Run(context.Background(), validInput())
	require.NoError(t, err)

	ev.ev = &schema.Evaluation{}
	second, err := s.Run(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, schema.ResultFail, first.Report.Principles[0].Criteria[0].Result)
	assert.Equal(t, schema.ResultNotChecked, second.Report.Principles[0].Criteria[0].Result)
}
