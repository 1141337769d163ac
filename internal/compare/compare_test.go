package compare

import (
	"strings"
	"testing"

	"github.com/dshills/wcagaudit/internal/catalog"
	"github.com/dshills/wcagaudit/internal/reconcile"
	"github.com/dshills/wcagaudit/internal/render"
	"github.com/dshills/wcagaudit/internal/schema"
)

func audited(vs ...schema.Verdict) *schema.ReportData {
	r := catalog.Load()
	r.Meta = schema.Meta{Client: "Acme", Product: "Portal", Date: "2026-10-16", Researchers: "J. Doe"}
	return reconcile.Reconcile(r, &schema.Evaluation{Results: vs})
}

func TestCompare_NoChanges(t *testing.T) {
	a := audited(schema.Verdict{ID: "1.1.1", Result: schema.CodeFail})
	b := audited(schema.Verdict{ID: "1.1.1", Result: schema.CodeFail})
	if got := Compare(a, b); len(got) != 0 {
		t.Errorf("expected no changes, got %v", got)
	}
}

func TestCompare_VerdictChanges(t *testing.T) {
	a := audited(
		schema.Verdict{ID: "1.1.1", Result: schema.CodeFail},
		schema.Verdict{ID: "2.4.2", Result: schema.CodePass},
	)
	b := audited(
		schema.Verdict{ID: "1.1.1", Result: schema.CodePass},
		schema.Verdict{ID: "2.4.2", Result: schema.CodeFail},
	)
	got := Compare(a, b)
	if len(got) != 2 {
		t.Fatalf("expected 2 changes, got %d: %v", len(got), got)
	}
	if got[0].ID != "1.1.1" || got[0].Before != schema.ResultFail || got[0].After != schema.ResultPass {
		t.Errorf("unexpected first change: %+v", got[0])
	}
	if got[0].Regressed() {
		t.Error("fail -> pass is not a regression")
	}
	if !got[1].Regressed() {
		t.Error("pass -> fail is a regression")
	}
	if s := got[1].String(); s != "2.4.2 Paginatitel (A): Voldoet -> Voldoet niet" {
		t.Errorf("String() = %q", s)
	}
}

func TestCompare_MissingCriteria(t *testing.T) {
	a := audited()
	b := audited()
	a.Principles[3].Criteria = a.Principles[3].Criteria[:1]
	b.Principles[0].Criteria = b.Principles[0].Criteria[1:]

	got := Compare(a, b)
	var added, removed int
	for _, c := range got {
		switch {
		case c.Before == "":
			added++
		case c.After == "":
			removed++
			if c.ID != "1.1.1" {
				t.Errorf("unexpected removed criterion %s", c.ID)
			}
		}
	}
	if added != 2 || removed != 1 {
		t.Errorf("added=%d removed=%d, want 2 and 1", added, removed)
	}
}

func TestCompare_Nil(t *testing.T) {
	if got := Compare(nil, nil); len(got) != 0 {
		t.Errorf("expected no changes, got %v", got)
	}
	if got := Compare(nil, audited()); len(got) != catalog.Count() {
		t.Errorf("expected every criterion as added, got %d", len(got))
	}
}

func TestPatch_Identical(t *testing.T) {
	out, err := Patch(audited(), audited())
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty patch, got %q", out)
	}
}

func TestPatch_RoundTrip(t *testing.T) {
	a := audited(schema.Verdict{ID: "1.1.1", Result: schema.CodeFail})
	b := audited(schema.Verdict{ID: "1.1.1", Result: schema.CodePass})
	out, err := Patch(a, b)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if !strings.HasPrefix(out, "@@ ") {
		t.Fatalf("expected diff-match-patch hunks, got %q", out)
	}

	md, _ := render.NewRenderer("md")
	before, _ := md.Render(a)
	after, _ := md.Render(b)
	got, ok, err := Apply(out, string(before))
	if err != nil || !ok {
		t.Fatalf("Apply: ok=%v err=%v", ok, err)
	}
	if got != normalize(string(after)) {
		t.Error("applying the patch did not reproduce the second export")
	}
}

func TestApply_InvalidPatch(t *testing.T) {
	if _, _, err := Apply("@@ not a patch", "x"); err == nil {
		t.Error("expected parse error")
	}
}

func TestNormalize(t *testing.T) {
	if got := normalize("a  \r\nb\t\n"); got != "a\nb\n" {
		t.Errorf("normalize = %q", got)
	}
}
