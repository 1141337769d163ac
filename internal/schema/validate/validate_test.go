package validate

import (
	"strings"
	"testing"

	"github.com/dshills/wcagaudit/internal/catalog"
	"github.com/dshills/wcagaudit/internal/reconcile"
	"github.com/dshills/wcagaudit/internal/schema"
	"github.com/dshills/wcagaudit/internal/stats"
)

const validJSON = `{
  "conclusion": "Enkele problemen gevonden.",
  "feedback": "Voeg alt-teksten toe.",
  "criteria_results": [
    {
      "id": "1.1.1",
      "result": "FAIL",
      "findings": [
        {
          "location": "img.logo",
          "observation": "Geen alt-attribuut",
          "problemDescription": "Schermlezers lezen de bestandsnaam voor",
          "impact": "Blinde gebruikers missen informatie",
          "advice": "Voeg alt=\"Logo\" toe"
        }
      ]
    },
    {"id": "1.2.1", "result": "NOT_APPLICABLE", "reason": "Geen media in de snippet."}
  ]
}`

func TestParse_ValidEvaluation(t *testing.T) {
	ev, err := Parse(validJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(ev.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ev.Results))
	}
	if ev.Results[0].Result != schema.CodeFail {
		t.Errorf("result = %q", ev.Results[0].Result)
	}
	if len(ev.Results[0].Findings) != 1 || ev.Results[0].Findings[0].ProblemDescription == "" {
		t.Errorf("findings not decoded: %+v", ev.Results[0].Findings)
	}
	if ev.Results[1].Reason != "Geen media in de snippet." {
		t.Errorf("reason = %q", ev.Results[1].Reason)
	}
}

func TestParse_StripsFences(t *testing.T) {
	fenced := "```json\n" + validJSON + "\n```"
	ev, err := Parse(fenced)
	if err != nil {
		t.Fatalf("Parse with fences: %v", err)
	}
	if ev.Conclusion != "Enkele problemen gevonden." {
		t.Errorf("conclusion = %q", ev.Conclusion)
	}
}

func TestParse_EmptyResults(t *testing.T) {
	ev, err := Parse(`{"conclusion":"","feedback":"","criteria_results":[]}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(ev.Results) != 0 {
		t.Errorf("expected no results, got %d", len(ev.Results))
	}
}

func TestParse_UnknownCodeAccepted(t *testing.T) {
	ev, err := Parse(`{"criteria_results":[{"id":"1.4.3","result":"MAYBE"}]}`)
	if err != nil {
		t.Fatalf("unknown result code should not be a parse error: %v", err)
	}
	if ev.Results[0].Result != "MAYBE" {
		t.Errorf("raw code not preserved: %q", ev.Results[0].Result)
	}
}

func TestParse_NullOptionalFields(t *testing.T) {
	_, err := Parse(`{"conclusion":null,"criteria_results":[{"id":"1.4.3","result":null,"reason":null,"findings":null}]}`)
	if err != nil {
		t.Fatalf("null optional fields should be accepted: %v", err)
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	if _, err := Parse("{not valid json}"); err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}

func TestParse_MissingResultsArray(t *testing.T) {
	_, err := Parse(`{"conclusion":"ok"}`)
	if err == nil {
		t.Fatal("expected error for missing criteria_results")
	}
	if !strings.Contains(err.Error(), "schema") {
		t.Errorf("expected schema error, got %v", err)
	}
}

func TestParse_WrongShape(t *testing.T) {
	cases := map[string]string{
		"results not array": `{"criteria_results":{"id":"1.1.1"}}`,
		"missing id":        `{"criteria_results":[{"result":"PASS"}]}`,
		"numeric id":        `{"criteria_results":[{"id":111,"result":"PASS"}]}`,
		"findings string":   `{"criteria_results":[{"id":"1.1.1","findings":"geen"}]}`,
		"top level array":   `[{"id":"1.1.1"}]`,
	}
	for name, raw := range cases {
		if _, err := Parse(raw); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}

func TestParse_BlankIDIsTolerated(t *testing.T) {
	ev, err := Parse(`{"criteria_results":[{"id":"1.4.3","result":"FAIL"},{"id":"","result":"PASS"},{"id":"  ","result":"PASS"}]}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(ev.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(ev.Results))
	}

	report := reconcile.Reconcile(catalog.Load(), ev)
	counts := stats.Compute(report).All
	if got := counts.Of(schema.ResultFail); got != 1 {
		t.Errorf("fail count = %d, want 1", got)
	}
	if got := counts.Of(schema.ResultPass); got != 0 {
		t.Errorf("pass count = %d, want 0 (blank ids must not match a criterion)", got)
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct{ in, want string }{
		{"```json\n{}\n```", "{}"},
		{"```\n{}\n```", "{}"},
		{"  {}  ", "{}"},
	}
	for _, c := range cases {
		if got := stripFences(c.in); got != c.want {
			t.Errorf("stripFences(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
