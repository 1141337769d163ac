package schema

import "testing"

func TestResultFromCode_KnownCodes(t *testing.T) {
	cases := map[Code]Result{
		CodePass:          ResultPass,
		CodeFail:          ResultFail,
		CodeNotApplicable: ResultNotApplicable,
		CodeOutOfScope:    ResultOutOfScope,
		CodeNotChecked:    ResultNotChecked,
	}
	for code, want := range cases {
		if got := ResultFromCode(code); got != want {
			t.Errorf("ResultFromCode(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestResultFromCode_Normalizes(t *testing.T) {
	if got := ResultFromCode(" fail\n"); got != ResultFail {
		t.Errorf("lower-case padded code: got %q, want fail", got)
	}
	if got := ResultFromCode("NA"); got != ResultNotApplicable {
		t.Errorf("NA alias: got %q, want not_applicable", got)
	}
}

func TestResultFromCode_UnknownDefaultsToNotChecked(t *testing.T) {
	for _, c := range []Code{"", "MAYBE", "Voldoet", "PASSED", "null"} {
		if got := ResultFromCode(c); got != ResultNotChecked {
			t.Errorf("ResultFromCode(%q) = %q, want not_checked", c, got)
		}
	}
}

func TestResult_CodeRoundTrip(t *testing.T) {
	for _, r := range Results {
		if got := ResultFromCode(r.Code()); got != r {
			t.Errorf("round trip of %q gave %q", r, got)
		}
	}
	if Result("bogus").Code() != CodeNotChecked {
		t.Error("unknown result should encode as NOT_CHECKED")
	}
}

func TestResult_LabelsAreDistinct(t *testing.T) {
	seen := map[string]Result{}
	for _, r := range Results {
		l := r.Label()
		if prev, ok := seen[l]; ok {
			t.Errorf("label %q shared by %q and %q", l, prev, r)
		}
		seen[l] = r
	}
	if len(seen) != 5 {
		t.Errorf("expected 5 labels, got %d", len(seen))
	}
}

func TestResult_HasFindings(t *testing.T) {
	for _, r := range Results {
		want := r == ResultPass || r == ResultFail
		if r.HasFindings() != want {
			t.Errorf("%q.HasFindings() = %v, want %v", r, r.HasFindings(), want)
		}
	}
}
