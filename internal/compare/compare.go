// Package compare reports what changed between two audits of the same
// product: verdict changes per criterion and a textual patch between their
// Markdown exports.
package compare

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/wcagaudit/internal/render"
	"github.com/dshills/wcagaudit/internal/schema"
)

// Change is one criterion whose verdict differs between two reports.
// A criterion present in only one report has the missing side set to "".
type Change struct {
	ID     string
	Name   string
	Level  schema.Level
	Before schema.Result
	After  schema.Result
}

// String formats the change for terminal output.
func (c Change) String() string {
	return fmt.Sprintf("%s %s (%s): %s -> %s", c.ID, c.Name, c.Level, label(c.Before), label(c.After))
}

// Regressed reports whether the criterion went from anything else to Fail.
func (c Change) Regressed() bool {
	return c.After == schema.ResultFail && c.Before != schema.ResultFail
}

func label(r schema.Result) string {
	if r == "" {
		return "-"
	}
	return r.Label()
}

// Compare returns the criteria whose result differs between a and b, in
// b's display order followed by criteria only present in a.
func Compare(a, b *schema.ReportData) []Change {
	before := index(a)
	var out []Change
	seen := map[string]bool{}
	for _, c := range criteria(b) {
		seen[c.ID] = true
		prev, ok := before[c.ID]
		if ok && prev.Result == c.Result {
			continue
		}
		ch := Change{ID: c.ID, Name: c.Name, Level: c.Level, After: c.Result}
		if ok {
			ch.Before = prev.Result
		}
		out = append(out, ch)
	}
	for _, c := range criteria(a) {
		if !seen[c.ID] {
			out = append(out, Change{ID: c.ID, Name: c.Name, Level: c.Level, Before: c.Result})
		}
	}
	return out
}

// Patch renders both reports to Markdown and returns a diff-match-patch
// patch that turns a's export into b's. Identical exports yield "".
func Patch(a, b *schema.ReportData) (string, error) {
	md, err := render.NewRenderer("md")
	if err != nil {
		return "", err
	}
	before, err := md.Render(a)
	if err != nil {
		return "", fmt.Errorf("rendering first report: %w", err)
	}
	after, err := md.Render(b)
	if err != nil {
		return "", fmt.Errorf("rendering second report: %w", err)
	}

	src, dst := normalize(string(before)), normalize(string(after))
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(src, dst, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.PatchToText(dmp.PatchMake(src, diffs)), nil
}

// Apply applies a patch produced by Patch to text and reports whether every
// hunk applied cleanly.
func Apply(patch, text string) (string, bool, error) {
	dmp := diffmatchpatch.New()
	patches, err := dmp.PatchFromText(patch)
	if err != nil {
		return "", false, fmt.Errorf("parsing patch: %w", err)
	}
	out, applied := dmp.PatchApply(patches, normalize(text))
	for _, ok := range applied {
		if !ok {
			return out, false, nil
		}
	}
	return out, true, nil
}

func criteria(r *schema.ReportData) []schema.Criterion {
	if r == nil {
		return nil
	}
	var out []schema.Criterion
	for _, p := range r.Principles {
		out = append(out, p.Criteria...)
	}
	return out
}

func index(r *schema.ReportData) map[string]schema.Criterion {
	m := map[string]schema.Criterion{}
	for _, c := range criteria(r) {
		m[c.ID] = c
	}
	return m
}

// normalize trims trailing whitespace from each line and converts CRLF to LF.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
