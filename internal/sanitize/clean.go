package sanitize

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// dropped lists elements whose whole subtree is removed.
var dropped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
}

// Clean removes comments and script/style content from an HTML fragment.
// Everything else is kept byte-for-byte so the evaluator sees the markup
// as the user pasted it. Malformed input is never rejected.
func Clean(src string) string {
	z := html.NewTokenizer(strings.NewReader(src))
	var buf bytes.Buffer
	skip := atom.Atom(0)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() != io.EOF {
				// Tokenizer gave up; keep what was cleaned so far.
				buf.Write(z.Raw())
			}
			break
		}
		name, _ := z.TagName()
		a := atom.Lookup(name)
		if skip != 0 {
			if tt == html.EndTagToken && a == skip {
				skip = 0
			}
			continue
		}
		switch tt {
		case html.CommentToken:
			continue
		case html.StartTagToken:
			if dropped[a] {
				skip = a
				continue
			}
		case html.EndTagToken, html.SelfClosingTagToken:
			if dropped[a] {
				continue
			}
		}
		buf.Write(z.Raw())
	}
	return collapseBlankLines(buf.String())
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	blank := false
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			if blank {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, strings.TrimRight(l, " \t\r"))
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
