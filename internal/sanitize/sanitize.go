// Package sanitize prepares pasted HTML before it is sent to the evaluator:
// markup that carries no accessibility signal is dropped, secrets are
// redacted and the result is bounded to a safe size.
package sanitize

import (
	"fmt"
	"unicode/utf8"
)

// TruncationMarker is inserted once at the point where oversized input was cut.
const TruncationMarker = "<!-- [... INVOER AFGEKAPT: de rest van de HTML is niet beoordeeld ...] -->"

// SizeLimitNotice reports that the input was truncated. It is informational:
// the audit still runs on the shortened fragment.
type SizeLimitNotice struct {
	OriginalChars int
	KeptChars     int
}

// Message is the user-facing description of the truncation.
func (n SizeLimitNotice) Message() string {
	return fmt.Sprintf("De HTML is ingekort van %d naar %d tekens; het rapport beoordeelt alleen het eerste deel.",
		n.OriginalChars, n.KeptChars)
}

// Prepare cleans, redacts and bounds html. maxChars <= 0 disables the bound.
// A non-nil notice is returned when the input had to be truncated.
func Prepare(html string, maxChars int) (string, *SizeLimitNotice) {
	out := Redact(Clean(html))
	return Truncate(out, maxChars)
}

// Truncate cuts s to at most maxChars runes, appending TruncationMarker.
// The marker itself is not counted against the bound.
func Truncate(s string, maxChars int) (string, *SizeLimitNotice) {
	n := utf8.RuneCountInString(s)
	if maxChars <= 0 || n <= maxChars {
		return s, nil
	}
	runes := []rune(s)
	kept := string(runes[:maxChars])
	return kept + "\n" + TruncationMarker, &SizeLimitNotice{OriginalChars: n, KeptChars: maxChars}
}
