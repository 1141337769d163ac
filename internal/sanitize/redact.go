package sanitize

import (
	"regexp"
	"strings"
)

const redacted = "[VERWIJDERD]"

// pemPattern matches PEM key blocks across multiple lines.
var pemPattern = regexp.MustCompile(`(?s)-----BEGIN [A-Z ]+KEY-----.*?-----END [A-Z ]+KEY-----`)

// secretPatterns holds single-line secret regexes in priority order.
var secretPatterns = []*regexp.Regexp{
	// AWS access key IDs
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	// Google API keys, often embedded in maps/analytics snippets
	regexp.MustCompile(`AIza[0-9A-Za-z\-_]{35}`),
	// OpenAI / Anthropic secret keys
	regexp.MustCompile(`(?:^|\s|["'=])sk-[a-zA-Z0-9\-_]{20,}`),
	// GitHub tokens
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9]{36,}`),
	// JWT tokens (three base64url segments)
	regexp.MustCompile(`eyJ[A-Za-z0-9\-_]+\.[A-Za-z0-9\-_]+\.[A-Za-z0-9\-_]+`),
	// Bearer tokens, minimum 20 chars
	regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9\-._~+/]{20,}=*`),
	// Inline password assignments in scripts or config blobs
	regexp.MustCompile(`(?i)password\s*[:=]\s*[^\s"'<>]+`),
}

// attrPattern matches value attributes of hidden and password inputs, which
// regularly carry CSRF tokens or prefilled credentials.
var attrPattern = regexp.MustCompile(`(?i)(<input\b[^>]*\btype\s*=\s*["']?(?:hidden|password)["']?[^>]*\bvalue\s*=\s*)("[^"]*"|'[^']*'|[^\s>]+)`)

// Redact replaces known secret patterns in input with a fixed marker.
// The number of newlines in the output equals the number in the input.
func Redact(input string) string {
	input = pemPattern.ReplaceAllStringFunc(input, func(match string) string {
		lines := strings.Split(match, "\n")
		for i := range lines {
			lines[i] = redacted
		}
		return strings.Join(lines, "\n")
	})

	input = attrPattern.ReplaceAllString(input, `${1}"`+redacted+`"`)

	for _, re := range secretPatterns {
		input = re.ReplaceAllString(input, redacted)
	}
	return input
}
