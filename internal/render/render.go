package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/wcagaudit/internal/schema"
)

// Renderer formats a reconciled report into bytes. Renderers never modify
// the report and tolerate nil or partially filled reports.
type Renderer interface {
	Render(report *schema.ReportData) ([]byte, error)
}

// Formats lists the supported format names.
var Formats = []string{"view", "html", "md", "json"}

// NewRenderer returns a Renderer for the given format string.
// Supported formats: "view" (page fragment), "html" (standalone document),
// "md" and "json".
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "view":
		return &htmlRenderer{standalone: false}, nil
	case "html":
		return &htmlRenderer{standalone: true}, nil
	case "md":
		return &markdownRenderer{}, nil
	case "json":
		return &jsonRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are %s", format, strings.Join(Formats, ", "))
	}
}

// ContentType returns the MIME type of a rendered format.
func ContentType(format string) string {
	switch format {
	case "html", "view":
		return "text/html; charset=utf-8"
	case "md":
		return "text/markdown; charset=utf-8"
	case "json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// Filename returns the download name for a report, e.g.
// "WCAG-Rapport-2026-10-16.html". Whitespace and path separators in the date
// become hyphens; an empty date becomes "zonder-datum".
func Filename(report *schema.ReportData, ext string) string {
	date := ""
	if report != nil {
		date = strings.TrimSpace(report.Meta.Date)
	}
	if date == "" {
		date = "zonder-datum"
	}
	date = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '/' || r == '\\' {
			return '-'
		}
		return r
	}, date)
	return "WCAG-Rapport-" + date + "." + strings.TrimPrefix(ext, ".")
}
