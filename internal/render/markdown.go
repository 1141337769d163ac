package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/dshills/wcagaudit/internal/schema"
)

type markdownRenderer struct{}

var mdFuncs = template.FuncMap{
	"cell":   cell,
	"inline": inline,
}

var mdTemplate = template.Must(template.New("report").Funcs(mdFuncs).Parse(`# WCAG {{ .Version }} onderzoek niveau AA

**Onderwerp:** {{ inline .Meta.Product }}  
**Opdrachtgever:** {{ inline .Meta.Client }}  
**Datum:** {{ inline .Meta.Date }}  
**Versie:** {{ inline .Meta.Version }}  
**Onderzoeker:** {{ inline .Meta.Researchers }}

## Inleiding

{{ .Text.Intro }}

> {{ .Text.Quote }}

{{ .Text.Levels }}

### Scope

- WCAG versie: {{ .Version }}
- Niveau: AA
{{- range .InScope }}
- {{ inline . }}
{{- end }}
{{ if .OutScope }}
**Buiten scope:**
{{ range .OutScope }}
- {{ inline . }}
{{- end }}
{{ end }}
## Samenvatting

**Conclusie:** {{ if .Conclusion }}{{ .Conclusion }}{{ else }}N/A{{ end }}

**Feedback:**
{{ if .Feedback }}{{ .Feedback }}{{ else }}N/A{{ end }}

### Scores

| Norm | Voldoet | Totaal | Score |
|---|---|---|---|
{{- range .Scores }}
| {{ .Norm }} | {{ .Pass }} | {{ .Total }} | {{ .Percent }}% |
{{- end }}

### Scores per niveau

| Niveau | Voldoet | Voldoet niet | Nog niet onderzocht | Niet relevant | Buiten scope | Totaal |
|---|---|---|---|---|---|---|
{{- range .Levels }}
| Niveau {{ .Level }} | {{ .Counts.Pass }} | {{ .Counts.Fail }} | {{ .Counts.NotChecked }} | {{ .Counts.NotApplicable }} | {{ .Counts.OutOfScope }} | {{ .Counts.Total }} |
{{- end }}
| Niveau AAA | - | - | - | - | - | - |
| **Totaal** | {{ .Total.Pass }} | {{ .Total.Fail }} | {{ .Total.NotChecked }} | {{ .Total.NotApplicable }} | {{ .Total.OutOfScope }} | {{ .Total.Total }} |

## Beoordelingsoverzicht

| Criterium | Omschrijving | Niveau | Resultaat |
|---|---|---|---|
{{- range .Criteria }}
| {{ .ID }} | {{ cell .Name }} | {{ .Level }} | {{ .Result.Markdown }} |
{{- end }}

## Bevindingen
{{ range .Principles }}
### Principe {{ .Number }}: {{ inline .Name }}
{{ if .Description }}
*{{ inline .Description }}*
{{ end }}
{{- if not .Reported }}
{{ $.Text.NoFailures }}
{{ else }}
{{- range .Reported }}
#### Succescriterium {{ .ID }}: {{ inline .Name }} ({{ .Level }})

**Resultaat:** {{ .Result.Markdown }}
{{ if .Reason }}
**Toelichting:** {{ inline .Reason }}
{{ end }}
{{ if .Findings -}}
{{ range .Findings -}}
- **Locatie:** {{ inline .Location }}  
  **Probleem:** {{ inline .ProblemDescription }}  
  **Observatie:** {{ inline .Observation }}  
  **Impact:** {{ inline .Impact }}  
  **Advies:** {{ inline .Advice }}
{{ end }}
{{- else -}}
*{{ $.Text.Placeholder }}*
{{ end }}
{{- end }}
{{- end }}
{{- end }}
## Bijlage: Steekproef
{{ range .Sample }}
- {{ inline . }}
{{- end }}
`))

func (r *markdownRenderer) Render(report *schema.ReportData) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, newReport(report)); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// inline folds s onto one line.
func inline(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cell makes s safe inside a Markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(inline(s), "|", `\|`)
}
