package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/dshills/wcagaudit/internal/schema"
)

// htmlRenderer renders either a standalone document with inline styling or
// the fragment embedded in the web view.
type htmlRenderer struct {
	standalone bool
}

const stylesheet = `
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; background: #f4f4f4; }
.report { max-width: 900px; margin: 0 auto; background: #fff; box-shadow: 0 0 10px rgba(0,0,0,0.1); }
.page { padding: 40px; border-bottom: 1px solid #eee; position: relative; }
.cover { background: linear-gradient(135deg, #2e0b1f 0%, #a61e38 100%); color: #fff; min-height: 600px; display: flex; flex-direction: column; justify-content: space-between; }
.cover h1 { font-size: 3rem; font-family: Georgia, serif; margin: 80px 0 20px; }
h2 { color: #a61e38; border-bottom: 2px solid #eee; padding-bottom: 10px; margin-top: 30px; }
.cover h2 { color: #fff; border: none; }
.principle-header { background: #eee6e9; color: #2e0b1f; padding: 15px; margin-top: 40px; border-radius: 4px; }
.principle-number { color: #a61e38; font-family: Georgia, serif; font-style: italic; font-size: 2rem; }
.meta-block { border-top: 1px solid rgba(255,255,255,0.3); padding-top: 20px; }
blockquote { border-left: 4px solid #a61e38; margin: 20px 0; padding: 5px 15px; font-weight: bold; font-style: italic; color: #a61e38; }
table { width: 100%; border-collapse: collapse; margin: 20px 0; font-size: 0.9rem; }
th, td { padding: 10px; border: 1px solid #ddd; text-align: left; vertical-align: top; }
th { background-color: #f8f8f8; }
.status-pass { color: #166534; font-weight: bold; }
.status-fail { color: #dc2626; font-weight: bold; }
.status-na { color: #9ca3af; }
.status-nc { color: #d97706; }
.status-oos { color: #6b7280; font-style: italic; }
.muted { color: #9ca3af; }
.badge { font-size: 0.7em; background: #eee; padding: 2px 6px; border-radius: 4px; margin-right: 4px; text-transform: uppercase; }
.card { background: #fff; border-left: 5px solid #ddd; padding: 20px; margin-bottom: 20px; box-shadow: 0 2px 4px rgba(0,0,0,0.05); }
.card.fail { border-left-color: #dc2626; background: #fef2f2; }
.card.pass { border-left-color: #166534; background: #f0fdf4; }
.card.na, .card.oos { border-left-color: #9ca3af; background: #f9fafb; }
.card.nc { border-left-color: #d97706; background: #fff7ed; }
.finding { background: #fff; padding: 15px; margin-top: 10px; border: 1px solid #eee; }
.reason-block { margin-top: 10px; font-style: italic; color: #555; }
.placeholder { color: #6b7280; font-style: italic; }
.pre-line { white-space: pre-line; }
@media print {
  body { background: #fff; }
  .report { box-shadow: none; max-width: 100%; }
  .page { page-break-after: always; border: none; }
}
`

// Stylesheet returns the CSS used by both HTML formats, for pages that embed
// the view fragment.
func Stylesheet() template.CSS {
	return template.CSS(stylesheet)
}

var htmlTemplate = template.Must(template.New("document").Funcs(template.FuncMap{
	"pad2": func(n int) string { return fmt.Sprintf("%02d", n) },
	"css":  Stylesheet,
}).Parse(`<!DOCTYPE html>
<html lang="nl">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>WCAG Rapport - {{ .Meta.Product }}</title>
<style>{{ css }}</style>
</head>
<body>
{{ template "report" . }}
</body>
</html>
{{ define "report" -}}
<article class="report">
<section class="page cover">
  <h1>Een check<br>op WCAG<br>richtlijnen<br>bij {{ .Meta.Product }}</h1>
  <div class="meta-block">
    <p><strong>NORM:</strong> WCAG {{ .Version }}, niveau AA</p>
    <p>{{ .Meta.Researchers }}<br>{{ .Meta.Client }}<br>{{ .Meta.Date }}</p>
  </div>
</section>

<section class="page" id="inleiding">
  <h2>Inleiding</h2>
  <p>{{ .Text.Intro }}</p>
  <blockquote>{{ .Text.Quote }}</blockquote>
  <h3>Vier principes</h3>
  <ol>
  {{- range .Principles }}
    <li><strong>{{ .Name }}:</strong> {{ .Description }}</li>
  {{- end }}
  </ol>
  <h3>Drie niveaus</h3>
  <p>{{ .Text.Levels }}</p>
  <h3>Versie</h3>
  <p>De huidige WCAG versie ({{ .Version }}) is het uitgangspunt in dit document.</p>
</section>

<section class="page" id="onderzoek">
  <h2>Onderzoek</h2>
  <h3>Scope</h3>
  <p>WCAG versie: {{ .Version }}<br>Niveau: AA<br>
  <strong>Onderwerp:</strong> {{ .Meta.Product }}<br>
  <strong>Versie:</strong> {{ .Meta.Version }}</p>
  {{- if .OutScope }}
  <p><strong>Buiten scope:</strong></p>
  <ul>{{ range .OutScope }}<li>{{ . }}</li>{{ end }}</ul>
  {{- end }}
  <h3>Steekproef</h3>
  <ul>{{ range .Sample }}<li>{{ . }}</li>{{ end }}</ul>
  <h3>Disclaimer</h3>
  <p>{{ .Text.Disclaimer }}</p>
</section>

<section class="page" id="samenvatting">
  <h2>Samenvatting resultaten</h2>
  <p><strong>Conclusie:</strong> {{ .Conclusion }}</p>
  <h3>Scores</h3>
  <table class="level-stats">
    <thead>
      <tr><th>Niveau</th><th>Voldoet</th><th>Voldoet niet</th><th>Nog niet onderzocht</th><th>Niet relevant</th><th>Buiten scope</th><th>Totaal</th></tr>
    </thead>
    <tbody>
    {{- range .Levels }}
      <tr data-level="{{ .Level }}"><td>Niveau {{ .Level }}</td><td class="status-pass">{{ .Counts.Pass }}</td><td class="status-fail">{{ .Counts.Fail }}</td><td class="status-nc">{{ .Counts.NotChecked }}</td><td class="status-na">{{ .Counts.NotApplicable }}</td><td class="status-oos">{{ .Counts.OutOfScope }}</td><td>{{ .Counts.Total }}</td></tr>
    {{- end }}
      <tr class="muted"><td>Niveau AAA</td><td>-</td><td>-</td><td>-</td><td>-</td><td>-</td><td>-</td></tr>
      <tr data-level="total"><td><strong>Totaal</strong></td><td class="status-pass">{{ .Total.Pass }}</td><td class="status-fail">{{ .Total.Fail }}</td><td class="status-nc">{{ .Total.NotChecked }}</td><td class="status-na">{{ .Total.NotApplicable }}</td><td class="status-oos">{{ .Total.OutOfScope }}</td><td>{{ .Total.Total }}</td></tr>
    </tbody>
  </table>
  <table class="norm-scores">
    <thead><tr><th>Norm</th><th>Voldoet</th><th>Totaal</th><th>Score</th></tr></thead>
    <tbody>
    {{- range .Scores }}
      <tr><td>{{ .Norm }}</td><td>{{ .Pass }}</td><td>{{ .Total }}</td><td>{{ .Percent }}%</td></tr>
    {{- end }}
    </tbody>
  </table>
  {{- if .Feedback }}
  <h3>Aanbevelingen</h3>
  <p class="pre-line">{{ .Feedback }}</p>
  {{- end }}
</section>
{{ range .LevelTables }}
<section class="page" id="niveau-{{ .Level }}">
  <h2>Resultaten Niveau {{ .Level }}</h2>
  <table>
    <thead><tr><th>Richtlijn</th><th>Disciplines</th><th>Niveau</th><th>Resultaat</th></tr></thead>
    <tbody>
    {{- range .Criteria }}
      <tr><td><strong>{{ .ID }}</strong> {{ .Name }}</td><td>{{ .Disciplines }}</td><td>{{ .Level }}</td><td class="status-{{ .Result.Class }}">{{ .Result.Label }}</td></tr>
    {{- end }}
    </tbody>
  </table>
</section>
{{ end }}
<section class="page" id="bevindingen">
  <h2>Bevindingen Details</h2>
  {{- range .Principles }}
  <div class="principle-header">
    <span class="principle-number">{{ pad2 .Number }}</span>
    <h3>Principe {{ .Number }}: {{ .Name }}</h3>
    <p>{{ .Description }}</p>
  </div>
  {{- range .Criteria }}
  <div class="card {{ .Result.Class }}" id="sc-{{ .ID }}">
    <p><span class="badge">Niveau {{ .Level }}</span><span class="badge">{{ .Disciplines }}</span></p>
    <h3>{{ .ID }} {{ .Name }}</h3>
    <p>{{ .Description }}</p>
    {{- if .URL }}
    <p><a href="{{ .URL }}"{{ if not $.Standalone }} target="_blank" rel="noreferrer"{{ end }}>W3C Understanding Doc (EN)</a></p>
    {{- end }}
    <p><strong>Resultaat:</strong> <span class="status-{{ .Result.Class }}">{{ .Result.Label }}</span></p>
    {{- if .Reason }}
    <div class="reason-block"><strong>Toelichting:</strong> {{ .Reason }}</div>
    {{- else if .Explanation }}
    <div class="reason-block">{{ .Explanation }}</div>
    {{- end }}
    {{- if .ShowFindings }}
    <h4>Bevindingen</h4>
    {{- range .Findings }}
    <div class="finding">
      <p><strong>Locatie:</strong> {{ .Location }}</p>
      <p><strong>Probleem:</strong> {{ .ProblemDescription }}</p>
      <p><strong>Observatie:</strong> {{ .Observation }}</p>
      <p><strong>Impact:</strong> {{ .Impact }}</p>
      <p><em>Advies: {{ .Advice }}</em></p>
    </div>
    {{- else }}
    <p class="placeholder">{{ $.Text.Placeholder }}</p>
    {{- end }}
    {{- end }}
  </div>
  {{- end }}
  {{- end }}
</section>
</article>
{{- end }}`))

func (r *htmlRenderer) Render(report *schema.ReportData) ([]byte, error) {
	v := newReport(report)
	v.Standalone = r.standalone
	name := "report"
	if r.standalone {
		name = "document"
	}
	var buf bytes.Buffer
	if err := htmlTemplate.ExecuteTemplate(&buf, name, v); err != nil {
		return nil, fmt.Errorf("rendering html: %w", err)
	}
	return buf.Bytes(), nil
}
