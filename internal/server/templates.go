package server

import "html/template"

var pageTemplate = template.Must(template.New("server").Parse(basePage + previewPage))

const appStyle = `
.app-header { background: #a61e38; color: #fff; padding: 16px 24px; display: flex; justify-content: space-between; align-items: center; flex-wrap: wrap; gap: 12px; }
.app-header h1 { font-size: 1.25rem; margin: 0; }
.app-header form { display: inline; }
.actions a, .actions button { background: #fff; color: #a61e38; border: 0; border-radius: 4px; padding: 8px 12px; font: inherit; text-decoration: none; cursor: pointer; margin-left: 6px; }
.app-main { max-width: 900px; margin: 24px auto; padding: 0 16px; }
.app-form { background: #fff; padding: 24px; box-shadow: 0 0 10px rgba(0,0,0,0.1); margin-bottom: 24px; }
.app-form .grid { display: grid; grid-template-columns: 1fr 1fr; gap: 12px 24px; }
.app-form label { display: block; font-weight: bold; margin-top: 12px; }
.app-form input, .app-form textarea { width: 100%; box-sizing: border-box; padding: 8px; border: 1px solid #ccc; border-radius: 4px; font: inherit; }
.app-form textarea.code { font-family: monospace; min-height: 240px; }
.app-form button { margin-top: 16px; background: #a61e38; color: #fff; border: 0; border-radius: 4px; padding: 10px 20px; font: inherit; cursor: pointer; }
.app-form button[disabled] { opacity: 0.6; cursor: wait; }
.alert { padding: 12px 16px; border-radius: 4px; margin: 12px 0; }
.alert.error { background: #fef2f2; color: #991b1b; border: 1px solid #fecaca; }
.alert.notice { background: #fff7ed; color: #9a3412; border: 1px solid #fed7aa; }
.skip-link { position: absolute; left: -9999px; }
.skip-link:focus { left: 8px; top: 8px; background: #fff; padding: 8px; }
`

const basePage = `{{ define "page" }}<!DOCTYPE html>
<html lang="nl">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>WCAG Rapport Generator</title>
<style>{{ .CSS }}` + appStyle + `</style>
<script src="/static/app.js" defer></script>
</head>
<body>
<a href="#invoer" class="skip-link">Naar het formulier</a>
<header class="app-header">
  <h1>WCAG 2.2 Rapport Generator</h1>
  {{- if .HasReport }}
  <nav class="actions" aria-label="Rapportacties">
    <a href="/download/html">Download HTML</a>
    <a href="/download/md">Download Markdown</a>
    <button type="button" data-copy-src="/report.md">Kopieer Markdown</button>
    <a href="/preview">Voorbeeld Markdown</a>
    <form method="post" action="/new"><button type="submit">Nieuw rapport</button></form>
  </nav>
  {{- end }}
</header>
<main class="app-main">
  {{- if .Error }}
  <div class="alert error" role="alert">{{ .Error }}</div>
  {{- end }}
  {{- if .State.Notice }}
  <div class="alert notice" role="status">{{ .State.Notice }}</div>
  {{- end }}
  {{- if not .HasReport }}
  <form class="app-form" id="invoer" method="post" action="/analyze" data-busy-label="Bezig met analyseren...">
    <div class="grid">
      <div><label for="client">Opdrachtgever *</label><input id="client" name="client" value="{{ .State.Meta.Client }}" required></div>
      <div><label for="product">Onderwerp *</label><input id="product" name="product" value="{{ .State.Meta.Product }}" required></div>
      <div><label for="version">Versie</label><input id="version" name="version" value="{{ .State.Meta.Version }}"></div>
      <div><label for="date">Datum</label><input id="date" name="date" type="date" value="{{ .State.Meta.Date }}"></div>
      <div><label for="researchers">Onderzoeker(s) *</label><input id="researchers" name="researchers" value="{{ .State.Meta.Researchers }}" required></div>
    </div>
    <label for="in_scope">Steekproef (een pagina of onderdeel per regel)</label>
    <textarea id="in_scope" name="in_scope" rows="3">{{ .State.InScope }}</textarea>
    <label for="out_scope">Buiten scope (een onderdeel per regel)</label>
    <textarea id="out_scope" name="out_scope" rows="3">{{ .State.OutScope }}</textarea>
    <label for="html">HTML code *</label>
    <textarea id="html" name="html" class="code" spellcheck="false">{{ .State.HTML }}</textarea>
    <button type="submit">Analyseer</button>
  </form>
  {{- else }}
  <div id="rapport">{{ .Report }}</div>
  {{- end }}
</main>
</body>
</html>
{{ end }}`

const previewPage = `{{ define "preview" }}<!DOCTYPE html>
<html lang="nl">
<head>
<meta charset="UTF-8">
<title>Voorbeeld Markdown</title>
<style>body { font-family: 'Segoe UI', Tahoma, sans-serif; max-width: 900px; margin: 24px auto; padding: 0 16px; line-height: 1.6; } table { border-collapse: collapse; } th, td { border: 1px solid #ddd; padding: 6px 10px; }</style>
</head>
<body>
<p><a href="/">Terug naar het rapport</a></p>
{{ . }}
</body>
</html>
{{ end }}`
