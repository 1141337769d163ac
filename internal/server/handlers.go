package server

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"mime"
	"net/http"
	"strings"

	"github.com/dshills/wcagaudit/internal/audit"
	"github.com/dshills/wcagaudit/internal/evaluate"
	"github.com/dshills/wcagaudit/internal/logging"
	"github.com/dshills/wcagaudit/internal/render"
	"github.com/dshills/wcagaudit/internal/schema"
	"github.com/dshills/wcagaudit/internal/session"
)

const (
	msgInFlight    = "Er loopt al een analyse voor dit rapport. Wacht tot deze klaar is."
	msgTooLarge    = "De invoer is te groot om te verwerken."
	msgNoReport    = "Er is nog geen rapport. Start eerst een analyse."
	msgBadFormat   = "Onbekend downloadformaat."
	msgRenderError = "Het rapport kon niet worden opgemaakt."
)

// page is the data behind the single application page.
type page struct {
	State     *session.State
	Error     string
	Report    template.HTML
	HasReport bool
	CSS       template.CSS
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r)
	st := s.loadState(r.Context(), id)
	s.renderPage(w, r, http.StatusOK, st, "")
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromContext(ctx)
	id := sessionID(w, r)
	st := s.loadState(ctx, id)

	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.renderPage(w, r, http.StatusRequestEntityTooLarge, st, msgTooLarge)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	submitted := stateFromForm(r, st)
	in := audit.Input{
		HTML:     submitted.HTML,
		Meta:     submitted.Meta,
		InScope:  splitLines(submitted.InScope),
		OutScope: splitLines(submitted.OutScope),
	}

	if err := audit.Validate(in); err != nil {
		s.renderPage(w, r, http.StatusBadRequest, submitted, err.Error())
		return
	}

	acquired, err := s.deps.Sessions.Acquire(ctx, id)
	if err != nil {
		log.Error("session acquire failed", "err", err)
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	if !acquired {
		s.renderPage(w, r, http.StatusConflict, submitted, msgInFlight)
		return
	}
	// Session writes must land even if the client disconnects mid-evaluation.
	persist := context.WithoutCancel(ctx)
	defer func() {
		if err := s.deps.Sessions.Release(persist, id); err != nil {
			log.Error("session release failed", "err", err)
		}
	}()

	// The previous report is discarded before the call; a failure leaves none.
	submitted.Report, submitted.Model, submitted.Notice, submitted.AuditID = nil, "", "", 0

	res, err := s.deps.Audit.Run(ctx, in)
	if err != nil {
		var ve *audit.ValidationError
		if errors.As(err, &ve) {
			s.renderPage(w, r, http.StatusBadRequest, submitted, ve.Error())
			return
		}
		log.Error("analysis failed", "err", err)
		s.saveState(persist, id, submitted)
		s.renderPage(w, r, http.StatusBadGateway, submitted, evaluate.UserMessage(err))
		return
	}

	submitted.Report = res.Report
	submitted.Model = res.Model
	if res.Notice != nil {
		submitted.Notice = res.Notice.Message()
	}
	if s.deps.Archive != nil {
		auditID, err := s.deps.Archive.Save(ctx, res.Model, res.Report)
		if err != nil {
			log.Warn("archiving audit failed", "err", err)
		} else {
			submitted.AuditID = auditID
		}
	}
	s.saveState(persist, id, submitted)
	http.Redirect(w, r, "/#rapport", http.StatusSeeOther)
}

// handleNewReport clears the report, the HTML and the product while keeping
// the client, researchers, version and date.
func (s *Server) handleNewReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := sessionID(w, r)
	st := s.loadState(ctx, id)
	next := &session.State{
		Meta: schema.Meta{
			Client:      st.Meta.Client,
			Researchers: st.Meta.Researchers,
			Version:     st.Meta.Version,
			Date:        st.Meta.Date,
		},
		InScope:  st.InScope,
		OutScope: st.OutScope,
	}
	s.saveState(ctx, id, next)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	format := r.PathValue("format")
	if format != "html" && format != "md" {
		http.Error(w, msgBadFormat, http.StatusNotFound)
		return
	}
	st := s.loadState(r.Context(), sessionID(w, r))
	if st.Report == nil {
		http.Error(w, msgNoReport, http.StatusNotFound)
		return
	}
	out, ok := s.renderReport(w, r, format, st.Report)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", render.ContentType(format))
	w.Header().Set("Content-Disposition", attachment(render.Filename(st.Report, format)))
	w.Write(out)
}

// attachment formats a Content-Disposition value; the filename carries the
// user-supplied date, so it is quoted or encoded as needed.
func attachment(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}

// handleMarkdownText serves the Markdown export as plain text for the
// copy-to-clipboard button.
func (s *Server) handleMarkdownText(w http.ResponseWriter, r *http.Request) {
	st := s.loadState(r.Context(), sessionID(w, r))
	if st.Report == nil {
		http.Error(w, msgNoReport, http.StatusNotFound)
		return
	}
	out, ok := s.renderReport(w, r, "md", st.Report)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(out)
}

// handlePreview shows the Markdown export converted back to HTML, so users
// can check what they are about to paste elsewhere.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	st := s.loadState(r.Context(), sessionID(w, r))
	if st.Report == nil {
		http.Error(w, msgNoReport, http.StatusNotFound)
		return
	}
	md, ok := s.renderReport(w, r, "md", st.Report)
	if !ok {
		return
	}
	body, err := render.PreviewMarkdown(md)
	if err != nil {
		logging.FromContext(r.Context()).Error("preview failed", "err", err)
		http.Error(w, msgRenderError, http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "preview", template.HTML(body)); err != nil {
		logging.FromContext(r.Context()).Error("preview template failed", "err", err)
		http.Error(w, msgRenderError, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) renderReport(w http.ResponseWriter, r *http.Request, format string, report *schema.ReportData) ([]byte, bool) {
	rr, err := render.NewRenderer(format)
	if err == nil {
		var out []byte
		if out, err = rr.Render(report); err == nil {
			return out, true
		}
	}
	logging.FromContext(r.Context()).Error("render failed", "format", format, "err", err)
	http.Error(w, msgRenderError, http.StatusInternalServerError)
	return nil, false
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, st *session.State, msg string) {
	p := page{State: st, Error: msg, CSS: render.Stylesheet()}
	if st.Report != nil {
		view, ok := s.renderReport(w, r, "view", st.Report)
		if !ok {
			return
		}
		p.Report = template.HTML(view)
		p.HasReport = true
	}
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "page", p); err != nil {
		logging.FromContext(r.Context()).Error("page template failed", "err", err)
		http.Error(w, msgRenderError, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// stateFromForm copies the submitted form fields over prev.
func stateFromForm(r *http.Request, prev *session.State) *session.State {
	st := *prev
	st.Meta = schema.Meta{
		Client:      r.PostFormValue("client"),
		Product:     r.PostFormValue("product"),
		Version:     r.PostFormValue("version"),
		Date:        r.PostFormValue("date"),
		Researchers: r.PostFormValue("researchers"),
	}
	st.HTML = r.PostFormValue("html")
	st.InScope = r.PostFormValue("in_scope")
	st.OutScope = r.PostFormValue("out_scope")
	return &st
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
