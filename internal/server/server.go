// Package server is the browser UI: a metadata and HTML form, the rendered
// report and its downloads. Report state lives in a session backend keyed
// by a cookie.
package server

import (
	"context"
	"crypto/rand"
	"embed"
	"encoding/hex"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/dshills/wcagaudit/internal/audit"
	"github.com/dshills/wcagaudit/internal/logging"
	"github.com/dshills/wcagaudit/internal/schema"
	"github.com/dshills/wcagaudit/internal/session"
)

//go:embed static
var staticFiles embed.FS

const (
	sessionCookie      = "wcagaudit_session"
	defaultMaxBodySize = 1 << 20
)

// Auditor runs one audit. *audit.Service satisfies it.
type Auditor interface {
	Run(ctx context.Context, in audit.Input) (*audit.Result, error)
}

// Archiver stores finished audits. *store.Store satisfies it.
type Archiver interface {
	Save(ctx context.Context, model string, r *schema.ReportData) (int64, error)
}

// Deps are the collaborators of a Server. Archive may be nil.
type Deps struct {
	Audit        Auditor
	Sessions     session.Backend
	Archive      Archiver
	MaxBodyBytes int64
	Now          func() time.Time
	Logger       *slog.Logger
}

type Server struct {
	deps Deps
	tmpl *template.Template
	mux  *http.ServeMux
}

// New builds a Server and registers its routes.
func New(d Deps) *Server {
	if d.MaxBodyBytes <= 0 {
		d.MaxBodyBytes = defaultMaxBodySize
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	s := &Server{deps: d, tmpl: pageTemplate, mux: http.NewServeMux()}
	s.routes()
	return s
}

// Handler returns the root handler with request logging applied.
func (s *Server) Handler() http.Handler {
	return logging.RequestLoggingMiddleware(s.mux)
}

func (s *Server) routes() {
	s.mux.Handle("GET /static/", http.FileServerFS(staticFiles))
	s.mux.HandleFunc("GET /health", healthHandler)

	s.mux.HandleFunc("GET /{$}", securityHeaders(s.handleForm))
	s.mux.HandleFunc("POST /analyze", securityHeaders(limitBody(s.handleAnalyze, s.deps.MaxBodyBytes)))
	s.mux.HandleFunc("POST /new", securityHeaders(limitBody(s.handleNewReport, s.deps.MaxBodyBytes)))
	s.mux.HandleFunc("GET /download/{format}", securityHeaders(s.handleDownload))
	s.mux.HandleFunc("GET /report.md", securityHeaders(s.handleMarkdownText))
	s.mux.HandleFunc("GET /preview", securityHeaders(s.handlePreview))
}

// limitBody wraps an HTTP handler to limit request body size
func limitBody(next http.HandlerFunc, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}
		next(w, r)
	}
}

// securityHeaders wraps an HTTP handler to add security headers
func securityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Inline styles carry the report stylesheet; scripts only from /static.
		csp := "default-src 'self'; " +
			"img-src 'self' data:; " +
			"style-src 'self' 'unsafe-inline'; " +
			"script-src 'self'"
		w.Header().Set("Content-Security-Policy", csp)
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next(w, r)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// sessionID returns the caller's session id, issuing a new cookie when the
// request has none.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	b := make([]byte, 16)
	rand.Read(b)
	id := hex.EncodeToString(b)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})
	return id
}

// loadState returns the session state, or fresh form defaults when the
// session is unknown or the backend fails.
func (s *Server) loadState(ctx context.Context, id string) *session.State {
	st, ok, err := s.deps.Sessions.Get(ctx, id)
	if err != nil {
		logging.FromContext(ctx).Error("session get failed", "err", err)
	}
	if err != nil || !ok {
		return &session.State{Meta: audit.NewMeta(s.deps.Now())}
	}
	return st
}

func (s *Server) saveState(ctx context.Context, id string, st *session.State) {
	if err := s.deps.Sessions.Put(ctx, id, st); err != nil {
		logging.FromContext(ctx).Error("session put failed", "err", err)
	}
}
