// Package audit runs one accessibility audit: validate the input, build a
// fresh report from the catalog, clean the HTML, evaluate and reconcile.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dshills/wcagaudit/internal/catalog"
	"github.com/dshills/wcagaudit/internal/reconcile"
	"github.com/dshills/wcagaudit/internal/sanitize"
	"github.com/dshills/wcagaudit/internal/schema"
)

// Field names reported by ValidationError.
const (
	FieldHTML        = "html"
	FieldClient      = "client"
	FieldProduct     = "product"
	FieldResearchers = "researchers"
)

const (
	msgMissingHTML = "Voer a.u.b. HTML code in."
	msgMissingMeta = "Vul a.u.b. alle verplichte velden in (Opdrachtgever, Onderwerp, Onderzoeker)."
)

// ValidationError lists the required inputs that were empty. No evaluator
// call is made when it is returned.
type ValidationError struct {
	Fields []string
}

// Error returns the user-facing message. Missing HTML takes precedence over
// missing metadata.
func (e *ValidationError) Error() string {
	for _, f := range e.Fields {
		if f == FieldHTML {
			return msgMissingHTML
		}
	}
	return msgMissingMeta
}

// Input is everything the user supplies for one audit.
type Input struct {
	HTML     string
	Meta     schema.Meta
	InScope  []string
	OutScope []string
}

// Validate checks that HTML and the required metadata are non-blank.
func Validate(in Input) error {
	var fields []string
	if strings.TrimSpace(in.HTML) == "" {
		fields = append(fields, FieldHTML)
	}
	for _, f := range []struct {
		name, value string
	}{
		{FieldClient, in.Meta.Client},
		{FieldProduct, in.Meta.Product},
		{FieldResearchers, in.Meta.Researchers},
	} {
		if strings.TrimSpace(f.value) == "" {
			fields = append(fields, f.name)
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// NewMeta returns the form defaults: version "1.0" and today's date.
func NewMeta(now time.Time) schema.Meta {
	return schema.Meta{Version: "1.0", Date: now.Format(time.DateOnly)}
}

// Evaluator judges a cleaned fragment against the criterion list.
type Evaluator interface {
	Evaluate(ctx context.Context, html string, refs []schema.CriterionRef) (*schema.Evaluation, error)
}

// Service wires the audit steps together.
type Service struct {
	Evaluator Evaluator
	// MaxInputChars bounds the HTML sent to the evaluator; <= 0 disables it.
	MaxInputChars int
	Logger        *slog.Logger
}

// Result is a finished audit.
type Result struct {
	Report *schema.ReportData
	// Notice is set when the HTML was truncated before evaluation.
	Notice *sanitize.SizeLimitNotice
	// Model is the provider:model that produced the verdicts.
	Model    string
	Duration time.Duration
}

// Run validates in and performs the audit. On any failure the returned
// Result is nil; a partially merged report never escapes.
func (s *Service) Run(ctx context.Context, in Input) (*Result, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	log := s.Logger
	if log == nil {
		log = slog.Default()
	}
	start := time.Now()

	report := catalog.Load()
	report.Meta = trimMeta(in.Meta)
	report.Scope.InScope = trimList(in.InScope)
	report.Scope.OutScope = trimList(in.OutScope)

	html, notice := sanitize.Prepare(in.HTML, s.MaxInputChars)
	if notice != nil {
		log.Warn("input truncated", "original_chars", notice.OriginalChars, "kept_chars", notice.KeptChars)
	}

	ev, err := s.Evaluator.Evaluate(ctx, html, catalog.Refs())
	if err != nil {
		log.Error("evaluation failed", "err", err)
		return nil, fmt.Errorf("evaluating %s: %w", report.Meta.Product, err)
	}

	report = reconcile.Reconcile(report, ev)
	res := &Result{
		Report:   report,
		Notice:   notice,
		Model:    ev.Model,
		Duration: time.Since(start),
	}
	log.Info("audit complete",
		"product", report.Meta.Product,
		"model", res.Model,
		"pass", report.Summary.Scores.CurrentLevel.Pass,
		"total", report.Summary.Scores.CurrentLevel.Total,
		"duration", res.Duration)
	return res, nil
}

func trimMeta(m schema.Meta) schema.Meta {
	return schema.Meta{
		Client:      strings.TrimSpace(m.Client),
		Product:     strings.TrimSpace(m.Product),
		Version:     strings.TrimSpace(m.Version),
		Date:        strings.TrimSpace(m.Date),
		Researchers: strings.TrimSpace(m.Researchers),
	}
}

func trimList(items []string) []string {
	out := []string{}
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
