// Package evaluate sends a cleaned HTML fragment and the criterion list to an
// LLM and returns its parsed verdicts.
package evaluate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dshills/wcagaudit/internal/llm"
	"github.com/dshills/wcagaudit/internal/schema"
	"github.com/dshills/wcagaudit/internal/schema/validate"
)

// Options tune a single evaluator call. Temperature is always sent, so zero
// asks for deterministic output rather than the backend default.
type Options struct {
	Temperature float64
	MaxTokens   int
	// Model overrides the provider's configured model when non-empty.
	Model  string
	Logger *slog.Logger
}

// Evaluator wraps a Provider with the request/response contract.
type Evaluator struct {
	provider llm.Provider
	opts     Options
}

// New returns an Evaluator. A nil Logger falls back to slog.Default.
func New(p llm.Provider, opts Options) *Evaluator {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Evaluator{provider: p, opts: opts}
}

// Evaluate asks the evaluator to judge every ref against html. It makes one
// call and never retries. Any failure is returned as *Error.
func (e *Evaluator) Evaluate(ctx context.Context, html string, refs []schema.CriterionRef) (*schema.Evaluation, error) {
	temperature := e.opts.Temperature
	req := &llm.Request{
		SystemPrompt: BuildSystemPrompt(),
		UserPrompt:   BuildUserPrompt(html, refs),
		Temperature:  &temperature,
		MaxTokens:    e.opts.MaxTokens,
		Model:        e.opts.Model,
		JSON:         true,
		Schema:       responseSchema(),
	}
	e.opts.Logger.Debug("calling evaluator", "criteria", len(refs), "prompt_chars", len(req.UserPrompt))

	resp, err := e.provider.Complete(ctx, req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: err}
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return nil, &Error{Kind: KindEmpty, Err: fmt.Errorf("evaluator returned no content")}
	}

	ev, err := validate.Parse(resp.Content)
	if err != nil {
		return nil, &Error{Kind: KindMalformed, Err: err}
	}
	ev.Model = resp.Model
	e.opts.Logger.Debug("evaluator responded", "model", resp.Model, "results", len(ev.Results))
	return ev, nil
}
