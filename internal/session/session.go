// Package session keeps the per-browser report state of the web UI: the form
// fields, the current report and whether an analysis is in flight.
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dshills/wcagaudit/internal/schema"
)

// DefaultTTL is how long an idle session is kept.
const DefaultTTL = 24 * time.Hour

// State is everything the UI shows for one session.
type State struct {
	Meta     schema.Meta `json:"meta"`
	HTML     string      `json:"html"`
	InScope  string      `json:"in_scope"`
	OutScope string      `json:"out_scope"`
	// Report is nil until an analysis succeeds and after a new report is started.
	Report *schema.ReportData `json:"report,omitempty"`
	Model  string             `json:"model,omitempty"`
	// Notice is shown when the last analysis ran on truncated input.
	Notice string `json:"notice,omitempty"`
	// AuditID is the archive id of Report, 0 when not archived.
	AuditID int64 `json:"audit_id,omitempty"`
}

// Backend stores session state. Get reports ok=false for unknown or expired
// sessions. Acquire marks an analysis as in flight and returns false when one
// already is; Release clears the mark.
type Backend interface {
	Get(ctx context.Context, id string) (*State, bool, error)
	Put(ctx context.Context, id string, s *State) error
	Delete(ctx context.Context, id string) error
	Acquire(ctx context.Context, id string) (bool, error)
	Release(ctx context.Context, id string) error
	Close() error
}

func encode(s *State) ([]byte, error) {
	return json.Marshal(s)
}

func decode(data []byte) (*State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
