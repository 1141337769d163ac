// Package store archives finished audits in SQLite so they can be listed,
// re-rendered and compared later.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dshills/wcagaudit/internal/schema"
	"github.com/dshills/wcagaudit/internal/stats"
)

// ErrNotFound is returned by Get for an unknown id.
var ErrNotFound = errors.New("audit not found")

// Record is one archived audit. List leaves Report nil.
type Record struct {
	ID        int64
	CreatedAt time.Time
	Client    string
	Product   string
	Date      string
	Model     string
	Pass      int
	Fail      int
	Total     int
	Report    *schema.ReportData
}

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates or opens the archive at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db, now: time.Now}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS audits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			client TEXT,
			product TEXT,
			report_date TEXT,
			model TEXT,
			pass INTEGER,
			fail INTEGER,
			total INTEGER,
			report JSON NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_audits_product ON audits(product);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Save archives r and returns its id. The pass/fail summary columns are
// derived from the criteria.
func (s *Store) Save(ctx context.Context, model string, r *schema.ReportData) (int64, error) {
	if r == nil {
		return 0, errors.New("nil report")
	}
	body, err := json.Marshal(r)
	if err != nil {
		return 0, fmt.Errorf("encoding report: %w", err)
	}
	t := stats.Compute(r).Scored
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO audits (created_at, client, product, report_date, model, pass, fail, total, report)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.now().UTC().Format(time.RFC3339Nano), r.Meta.Client, r.Meta.Product, r.Meta.Date, model, t.Pass, t.Fail, t.Total, body)
	if err != nil {
		return 0, fmt.Errorf("failed to insert audit: %w", err)
	}
	return res.LastInsertId()
}

// Get loads one audit including its full report.
func (s *Store) Get(ctx context.Context, id int64) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, client, product, report_date, model, pass, fail, total, report
		FROM audits WHERE id = ?`, id)

	var rec Record
	var created string
	var body []byte
	err := row.Scan(&rec.ID, &created, &rec.Client, &rec.Product, &rec.Date, &rec.Model, &rec.Pass, &rec.Fail, &rec.Total, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query audit %d: %w", id, err)
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)

	rec.Report = &schema.ReportData{}
	if err := json.Unmarshal(body, rec.Report); err != nil {
		return nil, fmt.Errorf("decoding audit %d: %w", id, err)
	}
	return &rec, nil
}

// List returns up to limit audits, newest first. product filters on an
// exact product name when non-empty. limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, product string, limit int) ([]Record, error) {
	q := `SELECT id, created_at, client, product, report_date, model, pass, fail, total FROM audits`
	var args []any
	if product != "" {
		q += ` WHERE product = ?`
		args = append(args, product)
	}
	q += ` ORDER BY id DESC`
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audits: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var created string
		if err := rows.Scan(&rec.ID, &created, &rec.Client, &rec.Product, &rec.Date, &rec.Model, &rec.Pass, &rec.Fail, &rec.Total); err != nil {
			return nil, fmt.Errorf("failed to scan audit: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, rec)
	}
	return out, rows.Err()
}
