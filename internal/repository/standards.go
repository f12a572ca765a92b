package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// StandardRecord is one row of the standards table (the platform's own
// competency standard catalog).
type StandardRecord struct {
	Code        string
	Title       string
	Description string
	Sector      string
	Level       int
	CreatedAt   *time.Time
}

// Standards looks up competency standards by code, title or description.
type Standards struct {
	db *sql.DB
}

// NewStandards creates the standard repository.
func NewStandards(db *sql.DB) *Standards {
	return &Standards{db: db}
}

// Search returns up to limit standards matching q. Standards are global,
// tenantID is accepted for interface uniformity and ignored.
func (r *Standards) Search(ctx context.Context, q, _ string, limit int) ([]StandardRecord, error) {
	p := containsPattern(q)
	query := `SELECT code, title, description, sector, level, created_at
		FROM standards
		WHERE LOWER(code) LIKE ? OR LOWER(title) LIKE ? OR LOWER(description) LIKE ?
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, p, p, p, limit)
	if err != nil {
		return nil, fmt.Errorf("query standards: %w", err)
	}
	defer rows.Close()

	return scanStandards(rows)
}

// CodesWithPrefix returns up to limit standard codes starting with prefix,
// used by the query suggestion heuristic.
func (r *Standards) CodesWithPrefix(ctx context.Context, prefix string, limit int) ([]string, error) {
	query := `SELECT code FROM standards WHERE LOWER(code) LIKE ? ORDER BY code LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, prefixPattern(prefix), limit)
	if err != nil {
		return nil, fmt.Errorf("query standard codes: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan standard code: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate standard codes: %w", err)
	}
	return codes, nil
}

func scanStandards(rows *sql.Rows) ([]StandardRecord, error) {
	var out []StandardRecord
	for rows.Next() {
		var rec StandardRecord
		var createdAt sql.NullTime
		if err := rows.Scan(
			&rec.Code, &rec.Title, &rec.Description, &rec.Sector, &rec.Level, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan standard: %w", err)
		}
		rec.CreatedAt = nullableTime(createdAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate standards: %w", err)
	}
	return out, nil
}
