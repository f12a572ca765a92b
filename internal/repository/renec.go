package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// RenecStandardRecord is one row of the renec_standards table, mirroring
// an EC standard entry in the national registry. Registry tables are
// global: no tenant scoping applies.
type RenecStandardRecord struct {
	Code      string
	Title     string
	Sector    string
	Committee string
	CreatedAt *time.Time
}

// RenecStandards looks up national registry EC standards.
type RenecStandards struct {
	db *sql.DB
}

// NewRenecStandards creates the registry standard repository.
func NewRenecStandards(db *sql.DB) *RenecStandards {
	return &RenecStandards{db: db}
}

// Search returns up to limit registry standards matching q.
func (r *RenecStandards) Search(ctx context.Context, q, _ string, limit int) ([]RenecStandardRecord, error) {
	p := containsPattern(q)
	query := `SELECT code, title, sector, committee, created_at
		FROM renec_standards
		WHERE LOWER(code) LIKE ? OR LOWER(title) LIKE ? OR LOWER(sector) LIKE ? OR LOWER(committee) LIKE ?
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, p, p, p, p, limit)
	if err != nil {
		return nil, fmt.Errorf("query renec standards: %w", err)
	}
	defer rows.Close()

	var out []RenecStandardRecord
	for rows.Next() {
		var rec RenecStandardRecord
		var createdAt sql.NullTime
		if err := rows.Scan(&rec.Code, &rec.Title, &rec.Sector, &rec.Committee, &createdAt); err != nil {
			return nil, fmt.Errorf("scan renec standard: %w", err)
		}
		rec.CreatedAt = nullableTime(createdAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate renec standards: %w", err)
	}
	return out, nil
}

// CertifierRecord is one row of the certifiers table (ECE/OC entities).
type CertifierRecord struct {
	ID        string
	Code      string
	Name      string
	Kind      string
	City      string
	State     string
	CreatedAt *time.Time
}

// Certifiers looks up accredited certifier entities.
type Certifiers struct {
	db *sql.DB
}

// NewCertifiers creates the certifier repository.
func NewCertifiers(db *sql.DB) *Certifiers {
	return &Certifiers{db: db}
}

// Search returns up to limit certifiers matching q.
func (r *Certifiers) Search(ctx context.Context, q, _ string, limit int) ([]CertifierRecord, error) {
	p := containsPattern(q)
	query := `SELECT id, code, name, kind, city, state, created_at
		FROM certifiers
		WHERE LOWER(code) LIKE ? OR LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(state) LIKE ?
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, p, p, p, p, limit)
	if err != nil {
		return nil, fmt.Errorf("query certifiers: %w", err)
	}
	defer rows.Close()

	var out []CertifierRecord
	for rows.Next() {
		var rec CertifierRecord
		var createdAt sql.NullTime
		if err := rows.Scan(
			&rec.ID, &rec.Code, &rec.Name, &rec.Kind, &rec.City, &rec.State, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan certifier: %w", err)
		}
		rec.CreatedAt = nullableTime(createdAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate certifiers: %w", err)
	}
	return out, nil
}

// CenterRecord is one row of the centers table (evaluation centers).
type CenterRecord struct {
	ID        string
	Code      string
	Name      string
	State     string
	CreatedAt *time.Time
}

// Centers looks up evaluation centers.
type Centers struct {
	db *sql.DB
}

// NewCenters creates the evaluation center repository.
func NewCenters(db *sql.DB) *Centers {
	return &Centers{db: db}
}

// Search returns up to limit centers matching q.
func (r *Centers) Search(ctx context.Context, q, _ string, limit int) ([]CenterRecord, error) {
	p := containsPattern(q)
	query := `SELECT id, code, name, state, created_at
		FROM centers
		WHERE LOWER(code) LIKE ? OR LOWER(name) LIKE ? OR LOWER(state) LIKE ?
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, p, p, p, limit)
	if err != nil {
		return nil, fmt.Errorf("query centers: %w", err)
	}
	defer rows.Close()

	var out []CenterRecord
	for rows.Next() {
		var rec CenterRecord
		var createdAt sql.NullTime
		if err := rows.Scan(&rec.ID, &rec.Code, &rec.Name, &rec.State, &createdAt); err != nil {
			return nil, fmt.Errorf("scan center: %w", err)
		}
		rec.CreatedAt = nullableTime(createdAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate centers: %w", err)
	}
	return out, nil
}
