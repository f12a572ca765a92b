package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CertificationRecord is one row of the certifications table.
type CertificationRecord struct {
	ID            string
	TenantID      string
	UserID        string
	UserName      string
	StandardCode  string
	StandardTitle string
	Status        string
	CreatedAt     *time.Time
}

// Certifications looks up certification records by standard code, standard
// title or holder name.
type Certifications struct {
	db *sql.DB
}

// NewCertifications creates the certification repository.
func NewCertifications(db *sql.DB) *Certifications {
	return &Certifications{db: db}
}

// Search returns up to limit certifications matching q, scoped to
// tenantID when non-empty.
func (r *Certifications) Search(ctx context.Context, q, tenantID string, limit int) ([]CertificationRecord, error) {
	p := containsPattern(q)
	query := `SELECT id, tenant_id, user_id, user_name, standard_code, standard_title, status, created_at
		FROM certifications
		WHERE (LOWER(standard_code) LIKE ? OR LOWER(standard_title) LIKE ? OR LOWER(user_name) LIKE ?)`
	args := []any{p, p, p}
	if tenantID != "" {
		query += ` AND tenant_id = ?`
		args = append(args, tenantID)
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query certifications: %w", err)
	}
	defer rows.Close()

	var out []CertificationRecord
	for rows.Next() {
		var rec CertificationRecord
		var createdAt sql.NullTime
		if err := rows.Scan(
			&rec.ID, &rec.TenantID, &rec.UserID, &rec.UserName,
			&rec.StandardCode, &rec.StandardTitle, &rec.Status, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan certification: %w", err)
		}
		rec.CreatedAt = nullableTime(createdAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate certifications: %w", err)
	}
	return out, nil
}
