package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SimulationRecord is one row of the simulations table.
type SimulationRecord struct {
	ID          string
	TenantID    string
	Title       string
	Description string
	Kind        string
	CreatedAt   *time.Time
}

// Simulations looks up practice simulations by title or description.
type Simulations struct {
	db *sql.DB
}

// NewSimulations creates the simulation repository.
func NewSimulations(db *sql.DB) *Simulations {
	return &Simulations{db: db}
}

// Search returns up to limit simulations matching q, scoped to tenantID
// when non-empty.
func (r *Simulations) Search(ctx context.Context, q, tenantID string, limit int) ([]SimulationRecord, error) {
	p := containsPattern(q)
	query := `SELECT id, tenant_id, title, description, kind, created_at
		FROM simulations
		WHERE (LOWER(title) LIKE ? OR LOWER(description) LIKE ?)`
	args := []any{p, p}
	if tenantID != "" {
		query += ` AND tenant_id = ?`
		args = append(args, tenantID)
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query simulations: %w", err)
	}
	defer rows.Close()

	var out []SimulationRecord
	for rows.Next() {
		var rec SimulationRecord
		var createdAt sql.NullTime
		if err := rows.Scan(
			&rec.ID, &rec.TenantID, &rec.Title, &rec.Description, &rec.Kind, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan simulation: %w", err)
		}
		rec.CreatedAt = nullableTime(createdAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate simulations: %w", err)
	}
	return out, nil
}
