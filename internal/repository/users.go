package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// UserRecord is one row of the users table.
type UserRecord struct {
	ID        string
	TenantID  string
	FirstName string
	LastName  string
	Email     string
	Role      string
	CreatedAt *time.Time
}

// Users looks up platform users by name or email.
type Users struct {
	db *sql.DB
}

// NewUsers creates the user repository.
func NewUsers(db *sql.DB) *Users {
	return &Users{db: db}
}

// Search returns up to limit users whose name or email contains q,
// scoped to tenantID when non-empty.
func (r *Users) Search(ctx context.Context, q, tenantID string, limit int) ([]UserRecord, error) {
	p := containsPattern(q)
	query := `SELECT id, tenant_id, first_name, last_name, email, role, created_at
		FROM users
		WHERE (LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?)`
	args := []any{p, p, p}
	if tenantID != "" {
		query += ` AND tenant_id = ?`
		args = append(args, tenantID)
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var out []UserRecord
	for rows.Next() {
		var rec UserRecord
		var createdAt sql.NullTime
		if err := rows.Scan(
			&rec.ID, &rec.TenantID, &rec.FirstName, &rec.LastName,
			&rec.Email, &rec.Role, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		rec.CreatedAt = nullableTime(createdAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}
