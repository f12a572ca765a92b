package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CourseRecord is one row of the courses table.
type CourseRecord struct {
	ID          string
	TenantID    string
	Code        string
	Title       string
	Description string
	Status      string
	CreatedAt   *time.Time
}

// Courses looks up courses by code, title or description.
type Courses struct {
	db *sql.DB
}

// NewCourses creates the course repository.
func NewCourses(db *sql.DB) *Courses {
	return &Courses{db: db}
}

// Search returns up to limit courses matching q, scoped to tenantID when
// non-empty.
func (r *Courses) Search(ctx context.Context, q, tenantID string, limit int) ([]CourseRecord, error) {
	p := containsPattern(q)
	query := `SELECT id, tenant_id, code, title, description, status, created_at
		FROM courses
		WHERE (LOWER(code) LIKE ? OR LOWER(title) LIKE ? OR LOWER(description) LIKE ?)`
	args := []any{p, p, p}
	if tenantID != "" {
		query += ` AND tenant_id = ?`
		args = append(args, tenantID)
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	var out []CourseRecord
	for rows.Next() {
		var rec CourseRecord
		var createdAt sql.NullTime
		if err := rows.Scan(
			&rec.ID, &rec.TenantID, &rec.Code, &rec.Title,
			&rec.Description, &rec.Status, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		rec.CreatedAt = nullableTime(createdAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}
	return out, nil
}
