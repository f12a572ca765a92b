package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// EnrollmentRecord is one row of the enrollments table. User and course
// names are denormalized by the CRUD side to keep search single-table.
type EnrollmentRecord struct {
	ID          string
	TenantID    string
	UserID      string
	CourseID    string
	UserName    string
	CourseTitle string
	Status      string
	CreatedAt   *time.Time
}

// Enrollments looks up enrollments by user name or course title.
type Enrollments struct {
	db *sql.DB
}

// NewEnrollments creates the enrollment repository.
func NewEnrollments(db *sql.DB) *Enrollments {
	return &Enrollments{db: db}
}

// Search returns up to limit enrollments matching q, scoped to tenantID
// when non-empty.
func (r *Enrollments) Search(ctx context.Context, q, tenantID string, limit int) ([]EnrollmentRecord, error) {
	p := containsPattern(q)
	query := `SELECT id, tenant_id, user_id, course_id, user_name, course_title, status, created_at
		FROM enrollments
		WHERE (LOWER(user_name) LIKE ? OR LOWER(course_title) LIKE ?)`
	args := []any{p, p}
	if tenantID != "" {
		query += ` AND tenant_id = ?`
		args = append(args, tenantID)
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query enrollments: %w", err)
	}
	defer rows.Close()

	var out []EnrollmentRecord
	for rows.Next() {
		var rec EnrollmentRecord
		var createdAt sql.NullTime
		if err := rows.Scan(
			&rec.ID, &rec.TenantID, &rec.UserID, &rec.CourseID,
			&rec.UserName, &rec.CourseTitle, &rec.Status, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		rec.CreatedAt = nullableTime(createdAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enrollments: %w", err)
	}
	return out, nil
}
