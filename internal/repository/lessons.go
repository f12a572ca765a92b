package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LessonRecord is one row of the lessons table.
type LessonRecord struct {
	ID        string
	TenantID  string
	CourseID  string
	Title     string
	Content   string
	CreatedAt *time.Time
}

// Lessons looks up lessons by title or content.
type Lessons struct {
	db *sql.DB
}

// NewLessons creates the lesson repository.
func NewLessons(db *sql.DB) *Lessons {
	return &Lessons{db: db}
}

// Search returns up to limit lessons matching q, scoped to tenantID when
// non-empty.
func (r *Lessons) Search(ctx context.Context, q, tenantID string, limit int) ([]LessonRecord, error) {
	p := containsPattern(q)
	query := `SELECT id, tenant_id, course_id, title, content, created_at
		FROM lessons
		WHERE (LOWER(title) LIKE ? OR LOWER(content) LIKE ?)`
	args := []any{p, p}
	if tenantID != "" {
		query += ` AND tenant_id = ?`
		args = append(args, tenantID)
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query lessons: %w", err)
	}
	defer rows.Close()

	var out []LessonRecord
	for rows.Next() {
		var rec LessonRecord
		var createdAt sql.NullTime
		if err := rows.Scan(
			&rec.ID, &rec.TenantID, &rec.CourseID, &rec.Title, &rec.Content, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		rec.CreatedAt = nullableTime(createdAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lessons: %w", err)
	}
	return out, nil
}
