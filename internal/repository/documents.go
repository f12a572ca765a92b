package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// DocumentRecord is one row of the documents table.
type DocumentRecord struct {
	ID          string
	TenantID    string
	Title       string
	Description string
	FileType    string
	CreatedAt   *time.Time
}

// Documents looks up uploaded documents by title or description.
type Documents struct {
	db *sql.DB
}

// NewDocuments creates the document repository.
func NewDocuments(db *sql.DB) *Documents {
	return &Documents{db: db}
}

// Search returns up to limit documents matching q, scoped to tenantID
// when non-empty.
func (r *Documents) Search(ctx context.Context, q, tenantID string, limit int) ([]DocumentRecord, error) {
	p := containsPattern(q)
	query := `SELECT id, tenant_id, title, description, file_type, created_at
		FROM documents
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
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var out []DocumentRecord
	for rows.Next() {
		var rec DocumentRecord
		var createdAt sql.NullTime
		if err := rows.Scan(
			&rec.ID, &rec.TenantID, &rec.Title, &rec.Description, &rec.FileType, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		rec.CreatedAt = nullableTime(createdAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return out, nil
}
