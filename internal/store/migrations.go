package store

import (
	"context"
	"database/sql"
	"fmt"
)

// schema holds the searchable entity tables. Tenant-owned tables carry a
// tenant_id column; the RENEC registry tables (renec_standards,
// certifiers, centers) are global. created_at is nullable where the
// source system does not track it.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		code TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'draft',
		created_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS lessons (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		course_id TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS standards (
		code TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		sector TEXT NOT NULL DEFAULT '',
		level INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS enrollments (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		course_id TEXT NOT NULL,
		user_name TEXT NOT NULL DEFAULT '',
		course_title TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'active',
		created_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS certifications (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		user_name TEXT NOT NULL DEFAULT '',
		standard_code TEXT NOT NULL,
		standard_title TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'issued',
		created_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS simulations (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		kind TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS documents (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		file_type TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS renec_standards (
		code TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		sector TEXT NOT NULL DEFAULT '',
		committee TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS certifiers (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL,
		name TEXT NOT NULL,
		kind TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS centers (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL,
		name TEXT NOT NULL,
		state TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_tenant ON users(tenant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_courses_tenant ON courses(tenant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_lessons_tenant ON lessons(tenant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_enrollments_tenant ON enrollments(tenant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_certifications_tenant ON certifications(tenant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_simulations_tenant ON simulations(tenant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_tenant ON documents(tenant_id)`,
}

func applyMigrations(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
