// Package repository provides read-only, case-insensitive substring
// lookups over the entity tables. Each repository serves exactly one
// search strategy; writes belong to the platform's CRUD modules.
package repository

import (
	"database/sql"
	"strings"
	"time"
)

// containsPattern builds the LIKE pattern for a case-insensitive
// substring match.
func containsPattern(q string) string {
	return "%" + strings.ToLower(q) + "%"
}

// prefixPattern builds the LIKE pattern for a case-insensitive prefix match.
func prefixPattern(q string) string {
	return strings.ToLower(q) + "%"
}

func nullableTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
