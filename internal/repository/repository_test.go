package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/competia/searchapi/internal/store"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st.DB()
}

func seed(t *testing.T, db *sql.DB, query string, args ...any) {
	t.Helper()
	_, err := db.Exec(query, args...)
	require.NoError(t, err)
}

func TestUsers_Search_TenantScoping(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()
	seed(t, db, `INSERT INTO users (id, tenant_id, first_name, last_name, email, role, created_at)
		VALUES ('u1', 't1', 'Maria', 'Lopez', 'maria@acme.mx', 'admin', ?)`, now)
	seed(t, db, `INSERT INTO users (id, tenant_id, first_name, last_name, email, role, created_at)
		VALUES ('u2', 't2', 'Mario', 'Santos', 'mario@other.mx', 'learner', ?)`, now)

	repo := NewUsers(db)

	got, err := repo.Search(context.Background(), "mari", "t1", 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "u1", got[0].ID)
	require.NotNil(t, got[0].CreatedAt)

	// Unscoped search sees both tenants.
	got, err = repo.Search(context.Background(), "mari", "", 20)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestUsers_Search_CaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	seed(t, db, `INSERT INTO users (id, tenant_id, first_name, last_name, email)
		VALUES ('u1', 't1', 'Carlos', 'RAMIREZ', 'carlos@acme.mx')`)

	repo := NewUsers(db)

	got, err := repo.Search(context.Background(), "ramirez", "", 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Nil(t, got[0].CreatedAt)
}

func TestCourses_Search_LimitAndFields(t *testing.T) {
	db := newTestDB(t)
	for _, id := range []string{"c1", "c2", "c3"} {
		seed(t, db, `INSERT INTO courses (id, tenant_id, code, title, description, status)
			VALUES (?, 't1', 'CRS-'||?, 'Safety fundamentals', 'Workplace safety basics', 'published')`,
			id, id)
	}

	repo := NewCourses(db)

	got, err := repo.Search(context.Background(), "safety", "t1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Code column is searched too.
	got, err = repo.Search(context.Background(), "crs-c3", "t1", 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "c3", got[0].ID)
}

func TestStandards_Search_IgnoresTenant(t *testing.T) {
	db := newTestDB(t)
	seed(t, db, `INSERT INTO standards (code, title, description, sector, level)
		VALUES ('EC0249', 'Proporcionar servicios de consultoría general', '', 'Servicios', 3)`)

	repo := NewStandards(db)

	got, err := repo.Search(context.Background(), "ec0249", "any-tenant", 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "EC0249", got[0].Code)
}

func TestStandards_CodesWithPrefix(t *testing.T) {
	db := newTestDB(t)
	for _, code := range []string{"EC0217", "EC0249", "EC0301", "CS0100"} {
		seed(t, db, `INSERT INTO standards (code, title) VALUES (?, 'title')`, code)
	}

	repo := NewStandards(db)

	codes, err := repo.CodesWithPrefix(context.Background(), "ec02", 5)
	require.NoError(t, err)
	require.Equal(t, []string{"EC0217", "EC0249"}, codes)

	codes, err = repo.CodesWithPrefix(context.Background(), "ec0", 1)
	require.NoError(t, err)
	require.Equal(t, []string{"EC0217"}, codes)
}

func TestRenecRepositories_Search(t *testing.T) {
	db := newTestDB(t)
	seed(t, db, `INSERT INTO renec_standards (code, title, sector, committee)
		VALUES ('EC0076', 'Evaluación de la competencia', 'Educación', 'Comité de gestión')`)
	seed(t, db, `INSERT INTO certifiers (id, code, name, kind, city, state)
		VALUES ('ce1', 'ECE001-99', 'Certificadora Nacional', 'ECE', 'Monterrey', 'Nuevo León')`)
	seed(t, db, `INSERT INTO centers (id, code, name, state)
		VALUES ('cc1', 'CE0042', 'Centro de Evaluación Norte', 'Chihuahua')`)

	ctx := context.Background()

	stds, err := NewRenecStandards(db).Search(ctx, "evaluación", "", 20)
	require.NoError(t, err)
	require.Len(t, stds, 1)

	certs, err := NewCertifiers(db).Search(ctx, "monterrey", "", 20)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	require.Equal(t, "ECE001-99", certs[0].Code)

	centers, err := NewCenters(db).Search(ctx, "norte", "", 20)
	require.NoError(t, err)
	require.Len(t, centers, 1)
}

func TestSearch_NoMatches(t *testing.T) {
	db := newTestDB(t)

	got, err := NewDocuments(db).Search(context.Background(), "nothing", "t1", 20)
	require.NoError(t, err)
	require.Empty(t, got)
}
