package repository

import (
	"context"
	"regexp"
	"testing"

	"toolverse/internal/catalog"
	"toolverse/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestToolRepository_ListQuery(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewToolRepository(db)
	featured := true

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "tools" WHERE category = $1 AND featured = $2 ORDER BY featured DESC,rating DESC,created_at ASC,id ASC`)).
		WithArgs("Writing", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "featured", "rating"}).
			AddRow("1", "Alpha", "Writing", true, 4.8))

	tools, err := repo.List(context.Background(), catalog.ToolFilter{Category: "Writing", Featured: &featured})
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "Alpha", tools[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToolRepository_ListSearchEscapesPattern(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewToolRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "tools" WHERE (LOWER(name) LIKE $1 ESCAPE '\' OR LOWER(description) LIKE $2 ESCAPE '\' OR LOWER(short_description) LIKE $3 ESCAPE '\')`)).
		WithArgs(`%50\%\_off%`, `%50\%\_off%`, `%50\%\_off%`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	tools, err := repo.List(context.Background(), catalog.ToolFilter{Search: "50%_OFF"})
	require.NoError(t, err)
	assert.Empty(t, tools)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToolRepository_ListEmptyWindowSkipsQuery(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewToolRepository(db)
	negative := -1

	tools, err := repo.List(context.Background(), catalog.ToolFilter{Offset: &negative})
	require.NoError(t, err)
	assert.NotNil(t, tools)
	assert.Empty(t, tools)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToolRepository_GetByIDNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewToolRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "tools" WHERE id = $1 ORDER BY "tools"."id" LIMIT $2`)).
		WithArgs("unknown-id", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "unknown-id")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users" WHERE username = $1 OR email = $2`)).
		WithArgs("ada", "ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := repo.Create(context.Background(), &models.User{Username: "ada", Email: "ada@example.com", Password: "hash"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%chat%", containsPattern("Chat"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}
