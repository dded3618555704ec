package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_FindByKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM categories").
		WithArgs("rooms").
		WillReturnRows(sqlmock.NewRows([]string{"id", "cat_key", "title", "images", "created_at"}).
			AddRow("cat-1", "rooms", "Our Rooms", `["a.jpg","b.jpg"]`, time.Now()))

	repo := NewCategoryRepository(db)
	category, err := repo.FindByKey(context.Background(), "rooms")
	require.NoError(t, err)
	require.NotNil(t, category)
	assert.Equal(t, "Our Rooms", category.Title)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, category.Images)
}

func TestCategoryRepository_FindByKey_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM categories").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "cat_key", "title", "images", "created_at"}))

	repo := NewCategoryRepository(db)
	category, err := repo.FindByKey(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, category)
}

func TestCategoryRepository_AddImage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT images FROM categories").
		WithArgs("cat-1").
		WillReturnRows(sqlmock.NewRows([]string{"images"}).AddRow(`["a.jpg"]`))
	mock.ExpectExec("UPDATE categories SET images").
		WithArgs(`["a.jpg","b.jpg"]`, "cat-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewCategoryRepository(db)
	require.NoError(t, repo.AddImage(context.Background(), "cat-1", "b.jpg"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_RemoveImage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT images FROM categories").
		WithArgs("cat-1").
		WillReturnRows(sqlmock.NewRows([]string{"images"}).AddRow(`["a.jpg","b.jpg"]`))
	mock.ExpectExec("UPDATE categories SET images").
		WithArgs(`["a.jpg"]`, "cat-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewCategoryRepository(db)
	require.NoError(t, repo.RemoveImage(context.Background(), "cat-1", "b.jpg"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
