package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/hashicorp/go-hclog"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/cinema/internal/apperr"
	"github.com/user/cinema/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	})
	db, err := gorm.Open(dialector, GormConfig(hclog.NewNullLogger()))
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db, mock
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(fmt.Errorf("wrap: %w", &pq.Error{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: users.username")))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}

func TestUserCreatePostgresUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.User{Username: "neo"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Contains(t, err.Error(), `"neo"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStaleVersionPostgres(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGenreRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "genres" SET .* WHERE version = .* AND "genres"."id" = .*`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	g := &model.Genre{Model: model.Model{ID: 7, Version: 3}, Name: "Noir"}
	err := repo.Update(context.Background(), g, 3)
	assert.ErrorIs(t, err, ErrStaleVersion)
	assert.Equal(t, int64(3), g.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaginateDefaultsToIDOrder(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "countries" ORDER BY "countries"."id" LIMIT \$1 OFFSET \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "version"}).AddRow(3, "Italy", 1))

	var out []model.Country
	err := db.Model(&model.Country{}).Scopes(Paginate(model.Pageable{Page: 1, Size: 5})).Find(&out).Error
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Italy", out[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
