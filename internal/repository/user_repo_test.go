package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"bakeapi/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserMock(t *testing.T) (pgxmock.PgxPoolIface, UserRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewUserRepository(mock)
}

func TestUserRepository_Create(t *testing.T) {
	mock, repo := newUserMock(t)

	user := &model.User{
		Email:        "user@test.com",
		PasswordHash: "$2a$10$hash",
		Role:         model.RoleUser,
		BakeryName:   "Ma Boulangerie Test",
		CreatedAt:    time.Now(),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (email, password_hash, role, bakery_name, created_at)`)).
		WithArgs(user.Email, user.PasswordHash, user.Role, user.BakeryName, user.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

	err := repo.Create(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	mock, repo := newUserMock(t)

	createdAt := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, role, bakery_name, created_at FROM users WHERE email = $1`)).
		WithArgs("admin@test.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "role", "bakery_name", "created_at"}).
			AddRow(1, "admin@test.com", "$2a$10$hash", model.RoleAdmin, "", createdAt))

	user, err := repo.FindByEmail(context.Background(), "admin@test.com")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	mock, repo := newUserMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, role, bakery_name, created_at FROM users WHERE email = $1`)).
		WithArgs("missing@test.com").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByEmail(context.Background(), "missing@test.com")

	// Absence is nil, nil by contract; the service layer decides the status code
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	mock, repo := newUserMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, role, bakery_name, created_at FROM users WHERE id = $1`)).
		WithArgs(42).
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByID(context.Background(), 42)

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindAll(t *testing.T) {
	mock, repo := newUserMock(t)

	createdAt := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, role, bakery_name, created_at FROM users ORDER BY created_at DESC, id DESC`)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "role", "bakery_name", "created_at"}).
			AddRow(2, "user@test.com", "$2a$10$hash2", model.RoleUser, "Ma Boulangerie Test", createdAt).
			AddRow(1, "admin@test.com", "$2a$10$hash1", model.RoleAdmin, "", createdAt))

	users, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "user@test.com", users[0].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update(t *testing.T) {
	mock, repo := newUserMock(t)

	user := &model.User{
		ID:           3,
		Email:        "user@test.com",
		PasswordHash: "$2a$10$newhash",
		Role:         model.RoleUser,
		BakeryName:   "Nouvelle Boulangerie",
	}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET email = $1, password_hash = $2, role = $3, bakery_name = $4 WHERE id = $5`)).
		WithArgs(user.Email, user.PasswordHash, user.Role, user.BakeryName, user.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), user)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_NoMatch(t *testing.T) {
	mock, repo := newUserMock(t)

	user := &model.User{ID: 99, Email: "ghost@test.com"}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET`)).
		WithArgs(user.Email, user.PasswordHash, user.Role, user.BakeryName, user.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), user)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	mock, repo := newUserMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs(3).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := repo.Delete(context.Background(), 3)

	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_NoMatch(t *testing.T) {
	mock, repo := newUserMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs(99).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), 99)

	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
