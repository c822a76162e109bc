package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"secure_solicitudes/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "username", "email", "password", "role_id"}

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, email, password, role_id)")).
		WithArgs("ana", "ana@example.com", "hash", 2).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

	repo := NewUserRepository(mock)
	user := &model.User{Username: "ana", Email: "ana@example.com", PasswordHash: "hash", RoleID: 2}

	err = repo.Create(context.Background(), user)
	assert.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("ana", "ana@example.com", "hash", 2).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	repo := NewUserRepository(mock)
	err = repo.Create(context.Background(), &model.User{Username: "ana", Email: "ana@example.com", PasswordHash: "hash", RoleID: 2})

	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("ana").
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(7, "ana", "ana@example.com", "hash", 2))

	repo := NewUserRepository(mock)
	user, err := repo.FindByUsername(context.Background(), "ana")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.Equal(t, 2, user.RoleID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	repo := NewUserRepository(mock)
	user, err := repo.FindByUsername(context.Background(), "ghost")

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(3).
		WillReturnError(errors.New("connection reset"))

	repo := NewUserRepository(mock)
	user, err := repo.FindByID(context.Background(), 3)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestUserRepository_FindAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY id")).
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(1, "ana", "ana@example.com", "h1", 1).
			AddRow(2, "luis", "luis@example.com", "h2", 2))

	repo := NewUserRepository(mock)
	users, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "luis", users[1].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET")).
		WithArgs("ana", "ana@example.com", "hash", 1, 99).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewUserRepository(mock)
	err = repo.Update(context.Background(), &model.User{ID: 99, Username: "ana", Email: "ana@example.com", PasswordHash: "hash", RoleID: 1})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(4).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewUserRepository(mock)
	assert.NoError(t, repo.Delete(context.Background(), 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}
