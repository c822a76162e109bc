package repository

import (
	"context"
	"regexp"
	"testing"

	"secure_solicitudes/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO roles (name) VALUES ($1) RETURNING id")).
		WithArgs("admin").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

	repo := NewRoleRepository(mock)
	role := &model.Role{Name: "admin"}

	require.NoError(t, repo.Create(context.Background(), role))
	assert.Equal(t, 1, role.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_FindByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM roles WHERE id = $1")).
		WithArgs(5).
		WillReturnError(pgx.ErrNoRows)

	repo := NewRoleRepository(mock)
	role, err := repo.FindByID(context.Background(), 5)

	assert.NoError(t, err)
	assert.Nil(t, role)
}

func TestRoleRepository_FindAll_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM roles ORDER BY id")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

	repo := NewRoleRepository(mock)
	roles, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, roles)
	assert.Empty(t, roles)
}

func TestRoleRepository_Delete_NoCascade(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// Only the roles row is touched
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM roles WHERE id = $1")).
		WithArgs(2).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewRoleRepository(mock)
	assert.NoError(t, repo.Delete(context.Background(), 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE roles SET name = $1 WHERE id = $2")).
		WithArgs("ops", 9).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewRoleRepository(mock)
	err = repo.Update(context.Background(), &model.Role{ID: 9, Name: "ops"})
	assert.ErrorIs(t, err, ErrNotFound)
}
