package repository

import (
	"context"
	"errors"
	"testing"

	"lostlinked/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	rows := pgxmock.NewRows([]string{"id", "username", "password", "role"}).
		AddRow(1, "admin", "$2a$10$somehash", "admin")
	mock.ExpectQuery(`SELECT id, username, password, role FROM users WHERE username = \$1`).
		WithArgs("admin").
		WillReturnRows(rows)

	user, err := repo.FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "$2a$10$somehash", user.PasswordHash)
	assert.Equal(t, model.RoleAdmin, user.Role)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectQuery(`SELECT id, username, password, role FROM users`).
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByUsername(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_StorageError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectQuery(`SELECT id, username, password, role FROM users`).
		WithArgs("admin").
		WillReturnError(errors.New("connection lost"))

	_, err = repo.FindByUsername(context.Background(), "admin")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_EnsureUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("admin", "$2a$10$somehash", "admin").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.EnsureUser(context.Background(), &model.User{
		Username:     "admin",
		PasswordHash: "$2a$10$somehash",
		Role:         model.RoleAdmin,
	})
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_EnsureUser_AlreadyPresent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	// ON CONFLICT DO NOTHING reports zero rows affected; still not an error
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("admin", "$2a$10$somehash", "admin").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err = repo.EnsureUser(context.Background(), &model.User{
		Username:     "admin",
		PasswordHash: "$2a$10$somehash",
		Role:         model.RoleAdmin,
	})
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
