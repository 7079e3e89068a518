package repository

import (
	"context"
	"errors"
	"fmt"

	"lostlinked/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	EnsureUser(ctx context.Context, user *model.User) error
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// FindByUsername retrieves a user by username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, username, password, role FROM users WHERE username = $1`
	err := r.db.QueryRow(ctx, sql, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found is not an error for this method's contract, service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return user, nil
}

// EnsureUser inserts the user only if no row with that username exists
// yet. The username uniqueness constraint makes this safe to run on every
// startup.
func (r *userRepository) EnsureUser(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (username, password, role) VALUES ($1, $2, $3)
            ON CONFLICT (username) DO NOTHING`
	if _, err := r.db.Exec(ctx, sql, user.Username, user.PasswordHash, user.Role); err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	return nil
}
