package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"devconnector/internal/database"

	"github.com/google/uuid"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user, assigning its ID and creation time
func (r *UserRepository) Create(ctx context.Context, user *database.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query := `
        INSERT INTO users (id, name, email, password_hash, avatar, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Email,
		user.PasswordHash, user.Avatar, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*database.User, error) {
	query := `
        SELECT id, name, email, password_hash, avatar, created_at
        FROM users
        WHERE id = $1
    `
	return r.scanOne(r.db.QueryRowContext(ctx, query, userID))
}

// GetByEmail retrieves a user by email, compared exactly as stored
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*database.User, error) {
	query := `
        SELECT id, name, email, password_hash, avatar, created_at
        FROM users
        WHERE email = $1
    `
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

// ExistsByEmail reports whether an account already uses email
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM users WHERE email = $1`, email).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) scanOne(row *sql.Row) (*database.User, error) {
	var user database.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Avatar, &user.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}
