package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"agriinsight/internal/models"
)

// UserStore is the credential store: it persists accounts and looks them up
// for login. Implementations must report unique-constraint violations as
// ErrDuplicateUser so callers can answer with a conflict instead of a
// generic failure.
type UserStore interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (int, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
}

const pqUniqueViolation = "23505"

type PostgresUserStore struct {
	db *sql.DB
}

func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

// CreateUser inserts a new account and returns its generated id.
func (s *PostgresUserStore) CreateUser(ctx context.Context, username, email, passwordHash string) (int, error) {
	const q = `INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id`

	var id int
	err := s.db.QueryRowContext(ctx, q, username, email, passwordHash).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return 0, ErrDuplicateUser
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// FindByUsername returns the account for the given username, or
// ErrUserNotFound.
func (s *PostgresUserStore) FindByUsername(ctx context.Context, username string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, ErrUserNotFound
	}

	const q = `SELECT id, username, email, password_hash, created_at FROM users WHERE username = $1`

	var u models.User
	err := s.db.QueryRowContext(ctx, q, username).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("query user: %w", err)
	}
	return u, nil
}
