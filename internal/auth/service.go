package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Service implements registration, login and token verification on top of a
// UserStore and a TokenSigner. Logout is stateless and handled at the HTTP
// layer by clearing the session cookie.
type Service struct {
	store      UserStore
	signer     *TokenSigner
	bcryptCost int
}

type ServiceConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

func NewService(store UserStore, cfg ServiceConfig) (*Service, error) {
	if store == nil {
		return nil, errors.New("user store is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT secret is required")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	return &Service{
		store:      store,
		signer:     NewTokenSigner(cfg.JWTSecret, cfg.TokenTTL),
		bcryptCost: cfg.BcryptCost,
	}, nil
}

// Register hashes the password with a per-call random salt and creates the
// account. Returns ErrDuplicateUser when the username or email is taken.
func (s *Service) Register(ctx context.Context, username, password, email string) (int, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || password == "" || email == "" {
		return 0, errors.New("username, password, and email are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	return s.store.CreateUser(ctx, username, email, string(hash))
}

// Login verifies the credentials and issues a session token. An unknown
// username and a wrong password both return ErrInvalidCredentials; bcrypt's
// compare runs in constant time over the hash.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.signer.Issue(user.ID)
}

// VerifyToken validates a session token and returns the user id it was
// issued to.
func (s *Service) VerifyToken(tokenString string) (int, error) {
	return s.signer.Verify(tokenString)
}
