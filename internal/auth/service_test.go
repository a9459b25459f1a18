package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"agriinsight/internal/models"
)

// fakeStore is an in-memory UserStore for service-level tests.
type fakeStore struct {
	users  map[string]models.User
	nextID int
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[string]models.User), nextID: 1}
}

func (s *fakeStore) CreateUser(_ context.Context, username, email, passwordHash string) (int, error) {
	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			return 0, ErrDuplicateUser
		}
	}
	id := s.nextID
	s.nextID++
	s.users[username] = models.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return id, nil
}

func (s *fakeStore) FindByUsername(_ context.Context, username string) (models.User, error) {
	u, ok := s.users[username]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}

func newTestService(t *testing.T, store UserStore) *Service {
	t.Helper()
	svc, err := NewService(store, ServiceConfig{
		JWTSecret:  testSecret,
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost, // keep test runs fast
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestRegisterThenLogin(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	id, err := svc.Register(ctx, "alice", "pw1", "a@x.com")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}

	token, err := svc.Login(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	userID, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if userID != id {
		t.Fatalf("expected user id %d, got %d", id, userID)
	}

	if _, err := svc.Login(ctx, "alice", "pw2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
}

func TestLoginUnknownUserIndistinguishable(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "pw1", "a@x.com"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, wrongPassErr := svc.Login(ctx, "alice", "nope")
	_, noUserErr := svc.Login(ctx, "nobody", "nope")

	if !errors.Is(wrongPassErr, ErrInvalidCredentials) || !errors.Is(noUserErr, ErrInvalidCredentials) {
		t.Fatalf("both failures must be ErrInvalidCredentials, got %v and %v", wrongPassErr, noUserErr)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "pw1", "a@x.com"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Same username, different email.
	if _, err := svc.Register(ctx, "alice", "pw1", "b@x.com"); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser for duplicate username, got %v", err)
	}

	// Same email, different username.
	if _, err := svc.Register(ctx, "bob", "pw1", "a@x.com"); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser for duplicate email, got %v", err)
	}
}

func TestRegisterRequiresAllFields(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	cases := [][3]string{
		{"", "pw", "a@x.com"},
		{"alice", "", "a@x.com"},
		{"alice", "pw", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Register(ctx, tc[0], tc[1], tc[2]); err == nil {
			t.Fatalf("expected error for input %v", tc)
		}
	}
}

func TestEqualPasswordsHashDifferently(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "same-password", "a@x.com"); err != nil {
		t.Fatalf("Register alice: %v", err)
	}
	if _, err := svc.Register(ctx, "bob", "same-password", "b@x.com"); err != nil {
		t.Fatalf("Register bob: %v", err)
	}

	aliceHash := store.users["alice"].PasswordHash
	bobHash := store.users["bob"].PasswordHash
	if aliceHash == bobHash {
		t.Fatal("hashes of equal passwords must differ")
	}

	// The right password verifies against either hash, the wrong one against neither.
	for _, hash := range []string{aliceHash, bobHash} {
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("same-password")); err != nil {
			t.Fatalf("correct password rejected: %v", err)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("other-password")); err == nil {
			t.Fatal("wrong password accepted")
		}
	}
}
