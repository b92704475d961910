package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/simfut/league-api/internal/core/domain"
)

// stubUserRepo enforces username uniqueness atomically under its lock,
// mimicking the storage layer's unique index.
type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.UserAccount
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.UserAccount)}
}

func cloneUser(u *domain.UserAccount) *domain.UserAccount {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.UserAccount) (*domain.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	created := cloneUser(user)
	created.ID = user.Username
	r.users[created.Username] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, NewPasswordHasher(4), NewTokenService("secret", time.Hour), zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	result, err := svc.Register(context.Background(), "alice", "pass123", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.Username != "alice" || result.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", result)
	}

	stored, err := repo.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if !NewPasswordHasher(4).Verify("pass123", stored.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
}

func TestAuthService_Register_DefaultRole(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	result, err := svc.Register(context.Background(), "bob", "pass123", "")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if result.Role != domain.RoleUser {
		t.Fatalf("expected default role USER, got %s", result.Role)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "bob", "pass", "SUPERUSER"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "carol", "first", domain.RoleUser); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	// Second attempt conflicts regardless of password or role.
	if _, err := svc.Register(context.Background(), "carol", "other", domain.RoleAdmin); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	const attempts = 8
	errs := make(chan error, attempts)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Register(context.Background(), "dave", "pass123", domain.RoleUser)
			errs <- err
		}()
	}
	close(start)
	wg.Wait()
	close(errs)

	var ok, conflict int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrUserExists):
			conflict++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 {
		t.Fatalf("expected exactly one successful registration, got %d", ok)
	}
	if conflict != attempts-1 {
		t.Fatalf("expected %d conflicts, got %d", attempts-1, conflict)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "erin", "s3cret", domain.RoleAdmin); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "erin", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.Username != "erin" || result.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", result)
	}

	claims, err := NewTokenService("secret", time.Hour).Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Subject != "erin" || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "frank", "goodpass", domain.RoleUser); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "frank", "badpass")
	_, unknownUser := svc.Login(context.Background(), "nonexistent", "whatever")

	// Both failure causes must be the identical error value so callers
	// cannot tell registered usernames apart from unregistered ones.
	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPass.Error() != unknownUser.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPass, unknownUser)
	}
}
