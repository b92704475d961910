package ports

import (
	"context"

	"github.com/simfut/league-api/internal/core/domain"
)

// AuthResult carries the issued token plus the public identity fields
// returned by register and login.
type AuthResult struct {
	Token    string      `json:"token"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

type AuthService interface {
	Register(ctx context.Context, username, password string, role domain.Role) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
}

// TokenService issues and verifies signed, time-bounded tokens. Verify
// reports exactly one of domain.ErrTokenMalformed,
// domain.ErrTokenSignatureInvalid or domain.ErrTokenExpired on failure,
// checked in that order.
type TokenService interface {
	Issue(username string, role domain.Role) (string, error)
	Verify(token string) (*domain.Claims, error)
}
