package ports

import (
	"context"

	"github.com/simfut/league-api/internal/core/domain"
)

// UserRepository defines the interface for account persistence. Username
// uniqueness is enforced by the implementation (a unique index), not by
// callers; Create returns domain.ErrUserExists on a duplicate.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.UserAccount, error)
	Create(ctx context.Context, user *domain.UserAccount) (*domain.UserAccount, error)
}
