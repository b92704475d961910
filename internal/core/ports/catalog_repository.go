package ports

import (
	"context"

	"github.com/simfut/league-api/internal/core/domain"
)

// Catalog repositories are plain CRUD collaborators. Lookups of a missing
// entity return the matching domain.Err*NotFound sentinel.

type TeamRepository interface {
	FindAll(ctx context.Context) ([]domain.Team, error)
	FindByID(ctx context.Context, id string) (*domain.Team, error)
	Insert(ctx context.Context, team *domain.Team) (*domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id string) error
}

type PlayerRepository interface {
	FindAll(ctx context.Context) ([]domain.Player, error)
	FindByID(ctx context.Context, id string) (*domain.Player, error)
	Insert(ctx context.Context, player *domain.Player) (*domain.Player, error)
	Update(ctx context.Context, player *domain.Player) error
	Delete(ctx context.Context, id string) error
}

type MatchRepository interface {
	FindAll(ctx context.Context) ([]domain.Match, error)
	FindByID(ctx context.Context, id string) (*domain.Match, error)
	Insert(ctx context.Context, match *domain.Match) (*domain.Match, error)
	Update(ctx context.Context, match *domain.Match) error
	Delete(ctx context.Context, id string) error
}
