package ports

import (
	"context"
	"time"

	"github.com/simfut/league-api/internal/core/domain"
)

// Catalog services take the caller's AuthContext explicitly; every operation
// performs its role check before touching storage.

type TeamInput struct {
	Name string
	City string
}

type PlayerInput struct {
	Name        string
	Position    string
	ShirtNumber int
	TeamID      string
}

type MatchInput struct {
	Date       time.Time
	HomeTeamID string
	AwayTeamID string
	HomeGoals  int
	AwayGoals  int
}

type TeamService interface {
	FindAll(ctx context.Context, auth domain.AuthContext) ([]domain.Team, error)
	FindByID(ctx context.Context, auth domain.AuthContext, id string) (*domain.Team, error)
	Create(ctx context.Context, auth domain.AuthContext, input TeamInput) (*domain.Team, error)
	Update(ctx context.Context, auth domain.AuthContext, id string, input TeamInput) (*domain.Team, error)
	Delete(ctx context.Context, auth domain.AuthContext, id string) error
}

type PlayerService interface {
	FindAll(ctx context.Context, auth domain.AuthContext) ([]domain.Player, error)
	FindByID(ctx context.Context, auth domain.AuthContext, id string) (*domain.Player, error)
	Create(ctx context.Context, auth domain.AuthContext, input PlayerInput) (*domain.Player, error)
	Update(ctx context.Context, auth domain.AuthContext, id string, input PlayerInput) (*domain.Player, error)
	Delete(ctx context.Context, auth domain.AuthContext, id string) error
}

type MatchService interface {
	FindAll(ctx context.Context, auth domain.AuthContext) ([]domain.Match, error)
	FindByID(ctx context.Context, auth domain.AuthContext, id string) (*domain.Match, error)
	Create(ctx context.Context, auth domain.AuthContext, input MatchInput) (*domain.Match, error)
	Update(ctx context.Context, auth domain.AuthContext, id string, input MatchInput) (*domain.Match, error)
	Delete(ctx context.Context, auth domain.AuthContext, id string) error
}
