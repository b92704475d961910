package ports

import (
	"context"

	"github.com/simfut/league-api/internal/core/domain"
)

type StandingsService interface {
	Table(ctx context.Context, auth domain.AuthContext) ([]domain.StandingsRow, error)
}

// StandingsCache stores a computed league table for a short TTL.
// Get returns (nil, nil) on a cache miss.
type StandingsCache interface {
	Get(ctx context.Context) ([]domain.StandingsRow, error)
	Set(ctx context.Context, rows []domain.StandingsRow) error
}
