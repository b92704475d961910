package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/simfut/league-api/internal/core/domain"
	"github.com/simfut/league-api/internal/core/ports"
)

// PlayerService is the player catalog. A player's team reference is resolved
// on create and update; a dangling reference fails with ErrTeamNotFound.
type PlayerService struct {
	repo   ports.PlayerRepository
	teams  ports.TeamRepository
	logger zerolog.Logger
}

func NewPlayerService(repo ports.PlayerRepository, teams ports.TeamRepository, logger zerolog.Logger) *PlayerService {
	return &PlayerService{repo: repo, teams: teams, logger: logger}
}

func (s *PlayerService) FindAll(ctx context.Context, auth domain.AuthContext) ([]domain.Player, error) {
	if err := RequireAnyRole(auth, domain.RoleUser, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

func (s *PlayerService) FindByID(ctx context.Context, auth domain.AuthContext, id string) (*domain.Player, error) {
	if err := RequireAnyRole(auth, domain.RoleUser, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *PlayerService) Create(ctx context.Context, auth domain.AuthContext, input ports.PlayerInput) (*domain.Player, error) {
	if err := RequireAnyRole(auth, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if _, err := s.teams.FindByID(ctx, input.TeamID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	player, err := s.repo.Insert(ctx, &domain.Player{
		Name:        input.Name,
		Position:    input.Position,
		ShirtNumber: input.ShirtNumber,
		TeamID:      input.TeamID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("player_id", player.ID).Str("team_id", player.TeamID).Msg("player created")
	return player, nil
}

func (s *PlayerService) Update(ctx context.Context, auth domain.AuthContext, id string, input ports.PlayerInput) (*domain.Player, error) {
	if err := RequireAnyRole(auth, domain.RoleAdmin); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.teams.FindByID(ctx, input.TeamID); err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Position = input.Position
	existing.ShirtNumber = input.ShirtNumber
	existing.TeamID = input.TeamID
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *PlayerService) Delete(ctx context.Context, auth domain.AuthContext, id string) error {
	if err := RequireAnyRole(auth, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("player_id", id).Msg("player deleted")
	return nil
}
