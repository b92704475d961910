package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/simfut/league-api/internal/core/domain"
	"github.com/simfut/league-api/internal/core/ports"
)

// TeamService is the team catalog. Reads are open to USER and ADMIN; writes
// are ADMIN only. Every operation runs its guard before touching storage.
type TeamService struct {
	repo   ports.TeamRepository
	logger zerolog.Logger
}

func NewTeamService(repo ports.TeamRepository, logger zerolog.Logger) *TeamService {
	return &TeamService{repo: repo, logger: logger}
}

func (s *TeamService) FindAll(ctx context.Context, auth domain.AuthContext) ([]domain.Team, error) {
	if err := RequireAnyRole(auth, domain.RoleUser, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

func (s *TeamService) FindByID(ctx context.Context, auth domain.AuthContext, id string) (*domain.Team, error) {
	if err := RequireAnyRole(auth, domain.RoleUser, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *TeamService) Create(ctx context.Context, auth domain.AuthContext, input ports.TeamInput) (*domain.Team, error) {
	if err := RequireAnyRole(auth, domain.RoleAdmin); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	team, err := s.repo.Insert(ctx, &domain.Team{
		Name:      input.Name,
		City:      input.City,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("team_id", team.ID).Str("name", team.Name).Msg("team created")
	return team, nil
}

func (s *TeamService) Update(ctx context.Context, auth domain.AuthContext, id string, input ports.TeamInput) (*domain.Team, error) {
	if err := RequireAnyRole(auth, domain.RoleAdmin); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.City = input.City
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *TeamService) Delete(ctx context.Context, auth domain.AuthContext, id string) error {
	if err := RequireAnyRole(auth, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("team_id", id).Msg("team deleted")
	return nil
}
