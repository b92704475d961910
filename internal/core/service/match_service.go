package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/simfut/league-api/internal/core/domain"
	"github.com/simfut/league-api/internal/core/ports"
)

// MatchService is the match catalog. Create is ADMIN-gated exactly like the
// other resources. Both team references must resolve and must differ.
type MatchService struct {
	repo   ports.MatchRepository
	teams  ports.TeamRepository
	logger zerolog.Logger
}

func NewMatchService(repo ports.MatchRepository, teams ports.TeamRepository, logger zerolog.Logger) *MatchService {
	return &MatchService{repo: repo, teams: teams, logger: logger}
}

func (s *MatchService) FindAll(ctx context.Context, auth domain.AuthContext) ([]domain.Match, error) {
	if err := RequireAnyRole(auth, domain.RoleUser, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

func (s *MatchService) FindByID(ctx context.Context, auth domain.AuthContext, id string) (*domain.Match, error) {
	if err := RequireAnyRole(auth, domain.RoleUser, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *MatchService) Create(ctx context.Context, auth domain.AuthContext, input ports.MatchInput) (*domain.Match, error) {
	if err := RequireAnyRole(auth, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.resolveTeams(ctx, input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	match, err := s.repo.Insert(ctx, &domain.Match{
		Date:       input.Date,
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		HomeGoals:  input.HomeGoals,
		AwayGoals:  input.AwayGoals,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("match_id", match.ID).
		Str("home_team_id", match.HomeTeamID).
		Str("away_team_id", match.AwayTeamID).
		Msg("match created")
	return match, nil
}

func (s *MatchService) Update(ctx context.Context, auth domain.AuthContext, id string, input ports.MatchInput) (*domain.Match, error) {
	if err := RequireAnyRole(auth, domain.RoleAdmin); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolveTeams(ctx, input); err != nil {
		return nil, err
	}

	existing.Date = input.Date
	existing.HomeTeamID = input.HomeTeamID
	existing.AwayTeamID = input.AwayTeamID
	existing.HomeGoals = input.HomeGoals
	existing.AwayGoals = input.AwayGoals
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *MatchService) Delete(ctx context.Context, auth domain.AuthContext, id string) error {
	if err := RequireAnyRole(auth, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("match_id", id).Msg("match deleted")
	return nil
}

func (s *MatchService) resolveTeams(ctx context.Context, input ports.MatchInput) error {
	if input.HomeTeamID == input.AwayTeamID {
		return domain.ErrSameTeam
	}
	if _, err := s.teams.FindByID(ctx, input.HomeTeamID); err != nil {
		return err
	}
	if _, err := s.teams.FindByID(ctx, input.AwayTeamID); err != nil {
		return err
	}
	return nil
}
