package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/simfut/league-api/internal/core/domain"
	"github.com/simfut/league-api/internal/core/ports"
)

const (
	pointsWin  = 3
	pointsDraw = 1
)

// StandingsService computes the league table from recorded matches. The
// table is cached for a short TTL; a cache failure degrades to a recompute,
// never to a request failure.
type StandingsService struct {
	matches ports.MatchRepository
	teams   ports.TeamRepository
	cache   ports.StandingsCache
	logger  zerolog.Logger
}

func NewStandingsService(matches ports.MatchRepository, teams ports.TeamRepository, cache ports.StandingsCache, logger zerolog.Logger) *StandingsService {
	return &StandingsService{matches: matches, teams: teams, cache: cache, logger: logger}
}

// Table returns the league table sorted by points, goal difference, goals
// for, then team name.
func (s *StandingsService) Table(ctx context.Context, auth domain.AuthContext) ([]domain.StandingsRow, error) {
	if err := RequireAnyRole(auth, domain.RoleUser, domain.RoleAdmin); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if rows, err := s.cache.Get(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("standings cache read failed")
		} else if rows != nil {
			return rows, nil
		}
	}

	rows, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, rows); err != nil {
			s.logger.Warn().Err(err).Msg("standings cache write failed")
		}
	}
	return rows, nil
}

func (s *StandingsService) compute(ctx context.Context) ([]domain.StandingsRow, error) {
	teams, err := s.teams.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := s.matches.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	byTeam := make(map[string]*domain.StandingsRow, len(teams))
	for _, t := range teams {
		byTeam[t.ID] = &domain.StandingsRow{TeamID: t.ID, TeamName: t.Name}
	}

	for _, m := range matches {
		home, away := byTeam[m.HomeTeamID], byTeam[m.AwayTeamID]
		if home == nil || away == nil {
			// match references a deleted team; skip it
			continue
		}
		applyResult(home, m.HomeGoals, m.AwayGoals)
		applyResult(away, m.AwayGoals, m.HomeGoals)
	}

	rows := make([]domain.StandingsRow, 0, len(byTeam))
	for _, row := range byTeam {
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.TeamName < b.TeamName
	})
	return rows, nil
}

func applyResult(row *domain.StandingsRow, scored, conceded int) {
	row.Played++
	row.GoalsFor += scored
	row.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		row.Wins++
		row.Points += pointsWin
	case scored == conceded:
		row.Draws++
		row.Points += pointsDraw
	default:
		row.Losses++
	}
}
