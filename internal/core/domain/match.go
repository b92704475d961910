package domain

import "time"

// Match is a played or scheduled fixture between two distinct teams.
type Match struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	HomeTeamID string    `json:"home_team_id"`
	AwayTeamID string    `json:"away_team_id"`
	HomeGoals  int       `json:"home_goals"`
	AwayGoals  int       `json:"away_goals"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
