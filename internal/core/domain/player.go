package domain

import "time"

// Player belongs to exactly one team.
type Player struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Position    string    `json:"position,omitempty"`
	ShirtNumber int       `json:"shirt_number"`
	TeamID      string    `json:"team_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
