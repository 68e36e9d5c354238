package models

// PlayerTotal is one player's accumulated score across finished games
type PlayerTotal struct {
	// Player is the display name the score was recorded under
	Player string `json:"player"`

	// TotalPoints is the sum of the player's final scores
	TotalPoints int `json:"total_points"`
}

// LeaderboardEntry is one ranked row of the all-time leaderboard
type LeaderboardEntry struct {
	// Position is the 1-based rank
	Position int `json:"position"`

	// Player is the display name
	Player string `json:"player"`

	// TotalPoints is the accumulated score
	TotalPoints int `json:"total_points"`
}
