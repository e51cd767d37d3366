package models

// Match is a round-robin fixture. Round is the zero-based rotation index and
// Matchday is always Round+1.
type Match struct {
	ID         string `json:"id"`
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
	HomeScore  *int   `json:"home_score,omitempty"`
	AwayScore  *int   `json:"away_score,omitempty"`
	Played     bool   `json:"played"`
	Round      int    `json:"round"`
	Matchday   int    `json:"matchday"`
}

// PlayoffMatch is a node of the elimination bracket. The parent of (Round, Position)
// is (Round+1, Position/2); even positions feed TeamA, odd positions feed TeamB.
type PlayoffMatch struct {
	ID       string  `json:"id"`
	Round    int     `json:"round"`
	Position int     `json:"position"`
	TeamA    *string `json:"team_a,omitempty"`
	TeamB    *string `json:"team_b,omitempty"`
	Winner   *string `json:"winner,omitempty"`
}
