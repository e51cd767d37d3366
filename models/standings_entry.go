package models

// StandingsEntry is one row of the league table.
// Played == Won+Drawn+Lost and Points == 3*Won+Drawn hold at all times.
type StandingsEntry struct {
	TeamID       string `json:"team_id"`
	Played       int    `json:"played"`
	Won          int    `json:"won"`
	Drawn        int    `json:"drawn"`
	Lost         int    `json:"lost"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	Points       int    `json:"points"`
}

func (e StandingsEntry) GoalDifference() int {
	return e.GoalsFor - e.GoalsAgainst
}
