package services

import (
	"time"

	"github.com/Dosada05/fixture-system/brackets"
	"github.com/Dosada05/fixture-system/models"
)

// --- View-модели, которые отдаются слою отображения ---

type FreeSlot struct {
	Matchday int    `json:"matchday"`
	TeamID   string `json:"team_id"`
}

type LeagueView struct {
	Teams     []models.Team           `json:"teams"`
	Matches   []models.Match          `json:"matches"`
	Standings []models.StandingsEntry `json:"standings"`
	Matchdays []int                   `json:"matchdays"`
	Free      []FreeSlot              `json:"free"`
}

type PlayoffView struct {
	Teams      []models.Team           `json:"teams"`
	Byes       []models.Team           `json:"byes"`
	Rounds     [][]models.PlayoffMatch `json:"rounds"`
	RoundNames []string                `json:"round_names"`
	Champion   *string                 `json:"champion,omitempty"`
}

type SessionView struct {
	ID             string         `json:"id"`
	Format         models.Format  `json:"format"`
	Seeding        models.Seeding `json:"seeding"`
	Teams          []models.Team  `json:"teams"`
	FixtureCreated bool           `json:"fixture_created"`
	League         *LeagueView    `json:"league,omitempty"`
	Playoff        *PlayoffView   `json:"playoff,omitempty"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// --- Хелперы для преобразования состояния движка во view ---

func toLeagueView(fixture *brackets.Fixture, standings *brackets.Standings) *LeagueView {
	view := &LeagueView{
		Teams:     append([]models.Team(nil), fixture.Teams...),
		Matches:   make([]models.Match, len(fixture.Matches)),
		Standings: standings.Table(),
		Matchdays: fixture.Matchdays(),
		Free:      make([]FreeSlot, 0),
	}
	for i, m := range fixture.Matches {
		view.Matches[i] = copyMatch(m)
	}
	for _, day := range view.Matchdays {
		if teamID, ok := fixture.FreeTeam(day); ok {
			view.Free = append(view.Free, FreeSlot{Matchday: day, TeamID: teamID})
		}
	}
	return view
}

func toPlayoffView(b *brackets.Bracket) *PlayoffView {
	view := &PlayoffView{
		Teams:      append([]models.Team(nil), b.Teams...),
		Byes:       append([]models.Team(nil), b.Byes...),
		Rounds:     make([][]models.PlayoffMatch, len(b.Rounds)),
		RoundNames: append([]string(nil), b.Names...),
	}
	for r, round := range b.Rounds {
		view.Rounds[r] = make([]models.PlayoffMatch, len(round))
		for p, m := range round {
			view.Rounds[r][p] = copyPlayoffMatch(m)
		}
	}
	if champion, ok := b.Champion(); ok {
		view.Champion = &champion
	}
	return view
}

// copyMatch detaches the score pointers so views never alias engine state.
func copyMatch(m *models.Match) models.Match {
	out := *m
	out.HomeScore = copyInt(m.HomeScore)
	out.AwayScore = copyInt(m.AwayScore)
	return out
}

func copyPlayoffMatch(m *models.PlayoffMatch) models.PlayoffMatch {
	out := *m
	out.TeamA = copyString(m.TeamA)
	out.TeamB = copyString(m.TeamB)
	out.Winner = copyString(m.Winner)
	return out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
