package brackets

import (
	"fmt"
	"sort"

	"github.com/Dosada05/fixture-system/models"
)

// Fixture is a complete single round-robin schedule.
type Fixture struct {
	Teams   []models.Team // registered teams, bye excluded
	Bye     *models.Team  // set when the team count is odd
	Matches []*models.Match

	// free maps a matchday to the team paired with the bye on that day.
	free map[int]string
}

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() *RoundRobinGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

// GenerateFixture builds the schedule with the circle method: the team at index 0
// stays fixed, the others rotate one position clockwise before every round after the
// first, and index i meets index len-1-i. Pairings against the bye are not emitted
// as matches; the opponent is recorded as free for that matchday instead.
// The caller's slice is never modified.
func (g *RoundRobinGenerator) GenerateFixture(params GenerateParams) (*Fixture, error) {
	if err := validateTeams(params.Teams); err != nil {
		return nil, fmt.Errorf("RoundRobinGenerator: %w", err)
	}

	teams := make([]models.Team, len(params.Teams))
	copy(teams, params.Teams)

	fixture := &Fixture{
		Teams: teams,
		free:  make(map[int]string),
	}

	working := make([]models.Team, len(teams), len(teams)+1)
	copy(working, teams)
	if len(working)%2 != 0 {
		bye := newBye()
		fixture.Bye = &bye
		working = append(working, bye)
	}

	n := len(working)
	totalRounds := n - 1
	matchesPerRound := n / 2
	fixture.Matches = make([]*models.Match, 0, totalRounds*matchesPerRound)

	for round := 0; round < totalRounds; round++ {
		if round > 0 {
			last := working[n-1]
			copy(working[2:], working[1:n-1])
			working[1] = last
		}

		for i := 0; i < matchesPerRound; i++ {
			home := working[i]
			away := working[n-1-i]

			if fixture.IsBye(home.ID) {
				fixture.free[round+1] = away.ID
				continue
			}
			if fixture.IsBye(away.ID) {
				fixture.free[round+1] = home.ID
				continue
			}

			fixture.Matches = append(fixture.Matches, &models.Match{
				ID:         fmt.Sprintf("D%dM%d", round+1, i+1),
				HomeTeamID: home.ID,
				AwayTeamID: away.ID,
				Round:      round,
				Matchday:   round + 1,
			})
		}
	}

	return fixture, nil
}

func (f *Fixture) IsBye(teamID string) bool {
	return f.Bye != nil && f.Bye.ID == teamID
}

// Matchdays returns the distinct matchday numbers in ascending order.
func (f *Fixture) Matchdays() []int {
	seen := make(map[int]struct{})
	days := make([]int, 0)
	for _, m := range f.Matches {
		if _, ok := seen[m.Matchday]; ok {
			continue
		}
		seen[m.Matchday] = struct{}{}
		days = append(days, m.Matchday)
	}
	sort.Ints(days)
	return days
}

// FreeTeam reports which team sits out the given matchday, if any.
func (f *Fixture) FreeTeam(matchday int) (string, bool) {
	id, ok := f.free[matchday]
	return id, ok
}

func (f *Fixture) MatchesOn(matchday int) []*models.Match {
	out := make([]*models.Match, 0)
	for _, m := range f.Matches {
		if m.Matchday == matchday {
			out = append(out, m)
		}
	}
	return out
}

func (f *Fixture) Match(id string) (*models.Match, bool) {
	for _, m := range f.Matches {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}
