package brackets

import (
	"fmt"
	"sort"

	"github.com/Dosada05/fixture-system/models"
)

const (
	pointsForWin  = 3
	pointsForDraw = 1
)

// Standings aggregates results of a Fixture into a ranked table.
// It writes scores back onto the fixture's matches.
type Standings struct {
	entries []*models.StandingsEntry // current ranked order
	byTeam  map[string]*models.StandingsEntry
	matches map[string]*models.Match
}

// NewStandings creates a zeroed table with one entry per registered team, in
// registration order. The bye never gets an entry.
func NewStandings(fixture *Fixture) *Standings {
	s := &Standings{
		entries: make([]*models.StandingsEntry, 0, len(fixture.Teams)),
		byTeam:  make(map[string]*models.StandingsEntry, len(fixture.Teams)),
		matches: make(map[string]*models.Match, len(fixture.Matches)),
	}
	for _, t := range fixture.Teams {
		e := &models.StandingsEntry{TeamID: t.ID}
		s.entries = append(s.entries, e)
		s.byTeam[t.ID] = e
	}
	for _, m := range fixture.Matches {
		s.matches[m.ID] = m
	}
	for _, m := range fixture.Matches {
		if m.Played && m.HomeScore != nil && m.AwayScore != nil {
			s.contribute(m, *m.HomeScore, *m.AwayScore, 1)
		}
	}
	s.rank()
	return s
}

// ApplyResult records the score of a match and returns the re-ranked table.
// A previously recorded score for the same match is reversed first, so only the
// latest score ever counts. On error nothing changes.
func (s *Standings) ApplyResult(matchID string, homeScore, awayScore int) ([]models.StandingsEntry, error) {
	if homeScore < 0 || awayScore < 0 {
		return nil, fmt.Errorf("%w: %d-%d", ErrNegativeScore, homeScore, awayScore)
	}
	m, ok := s.matches[matchID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMatchNotFound, matchID)
	}
	if s.byTeam[m.HomeTeamID] == nil || s.byTeam[m.AwayTeamID] == nil {
		return nil, fmt.Errorf("%w: %q references an unknown team", ErrMatchNotFound, matchID)
	}

	if m.Played && m.HomeScore != nil && m.AwayScore != nil {
		s.contribute(m, *m.HomeScore, *m.AwayScore, -1)
	}
	s.contribute(m, homeScore, awayScore, 1)

	hs, as := homeScore, awayScore
	m.HomeScore = &hs
	m.AwayScore = &as
	m.Played = true

	s.rank()
	return s.Table(), nil
}

// Table returns a copy of the ranked entries.
func (s *Standings) Table() []models.StandingsEntry {
	out := make([]models.StandingsEntry, len(s.entries))
	for i, e := range s.entries {
		out[i] = *e
	}
	return out
}

func (s *Standings) Entry(teamID string) (models.StandingsEntry, bool) {
	e, ok := s.byTeam[teamID]
	if !ok {
		return models.StandingsEntry{}, false
	}
	return *e, true
}

// contribute adds (sign=1) or removes (sign=-1) one result from both teams' rows.
func (s *Standings) contribute(m *models.Match, homeScore, awayScore, sign int) {
	home := s.byTeam[m.HomeTeamID]
	away := s.byTeam[m.AwayTeamID]

	home.Played += sign
	away.Played += sign

	home.GoalsFor += sign * homeScore
	home.GoalsAgainst += sign * awayScore
	away.GoalsFor += sign * awayScore
	away.GoalsAgainst += sign * homeScore

	switch {
	case homeScore > awayScore:
		home.Won += sign
		away.Lost += sign
		home.Points += sign * pointsForWin
	case homeScore < awayScore:
		away.Won += sign
		home.Lost += sign
		away.Points += sign * pointsForWin
	default:
		home.Drawn += sign
		away.Drawn += sign
		home.Points += sign * pointsForDraw
		away.Points += sign * pointsForDraw
	}
}

// rank orders by points, goal difference, then goals for. Remaining ties keep
// their previous relative order.
func (s *Standings) rank() {
	sort.SliceStable(s.entries, func(i, j int) bool {
		a, b := s.entries[i], s.entries[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference() != b.GoalDifference() {
			return a.GoalDifference() > b.GoalDifference()
		}
		return a.GoalsFor > b.GoalsFor
	})
}
