package brackets

import (
	"fmt"
	"math"

	"github.com/Dosada05/fixture-system/models"
)

// Bracket is a single-elimination tree. Rounds[0] is the first round and the
// last round holds only the final.
type Bracket struct {
	Rounds    [][]*models.PlayoffMatch
	Names     []string
	Teams     []models.Team
	Byes      []models.Team
	NumRounds int

	byes map[string]struct{}
	byID map[string]*models.PlayoffMatch
}

type SingleEliminationGenerator struct{}

func NewSingleEliminationGenerator() *SingleEliminationGenerator {
	return &SingleEliminationGenerator{}
}

func (g *SingleEliminationGenerator) GetName() string {
	return "SingleElimination"
}

// GenerateBracket pads the teams with byes up to the next power of two, seeds the
// first round pairwise and resolves every match where a bye is involved.
func (g *SingleEliminationGenerator) GenerateBracket(params GenerateParams) (*Bracket, error) {
	if err := validateTeams(params.Teams); err != nil {
		return nil, fmt.Errorf("SingleEliminationGenerator: %w", err)
	}
	seeding := params.Seeding
	if seeding == "" {
		seeding = models.SeedingSpread
	}
	if !seeding.IsValid() {
		return nil, fmt.Errorf("SingleEliminationGenerator: unknown seeding %q", seeding)
	}

	n := len(params.Teams)
	numRounds := int(math.Ceil(math.Log2(float64(n))))
	sizeOfFullBracket := 1 << uint(numRounds)
	numByes := sizeOfFullBracket - n

	b := &Bracket{
		Rounds:    make([][]*models.PlayoffMatch, numRounds),
		Names:     RoundNames(numRounds),
		Teams:     make([]models.Team, n),
		NumRounds: numRounds,
		byes:      make(map[string]struct{}, numByes),
		byID:      make(map[string]*models.PlayoffMatch, sizeOfFullBracket-1),
	}
	copy(b.Teams, params.Teams)

	// Built from the final backward so every parent exists before its children.
	for r := numRounds - 1; r >= 0; r-- {
		count := 1 << uint(numRounds-1-r)
		matches := make([]*models.PlayoffMatch, count)
		for p := 0; p < count; p++ {
			m := &models.PlayoffMatch{
				ID:       fmt.Sprintf("R%dM%d", r+1, p+1),
				Round:    r,
				Position: p,
			}
			matches[p] = m
			b.byID[m.ID] = m
		}
		b.Rounds[r] = matches
	}

	padded := b.seed(seeding, numByes, sizeOfFullBracket)

	for i, m := range b.Rounds[0] {
		teamA := padded[2*i].ID
		teamB := padded[2*i+1].ID
		m.TeamA = &teamA
		m.TeamB = &teamB
	}
	for _, m := range b.Rounds[0] {
		if w := b.autoWinner(m); w != nil {
			m.Winner = w
			b.advance(m)
		}
	}

	return b, nil
}

// seed lays out the first-round slots. With SeedingSpread every bye gets its own
// match (byes never exceed half the slots for two or more teams), so no
// bye-versus-bye match is produced. SeedingSequential appends all byes at the end.
func (b *Bracket) seed(seeding models.Seeding, numByes, size int) []models.Team {
	padded := make([]models.Team, 0, size)

	switch seeding {
	case models.SeedingSequential:
		padded = append(padded, b.Teams...)
		for len(padded) < size {
			padded = append(padded, b.addBye())
		}
	default:
		k := 0
		for i := 0; i < size/2; i++ {
			padded = append(padded, b.Teams[k])
			k++
			if i < numByes {
				padded = append(padded, b.addBye())
				continue
			}
			padded = append(padded, b.Teams[k])
			k++
		}
	}

	return padded
}

func (b *Bracket) addBye() models.Team {
	bye := newBye()
	b.Byes = append(b.Byes, bye)
	b.byes[bye.ID] = struct{}{}
	return bye
}

func (b *Bracket) IsBye(teamID string) bool {
	_, ok := b.byes[teamID]
	return ok
}

func (b *Bracket) Match(id string) (*models.PlayoffMatch, bool) {
	m, ok := b.byID[id]
	return m, ok
}

// SelectWinner records teamID as the winner of the match and moves it into the
// parent slot. Every winner further along the path that depended on the old pick
// is cleared. Re-selecting the current winner changes nothing.
func (b *Bracket) SelectWinner(matchID, teamID string) error {
	m, ok := b.byID[matchID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrMatchNotFound, matchID)
	}
	if b.IsBye(teamID) {
		return ErrByeCannotWin
	}
	if m.TeamA == nil || m.TeamB == nil {
		return fmt.Errorf("%w: %q", ErrMatchNotReady, matchID)
	}
	if *m.TeamA != teamID && *m.TeamB != teamID {
		return fmt.Errorf("%w: team %q, match %q", ErrTeamNotInMatch, teamID, matchID)
	}
	if m.Winner != nil && *m.Winner == teamID {
		return nil
	}

	winner := teamID
	m.Winner = &winner
	b.advance(m)
	return nil
}

// Champion returns the winner of the final once it is decided.
func (b *Bracket) Champion() (string, bool) {
	final := b.Final()
	if final == nil || final.Winner == nil || b.IsBye(*final.Winner) {
		return "", false
	}
	return *final.Winner, true
}

func (b *Bracket) Final() *models.PlayoffMatch {
	if len(b.Rounds) == 0 || len(b.Rounds[len(b.Rounds)-1]) == 0 {
		return nil
	}
	return b.Rounds[len(b.Rounds)-1][0]
}

func (b *Bracket) parent(m *models.PlayoffMatch) *models.PlayoffMatch {
	next := m.Round + 1
	if next >= len(b.Rounds) {
		return nil
	}
	return b.Rounds[next][m.Position/2]
}

// advance pushes m.Winner (possibly nil) into the parent slot and walks up the
// tree while the parent's winner changes as a consequence.
func (b *Bracket) advance(m *models.PlayoffMatch) {
	for {
		parent := b.parent(m)
		if parent == nil {
			return
		}

		if m.Position%2 == 0 {
			parent.TeamA = cloneID(m.Winner)
		} else {
			parent.TeamB = cloneID(m.Winner)
		}

		previous := parent.Winner
		parent.Winner = b.autoWinner(parent)
		if sameID(previous, parent.Winner) {
			return
		}
		m = parent
	}
}

// autoWinner returns the side that goes through without a pick: the team facing a
// bye, or a bye when both sides are byes. Nil when the match needs a decision.
func (b *Bracket) autoWinner(m *models.PlayoffMatch) *string {
	if m.TeamA == nil || m.TeamB == nil {
		return nil
	}
	aBye, bBye := b.IsBye(*m.TeamA), b.IsBye(*m.TeamB)
	switch {
	case aBye && bBye:
		return cloneID(m.TeamA)
	case aBye:
		return cloneID(m.TeamB)
	case bBye:
		return cloneID(m.TeamA)
	}
	return nil
}

// RoundNames derives display names from the number of rounds: the last rounds are
// Final, Semifinal, Quarterfinal, Round of 16 and Round of 32, earlier ones "Round N".
func RoundNames(numRounds int) []string {
	names := make([]string, 0, numRounds)
	for i := 0; i < numRounds; i++ {
		switch numRounds - i {
		case 1:
			names = append(names, "Final")
		case 2:
			names = append(names, "Semifinal")
		case 3:
			names = append(names, "Quarterfinal")
		case 4:
			names = append(names, "Round of 16")
		case 5:
			names = append(names, "Round of 32")
		default:
			names = append(names, fmt.Sprintf("Round %d", i+1))
		}
	}
	return names
}

func cloneID(id *string) *string {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func sameID(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
