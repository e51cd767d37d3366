package brackets

import (
	"errors"
	"fmt"

	"github.com/Dosada05/fixture-system/models"
	"github.com/google/uuid"
)

// ByeName is the display name of every synthetic bye entity.
const ByeName = "BYE"

const byeIDPrefix = "bye-"

var (
	ErrNotEnoughTeams  = errors.New("not enough teams (minimum 2 required)")
	ErrDuplicateTeamID = errors.New("duplicate team id")
	ErrNegativeScore   = errors.New("score must not be negative")
	ErrMatchNotFound   = errors.New("match not found")
	ErrTeamNotInMatch  = errors.New("team does not play in this match")
	ErrByeCannotWin    = errors.New("a bye cannot be selected as winner")
	ErrMatchNotReady   = errors.New("match is still waiting for an opponent")
)

type GenerateParams struct {
	Teams   []models.Team
	Seeding models.Seeding // playoff only, defaults to SeedingSpread
}

// newBye returns a placeholder entity whose id cannot collide with a registered team.
func newBye() models.Team {
	return models.Team{ID: byeIDPrefix + uuid.NewString(), Name: ByeName}
}

func validateTeams(teams []models.Team) error {
	if len(teams) < 2 {
		return fmt.Errorf("%w: found %d", ErrNotEnoughTeams, len(teams))
	}
	seen := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateTeamID, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
