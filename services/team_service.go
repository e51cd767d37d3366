package services

import (
	"fmt"
	"strings"

	"github.com/Dosada05/fixture-system/models"
	"github.com/google/uuid"
)

// TeamRegistry is the ordered list of teams of one session.
type TeamRegistry struct {
	teams []models.Team
}

func NewTeamRegistry() *TeamRegistry {
	return &TeamRegistry{teams: make([]models.Team, 0)}
}

// Add appends a team with a fresh id. Names are trimmed and must be unique,
// ignoring case.
func (r *TeamRegistry) Add(name string) (models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Team{}, ErrTeamNameRequired
	}
	if r.nameTaken(name, "") {
		return models.Team{}, fmt.Errorf("%w: %q", ErrTeamNameConflict, name)
	}

	team := models.Team{ID: uuid.NewString(), Name: name}
	r.teams = append(r.teams, team)
	return team, nil
}

// Rename changes only the display name; the id stays the same.
func (r *TeamRegistry) Rename(id, name string) (models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Team{}, ErrTeamNameRequired
	}
	idx := r.indexOf(id)
	if idx == -1 {
		return models.Team{}, fmt.Errorf("%w: %q", ErrTeamNotFound, id)
	}
	if r.nameTaken(name, id) {
		return models.Team{}, fmt.Errorf("%w: %q", ErrTeamNameConflict, name)
	}

	r.teams[idx].Name = name
	return r.teams[idx], nil
}

func (r *TeamRegistry) Remove(id string) error {
	idx := r.indexOf(id)
	if idx == -1 {
		return fmt.Errorf("%w: %q", ErrTeamNotFound, id)
	}
	r.teams = append(r.teams[:idx], r.teams[idx+1:]...)
	return nil
}

// Shuffle reorders the teams with the given shuffle function (rand.Shuffle in
// production).
func (r *TeamRegistry) Shuffle(shuffle func(n int, swap func(i, j int))) {
	shuffle(len(r.teams), func(i, j int) {
		r.teams[i], r.teams[j] = r.teams[j], r.teams[i]
	})
}

// Snapshot returns a copy the engine can consume without seeing later edits.
func (r *TeamRegistry) Snapshot() []models.Team {
	out := make([]models.Team, len(r.teams))
	copy(out, r.teams)
	return out
}

func (r *TeamRegistry) Len() int {
	return len(r.teams)
}

func (r *TeamRegistry) Get(id string) (models.Team, bool) {
	idx := r.indexOf(id)
	if idx == -1 {
		return models.Team{}, false
	}
	return r.teams[idx], true
}

func (r *TeamRegistry) Clone() *TeamRegistry {
	return &TeamRegistry{teams: r.Snapshot()}
}

func (r *TeamRegistry) indexOf(id string) int {
	for i, t := range r.teams {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (r *TeamRegistry) nameTaken(name, exceptID string) bool {
	for _, t := range r.teams {
		if t.ID != exceptID && strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}
