package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/Dosada05/fixture-system/brackets"
	"github.com/Dosada05/fixture-system/models"
	"github.com/Dosada05/fixture-system/repositories"
	"github.com/google/uuid"
)

// Broadcaster delivers session updates to display clients. *brackets.Hub implements it.
type Broadcaster interface {
	Publish(roomID, messageType string, payload interface{})
}

// Session owns the team list and the structures built from it. All access goes
// through mu, so events on one session are handled one at a time.
type Session struct {
	mu sync.Mutex

	ID        string
	Format    models.Format
	Seeding   models.Seeding
	Registry  *TeamRegistry
	Fixture   *brackets.Fixture
	Standings *brackets.Standings
	Bracket   *brackets.Bracket
	UpdatedAt time.Time
}

func (s *Session) active() bool {
	return s.Fixture != nil || s.Bracket != nil
}

func (s *Session) reset() {
	s.Fixture = nil
	s.Standings = nil
	s.Bracket = nil
}

type SetFormatInput struct {
	Format  models.Format  `json:"format"`
	Seeding models.Seeding `json:"seeding,omitempty"`
}

type CreateFixtureInput struct {
	Shuffle bool `json:"shuffle"`
}

type FixtureService interface {
	CreateSession(ctx context.Context) (*SessionView, error)
	GetSession(ctx context.Context, sessionID string) (*SessionView, error)
	DeleteSession(ctx context.Context, sessionID string) error

	ListTeams(ctx context.Context, sessionID string) ([]models.Team, error)
	AddTeam(ctx context.Context, sessionID, name string) (models.Team, error)
	RenameTeam(ctx context.Context, sessionID, teamID, name string) (models.Team, error)
	RemoveTeam(ctx context.Context, sessionID, teamID string) error

	SetFormat(ctx context.Context, sessionID string, input SetFormatInput) (*SessionView, error)
	CreateFixture(ctx context.Context, sessionID string, input CreateFixtureInput) (*SessionView, error)
	ResetFixture(ctx context.Context, sessionID string) (*SessionView, error)

	SubmitResult(ctx context.Context, sessionID, matchID string, homeScore, awayScore int) (*LeagueView, error)
	PickWinner(ctx context.Context, sessionID, matchID, teamID string) (*PlayoffView, error)
	GetLeague(ctx context.Context, sessionID string) (*LeagueView, error)
	GetPlayoff(ctx context.Context, sessionID string) (*PlayoffView, error)

	SweepIdle(ctx context.Context, ttl time.Duration) (int, error)
}

type fixtureService struct {
	repo        repositories.SessionRepository[*Session]
	broadcaster Broadcaster
	logger      *slog.Logger
	roundRobin  *brackets.RoundRobinGenerator
	singleElim  *brackets.SingleEliminationGenerator
	shuffle     func(n int, swap func(i, j int))
	now         func() time.Time
}

func NewFixtureService(
	repo repositories.SessionRepository[*Session],
	broadcaster Broadcaster,
	logger *slog.Logger,
) FixtureService {
	if logger == nil {
		logger = slog.Default()
	}
	return &fixtureService{
		repo:        repo,
		broadcaster: broadcaster,
		logger:      logger,
		roundRobin:  brackets.NewRoundRobinGenerator(),
		singleElim:  brackets.NewSingleEliminationGenerator(),
		shuffle:     rand.Shuffle,
		now:         time.Now,
	}
}

func (s *fixtureService) CreateSession(ctx context.Context) (*SessionView, error) {
	session := &Session{
		ID:        uuid.NewString(),
		Format:    models.FormatTournament,
		Seeding:   models.SeedingSpread,
		Registry:  NewTeamRegistry(),
		UpdatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, session.ID, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.logger.InfoContext(ctx, "session created", slog.String("session_id", session.ID))
	return sessionView(session), nil
}

func (s *fixtureService) GetSession(ctx context.Context, sessionID string) (*SessionView, error) {
	session, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return sessionView(session), nil
}

func (s *fixtureService) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return mapRepoError(err)
	}
	s.logger.InfoContext(ctx, "session deleted", slog.String("session_id", sessionID))
	return nil
}

func (s *fixtureService) ListTeams(ctx context.Context, sessionID string) ([]models.Team, error) {
	session, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.Registry.Snapshot(), nil
}

func (s *fixtureService) AddTeam(ctx context.Context, sessionID, name string) (models.Team, error) {
	session, err := s.lookup(ctx, sessionID)
	if err != nil {
		return models.Team{}, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	registry := session.Registry.Clone()
	team, err := registry.Add(name)
	if err != nil {
		return models.Team{}, err
	}
	if err := s.commitTeams(ctx, session, registry); err != nil {
		return models.Team{}, err
	}
	return team, nil
}

// RenameTeam keeps the fixture: ids are what the structures reference.
func (s *fixtureService) RenameTeam(ctx context.Context, sessionID, teamID, name string) (models.Team, error) {
	session, err := s.lookup(ctx, sessionID)
	if err != nil {
		return models.Team{}, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	team, err := session.Registry.Rename(teamID, name)
	if err != nil {
		return models.Team{}, err
	}
	s.renameInStructures(session, team)
	session.UpdatedAt = s.now()

	s.logger.InfoContext(ctx, "team renamed",
		slog.String("session_id", session.ID),
		slog.String("team_id", team.ID))
	s.publish(session, brackets.MessageTeamsUpdated, session.Registry.Snapshot())
	return team, nil
}

func (s *fixtureService) RemoveTeam(ctx context.Context, sessionID, teamID string) error {
	session, err := s.lookup(ctx, sessionID)
	if err != nil {
		return err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	registry := session.Registry.Clone()
	if err := registry.Remove(teamID); err != nil {
		return err
	}
	return s.commitTeams(ctx, session, registry)
}

func (s *fixtureService) SetFormat(ctx context.Context, sessionID string, input SetFormatInput) (*SessionView, error) {
	if !input.Format.IsValid() {
		return nil, ErrInvalidFormat
	}
	session, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	seeding := input.Seeding
	if seeding == "" {
		seeding = session.Seeding
	}
	if !seeding.IsValid() {
		return nil, ErrInvalidSeeding
	}

	if session.active() {
		built, err := s.build(input.Format, seeding, session.Registry.Snapshot())
		if err != nil {
			return nil, err
		}
		session.Format, session.Seeding = input.Format, seeding
		s.install(ctx, session, built)
		return sessionView(session), nil
	}

	session.Format, session.Seeding = input.Format, seeding
	session.UpdatedAt = s.now()
	s.logger.InfoContext(ctx, "session format changed",
		slog.String("session_id", session.ID),
		slog.String("format", string(session.Format)),
		slog.String("seeding", string(session.Seeding)))
	return sessionView(session), nil
}

func (s *fixtureService) CreateFixture(ctx context.Context, sessionID string, input CreateFixtureInput) (*SessionView, error) {
	session, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	registry := session.Registry
	if input.Shuffle {
		registry = registry.Clone()
		registry.Shuffle(s.shuffle)
	}
	built, err := s.build(session.Format, session.Seeding, registry.Snapshot())
	if err != nil {
		return nil, err
	}
	session.Registry = registry
	s.install(ctx, session, built)
	return sessionView(session), nil
}

func (s *fixtureService) ResetFixture(ctx context.Context, sessionID string) (*SessionView, error) {
	session, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	session.reset()
	session.UpdatedAt = s.now()
	s.logger.InfoContext(ctx, "fixture reset", slog.String("session_id", session.ID))

	view := sessionView(session)
	s.publish(session, brackets.MessageFixtureReset, view)
	return view, nil
}

func (s *fixtureService) SubmitResult(ctx context.Context, sessionID, matchID string, homeScore, awayScore int) (*LeagueView, error) {
	session, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	if err := requireStructure(session, models.FormatTournament); err != nil {
		return nil, err
	}
	if _, err := session.Standings.ApplyResult(matchID, homeScore, awayScore); err != nil {
		return nil, fmt.Errorf("submit result for match %s: %w", matchID, err)
	}
	session.UpdatedAt = s.now()

	s.logger.InfoContext(ctx, "result recorded",
		slog.String("session_id", session.ID),
		slog.String("match_id", matchID),
		slog.Int("home_score", homeScore),
		slog.Int("away_score", awayScore))

	view := toLeagueView(session.Fixture, session.Standings)
	s.publish(session, brackets.MessageStandingsUpdated, view)
	return view, nil
}

func (s *fixtureService) PickWinner(ctx context.Context, sessionID, matchID, teamID string) (*PlayoffView, error) {
	session, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	if err := requireStructure(session, models.FormatPlayoff); err != nil {
		return nil, err
	}
	if err := session.Bracket.SelectWinner(matchID, teamID); err != nil {
		return nil, fmt.Errorf("pick winner for match %s: %w", matchID, err)
	}
	session.UpdatedAt = s.now()

	s.logger.InfoContext(ctx, "winner picked",
		slog.String("session_id", session.ID),
		slog.String("match_id", matchID),
		slog.String("team_id", teamID))

	view := toPlayoffView(session.Bracket)
	s.publish(session, brackets.MessageBracketUpdated, view)
	return view, nil
}

func (s *fixtureService) GetLeague(ctx context.Context, sessionID string) (*LeagueView, error) {
	session, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	if err := requireStructure(session, models.FormatTournament); err != nil {
		return nil, err
	}
	return toLeagueView(session.Fixture, session.Standings), nil
}

func (s *fixtureService) GetPlayoff(ctx context.Context, sessionID string) (*PlayoffView, error) {
	session, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	if err := requireStructure(session, models.FormatPlayoff); err != nil {
		return nil, err
	}
	return toPlayoffView(session.Bracket), nil
}

// SweepIdle drops sessions nobody has used for ttl and returns how many were removed.
func (s *fixtureService) SweepIdle(ctx context.Context, ttl time.Duration) (int, error) {
	ids, err := s.repo.ListIdle(ctx, s.now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("failed to list idle sessions: %w", err)
	}
	removed := 0
	for _, id := range ids {
		if err := s.repo.Delete(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrSessionNotFound) {
				continue
			}
			return removed, fmt.Errorf("failed to delete idle session %s: %w", id, err)
		}
		removed++
	}
	if removed > 0 {
		s.logger.InfoContext(ctx, "idle sessions swept", slog.Int("removed", removed))
	}
	return removed, nil
}

// --- внутренние хелперы ---

type builtStructures struct {
	fixture   *brackets.Fixture
	standings *brackets.Standings
	bracket   *brackets.Bracket
}

// build runs a full rebuild from the given teams. Nothing is installed on error.
func (s *fixtureService) build(format models.Format, seeding models.Seeding, teams []models.Team) (*builtStructures, error) {
	params := brackets.GenerateParams{Teams: teams, Seeding: seeding}
	switch format {
	case models.FormatTournament:
		fixture, err := s.roundRobin.GenerateFixture(params)
		if err != nil {
			return nil, fmt.Errorf("failed to build league fixture: %w", err)
		}
		return &builtStructures{fixture: fixture, standings: brackets.NewStandings(fixture)}, nil
	case models.FormatPlayoff:
		bracket, err := s.singleElim.GenerateBracket(params)
		if err != nil {
			return nil, fmt.Errorf("failed to build playoff bracket: %w", err)
		}
		return &builtStructures{bracket: bracket}, nil
	default:
		return nil, ErrInvalidFormat
	}
}

func (s *fixtureService) install(ctx context.Context, session *Session, built *builtStructures) {
	session.Fixture = built.fixture
	session.Standings = built.standings
	session.Bracket = built.bracket
	session.UpdatedAt = s.now()

	s.logger.InfoContext(ctx, "fixture rebuilt",
		slog.String("session_id", session.ID),
		slog.String("format", string(session.Format)),
		slog.Int("teams", session.Registry.Len()))
	s.publish(session, brackets.MessageFixtureRebuilt, sessionView(session))
}

// commitTeams swaps in the edited registry. With an active fixture the structures
// are rebuilt first and the edit is rejected if that fails.
func (s *fixtureService) commitTeams(ctx context.Context, session *Session, registry *TeamRegistry) error {
	var built *builtStructures
	if session.active() {
		var err error
		built, err = s.build(session.Format, session.Seeding, registry.Snapshot())
		if err != nil {
			return err
		}
	}

	session.Registry = registry
	session.UpdatedAt = s.now()
	s.logger.InfoContext(ctx, "teams updated",
		slog.String("session_id", session.ID),
		slog.Int("teams", registry.Len()))
	s.publish(session, brackets.MessageTeamsUpdated, registry.Snapshot())

	if built != nil {
		s.install(ctx, session, built)
	}
	return nil
}

func (s *fixtureService) renameInStructures(session *Session, team models.Team) {
	rename := func(teams []models.Team) {
		for i := range teams {
			if teams[i].ID == team.ID {
				teams[i].Name = team.Name
			}
		}
	}
	if session.Fixture != nil {
		rename(session.Fixture.Teams)
	}
	if session.Bracket != nil {
		rename(session.Bracket.Teams)
	}
}

func (s *fixtureService) lookup(ctx context.Context, sessionID string) (*Session, error) {
	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if err := s.repo.Touch(ctx, sessionID); err != nil {
		return nil, mapRepoError(err)
	}
	return session, nil
}

func (s *fixtureService) publish(session *Session, messageType string, payload interface{}) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.Publish(brackets.RoomForSession(session.ID), messageType, payload)
}

func requireStructure(session *Session, format models.Format) error {
	if session.Format != format {
		return fmt.Errorf("%w: session is %s", ErrWrongFormat, session.Format)
	}
	if !session.active() {
		return ErrFixtureNotCreated
	}
	return nil
}

func mapRepoError(err error) error {
	if errors.Is(err, repositories.ErrSessionNotFound) {
		return ErrSessionNotFound
	}
	return err
}

func sessionView(session *Session) *SessionView {
	view := &SessionView{
		ID:             session.ID,
		Format:         session.Format,
		Seeding:        session.Seeding,
		Teams:          session.Registry.Snapshot(),
		FixtureCreated: session.active(),
		UpdatedAt:      session.UpdatedAt,
	}
	if session.Fixture != nil && session.Standings != nil {
		view.League = toLeagueView(session.Fixture, session.Standings)
	}
	if session.Bracket != nil {
		view.Playoff = toPlayoffView(session.Bracket)
	}
	return view
}
