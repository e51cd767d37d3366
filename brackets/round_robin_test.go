package brackets

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Dosada05/fixture-system/models"
)

func makeTeams(n int) []models.Team {
	teams := make([]models.Team, n)
	for i := range teams {
		teams[i] = models.Team{ID: fmt.Sprintf("t%d", i+1), Name: fmt.Sprintf("Team %d", i+1)}
	}
	return teams
}

func namedTeams(names ...string) []models.Team {
	teams := make([]models.Team, len(names))
	for i, n := range names {
		teams[i] = models.Team{ID: n, Name: n}
	}
	return teams
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

func TestGenerateFixture_FourTeams(t *testing.T) {
	fixture, err := NewRoundRobinGenerator().GenerateFixture(GenerateParams{Teams: namedTeams("A", "B", "C", "D")})
	if err != nil {
		t.Fatalf("GenerateFixture() error = %v", err)
	}

	want := map[int][][2]string{
		1: {{"A", "D"}, {"B", "C"}},
		2: {{"A", "C"}, {"D", "B"}},
		3: {{"A", "B"}, {"C", "D"}},
	}
	for day, pairs := range want {
		got := fixture.MatchesOn(day)
		if len(got) != len(pairs) {
			t.Fatalf("matchday %d: got %d matches, want %d", day, len(got), len(pairs))
		}
		for i, p := range pairs {
			if got[i].HomeTeamID != p[0] || got[i].AwayTeamID != p[1] {
				t.Errorf("matchday %d match %d = %s vs %s, want %s vs %s", day, i, got[i].HomeTeamID, got[i].AwayTeamID, p[0], p[1])
			}
		}
	}

	played := map[string]int{}
	for _, m := range fixture.Matches {
		played[m.HomeTeamID]++
		played[m.AwayTeamID]++
		if m.Played || m.HomeScore != nil || m.AwayScore != nil {
			t.Errorf("match %s should start unplayed", m.ID)
		}
		if m.Matchday != m.Round+1 {
			t.Errorf("match %s: matchday %d, round %d", m.ID, m.Matchday, m.Round)
		}
	}
	for _, id := range []string{"A", "B", "C", "D"} {
		if played[id] != 3 {
			t.Errorf("team %s plays %d matches, want 3", id, played[id])
		}
	}
	if fixture.Bye != nil {
		t.Errorf("even team count should not add a bye")
	}
}

func TestGenerateFixture_Properties(t *testing.T) {
	for n := 2; n <= 13; n++ {
		t.Run(fmt.Sprintf("%d teams", n), func(t *testing.T) {
			teams := makeTeams(n)
			fixture, err := NewRoundRobinGenerator().GenerateFixture(GenerateParams{Teams: teams})
			if err != nil {
				t.Fatalf("GenerateFixture() error = %v", err)
			}

			wantDays := n - 1
			if n%2 != 0 {
				wantDays = n
			}
			days := fixture.Matchdays()
			if len(days) != wantDays {
				t.Fatalf("got %d matchdays, want %d", len(days), wantDays)
			}
			for i, d := range days {
				if d != i+1 {
					t.Fatalf("matchdays not sorted/contiguous: %v", days)
				}
			}

			pairs := map[string]int{}
			for _, day := range days {
				seen := map[string]bool{}
				for _, m := range fixture.MatchesOn(day) {
					if fixture.IsBye(m.HomeTeamID) || fixture.IsBye(m.AwayTeamID) {
						t.Fatalf("bye emitted as a match: %+v", m)
					}
					for _, id := range []string{m.HomeTeamID, m.AwayTeamID} {
						if seen[id] {
							t.Fatalf("team %s plays twice on matchday %d", id, day)
						}
						seen[id] = true
					}
					pairs[pairKey(m.HomeTeamID, m.AwayTeamID)]++
				}
				free, ok := fixture.FreeTeam(day)
				if n%2 != 0 {
					if !ok {
						t.Fatalf("matchday %d has no free team", day)
					}
					if seen[free] {
						t.Fatalf("free team %s also plays on matchday %d", free, day)
					}
				} else if ok {
					t.Fatalf("even schedule reports free team %s", free)
				}
			}

			if len(pairs) != n*(n-1)/2 {
				t.Fatalf("got %d distinct pairs, want %d", len(pairs), n*(n-1)/2)
			}
			for k, c := range pairs {
				if c != 1 {
					t.Errorf("pair %s played %d times", k, c)
				}
			}
		})
	}
}

func TestGenerateFixture_OddCountDoesNotMutateInput(t *testing.T) {
	teams := namedTeams("A", "B", "C")
	fixture, err := NewRoundRobinGenerator().GenerateFixture(GenerateParams{Teams: teams})
	if err != nil {
		t.Fatalf("GenerateFixture() error = %v", err)
	}
	if len(teams) != 3 || teams[0].ID != "A" || teams[1].ID != "B" || teams[2].ID != "C" {
		t.Fatalf("input slice modified: %+v", teams)
	}
	if fixture.Bye == nil || fixture.Bye.Name != ByeName {
		t.Fatalf("expected a bye named %q, got %+v", ByeName, fixture.Bye)
	}
	if len(fixture.Teams) != 3 {
		t.Errorf("fixture teams should exclude the bye, got %d", len(fixture.Teams))
	}
	if len(fixture.Matches) != 3 {
		t.Errorf("got %d matches, want 3", len(fixture.Matches))
	}
}

func TestGenerateFixture_Deterministic(t *testing.T) {
	teams := makeTeams(6)
	a, _ := NewRoundRobinGenerator().GenerateFixture(GenerateParams{Teams: teams})
	b, _ := NewRoundRobinGenerator().GenerateFixture(GenerateParams{Teams: teams})
	for i := range a.Matches {
		if *a.Matches[i] != *b.Matches[i] {
			t.Fatalf("match %d differs: %+v vs %+v", i, a.Matches[i], b.Matches[i])
		}
	}
}

func TestGenerateFixture_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		teams []models.Team
		want  error
	}{
		{"no teams", nil, ErrNotEnoughTeams},
		{"one team", namedTeams("A"), ErrNotEnoughTeams},
		{"duplicate id", namedTeams("A", "B", "A"), ErrDuplicateTeamID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRoundRobinGenerator().GenerateFixture(GenerateParams{Teams: tt.teams})
			if !errors.Is(err, tt.want) {
				t.Errorf("GenerateFixture() error = %v, want %v", err, tt.want)
			}
		})
	}
}
