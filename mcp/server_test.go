package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Dosada05/fixture-system/models"
	"github.com/Dosada05/fixture-system/repositories"
	"github.com/Dosada05/fixture-system/services"
)

func newToolServer(t *testing.T) *ToolServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fixtures := services.NewFixtureService(repositories.NewMemorySessionRepository[*services.Session](), nil, logger)
	ts, err := NewToolServer(context.Background(), fixtures, logger)
	if err != nil {
		t.Fatalf("NewToolServer: %v", err)
	}
	return ts
}

func call(t *testing.T, ts *ToolServer, name string, args map[string]interface{}) (string, bool) {
	t.Helper()
	result, err := ts.Call(context.Background(), name, args)
	if err != nil {
		t.Fatalf("%s returned a Go error: %v", name, err)
	}
	if len(result.Content) != 1 {
		t.Fatalf("%s: want one content item, got %d", name, len(result.Content))
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("%s: content is not text", name)
	}
	return text.Text, result.IsError
}

func mustCall(t *testing.T, ts *ToolServer, name string, args map[string]interface{}, dst interface{}) {
	t.Helper()
	text, isErr := call(t, ts, name, args)
	if isErr {
		t.Fatalf("%s failed: %s", name, text)
	}
	if dst != nil {
		if err := json.Unmarshal([]byte(text), dst); err != nil {
			t.Fatalf("%s: decode %q: %v", name, text, err)
		}
	}
}

func TestToolsAreListed(t *testing.T) {
	ts := newToolServer(t)
	want := []string{"add_team", "remove_team", "rename_team", "list_teams", "set_format",
		"create_fixture", "reset_fixture", "submit_result", "pick_winner", "get_league", "get_playoff"}

	tools := ts.Tools()
	if len(tools) != len(want) {
		t.Fatalf("want %d tools, got %d", len(want), len(tools))
	}
	for i, tool := range tools {
		if tool.Name != want[i] {
			t.Errorf("tool %d: want %s, got %s", i, want[i], tool.Name)
		}
		if tool.InputSchema.Type != "object" {
			t.Errorf("%s: schema type %q", tool.Name, tool.InputSchema.Type)
		}
	}
}

func TestLeagueThroughTools(t *testing.T) {
	ts := newToolServer(t)
	for _, name := range []string{"Lions", "Tigers", "Bears"} {
		mustCall(t, ts, "add_team", map[string]interface{}{"name": name}, nil)
	}

	var session services.SessionView
	mustCall(t, ts, "create_fixture", map[string]interface{}{}, &session)
	if session.League == nil || len(session.League.Matches) != 3 {
		t.Fatalf("unexpected session %+v", session)
	}

	match := session.League.Matches[0]
	var league services.LeagueView
	mustCall(t, ts, "submit_result", map[string]interface{}{
		"match_id":   match.ID,
		"home_score": float64(1),
		"away_score": float64(1),
	}, &league)
	for _, e := range league.Standings {
		if e.TeamID == match.HomeTeamID && (e.Points != 1 || e.Drawn != 1) {
			t.Fatalf("draw not recorded: %+v", e)
		}
	}

	text, isErr := call(t, ts, "submit_result", map[string]interface{}{
		"match_id": match.ID, "home_score": 1.5, "away_score": float64(0),
	})
	if !isErr || !strings.Contains(text, "home_score") {
		t.Fatalf("fractional score accepted: %s", text)
	}
	text, isErr = call(t, ts, "submit_result", map[string]interface{}{
		"match_id": match.ID, "home_score": float64(-2), "away_score": float64(0),
	})
	if !isErr || !strings.Contains(text, "negative") {
		t.Fatalf("negative score accepted: %s", text)
	}
}

func TestPlayoffThroughTools(t *testing.T) {
	ts := newToolServer(t)
	var teams []models.Team
	for _, name := range []string{"A", "B"} {
		var team models.Team
		mustCall(t, ts, "add_team", map[string]interface{}{"name": name}, &team)
		teams = append(teams, team)
	}

	mustCall(t, ts, "set_format", map[string]interface{}{"format": "playoff"}, nil)
	mustCall(t, ts, "create_fixture", map[string]interface{}{"shuffle": false}, nil)

	var playoff services.PlayoffView
	mustCall(t, ts, "pick_winner", map[string]interface{}{"match_id": "R1M1", "team_id": teams[1].ID}, &playoff)
	if playoff.Champion == nil || *playoff.Champion != teams[1].ID {
		t.Fatalf("want champion %s, got %v", teams[1].ID, playoff.Champion)
	}

	if text, isErr := call(t, ts, "get_league", nil); !isErr || !strings.Contains(text, "not available") {
		t.Fatalf("league view on a playoff session: %s", text)
	}

	mustCall(t, ts, "reset_fixture", nil, nil)
	if text, isErr := call(t, ts, "get_playoff", nil); !isErr || !strings.Contains(text, "not been created") {
		t.Fatalf("playoff view after reset: %s", text)
	}
}

func TestToolArgumentErrors(t *testing.T) {
	ts := newToolServer(t)

	tests := []struct {
		name string
		tool string
		args map[string]interface{}
		want string
	}{
		{"unknown tool", "drop_table", nil, "Unknown tool"},
		{"missing name", "add_team", map[string]interface{}{}, "name is required"},
		{"wrong type", "add_team", map[string]interface{}{"name": 5.0}, "non-empty string"},
		{"bad shuffle", "create_fixture", map[string]interface{}{"shuffle": "yes"}, "boolean"},
		{"too few teams", "create_fixture", nil, "not enough teams"},
		{"bad format", "set_format", map[string]interface{}{"format": "cup"}, "invalid format"},
		{"missing team", "remove_team", map[string]interface{}{"team_id": "nope"}, "team not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isErr := call(t, ts, tt.tool, tt.args)
			if !isErr {
				t.Fatalf("expected an error result, got %s", text)
			}
			if !strings.Contains(text, tt.want) {
				t.Fatalf("error %q does not mention %q", text, tt.want)
			}
		})
	}
}
