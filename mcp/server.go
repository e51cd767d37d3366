package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Dosada05/fixture-system/models"
	"github.com/Dosada05/fixture-system/services"
)

const (
	serverName    = "Fixture System"
	serverVersion = "1.0.0"
)

// ToolServer exposes one fixture session as MCP tools.
type ToolServer struct {
	fixtures  services.FixtureService
	sessionID string
	logger    *slog.Logger
}

func NewToolServer(ctx context.Context, fixtures services.FixtureService, logger *slog.Logger) (*ToolServer, error) {
	session, err := fixtures.CreateSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &ToolServer{fixtures: fixtures, sessionID: session.ID, logger: logger}, nil
}

// NewServer registers the tool handlers on a stdio-ready MCP server.
func NewServer(ts *ToolServer) *server.DefaultServer {
	s := server.NewDefaultServer(serverName, serverVersion)

	s.HandleListTools(func(ctx context.Context, cursor *string) (*mcp.ListToolsResult, error) {
		tools := ts.Tools()
		ts.logger.InfoContext(ctx, "listing available tools", slog.Int("tools_count", len(tools)))
		return &mcp.ListToolsResult{Tools: tools}, nil
	})

	s.HandleCallTool(func(ctx context.Context, name string, arguments map[string]interface{}) (*mcp.CallToolResult, error) {
		ts.logger.InfoContext(ctx, "tool called", slog.String("tool", name), slog.Any("args", arguments))
		return ts.Call(ctx, name, arguments)
	})

	return s
}

func (ts *ToolServer) SessionID() string {
	return ts.sessionID
}

func (ts *ToolServer) Tools() []mcp.Tool {
	return []mcp.Tool{
		tool("add_team", "Register a team. Names are unique ignoring case; an active fixture is rebuilt.",
			prop("name", "string", "Team name", true)),
		tool("remove_team", "Remove a team by id; an active fixture is rebuilt.",
			prop("team_id", "string", "Team id", true)),
		tool("rename_team", "Change the display name of a team. The fixture is kept.",
			prop("team_id", "string", "Team id", true),
			prop("name", "string", "New team name", true)),
		tool("list_teams", "List registered teams in order."),
		tool("set_format", "Choose 'tournament' (round robin) or 'playoff' (single elimination); seeding is 'spread' or 'sequential'.",
			prop("format", "string", "tournament or playoff", true),
			prop("seeding", "string", "spread (default) or sequential", false)),
		tool("create_fixture", "Build the schedule or bracket from the current teams. Requires at least two teams.",
			prop("shuffle", "boolean", "Shuffle the team order first", false)),
		tool("reset_fixture", "Discard the schedule, standings and bracket. Teams are kept."),
		tool("submit_result", "Record or correct the score of a league match and return the standings.",
			prop("match_id", "string", "Match id, e.g. D1M1", true),
			prop("home_score", "integer", "Home team goals", true),
			prop("away_score", "integer", "Away team goals", true)),
		tool("pick_winner", "Select the winner of a playoff match and advance it.",
			prop("match_id", "string", "Match id, e.g. R1M1", true),
			prop("team_id", "string", "Winning team id", true)),
		tool("get_league", "Show matches by matchday, the free team per matchday and the standings."),
		tool("get_playoff", "Show the bracket rounds, round names and the champion once decided."),
	}
}

// Call dispatches a tool. Failures are reported as error results, never as Go errors.
func (ts *ToolServer) Call(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error) {
	var (
		result interface{}
		err    error
	)

	switch name {
	case "add_team":
		var teamName string
		if teamName, err = stringArg(args, "name", true); err == nil {
			result, err = ts.fixtures.AddTeam(ctx, ts.sessionID, teamName)
		}
	case "remove_team":
		var teamID string
		if teamID, err = stringArg(args, "team_id", true); err == nil {
			if err = ts.fixtures.RemoveTeam(ctx, ts.sessionID, teamID); err == nil {
				result, err = ts.fixtures.ListTeams(ctx, ts.sessionID)
			}
		}
	case "rename_team":
		result, err = ts.renameTeam(ctx, args)
	case "list_teams":
		result, err = ts.fixtures.ListTeams(ctx, ts.sessionID)
	case "set_format":
		result, err = ts.setFormat(ctx, args)
	case "create_fixture":
		var shuffle bool
		if shuffle, err = boolArg(args, "shuffle"); err == nil {
			result, err = ts.fixtures.CreateFixture(ctx, ts.sessionID, services.CreateFixtureInput{Shuffle: shuffle})
		}
	case "reset_fixture":
		result, err = ts.fixtures.ResetFixture(ctx, ts.sessionID)
	case "submit_result":
		result, err = ts.submitResult(ctx, args)
	case "pick_winner":
		result, err = ts.pickWinner(ctx, args)
	case "get_league":
		result, err = ts.fixtures.GetLeague(ctx, ts.sessionID)
	case "get_playoff":
		result, err = ts.fixtures.GetPlayoff(ctx, ts.sessionID)
	default:
		ts.logger.WarnContext(ctx, "unknown tool called", slog.String("tool", name))
		return errorResult("Unknown tool: " + name), nil
	}

	if err != nil {
		return errorResult("Error: " + err.Error()), nil
	}
	return jsonResult(result)
}

func (ts *ToolServer) renameTeam(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	teamID, err := stringArg(args, "team_id", true)
	if err != nil {
		return nil, err
	}
	name, err := stringArg(args, "name", true)
	if err != nil {
		return nil, err
	}
	return ts.fixtures.RenameTeam(ctx, ts.sessionID, teamID, name)
}

func (ts *ToolServer) setFormat(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	format, err := stringArg(args, "format", true)
	if err != nil {
		return nil, err
	}
	seeding, err := stringArg(args, "seeding", false)
	if err != nil {
		return nil, err
	}
	return ts.fixtures.SetFormat(ctx, ts.sessionID, services.SetFormatInput{
		Format:  models.Format(format),
		Seeding: models.Seeding(seeding),
	})
}

func (ts *ToolServer) submitResult(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	matchID, err := stringArg(args, "match_id", true)
	if err != nil {
		return nil, err
	}
	home, err := intArg(args, "home_score")
	if err != nil {
		return nil, err
	}
	away, err := intArg(args, "away_score")
	if err != nil {
		return nil, err
	}
	return ts.fixtures.SubmitResult(ctx, ts.sessionID, matchID, home, away)
}

func (ts *ToolServer) pickWinner(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	matchID, err := stringArg(args, "match_id", true)
	if err != nil {
		return nil, err
	}
	teamID, err := stringArg(args, "team_id", true)
	if err != nil {
		return nil, err
	}
	return ts.fixtures.PickWinner(ctx, ts.sessionID, matchID, teamID)
}

// --- аргументы и результаты ---

var errBadArgument = errors.New("invalid argument")

func stringArg(args map[string]interface{}, key string, required bool) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		if required {
			return "", fmt.Errorf("%w: %s is required", errBadArgument, key)
		}
		return "", nil
	}
	s, ok := raw.(string)
	if !ok || (required && s == "") {
		return "", fmt.Errorf("%w: %s must be a non-empty string", errBadArgument, key)
	}
	return s, nil
}

// intArg accepts JSON numbers, which arrive as float64, when they hold a whole value.
func intArg(args map[string]interface{}, key string) (int, error) {
	raw, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s is required", errBadArgument, key)
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %s must be an integer", errBadArgument, key)
		}
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("%w: %s must be an integer", errBadArgument, key)
	}
}

func boolArg(args map[string]interface{}, key string) (bool, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s must be a boolean", errBadArgument, key)
	}
	return b, nil
}

func tool(name, description string, props ...property) mcp.Tool {
	properties := make(map[string]interface{}, len(props))
	for _, p := range props {
		properties[p.name] = p.schema
	}
	return mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
		},
	}
}

type property struct {
	name   string
	schema map[string]interface{}
}

func prop(name, typ, description string, required bool) property {
	return property{name: name, schema: map[string]interface{}{
		"type":        typ,
		"description": description,
		"required":    required,
	}}
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error: failed to encode result: " + err.Error()), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Type: "text", Text: string(body)},
		},
	}, nil
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Type: "text", Text: text},
		},
	}
}
