package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/fixture-system/repositories"
	"github.com/Dosada05/fixture-system/services"
	"github.com/go-chi/chi/v5"
)

type stubExporter struct {
	err error
}

func (e stubExporter) Export(ctx context.Context, sessionID string) (*services.ExportResult, error) {
	if e.err != nil {
		return nil, e.err
	}
	return &services.ExportResult{Key: "exports/" + sessionID + "/1.json", URL: "https://cdn.example.com/exports/" + sessionID + "/1.json"}, nil
}

func newTestRouter(t *testing.T, exporter services.ExportService) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fs := services.NewFixtureService(repositories.NewMemorySessionRepository[*services.Session](), nil, logger)

	sh := NewSessionHandler(fs)
	th := NewTeamHandler(fs)
	mh := NewMatchHandler(fs)
	eh := NewExportHandler(exporter)

	r := chi.NewRouter()
	r.Post("/sessions", sh.CreateSession)
	r.Get("/sessions/{sessionID}", sh.GetSession)
	r.Delete("/sessions/{sessionID}", sh.DeleteSession)
	r.Put("/sessions/{sessionID}/format", sh.SetFormat)
	r.Post("/sessions/{sessionID}/fixture", sh.CreateFixture)
	r.Delete("/sessions/{sessionID}/fixture", sh.ResetFixture)
	r.Post("/sessions/{sessionID}/export", eh.ExportSession)
	r.Get("/sessions/{sessionID}/teams", th.ListTeams)
	r.Post("/sessions/{sessionID}/teams", th.AddTeam)
	r.Put("/sessions/{sessionID}/teams/{teamID}", th.RenameTeam)
	r.Delete("/sessions/{sessionID}/teams/{teamID}", th.RemoveTeam)
	r.Get("/sessions/{sessionID}/league", mh.GetLeague)
	r.Put("/sessions/{sessionID}/league/matches/{matchID}/result", mh.SubmitResult)
	r.Get("/sessions/{sessionID}/playoff", mh.GetPlayoff)
	r.Put("/sessions/{sessionID}/playoff/matches/{matchID}/winner", mh.PickWinner)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) (int, map[string]json.RawMessage) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	out := make(map[string]json.RawMessage)
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("%s %s: response is not a JSON object: %v (%s)", method, path, err, rec.Body.String())
		}
	}
	return rec.Code, out
}

func decode(t *testing.T, raw json.RawMessage, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(raw, dst); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
}

func createSession(t *testing.T, h http.Handler) string {
	t.Helper()
	code, body := do(t, h, http.MethodPost, "/sessions", "")
	if code != http.StatusCreated {
		t.Fatalf("create session: status %d", code)
	}
	var session services.SessionView
	decode(t, body["session"], &session)
	return session.ID
}

func addTeams(t *testing.T, h http.Handler, sessionID string, names ...string) []string {
	t.Helper()
	ids := make([]string, 0, len(names))
	for _, name := range names {
		code, body := do(t, h, http.MethodPost, "/sessions/"+sessionID+"/teams", `{"name":"`+name+`"}`)
		if code != http.StatusCreated {
			t.Fatalf("add team %s: status %d", name, code)
		}
		var team struct {
			ID string `json:"id"`
		}
		decode(t, body["team"], &team)
		ids = append(ids, team.ID)
	}
	return ids
}

func TestLeagueEndpoints(t *testing.T) {
	h := newTestRouter(t, stubExporter{})
	id := createSession(t, h)
	addTeams(t, h, id, "Lions", "Tigers", "Bears", "Wolves")

	if code, _ := do(t, h, http.MethodGet, "/sessions/"+id+"/league", ""); code != http.StatusConflict {
		t.Fatalf("league before fixture: want 409, got %d", code)
	}

	code, body := do(t, h, http.MethodPost, "/sessions/"+id+"/fixture", "")
	if code != http.StatusCreated {
		t.Fatalf("create fixture: want 201, got %d", code)
	}
	var session services.SessionView
	decode(t, body["session"], &session)
	if session.League == nil || len(session.League.Matches) != 6 {
		t.Fatalf("4 teams: want 6 matches, got %+v", session.League)
	}

	matchID := session.League.Matches[0].ID
	code, body = do(t, h, http.MethodPut, "/sessions/"+id+"/league/matches/"+matchID+"/result", `{"home_score":3,"away_score":1}`)
	if code != http.StatusOK {
		t.Fatalf("submit result: want 200, got %d", code)
	}
	var league services.LeagueView
	decode(t, body["league"], &league)
	if league.Standings[0].Points != 3 || league.Standings[0].GoalsFor != 3 {
		t.Fatalf("unexpected leader %+v", league.Standings[0])
	}

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{"negative score", "/league/matches/" + matchID + "/result", `{"home_score":-1,"away_score":0}`, http.StatusUnprocessableEntity},
		{"missing score", "/league/matches/" + matchID + "/result", `{"home_score":1}`, http.StatusUnprocessableEntity},
		{"unknown match", "/league/matches/D9M9/result", `{"home_score":1,"away_score":0}`, http.StatusNotFound},
		{"bad json", "/league/matches/" + matchID + "/result", `{"home_score":`, http.StatusBadRequest},
		{"unknown field", "/league/matches/" + matchID + "/result", `{"home":1}`, http.StatusBadRequest},
		{"winner in league", "/playoff/matches/R1M1/winner", `{"team_id":"x"}`, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code, _ := do(t, h, http.MethodPut, "/sessions/"+id+tt.path, tt.body); code != tt.want {
				t.Fatalf("want %d, got %d", tt.want, code)
			}
		})
	}
}

func TestTeamEndpoints(t *testing.T) {
	h := newTestRouter(t, stubExporter{})
	id := createSession(t, h)
	ids := addTeams(t, h, id, "Lions", "Tigers")

	if code, _ := do(t, h, http.MethodPost, "/sessions/"+id+"/teams", `{"name":"lions"}`); code != http.StatusConflict {
		t.Fatalf("duplicate name: want 409, got %d", code)
	}
	if code, _ := do(t, h, http.MethodPost, "/sessions/"+id+"/teams", `{"name":"  "}`); code != http.StatusBadRequest {
		t.Fatalf("blank name: want 400, got %d", code)
	}
	if code, _ := do(t, h, http.MethodPut, "/sessions/"+id+"/teams/"+ids[0], `{"name":"Lionesses"}`); code != http.StatusOK {
		t.Fatalf("rename: want 200, got %d", code)
	}
	if code, _ := do(t, h, http.MethodDelete, "/sessions/"+id+"/teams/missing", ""); code != http.StatusNotFound {
		t.Fatalf("remove missing: want 404, got %d", code)
	}

	if code, _ := do(t, h, http.MethodPost, "/sessions/"+id+"/fixture", `{"shuffle":false}`); code != http.StatusCreated {
		t.Fatalf("create fixture: want 201, got %d", code)
	}
	if code, _ := do(t, h, http.MethodDelete, "/sessions/"+id+"/teams/"+ids[1], ""); code != http.StatusUnprocessableEntity {
		t.Fatalf("remove below two teams: want 422, got %d", code)
	}

	code, body := do(t, h, http.MethodGet, "/sessions/"+id+"/teams", "")
	if code != http.StatusOK {
		t.Fatalf("list teams: want 200, got %d", code)
	}
	var teams []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	decode(t, body["teams"], &teams)
	if len(teams) != 2 || teams[0].Name != "Lionesses" {
		t.Fatalf("unexpected teams %+v", teams)
	}
}

func TestPlayoffEndpoints(t *testing.T) {
	h := newTestRouter(t, stubExporter{})
	id := createSession(t, h)
	ids := addTeams(t, h, id, "A", "B", "C")

	if code, _ := do(t, h, http.MethodPut, "/sessions/"+id+"/format", `{"format":"cup"}`); code != http.StatusBadRequest {
		t.Fatalf("unknown format: want 400, got %d", code)
	}
	if code, _ := do(t, h, http.MethodPut, "/sessions/"+id+"/format", `{"format":"playoff"}`); code != http.StatusOK {
		t.Fatalf("set format: want 200, got %d", code)
	}
	if code, _ := do(t, h, http.MethodPost, "/sessions/"+id+"/fixture", ""); code != http.StatusCreated {
		t.Fatalf("create bracket: want 201, got %d", code)
	}

	code, body := do(t, h, http.MethodGet, "/sessions/"+id+"/playoff", "")
	if code != http.StatusOK {
		t.Fatalf("get playoff: want 200, got %d", code)
	}
	var playoff services.PlayoffView
	decode(t, body["playoff"], &playoff)
	if len(playoff.Rounds) != 2 || len(playoff.Byes) != 1 {
		t.Fatalf("3 teams: want 2 rounds and 1 bye, got %d rounds, %d byes", len(playoff.Rounds), len(playoff.Byes))
	}

	// A получает BYE в R1M1 и сразу проходит в финал; B и C играют R1M2.
	byeID := playoff.Byes[0].ID
	cases := []struct {
		name  string
		match string
		team  string
		want  int
	}{
		{"bye cannot win", "R1M1", byeID, http.StatusUnprocessableEntity},
		{"final not ready", "R2M1", ids[0], http.StatusUnprocessableEntity},
		{"team not in match", "R1M2", ids[0], http.StatusUnprocessableEntity},
		{"unknown match", "R5M1", ids[0], http.StatusNotFound},
		{"empty team", "R1M2", "", http.StatusUnprocessableEntity},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			path := "/sessions/" + id + "/playoff/matches/" + tt.match + "/winner"
			if code, _ := do(t, h, http.MethodPut, path, `{"team_id":"`+tt.team+`"}`); code != tt.want {
				t.Fatalf("want %d, got %d", tt.want, code)
			}
		})
	}

	if code, _ := do(t, h, http.MethodPut, "/sessions/"+id+"/playoff/matches/R1M2/winner", `{"team_id":"`+ids[2]+`"}`); code != http.StatusOK {
		t.Fatalf("pick semifinal winner: want 200, got %d", code)
	}
	code, body = do(t, h, http.MethodPut, "/sessions/"+id+"/playoff/matches/R2M1/winner", `{"team_id":"`+ids[0]+`"}`)
	if code != http.StatusOK {
		t.Fatalf("pick champion: want 200, got %d", code)
	}
	decode(t, body["playoff"], &playoff)
	if playoff.Champion == nil || *playoff.Champion != ids[0] {
		t.Fatalf("want champion %s, got %v", ids[0], playoff.Champion)
	}
}

func TestSessionAndExportEndpoints(t *testing.T) {
	h := newTestRouter(t, stubExporter{})
	id := createSession(t, h)

	code, body := do(t, h, http.MethodPost, "/sessions/"+id+"/export", "")
	if code != http.StatusCreated {
		t.Fatalf("export: want 201, got %d", code)
	}
	var export services.ExportResult
	decode(t, body["export"], &export)
	if !strings.HasSuffix(export.URL, "/exports/"+id+"/1.json") {
		t.Fatalf("unexpected export %+v", export)
	}

	if code, _ := do(t, h, http.MethodDelete, "/sessions/"+id, ""); code != http.StatusNoContent {
		t.Fatalf("delete session: want 204, got %d", code)
	}
	if code, _ := do(t, h, http.MethodGet, "/sessions/"+id, ""); code != http.StatusNotFound {
		t.Fatalf("get deleted session: want 404, got %d", code)
	}

	disabled := newTestRouter(t, stubExporter{err: services.ErrExportDisabled})
	other := createSession(t, disabled)
	if code, _ := do(t, disabled, http.MethodPost, "/sessions/"+other+"/export", ""); code != http.StatusServiceUnavailable {
		t.Fatalf("export disabled: want 503, got %d", code)
	}
}
