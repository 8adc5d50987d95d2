package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/family-games/brackets"
	"github.com/Dosada05/family-games/models"
	"github.com/Dosada05/family-games/repositories"
	"github.com/Dosada05/family-games/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := services.NewCompetitionService(
		repositories.NewMemorySnapshotRepository(),
		nil,
		brackets.NewSingleEliminationGenerator(rand.New(rand.NewPCG(3, 4))),
		brackets.NewOverallScoreGenerator(),
		models.PointValues{First: 10, Second: 5, Third: 2},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	teams := NewTeamHandler(svc)
	games := NewGameHandler(svc)
	bracket := NewBracketHandler(svc)
	board := NewLeaderboardHandler(svc)

	r := chi.NewRouter()
	r.Get("/api/teams", teams.ListTeams)
	r.Post("/api/teams", teams.CreateTeam)
	r.Get("/api/teams/{teamID}", teams.GetTeam)
	r.Put("/api/teams/{teamID}", teams.UpdateTeam)
	r.Delete("/api/teams/{teamID}", teams.DeleteTeam)
	r.Get("/api/games", games.ListGames)
	r.Post("/api/games", games.CreateGame)
	r.Get("/api/games/{gameID}", games.GetGame)
	r.Put("/api/games/{gameID}", games.UpdateGame)
	r.Delete("/api/games/{gameID}", games.DeleteGame)
	r.Put("/api/games/{gameID}/points", games.UpdateGamePoints)
	r.Post("/api/games/{gameID}/bracket", bracket.GenerateBracket)
	r.Get("/api/games/{gameID}/bracket", bracket.GetBracket)
	r.Put("/api/games/{gameID}/bracket/rounds/{round}/matches/{matchID}", bracket.SubmitMatchScore)
	r.Put("/api/games/{gameID}/scores/{teamID}", bracket.UpdateOverallScore)
	r.Get("/api/brackets", bracket.ListBrackets)
	r.Get("/api/leaderboard", board.GetLeaderboard)
	r.Delete("/api/competition", board.ResetCompetition)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
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
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type teamEnvelope struct {
	Team models.Team `json:"team"`
}

type gameEnvelope struct {
	Game models.Game `json:"game"`
}

type resultEnvelope struct {
	Result models.GameResult `json:"result"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func createTeam(t *testing.T, h http.Handler, name string) models.Team {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/teams", `{"name":"`+name+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[teamEnvelope](t, rec).Team
}

func createGame(t *testing.T, h http.Handler, body string) models.Game {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/games", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[gameEnvelope](t, rec).Game
}

func TestScoreValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want matchScoreRequest
	}{
		{"numbers", `{"score1": 3, "score2": 0}`, matchScoreRequest{Score1: "3", Score2: "0"}},
		{"strings", `{"score1": "7", "score2": " 2 "}`, matchScoreRequest{Score1: "7", Score2: " 2 "}},
		{"null and missing", `{"score1": null}`, matchScoreRequest{}},
		{"garbage", `{"score1": "abc", "score2": true}`, matchScoreRequest{Score1: "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got matchScoreRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTeamEndpoints(t *testing.T) {
	h := newTestRouter(t)

	team := createTeam(t, h, "Smiths")
	assert.Equal(t, "Smiths", team.Name)

	rec := do(t, h, http.MethodGet, "/api/teams", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[struct {
		Teams []models.Team `json:"teams"`
	}](t, rec)
	require.Len(t, list.Teams, 1)

	rec = do(t, h, http.MethodPut, "/api/teams/"+team.ID, `{"name":"Joneses","members":["Ann"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[teamEnvelope](t, rec).Team
	assert.Equal(t, "Joneses", updated.Name)
	assert.Equal(t, []string{"Ann"}, updated.Members)

	rec = do(t, h, http.MethodPost, "/api/teams", `{"name":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, services.ErrTeamNameRequired.Error(), decode[errorEnvelope](t, rec).Error)

	rec = do(t, h, http.MethodPost, "/api/teams", `{"name":"X","captain":"me"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/teams", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/teams/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/teams/"+team.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodDelete, "/api/teams/"+team.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGameEndpoints(t *testing.T) {
	h := newTestRouter(t)

	game := createGame(t, h, `{"name":"Quiz","type":"overall_score","points":{"first":12}}`)
	assert.Equal(t, models.GameTypeOverallScore, game.Type)
	assert.Equal(t, models.PointValues{First: 12, Second: 5, Third: 2}, game.Points)

	rec := do(t, h, http.MethodPut, "/api/games/"+game.ID+"/points", `{"third":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, models.PointValues{First: 12, Second: 5, Third: 1}, decode[gameEnvelope](t, rec).Game.Points)

	rec = do(t, h, http.MethodPut, "/api/games/"+game.ID+"/points", `{"first":-4}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/games", `{"name":"Relay","type":"marathon"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPut, "/api/games/"+game.ID, `{"name":"Pub quiz"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Pub quiz", decode[gameEnvelope](t, rec).Game.Name)

	rec = do(t, h, http.MethodGet, "/api/games/"+game.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/games/"+game.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/games/"+game.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTournamentOverHTTP(t *testing.T) {
	h := newTestRouter(t)
	a := createTeam(t, h, "A")
	b := createTeam(t, h, "B")
	game := createGame(t, h, `{"name":"Tug of war"}`)

	rec := do(t, h, http.MethodGet, "/api/games/"+game.ID+"/bracket", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/games/"+game.ID+"/bracket", `{"seeding":["`+b.ID+`","`+a.ID+`"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	result := decode[resultEnvelope](t, rec).Result
	require.NotNil(t, result.Tournament)
	final := result.Tournament.Rounds[1][0]
	assert.Equal(t, b.ID, final.Team1.TeamID)

	base := "/api/games/" + game.ID + "/bracket/rounds/"
	rec = do(t, h, http.MethodPut, base+"one/matches/"+final.ID, `{"score1":1,"score2":2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPut, base+"1/matches/"+final.ID, `{"score1":-1,"score2":2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPut, base+"1/matches/unknown", `{"score1":1,"score2":2}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// One score missing leaves the match open.
	rec = do(t, h, http.MethodPut, base+"1/matches/"+final.ID, `{"score1":"4","score2":""}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[resultEnvelope](t, rec).Result.Tournament.Places.First.IsEmpty())

	rec = do(t, h, http.MethodPut, base+"1/matches/"+final.ID, `{"score1":1,"score2":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	places := decode[resultEnvelope](t, rec).Result.Tournament.Places
	assert.Equal(t, a.ID, places.First.TeamID)
	assert.Equal(t, b.ID, places.Second.TeamID)

	rec = do(t, h, http.MethodGet, "/api/leaderboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	board := decode[struct {
		Leaderboard []models.LeaderboardEntry `json:"leaderboard"`
	}](t, rec).Leaderboard
	require.Len(t, board, 2)
	assert.Equal(t, models.LeaderboardEntry{Rank: 1, TeamID: a.ID, TeamName: "A", TotalScore: 10}, board[0])
	assert.Equal(t, 5, board[1].TotalScore)

	// Score sheets are not available on tournament games.
	rec = do(t, h, http.MethodPut, "/api/games/"+game.ID+"/scores/"+a.ID, `{"score":3}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/brackets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[struct {
		Brackets map[string]models.GameResult `json:"brackets"`
	}](t, rec).Brackets
	assert.Contains(t, all, game.ID)
}

func TestGenerateBracketValidation(t *testing.T) {
	h := newTestRouter(t)
	a := createTeam(t, h, "A")
	game := createGame(t, h, `{"name":"Relay"}`)

	rec := do(t, h, http.MethodPost, "/api/games/"+game.ID+"/bracket", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "one team cannot fill a bracket")

	rec = do(t, h, http.MethodPost, "/api/games/"+game.ID+"/bracket", `{"seeding":["`+a.ID+`","ghost"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/games/missing/bracket", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOverallScoreOverHTTP(t *testing.T) {
	h := newTestRouter(t)
	a := createTeam(t, h, "A")
	b := createTeam(t, h, "B")
	game := createGame(t, h, `{"name":"Quiz","type":"overall_score"}`)

	rec := do(t, h, http.MethodPost, "/api/games/"+game.ID+"/bracket", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPut, "/api/games/"+game.ID+"/scores/"+b.ID, `{"score":"9"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = do(t, h, http.MethodPut, "/api/games/"+game.ID+"/scores/"+a.ID, `{"score":"lots"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	sheet := decode[resultEnvelope](t, rec).Result.Overall
	require.NotNil(t, sheet)
	assert.Equal(t, b.ID, sheet.Places.First.TeamID)
	assert.Equal(t, a.ID, sheet.Places.Second.TeamID)

	rec = do(t, h, http.MethodPut, "/api/games/"+game.ID+"/scores/stranger", `{"score":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResetCompetition(t *testing.T) {
	h := newTestRouter(t)
	createTeam(t, h, "A")

	rec := do(t, h, http.MethodDelete, "/api/competition", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/teams", "")
	assert.JSONEq(t, `{"teams":[]}`, rec.Body.String())
}
