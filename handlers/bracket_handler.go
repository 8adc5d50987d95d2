package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/Dosada05/family-games/services"
)

// scoreValue accepts a score as a JSON number, a string or null and keeps
// its raw text. Interpreting the text is left to the engine.
type scoreValue string

func (s *scoreValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*s = ""
	case data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = scoreValue(str)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		*s = scoreValue(data)
	default:
		*s = ""
	}
	return nil
}

type generateBracketRequest struct {
	Seeding []string `json:"seeding"`
}

type matchScoreRequest struct {
	Score1 scoreValue `json:"score1" swaggertype:"string"`
	Score2 scoreValue `json:"score2" swaggertype:"string"`
}

type overallScoreRequest struct {
	Score scoreValue `json:"score" swaggertype:"string"`
}

type BracketHandler struct {
	competition services.CompetitionService
}

func NewBracketHandler(cs services.CompetitionService) *BracketHandler {
	return &BracketHandler{competition: cs}
}

// GenerateBracket godoc
// @Summary      Generate a game's bracket or score sheet
// @Description  Replaces any existing result. For tournament games an optional ordered list of team ids seeds the bracket (first = strongest) and limits it to those teams; without it all teams are drawn at random.
// @Tags         brackets
// @Accept       json
// @Produce      json
// @Param        gameID   path      string                  true   "Game ID"
// @Param        seeding  body      generateBracketRequest  false  "Seeding"
// @Success      201      {object}  map[string]models.GameResult
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /games/{gameID}/bracket [post]
func (h *BracketHandler) GenerateBracket(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input generateBracketRequest
	if err := readOptionalJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.competition.GenerateBracket(r.Context(), gameID, input.Seeding)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"result": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetBracket godoc
// @Summary      Get a game's bracket or score sheet
// @Tags         brackets
// @Produce      json
// @Param        gameID  path      string  true  "Game ID"
// @Success      200     {object}  map[string]models.GameResult
// @Failure      404     {object}  map[string]string
// @Router       /games/{gameID}/bracket [get]
func (h *BracketHandler) GetBracket(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.competition.GetResult(r.Context(), gameID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"result": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListBrackets godoc
// @Summary      List every game's result, keyed by game id
// @Tags         brackets
// @Produce      json
// @Success      200  {object}  map[string]map[string]models.GameResult
// @Router       /brackets [get]
func (h *BracketHandler) ListBrackets(w http.ResponseWriter, r *http.Request) {
	results := h.competition.ListResults(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"brackets": results}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SubmitMatchScore godoc
// @Summary      Record a tournament match score
// @Description  Blank or non-numeric scores count as not entered. A decided match advances its winner.
// @Tags         brackets
// @Accept       json
// @Produce      json
// @Param        gameID   path      string             true  "Game ID"
// @Param        round    path      int                true  "Round number"
// @Param        matchID  path      string             true  "Match ID"
// @Param        scores   body      matchScoreRequest  true  "Scores"
// @Success      200      {object}  map[string]models.GameResult
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Router       /games/{gameID}/bracket/rounds/{round}/matches/{matchID} [put]
func (h *BracketHandler) SubmitMatchScore(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	round, err := getIntFromURL(r, "round")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input matchScoreRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.competition.SubmitMatchScore(r.Context(), gameID, round, matchID, string(input.Score1), string(input.Score2))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"result": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateOverallScore godoc
// @Summary      Set a team's score in an overall-score game
// @Description  Non-numeric scores are recorded as 0
// @Tags         brackets
// @Accept       json
// @Produce      json
// @Param        gameID  path      string               true  "Game ID"
// @Param        teamID  path      string               true  "Team ID"
// @Param        score   body      overallScoreRequest  true  "Score"
// @Success      200     {object}  map[string]models.GameResult
// @Failure      404     {object}  map[string]string
// @Failure      409     {object}  map[string]string
// @Router       /games/{gameID}/scores/{teamID} [put]
func (h *BracketHandler) UpdateOverallScore(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input overallScoreRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.competition.UpdateOverallScore(r.Context(), gameID, teamID, string(input.Score))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"result": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
