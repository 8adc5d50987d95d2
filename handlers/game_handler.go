package handlers

import (
	"net/http"

	"github.com/Dosada05/family-games/services"
)

type GameHandler struct {
	competition services.CompetitionService
}

func NewGameHandler(cs services.CompetitionService) *GameHandler {
	return &GameHandler{competition: cs}
}

// ListGames godoc
// @Summary      List games
// @Tags         games
// @Produce      json
// @Success      200  {object}  map[string][]models.Game
// @Router       /games [get]
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games := h.competition.ListGames(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"games": games}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetGame godoc
// @Summary      Get a game
// @Tags         games
// @Produce      json
// @Param        gameID  path      string  true  "Game ID"
// @Success      200     {object}  map[string]models.Game
// @Failure      404     {object}  map[string]string
// @Router       /games/{gameID} [get]
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.competition.GetGame(r.Context(), gameID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateGame godoc
// @Summary      Add a game
// @Description  Type defaults to tournament; missing point values use the configured defaults
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        game  body      services.GameInput  true  "Game"
// @Success      201   {object}  map[string]models.Game
// @Failure      400   {object}  map[string]string
// @Router       /games [post]
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var input services.GameInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.competition.AddGame(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Only the fields present in the body are changed. Changing the type discards the game's result.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        gameID  path      string               true  "Game ID"
// @Param        game    body      services.GameUpdate  true  "Fields to change"
// @Success      200     {object}  map[string]models.Game
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /games/{gameID} [put]
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.GameUpdate
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.competition.UpdateGame(r.Context(), gameID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateGamePoints godoc
// @Summary      Change a game's point values
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        gameID  path      string                 true  "Game ID"
// @Param        points  body      services.PointsUpdate  true  "Point values to change"
// @Success      200     {object}  map[string]models.Game
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /games/{gameID}/points [put]
func (h *GameHandler) UpdateGamePoints(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.PointsUpdate
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.competition.UpdateGamePoints(r.Context(), gameID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteGame godoc
// @Summary      Delete a game and its result
// @Tags         games
// @Param        gameID  path  string  true  "Game ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /games/{gameID} [delete]
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.competition.DeleteGame(r.Context(), gameID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
