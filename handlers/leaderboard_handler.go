package handlers

import (
	"net/http"

	"github.com/Dosada05/family-games/services"
)

type LeaderboardHandler struct {
	competition services.CompetitionService
}

func NewLeaderboardHandler(cs services.CompetitionService) *LeaderboardHandler {
	return &LeaderboardHandler{competition: cs}
}

// GetLeaderboard godoc
// @Summary      Get the leaderboard
// @Description  Teams ranked by total score; equal totals keep registration order
// @Tags         leaderboard
// @Produce      json
// @Success      200  {object}  map[string][]models.LeaderboardEntry
// @Router       /leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	board := h.competition.Leaderboard(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"leaderboard": board}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResetCompetition godoc
// @Summary      Clear all teams, games and results
// @Tags         leaderboard
// @Success      204
// @Router       /competition [delete]
func (h *LeaderboardHandler) ResetCompetition(w http.ResponseWriter, r *http.Request) {
	if err := h.competition.Reset(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
