package handlers

import (
	"net/http"

	"github.com/Dosada05/family-games/services"
)

type TeamHandler struct {
	competition services.CompetitionService
}

func NewTeamHandler(cs services.CompetitionService) *TeamHandler {
	return &TeamHandler{competition: cs}
}

// ListTeams godoc
// @Summary      List teams
// @Description  All registered teams in registration order, with derived total scores
// @Tags         teams
// @Produce      json
// @Success      200  {object}  map[string][]models.Team
// @Router       /teams [get]
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams := h.competition.ListTeams(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetTeam godoc
// @Summary      Get a team
// @Tags         teams
// @Produce      json
// @Param        teamID  path      string  true  "Team ID"
// @Success      200     {object}  map[string]models.Team
// @Failure      404     {object}  map[string]string
// @Router       /teams/{teamID} [get]
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.competition.GetTeam(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"team": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateTeam godoc
// @Summary      Register a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        team  body      services.TeamInput  true  "Team"
// @Success      201   {object}  map[string]models.Team
// @Failure      400   {object}  map[string]string
// @Router       /teams [post]
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var input services.TeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.competition.AddTeam(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"team": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateTeam godoc
// @Summary      Update a team
// @Description  Only the fields present in the body are changed
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamID  path      string               true  "Team ID"
// @Param        team    body      services.TeamUpdate  true  "Fields to change"
// @Success      200     {object}  map[string]models.Team
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /teams/{teamID} [put]
func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.TeamUpdate
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.competition.UpdateTeam(r.Context(), teamID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"team": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteTeam godoc
// @Summary      Delete a team
// @Tags         teams
// @Param        teamID  path  string  true  "Team ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /teams/{teamID} [delete]
func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.competition.DeleteTeam(r.Context(), teamID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
