package services

import (
	"fmt"
	"strings"

	"github.com/Dosada05/family-games/models"
)

func cleanMembers(members []string) []string {
	var out []string
	for _, m := range members {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}

// mergePoints applies the fields present in update on top of base.
func mergePoints(base models.PointValues, update *PointsUpdate) (models.PointValues, error) {
	if update == nil {
		return base, nil
	}
	merged := base
	if update.First != nil {
		merged.First = *update.First
	}
	if update.Second != nil {
		merged.Second = *update.Second
	}
	if update.Third != nil {
		merged.Third = *update.Third
	}
	if merged.First < 0 || merged.Second < 0 || merged.Third < 0 {
		return models.PointValues{}, fmt.Errorf("%w: %+v", ErrInvalidPointValue, merged)
	}
	return merged, nil
}

func teamIndex(teams []models.Team, id string) int {
	for i := range teams {
		if teams[i].ID == id {
			return i
		}
	}
	return -1
}

func gameIndex(games []models.Game, id string) int {
	for i := range games {
		if games[i].ID == id {
			return i
		}
	}
	return -1
}
