// Package scoring turns game placements into team totals and the leaderboard.
package scoring

import (
	"sort"

	"github.com/Dosada05/family-games/models"
)

// DefaultPointValues apply to any game without explicit point configuration.
var DefaultPointValues = models.PointValues{First: 10, Second: 5, Third: 2}

// PointResolver returns the points a placement in a game is worth.
type PointResolver func(gameID string, place models.Place) int

// NewPointTable resolves points from each game's configuration, falling back
// to defaults for games it does not know.
func NewPointTable(games []models.Game, defaults models.PointValues) PointResolver {
	byID := make(map[string]models.PointValues, len(games))
	for _, g := range games {
		byID[g.ID] = g.Points
	}
	return func(gameID string, place models.Place) int {
		if points, ok := byID[gameID]; ok {
			return points.For(place)
		}
		return defaults.For(place)
	}
}

var places = []models.Place{models.PlaceFirst, models.PlaceSecond, models.PlaceThird}

// RecomputeTotals rebuilds every team's total from the placements in results.
// Totals are always replaced, never accumulated. Placements naming teams that
// no longer exist simply match nobody.
func RecomputeTotals(teams []models.Team, games []models.Game, results map[string]*models.GameResult, pointValueOf PointResolver) []models.Team {
	updated := models.CloneTeams(teams)
	for i := range updated {
		total := 0
		for _, game := range games {
			result, ok := results[game.ID]
			if !ok || result == nil {
				continue
			}
			gamePlaces := result.Places()
			for _, place := range places {
				if ref := gamePlaces.At(place); ref.IsTeam() && ref.TeamID == updated[i].ID {
					total += pointValueOf(game.ID, place)
				}
			}
		}
		updated[i].TotalScore = total
	}
	return updated
}

// RankLeaderboard orders teams by total score, highest first. Equal totals
// keep registration order.
func RankLeaderboard(teams []models.Team) []models.LeaderboardEntry {
	sorted := models.CloneTeams(teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalScore > sorted[j].TotalScore
	})

	entries := make([]models.LeaderboardEntry, len(sorted))
	for i, t := range sorted {
		entries[i] = models.LeaderboardEntry{
			Rank:       i + 1,
			TeamID:     t.ID,
			TeamName:   t.Name,
			TotalScore: t.TotalScore,
		}
	}
	return entries
}
