package scoring

import (
	"testing"

	"github.com/Dosada05/family-games/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teamRef(id string) models.TeamRef {
	return models.TeamRef{Kind: models.SlotTeam, TeamID: id}
}

func TestRecomputeTotals(t *testing.T) {
	teams := []models.Team{{ID: "t1", TotalScore: 99}, {ID: "t2"}, {ID: "t3"}}
	games := []models.Game{
		{ID: "g1", Type: models.GameTypeTournament, Points: models.PointValues{First: 10, Second: 5, Third: 2}},
		{ID: "g2", Type: models.GameTypeOverallScore, Points: models.PointValues{First: 20, Second: 8, Third: 1}},
	}
	results := map[string]*models.GameResult{
		"g1": {Type: models.GameTypeTournament, Tournament: &models.Bracket{
			Places: models.Places{First: teamRef("t1"), Second: teamRef("t2"), Third: teamRef("t3")},
		}},
		"g2": {Type: models.GameTypeOverallScore, Overall: &models.ScoreSheet{
			Places: models.Places{First: teamRef("t2"), Second: teamRef("t1")},
		}},
	}

	got := RecomputeTotals(teams, games, results, NewPointTable(games, DefaultPointValues))

	require.Len(t, got, 3)
	assert.Equal(t, 18, got[0].TotalScore)
	assert.Equal(t, 25, got[1].TotalScore)
	assert.Equal(t, 2, got[2].TotalScore)
	// Input untouched.
	assert.Equal(t, 99, teams[0].TotalScore)
}

func TestRecomputeTotals_DeletedTeamPlacementIsDropped(t *testing.T) {
	teams := []models.Team{{ID: "t2"}}
	games := []models.Game{{ID: "g1", Points: DefaultPointValues}}
	results := map[string]*models.GameResult{
		"g1": {Type: models.GameTypeTournament, Tournament: &models.Bracket{
			Places: models.Places{First: teamRef("gone"), Second: teamRef("t2")},
		}},
	}

	var got []models.Team
	assert.NotPanics(t, func() {
		got = RecomputeTotals(teams, games, results, NewPointTable(games, DefaultPointValues))
	})
	assert.Equal(t, 5, got[0].TotalScore)
}

func TestRecomputeTotals_IgnoresResultsOfUnknownGamesAndBrokenEntries(t *testing.T) {
	teams := []models.Team{{ID: "t1", TotalScore: 40}}
	games := []models.Game{{ID: "g1"}, {ID: "g2"}}
	results := map[string]*models.GameResult{
		"g1":      {Type: models.GameTypeTournament},
		"g2":      nil,
		"deleted": {Type: models.GameTypeOverallScore, Overall: &models.ScoreSheet{Places: models.Places{First: teamRef("t1")}}},
	}

	got := RecomputeTotals(teams, games, results, NewPointTable(games, DefaultPointValues))
	assert.Equal(t, 0, got[0].TotalScore)
}

func TestNewPointTable_FallsBackToDefaults(t *testing.T) {
	resolve := NewPointTable([]models.Game{{ID: "g1", Points: models.PointValues{First: 3}}}, DefaultPointValues)

	assert.Equal(t, 3, resolve("g1", models.PlaceFirst))
	assert.Equal(t, 0, resolve("g1", models.PlaceSecond))
	assert.Equal(t, 10, resolve("other", models.PlaceFirst))
	assert.Equal(t, 5, resolve("other", models.PlaceSecond))
	assert.Equal(t, 2, resolve("other", models.PlaceThird))
}

func TestRankLeaderboard(t *testing.T) {
	teams := []models.Team{
		{ID: "a", Name: "A", TotalScore: 5},
		{ID: "b", Name: "B", TotalScore: 12},
		{ID: "c", Name: "C", TotalScore: 5},
	}

	board := RankLeaderboard(teams)

	require.Len(t, board, 3)
	assert.Equal(t, models.LeaderboardEntry{Rank: 1, TeamID: "b", TeamName: "B", TotalScore: 12}, board[0])
	assert.Equal(t, "a", board[1].TeamID)
	assert.Equal(t, 2, board[1].Rank)
	assert.Equal(t, "c", board[2].TeamID)
	assert.Equal(t, 3, board[2].Rank)
}
