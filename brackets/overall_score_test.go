package brackets

import (
	"context"
	"testing"

	"github.com/Dosada05/family-games/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeSheet(t *testing.T) {
	sheet := InitializeSheet(seededTeams(3))

	require.Len(t, sheet.Scores, 3)
	for i, e := range sheet.Scores {
		assert.Equal(t, seededTeams(3)[i].ID, e.TeamID)
		assert.Equal(t, 0, e.Score)
	}
	assert.Equal(t, models.Places{}, sheet.Places)
}

func TestOverallScoreGenerator(t *testing.T) {
	g := NewOverallScoreGenerator()
	assert.Equal(t, "OverallScore", g.GetName())

	res, err := g.GenerateBracket(context.Background(), GenerateBracketParams{Teams: seededTeams(2)})
	require.NoError(t, err)
	assert.Equal(t, models.GameTypeOverallScore, res.Type)
	require.NotNil(t, res.Overall)
	assert.Len(t, res.Overall.Scores, 2)
}

func TestUpdateScore_SetsScoreAndRanks(t *testing.T) {
	sheet := InitializeSheet(seededTeams(4))

	sheet, err := UpdateScore(sheet, "t3", "7")
	require.NoError(t, err)
	sheet, err = UpdateScore(sheet, "t2", "12")
	require.NoError(t, err)

	assert.Equal(t, 7, sheet.Scores[2].Score)
	assert.Equal(t, "t2", sheet.Places.First.TeamID)
	assert.Equal(t, "t3", sheet.Places.Second.TeamID)
	// t1 and t4 tie at 0; sheet order breaks the tie.
	assert.Equal(t, "t1", sheet.Places.Third.TeamID)
}

func TestUpdateScore_MalformedInputIsZero(t *testing.T) {
	sheet := InitializeSheet(seededTeams(2))
	sheet, err := UpdateScore(sheet, "t1", "9")
	require.NoError(t, err)

	sheet, err = UpdateScore(sheet, "t1", "nine")
	require.NoError(t, err)
	assert.Equal(t, 0, sheet.Scores[0].Score)
}

// Tied scores still produce distinct 1st and 2nd places.
func TestUpdateScore_TiesStillRankDistinctTeams(t *testing.T) {
	sheet := InitializeSheet(seededTeams(2))
	sheet, err := UpdateScore(sheet, "t1", "100")
	require.NoError(t, err)
	sheet, err = UpdateScore(sheet, "t2", "100")
	require.NoError(t, err)

	assert.Equal(t, "t1", sheet.Places.First.TeamID)
	assert.Equal(t, "t2", sheet.Places.Second.TeamID)
	assert.True(t, sheet.Places.Third.IsEmpty())
}

func TestUpdateScore_SingleTeam(t *testing.T) {
	sheet, err := UpdateScore(InitializeSheet(seededTeams(1)), "t1", "3")
	require.NoError(t, err)
	assert.Equal(t, "t1", sheet.Places.First.TeamID)
	assert.True(t, sheet.Places.Second.IsEmpty())
}

func TestUpdateScore_UnknownTeam(t *testing.T) {
	sheet := InitializeSheet(seededTeams(2))
	_, err := UpdateScore(sheet, "nope", "1")
	assert.ErrorIs(t, err, ErrTeamNotInSheet)

	_, err = UpdateScore(nil, "t1", "1")
	assert.ErrorIs(t, err, ErrTeamNotInSheet)
}

func TestUpdateScore_DoesNotMutateInput(t *testing.T) {
	sheet := InitializeSheet(seededTeams(2))
	_, err := UpdateScore(sheet, "t1", "5")
	require.NoError(t, err)
	assert.Equal(t, 0, sheet.Scores[0].Score)
	assert.True(t, sheet.Places.First.IsEmpty())
}
