package brackets

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Dosada05/family-games/models"
)

var ErrTeamNotInSheet = errors.New("team is not part of the score sheet")

type OverallScoreGenerator struct{}

func NewOverallScoreGenerator() BracketGenerator {
	return &OverallScoreGenerator{}
}

func (g *OverallScoreGenerator) GetName() string {
	return "OverallScore"
}

// GenerateBracket sets up a score sheet with one zeroed entry per team.
func (g *OverallScoreGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) (*models.GameResult, error) {
	return &models.GameResult{Type: models.GameTypeOverallScore, Overall: InitializeSheet(params.Teams)}, nil
}

func InitializeSheet(teams []models.Team) *models.ScoreSheet {
	sheet := &models.ScoreSheet{Scores: make([]models.ScoreEntry, 0, len(teams))}
	for _, t := range teams {
		sheet.Scores = append(sheet.Scores, models.ScoreEntry{TeamID: t.ID, TeamName: t.Name})
	}
	return sheet
}

// UpdateScore sets one team's score and re-derives placements. Unparseable
// input is recorded as 0.
func UpdateScore(sheet *models.ScoreSheet, teamID string, rawScore string) (*models.ScoreSheet, error) {
	if sheet == nil {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotInSheet, teamID)
	}
	next := sheet.Clone()

	found := false
	for i := range next.Scores {
		if next.Scores[i].TeamID == teamID {
			next.Scores[i].Score = parseSheetScore(rawScore)
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotInSheet, teamID)
	}

	next.Places = rankSheet(next.Scores)
	return next, nil
}

func parseSheetScore(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return v
}

// rankSheet orders entries by score, keeping sheet order on ties. Tied teams
// still take distinct places; only a sheet with fewer than three teams leaves
// places unset.
func rankSheet(scores []models.ScoreEntry) models.Places {
	sorted := make([]models.ScoreEntry, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	ref := func(e models.ScoreEntry) models.TeamRef {
		return models.TeamRef{Kind: models.SlotTeam, TeamID: e.TeamID, Name: e.TeamName}
	}

	var places models.Places
	if len(sorted) > 0 {
		places.First = ref(sorted[0])
	}
	if len(sorted) > 1 && sorted[1].TeamID != sorted[0].TeamID {
		places.Second = ref(sorted[1])
	}
	if len(sorted) > 2 && sorted[2].TeamID != sorted[0].TeamID && sorted[2].TeamID != sorted[1].TeamID {
		places.Third = ref(sorted[2])
	}
	return places
}
