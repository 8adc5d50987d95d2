package brackets

import (
	"context"
	"fmt"

	"github.com/Dosada05/family-games/models"
)

type GenerateBracketParams struct {
	Game   *models.Game
	Teams  []models.Team
	Seeded bool
}

// BracketGenerator builds the initial result structure of a game.
type BracketGenerator interface {
	GenerateBracket(ctx context.Context, params GenerateBracketParams) (*models.GameResult, error)

	GetName() string
}

// GeneratorFor picks the generator matching a game type.
func GeneratorFor(gameType models.GameType, singleElimination, overallScore BracketGenerator) (BracketGenerator, error) {
	switch gameType {
	case models.GameTypeTournament:
		return singleElimination, nil
	case models.GameTypeOverallScore:
		return overallScore, nil
	default:
		return nil, fmt.Errorf("unsupported game type '%s'", gameType)
	}
}
