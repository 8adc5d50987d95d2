package services

import (
	"context"
	"fmt"

	"github.com/Dosada05/family-games/brackets"
	"github.com/Dosada05/family-games/models"
	"github.com/Dosada05/family-games/repositories"
)

// GenerateBracket builds a fresh result for a game, replacing any previous
// one. For tournament games a non-empty seeding lists the participating team
// ids strongest first; without it every registered team takes part in random
// order. Overall-score games always start a sheet for all registered teams.
func (s *competitionService) GenerateBracket(ctx context.Context, gameID string, seeding []string) (*models.GameResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := gameIndex(s.state.games, gameID)
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	game := s.state.games[idx]

	generator, err := brackets.GeneratorFor(game.Type, s.singleElimination, s.overallScore)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGameType, err)
	}

	params := brackets.GenerateBracketParams{Game: &game, Teams: models.CloneTeams(s.state.teams)}
	if game.Type == models.GameTypeTournament && len(seeding) > 0 {
		seeded, err := s.seededTeams(seeding)
		if err != nil {
			return nil, err
		}
		params.Teams = seeded
		params.Seeded = true
	}

	result, err := generator.GenerateBracket(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s result for game %s: %w", generator.GetName(), gameID, err)
	}

	next := s.state.clone()
	next.results[gameID] = result
	if err := s.commit(ctx, next, repositories.KeyBrackets); err != nil {
		return nil, err
	}

	s.logger.Info("Bracket generated",
		"game_id", gameID, "generator", generator.GetName(), "teams", len(params.Teams), "seeded", params.Seeded)
	return s.publishResult(gameID), nil
}

// seededTeams resolves the ordered team ids into teams carrying seeds 1..n.
// Callers hold s.mu.
func (s *competitionService) seededTeams(seeding []string) ([]models.Team, error) {
	seen := make(map[string]bool, len(seeding))
	teams := make([]models.Team, 0, len(seeding))
	for i, teamID := range seeding {
		if seen[teamID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSeedTeam, teamID)
		}
		seen[teamID] = true

		idx := teamIndex(s.state.teams, teamID)
		if idx == -1 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSeedTeam, teamID)
		}
		team := s.state.teams[idx].Clone()
		team.Seed = i + 1
		teams = append(teams, team)
	}
	return teams, nil
}

func (s *competitionService) GetResult(ctx context.Context, gameID string) (*models.GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if gameIndex(s.state.games, gameID) == -1 {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	result, ok := s.state.results[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: game %s", ErrBracketNotFound, gameID)
	}
	return result.Clone(), nil
}

func (s *competitionService) ListResults(ctx context.Context) map[string]*models.GameResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneResults(s.state.results)
}

// SubmitMatchScore records the raw scores of a tournament match. Blank or
// non-numeric scores count as not entered yet.
func (s *competitionService) SubmitMatchScore(ctx context.Context, gameID string, round int, matchID, rawScore1, rawScore2 string) (*models.GameResult, error) {
	if round < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRoundNumber, round)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.resultFor(gameID, models.GameTypeTournament)
	if err != nil {
		return nil, err
	}
	if result.Tournament == nil {
		return nil, fmt.Errorf("%w: game %s", ErrBracketNotFound, gameID)
	}

	bracket, err := brackets.AdvanceMatch(result.Tournament, round, matchID, brackets.ParseScore(rawScore1), brackets.ParseScore(rawScore2))
	if err != nil {
		return nil, err
	}

	next := s.state.clone()
	next.results[gameID] = &models.GameResult{Type: models.GameTypeTournament, Tournament: bracket}
	if err := s.commit(ctx, next, repositories.KeyBrackets); err != nil {
		return nil, err
	}

	s.logger.Debug("Match score recorded", "game_id", gameID, "round", round, "match_id", matchID)
	return s.publishResult(gameID), nil
}

// UpdateOverallScore sets one team's score on an overall-score sheet.
// Non-numeric input is recorded as 0.
func (s *competitionService) UpdateOverallScore(ctx context.Context, gameID, teamID, rawScore string) (*models.GameResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.resultFor(gameID, models.GameTypeOverallScore)
	if err != nil {
		return nil, err
	}
	if result.Overall == nil {
		return nil, fmt.Errorf("%w: game %s", ErrBracketNotFound, gameID)
	}

	sheet, err := brackets.UpdateScore(result.Overall, teamID, rawScore)
	if err != nil {
		return nil, err
	}

	next := s.state.clone()
	next.results[gameID] = &models.GameResult{Type: models.GameTypeOverallScore, Overall: sheet}
	if err := s.commit(ctx, next, repositories.KeyBrackets); err != nil {
		return nil, err
	}

	s.logger.Debug("Overall score recorded", "game_id", gameID, "team_id", teamID)
	return s.publishResult(gameID), nil
}

// resultFor looks up the live result of a game that must be of wantType.
// Callers hold s.mu.
func (s *competitionService) resultFor(gameID string, wantType models.GameType) (*models.GameResult, error) {
	idx := gameIndex(s.state.games, gameID)
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	if gameType := s.state.games[idx].Type; gameType != wantType {
		return nil, fmt.Errorf("%w: game %s is '%s'", ErrWrongGameType, gameID, gameType)
	}
	result, ok := s.state.results[gameID]
	if !ok || result.Type != wantType {
		return nil, fmt.Errorf("%w: game %s", ErrBracketNotFound, gameID)
	}
	return result, nil
}

// publishResult notifies subscribers about a game's new result and returns a
// copy of it. Callers hold s.mu.
func (s *competitionService) publishResult(gameID string) *models.GameResult {
	result := s.state.results[gameID].Clone()
	s.notify(EventBracketUpdated, gameID, BracketUpdatePayload{GameID: gameID, Result: result.Clone()})
	return result
}
