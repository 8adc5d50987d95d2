package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dosada05/family-games/models"
	"github.com/Dosada05/family-games/repositories"
)

func (s *competitionService) ListGames(ctx context.Context) []models.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneGames(s.state.games)
}

func (s *competitionService) GetGame(ctx context.Context, gameID string) (*models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := gameIndex(s.state.games, gameID)
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	game := s.state.games[idx]
	return &game, nil
}

// AddGame registers a game. A missing type means tournament and missing point
// values fall back to the configured defaults.
func (s *competitionService) AddGame(ctx context.Context, input GameInput) (*models.Game, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrGameNameRequired
	}
	gameType := input.Type
	if gameType == "" {
		gameType = models.GameTypeTournament
	}
	if !gameType.Valid() {
		return nil, fmt.Errorf("%w: got '%s'", ErrInvalidGameType, gameType)
	}
	points, err := mergePoints(s.defaultPoints, input.Points)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game := models.Game{
		ID:        newID(),
		Name:      name,
		Type:      gameType,
		Points:    points,
		CreatedAt: s.now().UTC(),
	}
	next := s.state.clone()
	next.games = append(next.games, game)
	if err := s.commit(ctx, next, repositories.KeyGames); err != nil {
		return nil, err
	}

	s.logger.Info("Game added", "game_id", game.ID, "name", game.Name, "type", game.Type)
	s.notify(EventGamesUpdated, "", models.CloneGames(s.state.games))
	return &game, nil
}

// UpdateGame applies the fields that are set. Point values not present in the
// update keep their current value. Changing the type discards the game's
// result, since it no longer matches.
func (s *competitionService) UpdateGame(ctx context.Context, gameID string, update GameUpdate) (*models.Game, error) {
	var name string
	if update.Name != nil {
		name = strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, ErrGameNameRequired
		}
	}
	if update.Type != nil && !update.Type.Valid() {
		return nil, fmt.Errorf("%w: got '%s'", ErrInvalidGameType, *update.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := gameIndex(s.state.games, gameID)
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	points, err := mergePoints(s.state.games[idx].Points, update.Points)
	if err != nil {
		return nil, err
	}

	next := s.state.clone()
	game := &next.games[idx]
	if update.Name != nil {
		game.Name = name
	}
	game.Points = points

	keys := []string{repositories.KeyGames}
	typeChanged := update.Type != nil && *update.Type != game.Type
	if typeChanged {
		game.Type = *update.Type
		delete(next.results, gameID)
		keys = append(keys, repositories.KeyBrackets)
	}
	updated := *game

	if err := s.commit(ctx, next, keys...); err != nil {
		return nil, err
	}

	if typeChanged {
		s.logger.Info("Game type changed, result discarded", "game_id", gameID, "type", updated.Type)
	}
	s.notify(EventGamesUpdated, gameID, models.CloneGames(s.state.games))
	return &updated, nil
}

func (s *competitionService) UpdateGamePoints(ctx context.Context, gameID string, points PointsUpdate) (*models.Game, error) {
	return s.UpdateGame(ctx, gameID, GameUpdate{Points: &points})
}

// DeleteGame removes a game together with its bracket or score sheet.
func (s *competitionService) DeleteGame(ctx context.Context, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := gameIndex(s.state.games, gameID)
	if idx == -1 {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	next := s.state.clone()
	next.games = append(next.games[:idx], next.games[idx+1:]...)
	delete(next.results, gameID)
	if err := s.commit(ctx, next, repositories.KeyGames, repositories.KeyBrackets); err != nil {
		return err
	}

	s.logger.Info("Game deleted", "game_id", gameID)
	s.notify(EventGameDeleted, gameID, map[string]string{"game_id": gameID})
	return nil
}
