package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Dosada05/family-games/brackets"
	"github.com/Dosada05/family-games/models"
	"github.com/Dosada05/family-games/repositories"
	"github.com/Dosada05/family-games/scoring"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Event types pushed to websocket rooms.
const (
	EventTeamsUpdated       = "TEAMS_UPDATED"
	EventGamesUpdated       = "GAMES_UPDATED"
	EventGameDeleted        = "GAME_DELETED"
	EventBracketUpdated     = "BRACKET_UPDATED"
	EventLeaderboardUpdated = "LEADERBOARD_UPDATED"
	EventCompetitionReset   = "COMPETITION_RESET"
)

// Notifier fans state changes out to connected clients.
type Notifier interface {
	BroadcastToRoom(roomID string, message interface{})
}

type TeamInput struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// TeamUpdate changes only the fields that are set.
type TeamUpdate struct {
	Name    *string  `json:"name"`
	Members []string `json:"members"`
}

type PointsUpdate struct {
	First  *int `json:"first"`
	Second *int `json:"second"`
	Third  *int `json:"third"`
}

type GameInput struct {
	Name   string          `json:"name"`
	Type   models.GameType `json:"type"`
	Points *PointsUpdate   `json:"points"`
}

type GameUpdate struct {
	Name   *string          `json:"name"`
	Type   *models.GameType `json:"type"`
	Points *PointsUpdate    `json:"points"`
}

type BracketUpdatePayload struct {
	GameID string             `json:"game_id"`
	Result *models.GameResult `json:"result"`
}

// CompetitionService owns the teams, games and per-game results of the
// competition. Every method returns copies; callers never share state with
// the service.
type CompetitionService interface {
	Load(ctx context.Context) error

	ListTeams(ctx context.Context) []models.Team
	GetTeam(ctx context.Context, teamID string) (*models.Team, error)
	AddTeam(ctx context.Context, input TeamInput) (*models.Team, error)
	UpdateTeam(ctx context.Context, teamID string, update TeamUpdate) (*models.Team, error)
	DeleteTeam(ctx context.Context, teamID string) error

	ListGames(ctx context.Context) []models.Game
	GetGame(ctx context.Context, gameID string) (*models.Game, error)
	AddGame(ctx context.Context, input GameInput) (*models.Game, error)
	UpdateGame(ctx context.Context, gameID string, update GameUpdate) (*models.Game, error)
	UpdateGamePoints(ctx context.Context, gameID string, points PointsUpdate) (*models.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	GenerateBracket(ctx context.Context, gameID string, seeding []string) (*models.GameResult, error)
	GetResult(ctx context.Context, gameID string) (*models.GameResult, error)
	ListResults(ctx context.Context) map[string]*models.GameResult
	SubmitMatchScore(ctx context.Context, gameID string, round int, matchID, rawScore1, rawScore2 string) (*models.GameResult, error)
	UpdateOverallScore(ctx context.Context, gameID, teamID, rawScore string) (*models.GameResult, error)

	Leaderboard(ctx context.Context) []models.LeaderboardEntry
	Reset(ctx context.Context) error
}

type competitionState struct {
	teams   []models.Team
	games   []models.Game
	results map[string]*models.GameResult
}

func emptyState() *competitionState {
	return &competitionState{
		teams:   []models.Team{},
		games:   []models.Game{},
		results: map[string]*models.GameResult{},
	}
}

func (st *competitionState) clone() *competitionState {
	return &competitionState{
		teams:   models.CloneTeams(st.teams),
		games:   models.CloneGames(st.games),
		results: models.CloneResults(st.results),
	}
}

func (st *competitionState) snapshot(key string) interface{} {
	switch key {
	case repositories.KeyTeams:
		return st.teams
	case repositories.KeyGames:
		return st.games
	default:
		return st.results
	}
}

type competitionService struct {
	mu    sync.RWMutex
	state *competitionState

	repo              repositories.SnapshotRepository
	notifier          Notifier
	singleElimination brackets.BracketGenerator
	overallScore      brackets.BracketGenerator
	defaultPoints     models.PointValues
	logger            *slog.Logger
	now               func() time.Time
}

func NewCompetitionService(
	repo repositories.SnapshotRepository,
	notifier Notifier,
	singleElimination brackets.BracketGenerator,
	overallScore brackets.BracketGenerator,
	defaultPoints models.PointValues,
	logger *slog.Logger,
) CompetitionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &competitionService{
		state:             emptyState(),
		repo:              repo,
		notifier:          notifier,
		singleElimination: singleElimination,
		overallScore:      overallScore,
		defaultPoints:     defaultPoints,
		logger:            logger,
		now:               time.Now,
	}
}

func newID() string {
	return uuid.NewString()
}

// Load replaces the in-memory state with the stored snapshots. Missing
// namespaces start empty and unreadable ones are discarded with a warning.
func (s *competitionService) Load(ctx context.Context) error {
	next := emptyState()

	loader := func(gctx context.Context, key string, dst interface{}, reset func()) func() error {
		return func() error {
			_, err := s.repo.Load(gctx, key, dst)
			if errors.Is(err, repositories.ErrSnapshotCorrupt) {
				s.logger.Warn("Discarding unreadable snapshot", "key", key, "error", err)
				reset()
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", key, err)
			}
			return nil
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(loader(gctx, repositories.KeyTeams, &next.teams, func() { next.teams = []models.Team{} }))
	g.Go(loader(gctx, repositories.KeyGames, &next.games, func() { next.games = []models.Game{} }))
	g.Go(loader(gctx, repositories.KeyBrackets, &next.results, func() { next.results = map[string]*models.GameResult{} }))
	if err := g.Wait(); err != nil {
		return err
	}

	if next.teams == nil {
		next.teams = []models.Team{}
	}
	if next.games == nil {
		next.games = []models.Game{}
	}
	if next.results == nil {
		next.results = map[string]*models.GameResult{}
	}
	for gameID, result := range next.results {
		if result == nil {
			delete(next.results, gameID)
		}
	}
	next.teams = s.recompute(next)

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()

	s.logger.Info("Competition state loaded",
		"teams", len(next.teams), "games", len(next.games), "results", len(next.results))
	return nil
}

func (s *competitionService) recompute(st *competitionState) []models.Team {
	return scoring.RecomputeTotals(st.teams, st.games, st.results, scoring.NewPointTable(st.games, s.defaultPoints))
}

// commit recomputes totals for next, persists the teams namespace plus keys
// and only then makes next the live state. Callers hold s.mu.
func (s *competitionService) commit(ctx context.Context, next *competitionState, keys ...string) error {
	next.teams = s.recompute(next)

	toSave := map[string]struct{}{repositories.KeyTeams: {}}
	for _, key := range keys {
		toSave[key] = struct{}{}
	}

	g, gctx := errgroup.WithContext(ctx)
	for key := range toSave {
		value := next.snapshot(key)
		g.Go(func() error {
			if err := s.repo.Save(gctx, key, value); err != nil {
				return fmt.Errorf("failed to persist %s: %w", key, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("Persisting competition state failed", "error", err)
		return err
	}

	s.state = next
	return nil
}

// notify sends an event to the competition room, to the game's own room when
// gameID is set, and follows up with the refreshed leaderboard.
func (s *competitionService) notify(eventType, gameID string, payload interface{}) {
	if s.notifier == nil {
		return
	}
	s.notifier.BroadcastToRoom(brackets.CompetitionRoom, brackets.WebSocketMessage{
		Type:    eventType,
		Payload: payload,
		RoomID:  brackets.CompetitionRoom,
	})
	if gameID != "" {
		room := brackets.GameRoom(gameID)
		s.notifier.BroadcastToRoom(room, brackets.WebSocketMessage{
			Type:    eventType,
			Payload: payload,
			RoomID:  room,
		})
	}
	s.notifier.BroadcastToRoom(brackets.CompetitionRoom, brackets.WebSocketMessage{
		Type:    EventLeaderboardUpdated,
		Payload: scoring.RankLeaderboard(s.state.teams),
		RoomID:  brackets.CompetitionRoom,
	})
}

func (s *competitionService) Leaderboard(ctx context.Context) []models.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return scoring.RankLeaderboard(s.state.teams)
}

// Reset clears every namespace, both stored and in memory.
func (s *competitionService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{repositories.KeyTeams, repositories.KeyGames, repositories.KeyBrackets} {
		if err := s.repo.Delete(ctx, key); err != nil && !errors.Is(err, repositories.ErrSnapshotNotFound) {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	s.state = emptyState()

	s.logger.Info("Competition reset")
	s.notify(EventCompetitionReset, "", nil)
	return nil
}
