package models

type ScoreEntry struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	Score    int    `json:"score"`
}

// ScoreSheet is the flat per-team score list of an overall_score game.
type ScoreSheet struct {
	Scores []ScoreEntry `json:"scores"`
	Places Places       `json:"places"`
}

func (s *ScoreSheet) Clone() *ScoreSheet {
	if s == nil {
		return nil
	}
	c := &ScoreSheet{Places: s.Places, Scores: make([]ScoreEntry, len(s.Scores))}
	copy(c.Scores, s.Scores)
	return c
}

// GameResult is what the brackets-by-game-id namespace stores for a game.
// Exactly one of Tournament or Overall is set, matching Type.
type GameResult struct {
	Type       GameType    `json:"type"`
	Tournament *Bracket    `json:"tournament,omitempty"`
	Overall    *ScoreSheet `json:"overall,omitempty"`
}

// Places returns the placements of whichever result kind is present. A result
// whose payload is missing yields empty placements.
func (r *GameResult) Places() Places {
	if r == nil {
		return Places{}
	}
	switch r.Type {
	case GameTypeTournament:
		if r.Tournament != nil {
			return r.Tournament.Places
		}
	case GameTypeOverallScore:
		if r.Overall != nil {
			return r.Overall.Places
		}
	}
	return Places{}
}

func (r *GameResult) Clone() *GameResult {
	if r == nil {
		return nil
	}
	return &GameResult{
		Type:       r.Type,
		Tournament: r.Tournament.Clone(),
		Overall:    r.Overall.Clone(),
	}
}

func CloneResults(results map[string]*GameResult) map[string]*GameResult {
	out := make(map[string]*GameResult, len(results))
	for id, r := range results {
		out[id] = r.Clone()
	}
	return out
}
