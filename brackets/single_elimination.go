package brackets

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"

	"github.com/Dosada05/family-games/models"
	"github.com/google/uuid"
)

var (
	ErrInsufficientTeams = errors.New("not enough teams to generate a single elimination bracket (minimum 2)")
	ErrRoundNotFound     = errors.New("bracket round not found")
	ErrMatchNotFound     = errors.New("bracket match not found")
	ErrNegativeScore     = errors.New("match score must not be negative")
)

type matchAddr struct {
	round int
	index int
}

type SingleEliminationGenerator struct {
	rng *rand.Rand
}

// NewSingleEliminationGenerator returns a generator that shuffles unseeded
// teams with rng, or with the global source when rng is nil.
func NewSingleEliminationGenerator(rng *rand.Rand) BracketGenerator {
	return &SingleEliminationGenerator{rng: rng}
}

func (g *SingleEliminationGenerator) GetName() string {
	return "SingleElimination"
}

func (g *SingleEliminationGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) (*models.GameResult, error) {
	bracket, err := GenerateBracket(params.Teams, params.Seeded, g.rng)
	if err != nil {
		return nil, err
	}
	return &models.GameResult{Type: models.GameTypeTournament, Tournament: bracket}, nil
}

// GenerateBracket builds a single-elimination tree. The highest seeds receive
// the byes, the remaining teams are paired in order and bye winners are placed
// into round 2 straight away.
func GenerateBracket(teams []models.Team, seeded bool, rng *rand.Rand) (*models.Bracket, error) {
	n := len(teams)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientTeams, n)
	}

	ordered := orderTeams(teams, seeded, rng)

	numRounds := int(math.Ceil(math.Log2(float64(n))))
	sizeOfFullBracket := 1 << uint(numRounds)
	numByes := sizeOfFullBracket - n

	round1 := make([]models.Match, 0, sizeOfFullBracket/2)
	for i := 0; i < numByes; i++ {
		ref := ordered[i].Ref()
		round1 = append(round1, models.Match{
			ID:          uuid.NewString(),
			Round:       1,
			MatchNumber: i,
			Team1:       ref,
			Team2:       models.ByeRef(),
			Winner:      ref,
		})
	}

	remaining := ordered[numByes:]
	for i := 0; i+1 < len(remaining); i += 2 {
		round1 = append(round1, models.Match{
			ID:          uuid.NewString(),
			Round:       1,
			MatchNumber: len(round1),
			Team1:       remaining[i].Ref(),
			Team2:       remaining[i+1].Ref(),
		})
	}

	bracket := &models.Bracket{
		Rounds:           map[int][]models.Match{1: round1},
		CurrentRound:     1,
		ParticipantCount: n,
	}

	for r := 2; r <= numRounds; r++ {
		matches := make([]models.Match, (len(bracket.Rounds[r-1])+1)/2)
		for i := range matches {
			matches[i] = models.Match{ID: uuid.NewString(), Round: r, MatchNumber: i}
		}
		bracket.Rounds[r] = matches
	}

	for i := range round1 {
		if round1[i].Winner.IsTeam() {
			feedWinner(bracket, 1, i)
		}
	}

	return bracket, nil
}

func orderTeams(teams []models.Team, seeded bool, rng *rand.Rand) []models.Team {
	ordered := models.CloneTeams(teams)
	if seeded {
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Seed < ordered[j].Seed
		})
		return ordered
	}

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(ordered), func(i, j int) {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	})
	return ordered
}

// AdvanceMatch records scores for a match and returns a new bracket with the
// outcome applied. The input bracket is never modified.
func AdvanceMatch(bracket *models.Bracket, round int, matchID string, score1, score2 *int) (*models.Bracket, error) {
	if (score1 != nil && *score1 < 0) || (score2 != nil && *score2 < 0) {
		return nil, ErrNegativeScore
	}
	if bracket == nil {
		return nil, fmt.Errorf("%w: round %d", ErrRoundNotFound, round)
	}

	next := bracket.Clone()
	matches, ok := next.Rounds[round]
	if !ok {
		return nil, fmt.Errorf("%w: round %d", ErrRoundNotFound, round)
	}

	idx := -1
	for i := range matches {
		if matches[i].ID == matchID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s in round %d", ErrMatchNotFound, matchID, round)
	}

	match := &matches[idx]
	match.Score1 = copyScore(score1)
	match.Score2 = copyScore(score2)
	match.Winner = resolveWinner(*match)

	if match.Winner.IsTeam() {
		if round < next.NumRounds() {
			cascade(next, matchAddr{round: round, index: idx})
		} else {
			settlePlacements(next, *match)
		}
	}

	next.CurrentRound = currentRound(next)
	return next, nil
}

// ParseScore reads a submitted score. Blank or non-numeric input counts as no score.
func ParseScore(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func resolveWinner(m models.Match) models.TeamRef {
	switch {
	case m.Team1.IsBye():
		return m.Team2
	case m.Team2.IsBye():
		return m.Team1
	case m.Score1 != nil && m.Score2 != nil:
		if *m.Score1 > *m.Score2 {
			return m.Team1
		}
		if *m.Score2 > *m.Score1 {
			return m.Team2
		}
	}
	return models.TeamRef{}
}

// feedWinner places a decided match's winner into its slot in the next round.
func feedWinner(b *models.Bracket, round, index int) (matchAddr, bool) {
	m := b.Rounds[round][index]
	if !m.Winner.IsTeam() {
		return matchAddr{}, false
	}
	nextMatches, ok := b.Rounds[round+1]
	if !ok {
		return matchAddr{}, false
	}
	target := m.MatchNumber / 2
	if target >= len(nextMatches) {
		return matchAddr{}, false
	}
	if m.MatchNumber%2 == 0 {
		nextMatches[target].Team1 = m.Winner
	} else {
		nextMatches[target].Team2 = m.Winner
	}
	return matchAddr{round: round + 1, index: target}, true
}

// cascade propagates a winner and auto-resolves any match the placement
// completes against a BYE. Matches in the final round are resolved but never
// propagated further, so the queue drains within NumRounds steps.
func cascade(b *models.Bracket, start matchAddr) {
	last := b.NumRounds()
	queue := []matchAddr{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		addr, ok := feedWinner(b, cur.round, cur.index)
		if !ok {
			continue
		}
		nm := &b.Rounds[addr.round][addr.index]
		if nm.Team1.IsEmpty() || nm.Team2.IsEmpty() {
			continue
		}
		if !nm.Team1.IsBye() && !nm.Team2.IsBye() {
			continue
		}
		nm.Score1, nm.Score2 = nil, nil
		nm.Winner = resolveWinner(*nm)
		if addr.round < last && nm.Winner.IsTeam() {
			queue = append(queue, addr)
		}
	}
}

func settlePlacements(b *models.Bracket, final models.Match) {
	b.Places.First = final.Winner
	if loser := final.Loser(); loser.IsTeam() {
		b.Places.Second = loser
	} else {
		b.Places.Second = models.TeamRef{}
	}
	if third, ok := thirdPlace(b); ok {
		b.Places.Third = third
	}
}

func thirdPlace(b *models.Bracket) (models.TeamRef, bool) {
	last := b.NumRounds()
	if last < 2 || b.ParticipantCount <= 2 {
		return models.TeamRef{}, false
	}

	isFinalist := func(ref models.TeamRef) bool {
		return ref.Same(b.Places.First) || ref.Same(b.Places.Second)
	}

	semis := b.Rounds[last-1]
	switch {
	case len(semis) == 2:
		for _, m := range semis {
			if loser := m.Loser(); loser.IsTeam() && !isFinalist(loser) {
				return loser, true
			}
		}
	case len(semis) == 1 && b.ParticipantCount == 3:
		if loser := semis[0].Loser(); loser.IsTeam() && !isFinalist(loser) {
			return loser, true
		}
	}
	return models.TeamRef{}, false
}

// currentRound is the lowest round still holding an undecided match, or the
// last round once every match is decided.
func currentRound(b *models.Bracket) int {
	rounds := b.RoundNumbers()
	for _, r := range rounds {
		for _, m := range b.Rounds[r] {
			if !m.Decided() {
				return r
			}
		}
	}
	if len(rounds) == 0 {
		return 0
	}
	return rounds[len(rounds)-1]
}

func copyScore(s *int) *int {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
