package models

import "sort"

// Places holds the derived 1st/2nd/3rd placements of a game.
type Places struct {
	First  TeamRef `json:"first"`
	Second TeamRef `json:"second"`
	Third  TeamRef `json:"third"`
}

func (p Places) At(place Place) TeamRef {
	switch place {
	case PlaceFirst:
		return p.First
	case PlaceSecond:
		return p.Second
	case PlaceThird:
		return p.Third
	}
	return TeamRef{}
}

// Bracket is a single-elimination tree. Rounds are keyed 1..NumRounds and each
// round's matches are ordered by MatchNumber.
type Bracket struct {
	Rounds           map[int][]Match `json:"rounds"`
	CurrentRound     int             `json:"current_round"`
	Places           Places          `json:"places"`
	ParticipantCount int             `json:"participant_count"`
}

func (b *Bracket) NumRounds() int {
	if b == nil {
		return 0
	}
	return len(b.Rounds)
}

// RoundNumbers returns the round keys in ascending order.
func (b *Bracket) RoundNumbers() []int {
	keys := make([]int, 0, len(b.Rounds))
	for r := range b.Rounds {
		keys = append(keys, r)
	}
	sort.Ints(keys)
	return keys
}

func (b *Bracket) Clone() *Bracket {
	if b == nil {
		return nil
	}
	c := &Bracket{
		Rounds:           make(map[int][]Match, len(b.Rounds)),
		CurrentRound:     b.CurrentRound,
		Places:           b.Places,
		ParticipantCount: b.ParticipantCount,
	}
	for r, matches := range b.Rounds {
		cm := make([]Match, len(matches))
		for i, m := range matches {
			cm[i] = m.clone()
		}
		c.Rounds[r] = cm
	}
	return c
}
