package models

import "time"

type GameType string

const (
	GameTypeTournament   GameType = "tournament"
	GameTypeOverallScore GameType = "overall_score"
)

func (t GameType) Valid() bool {
	return t == GameTypeTournament || t == GameTypeOverallScore
}

type Place string

const (
	PlaceFirst  Place = "first"
	PlaceSecond Place = "second"
	PlaceThird  Place = "third"
)

// PointValues maps a placement to the points it is worth.
type PointValues struct {
	First  int `json:"first"`
	Second int `json:"second"`
	Third  int `json:"third"`
}

func (p PointValues) For(place Place) int {
	switch place {
	case PlaceFirst:
		return p.First
	case PlaceSecond:
		return p.Second
	case PlaceThird:
		return p.Third
	}
	return 0
}

type Game struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      GameType    `json:"type"`
	Points    PointValues `json:"points"`
	CreatedAt time.Time   `json:"created_at"`
}

func CloneGames(games []Game) []Game {
	out := make([]Game, len(games))
	copy(out, games)
	return out
}
