package models

// SlotKind tags what a match slot holds. The zero value is an unfilled slot.
type SlotKind string

const (
	SlotEmpty SlotKind = ""
	SlotTeam  SlotKind = "team"
	SlotBye   SlotKind = "bye"
)

// TeamRef is a match slot, winner or placement. BYE is its own kind, never a team id.
type TeamRef struct {
	Kind   SlotKind `json:"kind,omitempty"`
	TeamID string   `json:"team_id,omitempty"`
	Name   string   `json:"name,omitempty"`
}

func ByeRef() TeamRef {
	return TeamRef{Kind: SlotBye, Name: "BYE"}
}

func (r TeamRef) IsEmpty() bool { return r.Kind == SlotEmpty }
func (r TeamRef) IsBye() bool   { return r.Kind == SlotBye }
func (r TeamRef) IsTeam() bool  { return r.Kind == SlotTeam }

// Same reports whether both refs name the same team.
func (r TeamRef) Same(other TeamRef) bool {
	return r.IsTeam() && other.IsTeam() && r.TeamID == other.TeamID
}

type Match struct {
	ID          string  `json:"id"`
	Round       int     `json:"round"`
	MatchNumber int     `json:"match_number"`
	Team1       TeamRef `json:"team1"`
	Team2       TeamRef `json:"team2"`
	Score1      *int    `json:"score1"`
	Score2      *int    `json:"score2"`
	Winner      TeamRef `json:"winner"`
}

// Loser returns the side that did not win, or an empty ref while undecided.
func (m Match) Loser() TeamRef {
	if !m.Winner.IsTeam() {
		return TeamRef{}
	}
	if m.Winner.Same(m.Team1) {
		return m.Team2
	}
	return m.Team1
}

func (m Match) Decided() bool {
	return m.Winner.IsTeam()
}

func (m Match) clone() Match {
	c := m
	if m.Score1 != nil {
		s := *m.Score1
		c.Score1 = &s
	}
	if m.Score2 != nil {
		s := *m.Score2
		c.Score2 = &s
	}
	return c
}
