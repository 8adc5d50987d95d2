package models

import "time"

// Team is a registered competitor. TotalScore is derived from game placements
// and rewritten on every recompute.
type Team struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Members    []string  `json:"members,omitempty"`
	TotalScore int       `json:"total_score"`
	CreatedAt  time.Time `json:"created_at"`

	// Seed is only meaningful as bracket generator input (1 = strongest).
	Seed int `json:"seed,omitempty"`
}

func (t Team) Ref() TeamRef {
	return TeamRef{Kind: SlotTeam, TeamID: t.ID, Name: t.Name}
}

func (t Team) Clone() Team {
	c := t
	if t.Members != nil {
		c.Members = append([]string(nil), t.Members...)
	}
	return c
}

func CloneTeams(teams []Team) []Team {
	if teams == nil {
		return []Team{}
	}
	out := make([]Team, len(teams))
	for i, t := range teams {
		out[i] = t.Clone()
	}
	return out
}
