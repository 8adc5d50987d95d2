package models

// LeaderboardEntry is a team with its rank by total score.
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	TeamID     string `json:"team_id"`
	TeamName   string `json:"team_name"`
	TotalScore int    `json:"total_score"`
}
