package leaguestanding

import "github.com/riskibarqy/matchvision/internal/domain/fixture"

// MatchStats is a played/won/drawn/lost record for one split of the table.
type MatchStats struct {
	Played       *int `json:"played,omitempty"`
	Win          *int `json:"win,omitempty"`
	Draw         *int `json:"draw,omitempty"`
	Lose         *int `json:"lose,omitempty"`
	GoalsFor     *int `json:"goalsFor,omitempty"`
	GoalsAgainst *int `json:"goalsAgainst,omitempty"`
}

// TeamStanding is a table row. Identity is the team id within a league season.
type TeamStanding struct {
	Rank        int              `json:"rank"`
	Team        fixture.TeamInfo `json:"team"`
	Points      int              `json:"points"`
	GoalDiff    *int             `json:"goalDiff,omitempty"`
	Group       *string          `json:"group,omitempty"`
	Status      *string          `json:"status,omitempty"`
	Form        *string          `json:"form,omitempty"`
	Description *string          `json:"description,omitempty"`
	UpdatedAt   *string          `json:"updatedAt,omitempty"`
	Overall     *MatchStats      `json:"overall,omitempty"`
	Home        *MatchStats      `json:"home,omitempty"`
	Away        *MatchStats      `json:"away,omitempty"`
}
