package leaguestanding

import "context"

type Repository interface {
	GetLeagueStats(ctx context.Context, leagueID, season int) ([]TeamStanding, error)
}
