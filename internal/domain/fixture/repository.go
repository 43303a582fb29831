package fixture

import (
	"context"
	"time"
)

// Repository exposes the fixture and team reads of the sports-data provider.
type Repository interface {
	FetchMatches(ctx context.Context, date time.Time) ([]Match, error)
	FetchUpcomingMatches(ctx context.Context, teamID int) ([]Match, error)
	FetchTeam(ctx context.Context, teamID int) (TeamInfo, error)
}
