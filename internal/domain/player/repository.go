package player

import "context"

// Repository reads squads with season statistics.
type Repository interface {
	FetchPlayersFull(ctx context.Context, teamID, season int) ([]Record, error)
}
