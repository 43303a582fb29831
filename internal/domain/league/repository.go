package league

import "context"

// Repository lists the competitions known to the sports-data provider.
type Repository interface {
	FetchLeagues(ctx context.Context) ([]League, error)
}
