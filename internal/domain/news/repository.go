package news

import "context"

type Repository interface {
	FetchFootballNews(ctx context.Context, query Query) ([]Article, error)
}
