package viewmodel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/matchvision/internal/domain/news"
	newsmock "github.com/riskibarqy/matchvision/internal/mocks/domain/news"
)

func TestNews_LoadPassesCountry(t *testing.T) {
	t.Parallel()

	country := "es"
	repo := newsmock.NewRepository(t)
	repo.On("FetchFootballNews", mock.Anything, mock.MatchedBy(func(q news.Query) bool {
		return q.Language == "es" && q.Country != nil && *q.Country == "es" && q.PageSize == news.DefaultPageSize
	})).Return([]news.Article{{ID: "a"}, {ID: "b"}}, nil).Once()

	vm := NewNews(context.Background(), newTestQueue(t), repo, nil)
	vm.Load("es", &country)
	vm.Wait()

	got := vm.Snapshot()
	if got.Err != "" || len(got.Articles) != 2 || got.Language != "es" {
		t.Fatalf("unexpected state %+v", got)
	}
}

func TestNews_EmptyResultIsAnError(t *testing.T) {
	t.Parallel()

	repo := newsmock.NewRepository(t)
	repo.On("FetchFootballNews", mock.Anything, news.Query{Language: "en", PageSize: 20}).Return([]news.Article{}, nil).Once()

	vm := NewNews(context.Background(), newTestQueue(t), repo, nil)
	vm.Load("", nil)
	vm.Wait()

	if got := vm.Snapshot(); got.Err != "No hay noticias disponibles." {
		t.Fatalf("expected empty news message, got %q", got.Err)
	}
}
