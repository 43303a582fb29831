package viewmodel

import (
	"context"
	"slices"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/matchvision/internal/domain/news"
	"github.com/riskibarqy/matchvision/internal/platform/dispatch"
	"github.com/riskibarqy/matchvision/internal/platform/logging"
)

var ErrNoNews = crerr.New("No hay noticias disponibles.")

type NewsState struct {
	Status
	Language string         `json:"language"`
	Country  *string        `json:"country,omitempty"`
	Articles []news.Article `json:"articles"`
}

type News struct {
	*screen[NewsState]
	repo news.Repository
}

func NewNews(ctx context.Context, queue *dispatch.Queue, repo news.Repository, logger *logging.Logger) *News {
	return &News{
		screen: newScreen[NewsState](ctx, "viewmodel.news", queue, logger),
		repo:   repo,
	}
}

// Load fetches one page of headlines. An empty page is reported as ErrNoNews.
func (v *News) Load(language string, country *string) {
	language = strings.TrimSpace(language)
	if language == "" {
		language = news.DefaultLanguage
	}
	query := news.Query{Language: language, Country: country, PageSize: news.DefaultPageSize}

	t := v.begin(mainSlot, func(s *NewsState) {
		s.start()
		s.Language = language
		s.Country = country
		s.Articles = nil
	})

	launch(v.screen, t, "fetch_news",
		func(ctx context.Context) ([]news.Article, error) {
			items, err := v.repo.FetchFootballNews(ctx, query)
			if err == nil && len(items) == 0 {
				return nil, ErrNoNews
			}
			return items, err
		},
		func(s *NewsState, items []news.Article, err error) {
			s.finish(err)
			if err == nil {
				s.Articles = items
			}
		},
	)
}

func (v *News) Snapshot() NewsState {
	var out NewsState
	v.read(func(s NewsState) {
		out = s
		out.Articles = slices.Clone(s.Articles)
	})
	return out
}
