package viewmodel

import (
	"context"
	"slices"

	"github.com/riskibarqy/matchvision/internal/domain/league"
	"github.com/riskibarqy/matchvision/internal/domain/news"
	"github.com/riskibarqy/matchvision/internal/platform/dispatch"
	"github.com/riskibarqy/matchvision/internal/platform/logging"
)

const (
	leaguesSlot = "leagues"
	newsSlot    = "news"
)

// HomeState carries the two independent sections of the home screen.
type HomeState struct {
	LeaguesStatus Status          `json:"leaguesStatus"`
	Leagues       []league.League `json:"leagues"`
	NewsStatus    Status          `json:"newsStatus"`
	Featured      *news.Article   `json:"featured,omitempty"`
	Articles      []news.Article  `json:"articles"`
}

type Home struct {
	*screen[HomeState]
	leagues league.Repository
	news    news.Repository
}

func NewHome(ctx context.Context, queue *dispatch.Queue, leagues league.Repository, articles news.Repository, logger *logging.Logger) *Home {
	return &Home{
		screen:  newScreen[HomeState](ctx, "viewmodel.home", queue, logger),
		leagues: leagues,
		news:    articles,
	}
}

// Load starts both sections; neither waits for the other.
func (h *Home) Load() {
	h.LoadLeagues()
	h.LoadNews()
}

func (h *Home) LoadLeagues() {
	t := h.begin(leaguesSlot, func(s *HomeState) {
		s.LeaguesStatus.start()
		s.Leagues = nil
	})

	launch(h.screen, t, "fetch_leagues",
		h.leagues.FetchLeagues,
		func(s *HomeState, items []league.League, err error) {
			s.LeaguesStatus.finish(err)
			if err == nil {
				s.Leagues = league.FilterTop(items)
			}
		},
	)
}

func (h *Home) LoadNews() {
	t := h.begin(newsSlot, func(s *HomeState) {
		s.NewsStatus.start()
		s.Featured = nil
		s.Articles = nil
	})

	query := news.Query{Language: news.DefaultLanguage, PageSize: news.DefaultPageSize}
	launch(h.screen, t, "fetch_news",
		func(ctx context.Context) ([]news.Article, error) {
			return h.news.FetchFootballNews(ctx, query)
		},
		func(s *HomeState, items []news.Article, err error) {
			s.NewsStatus.finish(err)
			if err != nil {
				return
			}
			s.Articles = items
			if featured, ok := news.PickFeatured(items); ok {
				s.Featured = &featured
			}
		},
	)
}

func (h *Home) Snapshot() HomeState {
	var out HomeState
	h.read(func(s HomeState) {
		out = s
		out.Leagues = slices.Clone(s.Leagues)
		out.Articles = slices.Clone(s.Articles)
		if s.Featured != nil {
			featured := *s.Featured
			out.Featured = &featured
		}
	})
	return out
}

// ArticlesForList returns the loaded articles minus the featured one.
func (h *Home) ArticlesForList() []news.Article {
	s := h.Snapshot()
	return news.ExcludeFeatured(s.Articles, s.Featured)
}
