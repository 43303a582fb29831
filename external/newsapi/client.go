// Package newsapi reads sports headlines from newsapi.org.
package newsapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/matchvision/internal/domain/news"
	"github.com/riskibarqy/matchvision/internal/platform/httpclient"
	idgen "github.com/riskibarqy/matchvision/internal/platform/id"
	"github.com/riskibarqy/matchvision/internal/platform/logging"
	"github.com/riskibarqy/matchvision/internal/platform/resilience"
	"github.com/riskibarqy/matchvision/internal/usecase"
)

const (
	defaultBaseURL  = "https://newsapi.org"
	defaultTimeout  = 20 * time.Second
	headlinesPath   = "/v2/top-headlines"
	sportsCategory  = "sports"
	apiKeyParameter = "apiKey"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	IDGenerator    idgen.Generator
}

type Client struct {
	http  *httpclient.Client
	ids   idgen.Generator
	debug *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ids := cfg.IDGenerator
	if ids == nil {
		ids = idgen.NewUUIDGenerator()
	}

	return &Client{
		http: httpclient.New(httpclient.Config{
			Name:           "newsapi",
			BaseURL:        baseURL,
			Key:            httpclient.APIKey{Name: apiKeyParameter, Value: strings.TrimSpace(cfg.APIKey), In: httpclient.KeyInQuery},
			Timeout:        timeout,
			HTTPClient:     cfg.HTTPClient,
			Logger:         logger,
			CircuitBreaker: cfg.CircuitBreaker,
		}),
		ids:   ids,
		debug: logger,
	}
}

type headlinesResponse struct {
	Status       string        `json:"status"`
	TotalResults int           `json:"totalResults"`
	Articles     []articleWire `json:"articles"`
}

type articleWire struct {
	Source *struct {
		ID   *string `json:"id"`
		Name *string `json:"name"`
	} `json:"source"`
	Author      *string `json:"author"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	URLToImage  *string `json:"urlToImage"`
	PublishedAt *string `json:"publishedAt"`
	Content     *string `json:"content"`
}

// FetchFootballNews returns top sports headlines in server order. An empty
// language falls back to news.DefaultLanguage and a non-positive page size to
// news.DefaultPageSize; country is only sent when set.
func (c *Client) FetchFootballNews(ctx context.Context, query news.Query) ([]news.Article, error) {
	values := buildQuery(query)

	var decoded headlinesResponse
	if err := c.http.GetJSON(ctx, headlinesPath, values, &decoded); err != nil {
		if errors.Is(err, resilience.ErrCircuitOpen) {
			return nil, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
		}
		return nil, fmt.Errorf("fetch headlines: %w", err)
	}

	out := make([]news.Article, 0, len(decoded.Articles))
	for _, wire := range decoded.Articles {
		article := mapArticle(wire)
		identity, err := news.Identity(article, c.ids)
		if err != nil {
			return nil, fmt.Errorf("assign article identity: %w", err)
		}
		article.ID = identity
		out = append(out, article)
	}

	c.debug.DebugContext(ctx, "headlines fetched", "count", len(out), "total_results", decoded.TotalResults)
	return out, nil
}

func buildQuery(query news.Query) url.Values {
	language := strings.TrimSpace(query.Language)
	if language == "" {
		language = news.DefaultLanguage
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = news.DefaultPageSize
	}

	values := url.Values{
		"category": {sportsCategory},
		"language": {language},
		"pageSize": {strconv.Itoa(pageSize)},
	}
	if query.Country != nil && strings.TrimSpace(*query.Country) != "" {
		values.Set("country", strings.TrimSpace(*query.Country))
	}
	return values
}

func mapArticle(wire articleWire) news.Article {
	article := news.Article{
		Author:      wire.Author,
		Title:       wire.Title,
		Description: wire.Description,
		URL:         wire.URL,
		ImageURL:    wire.URLToImage,
		PublishedAt: wire.PublishedAt,
		Content:     wire.Content,
	}
	if wire.Source != nil {
		article.Source = &news.Source{ID: wire.Source.ID, Name: wire.Source.Name}
	}
	return article
}
