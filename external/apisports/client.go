// Package apisports is a client for the api-sports v3 football API.
package apisports

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"

	"github.com/riskibarqy/matchvision/internal/domain/fixture"
	"github.com/riskibarqy/matchvision/internal/domain/league"
	"github.com/riskibarqy/matchvision/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchvision/internal/domain/player"
	"github.com/riskibarqy/matchvision/internal/platform/httpclient"
	"github.com/riskibarqy/matchvision/internal/platform/logging"
	"github.com/riskibarqy/matchvision/internal/platform/resilience"
	"github.com/riskibarqy/matchvision/internal/usecase"
)

const (
	defaultBaseURL = "https://v3.football.api-sports.io"
	apiKeyHeader   = "x-apisports-key"

	// PlayersPageSize is the provider's fixed page size for /players.
	PlayersPageSize = 25
	// DefaultStandingsSeason is the season used by GetLeagueStatsDefaultSeason.
	DefaultStandingsSeason = 2023

	maxPlayerPages = 100
	dateLayout     = "2006-01-02"
)

// ErrProviderRejected is returned when the payload's "errors" field is not
// empty, e.g. for a bad key or an exhausted daily quota.
var ErrProviderRejected = crerr.New("sports provider rejected request")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	RateLimit      float64
	RateBurst      int
	Now            func() time.Time
}

type Client struct {
	http   *httpclient.Client
	logger *logging.Logger
	now    func() time.Time
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
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Client{
		http: httpclient.New(httpclient.Config{
			Name:           "apisports",
			BaseURL:        baseURL,
			Key:            httpclient.APIKey{Name: apiKeyHeader, Value: strings.TrimSpace(cfg.APIKey), In: httpclient.KeyInHeader},
			Timeout:        cfg.Timeout,
			HTTPClient:     cfg.HTTPClient,
			Logger:         logger,
			CircuitBreaker: cfg.CircuitBreaker,
			RateLimit:      cfg.RateLimit,
			RateBurst:      cfg.RateBurst,
		}),
		logger: logger,
		now:    now,
	}
}

// FetchLeagues returns every league the provider knows, unfiltered.
func (c *Client) FetchLeagues(ctx context.Context) ([]league.League, error) {
	items, err := getResponse[leagueItem](ctx, c, "/leagues", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch leagues: %w", err)
	}

	out := make([]league.League, 0, len(items))
	for _, item := range items {
		out = append(out, mapLeague(item.League))
	}
	return out, nil
}

// FetchMatches returns the fixtures of one calendar day that belong to an
// allow-listed league, in server order.
func (c *Client) FetchMatches(ctx context.Context, date time.Time) ([]fixture.Match, error) {
	query := url.Values{"date": {date.Format(dateLayout)}}
	items, err := getResponse[fixtureItem](ctx, c, "/fixtures", query)
	if err != nil {
		return nil, fmt.Errorf("fetch matches for %s: %w", date.Format(dateLayout), err)
	}
	return fixture.FilterAllowed(mapMatches(items)), nil
}

// GetLeagueStats returns the first league's standings, flattened across
// groups and sorted by rank.
func (c *Client) GetLeagueStats(ctx context.Context, leagueID, season int) ([]leaguestanding.TeamStanding, error) {
	query := url.Values{
		"league": {strconv.Itoa(leagueID)},
		"season": {strconv.Itoa(season)},
	}
	items, err := getResponse[standingsItem](ctx, c, "/standings", query)
	if err != nil {
		return nil, fmt.Errorf("fetch standings league=%d season=%d: %w", leagueID, season, err)
	}
	if len(items) == 0 || len(items[0].League.Standings) == 0 {
		return nil, fmt.Errorf("league=%d season=%d: %w", leagueID, season, usecase.ErrEmptyStandings)
	}

	return leaguestanding.Flatten(mapStandingGroups(items[0].League.Standings)), nil
}

func (c *Client) GetLeagueStatsDefaultSeason(ctx context.Context, leagueID int) ([]leaguestanding.TeamStanding, error) {
	return c.GetLeagueStats(ctx, leagueID, DefaultStandingsSeason)
}

// FetchPlayersFull walks /players page by page. A page shorter than
// PlayersPageSize ends the walk; page n+1 is only requested after page n decoded.
func (c *Client) FetchPlayersFull(ctx context.Context, teamID, season int) ([]player.Record, error) {
	out := make([]player.Record, 0, PlayersPageSize)
	for page := 1; page <= maxPlayerPages; page++ {
		query := url.Values{
			"team":   {strconv.Itoa(teamID)},
			"season": {strconv.Itoa(season)},
			"page":   {strconv.Itoa(page)},
		}
		items, err := getResponse[playerItem](ctx, c, "/players", query)
		if err != nil {
			return nil, fmt.Errorf("fetch players team=%d season=%d page=%d: %w", teamID, season, page, err)
		}
		for _, item := range items {
			out = append(out, mapPlayerRecord(item))
		}
		if len(items) != PlayersPageSize {
			return out, nil
		}
	}

	c.logger.WarnContext(ctx, "player pagination stopped at page cap",
		"team_id", teamID,
		"season", season,
		"max_pages", maxPlayerPages,
	)
	return out, nil
}

// FetchPlayers reads a single /players page and maps it to display-ready
// players. season defaults to the current year.
func (c *Client) FetchPlayers(ctx context.Context, teamID int, season *int) ([]player.Info, error) {
	year := c.now().Year()
	if season != nil {
		year = *season
	}
	query := url.Values{
		"team":   {strconv.Itoa(teamID)},
		"season": {strconv.Itoa(year)},
	}
	items, err := getResponse[playerItem](ctx, c, "/players", query)
	if err != nil {
		return nil, fmt.Errorf("fetch players team=%d season=%d: %w", teamID, year, err)
	}

	out := make([]player.Info, 0, len(items))
	for _, item := range items {
		info, ok := player.FromRecord(mapPlayerRecord(item))
		if !ok {
			continue
		}
		out = append(out, info)
	}
	return out, nil
}

func (c *Client) FetchTeam(ctx context.Context, teamID int) (fixture.TeamInfo, error) {
	items, err := getResponse[teamItem](ctx, c, "/teams", url.Values{"id": {strconv.Itoa(teamID)}})
	if err != nil {
		return fixture.TeamInfo{}, fmt.Errorf("fetch team %d: %w", teamID, err)
	}
	if len(items) == 0 {
		return fixture.TeamInfo{}, fmt.Errorf("team %d: %w", teamID, usecase.ErrTeamNotFound)
	}
	return mapTeam(items[0].Team), nil
}

// FetchUpcomingMatches returns a team's not-started fixtures by kickoff.
func (c *Client) FetchUpcomingMatches(ctx context.Context, teamID int) ([]fixture.Match, error) {
	query := url.Values{
		"team":   {strconv.Itoa(teamID)},
		"status": {fixture.StatusNotStarted},
	}
	items, err := getResponse[fixtureItem](ctx, c, "/fixtures", query)
	if err != nil {
		return nil, fmt.Errorf("fetch upcoming matches team=%d: %w", teamID, err)
	}

	out := mapMatches(items)
	fixture.SortByKickoff(out)
	return out, nil
}

func getResponse[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	raw, err := c.http.Get(ctx, path, query)
	if err != nil {
		if errors.Is(err, resilience.ErrCircuitOpen) {
			return nil, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
		}
		return nil, err
	}
	if err := providerError(raw); err != nil {
		return nil, err
	}

	var env envelope[T]
	if err := httpclient.DecodeJSON(raw, &env); err != nil {
		return nil, err
	}
	return env.Response, nil
}

// providerError reads the "errors" field, which is an empty array on success
// and an array or object of messages otherwise.
func providerError(raw []byte) error {
	result := gjson.GetBytes(raw, "errors")
	if !result.Exists() {
		return nil
	}

	var parts []string
	switch {
	case result.IsArray():
		for _, item := range result.Array() {
			if text := strings.TrimSpace(item.String()); text != "" {
				parts = append(parts, text)
			}
		}
	case result.IsObject():
		result.ForEach(func(key, value gjson.Result) bool {
			parts = append(parts, key.String()+": "+strings.TrimSpace(value.String()))
			return true
		})
	}
	if len(parts) == 0 {
		return nil
	}

	sort.Strings(parts)
	return fmt.Errorf("%w: %s", ErrProviderRejected, strings.Join(parts, "; "))
}
