// Package httpclient executes GET requests against JSON REST APIs that
// authenticate with a static API key.
package httpclient

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/matchvision/internal/platform/logging"
	"github.com/riskibarqy/matchvision/internal/platform/resilience"
)

const (
	defaultTimeout      = 20 * time.Second
	defaultMaxBodyBytes = 6 << 20
	redacted            = "REDACTED"
)

type KeyPlacement int

const (
	KeyInHeader KeyPlacement = iota
	KeyInQuery
)

// APIKey is attached to every request, either as a header or a query parameter.
type APIKey struct {
	Name  string
	Value string
	In    KeyPlacement
}

type Config struct {
	Name           string
	BaseURL        string
	Key            APIKey
	Timeout        time.Duration
	HTTPClient     *http.Client
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	// RateLimit is requests per second; zero disables limiting.
	RateLimit    float64
	RateBurst    int
	MaxBodyBytes int64
}

type Client struct {
	name         string
	httpClient   *http.Client
	baseURL      string
	key          APIKey
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
	limiter      *rate.Limiter
	maxBodyBytes int64
	timeout      time.Duration
	flight       resilience.Flight[[]byte]
}

func New(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = "http"
	}
	logger = logger.With("upstream", name)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = timeout
	}

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	c := &Client{
		name:         name,
		httpClient:   httpClient,
		baseURL:      strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		key:          cfg.Key,
		logger:       logger,
		maxBodyBytes: maxBody,
		timeout:      timeout,
	}

	if c.breaker = cfg.CircuitBreaker.Build(name); c.breaker != nil {
		c.breaker.OnStateChange(func(upstream string, from, to resilience.CircuitState) {
			logger.Warn("circuit breaker state changed", "from", from, "to", to)
		})
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return c
}

// Get performs a GET on path with query and returns the raw response body.
// Identical concurrent requests share a single round trip. The shared round
// trip is detached from any one caller: a caller whose ctx ends stops waiting
// and gets ctx.Err(), while the others still receive the response.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	fullURL, err := c.buildURL(path, query)
	if err != nil {
		return nil, err
	}

	shared := context.WithoutCancel(ctx)
	results := c.flight.DoChan(fullURL, func() ([]byte, error) {
		return c.roundTrip(shared, fullURL)
	})

	select {
	case <-ctx.Done():
		return nil, crerr.Wrapf(ctx.Err(), "%s: request abandoned", c.name)
	case res := <-results:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	}
}

// roundTrip runs one breaker-guarded request bounded by the client timeout.
func (c *Client) roundTrip(ctx context.Context, fullURL string) ([]byte, error) {
	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "circuit breaker rejected request", "state", c.breaker.State())
			return nil, crerr.Wrapf(err, "%s", c.name)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := c.execute(ctx, fullURL)
	if c.breaker != nil {
		c.breaker.Record(isBreakerFailure(err))
	}
	return body, err
}

// GetJSON is Get followed by DecodeJSON.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, target any) error {
	raw, err := c.Get(ctx, path, query)
	if err != nil {
		return err
	}
	return DecodeJSON(raw, target)
}

func DecodeJSON(raw []byte, target any) error {
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

func (c *Client) buildURL(path string, query url.Values) (string, error) {
	parsed, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, c.sanitize(err.Error()))
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("%w: %q has no scheme or host", ErrInvalidURL, c.baseURL+path)
	}

	values := url.Values{}
	for key, items := range query {
		for _, item := range items {
			values.Add(key, item)
		}
	}
	if c.key.In == KeyInQuery && c.key.Name != "" {
		values.Set(c.key.Name, c.key.Value)
	}
	parsed.RawQuery = values.Encode()
	return parsed.String(), nil
}

func (c *Client) execute(ctx context.Context, fullURL string) ([]byte, error) {
	started := time.Now()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limit wait: %v", ErrTransport, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrInvalidURL, c.sanitize(err.Error()))
	}
	req.Header.Set("Accept", "application/json")
	if c.key.In == KeyInHeader && c.key.Name != "" {
		req.Header.Set(c.key.Name, c.key.Value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: send request: %s", ErrTransport, c.sanitize(err.Error()))
		c.logger.WarnContext(ctx, "upstream request failed", "url", c.redactURL(fullURL), "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, c.maxBodyBytes+1)); err != nil {
		err = fmt.Errorf("%w: read response body: %v", ErrTransport, err)
		c.logger.WarnContext(ctx, "upstream request failed", "url", c.redactURL(fullURL), "error", err)
		return nil, err
	}
	if int64(buf.Len()) > c.maxBodyBytes {
		err := fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, c.maxBodyBytes)
		c.logger.WarnContext(ctx, "upstream response too large", "url", c.redactURL(fullURL), "error", err)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := &StatusError{Code: resp.StatusCode, Body: abbreviateBody(c.sanitize(buf.String()))}
		c.logger.WarnContext(ctx, "upstream returned error status",
			"url", c.redactURL(fullURL),
			"status", resp.StatusCode,
			"error", err,
		)
		return nil, err
	}

	if len(bytes.TrimSpace(buf.B)) == 0 {
		return nil, ErrEmptyBody
	}

	c.logger.DebugContext(ctx, "upstream request completed",
		"url", c.redactURL(fullURL),
		"status", resp.StatusCode,
		"bytes", buf.Len(),
		"duration", time.Since(started),
	)

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || c.key.Value == "" {
		return value
	}
	return strings.ReplaceAll(value, c.key.Value, redacted)
}

func (c *Client) redactURL(rawURL string) string {
	if c.key.In != KeyInQuery || c.key.Name == "" {
		return rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return c.sanitize(rawURL)
	}
	query := parsed.Query()
	if query.Has(c.key.Name) {
		query.Set(c.key.Name, redacted)
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func isBreakerFailure(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, ErrTransport) {
		return true
	}
	var statusErr *StatusError
	if stderrors.As(err, &statusErr) {
		return statusErr.Retryable()
	}
	return false
}

func abbreviateBody(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
