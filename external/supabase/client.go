// Package supabase signs users in and out against a Supabase GoTrue endpoint
// and keeps the resulting session in memory.
package supabase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/matchvision/internal/domain/user"
	"github.com/riskibarqy/matchvision/internal/platform/logging"
	"github.com/riskibarqy/matchvision/internal/platform/resilience"
	"github.com/riskibarqy/matchvision/internal/usecase"
)

const (
	signUpPath   = "/auth/v1/signup"
	signInPath   = "/auth/v1/token?grant_type=password"
	signOutPath  = "/auth/v1/logout"
	apiKeyHeader = "apikey"

	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

var errTransient = errors.New("supabase transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	AnonKey        string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
	Logger         *logging.Logger
}

// Client implements user.Identity. It holds at most one session.
type Client struct {
	httpClient *http.Client
	baseURL    string
	anonKey    string
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker

	mu          sync.Mutex
	current     *session
	subscribers map[int]func(user.AuthState)
	nextSubID   int
}

type session struct {
	accessToken string
	user        user.User
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
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

	c := &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/"),
		anonKey:     strings.TrimSpace(cfg.AnonKey),
		logger:      logger.With("upstream", "supabase"),
		subscribers: make(map[int]func(user.AuthState)),
	}
	c.breaker = cfg.CircuitBreaker.Build("supabase")
	return c
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// GoTrue answers sign-in with a session; sign-up returns either a session or
// a bare user when email confirmation is pending.
type authResponse struct {
	AccessToken string       `json:"access_token"`
	User        *userPayload `json:"user"`
	ID          string       `json:"id"`
	Email       string       `json:"email"`
}

func (c *Client) SignIn(ctx context.Context, email, password string) (user.User, error) {
	resp, err := c.authenticate(ctx, signInPath, email, password)
	if err != nil {
		return user.User{}, fmt.Errorf("sign in: %w", err)
	}
	if resp.AccessToken == "" || resp.User == nil {
		return user.User{}, fmt.Errorf("sign in: %w: session missing from response", usecase.ErrUnauthorized)
	}

	u := mapUser(*resp.User)
	c.setSession(&session{accessToken: resp.AccessToken, user: u})
	return u, nil
}

func (c *Client) SignUp(ctx context.Context, email, password string) (user.User, error) {
	resp, err := c.authenticate(ctx, signUpPath, email, password)
	if err != nil {
		return user.User{}, fmt.Errorf("sign up: %w", err)
	}

	payload := resp.User
	if payload == nil && resp.ID != "" {
		payload = &userPayload{ID: resp.ID, Email: resp.Email}
	}
	if payload == nil || payload.ID == "" {
		return user.User{}, fmt.Errorf("sign up: invalid response: user id is empty")
	}

	u := mapUser(*payload)
	if resp.AccessToken != "" {
		c.setSession(&session{accessToken: resp.AccessToken, user: u})
	}
	return u, nil
}

// SignOut revokes the session remotely when one exists. The local session is
// always cleared, even if the revoke call fails.
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	current := c.current
	c.mu.Unlock()
	if current == nil {
		return nil
	}

	_, err := c.post(ctx, signOutPath, nil, current.accessToken)
	c.setSession(nil)
	if err != nil {
		c.logger.WarnContext(ctx, "supabase logout failed", "error", err)
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

func (c *Client) CurrentUser() (user.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return user.User{}, false
	}
	return c.current.user, true
}

func (c *Client) Subscribe(fn func(user.AuthState)) (cancel func()) {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	state := stateOf(c.current)
	c.mu.Unlock()

	fn(state)

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subscribers, id)
			c.mu.Unlock()
		})
	}
}

func (c *Client) setSession(next *session) {
	c.mu.Lock()
	c.current = next
	state := stateOf(next)
	listeners := make([]func(user.AuthState), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}

func stateOf(s *session) user.AuthState {
	if s == nil {
		return user.AuthState{}
	}
	u := s.user
	return user.AuthState{User: &u, SignedIn: true}
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) (authResponse, error) {
	body, err := sonic.Marshal(credentialsRequest{Email: strings.TrimSpace(email), Password: password})
	if err != nil {
		return authResponse{}, fmt.Errorf("marshal credentials: %w", err)
	}

	raw, err := c.post(ctx, path, body, "")
	if err != nil {
		return authResponse{}, err
	}

	var decoded authResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return authResponse{}, fmt.Errorf("unmarshal auth response: %w", err)
	}
	return decoded, nil
}

func (c *Client) post(ctx context.Context, path string, body []byte, bearer string) ([]byte, error) {
	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			return nil, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
		}
	}

	raw, err := c.do(ctx, path, body, bearer)
	if c.breaker != nil {
		c.breaker.Record(errors.Is(err, errTransient) && ctx.Err() == nil)
	}
	return raw, err
}

func (c *Client) do(ctx context.Context, path string, body []byte, bearer string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create supabase request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.anonKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request supabase: %w", errTransient, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read supabase response: %w", errTransient, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return raw, nil
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		c.logger.WarnContext(ctx, "supabase upstream failure", "status_code", resp.StatusCode)
		return nil, fmt.Errorf("%w: supabase status %d", errTransient, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: %s", rejectionKind(raw, resp.StatusCode), rejectionMessage(raw, resp.StatusCode))
	}
}

// rejectionKind separates bad credentials from a request GoTrue refused to
// process, such as an already registered email or a weak password.
func rejectionKind(raw []byte, status int) error {
	if gjson.GetBytes(raw, "error").String() == "invalid_grant" ||
		gjson.GetBytes(raw, "error_code").String() == "invalid_credentials" {
		return usecase.ErrUnauthorized
	}
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return usecase.ErrInvalidInput
	default:
		return usecase.ErrUnauthorized
	}
}

// rejectionMessage reads the GoTrue error text, which moved between fields
// across server versions.
func rejectionMessage(raw []byte, status int) string {
	for _, path := range []string{"error_description", "msg", "message", "error"} {
		if v := gjson.GetBytes(raw, path); v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return fmt.Sprintf("supabase status %d", status)
}

func mapUser(p userPayload) user.User {
	u := user.User{ID: p.ID, Email: p.Email}
	for _, key := range []string{"name", "full_name", "display_name"} {
		if name, ok := p.UserMetadata[key].(string); ok && name != "" {
			u.DisplayName = name
			break
		}
	}
	return u
}
