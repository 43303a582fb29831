package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/matchvision/internal/domain/user"
	"github.com/riskibarqy/matchvision/internal/platform/resilience"
	"github.com/riskibarqy/matchvision/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(ClientConfig{
		HTTPClient:     srv.Client(),
		BaseURL:        srv.URL,
		AnonKey:        "anon-key",
		CircuitBreaker: breaker,
	})
}

func TestClient_SignInAndSignOut(t *testing.T) {
	t.Parallel()

	var logoutCalls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "anon-key" {
			t.Errorf("missing apikey header")
		}
		switch r.URL.Path {
		case "/auth/v1/token":
			if r.URL.Query().Get("grant_type") != "password" {
				t.Errorf("unexpected grant_type %q", r.URL.Query().Get("grant_type"))
			}
			var req map[string]string
			if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode request: %v", err)
			}
			if req["email"] != "ana@club.com" || req["password"] != "secret1" {
				t.Errorf("unexpected credentials %v", req)
			}
			_, _ = w.Write([]byte(`{"access_token":"tok-1","user":{"id":"u-1","email":"ana@club.com","user_metadata":{"name":"Ana"}}}`))
		case "/auth/v1/logout":
			logoutCalls.Add(1)
			if r.Header.Get("Authorization") != "Bearer tok-1" {
				t.Errorf("unexpected authorization %q", r.Header.Get("Authorization"))
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}, resilience.CircuitBreakerConfig{})

	var states []user.AuthState
	cancel := client.Subscribe(func(s user.AuthState) { states = append(states, s) })
	defer cancel()

	got, err := client.SignIn(context.Background(), "ana@club.com", "secret1")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if got.ID != "u-1" || got.DisplayName != "Ana" {
		t.Fatalf("unexpected user %+v", got)
	}
	if current, ok := client.CurrentUser(); !ok || current.ID != "u-1" {
		t.Fatalf("expected current user after sign in")
	}

	if err := client.SignOut(context.Background()); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if _, ok := client.CurrentUser(); ok {
		t.Fatalf("expected no current user after sign out")
	}
	if logoutCalls.Load() != 1 {
		t.Fatalf("expected one logout call, got %d", logoutCalls.Load())
	}

	if len(states) != 3 || states[0].SignedIn || !states[1].SignedIn || states[2].SignedIn {
		t.Fatalf("unexpected auth state sequence %+v", states)
	}
}

func TestClient_SignIn_InvalidCredentials(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
	}, resilience.CircuitBreakerConfig{})

	_, err := client.SignIn(context.Background(), "ana@club.com", "wrong1")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if got := err.Error(); got != "sign in: unauthorized: Invalid login credentials" {
		t.Fatalf("unexpected message %q", got)
	}
	if _, ok := client.CurrentUser(); ok {
		t.Fatalf("expected no session after rejection")
	}
}

func TestClient_SignUp_RejectedRegistration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "already registered", status: http.StatusUnprocessableEntity, body: `{"code":422,"error_code":"user_already_exists","msg":"User already registered"}`, want: usecase.ErrInvalidInput},
		{name: "weak password", status: http.StatusBadRequest, body: `{"code":400,"error_code":"weak_password","msg":"Password should be at least 6 characters."}`, want: usecase.ErrInvalidInput},
		{name: "bad credentials", status: http.StatusBadRequest, body: `{"code":400,"error_code":"invalid_credentials","msg":"Invalid login credentials"}`, want: usecase.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, body: `{"msg":"Signups not allowed for this instance"}`, want: usecase.ErrUnauthorized},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}, resilience.CircuitBreakerConfig{})

			_, err := client.SignUp(context.Background(), "leo@club.com", "secret1")
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestClient_SignUp_PendingConfirmation(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/signup" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":"u-2","email":"leo@club.com"}`))
	}, resilience.CircuitBreakerConfig{})

	got, err := client.SignUp(context.Background(), "leo@club.com", "secret1")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if got.ID != "u-2" || got.Email != "leo@club.com" {
		t.Fatalf("unexpected user %+v", got)
	}
	if _, ok := client.CurrentUser(); ok {
		t.Fatalf("expected no session while confirmation is pending")
	}
	if err := client.SignOut(context.Background()); err != nil {
		t.Fatalf("sign out without session: %v", err)
	}
}

func TestClient_CircuitOpensOnUpstreamFailures(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})

	for i := 0; i < 2; i++ {
		if _, err := client.SignIn(context.Background(), "ana@club.com", "secret1"); err == nil {
			t.Fatalf("expected upstream failure")
		}
	}

	_, err := client.SignIn(context.Background(), "ana@club.com", "secret1")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) || !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if hits.Load() != 2 {
		t.Fatalf("expected 2 upstream hits, got %d", hits.Load())
	}
}

func TestClient_SubscribeCancel(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{BaseURL: "http://127.0.0.1:0"})
	var calls int
	cancel := client.Subscribe(func(user.AuthState) { calls++ })
	cancel()
	cancel()

	client.setSession(&session{accessToken: "t", user: user.User{ID: "u"}})
	if calls != 1 {
		t.Fatalf("expected only the initial delivery, got %d", calls)
	}
}
