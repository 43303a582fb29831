package newsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/matchvision/internal/domain/news"
	"github.com/riskibarqy/matchvision/internal/platform/httpclient"
	idgen "github.com/riskibarqy/matchvision/internal/platform/id"
)

const headlinesBody = `{"status":"ok","totalResults":3,"articles":[
	{"source":{"id":"espn","name":"ESPN"},"author":"A","title":"Derby day","url":"https://espn/derby","urlToImage":null,"publishedAt":"2024-03-01T10:00:00Z"},
	{"source":{"id":null,"name":"BBC"},"title":null,"url":null,"publishedAt":"2024-03-01T11:00:00Z","urlToImage":"https://bbc/img.jpg"},
	{"source":null,"title":null,"url":null,"publishedAt":null}
]}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(ClientConfig{
		BaseURL:     srv.URL,
		APIKey:      "news-key",
		IDGenerator: idgen.Func(func() (string, error) { return "generated-1", nil }),
	})
}

func TestClient_FetchFootballNews_BuildsQuery(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/v2/top-headlines" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if q.Get("category") != "sports" || q.Get("language") != "es" || q.Get("pageSize") != "20" || q.Get("apiKey") != "news-key" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		if q.Has("country") {
			t.Errorf("country must be omitted when not provided")
		}
		_, _ = w.Write([]byte(headlinesBody))
	})

	got, err := client.FetchFootballNews(context.Background(), news.Query{Language: "es"})
	if err != nil {
		t.Fatalf("fetch news: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 articles, got=%d", len(got))
	}
	if got[0].ID != "https://espn/derby" {
		t.Fatalf("expected url identity, got %q", got[0].ID)
	}
	if got[1].ID != "2024-03-01T11:00:00Z" || got[1].ImageURL == nil {
		t.Fatalf("expected published-at identity and image, got %+v", got[1])
	}
	if got[2].ID != "generated-1" {
		t.Fatalf("expected generated identity, got %q", got[2].ID)
	}
	if got[0].Source == nil || *got[0].Source.Name != "ESPN" {
		t.Fatalf("expected source name, got %+v", got[0].Source)
	}
}

func TestClient_FetchFootballNews_Country(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("country") != "gb" {
			t.Errorf("expected country=gb, got %q", r.URL.Query().Get("country"))
		}
		_, _ = w.Write([]byte(`{"status":"ok","totalResults":0,"articles":[]}`))
	})

	country := "gb"
	got, err := client.FetchFootballNews(context.Background(), news.Query{Language: "en", Country: &country, PageSize: 5})
	if err != nil {
		t.Fatalf("fetch news: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no articles, got=%d", len(got))
	}
}

func TestClient_FetchFootballNews_ErrorModes(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("language") {
		case "status":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid"}`))
		case "decode":
			_, _ = w.Write([]byte(`{"articles":"nope"}`))
		}
	})

	_, err := client.FetchFootballNews(context.Background(), news.Query{Language: "status"})
	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected HTTP 401 status error, got %v", err)
	}

	_, err = client.FetchFootballNews(context.Background(), news.Query{Language: "decode"})
	if !errors.Is(err, httpclient.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if errors.Is(err, httpclient.ErrStatus) {
		t.Fatalf("decode error must not match status error")
	}
}
