package news

import (
	"testing"

	"github.com/riskibarqy/matchvision/internal/platform/id"
)

func strPtr(v string) *string { return &v }

func TestIdentity_Precedence(t *testing.T) {
	t.Parallel()

	gen := id.Func(func() (string, error) { return "generated", nil })

	cases := []struct {
		name    string
		article Article
		want    string
	}{
		{name: "url wins", article: Article{URL: strPtr("https://a"), Title: strPtr("t")}, want: "https://a"},
		{name: "title when url empty", article: Article{URL: strPtr(""), Title: strPtr("t"), PublishedAt: strPtr("p")}, want: "t"},
		{name: "published at", article: Article{PublishedAt: strPtr("2024-03-01T10:00:00Z")}, want: "2024-03-01T10:00:00Z"},
		{name: "generated", article: Article{}, want: "generated"},
	}

	for _, tc := range cases {
		got, err := Identity(tc.article, gen)
		if err != nil {
			t.Fatalf("%s: identity: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestIdentity_FallbackIsNotStable(t *testing.T) {
	t.Parallel()

	gen := id.NewUUIDGenerator()
	first, _ := Identity(Article{}, gen)
	second, _ := Identity(Article{}, gen)
	if first == second {
		t.Fatalf("expected fresh fallback ids per decode")
	}
}

func TestSameArticle(t *testing.T) {
	t.Parallel()

	if !SameArticle(Article{URL: strPtr("https://a"), Title: strPtr("x")}, Article{URL: strPtr("https://a"), Title: strPtr("y")}) {
		t.Fatalf("expected url match")
	}
	if SameArticle(Article{URL: strPtr("https://a"), Title: strPtr("x")}, Article{URL: strPtr("https://b"), Title: strPtr("x")}) {
		t.Fatalf("expected url mismatch to win over title match")
	}
	if !SameArticle(Article{URL: strPtr("https://a"), Title: strPtr("x")}, Article{Title: strPtr("x")}) {
		t.Fatalf("expected title match when one url missing")
	}
	if !SameArticle(Article{PublishedAt: strPtr("")}, Article{PublishedAt: strPtr("")}) {
		t.Fatalf("expected published-at match when both present")
	}
	if SameArticle(Article{}, Article{}) {
		t.Fatalf("expected empty articles to differ")
	}
}

func TestPickFeatured(t *testing.T) {
	t.Parallel()

	items := []Article{
		{ID: "1", ImageURL: strPtr("")},
		{ID: "2"},
		{ID: "3", ImageURL: strPtr("https://img/3.jpg")},
	}
	got, ok := PickFeatured(items)
	if !ok || got.ID != "3" {
		t.Fatalf("expected article with image, got %+v", got)
	}

	got, ok = PickFeatured(items[:2])
	if !ok || got.ID != "1" {
		t.Fatalf("expected first article fallback, got %+v", got)
	}

	if _, ok := PickFeatured(nil); ok {
		t.Fatalf("expected no featured article for empty list")
	}
}

func TestExcludeFeatured(t *testing.T) {
	t.Parallel()

	featured := Article{ID: "https://a", URL: strPtr("https://a")}
	items := []Article{
		{ID: "https://b", URL: strPtr("https://b")},
		{ID: "https://a", URL: strPtr("https://a"), Title: strPtr("same url")},
		{ID: "c", Title: strPtr("c")},
	}

	got := ExcludeFeatured(items, &featured)
	if len(got) != 2 {
		t.Fatalf("expected 2 remaining articles, got=%d", len(got))
	}
	if got[0].ID != "https://b" || got[1].ID != "c" {
		t.Fatalf("unexpected remaining ids: %s, %s", got[0].ID, got[1].ID)
	}

	if all := ExcludeFeatured(items, nil); len(all) != 3 {
		t.Fatalf("expected all articles without featured, got=%d", len(all))
	}
}
