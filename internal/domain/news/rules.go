package news

import "github.com/riskibarqy/matchvision/internal/platform/id"

func nonEmpty(v *string) bool {
	return v != nil && *v != ""
}

// Identity returns the url, else the title, else the publish timestamp. The
// generator is only consulted when all three are missing, so such articles
// get a fresh id on every fetch.
func Identity(a Article, gen id.Generator) (string, error) {
	switch {
	case nonEmpty(a.URL):
		return *a.URL, nil
	case nonEmpty(a.Title):
		return *a.Title, nil
	case nonEmpty(a.PublishedAt):
		return *a.PublishedAt, nil
	}
	return gen.NewID()
}

// SameArticle compares by url when both have one, else by title when both
// have one, else by publish timestamp when both have one.
func SameArticle(a, b Article) bool {
	if nonEmpty(a.URL) && nonEmpty(b.URL) {
		return *a.URL == *b.URL
	}
	if nonEmpty(a.Title) && nonEmpty(b.Title) {
		return *a.Title == *b.Title
	}
	if a.PublishedAt != nil && b.PublishedAt != nil {
		return *a.PublishedAt == *b.PublishedAt
	}
	return false
}

// PickFeatured returns the first article with an image, else the first one.
func PickFeatured(items []Article) (Article, bool) {
	for _, item := range items {
		if nonEmpty(item.ImageURL) {
			return item, true
		}
	}
	if len(items) == 0 {
		return Article{}, false
	}
	return items[0], true
}

// ExcludeFeatured drops every article that SameArticle matches to featured.
func ExcludeFeatured(items []Article, featured *Article) []Article {
	if featured == nil {
		return append([]Article(nil), items...)
	}

	out := make([]Article, 0, len(items))
	for _, item := range items {
		if SameArticle(item, *featured) {
			continue
		}
		out = append(out, item)
	}
	return out
}
