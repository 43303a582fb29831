package news

// Source names the publisher of an article.
type Source struct {
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

// Article is a headline. ID is assigned once at decode time, see Identity.
type Article struct {
	ID          string  `json:"id"`
	Source      *Source `json:"source,omitempty"`
	Author      *string `json:"author,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	PublishedAt *string `json:"publishedAt,omitempty"`
	Content     *string `json:"content,omitempty"`
}

// Query selects headlines from the sports category.
type Query struct {
	Language string
	Country  *string
	PageSize int
}

const (
	DefaultLanguage = "en"
	DefaultPageSize = 20
)
