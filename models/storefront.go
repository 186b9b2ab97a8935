package models

// Suggestion is the autocomplete projection of a product
type Suggestion struct {
	ID           string  `json:"id" db:"id"`
	Title        string  `json:"title" db:"title"`
	Slug         string  `json:"slug" db:"slug"`
	Price        float64 `json:"price" db:"price"`
	ThumbnailURL string  `json:"thumbnail_url" db:"thumbnail_url"`
}

type CacheStatus string

const (
	CacheHit   CacheStatus = "HIT"
	CacheMiss  CacheStatus = "MISS"
	CacheError CacheStatus = "ERROR"
)

// SuggestResponse is the body of GET /api/search/suggest
type SuggestResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
	Cache       CacheStatus  `json:"cache"`
	TimeMs      int64        `json:"timeMs"`
}

// SuggestQuery is the bound query string of the suggest endpoint
type SuggestQuery struct {
	Q        string `form:"q"`
	Limit    string `form:"limit"`
	Prefetch string `form:"prefetch"`
}
