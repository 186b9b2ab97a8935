package search_controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/cache"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/services"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/store"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSuggestReader struct {
	popular   []models.Suggestion
	byQuery   map[string][]models.Suggestion
	err       error
	calls     int
	lastLimit int
}

func (s *stubSuggestReader) PopularSuggestions(context.Context, int) ([]models.Suggestion, error) {
	s.calls++
	return s.popular, s.err
}

func (s *stubSuggestReader) SuggestViaFunction(_ context.Context, strategy store.SuggestStrategy, q string, limit int) ([]models.Suggestion, error) {
	s.calls++
	s.lastLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	if strategy != store.StrategyPrefix {
		return nil, nil
	}
	return s.byQuery[q], nil
}

func (s *stubSuggestReader) SuggestInline(context.Context, store.SuggestStrategy, string, int) ([]models.Suggestion, error) {
	return nil, s.err
}

func setupSuggest(t *testing.T, reader *stubSuggestReader) *gin.Engine {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	Init(services.NewSuggestService(reader, cache.NewSuggestCache(client, "test")))
	r := gin.New()
	r.GET("/search/suggest", Suggest)
	return r
}

func get(r *gin.Engine, target string) (*httptest.ResponseRecorder, models.SuggestResponse) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	var body models.SuggestResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestSuggestMissThenHit(t *testing.T) {
	reader := &stubSuggestReader{byQuery: map[string][]models.Suggestion{
		"linen": {{ID: "p1", Title: "Linen Shirt", Slug: "linen-shirt", Price: 49}},
	}}
	r := setupSuggest(t, reader)

	w, body := get(r, "/search/suggest?q=%20Linen%20")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache-Status"))
	assert.Equal(t, "public, s-maxage=120", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Header().Get("Server-Timing"), "prefix;dur=")
	assert.Equal(t, models.CacheMiss, body.Cache)
	require.Len(t, body.Suggestions, 1)
	assert.Equal(t, "linen-shirt", body.Suggestions[0].Slug)

	calls := reader.calls
	w, body = get(r, "/search/suggest?q=linen")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache-Status"))
	assert.Equal(t, models.CacheHit, body.Cache)
	assert.Len(t, body.Suggestions, 1)
	assert.Equal(t, calls, reader.calls)
}

func TestSuggestPopularAndPrefetch(t *testing.T) {
	reader := &stubSuggestReader{popular: []models.Suggestion{{ID: "p2", Title: "Oxford Shirt"}}}
	r := setupSuggest(t, reader)

	w, body := get(r, "/search/suggest?prefetch=1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, s-maxage=600, max-age=30", w.Header().Get("Cache-Control"))
	assert.Len(t, body.Suggestions, 1)
}

func TestSuggestEmptyResult(t *testing.T) {
	r := setupSuggest(t, &stubSuggestReader{})

	w, body := get(r, "/search/suggest?q=zzzz&limit=50")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, s-maxage=30", w.Header().Get("Cache-Control"))
	assert.NotNil(t, body.Suggestions)
	assert.Empty(t, body.Suggestions)
	assert.Contains(t, w.Body.String(), `"suggestions":[]`)
}

func TestSuggestMalformedLimitUsesDefault(t *testing.T) {
	reader := &stubSuggestReader{byQuery: map[string][]models.Suggestion{
		"linen": {{ID: "p1", Title: "Linen Shirt"}},
	}}
	r := setupSuggest(t, reader)

	w, body := get(r, "/search/suggest?q=linen&limit=lots")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body.Suggestions, 1)
	assert.Equal(t, services.DefaultSuggestLimit, reader.lastLimit)
}

func TestSuggestAllStrategiesFail(t *testing.T) {
	r := setupSuggest(t, &stubSuggestReader{err: errors.New("statement timeout")})

	w, _ := get(r, "/search/suggest?q=linen")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Equal(t, "MISS", w.Header().Get("X-Cache-Status"))
	assert.NotContains(t, w.Body.String(), "statement timeout")
}
