package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/cache"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/store"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultSuggestLimit = 6
	MaxSuggestLimit     = 12
	maxSuggestQueryLen  = 64
	suggestLoadTimeout  = 5 * time.Second
)

// ErrAllStrategiesFailed is returned when no strategy produced results and at
// least one of them failed, so an empty answer cannot be trusted.
var ErrAllStrategiesFailed = errors.New("suggestion strategies failed")

type SuggestReader interface {
	PopularSuggestions(ctx context.Context, limit int) ([]models.Suggestion, error)
	SuggestViaFunction(ctx context.Context, strategy store.SuggestStrategy, q string, limit int) ([]models.Suggestion, error)
	SuggestInline(ctx context.Context, strategy store.SuggestStrategy, q string, limit int) ([]models.Suggestion, error)
}

type SuggestCacher interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Purge(ctx context.Context) (int64, error)
	PopularKey(limit int) string
	QueryKey(normalized string, limit int) string
}

// SuggestResult is what the suggest handler renders
type SuggestResult struct {
	Suggestions []models.Suggestion
	Cache       models.CacheStatus
	TTL         time.Duration
}

// SuggestService serves autocomplete: cache first, then the prefix, trigram
// and full-text strategies in turn. Concurrent misses on one key share a single load.
type SuggestService struct {
	reader SuggestReader
	cache  SuggestCacher
	group  singleflight.Group
}

func NewSuggestService(reader SuggestReader, c SuggestCacher) *SuggestService {
	return &SuggestService{reader: reader, cache: c}
}

// NormalizeSuggestQuery lowercases, trims, collapses whitespace and caps the length
func NormalizeSuggestQuery(q string) string {
	q = strings.Join(strings.Fields(strings.ToLower(q)), " ")
	if r := []rune(q); len(r) > maxSuggestQueryLen {
		q = strings.TrimSpace(string(r[:maxSuggestQueryLen]))
	}
	return q
}

// ParseSuggestLimit defaults to 6 and clamps to [1,12]
func ParseSuggestLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultSuggestLimit
	}
	if n < 1 {
		return 1
	}
	if n > MaxSuggestLimit {
		return MaxSuggestLimit
	}
	return n
}

// SuggestTTL is how long a list is cached: popular lists longest, empty ones shortest
func SuggestTTL(normalized string, items []models.Suggestion) time.Duration {
	switch {
	case normalized == "":
		return cache.PopularTTL
	case len(items) == 0:
		return cache.EmptyTTL
	default:
		return cache.ResultTTL
	}
}

func (s *SuggestService) Suggest(ctx context.Context, rawQuery string, limit int, timer *utils.StageTimer) (SuggestResult, error) {
	if timer == nil {
		timer = utils.NewStageTimer()
	}
	norm := NormalizeSuggestQuery(rawQuery)

	key := s.cache.PopularKey(limit)
	if norm != "" {
		key = s.cache.QueryKey(norm, limit)
	}

	status := models.CacheMiss
	var cached []byte
	_ = timer.Track("cache", func() error {
		var err error
		cached, err = s.cache.Get(ctx, key)
		if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
			status = models.CacheError
			log.Warn().Err(err).Str("component", "suggest").Str("key", key).Msg("cache read failed")
		}
		return err
	})

	if cached != nil {
		var items []models.Suggestion
		if err := json.Unmarshal(cached, &items); err == nil {
			return SuggestResult{Suggestions: items, Cache: models.CacheHit, TTL: SuggestTTL(norm, items)}, nil
		}
		log.Warn().Str("component", "suggest").Str("key", key).Msg("discarding undecodable cache entry")
	}

	// the load stages land on the leader's timer; followers record their wait
	leader := false
	waitStart := time.Now()
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		leader = true
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), suggestLoadTimeout)
		defer cancel()
		return s.load(loadCtx, key, norm, limit, timer)
	})
	if !leader {
		timer.Record("coalesced", time.Since(waitStart))
	}
	if err != nil {
		return SuggestResult{}, utils.NewInternalError("failed to load suggestions", err)
	}

	items := v.([]models.Suggestion)
	return SuggestResult{Suggestions: items, Cache: status, TTL: SuggestTTL(norm, items)}, nil
}

func (s *SuggestService) load(ctx context.Context, key, norm string, limit int, timer *utils.StageTimer) ([]models.Suggestion, error) {
	var (
		items []models.Suggestion
		err   error
	)
	if norm == "" {
		err = timer.Track("popular", func() error {
			items, err = s.reader.PopularSuggestions(ctx, limit)
			return err
		})
	} else {
		items, err = s.runTiers(ctx, norm, limit, timer)
	}
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Suggestion{}
	}

	body, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, body, SuggestTTL(norm, items)); err != nil {
		log.Warn().Err(err).Str("component", "suggest").Str("key", key).Msg("cache write failed")
	}
	return items, nil
}

// runTiers returns the first non-empty strategy result. Each strategy calls its
// database function and falls back to the inline query when that fails.
func (s *SuggestService) runTiers(ctx context.Context, q string, limit int, timer *utils.StageTimer) ([]models.Suggestion, error) {
	failed := false
	for _, strategy := range store.SuggestTiers {
		var items []models.Suggestion
		err := timer.Track(string(strategy), func() error {
			var err error
			items, err = s.reader.SuggestViaFunction(ctx, strategy, q, limit)
			if err == nil {
				return nil
			}
			log.Debug().Err(err).Str("component", "suggest").Str("strategy", string(strategy)).Msg("function unavailable, using inline query")
			items, err = s.reader.SuggestInline(ctx, strategy, q, limit)
			return err
		})
		if err != nil {
			failed = true
			log.Error().Err(err).Str("component", "suggest").Str("strategy", string(strategy)).Msg("strategy failed")
			continue
		}
		if len(items) > 0 {
			return items, nil
		}
	}
	if failed {
		return nil, ErrAllStrategiesFailed
	}
	return []models.Suggestion{}, nil
}

// InvalidateCache drops every cached suggestion list
func (s *SuggestService) InvalidateCache(ctx context.Context) {
	n, err := s.cache.Purge(ctx)
	if err != nil {
		log.Warn().Err(err).Str("component", "suggest").Msg("cache purge failed")
		return
	}
	log.Debug().Str("component", "suggest").Int64("keys", n).Msg("cache purged")
}
