package leetcode

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

var _ domain.ProblemSource = (*CachedSource)(nil)

// CachedSource memoizes per-slug problem details in Redis. Problem metadata
// (difficulty, topics, category) changes rarely, so repeated syncs skip most
// of the per-slug GraphQL round trips. Any cache failure degrades to the
// underlying source.
type CachedSource struct {
	next  domain.ProblemSource
	cache *redis.Client
	ttl   time.Duration
}

func NewCachedSource(next domain.ProblemSource, cache *redis.Client, ttl time.Duration) *CachedSource {
	return &CachedSource{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

func (s *CachedSource) cacheKey(slug string) string {
	return fmt.Sprintf("catalog:%s", slug)
}

func (s *CachedSource) ProblemDetails(ctx context.Context, slug string) (*domain.ProblemDetail, error) {
	key := s.cacheKey(slug)

	val, err := s.cache.Get(ctx, key).Result()
	if err == nil {
		var detail domain.ProblemDetail
		if err := json.Unmarshal([]byte(val), &detail); err == nil {
			return &detail, nil
		}

		log.Printf("[CACHE] Corrupted entry for %s, cleaning up key", slug)
		s.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	detail, err := s.next.ProblemDetails(ctx, slug)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(detail); err == nil {
		if setErr := s.cache.Set(ctx, key, data, s.ttl).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return detail, nil
}

func (s *CachedSource) TestConnection(ctx context.Context) error {
	return s.next.TestConnection(ctx)
}

func (s *CachedSource) UserStatistics(ctx context.Context) (*domain.UserStatistics, error) {
	return s.next.UserStatistics(ctx)
}

func (s *CachedSource) RecentAcceptedSubmissions(ctx context.Context, limit int) ([]domain.Submission, error) {
	return s.next.RecentAcceptedSubmissions(ctx, limit)
}
