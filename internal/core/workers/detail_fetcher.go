package workers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

// DetailFetcher fans per-slug metadata lookups out to a bounded worker pool.
// Each worker pauses briefly after a completed request so a large backlog
// does not hammer the remote service.
type DetailFetcher struct {
	source  domain.ProblemSource
	workers int
	delay   time.Duration
}

type detailResult struct {
	slug   string
	detail *domain.ProblemDetail
}

func NewDetailFetcher(source domain.ProblemSource, workers int) *DetailFetcher {
	if workers < 1 {
		workers = 1
	}
	return &DetailFetcher{
		source:  source,
		workers: workers,
		delay:   50 * time.Millisecond,
	}
}

// FetchAll resolves details for every slug. Individual failures are logged
// and counted, never fatal: the second return value is the number of slugs
// that could not be resolved.
func (f *DetailFetcher) FetchAll(ctx context.Context, slugs []string) (map[string]*domain.ProblemDetail, int) {
	jobs := make(chan string)
	results := make(chan detailResult)

	var wg sync.WaitGroup
	for i := 0; i < f.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for slug := range jobs {
				detail, err := f.source.ProblemDetails(ctx, slug)
				if err != nil {
					log.Printf("fetcher: failed to fetch details for %s: %v", slug, err)
					detail = nil
				}
				select {
				case results <- detailResult{slug: slug, detail: detail}:
				case <-ctx.Done():
					return
				}

				select {
				case <-time.After(f.delay):
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, slug := range slugs {
			select {
			case jobs <- slug:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	details := make(map[string]*domain.ProblemDetail, len(slugs))
	failed := 0
	for res := range results {
		if res.detail == nil {
			failed++
			continue
		}
		details[res.slug] = res.detail
	}

	if failed > 0 {
		log.Printf("fetcher: %d of %d detail lookups failed", failed, len(slugs))
	}
	return details, failed
}
