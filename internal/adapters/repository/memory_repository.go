package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

// In-memory implementations, used by tests and by serve mode when no
// database is configured.

type InMemorySnapshotRepository struct {
	records []domain.ProblemRecord

	mu sync.RWMutex
}

var _ domain.SnapshotRepository = (*InMemorySnapshotRepository)(nil)

func NewInMemorySnapshotRepository() *InMemorySnapshotRepository {
	return &InMemorySnapshotRepository{}
}

func (r *InMemorySnapshotRepository) Replace(ctx context.Context, records []domain.ProblemRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = make([]domain.ProblemRecord, len(records))
	copy(r.records, records)
	return nil
}

func (r *InMemorySnapshotRepository) List(ctx context.Context) ([]domain.ProblemRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ProblemRecord, len(r.records))
	copy(out, r.records)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.DateSolved == "") != (b.DateSolved == "") {
			return a.DateSolved != ""
		}
		if a.DateSolved != b.DateSolved {
			return a.DateSolved < b.DateSolved
		}
		return a.Title < b.Title
	})

	return out, nil
}

func (r *InMemorySnapshotRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records), nil
}

type InMemorySyncRunRepository struct {
	runs map[string]*domain.SyncRun

	mu sync.RWMutex
}

var _ domain.SyncRunRepository = (*InMemorySyncRunRepository)(nil)

func NewInMemorySyncRunRepository() *InMemorySyncRunRepository {
	return &InMemorySyncRunRepository{
		runs: make(map[string]*domain.SyncRun),
	}
}

func (r *InMemorySyncRunRepository) Create(ctx context.Context, run *domain.SyncRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *run
	r.runs[run.ID] = &stored
	return nil
}

func (r *InMemorySyncRunRepository) Update(ctx context.Context, run *domain.SyncRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.runs[run.ID]; !ok {
		return domain.ErrSyncRunNotFound
	}

	stored := *run
	r.runs[run.ID] = &stored
	return nil
}

func (r *InMemorySyncRunRepository) Latest(ctx context.Context) (*domain.SyncRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *domain.SyncRun
	for _, run := range r.runs {
		if latest == nil || run.StartedAt.After(latest.StartedAt) {
			latest = run
		}
	}
	if latest == nil {
		return nil, domain.ErrSyncRunNotFound
	}

	out := *latest
	return &out, nil
}

func (r *InMemorySyncRunRepository) ListSince(ctx context.Context, since time.Time) ([]*domain.SyncRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var runs []*domain.SyncRun
	for _, run := range r.runs {
		if run.StartedAt.After(since) {
			out := *run
			runs = append(runs, &out)
		}
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	return runs, nil
}
