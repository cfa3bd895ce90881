package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

func TestInMemorySnapshotRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemorySnapshotRepository()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	records := []domain.ProblemRecord{
		{Title: "Two Sum", DateSolved: "2024-03-19"},
		{Title: "Word Ladder", DateSolved: ""},
		{Title: "Add Two Numbers", DateSolved: "2024-03-18"},
		{Title: "Valid Anagram", DateSolved: "2024-03-18"},
	}
	require.NoError(t, repo.Replace(ctx, records))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 4)

	// dated records first in chronological order, ties broken by title,
	// undated records last
	assert.Equal(t, "Add Two Numbers", got[0].Title)
	assert.Equal(t, "Valid Anagram", got[1].Title)
	assert.Equal(t, "Two Sum", got[2].Title)
	assert.Equal(t, "Word Ladder", got[3].Title)

	// Replace swaps the whole snapshot
	require.NoError(t, repo.Replace(ctx, records[:1]))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestInMemorySyncRunRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemorySyncRunRepository()

	_, err := repo.Latest(ctx)
	assert.ErrorIs(t, err, domain.ErrSyncRunNotFound)

	err = repo.Update(ctx, &domain.SyncRun{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrSyncRunNotFound)

	now := time.Now().UTC()
	older := &domain.SyncRun{ID: "a", Mode: domain.SyncModeFull, Status: domain.SyncStatusRunning, StartedAt: now.Add(-48 * time.Hour)}
	newer := &domain.SyncRun{ID: "b", Mode: domain.SyncModeIncremental, Status: domain.SyncStatusRunning, StartedAt: now}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", latest.ID)

	newer.Status = domain.SyncStatusSuccess
	require.NoError(t, repo.Update(ctx, newer))
	latest, err = repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusSuccess, latest.Status)

	// only runs inside the window, newest first
	runs, err := repo.ListSince(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "b", runs[0].ID)

	runs, err = repo.ListSince(ctx, now.Add(-72*time.Hour))
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "b", runs[0].ID)
	assert.Equal(t, "a", runs[1].ID)
}
