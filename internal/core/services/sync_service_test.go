package services

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mbonetti/leetsync-engine/internal/core/analytics"
	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) TestConnection(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSource) UserStatistics(ctx context.Context) (*domain.UserStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStatistics), args.Error(1)
}

func (m *MockSource) RecentAcceptedSubmissions(ctx context.Context, limit int) ([]domain.Submission, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Submission), args.Error(1)
}

func (m *MockSource) ProblemDetails(ctx context.Context, slug string) (*domain.ProblemDetail, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProblemDetail), args.Error(1)
}

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) TestConnection(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockWriter) UpdateProblems(ctx context.Context, records []domain.ProblemRecord) error {
	return m.Called(ctx, records).Error(0)
}

func (m *MockWriter) UpdateAnalytics(ctx context.Context, topics map[string]*domain.TopicStat) error {
	return m.Called(ctx, topics).Error(0)
}

func (m *MockWriter) UpdateProgress(ctx context.Context, entries []domain.DailyProgressEntry) error {
	return m.Called(ctx, entries).Error(0)
}

func (m *MockWriter) ExistingProblems(ctx context.Context) ([]domain.ProblemRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProblemRecord), args.Error(1)
}

type MockSnapshotRepo struct {
	mock.Mock
}

func (m *MockSnapshotRepo) Replace(ctx context.Context, records []domain.ProblemRecord) error {
	return m.Called(ctx, records).Error(0)
}

func (m *MockSnapshotRepo) List(ctx context.Context) ([]domain.ProblemRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProblemRecord), args.Error(1)
}

func (m *MockSnapshotRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockRunRepo struct {
	mock.Mock
}

func (m *MockRunRepo) Create(ctx context.Context, run *domain.SyncRun) error {
	return m.Called(ctx, run).Error(0)
}

func (m *MockRunRepo) Update(ctx context.Context, run *domain.SyncRun) error {
	return m.Called(ctx, run).Error(0)
}

func (m *MockRunRepo) Latest(ctx context.Context) (*domain.SyncRun, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncRun), args.Error(1)
}

func (m *MockRunRepo) ListSince(ctx context.Context, since time.Time) ([]*domain.SyncRun, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SyncRun), args.Error(1)
}

func newTestService(source *MockSource, writer *MockWriter, snapshots *MockSnapshotRepo, runs *MockRunRepo) *SyncService {
	return NewSyncService(source, writer, snapshots, runs, analytics.NewEngine(nil), 100, 2)
}

func permissiveRunRepo() *MockRunRepo {
	runs := new(MockRunRepo)
	runs.On("Create", mock.Anything, mock.Anything).Return(nil)
	runs.On("Update", mock.Anything, mock.Anything).Return(nil)
	return runs
}

func TestFullSync_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	source := new(MockSource)
	writer := new(MockWriter)
	snapshots := new(MockSnapshotRepo)
	runs := permissiveRunRepo()

	source.On("TestConnection", mock.Anything).Return(nil)
	writer.On("TestConnection", mock.Anything).Return(nil)

	source.On("RecentAcceptedSubmissions", mock.Anything, 100).Return([]domain.Submission{
		{Title: "Two Sum", TitleSlug: "two-sum", DateSolved: "2024-03-18", Language: "go", Runtime: "4ms", Memory: "4.1MB"},
		{Title: "Two Sum", TitleSlug: "two-sum", DateSolved: "2024-03-10"},
		{Title: "LRU Cache", TitleSlug: "lru-cache", DateSolved: "2024-03-19"},
	}, nil)
	source.On("ProblemDetails", mock.Anything, "two-sum").Return(&domain.ProblemDetail{
		Title: "Two Sum", TitleSlug: "two-sum", Difficulty: "Easy", Topics: []string{"Array"},
	}, nil)
	source.On("ProblemDetails", mock.Anything, "lru-cache").Return(&domain.ProblemDetail{
		Title: "LRU Cache", TitleSlug: "lru-cache", Difficulty: "Medium", Topics: []string{"Design"},
	}, nil)

	writer.On("UpdateProblems", mock.Anything, mock.Anything).Return(nil)
	writer.On("UpdateAnalytics", mock.Anything, mock.Anything).Return(nil)
	writer.On("UpdateProgress", mock.Anything, mock.Anything).Return(nil)
	snapshots.On("Replace", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(source, writer, snapshots, runs)
	result, err := svc.FullSync(ctx, domain.SyncTriggerCLI)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalProblems, "duplicate submissions for one slug collapse")
	assert.Equal(t, 2, result.NewProblems)
	assert.Equal(t, 0, result.Errors)

	writer.AssertCalled(t, "UpdateProblems", mock.Anything, mock.MatchedBy(func(records []domain.ProblemRecord) bool {
		if len(records) != 2 {
			return false
		}
		// the duplicate slug keeps its most recent submission
		for _, r := range records {
			if r.TitleSlug == "two-sum" && r.DateSolved != "2024-03-18" {
				return false
			}
		}
		return true
	}))
	snapshots.AssertCalled(t, "Replace", mock.Anything, mock.Anything)
}

func TestFullSync_ConnectionFailure(t *testing.T) {
	t.Parallel()

	source := new(MockSource)
	writer := new(MockWriter)
	runs := permissiveRunRepo()

	source.On("TestConnection", mock.Anything).Return(errors.New("leetcode down"))
	writer.On("TestConnection", mock.Anything).Return(nil)

	svc := newTestService(source, writer, new(MockSnapshotRepo), runs)
	_, err := svc.FullSync(context.Background(), domain.SyncTriggerCLI)

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	source.AssertNotCalled(t, "RecentAcceptedSubmissions", mock.Anything, mock.Anything)
}

func TestFullSync_NoValidProblems(t *testing.T) {
	t.Parallel()

	source := new(MockSource)
	writer := new(MockWriter)
	runs := permissiveRunRepo()

	source.On("TestConnection", mock.Anything).Return(nil)
	writer.On("TestConnection", mock.Anything).Return(nil)
	source.On("RecentAcceptedSubmissions", mock.Anything, 100).Return([]domain.Submission{}, nil)

	svc := newTestService(source, writer, new(MockSnapshotRepo), runs)
	_, err := svc.FullSync(context.Background(), domain.SyncTriggerCLI)

	assert.Error(t, err)
	writer.AssertNotCalled(t, "UpdateProblems", mock.Anything, mock.Anything)
}

func TestIncrementalSync_NoNewProblems(t *testing.T) {
	t.Parallel()

	source := new(MockSource)
	writer := new(MockWriter)
	runs := permissiveRunRepo()

	writer.On("ExistingProblems", mock.Anything).Return([]domain.ProblemRecord{
		{Title: "Two Sum", Difficulty: domain.DifficultyEasy},
	}, nil)
	source.On("RecentAcceptedSubmissions", mock.Anything, 100).Return([]domain.Submission{
		{Title: "Two Sum", TitleSlug: "two-sum", DateSolved: "2024-03-18"},
	}, nil)
	source.On("ProblemDetails", mock.Anything, "two-sum").Return(&domain.ProblemDetail{
		Title: "Two Sum", TitleSlug: "two-sum", Difficulty: "Easy",
	}, nil)

	svc := newTestService(source, writer, new(MockSnapshotRepo), runs)
	result, err := svc.IncrementalSync(context.Background(), domain.SyncTriggerCLI)

	assert.NoError(t, err)
	assert.Equal(t, 0, result.NewProblems)
	assert.Equal(t, 1, result.TotalProblems)
	writer.AssertNotCalled(t, "UpdateProblems", mock.Anything, mock.Anything)
}

func TestIncrementalSync_AppendsNewProblems(t *testing.T) {
	t.Parallel()

	source := new(MockSource)
	writer := new(MockWriter)
	snapshots := new(MockSnapshotRepo)
	runs := permissiveRunRepo()

	writer.On("ExistingProblems", mock.Anything).Return([]domain.ProblemRecord{
		{Title: "Two Sum", Difficulty: domain.DifficultyEasy, DateSolved: "2024-03-01"},
	}, nil)
	source.On("RecentAcceptedSubmissions", mock.Anything, 100).Return([]domain.Submission{
		{Title: "3Sum", TitleSlug: "3sum", DateSolved: "2024-03-19"},
	}, nil)
	source.On("ProblemDetails", mock.Anything, "3sum").Return(&domain.ProblemDetail{
		Title: "3Sum", TitleSlug: "3sum", Difficulty: "Medium", Topics: []string{"Array"},
	}, nil)

	writer.On("UpdateProblems", mock.Anything, mock.Anything).Return(nil)
	writer.On("UpdateAnalytics", mock.Anything, mock.Anything).Return(nil)
	writer.On("UpdateProgress", mock.Anything, mock.Anything).Return(nil)
	snapshots.On("Replace", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(source, writer, snapshots, runs)
	result, err := svc.IncrementalSync(context.Background(), domain.SyncTriggerCLI)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.NewProblems)
	assert.Equal(t, 2, result.TotalProblems)

	writer.AssertCalled(t, "UpdateProblems", mock.Anything, mock.MatchedBy(func(records []domain.ProblemRecord) bool {
		return len(records) == 2
	}))
}

func TestStatus(t *testing.T) {
	t.Parallel()

	source := new(MockSource)
	writer := new(MockWriter)
	snapshots := new(MockSnapshotRepo)
	runs := new(MockRunRepo)

	source.On("TestConnection", mock.Anything).Return(nil)
	writer.On("TestConnection", mock.Anything).Return(errors.New("sheets down"))
	runs.On("Latest", mock.Anything).Return(nil, domain.ErrSyncRunNotFound)
	snapshots.On("Count", mock.Anything).Return(42, nil)

	svc := newTestService(source, writer, snapshots, runs)
	status, err := svc.Status(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, status.LastRun)
	assert.Equal(t, 42, status.SnapshotCount)
	assert.True(t, status.Connections.LeetCode)
	assert.False(t, status.Connections.GoogleSheets)
}

func TestBackupAndRestore(t *testing.T) {
	t.Parallel()

	records := []domain.ProblemRecord{
		{Title: "Two Sum", Difficulty: domain.DifficultyEasy, DateSolved: "2024-03-18", Attempts: 1, Status: domain.StatusSolved},
		{Title: "3Sum", Difficulty: domain.DifficultyMedium, DateSolved: "2024-03-19", Attempts: 1, Status: domain.StatusSolved},
	}

	writer := new(MockWriter)
	snapshots := new(MockSnapshotRepo)
	runs := permissiveRunRepo()

	writer.On("ExistingProblems", mock.Anything).Return(records, nil)
	writer.On("UpdateProblems", mock.Anything, mock.Anything).Return(nil)
	writer.On("UpdateAnalytics", mock.Anything, mock.Anything).Return(nil)
	writer.On("UpdateProgress", mock.Anything, mock.Anything).Return(nil)
	snapshots.On("Replace", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(new(MockSource), writer, snapshots, runs)

	path := filepath.Join(t.TempDir(), "backup.json")
	written, err := svc.Backup(context.Background(), path)
	assert.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	var payload struct {
		ProblemsCount int                    `json:"problems_count"`
		Problems      []domain.ProblemRecord `json:"problems_data"`
	}
	assert.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, 2, payload.ProblemsCount)

	result, err := svc.Restore(context.Background(), path, domain.SyncTriggerCLI)
	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalProblems)
}

func TestRestore_MissingFile(t *testing.T) {
	t.Parallel()

	svc := newTestService(new(MockSource), new(MockWriter), new(MockSnapshotRepo), permissiveRunRepo())

	_, err := svc.Restore(context.Background(), filepath.Join(t.TempDir(), "nope.json"), domain.SyncTriggerCLI)
	assert.Error(t, err)
}

func TestCleanup(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive retention", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(new(MockSource), new(MockWriter), new(MockSnapshotRepo), permissiveRunRepo())
		_, err := svc.Cleanup(context.Background(), 0, domain.SyncTriggerCLI)
		assert.Error(t, err)
	})

	t.Run("drops stale and undated records", func(t *testing.T) {
		t.Parallel()
		writer := new(MockWriter)
		snapshots := new(MockSnapshotRepo)
		runs := permissiveRunRepo()

		recent := time.Now().AddDate(0, 0, -5).Format(domain.DateLayout)
		writer.On("ExistingProblems", mock.Anything).Return([]domain.ProblemRecord{
			{Title: "Recent", Difficulty: domain.DifficultyEasy, DateSolved: recent},
			{Title: "Ancient", Difficulty: domain.DifficultyEasy, DateSolved: "2019-01-01"},
			{Title: "Undated", Difficulty: domain.DifficultyEasy},
		}, nil)
		writer.On("UpdateProblems", mock.Anything, mock.Anything).Return(nil)
		writer.On("UpdateAnalytics", mock.Anything, mock.Anything).Return(nil)
		writer.On("UpdateProgress", mock.Anything, mock.Anything).Return(nil)
		snapshots.On("Replace", mock.Anything, mock.Anything).Return(nil)

		svc := newTestService(new(MockSource), writer, snapshots, runs)
		result, err := svc.Cleanup(context.Background(), 30, domain.SyncTriggerCLI)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.TotalProblems)
	})

	t.Run("leaves sheets alone when nothing is stale", func(t *testing.T) {
		t.Parallel()
		writer := new(MockWriter)
		runs := permissiveRunRepo()

		recent := time.Now().AddDate(0, 0, -2).Format(domain.DateLayout)
		writer.On("ExistingProblems", mock.Anything).Return([]domain.ProblemRecord{
			{Title: "Recent", Difficulty: domain.DifficultyEasy, DateSolved: recent},
		}, nil)

		svc := newTestService(new(MockSource), writer, new(MockSnapshotRepo), runs)
		result, err := svc.Cleanup(context.Background(), 30, domain.SyncTriggerCLI)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.TotalProblems)
		writer.AssertNotCalled(t, "UpdateProblems", mock.Anything, mock.Anything)
	})
}
