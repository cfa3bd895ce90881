package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrSnapshotNotFound = errors.New("problem snapshot not found")
	ErrSyncRunNotFound  = errors.New("sync run not found")
	ErrSourceUnavailable = errors.New("problem source unavailable")
	ErrWriterUnavailable = errors.New("sheet writer unavailable")
)

// Submission is one accepted submission as reported by the remote service.
type Submission struct {
	Title        string `json:"title"`
	TitleSlug    string `json:"title_slug"`
	Timestamp    int64  `json:"timestamp"`
	Status       string `json:"status"`
	Language     string `json:"language"`
	Runtime      string `json:"runtime"`
	Memory       string `json:"memory"`
	SubmissionID string `json:"submission_id"`
	DateSolved   string `json:"date_solved"`
	DailyCount   int    `json:"daily_count,omitempty"`
}

// ProblemDetail is the per-problem metadata fetched by slug.
type ProblemDetail struct {
	ProblemID      string   `json:"problem_id"`
	Title          string   `json:"title"`
	TitleSlug      string   `json:"title_slug"`
	Difficulty     string   `json:"difficulty"`
	Topics         []string `json:"topics"`
	Companies      []string `json:"companies"`
	IsPaidOnly     bool     `json:"is_paid_only"`
	Category       string   `json:"category"`
	AcceptanceRate string   `json:"acceptance_rate"`
}

// UserStatistics is the high-level profile summary used by connection tests
// and the status view.
type UserStatistics struct {
	Username         string  `json:"username"`
	RealName         string  `json:"real_name"`
	Ranking          int     `json:"ranking"`
	TotalSolved      int     `json:"total_solved"`
	TotalSubmissions int     `json:"total_submissions"`
	AcceptanceRate   float64 `json:"acceptance_rate"`
	EasySolved       int     `json:"easy_solved"`
	MediumSolved     int     `json:"medium_solved"`
	HardSolved       int     `json:"hard_solved"`
}

// ProblemSource is the fetch collaborator. Implementations are expected to
// retry transient failures themselves and return ErrSourceUnavailable once
// retries are exhausted.
type ProblemSource interface {
	// TestConnection verifies the remote service is reachable and the
	// configured profile exists.
	TestConnection(ctx context.Context) error

	// UserStatistics fetches the profile summary.
	UserStatistics(ctx context.Context) (*UserStatistics, error)

	// RecentAcceptedSubmissions lists accepted submissions, newest first,
	// up to limit.
	RecentAcceptedSubmissions(ctx context.Context, limit int) ([]Submission, error)

	// ProblemDetails fetches metadata for one problem slug.
	ProblemDetails(ctx context.Context, slug string) (*ProblemDetail, error)
}

// SheetWriter is the spreadsheet collaborator. Each update replaces the
// corresponding worksheet wholesale.
type SheetWriter interface {
	TestConnection(ctx context.Context) error
	UpdateProblems(ctx context.Context, records []ProblemRecord) error
	UpdateAnalytics(ctx context.Context, topics map[string]*TopicStat) error
	UpdateProgress(ctx context.Context, entries []DailyProgressEntry) error

	// ExistingProblems reads the current Problems worksheet back, used by
	// incremental sync and backups.
	ExistingProblems(ctx context.Context) ([]ProblemRecord, error)
}

// SnapshotRepository persists the most recent normalized problem set.
type SnapshotRepository interface {
	// Replace swaps the stored snapshot for the given records atomically.
	Replace(ctx context.Context, records []ProblemRecord) error

	// List returns the stored snapshot ordered by date solved ascending,
	// undated records last.
	List(ctx context.Context) ([]ProblemRecord, error)

	Count(ctx context.Context) (int, error)
}

// SyncRunRepository persists sync-run history.
type SyncRunRepository interface {
	Create(ctx context.Context, run *SyncRun) error
	Update(ctx context.Context, run *SyncRun) error

	// Latest returns the most recently started run.
	Latest(ctx context.Context) (*SyncRun, error)

	// ListSince returns runs started after the given instant, newest first.
	ListSince(ctx context.Context, since time.Time) ([]*SyncRun, error)
}
