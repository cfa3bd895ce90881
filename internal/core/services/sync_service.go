package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mbonetti/leetsync-engine/internal/core/analytics"
	"github.com/mbonetti/leetsync-engine/internal/core/domain"
	"github.com/mbonetti/leetsync-engine/internal/core/workers"
)

// SyncService orchestrates one pass of the pipeline: fetch accepted
// submissions, resolve per-problem metadata, normalize, generate analytics
// and push everything to the spreadsheet. Every pass is recorded as a
// SyncRun; run-history failures are logged but never abort a sync.
type SyncService struct {
	source     domain.ProblemSource
	writer     domain.SheetWriter
	snapshots  domain.SnapshotRepository
	runs       domain.SyncRunRepository
	engine     *analytics.Engine
	fetcher    *workers.DetailFetcher
	fetchLimit int
}

func NewSyncService(
	source domain.ProblemSource,
	writer domain.SheetWriter,
	snapshots domain.SnapshotRepository,
	runs domain.SyncRunRepository,
	engine *analytics.Engine,
	fetchLimit int,
	fetchWorkers int,
) *SyncService {
	if fetchLimit < 1 {
		fetchLimit = 2000
	}
	return &SyncService{
		source:     source,
		writer:     writer,
		snapshots:  snapshots,
		runs:       runs,
		engine:     engine,
		fetcher:    workers.NewDetailFetcher(source, fetchWorkers),
		fetchLimit: fetchLimit,
	}
}

// ConnectionStatus reports reachability of the two external services.
type ConnectionStatus struct {
	LeetCode     bool `json:"leetcode"`
	GoogleSheets bool `json:"google_sheets"`
}

func (c ConnectionStatus) Healthy() bool {
	return c.LeetCode && c.GoogleSheets
}

// SyncResult summarizes one completed pass.
type SyncResult struct {
	RunID         string        `json:"run_id"`
	Mode          string        `json:"mode"`
	TotalProblems int           `json:"total_problems"`
	NewProblems   int           `json:"new_problems"`
	Errors        int           `json:"errors"`
	Duration      time.Duration `json:"duration"`
}

// SyncStatus is the aggregate view served by the status command and the
// status endpoint.
type SyncStatus struct {
	LastRun       *domain.SyncRun  `json:"last_run,omitempty"`
	SnapshotCount int              `json:"snapshot_count"`
	Connections   ConnectionStatus `json:"connections"`
}

// TestConnections probes both external services. A failed probe is reported,
// never returned as an error.
func (s *SyncService) TestConnections(ctx context.Context) ConnectionStatus {
	status := ConnectionStatus{}

	if err := s.source.TestConnection(ctx); err != nil {
		log.Printf("sync: leetcode connection test failed: %v", err)
	} else {
		status.LeetCode = true
	}

	if err := s.writer.TestConnection(ctx); err != nil {
		log.Printf("sync: google sheets connection test failed: %v", err)
	} else {
		status.GoogleSheets = true
	}

	return status
}

// FullSync fetches the complete accepted-submission history and replaces the
// spreadsheet and the stored snapshot with the result.
func (s *SyncService) FullSync(ctx context.Context, trigger string) (*SyncResult, error) {
	run := s.startRun(ctx, domain.SyncModeFull, trigger)
	start := time.Now()
	log.Println("sync: starting full synchronization")

	if status := s.TestConnections(ctx); !status.Healthy() {
		return nil, s.fail(ctx, run, fmt.Errorf("connection test failed (leetcode=%t, sheets=%t): %w",
			status.LeetCode, status.GoogleSheets, domain.ErrSourceUnavailable))
	}

	records, failed, err := s.fetchRecords(ctx)
	if err != nil {
		return nil, s.fail(ctx, run, err)
	}
	if len(records) == 0 {
		return nil, s.fail(ctx, run, fmt.Errorf("no valid problems after fetch and validation"))
	}

	if err := s.publish(ctx, records); err != nil {
		return nil, s.fail(ctx, run, err)
	}

	result := &SyncResult{
		RunID:         run.ID,
		Mode:          domain.SyncModeFull,
		TotalProblems: len(records),
		NewProblems:   len(records),
		Errors:        failed,
		Duration:      time.Since(start),
	}
	s.finishRun(ctx, run, result)
	log.Printf("sync: full sync completed in %.2fs, %d problems", result.Duration.Seconds(), result.TotalProblems)
	return result, nil
}

// IncrementalSync appends problems not yet present in the spreadsheet. The
// diff is by title against the current Problems worksheet; when nothing is
// new the sheets are left untouched.
func (s *SyncService) IncrementalSync(ctx context.Context, trigger string) (*SyncResult, error) {
	run := s.startRun(ctx, domain.SyncModeIncremental, trigger)
	start := time.Now()
	log.Println("sync: starting incremental synchronization")

	existing, err := s.writer.ExistingProblems(ctx)
	if err != nil {
		return nil, s.fail(ctx, run, fmt.Errorf("failed to read existing problems: %w", err))
	}
	existingTitles := make(map[string]bool, len(existing))
	for _, rec := range existing {
		existingTitles[rec.Title] = true
	}

	fetched, failed, err := s.fetchRecords(ctx)
	if err != nil {
		return nil, s.fail(ctx, run, err)
	}

	fresh := make([]domain.ProblemRecord, 0)
	for _, rec := range fetched {
		if !existingTitles[rec.Title] {
			fresh = append(fresh, rec)
		}
	}

	if len(fresh) == 0 {
		log.Println("sync: no new problems to sync")
		result := &SyncResult{
			RunID:         run.ID,
			Mode:          domain.SyncModeIncremental,
			TotalProblems: len(existing),
			Errors:        failed,
			Duration:      time.Since(start),
		}
		s.finishRun(ctx, run, result)
		return result, nil
	}
	log.Printf("sync: found %d new problems to sync", len(fresh))

	merged := append(existing, fresh...)
	if err := s.publish(ctx, merged); err != nil {
		return nil, s.fail(ctx, run, err)
	}

	result := &SyncResult{
		RunID:         run.ID,
		Mode:          domain.SyncModeIncremental,
		TotalProblems: len(merged),
		NewProblems:   len(fresh),
		Errors:        failed,
		Duration:      time.Since(start),
	}
	s.finishRun(ctx, run, result)
	log.Printf("sync: incremental sync completed, %d new problems added", result.NewProblems)
	return result, nil
}

// Status reports the latest run, the stored snapshot size and live
// connection checks.
func (s *SyncService) Status(ctx context.Context) (*SyncStatus, error) {
	status := &SyncStatus{
		Connections: s.TestConnections(ctx),
	}

	last, err := s.runs.Latest(ctx)
	if err != nil && !errors.Is(err, domain.ErrSyncRunNotFound) {
		return nil, fmt.Errorf("failed to load last sync run: %w", err)
	}
	status.LastRun = last

	count, err := s.snapshots.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count snapshot records: %w", err)
	}
	status.SnapshotCount = count

	return status, nil
}

// RunsSince lists sync runs started after the given instant, newest first.
func (s *SyncService) RunsSince(ctx context.Context, since time.Time) ([]*domain.SyncRun, error) {
	runs, err := s.runs.ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}
	return runs, nil
}

type backupFile struct {
	BackupTimestamp string                 `json:"backup_timestamp"`
	ProblemsCount   int                    `json:"problems_count"`
	Problems        []domain.ProblemRecord `json:"problems_data"`
}

// Backup dumps the current Problems worksheet to a JSON file and returns the
// path written. An empty path picks a timestamped default in the working
// directory.
func (s *SyncService) Backup(ctx context.Context, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("backup_leetcode_data_%s.json", time.Now().Format("20060102_150405"))
	}

	records, err := s.writer.ExistingProblems(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read problems for backup: %w", err)
	}

	payload := backupFile{
		BackupTimestamp: time.Now().Format(time.RFC3339),
		ProblemsCount:   len(records),
		Problems:        records,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}

	log.Printf("sync: backup created at %s (%d problems)", path, len(records))
	return path, nil
}

// Restore replaces spreadsheet and snapshot contents from a backup file.
func (s *SyncService) Restore(ctx context.Context, path, trigger string) (*SyncResult, error) {
	run := s.startRun(ctx, domain.SyncModeRestore, trigger)
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, s.fail(ctx, run, fmt.Errorf("failed to read backup file: %w", err))
	}
	var payload backupFile
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, s.fail(ctx, run, fmt.Errorf("failed to decode backup file: %w", err))
	}
	if len(payload.Problems) == 0 {
		return nil, s.fail(ctx, run, fmt.Errorf("no problems data found in backup"))
	}

	if err := s.publish(ctx, payload.Problems); err != nil {
		return nil, s.fail(ctx, run, err)
	}

	result := &SyncResult{
		RunID:         run.ID,
		Mode:          domain.SyncModeRestore,
		TotalProblems: len(payload.Problems),
		Duration:      time.Since(start),
	}
	s.finishRun(ctx, run, result)
	log.Printf("sync: data restored from %s", path)
	return result, nil
}

// Cleanup drops records solved before the retention window (and records with
// no solve date at all), then republishes the remainder. Days below 1 are an
// error rather than a full wipe.
func (s *SyncService) Cleanup(ctx context.Context, daysToKeep int, trigger string) (*SyncResult, error) {
	if daysToKeep < 1 {
		return nil, fmt.Errorf("days to keep must be positive, got %d", daysToKeep)
	}
	run := s.startRun(ctx, domain.SyncModeCleanup, trigger)
	start := time.Now()
	cutoff := time.Now().AddDate(0, 0, -daysToKeep).Format(domain.DateLayout)

	records, err := s.writer.ExistingProblems(ctx)
	if err != nil {
		return nil, s.fail(ctx, run, fmt.Errorf("failed to read problems for cleanup: %w", err))
	}

	kept := make([]domain.ProblemRecord, 0, len(records))
	for _, rec := range records {
		if rec.DateSolved != "" && rec.DateSolved >= cutoff {
			kept = append(kept, rec)
		}
	}

	if len(kept) == len(records) {
		log.Println("sync: no old data to clean up")
		result := &SyncResult{
			RunID:         run.ID,
			Mode:          domain.SyncModeCleanup,
			TotalProblems: len(records),
			Duration:      time.Since(start),
		}
		s.finishRun(ctx, run, result)
		return result, nil
	}

	log.Printf("sync: cleaning up old data, keeping %d of %d problems", len(kept), len(records))
	if err := s.publish(ctx, kept); err != nil {
		return nil, s.fail(ctx, run, err)
	}

	result := &SyncResult{
		RunID:         run.ID,
		Mode:          domain.SyncModeCleanup,
		TotalProblems: len(kept),
		Duration:      time.Since(start),
	}
	s.finishRun(ctx, run, result)
	return result, nil
}

// fetchRecords pulls submissions, resolves details through the worker pool
// and normalizes the merged result. The int return is the number of slugs
// whose details could not be fetched.
func (s *SyncService) fetchRecords(ctx context.Context) ([]domain.ProblemRecord, int, error) {
	submissions, err := s.source.RecentAcceptedSubmissions(ctx, s.fetchLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch submissions: %w", err)
	}
	if len(submissions) == 0 {
		return nil, 0, nil
	}
	log.Printf("sync: fetched %d accepted submissions", len(submissions))

	// Submissions arrive newest first; keep the first occurrence per slug so
	// each problem carries its most recent accepted submission.
	unique := make(map[string]domain.Submission, len(submissions))
	slugs := make([]string, 0, len(submissions))
	for _, sub := range submissions {
		if sub.TitleSlug == "" {
			continue
		}
		if _, seen := unique[sub.TitleSlug]; !seen {
			unique[sub.TitleSlug] = sub
			slugs = append(slugs, sub.TitleSlug)
		}
	}

	details, failed := s.fetcher.FetchAll(ctx, slugs)

	raw := make([]domain.RawProblem, 0, len(details))
	for _, slug := range slugs {
		detail, ok := details[slug]
		if !ok {
			continue
		}
		sub := unique[slug]
		title := detail.Title
		if title == "" {
			title = sub.Title
		}
		raw = append(raw, domain.RawProblem{
			Title:          title,
			ProblemID:      detail.ProblemID,
			TitleSlug:      slug,
			Difficulty:     detail.Difficulty,
			Topics:         detail.Topics,
			Companies:      detail.Companies,
			DateSolved:     sub.DateSolved,
			Language:       sub.Language,
			Runtime:        sub.Runtime,
			Memory:         sub.Memory,
			SubmissionID:   sub.SubmissionID,
			IsPaidOnly:     detail.IsPaidOnly,
			Category:       detail.Category,
			AcceptanceRate: detail.AcceptanceRate,
			Attempts:       1,
			Status:         domain.StatusSolved,
		})
	}

	return analytics.Normalize(raw), failed, nil
}

// publish regenerates the analytics report, writes all three worksheets and
// replaces the stored snapshot. Sheet writes are ordered so a mid-way
// failure leaves the Problems sheet (the source of truth for incremental
// sync) already updated.
func (s *SyncService) publish(ctx context.Context, records []domain.ProblemRecord) error {
	report := s.engine.Generate(records)

	if err := s.writer.UpdateProblems(ctx, records); err != nil {
		return fmt.Errorf("failed to update problems sheet: %w", err)
	}
	if err := s.writer.UpdateAnalytics(ctx, report.TopicAnalytics); err != nil {
		return fmt.Errorf("failed to update analytics sheet: %w", err)
	}
	if err := s.writer.UpdateProgress(ctx, report.ProgressData); err != nil {
		return fmt.Errorf("failed to update progress sheet: %w", err)
	}
	log.Println("sync: successfully updated all sheets")

	if err := s.snapshots.Replace(ctx, records); err != nil {
		log.Printf("sync: failed to store snapshot: %v", err)
	}
	return nil
}

func (s *SyncService) startRun(ctx context.Context, mode, trigger string) *domain.SyncRun {
	run := domain.NewSyncRun(mode, trigger)
	if err := s.runs.Create(ctx, run); err != nil {
		log.Printf("sync: failed to record sync run start: %v", err)
	}
	return run
}

func (s *SyncService) finishRun(ctx context.Context, run *domain.SyncRun, result *SyncResult) {
	run.Finish(domain.SyncStatusSuccess, result.TotalProblems, result.NewProblems, result.Errors)
	if err := s.runs.Update(ctx, run); err != nil {
		log.Printf("sync: failed to record sync run result: %v", err)
	}
}

func (s *SyncService) fail(ctx context.Context, run *domain.SyncRun, cause error) error {
	run.Finish(domain.SyncStatusFailed, 0, 0, 1)
	if err := s.runs.Update(ctx, run); err != nil {
		log.Printf("sync: failed to record sync run failure: %v", err)
	}
	return cause
}
