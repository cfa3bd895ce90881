package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	SyncModeFull        = "full"
	SyncModeIncremental = "incremental"
	SyncModeRestore     = "restore"
	SyncModeCleanup     = "cleanup"

	SyncTriggerCLI = "cli"
	SyncTriggerAPI = "api"

	SyncStatusRunning = "running"
	SyncStatusSuccess = "success"
	SyncStatusFailed  = "failed"
)

// SyncRun records one pass of the sync pipeline, successful or not.
type SyncRun struct {
	ID            string     `json:"id" db:"id"`
	Mode          string     `json:"mode" db:"mode"`
	Trigger       string     `json:"trigger" db:"trigger"`
	TotalProblems int        `json:"total_problems" db:"total_problems"`
	NewProblems   int        `json:"new_problems" db:"new_problems"`
	Errors        int        `json:"errors" db:"errors"`
	Status        string     `json:"status" db:"status"`
	StartedAt     time.Time  `json:"started_at" db:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty" db:"finished_at"`
}

func NewSyncRun(mode, trigger string) *SyncRun {
	return &SyncRun{
		ID:        uuid.NewString(),
		Mode:      mode,
		Trigger:   trigger,
		Status:    SyncStatusRunning,
		StartedAt: time.Now().UTC(),
	}
}

func (r *SyncRun) Finish(status string, total, added, errCount int) {
	now := time.Now().UTC()
	r.Status = status
	r.TotalProblems = total
	r.NewProblems = added
	r.Errors = errCount
	r.FinishedAt = &now
}
