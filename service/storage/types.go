package storage

import (
	"context"
	"time"

	"github.com/thirukguru/govcloud-fsx-inventory/model"
)

// Service defines persistence and history query operations.
type Service interface {
	SaveRun(ctx context.Context, input SaveRunInput) (int64, error)
	GetRecentRuns(limit int) ([]RunSummary, error)
	ListRecords(runID int64) ([]model.FileSystemRecord, error)
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	Vacuum(ctx context.Context) error
	Reindex(ctx context.Context) error
	Close() error
}

// SaveRunInput is the payload saved for a completed inventory run.
type SaveRunInput struct {
	RunUUID         string
	CallerAccountID string
	Profile         string
	RoleName        string
	DurationSec     int64
	Version         string
	AccountsScanned int
	AccountsSkipped int
	WarningCount    int
	Records         []model.FileSystemRecord
}

// RunSummary provides compact run metadata.
type RunSummary struct {
	RunID           int64
	RunUUID         string
	CallerAccountID string
	RunTimestamp    time.Time
	AccountsScanned int
	AccountsSkipped int
	TotalRecords    int
	WarningCount    int
}
