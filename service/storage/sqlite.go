// Package storage persists inventory run history in a local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thirukguru/govcloud-fsx-inventory/model"
	_ "modernc.org/sqlite"
)

const defaultDBPath = "~/.govcloud-fsx-inventory/history.db"

// NewService creates a SQLite-backed storage service.
func NewService(dbPath string) (Service, error) {
	resolved, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &service{db: db, dbPath: resolved}, nil
}

type service struct {
	db     *sql.DB
	dbPath string
}

func resolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		p = defaultDBPath
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Clean(p), nil
}

func (s *service) SaveRun(ctx context.Context, input SaveRunInput) (int64, error) {
	if input.CallerAccountID == "" {
		return 0, errors.New("caller account id is required")
	}
	if input.RunUUID == "" {
		input.RunUUID = fmt.Sprintf("run-%d", time.Now().UnixNano())
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (
			run_uuid, caller_account_id, run_duration,
			accounts_scanned, accounts_skipped, total_records, warning_count,
			cli_version, run_profile, role_name
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, input.RunUUID, input.CallerAccountID, input.DurationSec,
		input.AccountsScanned, input.AccountsSkipped, len(input.Records), input.WarningCount,
		input.Version, input.Profile, input.RoleName)
	if err != nil {
		return 0, err
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, r := range input.Records {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO records (run_id, account_id, account_name, fsx_id, fsx_type, region, lifecycle)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, runID, r.AccountID, r.AccountName, r.FileSystemID, r.FileSystemType, r.Region, r.Lifecycle); err != nil {
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

func (s *service) GetRecentRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT run_id, run_uuid, caller_account_id, run_timestamp,
		       accounts_scanned, accounts_skipped, total_records, warning_count
		FROM runs
		ORDER BY run_timestamp DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.RunID, &r.RunUUID, &r.CallerAccountID, &r.RunTimestamp,
			&r.AccountsScanned, &r.AccountsSkipped, &r.TotalRecords, &r.WarningCount); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *service) ListRecords(runID int64) ([]model.FileSystemRecord, error) {
	rows, err := s.db.Query(`
		SELECT account_id, account_name, fsx_id, fsx_type, region, lifecycle
		FROM records
		WHERE run_id = ?
		ORDER BY record_id
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.FileSystemRecord
	for rows.Next() {
		var r model.FileSystemRecord
		if err := rows.Scan(&r.AccountID, &r.AccountName, &r.FileSystemID, &r.FileSystemType, &r.Region, &r.Lifecycle); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *service) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, errors.New("days must be positive")
	}
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM runs
		WHERE run_timestamp < datetime('now', ?)
	`, fmt.Sprintf("-%d days", days))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *service) Vacuum(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "VACUUM;")
	return err
}

func (s *service) Reindex(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "REINDEX;")
	return err
}

func (s *service) Close() error {
	return s.db.Close()
}
