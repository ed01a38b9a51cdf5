// Package export writes the inventory CSV artifact.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/thirukguru/govcloud-fsx-inventory/model"
)

const filePrefix = "govcloud_fsx_inventory"

// NewService creates a new CSV export service.
func NewService() Service {
	return &service{now: time.Now}
}

// NewServiceWithClock creates an export service with a fixed clock, for tests.
func NewServiceWithClock(now func() time.Time) Service {
	return &service{now: now}
}

// Write emits the scan result to a timestamped CSV in dir and returns the
// file path. The timestamp keeps successive runs from ever overwriting each
// other. Rows keep the result's insertion order.
func (s *service) Write(result model.ScanResult, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}

	name := fmt.Sprintf("%s_%s.csv", filePrefix, s.now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", &model.ExportError{Path: path, Err: err}
	}

	w := csv.NewWriter(f)
	_ = w.Write(Header)
	for _, r := range result.Records {
		_ = w.Write([]string{r.AccountName, r.AccountID, r.FileSystemID, r.FileSystemType, r.Region, r.Lifecycle})
	}
	w.Flush()

	if err := w.Error(); err != nil {
		_ = f.Close()
		return "", &model.ExportError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &model.ExportError{Path: path, Err: err}
	}

	return path, nil
}
