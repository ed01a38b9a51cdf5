package export

import (
	"time"

	"github.com/thirukguru/govcloud-fsx-inventory/model"
)

// Header is the fixed CSV column schema, in order.
var Header = []string{"Organization Name", "GovCloud Account ID", "FSX ID", "FSX Type", "Region", "Lifecycle"}

type service struct {
	now func() time.Time
}

// Service is the interface for the CSV exporter.
type Service interface {
	Write(result model.ScanResult, dir string) (string, error)
}
