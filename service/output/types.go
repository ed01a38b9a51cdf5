package output

import (
	"encoding/json"
	"os"

	"github.com/thirukguru/govcloud-fsx-inventory/model"
	inventorytable "github.com/thirukguru/govcloud-fsx-inventory/shared/inventory_table"
	"github.com/thirukguru/govcloud-fsx-inventory/shared/spinner"
)

// Format represents the output format type
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Renderer defines the interface for drawing results
type Renderer interface {
	DrawInventoryTable(records []model.FileSystemRecord)
	DrawRunSummary(result model.ScanResult)
	OutputInventoryJSON(input model.RenderInventoryInput) error
	StopSpinner()
}

type realRenderer struct{}

func (r *realRenderer) DrawInventoryTable(records []model.FileSystemRecord) {
	inventorytable.DrawInventoryTable(records)
}

func (r *realRenderer) DrawRunSummary(result model.ScanResult) {
	inventorytable.DrawRunSummary(result)
}

func (r *realRenderer) OutputInventoryJSON(input model.RenderInventoryInput) error {
	payload := struct {
		CallerAccountID string           `json:"caller_account_id"`
		CallerARN       string           `json:"caller_arn"`
		DryRun          bool             `json:"dry_run"`
		Version         string           `json:"version"`
		Scan            model.ScanResult `json:"scan"`
	}{
		CallerAccountID: input.Identity.AccountID,
		CallerARN:       input.Identity.ARN,
		DryRun:          input.DryRun,
		Version:         input.Version.Version,
		Scan:            input.Result,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func (r *realRenderer) StopSpinner() {
	spinner.StopSpinner()
}

// service is the internal implementation
type service struct {
	format   Format
	renderer Renderer
}

// Service defines the interface for output operations
type Service interface {
	RenderInventory(input model.RenderInventoryInput) error
	StopSpinner()
}
