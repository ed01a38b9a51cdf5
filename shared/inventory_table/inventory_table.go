// Package inventorytable renders scan results as console tables.
package inventorytable

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/thirukguru/govcloud-fsx-inventory/model"
)

// DrawInventoryTable prints an ASCII table of the discovered file systems.
func DrawInventoryTable(records []model.FileSystemRecord) {
	if len(records) == 0 {
		fmt.Println("\n⚠ No FSX file systems found in any account")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Organization Name", "GovCloud Account ID", "FSX ID", "FSX Type", "Region", "Lifecycle"})
	for _, r := range records {
		t.AppendRow(table.Row{r.AccountName, r.AccountID, r.FileSystemID, r.FileSystemType, r.Region, r.Lifecycle})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// DrawRunSummary prints the per-run account tallies.
func DrawRunSummary(result model.ScanResult) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Accounts Scanned", "Accounts Skipped", "File Systems", "Warnings"})
	t.AppendRow(table.Row{result.AccountsScanned, result.AccountsSkipped, len(result.Records), len(result.Warnings)})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
