// Package historytable renders stored run history as console tables.
package historytable

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/thirukguru/govcloud-fsx-inventory/service/storage"
)

// RenderRunHistoryTable prints an ASCII table of stored runs.
func RenderRunHistoryTable(runs []storage.RunSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Run", "Timestamp", "Caller Account", "Scanned", "Skipped", "File Systems", "Warnings"})
	for _, r := range runs {
		t.AppendRow(table.Row{r.RunID, r.RunTimestamp.Format("2006-01-02 15:04:05"), r.CallerAccountID,
			r.AccountsScanned, r.AccountsSkipped, r.TotalRecords, r.WarningCount})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
