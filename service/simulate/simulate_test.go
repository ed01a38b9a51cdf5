package simulate

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/thirukguru/govcloud-fsx-inventory/model"
	"github.com/thirukguru/govcloud-fsx-inventory/service/classifier"
	"github.com/thirukguru/govcloud-fsx-inventory/service/orchestrator"
)

func TestSimulatedAccountsAllMatchClassifier(t *testing.T) {
	accounts, err := NewOrganizations().ListAccounts(context.Background())
	if err != nil {
		t.Fatalf("ListAccounts failed: %v", err)
	}
	if len(accounts) != 3 {
		t.Fatalf("expected 3 simulated accounts, got %d", len(accounts))
	}
	for _, acc := range accounts {
		if !classifier.IsGovCloudAccount(acc) {
			t.Fatalf("simulated account %s must pass the classifier", acc.ID)
		}
	}
}

func TestDryRunIsDeterministicAndWritesNothing(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	run := func() (string, int) {
		var out bytes.Buffer
		svc := orchestrator.NewService(
			orchestrator.Config{RoleName: "OrganizationAccountAccessRole", DryRun: true, Out: &out},
			NewSTS(),
			NewFSX(),
		)
		accounts, err := NewOrganizations().ListAccounts(context.Background())
		if err != nil {
			t.Fatalf("ListAccounts failed: %v", err)
		}
		result := svc.Scan(context.Background(), accounts, nil)
		return out.String(), len(result.Records)
	}

	firstOut, firstRows := run()
	secondOut, secondRows := run()

	if firstRows != 6 || secondRows != 6 {
		t.Fatalf("expected 3 accounts x 2 file systems = 6 rows, got %d and %d", firstRows, secondRows)
	}
	if firstOut != secondOut {
		t.Fatalf("dry-run output differs between runs:\n%s\n---\n%s", firstOut, secondOut)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("dry-run must not create files, found %d", len(entries))
	}
}

func TestSimulatedFileSystemsCoverBothRegions(t *testing.T) {
	fsxSvc := NewFSX()
	ctx := context.Background()

	for _, acc := range Accounts {
		for _, region := range orchestrator.DefaultRegions {
			records, err := fsxSvc.ListFileSystems(ctx, model.ScopedCredentials{}, region, acc)
			if err != nil {
				t.Fatalf("ListFileSystems failed: %v", err)
			}
			if len(records) != 1 {
				t.Fatalf("expected one file system for %s in %s, got %d", acc.ID, region, len(records))
			}
			r := records[0]
			if r.AccountID != acc.ID || r.AccountName != acc.Name || r.Region != region {
				t.Fatalf("caller context not applied: %+v", r)
			}
			if r.Lifecycle != "AVAILABLE" {
				t.Fatalf("unexpected lifecycle: %s", r.Lifecycle)
			}
		}
	}
}
