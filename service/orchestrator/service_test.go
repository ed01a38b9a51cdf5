package orchestrator

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/thirukguru/govcloud-fsx-inventory/model"
	"github.com/thirukguru/govcloud-fsx-inventory/service/classifier"
)

type fakeSTS struct {
	failAccounts map[string]bool
}

func (f *fakeSTS) GetCallerIdentity(_ context.Context) (model.CallerIdentity, error) {
	return model.CallerIdentity{AccountID: "111111111111", ARN: "arn:aws:iam::111111111111:user/test"}, nil
}

func (f *fakeSTS) AssumeRole(_ context.Context, accountID, roleName string) (model.ScopedCredentials, error) {
	if f.failAccounts[accountID] {
		return model.ScopedCredentials{}, &model.RoleAssumptionError{
			AccountID: accountID,
			RoleARN:   fmt.Sprintf("arn:aws-us-gov:iam::%s:role/%s", accountID, roleName),
			Err:       fmt.Errorf("AccessDenied"),
		}
	}
	return model.ScopedCredentials{AccessKeyID: "AKIA" + accountID}, nil
}

type fakeFSX struct {
	perRegion   map[string]int
	failRegions map[string]bool
	seenRegions []string
}

func (f *fakeFSX) ListFileSystems(_ context.Context, _ model.ScopedCredentials, region string, account model.Account) ([]model.FileSystemRecord, error) {
	f.seenRegions = append(f.seenRegions, region)
	if f.failRegions[region] {
		return nil, &model.PermissionError{Action: "fsx:DescribeFileSystems", Region: region, Err: fmt.Errorf("AccessDeniedException")}
	}

	var records []model.FileSystemRecord
	for i := 0; i < f.perRegion[region]; i++ {
		records = append(records, model.FileSystemRecord{
			AccountID:    account.ID,
			AccountName:  account.Name,
			FileSystemID: fmt.Sprintf("fs-%s-%s-%d", account.ID, region, i),
			Region:       region,
			Lifecycle:    "AVAILABLE",
		})
	}
	return records, nil
}

func govAccounts(ids ...string) []model.Account {
	var accounts []model.Account
	for _, id := range ids {
		accounts = append(accounts, model.Account{ID: id, Name: "acct-" + id + "-govcloud", Status: "ACTIVE"})
	}
	return accounts
}

func TestScanPartialFailureContinues(t *testing.T) {
	var out bytes.Buffer
	sts := &fakeSTS{failAccounts: map[string]bool{"222222222222": true}}
	fsx := &fakeFSX{perRegion: map[string]int{"us-gov-west-1": 1, "us-gov-east-1": 1}}

	svc := NewService(Config{RoleName: "OrganizationAccountAccessRole", Out: &out}, sts, fsx)
	result := svc.Scan(context.Background(), govAccounts("222222222222", "333333333333", "444444444444"), nil)

	if result.AccountsSkipped != 1 || result.AccountsScanned != 2 {
		t.Fatalf("expected 2 scanned / 1 skipped, got %d / %d", result.AccountsScanned, result.AccountsSkipped)
	}
	if len(result.Records) != 4 {
		t.Fatalf("expected 4 records from the two reachable accounts, got %d", len(result.Records))
	}
	for _, r := range result.Records {
		if r.AccountID == "222222222222" {
			t.Fatalf("unreachable account must contribute zero records")
		}
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "222222222222") {
		t.Fatalf("expected a warning naming the failed account, got %v", result.Warnings)
	}
	if !strings.Contains(out.String(), "⚠") {
		t.Fatalf("expected a console warning marker")
	}
}

func TestScanOnlyQueriesGovCloudRegions(t *testing.T) {
	sts := &fakeSTS{}
	fsx := &fakeFSX{perRegion: map[string]int{"us-gov-west-1": 2, "us-gov-east-1": 1}}

	svc := NewService(Config{Out: &bytes.Buffer{}}, sts, fsx)
	result := svc.Scan(context.Background(), govAccounts("555555555555"), nil)

	allowed := map[string]bool{"us-gov-west-1": true, "us-gov-east-1": true}
	for _, region := range fsx.seenRegions {
		if !allowed[region] {
			t.Fatalf("unexpected region queried: %s", region)
		}
	}
	for _, r := range result.Records {
		if !allowed[r.Region] {
			t.Fatalf("unexpected region in record: %s", r.Region)
		}
	}
}

func TestScanKeepsAccountThenRegionOrder(t *testing.T) {
	sts := &fakeSTS{}
	fsx := &fakeFSX{perRegion: map[string]int{"us-gov-west-1": 1, "us-gov-east-1": 1}}

	svc := NewService(Config{Out: &bytes.Buffer{}}, sts, fsx)
	result := svc.Scan(context.Background(), govAccounts("111111111111", "222222222222"), nil)

	want := []string{
		"fs-111111111111-us-gov-west-1-0",
		"fs-111111111111-us-gov-east-1-0",
		"fs-222222222222-us-gov-west-1-0",
		"fs-222222222222-us-gov-east-1-0",
	}
	if len(result.Records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(result.Records))
	}
	for i, id := range want {
		if result.Records[i].FileSystemID != id {
			t.Fatalf("record %d out of order: expected %s, got %s", i, id, result.Records[i].FileSystemID)
		}
	}
}

func TestScanRegionFailureDoesNotSkipAccount(t *testing.T) {
	var out bytes.Buffer
	sts := &fakeSTS{}
	fsx := &fakeFSX{
		perRegion:   map[string]int{"us-gov-west-1": 1},
		failRegions: map[string]bool{"us-gov-east-1": true},
	}

	svc := NewService(Config{Out: &out}, sts, fsx)
	result := svc.Scan(context.Background(), govAccounts("666666666666"), nil)

	if result.AccountsScanned != 1 || result.AccountsSkipped != 0 {
		t.Fatalf("region failure must not skip the account: %+v", result)
	}
	if len(result.Records) != 1 || result.Records[0].Region != "us-gov-west-1" {
		t.Fatalf("expected the reachable region's record, got %+v", result.Records)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "us-gov-east-1") {
		t.Fatalf("expected a warning naming the failed region, got %v", result.Warnings)
	}
}

func TestScanExcludesNonGovCloudAccounts(t *testing.T) {
	sts := &fakeSTS{}
	fsx := &fakeFSX{perRegion: map[string]int{"us-gov-west-1": 1, "us-gov-east-1": 1}}

	accounts := []model.Account{
		{ID: "111111111111", Name: "commercial-prod", Status: "ACTIVE"},
		{ID: "222222222222", Name: "prod-govcloud", Status: "ACTIVE"},
	}

	svc := NewService(Config{Out: &bytes.Buffer{}}, sts, fsx)
	result := svc.Scan(context.Background(), accounts, classifier.IsGovCloudAccount)

	for _, r := range result.Records {
		if r.AccountID != "222222222222" {
			t.Fatalf("record from unclassified account: %+v", r)
		}
	}
	if result.AccountsScanned != 1 {
		t.Fatalf("expected exactly the classified account to be scanned, got %d", result.AccountsScanned)
	}
}

func TestScanDryRunPrefixesNarration(t *testing.T) {
	var out bytes.Buffer
	sts := &fakeSTS{}
	fsx := &fakeFSX{perRegion: map[string]int{"us-gov-west-1": 1, "us-gov-east-1": 1}}

	svc := NewService(Config{DryRun: true, Out: &out}, sts, fsx)
	svc.Scan(context.Background(), govAccounts("777777777777"), nil)

	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.Contains(line, "[DRY-RUN] ") {
			t.Fatalf("narration line missing dry-run prefix: %q", line)
		}
	}
}
