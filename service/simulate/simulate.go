// Package simulate provides offline stand-ins for the AWS-backed services.
// The orchestration runs unchanged against them; no network access and no
// credentials are needed, and two runs produce identical output.
package simulate

import (
	"context"

	"github.com/thirukguru/govcloud-fsx-inventory/model"
	awsfsx "github.com/thirukguru/govcloud-fsx-inventory/service/fsx"
	awsorgs "github.com/thirukguru/govcloud-fsx-inventory/service/organizations"
	awssts "github.com/thirukguru/govcloud-fsx-inventory/service/sts"
)

// Identity is the fabricated commercial-session principal.
var Identity = model.CallerIdentity{
	AccountID: "123456789012",
	ARN:       "arn:aws:iam::123456789012:user/mock-user",
}

// Accounts are the fabricated organization members. All three match the
// GovCloud classifier.
var Accounts = []model.Account{
	{ID: "987654321098", Name: "Production-GovCloud", Email: "govcloud-prod@example.com", Status: "ACTIVE"},
	{ID: "876543210987", Name: "Development-GovCloud", Email: "govcloud-dev@example.com", Status: "ACTIVE"},
	{ID: "765432109876", Name: "Test-GovCloud", Email: "govcloud-test@example.com", Status: "ACTIVE"},
}

// fileSystems maps account ID and region to one fabricated file system each.
var fileSystems = map[string]map[string]model.FileSystemRecord{
	"987654321098": {
		"us-gov-west-1": {FileSystemID: "fs-0123456789abcdef0", FileSystemType: "LUSTRE", Lifecycle: "AVAILABLE"},
		"us-gov-east-1": {FileSystemID: "fs-abcdef0123456789a", FileSystemType: "WINDOWS", Lifecycle: "AVAILABLE"},
	},
	"876543210987": {
		"us-gov-west-1": {FileSystemID: "fs-1123456789abcdef0", FileSystemType: "LUSTRE", Lifecycle: "AVAILABLE"},
		"us-gov-east-1": {FileSystemID: "fs-bbcdef0123456789a", FileSystemType: "ONTAP", Lifecycle: "AVAILABLE"},
	},
	"765432109876": {
		"us-gov-west-1": {FileSystemID: "fs-2123456789abcdef0", FileSystemType: "WINDOWS", Lifecycle: "AVAILABLE"},
		"us-gov-east-1": {FileSystemID: "fs-cbcdef0123456789a", FileSystemType: "OPENZFS", Lifecycle: "AVAILABLE"},
	},
}

type stsService struct{}

// NewSTS returns a simulated STS service.
func NewSTS() awssts.Service {
	return &stsService{}
}

func (s *stsService) GetCallerIdentity(_ context.Context) (model.CallerIdentity, error) {
	return Identity, nil
}

func (s *stsService) AssumeRole(_ context.Context, accountID, _ string) (model.ScopedCredentials, error) {
	return model.ScopedCredentials{
		AccessKeyID:     "ASIAMOCK" + accountID[:8],
		SecretAccessKey: "mock-secret",
		SessionToken:    "mock-token",
	}, nil
}

type orgService struct{}

// NewOrganizations returns a simulated Organizations service.
func NewOrganizations() awsorgs.Service {
	return &orgService{}
}

func (s *orgService) ListAccounts(_ context.Context) ([]model.Account, error) {
	accounts := make([]model.Account, len(Accounts))
	copy(accounts, Accounts)
	return accounts, nil
}

type fsxService struct{}

// NewFSX returns a simulated FSX service.
func NewFSX() awsfsx.Service {
	return &fsxService{}
}

func (s *fsxService) ListFileSystems(_ context.Context, _ model.ScopedCredentials, region string, account model.Account) ([]model.FileSystemRecord, error) {
	byRegion, ok := fileSystems[account.ID]
	if !ok {
		return nil, nil
	}
	fs, ok := byRegion[region]
	if !ok {
		return nil, nil
	}
	fs.AccountID = account.ID
	fs.AccountName = account.Name
	fs.Region = region
	return []model.FileSystemRecord{fs}, nil
}
