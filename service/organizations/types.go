package awsorgs

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/thirukguru/govcloud-fsx-inventory/model"
)

// ListAccountsAPIClient is the interface for the Organizations client methods
// used by the service. organizations.Client satisfies it.
type ListAccountsAPIClient interface {
	ListAccounts(ctx context.Context, params *organizations.ListAccountsInput, optFns ...func(*organizations.Options)) (*organizations.ListAccountsOutput, error)
}

type service struct {
	client ListAccountsAPIClient
}

// Service is the interface for the AWS Organizations service.
type Service interface {
	ListAccounts(ctx context.Context) ([]model.Account, error)
}
