package awsfsx

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/fsx"
	"github.com/thirukguru/govcloud-fsx-inventory/model"
)

// DescribeFileSystemsAPIClient is the interface for the FSX client methods
// used by the service. fsx.Client satisfies it.
type DescribeFileSystemsAPIClient interface {
	DescribeFileSystems(ctx context.Context, params *fsx.DescribeFileSystemsInput, optFns ...func(*fsx.Options)) (*fsx.DescribeFileSystemsOutput, error)
}

// ClientFactory builds a regional FSX client from scoped credentials. The
// indirection keeps regional client construction mockable in tests.
type ClientFactory func(creds model.ScopedCredentials, region string) DescribeFileSystemsAPIClient

type service struct {
	newClient ClientFactory
}

// Service is the interface for the FSX inventory service.
type Service interface {
	ListFileSystems(ctx context.Context, creds model.ScopedCredentials, region string, account model.Account) ([]model.FileSystemRecord, error)
}
