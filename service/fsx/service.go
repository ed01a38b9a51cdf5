// Package awsfsx lists FSX file systems in the GovCloud regions.
package awsfsx

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/fsx"
	"github.com/aws/smithy-go"
	"github.com/thirukguru/govcloud-fsx-inventory/model"
)

// NewService creates a new FSX service backed by real regional clients.
func NewService() Service {
	return &service{
		newClient: func(creds model.ScopedCredentials, region string) DescribeFileSystemsAPIClient {
			cfg := aws.Config{
				Region: region,
				Credentials: credentials.NewStaticCredentialsProvider(
					creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken),
			}
			return fsx.NewFromConfig(cfg)
		},
	}
}

// NewServiceWithFactory creates an FSX service with a custom client factory.
func NewServiceWithFactory(factory ClientFactory) Service {
	return &service{newClient: factory}
}

// ListFileSystems returns every FSX file system in one account and region,
// following continuation tokens until the listing is exhausted. An empty
// result is success. Account and region on the returned records come from
// the arguments, never from the API payload.
func (s *service) ListFileSystems(ctx context.Context, creds model.ScopedCredentials, region string, account model.Account) ([]model.FileSystemRecord, error) {
	client := s.newClient(creds, region)

	var records []model.FileSystemRecord

	paginator := fsx.NewDescribeFileSystemsPaginator(client, &fsx.DescribeFileSystemsInput{})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			if isAccessDenied(err) {
				return nil, &model.PermissionError{Action: "fsx:DescribeFileSystems", Region: region, Err: err}
			}
			return nil, err
		}

		for _, fs := range page.FileSystems {
			records = append(records, model.FileSystemRecord{
				AccountID:      account.ID,
				AccountName:    account.Name,
				FileSystemID:   aws.ToString(fs.FileSystemId),
				FileSystemType: string(fs.FileSystemType),
				Region:         region,
				Lifecycle:      string(fs.Lifecycle),
			})
		}
	}

	return records, nil
}

func isAccessDenied(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "AccessDenied", "AccessDeniedException", "UnauthorizedOperation":
		return true
	}
	return false
}
