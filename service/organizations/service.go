// Package awsorgs lists the member accounts of the AWS Organization.
package awsorgs

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/aws/smithy-go"
	"github.com/thirukguru/govcloud-fsx-inventory/model"
)

// NewService creates a new Organizations service.
func NewService(awsconfig aws.Config) Service {
	client := organizations.NewFromConfig(awsconfig)

	return &service{
		client: client,
	}
}

// ListAccounts returns every member account, following continuation tokens
// until the listing is exhausted.
func (s *service) ListAccounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account

	paginator := organizations.NewListAccountsPaginator(s.client, &organizations.ListAccountsInput{})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			if isAccessDenied(err) {
				return nil, &model.PermissionError{Action: "organizations:ListAccounts", Err: err}
			}
			return nil, err
		}

		for _, account := range page.Accounts {
			accounts = append(accounts, model.Account{
				ID:     aws.ToString(account.Id),
				Name:   aws.ToString(account.Name),
				Email:  aws.ToString(account.Email),
				Status: string(account.Status),
			})
		}
	}

	return accounts, nil
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
