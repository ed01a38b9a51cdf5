package awsorgs

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	orgtypes "github.com/aws/aws-sdk-go-v2/service/organizations/types"
	"github.com/aws/smithy-go"
	"github.com/thirukguru/govcloud-fsx-inventory/model"
)

type pagedClient struct {
	pages []*organizations.ListAccountsOutput
	calls int
}

func (c *pagedClient) ListAccounts(_ context.Context, params *organizations.ListAccountsInput, _ ...func(*organizations.Options)) (*organizations.ListAccountsOutput, error) {
	page := c.pages[c.calls]
	c.calls++
	return page, nil
}

type deniedClient struct{}

func (c *deniedClient) ListAccounts(_ context.Context, _ *organizations.ListAccountsInput, _ ...func(*organizations.Options)) (*organizations.ListAccountsOutput, error) {
	return nil, &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "not authorized"}
}

func TestListAccountsFollowsPagination(t *testing.T) {
	client := &pagedClient{pages: []*organizations.ListAccountsOutput{
		{
			Accounts: []orgtypes.Account{
				{Id: aws.String("111111111111"), Name: aws.String("one-govcloud"), Email: aws.String("one@example.com"), Status: orgtypes.AccountStatusActive},
				{Id: aws.String("222222222222"), Name: aws.String("two"), Email: aws.String("two@example.com"), Status: orgtypes.AccountStatusActive},
			},
			NextToken: aws.String("page-2"),
		},
		{
			Accounts: []orgtypes.Account{
				{Id: aws.String("333333333333"), Name: aws.String("three"), Email: aws.String("three@example.com"), Status: orgtypes.AccountStatusSuspended},
			},
		},
	}}

	svc := &service{client: client}
	accounts, err := svc.ListAccounts(context.Background())
	if err != nil {
		t.Fatalf("ListAccounts failed: %v", err)
	}

	if client.calls != 2 {
		t.Fatalf("expected 2 pages to be fetched, got %d", client.calls)
	}
	if len(accounts) != 3 {
		t.Fatalf("expected 3 accounts across pages, got %d", len(accounts))
	}
	if accounts[0].ID != "111111111111" || accounts[0].Name != "one-govcloud" {
		t.Fatalf("unexpected first account: %+v", accounts[0])
	}
	if accounts[2].Status != "SUSPENDED" {
		t.Fatalf("expected SUSPENDED status, got %s", accounts[2].Status)
	}
}

func TestListAccountsAccessDenied(t *testing.T) {
	svc := &service{client: &deniedClient{}}

	_, err := svc.ListAccounts(context.Background())
	if err == nil {
		t.Fatalf("expected an error")
	}

	var permErr *model.PermissionError
	if !errors.As(err, &permErr) {
		t.Fatalf("expected PermissionError, got %T", err)
	}
	if permErr.Action != "organizations:ListAccounts" {
		t.Fatalf("unexpected action: %s", permErr.Action)
	}
}
