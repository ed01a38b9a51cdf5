// Package awssts provides a service for interacting with AWS STS.
package awssts

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/thirukguru/govcloud-fsx-inventory/model"
)

// NewService creates a new STS service.
func NewService(awsconfig aws.Config) Service {
	client := sts.NewFromConfig(awsconfig)

	return &service{
		client: client,
	}
}

// GetCallerIdentity validates the commercial session and returns the caller.
func (s *service) GetCallerIdentity(ctx context.Context) (model.CallerIdentity, error) {
	input := &sts.GetCallerIdentityInput{}

	out, err := s.client.GetCallerIdentity(ctx, input)
	if err != nil {
		return model.CallerIdentity{}, &model.AuthenticationError{Err: err}
	}

	return model.CallerIdentity{
		AccountID: aws.ToString(out.Account),
		ARN:       aws.ToString(out.Arn),
	}, nil
}

// AssumeRole exchanges the commercial session for temporary credentials in a
// target GovCloud account. Duration is the SDK default.
func (s *service) AssumeRole(ctx context.Context, accountID, roleName string) (model.ScopedCredentials, error) {
	roleARN := GovCloudRoleARN(accountID, roleName)

	out, err := s.client.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(roleARN),
		RoleSessionName: aws.String(fmt.Sprintf("fsx-inventory-%s", accountID)),
	})
	if err != nil {
		return model.ScopedCredentials{}, &model.RoleAssumptionError{AccountID: accountID, RoleARN: roleARN, Err: err}
	}

	creds := out.Credentials
	if creds == nil {
		return model.ScopedCredentials{}, &model.RoleAssumptionError{AccountID: accountID, RoleARN: roleARN, Err: fmt.Errorf("empty credentials in response")}
	}

	scoped := model.ScopedCredentials{
		AccessKeyID:     aws.ToString(creds.AccessKeyId),
		SecretAccessKey: aws.ToString(creds.SecretAccessKey),
		SessionToken:    aws.ToString(creds.SessionToken),
	}
	if creds.Expiration != nil {
		scoped.Expiration = *creds.Expiration
	}

	return scoped, nil
}

// GovCloudRoleARN builds the role ARN in the GovCloud partition.
func GovCloudRoleARN(accountID, roleName string) string {
	return fmt.Sprintf("arn:aws-us-gov:iam::%s:role/%s", accountID, roleName)
}
