// Package awsconfig provides a service for loading AWS configuration.
package awsconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/thirukguru/govcloud-fsx-inventory/model"
)

// Organizations and STS live in the commercial partition; the fallback region
// only matters for endpoint resolution when no region is configured.
const fallbackRegion = "us-east-1"

// NewService creates a new AWS configuration service.
func NewService() Service {
	return &service{}
}

// GetAWSCfg loads the commercial-account session. It uses the named shared
// config profile when one is given (aws sso login flows), and the default
// credential chain otherwise.
func (s *service) GetAWSCfg(ctx context.Context, profile string) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error

	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, &model.AuthenticationError{Err: err}
	}

	if cfg.Region == "" {
		cfg.Region = fallbackRegion
	}

	// Force credential retrieval so an expired SSO token or a missing default
	// chain surfaces here, before any spinner starts.
	if cfg.Credentials != nil {
		if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
			return aws.Config{}, &model.AuthenticationError{Err: err}
		}
	}

	return cfg, nil
}
