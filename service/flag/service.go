// Package flag parses the command line flags.
package flag

import (
	"github.com/spf13/pflag"
	"github.com/thirukguru/govcloud-fsx-inventory/model"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags.
func (s *service) GetParsedFlags() (model.Flags, error) {
	profile := pflag.StringP("profile", "p", "", "AWS profile to use (default credential chain if omitted)")
	roleName := pflag.StringP("role-name", "r", "OrganizationAccountAccessRole", "IAM role name to assume in target accounts")
	dryRun := pflag.Bool("dry-run", false, "Simulate the run without making any AWS API calls")
	outputDir := pflag.StringP("output-dir", "d", ".", "Directory for the CSV inventory file")
	output := pflag.StringP("output", "o", "table", "Console output format (table or json)")
	store := pflag.Bool("store", false, "Persist run results in local SQLite database")
	dbPath := pflag.String("db-path", "", "Custom SQLite database path (default ~/.govcloud-fsx-inventory/history.db)")
	version := pflag.BoolP("version", "v", false, "Show version information")

	pflag.Parse()

	flags := model.Flags{
		Profile:   *profile,
		RoleName:  *roleName,
		DryRun:    *dryRun,
		OutputDir: *outputDir,
		Output:    *output,
		Store:     *store,
		DBPath:    *dbPath,
		Version:   *version,
	}

	return flags, nil
}
