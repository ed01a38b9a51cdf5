// Package orchestrator drives the account-by-account FSX scan.
package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/thirukguru/govcloud-fsx-inventory/model"
	"github.com/thirukguru/govcloud-fsx-inventory/service/classifier"
	awsfsx "github.com/thirukguru/govcloud-fsx-inventory/service/fsx"
	awssts "github.com/thirukguru/govcloud-fsx-inventory/service/sts"
)

// NewService creates a new orchestrator service.
func NewService(cfg Config, stsService awssts.Service, fsxService awsfsx.Service) Service {
	if len(cfg.Regions) == 0 {
		cfg.Regions = DefaultRegions
	}

	var out io.Writer = os.Stdout
	if cfg.Out != nil {
		out = cfg.Out
	}

	prefix := ""
	if cfg.DryRun {
		prefix = "[DRY-RUN] "
	}

	return &service{
		cfg:        cfg,
		stsService: stsService,
		fsxService: fsxService,
		out:        out,
		prefix:     prefix,
	}
}

// Scan classifies the accounts, assumes the configured role into each target
// and queries FSX in every configured region, sequentially. A failure in one
// account or region is recorded as a warning and never aborts the scan;
// scoped credentials are discarded once an account's regions are done.
func (s *service) Scan(ctx context.Context, accounts []model.Account, pred classifier.Predicate) model.ScanResult {
	if pred == nil {
		pred = classifier.IsGovCloudAccount
	}

	targets := classifier.Filter(accounts, pred)
	s.stepf("Scanning %d GovCloud account(s) for FSX file systems...", len(targets))

	var result model.ScanResult

	for _, account := range targets {
		s.linef("Processing: %s (%s)", account.Name, account.ID)

		creds, err := s.stsService.AssumeRole(ctx, account.ID, s.cfg.RoleName)
		if err != nil {
			s.warnf("%v", err)
			result.Warnings = append(result.Warnings, err.Error())
			result.AccountsSkipped++
			continue
		}

		found := 0
		for _, region := range s.cfg.Regions {
			records, err := s.fsxService.ListFileSystems(ctx, creds, region, account)
			if err != nil {
				s.warnf("%v", err)
				result.Warnings = append(result.Warnings, fmt.Sprintf("account %s: %v", account.ID, err))
				continue
			}
			if len(records) > 0 {
				s.okf("Found %d FSX file system(s) in %s", len(records), region)
			}
			result.Records = append(result.Records, records...)
			found += len(records)
		}

		if found == 0 {
			s.infof("No FSX file systems found")
		}
		result.AccountsScanned++
	}

	return result
}

func (s *service) stepf(format string, a ...any) {
	fmt.Fprintf(s.out, "\n→ %s%s\n", s.prefix, fmt.Sprintf(format, a...))
}

func (s *service) linef(format string, a ...any) {
	fmt.Fprintf(s.out, "\n  %s%s\n", s.prefix, fmt.Sprintf(format, a...))
}

func (s *service) okf(format string, a ...any) {
	fmt.Fprintf(s.out, "  ✓ %s%s\n", s.prefix, fmt.Sprintf(format, a...))
}

func (s *service) infof(format string, a ...any) {
	fmt.Fprintf(s.out, "  ℹ %s%s\n", s.prefix, fmt.Sprintf(format, a...))
}

func (s *service) warnf(format string, a ...any) {
	fmt.Fprintf(s.out, "  ⚠ %s%s\n", s.prefix, fmt.Sprintf(format, a...))
}
