// Package main is the entry point for the govcloud-fsx-inventory application.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thirukguru/govcloud-fsx-inventory/model"
	"github.com/thirukguru/govcloud-fsx-inventory/service/flag"
	"github.com/thirukguru/govcloud-fsx-inventory/shared/banner"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// remediable errors carry a user-facing fix alongside the failure itself.
type remediable interface {
	Remediation() string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var r remediable
		if errors.As(err, &r) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", r.Remediation())
		}
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "db", "history":
			return runStorageCommand(os.Args[1], os.Args[2:])
		}
	}

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}

	if flags.Version {
		fmt.Printf("govcloud-fsx-inventory version %s\n", versionInfo.Version)
		fmt.Printf("commit: %s\n", versionInfo.Commit)
		fmt.Printf("built at: %s\n", versionInfo.Date)
		return nil
	}

	if flags.Output != "json" {
		banner.DrawBannerTitle()
	}

	if flags.DryRun {
		return runDryRunInventory(flags, versionInfo)
	}

	return runInventory(flags, versionInfo)
}
