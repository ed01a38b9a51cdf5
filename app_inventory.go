package main

import (
	"context"
	"fmt"
	"time"

	"github.com/thirukguru/govcloud-fsx-inventory/model"
	awsconfig "github.com/thirukguru/govcloud-fsx-inventory/service/aws_config"
	"github.com/thirukguru/govcloud-fsx-inventory/service/classifier"
	"github.com/thirukguru/govcloud-fsx-inventory/service/export"
	awsfsx "github.com/thirukguru/govcloud-fsx-inventory/service/fsx"
	"github.com/thirukguru/govcloud-fsx-inventory/service/orchestrator"
	awsorgs "github.com/thirukguru/govcloud-fsx-inventory/service/organizations"
	"github.com/thirukguru/govcloud-fsx-inventory/service/output"
	"github.com/thirukguru/govcloud-fsx-inventory/service/simulate"
	"github.com/thirukguru/govcloud-fsx-inventory/service/storage"
	awssts "github.com/thirukguru/govcloud-fsx-inventory/service/sts"
	"github.com/thirukguru/govcloud-fsx-inventory/shared/spinner"
)

func runInventory(flags model.Flags, versionInfo model.VersionInfo) error {
	ctx := context.Background()
	startedAt := time.Now()

	if flags.Profile != "" {
		fmt.Printf("\n→ Using AWS profile: %s\n", flags.Profile)
	} else {
		fmt.Println("\n→ Using default AWS credentials")
	}

	fmt.Println("\n→ Authenticating with AWS SSO...")
	cfgService := awsconfig.NewService()
	awsCfg, err := cfgService.GetAWSCfg(ctx, flags.Profile)
	if err != nil {
		return err
	}

	stsService := awssts.NewService(awsCfg)
	identity, err := stsService.GetCallerIdentity(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Connected as: %s\n", identity.ARN)
	fmt.Printf("✓ Account: %s\n", identity.AccountID)

	fmt.Println("\n→ Listing accounts in organization...")
	spinner.StartSpinner()
	orgService := awsorgs.NewService(awsCfg)
	accounts, err := orgService.ListAccounts(ctx)
	spinner.StopSpinner()
	if err != nil {
		return err
	}
	fmt.Printf("✓ Found %d account(s)\n", len(accounts))
	if len(accounts) == 0 {
		return fmt.Errorf("no accounts found or accessible")
	}

	orchestratorService := orchestrator.NewService(
		orchestrator.Config{RoleName: flags.RoleName},
		stsService,
		awsfsx.NewService(),
	)
	result := orchestratorService.Scan(ctx, accounts, classifier.IsGovCloudAccount)

	outputService := output.NewService(flags.Output)
	if err := outputService.RenderInventory(model.RenderInventoryInput{
		Identity: identity,
		Result:   result,
		Version:  versionInfo,
	}); err != nil {
		return err
	}

	exportService := export.NewService()
	path, err := exportService.Write(result, flags.OutputDir)
	if err != nil {
		return err
	}
	fmt.Printf("\n✓ Successfully wrote %d FSX file system(s) to %s\n", len(result.Records), path)

	if flags.Store {
		if err := storeRun(ctx, flags, versionInfo, identity, result, startedAt); err != nil {
			// History is a convenience; a broken local db never fails the run.
			fmt.Printf("⚠ Failed to store run history: %v\n", err)
		}
	}

	fmt.Println("\nScan complete!")
	return nil
}

func storeRun(ctx context.Context, flags model.Flags, versionInfo model.VersionInfo, identity model.CallerIdentity, result model.ScanResult, startedAt time.Time) error {
	store, err := storage.NewService(flags.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.SaveRun(ctx, storage.SaveRunInput{
		CallerAccountID: identity.AccountID,
		Profile:         flags.Profile,
		RoleName:        flags.RoleName,
		DurationSec:     int64(time.Since(startedAt).Seconds()),
		Version:         versionInfo.Version,
		AccountsScanned: result.AccountsScanned,
		AccountsSkipped: result.AccountsSkipped,
		WarningCount:    len(result.Warnings),
		Records:         result.Records,
	})
	return err
}

func runDryRunInventory(flags model.Flags, versionInfo model.VersionInfo) error {
	ctx := context.Background()

	fmt.Println("[DRY-RUN MODE - No actual AWS API calls will be made]")

	stsService := simulate.NewSTS()
	identity, err := stsService.GetCallerIdentity(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("✓ [DRY-RUN] Would connect as: %s\n", identity.ARN)
	fmt.Printf("✓ [DRY-RUN] Would use account: %s\n", identity.AccountID)

	fmt.Println("\n→ [DRY-RUN] Would list accounts in organization...")
	orgService := simulate.NewOrganizations()
	accounts, err := orgService.ListAccounts(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("✓ [DRY-RUN] Would find %d account(s)\n", len(accounts))
	for _, acc := range accounts {
		fmt.Printf("  - %s (%s)\n", acc.Name, acc.ID)
	}

	orchestratorService := orchestrator.NewService(
		orchestrator.Config{RoleName: flags.RoleName, DryRun: true},
		stsService,
		simulate.NewFSX(),
	)
	result := orchestratorService.Scan(ctx, accounts, classifier.IsGovCloudAccount)

	// No file is written in dry-run mode; print a preview of the would-be rows.
	fmt.Printf("\n→ [DRY-RUN] Would write %d result(s) to a timestamped CSV\n", len(result.Records))
	outputService := output.NewService(flags.Output)
	return outputService.RenderInventory(model.RenderInventoryInput{
		Identity: identity,
		Result:   result,
		Version:  versionInfo,
		DryRun:   true,
	})
}
