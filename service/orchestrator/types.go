package orchestrator

import (
	"context"
	"io"

	"github.com/thirukguru/govcloud-fsx-inventory/model"
	"github.com/thirukguru/govcloud-fsx-inventory/service/classifier"
	awsfsx "github.com/thirukguru/govcloud-fsx-inventory/service/fsx"
	awssts "github.com/thirukguru/govcloud-fsx-inventory/service/sts"
)

// DefaultRegions are the two GovCloud regions the scanner queries. No other
// region ever appears in a result.
var DefaultRegions = []string{"us-gov-west-1", "us-gov-east-1"}

// Config carries the run configuration explicitly; the orchestrator holds no
// mutable run state of its own.
type Config struct {
	RoleName string
	Regions  []string

	// DryRun only changes the narration prefix; callers swap in simulated
	// services to keep the control flow identical.
	DryRun bool

	// Out receives the console narration. Defaults to os.Stdout.
	Out io.Writer
}

type service struct {
	cfg        Config
	stsService awssts.Service
	fsxService awsfsx.Service
	out        io.Writer
	prefix     string
}

// Service is the interface for the scan orchestrator.
type Service interface {
	Scan(ctx context.Context, accounts []model.Account, pred classifier.Predicate) model.ScanResult
}
