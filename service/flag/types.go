package flag

import "github.com/thirukguru/govcloud-fsx-inventory/model"

type service struct{}

// Service is the interface for CLI flag service.
type Service interface {
	GetParsedFlags() (model.Flags, error)
}
