// Package output provides a service for rendering results to the console.
package output

import (
	"github.com/thirukguru/govcloud-fsx-inventory/model"
)

// NewService creates a new output service with the specified format
func NewService(format string) Service {
	f := FormatTable
	if format == "json" {
		f = FormatJSON
	}

	return &service{
		format:   f,
		renderer: &realRenderer{},
	}
}

func (s *service) RenderInventory(input model.RenderInventoryInput) error {
	if s.format == FormatJSON {
		return s.renderer.OutputInventoryJSON(input)
	}
	s.renderer.DrawInventoryTable(input.Result.Records)
	s.renderer.DrawRunSummary(input.Result)
	return nil
}

func (s *service) StopSpinner() {
	s.renderer.StopSpinner()
}
