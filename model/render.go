package model

// RenderInventoryInput contains a completed scan for rendering.
type RenderInventoryInput struct {
	Identity CallerIdentity
	Result   ScanResult
	Version  VersionInfo
	DryRun   bool
}
