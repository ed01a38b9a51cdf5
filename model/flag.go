package model

// Flags represents the command line flags.
type Flags struct {
	Profile   string
	RoleName  string
	OutputDir string
	Output    string
	DryRun    bool
	Store     bool
	DBPath    string
	Version   bool
}
