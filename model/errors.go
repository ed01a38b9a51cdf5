package model

import "fmt"

// AuthenticationError means no valid credentials could be resolved for the
// commercial session (expired SSO token, missing profile, no default chain).
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// Remediation returns the user-facing fix for the failure.
func (e *AuthenticationError) Remediation() string {
	return "run 'aws configure sso' and then 'aws sso login --profile <your-profile>'"
}

// PermissionError means an API call was denied. Fatal when it happens at the
// organization listing stage, per-account/per-region otherwise.
type PermissionError struct {
	Action string
	Region string
	Err    error
}

func (e *PermissionError) Error() string {
	if e.Region != "" {
		return fmt.Sprintf("access denied for %s in %s: %v", e.Action, e.Region, e.Err)
	}
	return fmt.Sprintf("access denied for %s: %v", e.Action, e.Err)
}

func (e *PermissionError) Unwrap() error { return e.Err }

func (e *PermissionError) Remediation() string {
	return fmt.Sprintf("grant the calling principal the %s permission", e.Action)
}

// RoleAssumptionError means the cross-account role could not be assumed in a
// target account. Never fatal for the whole run.
type RoleAssumptionError struct {
	AccountID string
	RoleARN   string
	Err       error
}

func (e *RoleAssumptionError) Error() string {
	return fmt.Sprintf("cannot assume role in account %s: %v", e.AccountID, e.Err)
}

func (e *RoleAssumptionError) Unwrap() error { return e.Err }

func (e *RoleAssumptionError) Remediation() string {
	return fmt.Sprintf("verify that %s exists and its trust policy allows the caller, and that the account is not suspended", e.RoleARN)
}

// ExportError means the CSV artifact could not be written. Fatal.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

func (e *ExportError) Remediation() string {
	return "check that the output directory exists and is writable"
}
