package model

import "time"

// Account is a member account of the AWS Organization.
type Account struct {
	ID     string
	Name   string
	Email  string
	Status string
}

// ScopedCredentials are the temporary credentials obtained by assuming a role
// in a target account. They live only for the duration of that account's scan.
type ScopedCredentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Expiration      time.Time
}

// CallerIdentity identifies the commercial session principal.
type CallerIdentity struct {
	AccountID string
	ARN       string
}

// FileSystemRecord is one discovered FSX file system. AccountID, AccountName
// and Region are supplied by the caller context rather than parsed from the
// API payload, so they stay consistent even when the API omits them.
type FileSystemRecord struct {
	AccountID      string `json:"account_id"`
	AccountName    string `json:"account_name"`
	FileSystemID   string `json:"fsx_id"`
	FileSystemType string `json:"fsx_type"`
	Region         string `json:"region"`
	Lifecycle      string `json:"lifecycle"`
}

// ScanResult aggregates the records discovered across all target accounts.
// Records keep account-then-region iteration order.
type ScanResult struct {
	Records         []FileSystemRecord `json:"records"`
	AccountsScanned int                `json:"accounts_scanned"`
	AccountsSkipped int                `json:"accounts_skipped"`
	Warnings        []string           `json:"warnings"`
}
