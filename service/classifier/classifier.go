// Package classifier selects the GovCloud target accounts.
package classifier

import (
	"strings"

	"github.com/thirukguru/govcloud-fsx-inventory/model"
)

// Predicate decides whether an account is a GovCloud target. It exists as a
// type so a stricter check (an account-tag lookup, for example) can replace
// the default without touching the orchestration.
type Predicate func(model.Account) bool

// IsGovCloudAccount is the default predicate. It is a naming heuristic, not
// an authoritative GovCloud membership check: an account matches when
// "govcloud" appears in its name or email, case-insensitively.
func IsGovCloudAccount(account model.Account) bool {
	return strings.Contains(strings.ToLower(account.Name), "govcloud") ||
		strings.Contains(strings.ToLower(account.Email), "govcloud")
}

// Filter returns the accounts selected by the predicate, in input order.
func Filter(accounts []model.Account, pred Predicate) []model.Account {
	var targets []model.Account
	for _, account := range accounts {
		if pred(account) {
			targets = append(targets, account)
		}
	}
	return targets
}
