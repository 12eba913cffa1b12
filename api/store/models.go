/* models.go
 * Contains the structs and sentinel errors that relate to persisted ledger objects
 */

package store

import "errors"

// Ledger operation errors. Handlers recover these at the command boundary
// and turn them into a single user-facing reply.
var (
	ErrInvalidAmount     = errors.New("amount must be a positive whole number")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidTarget     = errors.New("invalid transfer target")
	ErrCooldownActive    = errors.New("cooldown active")
	ErrItemNotOwned      = errors.New("item not owned")
)

// Account is one actor's ledger record. Field tags match the on-disk
// layout: {"users": {"<id>": {"balance", "lastDaily", "inventory"}}}.
type Account struct {
	// Balance in coins. Never negative; every debit checks sufficiency first.
	Balance int64 `json:"balance"`
	// LastDaily is the epoch-millis timestamp of the last daily claim, 0 if never.
	LastDaily int64 `json:"lastDaily"`
	// Inventory holds owned item ids in acquisition order. Duplicates allowed.
	Inventory []string `json:"inventory"`
}

// ledgerFile is the full persisted document.
type ledgerFile struct {
	Users map[string]*Account `json:"users"`
}

// LeaderboardEntry is one row of the balance leaderboard.
type LeaderboardEntry struct {
	UserId  string
	Balance int64
}
