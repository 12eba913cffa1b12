/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 */

package store

import "time"

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	GetAccount(id string) Account
	Credit(id string, amount int64) error
	Debit(id string, amount int64) error
	Transfer(fromId, toId string, amount int64) error
	ClaimDaily(id string, now time.Time, cooldown time.Duration, reward int64) (int64, time.Duration, error)
	AddItem(id, itemId string) error
	RemoveItem(id, itemId string) error
	TransferItem(fromId, toId, itemId string) error
	TopBalances(n int) []LeaderboardEntry
	Persist() error
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)
