/* api.go
 * This file contains the public methods for interacting with this package. For consistent results,
 * functions should only be called from this file, not the sub packages for store and logic.
 */

package api

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"coinbot/api/external"
	"coinbot/api/logic"
	"coinbot/api/store"
)

// ErrUnknownItem is returned when an item query matches nothing in the shop
// catalog.
var ErrUnknownItem = errors.New("unknown item")

// Config carries the tunables the source revisions disagreed on, so the
// defaults live in exactly one place (main.go env parsing).
type Config struct {
	OwnerID         string
	StartingBalance int64
	DailyReward     int64
	DailyCooldown   time.Duration
	GambleCooldown  time.Duration
}

// API provides methods for interacting with the coinbot data layer
type API struct {
	Store   store.Interface
	Content *external.Client
	Config  Config

	rng *rand.Rand
}

// NewAPI creates a new API instance with the provided configuration
// Preconditions: Receives the ledger file path, content client and config
// Postconditions: Returns pointer to the API object, or error if the ledger cannot be loaded
func NewAPI(dataFile string, content *external.Client, cfg Config, log *slog.Logger) (*API, error) {
	s, err := store.NewStore(dataFile, cfg.StartingBalance, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &API{
		Store:   s,
		Content: content,
		Config:  cfg,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Balance returns the account for the given actor, creating it on first
// reference.
func (a *API) Balance(userId string) store.Account {
	return a.Store.GetAccount(userId)
}

// Daily claims the daily reward for the actor.
// Postconditions: Returns the new balance, or the remaining cooldown with store.ErrCooldownActive
func (a *API) Daily(userId string, now time.Time) (int64, time.Duration, error) {
	return a.Store.ClaimDaily(userId, now, a.Config.DailyCooldown, a.Config.DailyReward)
}

// Pay transfers coins between two actors, all-or-nothing.
func (a *API) Pay(fromId, toId string, amount int64) error {
	return a.Store.Transfer(fromId, toId, amount)
}

// Shop returns the static catalog.
func (a *API) Shop() []logic.ShopItem {
	return logic.Catalog()
}

// Buy resolves the item query, debits its price and appends it to the
// actor's inventory. The debit and append both persist; a failed debit
// leaves the inventory untouched.
// Postconditions: Returns the purchased item, or ErrUnknownItem / store.ErrInsufficientFunds
func (a *API) Buy(userId, query string) (logic.ShopItem, error) {
	item, ok := logic.FindItem(query)
	if !ok {
		return logic.ShopItem{}, ErrUnknownItem
	}
	if err := a.Store.Debit(userId, item.Price); err != nil {
		return logic.ShopItem{}, err
	}
	if err := a.Store.AddItem(userId, item.Id); err != nil {
		return logic.ShopItem{}, err
	}
	return item, nil
}

// UseItem consumes one copy of the item from the actor's inventory.
// Postconditions: Returns the used item, or ErrUnknownItem / store.ErrItemNotOwned
func (a *API) UseItem(userId, query string) (logic.ShopItem, error) {
	item, ok := logic.FindItem(query)
	if !ok {
		return logic.ShopItem{}, ErrUnknownItem
	}
	if err := a.Store.RemoveItem(userId, item.Id); err != nil {
		return logic.ShopItem{}, err
	}
	return item, nil
}

// Trade moves one copy of the item from one actor's inventory to another's.
func (a *API) Trade(fromId, toId, query string) (logic.ShopItem, error) {
	item, ok := logic.FindItem(query)
	if !ok {
		return logic.ShopItem{}, ErrUnknownItem
	}
	if err := a.Store.TransferItem(fromId, toId, item.Id); err != nil {
		return logic.ShopItem{}, err
	}
	return item, nil
}

// Inventory returns the actor's owned item ids in acquisition order.
func (a *API) Inventory(userId string) []string {
	return a.Store.GetAccount(userId).Inventory
}

// Leaderboard returns up to n accounts by balance descending.
func (a *API) Leaderboard(n int) []store.LeaderboardEntry {
	return a.Store.TopBalances(n)
}

// Give credits coins to an actor. Owner gating happens at the command
// boundary; this is plain ledger arithmetic.
func (a *API) Give(userId string, amount int64) error {
	return a.Store.Credit(userId, amount)
}

// Take debits coins from an actor.
func (a *API) Take(userId string, amount int64) error {
	return a.Store.Debit(userId, amount)
}

// CoinResult is the settled outcome of a coin flip gamble.
type CoinResult struct {
	Won        bool
	NewBalance int64
}

// GambleCoin settles a coin flip: the bet is debited up front and a win
// credits back double, so the balance moves by exactly ±bet.
// Postconditions: Returns the outcome, or store.ErrInvalidAmount / store.ErrInsufficientFunds with no balance change
func (a *API) GambleCoin(userId string, bet int64) (CoinResult, error) {
	if err := a.Store.Debit(userId, bet); err != nil {
		return CoinResult{}, err
	}

	won := logic.CoinFlip(a.rng)
	if won {
		if err := a.Store.Credit(userId, logic.Payout(bet, 2)); err != nil {
			return CoinResult{}, err
		}
	}
	return CoinResult{Won: won, NewBalance: a.Store.GetAccount(userId).Balance}, nil
}

// SlotsResult is the settled outcome of a slot spin gamble.
type SlotsResult struct {
	Spin       logic.SlotResult
	Payout     int64
	NewBalance int64
}

// GambleSlots settles a slot spin against a pre-debited bet.
func (a *API) GambleSlots(userId string, bet int64) (SlotsResult, error) {
	if err := a.Store.Debit(userId, bet); err != nil {
		return SlotsResult{}, err
	}

	spin := logic.SlotSpin(a.rng)
	payout := logic.Payout(bet, spin.Multiplier)
	if payout > 0 {
		if err := a.Store.Credit(userId, payout); err != nil {
			return SlotsResult{}, err
		}
	}
	return SlotsResult{
		Spin:       spin,
		Payout:     payout,
		NewBalance: a.Store.GetAccount(userId).Balance,
	}, nil
}

// PokerResult is the settled outcome of a five card draw gamble.
type PokerResult struct {
	Hand       []logic.Card
	Eval       logic.HandResult
	Payout     int64
	NewBalance int64
}

// GamblePoker draws five cards from a fresh deck and settles the payout
// table against a pre-debited bet.
func (a *API) GamblePoker(userId string, bet int64) (PokerResult, error) {
	if err := a.Store.Debit(userId, bet); err != nil {
		return PokerResult{}, err
	}

	hand := logic.DrawHand(a.rng)
	eval := logic.EvaluateHand(hand)
	payout := logic.Payout(bet, eval.Multiplier)
	if payout > 0 {
		if err := a.Store.Credit(userId, payout); err != nil {
			return PokerResult{}, err
		}
	}
	return PokerResult{
		Hand:       hand,
		Eval:       eval,
		Payout:     payout,
		NewBalance: a.Store.GetAccount(userId).Balance,
	}, nil
}
