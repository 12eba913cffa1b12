/* payout.go
 * Contains the stateless gamble outcome functions: coin flip, slot spin and bet settlement.
 * Nothing in this package touches the ledger; callers debit the bet up front and credit
 * the computed payout back.
 */

package logic

import (
	"math"
	"math/rand"
)

// slotSymbols is the fixed reel symbol set. Each reel position draws
// uniformly and independently from this set.
var slotSymbols = []string{"🍒", "🍋", "🍊", "🔔", "⭐", "💎"}

const (
	slotTripleMultiplier = 6.0
	slotDoubleMultiplier = 3.0
)

// SlotResult is the outcome of one slot spin.
type SlotResult struct {
	Symbols    [3]string
	Multiplier float64
}

// CoinFlip returns true on heads, uniform 50/50.
func CoinFlip(rng *rand.Rand) bool {
	return rng.Intn(2) == 0
}

// SlotSpin draws three symbols and returns the payout multiplier:
// 6x for three of a kind, 3x for exactly two matching, otherwise 0.
// Preconditions: Receives a seeded rand source
// Postconditions: Returns the drawn symbols and their multiplier
func SlotSpin(rng *rand.Rand) SlotResult {
	var res SlotResult
	for i := range res.Symbols {
		res.Symbols[i] = slotSymbols[rng.Intn(len(slotSymbols))]
	}

	a, b, c := res.Symbols[0], res.Symbols[1], res.Symbols[2]
	switch {
	case a == b && b == c:
		res.Multiplier = slotTripleMultiplier
	case a == b || b == c || a == c:
		res.Multiplier = slotDoubleMultiplier
	}
	return res
}

// Payout converts a multiplier into the amount credited back on a bet that
// was already debited. A multiplier of exactly 2 is break-even.
func Payout(bet int64, multiplier float64) int64 {
	return int64(math.Floor(float64(bet) * multiplier))
}
