/* payout_test.go
 * Contains unit tests for payout.go
 */

package logic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoinFlip_BothOutcomesOccur(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	heads, tails := 0, 0
	for range 200 {
		if CoinFlip(rng) {
			heads++
		} else {
			tails++
		}
	}
	assert.Positive(t, heads)
	assert.Positive(t, tails)
}

func TestSlotSpin_MultiplierMatchesSymbolCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 500 {
		res := SlotSpin(rng)
		a, b, c := res.Symbols[0], res.Symbols[1], res.Symbols[2]
		switch {
		case a == b && b == c:
			assert.Equal(t, 6.0, res.Multiplier)
		case a == b || b == c || a == c:
			assert.Equal(t, 3.0, res.Multiplier)
		default:
			assert.Equal(t, 0.0, res.Multiplier)
		}
	}
}

func TestPayout_FloorsFractionalResults(t *testing.T) {
	assert.Equal(t, int64(35), Payout(10, 3.5))
	assert.Equal(t, int64(17), Payout(5, 3.5))
	assert.Equal(t, int64(0), Payout(100, 0))
	assert.Equal(t, int64(100), Payout(50, 2)) // break-even: bet was pre-debited
	assert.Equal(t, int64(7), Payout(5, 1.5))
}
