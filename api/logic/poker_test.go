/* poker_test.go
 * Contains unit tests for poker.go: deck construction, drawing and hand classification
 */

package logic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hand(cards ...Card) []Card { return cards }

// region EvaluateHand tests

func TestEvaluateHand_StraightFlush(t *testing.T) {
	// A K Q J 10 of spades
	res := EvaluateHand(hand(
		Card{14, "♠"}, Card{13, "♠"}, Card{12, "♠"}, Card{11, "♠"}, Card{10, "♠"},
	))
	assert.Equal(t, HandResult{"Straight Flush", 8}, res)
}

func TestEvaluateHand_AceLowStraightFlush(t *testing.T) {
	res := EvaluateHand(hand(
		Card{14, "♣"}, Card{2, "♣"}, Card{3, "♣"}, Card{4, "♣"}, Card{5, "♣"},
	))
	assert.Equal(t, HandResult{"Straight Flush", 8}, res)
}

func TestEvaluateHand_FourOfAKind(t *testing.T) {
	res := EvaluateHand(hand(
		Card{9, "♠"}, Card{9, "♥"}, Card{9, "♦"}, Card{9, "♣"}, Card{2, "♠"},
	))
	assert.Equal(t, HandResult{"Four of a Kind", 6}, res)
}

func TestEvaluateHand_FullHouse(t *testing.T) {
	res := EvaluateHand(hand(
		Card{2, "♣"}, Card{2, "♦"}, Card{2, "♥"}, Card{5, "♠"}, Card{5, "♣"},
	))
	assert.Equal(t, HandResult{"Full House", 4}, res)
}

func TestEvaluateHand_Flush(t *testing.T) {
	res := EvaluateHand(hand(
		Card{2, "♥"}, Card{7, "♥"}, Card{9, "♥"}, Card{11, "♥"}, Card{13, "♥"},
	))
	assert.Equal(t, HandResult{"Flush", 3.5}, res)
}

func TestEvaluateHand_Straight(t *testing.T) {
	res := EvaluateHand(hand(
		Card{6, "♠"}, Card{7, "♥"}, Card{8, "♦"}, Card{9, "♣"}, Card{10, "♠"},
	))
	assert.Equal(t, HandResult{"Straight", 3}, res)
}

func TestEvaluateHand_AceLowStraight(t *testing.T) {
	res := EvaluateHand(hand(
		Card{14, "♠"}, Card{2, "♥"}, Card{3, "♦"}, Card{4, "♣"}, Card{5, "♠"},
	))
	assert.Equal(t, HandResult{"Straight", 3}, res)
}

func TestEvaluateHand_ThreeOfAKind(t *testing.T) {
	res := EvaluateHand(hand(
		Card{8, "♠"}, Card{8, "♥"}, Card{8, "♦"}, Card{2, "♣"}, Card{5, "♠"},
	))
	assert.Equal(t, HandResult{"Three of a Kind", 2.5}, res)
}

func TestEvaluateHand_TwoPair(t *testing.T) {
	res := EvaluateHand(hand(
		Card{8, "♠"}, Card{8, "♥"}, Card{5, "♦"}, Card{5, "♣"}, Card{2, "♠"},
	))
	assert.Equal(t, HandResult{"Two Pair", 2}, res)
}

func TestEvaluateHand_OnePair(t *testing.T) {
	res := EvaluateHand(hand(
		Card{8, "♠"}, Card{8, "♥"}, Card{4, "♦"}, Card{5, "♣"}, Card{2, "♠"},
	))
	assert.Equal(t, HandResult{"One Pair", 1.5}, res)
}

func TestEvaluateHand_HighCard(t *testing.T) {
	// 2 5 9 J A mixed suits: no pair, no flush, no straight
	res := EvaluateHand(hand(
		Card{2, "♣"}, Card{5, "♦"}, Card{9, "♥"}, Card{11, "♠"}, Card{14, "♣"},
	))
	assert.Equal(t, HandResult{"High Card", 0}, res)
}

func TestEvaluateHand_AroundTheCornerIsNotAStraight(t *testing.T) {
	// Q K A 2 3 does not wrap
	res := EvaluateHand(hand(
		Card{12, "♠"}, Card{13, "♥"}, Card{14, "♦"}, Card{2, "♣"}, Card{3, "♠"},
	))
	assert.Equal(t, HandResult{"High Card", 0}, res)
}

// endregion

// region Deck tests

func TestNewDeck_Has52DistinctCards(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, 52)

	seen := make(map[Card]bool)
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate card %v", c)
		seen[c] = true
		assert.GreaterOrEqual(t, c.Rank, 2)
		assert.LessOrEqual(t, c.Rank, 14)
	}
}

func TestDrawHand_FiveDistinctCards(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 50 {
		h := DrawHand(rng)
		require.Len(t, h, 5)
		seen := make(map[Card]bool)
		for _, c := range h {
			assert.False(t, seen[c])
			seen[c] = true
		}
	}
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♠", Card{14, "♠"}.String())
	assert.Equal(t, "10♥", Card{10, "♥"}.String())
	assert.Equal(t, "J♦", Card{11, "♦"}.String())
}

// endregion
