/* poker.go
 * Contains the five card draw: deck construction, hand drawing and the hand classifier
 * with its payout table
 */

package logic

import (
	"math/rand"
	"sort"
	"strconv"
)

// Card is a single playing card. Rank runs 2..14 with 14 as the ace.
type Card struct {
	Rank int
	Suit string
}

// Suits defines the available card suits
var Suits = []string{"♠", "♥", "♦", "♣"}

var rankNames = map[int]string{11: "J", 12: "Q", 13: "K", 14: "A"}

// String returns the display form of a card, e.g. "A♠" or "10♥"
func (c Card) String() string {
	if name, ok := rankNames[c.Rank]; ok {
		return name + c.Suit
	}
	return strconv.Itoa(c.Rank) + c.Suit
}

// HandResult is the classification of a five card hand and the payout
// multiplier applied to a pre-debited bet.
type HandResult struct {
	Label      string
	Multiplier float64
}

// NewDeck constructs the full 52 card deck in suit-major order.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= 14; rank++ {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// DrawHand builds a fresh deck and draws five cards without replacement.
// No deck state is shared between calls.
// Preconditions: Receives a seeded rand source
// Postconditions: Returns five distinct cards, each remaining card equally likely at each draw
func DrawHand(rng *rand.Rand) []Card {
	deck := NewDeck()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck[:5]
}

// EvaluateHand classifies a five card hand by standard poker rank.
// The ace plays high and low: A-2-3-4-5 counts as a straight.
// Preconditions: Receives exactly five distinct cards
// Postconditions: Returns the hand label and payout multiplier
func EvaluateHand(hand []Card) HandResult {
	ranks := make([]int, len(hand))
	for i, c := range hand {
		ranks[i] = c.Rank
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	flush := true
	for _, c := range hand[1:] {
		if c.Suit != hand[0].Suit {
			flush = false
			break
		}
	}

	straight := isStraight(ranks)

	counts := make(map[int]int)
	for _, r := range ranks {
		counts[r]++
	}
	var pairs, triples, quads int
	for _, n := range counts {
		switch n {
		case 2:
			pairs++
		case 3:
			triples++
		case 4:
			quads++
		}
	}

	switch {
	case straight && flush:
		return HandResult{"Straight Flush", 8}
	case quads == 1:
		return HandResult{"Four of a Kind", 6}
	case triples == 1 && pairs == 1:
		return HandResult{"Full House", 4}
	case flush:
		return HandResult{"Flush", 3.5}
	case straight:
		return HandResult{"Straight", 3}
	case triples == 1:
		return HandResult{"Three of a Kind", 2.5}
	case pairs == 2:
		return HandResult{"Two Pair", 2}
	case pairs == 1:
		return HandResult{"One Pair", 1.5}
	default:
		return HandResult{"High Card", 0}
	}
}

// isStraight reports whether five descending-sorted ranks are consecutive,
// treating A-5-4-3-2 as the ace-low wheel.
func isStraight(desc []int) bool {
	run := true
	for i := 1; i < len(desc); i++ {
		if desc[i] != desc[i-1]-1 {
			run = false
			break
		}
	}
	if run {
		return true
	}
	// Wheel: ace counted low.
	return desc[0] == 14 && desc[1] == 5 && desc[2] == 4 && desc[3] == 3 && desc[4] == 2
}
