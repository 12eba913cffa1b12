/* accounts_test.go
 * Contains unit tests for accounts.go: credit, debit, transfer and daily claims
 */

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// region Credit tests

func TestCredit_IncreasesBalance(t *testing.T) {
	s := newTestStore(t, 0)

	require.NoError(t, s.Credit("1", 100))
	require.NoError(t, s.Credit("1", 50))

	assert.Equal(t, int64(150), s.GetAccount("1").Balance)
}

func TestCredit_RejectsNonPositiveAmounts(t *testing.T) {
	s := newTestStore(t, 0)

	assert.ErrorIs(t, s.Credit("1", 0), ErrInvalidAmount)
	assert.ErrorIs(t, s.Credit("1", -5), ErrInvalidAmount)
	assert.Equal(t, int64(0), s.GetAccount("1").Balance)
}

// endregion

// region Debit tests

func TestDebit_DecreasesBalance(t *testing.T) {
	s := newTestStore(t, 0)
	require.NoError(t, s.Credit("1", 100))

	require.NoError(t, s.Debit("1", 40))
	assert.Equal(t, int64(60), s.GetAccount("1").Balance)
}

func TestDebit_NeverGoesNegative(t *testing.T) {
	s := newTestStore(t, 0)
	require.NoError(t, s.Credit("1", 30))

	err := s.Debit("1", 31)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(30), s.GetAccount("1").Balance)
}

func TestDebit_ExactBalanceSucceeds(t *testing.T) {
	s := newTestStore(t, 0)
	require.NoError(t, s.Credit("1", 30))

	require.NoError(t, s.Debit("1", 30))
	assert.Equal(t, int64(0), s.GetAccount("1").Balance)
}

func TestDebit_RejectsNonPositiveAmounts(t *testing.T) {
	s := newTestStore(t, 0)

	assert.ErrorIs(t, s.Debit("1", 0), ErrInvalidAmount)
	assert.ErrorIs(t, s.Debit("1", -1), ErrInvalidAmount)
}

// endregion

// region Transfer tests

func TestTransfer_MovesFunds(t *testing.T) {
	s := newTestStore(t, 0)
	require.NoError(t, s.Credit("a", 100))

	require.NoError(t, s.Transfer("a", "b", 60))

	assert.Equal(t, int64(40), s.GetAccount("a").Balance)
	assert.Equal(t, int64(60), s.GetAccount("b").Balance)
}

func TestTransfer_AllOrNothing(t *testing.T) {
	s := newTestStore(t, 0)
	require.NoError(t, s.Credit("a", 50))

	err := s.Transfer("a", "b", 51)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(50), s.GetAccount("a").Balance)
	assert.Equal(t, int64(0), s.GetAccount("b").Balance)
}

func TestTransfer_SelfTargetRejected(t *testing.T) {
	s := newTestStore(t, 0)
	require.NoError(t, s.Credit("a", 50))

	err := s.Transfer("a", "a", 10)
	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.Equal(t, int64(50), s.GetAccount("a").Balance)
}

func TestTransfer_RejectsNonPositiveAmounts(t *testing.T) {
	s := newTestStore(t, 0)

	assert.ErrorIs(t, s.Transfer("a", "b", 0), ErrInvalidAmount)
}

// endregion

// region ClaimDaily tests

func TestClaimDaily_FirstClaimSucceeds(t *testing.T) {
	s := newTestStore(t, 0)
	now := time.UnixMilli(1700000000000)

	balance, _, err := s.ClaimDaily("1", now, 24*time.Hour, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)
	assert.Equal(t, now.UnixMilli(), s.GetAccount("1").LastDaily)
}

func TestClaimDaily_CooldownBoundary(t *testing.T) {
	s := newTestStore(t, 0)
	cooldown := 24 * time.Hour
	start := time.UnixMilli(1700000000000)

	_, _, err := s.ClaimDaily("1", start, cooldown, 500)
	require.NoError(t, err)

	// One millisecond before the window closes: rejected, balance unchanged.
	_, remaining, err := s.ClaimDaily("1", start.Add(cooldown-time.Millisecond), cooldown, 500)
	assert.ErrorIs(t, err, ErrCooldownActive)
	assert.Equal(t, time.Millisecond, remaining)
	assert.Equal(t, int64(500), s.GetAccount("1").Balance)

	// Exactly at the window: credited exactly once more.
	balance, _, err := s.ClaimDaily("1", start.Add(cooldown), cooldown, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)
}

// endregion
