/* accounts.go
 * Contains the methods for mutating account balances: credit, debit, transfer and the daily claim
 */

package store

import (
	"time"
)

// Credit adds amount coins to id's balance and flushes the ledger.
// Preconditions: Receives an actor id and a positive amount
// Postconditions: Balance is increased and persisted, or ErrInvalidAmount is returned and nothing changes
func (s *Store) Credit(id string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensure(id).Balance += amount
	s.save()
	return nil
}

// Debit removes amount coins from id's balance and flushes the ledger.
// A debit that would take the balance negative is rejected outright.
// Preconditions: Receives an actor id and a positive amount no greater than the current balance
// Postconditions: Balance is decreased and persisted, or ErrInvalidAmount / ErrInsufficientFunds is returned and nothing changes
func (s *Store) Debit(id string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct := s.ensure(id)
	if acct.Balance < amount {
		return ErrInsufficientFunds
	}
	acct.Balance -= amount
	s.save()
	return nil
}

// Transfer moves amount coins from one account to another. The two sides
// apply under one lock hold with a single flush, so the transfer is
// all-or-nothing: if the debit side fails the credit never happens.
// Preconditions: Receives distinct sender and recipient ids and a positive amount covered by the sender's balance
// Postconditions: Both balances are updated and persisted, or a sentinel error is returned and neither changes
func (s *Store) Transfer(fromId, toId string, amount int64) error {
	if fromId == toId {
		return ErrInvalidTarget
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.ensure(fromId)
	if from.Balance < amount {
		return ErrInsufficientFunds
	}
	from.Balance -= amount
	s.ensure(toId).Balance += amount
	s.save()
	return nil
}

// ClaimDaily credits the daily reward if the cooldown has elapsed since the
// last claim, and stamps the claim time.
// Preconditions: Receives an actor id, the current time, the cooldown window and the reward amount
// Postconditions: Returns the new balance on success, or ErrCooldownActive (with time remaining) if claimed too soon
func (s *Store) ClaimDaily(id string, now time.Time, cooldown time.Duration, reward int64) (int64, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct := s.ensure(id)
	nowMs := now.UnixMilli()
	elapsed := time.Duration(nowMs-acct.LastDaily) * time.Millisecond
	if acct.LastDaily != 0 && elapsed < cooldown {
		return acct.Balance, cooldown - elapsed, ErrCooldownActive
	}

	acct.Balance += reward
	acct.LastDaily = nowMs
	s.save()
	return acct.Balance, 0, nil
}
