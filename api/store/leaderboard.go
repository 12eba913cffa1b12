/* leaderboard.go
 * Contains the methods for ranking accounts by balance
 */

package store

import "sort"

// TopBalances returns up to n accounts ordered by balance descending.
// Ties break by first-reference order (stable sort), so an account that
// reached a balance earlier ranks ahead of a later one at the same amount.
// Preconditions: Receives the maximum number of entries to return
// Postconditions: Returns a slice of at most n leaderboard entries
func (s *Store) TopBalances(n int) []LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]LeaderboardEntry, 0, len(s.users))
	for id, acct := range s.users {
		entries = append(entries, LeaderboardEntry{UserId: id, Balance: acct.Balance})
	}

	// Pre-sort by insertion order so the stable balance sort preserves it
	// among equal balances.
	sort.Slice(entries, func(i, j int) bool {
		return s.order[entries[i].UserId] < s.order[entries[j].UserId]
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Balance > entries[j].Balance
	})

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
