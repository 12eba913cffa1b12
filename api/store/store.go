/* store.go
 * Contains the Store struct and NewStore function. The methods for this package were split into three files:
 * accounts, inventory and leaderboard. Each of these files contain methods for interacting with that
 * part of the ledger
 */

package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Store is the durable ledger of all accounts. The whole ledger lives in
// memory and is flushed to a flat JSON file after every mutation. All
// operations take the mutex and do no network I/O while holding it, so a
// command's read-modify-write can never interleave with another actor's.
type Store struct {
	mu sync.Mutex

	path            string
	startingBalance int64
	log             *slog.Logger

	users map[string]*Account
	// order records first-reference order per user id so leaderboard ties
	// break stably. Process-local; rebuilt from sorted ids on load.
	order   map[string]int
	nextSeq int
}

// NewStore initialises the ledger from the JSON file at path, creating the
// file if it does not exist.
// Preconditions: Receives the data file path, the balance new accounts start with, and a logger
// Postconditions: Returns a pointer to a loaded Store, or an error if the file is unreadable
func NewStore(path string, startingBalance int64, log *slog.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("data file path cannot be empty")
	}
	if log == nil {
		log = slog.Default()
	}

	s := &Store{
		path:            path,
		startingBalance: startingBalance,
		log:             log,
		users:           make(map[string]*Account),
		order:           make(map[string]int),
	}

	if err := s.load(); err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	return s, nil
}

// load reads the data file into memory, seeding an empty document when the
// file is missing.
func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.log.Info("ledger file missing, creating", "path", s.path)
		return s.Persist()
	}
	if err != nil {
		return err
	}

	var doc ledgerFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("ledger file %s is corrupt: %w", s.path, err)
	}
	if doc.Users != nil {
		s.users = doc.Users
	}

	// File order is lost in the map; sort ids so tie-breaking is at least
	// deterministic across restarts.
	ids := make([]string, 0, len(s.users))
	for id, acct := range s.users {
		if acct.Inventory == nil {
			acct.Inventory = []string{}
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		s.order[id] = s.nextSeq
		s.nextSeq++
	}

	s.log.Info("ledger loaded", "path", s.path, "accounts", len(s.users))
	return nil
}

// Persist serialises the full ledger to the data file. The write goes to a
// temp file in the same directory followed by a rename, so an aborted write
// never leaves a half-written ledger behind.
// Preconditions: None
// Postconditions: The data file matches the in-memory ledger, or an error is returned
func (s *Store) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	raw, err := json.MarshalIndent(ledgerFile{Users: s.users}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp ledger file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp ledger file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}
	return nil
}

// save flushes after a mutation. Persistence failures are logged and
// swallowed; the in-memory ledger stays authoritative for the rest of the
// process lifetime.
func (s *Store) save() {
	if err := s.persistLocked(); err != nil {
		s.log.Error("ledger persist failed", "path", s.path, "err", err)
	}
}

// ensure returns the account for id, creating it with defaults on first
// reference. Callers must hold the mutex.
func (s *Store) ensure(id string) *Account {
	acct, ok := s.users[id]
	if !ok {
		acct = &Account{Balance: s.startingBalance, Inventory: []string{}}
		s.users[id] = acct
		s.order[id] = s.nextSeq
		s.nextSeq++
	}
	return acct
}

// GetAccount returns a copy of the account for id, creating it with the
// configured starting balance on first reference. Never fails.
// Preconditions: Receives an actor id
// Postconditions: Returns the account value; the ledger gains a record for id if it had none
func (s *Store) GetAccount(id string) Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct := s.ensure(id)
	out := *acct
	out.Inventory = append([]string(nil), acct.Inventory...)
	return out
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}
