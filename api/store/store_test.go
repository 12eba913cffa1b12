/* store_test.go
 * Contains unit tests for store.go: loading, lazy account creation and persistence
 */

package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates a Store backed by a file in a temp dir
func newTestStore(t *testing.T, startingBalance int64) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "balances.json")
	s, err := NewStore(path, startingBalance, nil)
	require.NoError(t, err)
	return s
}

// region NewStore tests

func TestNewStore_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balances.json")
	_, err := NewStore(path, 0, nil)

	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "users")
}

func TestNewStore_EmptyPath(t *testing.T) {
	_, err := NewStore("", 0, nil)
	assert.Error(t, err)
}

func TestNewStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balances.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path, 0, nil)
	assert.ErrorContains(t, err, "corrupt")
}

func TestNewStore_LoadsExistingLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balances.json")
	seed := `{"users":{"42":{"balance":150,"lastDaily":1700000000000,"inventory":["nickname"]}}}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	s, err := NewStore(path, 0, nil)
	require.NoError(t, err)

	acct := s.GetAccount("42")
	assert.Equal(t, int64(150), acct.Balance)
	assert.Equal(t, int64(1700000000000), acct.LastDaily)
	assert.Equal(t, []string{"nickname"}, acct.Inventory)
}

// endregion

// region GetAccount tests

func TestGetAccount_LazyCreationWithStartingBalance(t *testing.T) {
	s := newTestStore(t, 100)

	acct := s.GetAccount("1")
	assert.Equal(t, int64(100), acct.Balance)
	assert.Equal(t, int64(0), acct.LastDaily)
	assert.Empty(t, acct.Inventory)
}

func TestGetAccount_ReturnsCopy(t *testing.T) {
	s := newTestStore(t, 0)
	require.NoError(t, s.AddItem("1", "rolecolor"))

	acct := s.GetAccount("1")
	acct.Inventory[0] = "mutated"
	acct.Balance = 9999

	again := s.GetAccount("1")
	assert.Equal(t, []string{"rolecolor"}, again.Inventory)
	assert.Equal(t, int64(0), again.Balance)
}

// endregion

// region Persist tests

func TestPersist_RoundTrips(t *testing.T) {
	s := newTestStore(t, 0)
	require.NoError(t, s.Credit("7", 250))
	require.NoError(t, s.AddItem("7", "customemoji"))

	// Reload from disk; the mutations above flushed synchronously.
	reloaded, err := NewStore(s.Path(), 0, nil)
	require.NoError(t, err)

	acct := reloaded.GetAccount("7")
	assert.Equal(t, int64(250), acct.Balance)
	assert.Equal(t, []string{"customemoji"}, acct.Inventory)
}

func TestPersist_LeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t, 0)
	require.NoError(t, s.Credit("7", 1))

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPersist_FailureDoesNotRollBackMemory(t *testing.T) {
	s := newTestStore(t, 0)
	require.NoError(t, s.Credit("7", 100))

	// Point the store at a nonexistent directory so the flush fails.
	s.path = filepath.Join(filepath.Dir(s.Path()), "missing", "balances.json")

	err := s.Credit("7", 50)
	assert.NoError(t, err)
	assert.Equal(t, int64(150), s.GetAccount("7").Balance)
}

// endregion
