/* inventory.go
 * Contains the methods for interacting with account inventories
 */

package store

// AddItem appends itemId to id's inventory. Duplicates are allowed; each
// purchase appends another copy.
// Preconditions: Receives an actor id and an item id
// Postconditions: The item is appended and the ledger persisted
func (s *Store) AddItem(id, itemId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct := s.ensure(id)
	acct.Inventory = append(acct.Inventory, itemId)
	s.save()
	return nil
}

// RemoveItem removes the first matching itemId from id's inventory.
// Preconditions: Receives an actor id and an item id present in the inventory
// Postconditions: The first match is removed and the ledger persisted, or ErrItemNotOwned is returned
func (s *Store) RemoveItem(id, itemId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct := s.ensure(id)
	for i, owned := range acct.Inventory {
		if owned == itemId {
			acct.Inventory = append(acct.Inventory[:i], acct.Inventory[i+1:]...)
			s.save()
			return nil
		}
	}
	return ErrItemNotOwned
}

// TransferItem moves one copy of itemId from one inventory to another,
// all-or-nothing under a single lock hold.
// Preconditions: Receives distinct sender and recipient ids and an item id the sender owns
// Postconditions: The item moves between inventories and the ledger is persisted, or a sentinel error is returned and neither changes
func (s *Store) TransferItem(fromId, toId, itemId string) error {
	if fromId == toId {
		return ErrInvalidTarget
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.ensure(fromId)
	found := -1
	for i, owned := range from.Inventory {
		if owned == itemId {
			found = i
			break
		}
	}
	if found < 0 {
		return ErrItemNotOwned
	}
	from.Inventory = append(from.Inventory[:found], from.Inventory[found+1:]...)
	to := s.ensure(toId)
	to.Inventory = append(to.Inventory, itemId)
	s.save()
	return nil
}
