/* shop.go
 * Contains the static shop catalog and item lookup with fuzzy matching on
 * item ids and display names
 */

package logic

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ShopItem is a static catalog entry. The catalog is read-only reference
// data and is not persisted.
type ShopItem struct {
	Id    string
	Name  string
	Price int64
}

var catalog = []ShopItem{
	{Id: "rolecolor", Name: "Role Color Change (mock perk)", Price: 500},
	{Id: "nickname", Name: "Nickname Change (mock perk)", Price: 250},
	{Id: "customemoji", Name: "Custom Emoji Slot (mock perk)", Price: 1000},
}

// Catalog returns the full shop listing.
func Catalog() []ShopItem {
	out := make([]ShopItem, len(catalog))
	copy(out, catalog)
	return out
}

// FindItem resolves a user-supplied query to a catalog entry. Exact id
// matches win; otherwise the query is fuzzy-matched against ids and display
// names, lowercased for better matching.
// Preconditions: Receives the raw item query from the user
// Postconditions: Returns the matched item and true, or the zero item and false
func FindItem(query string) (ShopItem, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ShopItem{}, false
	}

	lookup := make(map[string]ShopItem)
	var targets []string
	for _, item := range catalog {
		if item.Id == q {
			return item, true
		}
		id := strings.ToLower(item.Id)
		name := strings.ToLower(item.Name)
		lookup[id] = item
		lookup[name] = item
		targets = append(targets, id, name)
	}

	results := fuzzy.RankFind(q, targets)
	if len(results) == 0 {
		return ShopItem{}, false
	}
	best := results[0]
	for _, r := range results {
		if r.Target == q {
			best = r
			break
		}
	}
	return lookup[best.Target], true
}
