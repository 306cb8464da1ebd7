package catalog

import (
	"errors"
	"fmt"

	"autozone/internal/model"
)

// ErrOutOfRange is returned by Get for an index outside 1..Size().
var ErrOutOfRange = errors.New("catalog index out of range")

// Entry is one product offered by the shop.
type Entry struct {
	Index     int
	Name      string
	UnitPrice model.Money
}

// Catalog is an immutable, 1-indexed product table.
type Catalog struct {
	entries []Entry
}

// Item is the constructor input for New.
type Item struct {
	Name      string
	UnitPrice model.Money
}

// New builds a catalog from items in the given order.
func New(items ...Item) (*Catalog, error) {
	entries := make([]Entry, 0, len(items))
	for i, it := range items {
		if it.Name == "" {
			return nil, fmt.Errorf("catalog item %d: empty name", i+1)
		}
		if it.UnitPrice < 0 {
			return nil, fmt.Errorf("catalog item %d (%s): negative price", i+1, it.Name)
		}
		entries = append(entries, Entry{Index: i + 1, Name: it.Name, UnitPrice: it.UnitPrice})
	}
	return &Catalog{entries: entries}, nil
}

// Default returns the shop's standard service list.
func Default() *Catalog {
	c, err := New(
		Item{Name: "Car Wash", UnitPrice: model.Dollars(25)},
		Item{Name: "Oil Change", UnitPrice: model.Dollars(50)},
		Item{Name: "Brake Service", UnitPrice: model.Dollars(100)},
		Item{Name: "Tire Rotation", UnitPrice: model.Dollars(20)},
		Item{Name: "Alignment", UnitPrice: model.Dollars(80)},
		Item{Name: "Battery Replacement", UnitPrice: model.Dollars(150)},
	)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Size() int { return len(c.entries) }

// Get returns the entry at the 1-based index i.
func (c *Catalog) Get(i int) (Entry, error) {
	if i < 1 || i > len(c.entries) {
		return Entry{}, fmt.Errorf("%w: %d not in 1..%d", ErrOutOfRange, i, len(c.entries))
	}
	return c.entries[i-1], nil
}

// Entries returns a copy of all entries in index order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}
