package state

import (
	"encoding/json"
	"fmt"
	"sort"

	"autozone/internal/model"
)

// Store abstracts the line-item backend of an order. Keys are product names.
// Range visits items in ascending name order on every backend.
type Store interface {
	// Merge inserts item, or adds item.Qty to the existing line of the same
	// name. The stored unit price is never overwritten.
	Merge(item model.LineItem) (model.LineItem, error)
	Get(name string) (model.LineItem, bool)
	Range(fn func(item model.LineItem) error) error
	Len() int
	Close() error
}

func encodeItem(li model.LineItem) ([]byte, error) { return json.Marshal(li) }
func decodeItem(val []byte) (model.LineItem, error) {
	var li model.LineItem
	if err := json.Unmarshal(val, &li); err != nil {
		return model.LineItem{}, err
	}
	return li, nil
}

func merge(cur model.LineItem, found bool, in model.LineItem) model.LineItem {
	if !found {
		return in
	}
	cur.Qty += in.Qty
	return cur
}

// InMemoryStore is a plain map store.
type InMemoryStore struct {
	data map[string]model.LineItem
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{data: make(map[string]model.LineItem)}
}

func (s *InMemoryStore) Merge(item model.LineItem) (model.LineItem, error) {
	cur, ok := s.data[item.Name]
	out := merge(cur, ok, item)
	s.data[item.Name] = out
	return out, nil
}

func (s *InMemoryStore) Get(name string) (model.LineItem, bool) {
	li, ok := s.data[name]
	return li, ok
}

func (s *InMemoryStore) Range(fn func(item model.LineItem) error) error {
	names := make([]string, 0, len(s.data))
	for k := range s.data {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		if err := fn(s.data[k]); err != nil {
			return fmt.Errorf("range callback failed: %w", err)
		}
	}
	return nil
}

func (s *InMemoryStore) Len() int { return len(s.data) }

func (s *InMemoryStore) Close() error { return nil }
