package state

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"autozone/internal/model"
)

// PebbleStore implements Store on a Pebble instance backed by an in-memory
// filesystem, so nothing outlives the process.
type PebbleStore struct {
	db *pebble.DB
}

func NewPebbleStore() (*PebbleStore, error) {
	opts := &pebble.Options{
		FS:           vfs.NewMem(),
		MemTableSize: 4 << 20,
	}
	d, err := pebble.Open("order", opts)
	if err != nil {
		return nil, fmt.Errorf("pebble open: %w", err)
	}
	return &PebbleStore{db: d}, nil
}

func (p *PebbleStore) Close() error { return p.db.Close() }

func (p *PebbleStore) Merge(item model.LineItem) (model.LineItem, error) {
	cur, found, err := p.get([]byte(item.Name))
	if err != nil {
		return model.LineItem{}, err
	}
	out := merge(cur, found, item)
	b, err := encodeItem(out)
	if err != nil {
		return model.LineItem{}, err
	}
	if err := p.db.Set([]byte(item.Name), b, pebble.NoSync); err != nil {
		return model.LineItem{}, fmt.Errorf("pebble set: %w", err)
	}
	return out, nil
}

func (p *PebbleStore) get(k []byte) (model.LineItem, bool, error) {
	v, closer, err := p.db.Get(k)
	if errors.Is(err, pebble.ErrNotFound) {
		return model.LineItem{}, false, nil
	}
	if err != nil {
		return model.LineItem{}, false, fmt.Errorf("pebble get: %w", err)
	}
	defer closer.Close()
	li, err := decodeItem(v)
	if err != nil {
		return model.LineItem{}, false, err
	}
	return li, true, nil
}

func (p *PebbleStore) Get(name string) (model.LineItem, bool) {
	li, ok, err := p.get([]byte(name))
	if err != nil {
		return model.LineItem{}, false
	}
	return li, ok
}

func (p *PebbleStore) Range(fn func(item model.LineItem) error) error {
	it, err := p.db.NewIter(nil)
	if err != nil {
		return fmt.Errorf("pebble iter: %w", err)
	}
	defer it.Close()
	for it.First(); it.Valid(); it.Next() {
		v := append([]byte(nil), it.Value()...)
		li, err := decodeItem(v)
		if err != nil {
			return err
		}
		if err := fn(li); err != nil {
			return err
		}
	}
	return nil
}

func (p *PebbleStore) Len() int {
	n := 0
	_ = p.Range(func(model.LineItem) error { n++; return nil })
	return n
}
