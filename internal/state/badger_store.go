package state

import (
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"autozone/internal/model"
)

// BadgerStore implements Store using BadgerDB in in-memory mode.
type BadgerStore struct {
	db *badger.DB
}

func NewBadgerStore() (*BadgerStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger open: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func (b *BadgerStore) Close() error { return b.db.Close() }

func (b *BadgerStore) Merge(item model.LineItem) (model.LineItem, error) {
	var out model.LineItem
	err := b.db.Update(func(txn *badger.Txn) error {
		var cur model.LineItem
		found := false
		it, err := txn.Get([]byte(item.Name))
		if err == nil {
			v, e := it.ValueCopy(nil)
			if e != nil {
				return e
			}
			if cur, e = decodeItem(v); e != nil {
				return e
			}
			found = true
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		out = merge(cur, found, item)
		v, err := encodeItem(out)
		if err != nil {
			return err
		}
		return txn.Set([]byte(item.Name), v)
	})
	if err != nil {
		return model.LineItem{}, fmt.Errorf("badger merge: %w", err)
	}
	return out, nil
}

func (b *BadgerStore) Get(name string) (model.LineItem, bool) {
	var li model.LineItem
	err := b.db.View(func(txn *badger.Txn) error {
		it, e := txn.Get([]byte(name))
		if e != nil {
			return e
		}
		v, e := it.ValueCopy(nil)
		if e != nil {
			return e
		}
		li, e = decodeItem(v)
		return e
	})
	if err != nil {
		return model.LineItem{}, false
	}
	return li, true
}

func (b *BadgerStore) Range(fn func(item model.LineItem) error) error {
	return b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			v, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			li, err := decodeItem(v)
			if err != nil {
				return err
			}
			if err := fn(li); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *BadgerStore) Len() int {
	n := 0
	_ = b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n
}
