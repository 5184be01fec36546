// SPDX-FileCopyrightText: 2026 The saleae-go Authors
//
// SPDX-License-Identifier: MIT

// Package badger implements a capture catalog on top of a badger
// key-value database.
package badger // import "go.cryptoscope.co/saleae/catalog/badger"

import (
	"context"
	"encoding/json"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"go.cryptoscope.co/saleae/catalog"
)

// keys are the capture path behind this prefix, values are the
// JSON-encoded catalog.Info
var keyPrefix = []byte("capture-")

type badgerCatalog struct {
	db *badger.DB
}

var _ catalog.Catalog = (*badgerCatalog)(nil)

// Open opens (or creates) a badger-backed catalog in dir.
func Open(dir string) (catalog.Catalog, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "error opening catalog database")
	}

	return &badgerCatalog{db: db}, nil
}

func (c *badgerCatalog) Put(ctx context.Context, info catalog.Info) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return errors.Wrap(err, "error marshaling capture info")
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(storeKey(info.Path), raw)
	})
	return errors.Wrap(err, "error in badger transaction (update)")
}

func (c *badgerCatalog) Get(ctx context.Context, path string) (catalog.Info, error) {
	var info catalog.Info

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(storeKey(path))
		if err != nil {
			return err
		}

		return item.Value(func(data []byte) error {
			return errors.Wrap(json.Unmarshal(data, &info), "error unmarshaling capture info")
		})
	})
	if errors.Cause(err) == badger.ErrKeyNotFound {
		return info, catalog.ErrNotFound(path)
	}
	if err != nil {
		return info, errors.Wrap(err, "error in badger transaction (view)")
	}

	return info, nil
}

func (c *badgerCatalog) All(ctx context.Context) ([]catalog.Info, error) {
	var infos []catalog.Info

	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = keyPrefix

		iter := txn.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var info catalog.Info
			err := iter.Item().Value(func(data []byte) error {
				return json.Unmarshal(data, &info)
			})
			if err != nil {
				return errors.Wrapf(err, "error unmarshaling capture info for key %q", iter.Item().Key())
			}
			infos = append(infos, info)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "error in badger transaction (view)")
	}

	return infos, nil
}

func (c *badgerCatalog) Delete(ctx context.Context, path string) error {
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(storeKey(path))
	})
	return errors.Wrap(err, "error in badger transaction (update)")
}

func (c *badgerCatalog) Close() error {
	return errors.Wrap(c.db.Close(), "error closing catalog database")
}

func storeKey(path string) []byte {
	return append(append([]byte{}, keyPrefix...), path...)
}
