package rlevec

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var storeBucket = []byte("rlevecs")

// A Store persists named vectors in a Bolt database, using the msgpack
// run-pair encoding for values. A Store is safe for concurrent use; the
// vectors it returns are independent copies and follow the usual
// exclusive-writer rules.
type Store[T comparable] struct {
	bdb    *bbolt.DB
	logger *slog.Logger
}

type StoreOptions struct {
	// Logger receives debug-level records for store operations.
	// Defaults to slog.Default().
	Logger *slog.Logger
	// IsTesting trades durability for speed (no fsync, small mmap).
	IsTesting bool
}

// OpenStore opens or creates a vector store at the given path.
func OpenStore[T comparable](path string, opt StoreOptions) (*Store[T], error) {
	bopt := *bbolt.DefaultOptions
	bopt.Timeout = 10 * time.Second
	if opt.IsTesting {
		bopt.NoSync = true
		bopt.NoFreelistSync = true
		bopt.InitialMmapSize = 1024 * 1024 * 5
	} else {
		bopt.FreelistType = bbolt.FreelistMapType
	}

	bdb, err := bbolt.Open(path, 0o666, &bopt)
	if err != nil {
		return nil, fmt.Errorf("rlevec: %w", err)
	}
	err = bdb.Update(func(btx *bbolt.Tx) error {
		_, err := btx.CreateBucketIfNotExists(storeBucket)
		return err
	})
	if err != nil {
		bdb.Close()
		return nil, fmt.Errorf("rlevec: %w", err)
	}

	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("rlevec: store opened", "path", path)
	return &Store[T]{bdb: bdb, logger: logger}, nil
}

// Bolt returns the underlying Bolt database.
func (s *Store[T]) Bolt() *bbolt.DB {
	return s.bdb
}

// Close closes the store. The Store must not be used afterwards.
func (s *Store[T]) Close() error {
	return s.bdb.Close()
}

// Put saves a snapshot of v under the given key, replacing any previous
// value.
func (s *Store[T]) Put(key string, v *Vec[T]) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("rlevec: encoding %q: %w", key, err)
	}
	err = s.bdb.Update(func(btx *bbolt.Tx) error {
		return btx.Bucket(storeBucket).Put([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("rlevec: storing %q: %w", key, err)
	}
	s.logger.Debug("rlevec: stored", "key", key, "len", v.Len(), "runs", v.RunCount(), "bytes", len(data))
	return nil
}

// Get loads the vector stored under the given key, or an error wrapping
// ErrNotFound if there is none.
func (s *Store[T]) Get(key string) (*Vec[T], error) {
	var data []byte
	err := s.bdb.View(func(btx *bbolt.Tx) error {
		if raw := btx.Bucket(storeBucket).Get([]byte(key)); raw != nil {
			data = bytes.Clone(raw)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rlevec: loading %q: %w", key, err)
	}
	if data == nil {
		return nil, fmt.Errorf("rlevec: %q: %w", key, ErrNotFound)
	}
	v := New[T]()
	if err := msgpack.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("rlevec: decoding %q: %w", key, err)
	}
	return v, nil
}

// Delete removes the vector stored under the given key. Deleting a
// missing key is not an error.
func (s *Store[T]) Delete(key string) error {
	err := s.bdb.Update(func(btx *bbolt.Tx) error {
		return btx.Bucket(storeBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("rlevec: deleting %q: %w", key, err)
	}
	s.logger.Debug("rlevec: deleted", "key", key)
	return nil
}

// Keys returns the keys of all stored vectors in lexicographic order.
func (s *Store[T]) Keys() ([]string, error) {
	var keys []string
	err := s.bdb.View(func(btx *bbolt.Tx) error {
		return btx.Bucket(storeBucket).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("rlevec: listing keys: %w", err)
	}
	return keys, nil
}
