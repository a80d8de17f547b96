package store

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmptyValue = errors.New("empty value not allowed, use store.WithEmptyValue() to enable it")
)

type KVStore interface {
	// Put writes to a transaction, which might be flushed from time to time. Call FlushPuts() to ensure all Put entries are properly written to the database.
	Put(ctx context.Context, key, value []byte) (err error)
	// FlushPuts takes any pending writes (calls to Put()), and flushes them.
	FlushPuts(ctx context.Context) (err error)

	// Get a given key. Returns `store.ErrNotFound` if not found.
	Get(ctx context.Context, key []byte) (value []byte, err error)
	// BatchGet returns `store.ErrNotFound` the first time a key is not found, interrupting the resultset. Items come back in the exact same order as keys.
	BatchGet(ctx context.Context, keys [][]byte) *Iterator

	BatchDelete(ctx context.Context, keys [][]byte) (err error)

	Scan(ctx context.Context, start, exclusiveEnd []byte, limit int, options ...ReadOption) *Iterator
	Prefix(ctx context.Context, prefix []byte, limit int, options ...ReadOption) *Iterator

	// Close the underlying store engine and clear up any resources currently hold
	// by this instance.
	//
	// Once this instance's `Close` method has been called, it's assumed to be terminated
	// and cannot be reliably used to perform read/write operation on the backing engine.
	Close() error
}

// Configurable is implemented by drivers accepting the registry options.
type Configurable interface {
	SetLogger(logger *zap.Logger)
	EnableEmpty()
}
