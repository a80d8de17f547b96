// Package book is a persistent address book of named mints, stored in any
// registered store.KVStore.
//
// Each entry is written twice: `l:<label>` holds the 32 raw key bytes and
// `a:<raw key bytes>` holds the label, which is how an address is resolved
// back to its label. The reverse entry is only trusted when the label still
// points to the same key.
package book

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/streamingfast/logging"
	"github.com/streamingfast/mintkey/mint"
	"github.com/streamingfast/mintkey/store"
	"go.uber.org/zap"
)

const DefaultCacheSize = 256

type Entry struct {
	Label string
	Key   mint.PublicKey
}

type Book struct {
	kv     store.KVStore
	cache  *lru.Cache[string, mint.PublicKey]
	logger *zap.Logger
}

type options struct {
	cacheSize int
	logger    *zap.Logger
}

type Option func(o *options)

func WithCacheSize(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func New(kv store.KVStore, opts ...Option) (*Book, error) {
	o := &options{cacheSize: DefaultCacheSize, logger: zlog}
	for _, opt := range opts {
		opt(o)
	}

	cache, err := lru.New[string, mint.PublicKey](o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("label cache: %w", err)
	}

	return &Book{
		kv:     kv,
		cache:  cache,
		logger: o.logger,
	}, nil
}

// Put parses address as a mint public key and stores it under label,
// replacing any previous value.
func (b *Book) Put(ctx context.Context, label, address string) (mint.PublicKey, error) {
	key, err := mint.ParsePublicKey(address)
	if err != nil {
		return key, err
	}

	return key, b.PutKey(ctx, label, key)
}

func (b *Book) PutKey(ctx context.Context, label string, key mint.PublicKey) error {
	if err := ValidateLabel(label); err != nil {
		return err
	}

	logger := logging.Logger(ctx, b.logger)
	logger.Debug("putting label", zap.String("label", label), zap.Stringer("key", key))

	previous, err := b.Get(ctx, label)
	switch {
	case err == nil && previous != key:
		if err := b.releaseAddress(ctx, label, previous); err != nil {
			return fmt.Errorf("clean previous address of %q: %w", label, err)
		}
	case err != nil && !errors.Is(err, ErrNotFound):
		return err
	}

	if err := b.kv.Put(ctx, labelKey(label), key[:]); err != nil {
		return fmt.Errorf("put label %q: %w", label, err)
	}

	if err := b.kv.Put(ctx, addressKey(key), []byte(label)); err != nil {
		return fmt.Errorf("put address of %q: %w", label, err)
	}

	if err := b.kv.FlushPuts(ctx); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	b.cache.Add(label, key)
	return nil
}

func (b *Book) Get(ctx context.Context, label string) (mint.PublicKey, error) {
	if key, found := b.cache.Get(label); found {
		return key, nil
	}

	raw, err := b.kv.Get(ctx, labelKey(label))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return mint.PublicKey{}, fmt.Errorf("label %q: %w", label, ErrNotFound)
		}
		return mint.PublicKey{}, fmt.Errorf("get label %q: %w", label, err)
	}

	key, err := mint.PublicKeyFromBytes(raw)
	if err != nil {
		return key, fmt.Errorf("corrupted label %q: %w", label, err)
	}

	b.cache.Add(label, key)
	return key, nil
}

// Lookup returns the label under which address was last stored.
func (b *Book) Lookup(ctx context.Context, address string) (string, error) {
	key, err := mint.ParsePublicKey(address)
	if err != nil {
		return "", err
	}

	raw, err := b.kv.Get(ctx, addressKey(key))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", fmt.Errorf("address %s: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("get address %s: %w", key, err)
	}

	label := string(raw)
	current, err := b.Get(ctx, label)
	if err != nil || current != key {
		return "", fmt.Errorf("address %s: %w", key, ErrNotFound)
	}

	return label, nil
}

// List returns the entries whose label starts with prefix, in label order.
func (b *Book) List(ctx context.Context, prefix string, limit int) (out []Entry, err error) {
	kvs, err := b.kv.Prefix(ctx, labelKey(prefix), limit).All()
	if err != nil {
		return nil, fmt.Errorf("list prefix %q: %w", prefix, err)
	}

	for _, kv := range kvs {
		label := labelFromKey(kv.Key)
		key, err := mint.PublicKeyFromBytes(kv.Value)
		if err != nil {
			return nil, fmt.Errorf("corrupted label %q: %w", label, err)
		}

		out = append(out, Entry{Label: label, Key: key})
	}

	return out, nil
}

// Labels is List without the keys.
func (b *Book) Labels(ctx context.Context, prefix string, limit int) (out []string, err error) {
	kvs, err := b.kv.Prefix(ctx, labelKey(prefix), limit, store.KeyOnly()).All()
	if err != nil {
		return nil, fmt.Errorf("list labels with prefix %q: %w", prefix, err)
	}

	for _, kv := range kvs {
		out = append(out, labelFromKey(kv.Key))
	}

	return out, nil
}

// Delete removes label. When label was the one an address resolved to, the
// address is handed over to another label still holding it, if any.
func (b *Book) Delete(ctx context.Context, label string) error {
	key, err := b.Get(ctx, label)
	if err != nil {
		return err
	}

	logging.Logger(ctx, b.logger).Debug("deleting label", zap.String("label", label), zap.Stringer("key", key))
	if err := b.kv.BatchDelete(ctx, [][]byte{labelKey(label)}); err != nil {
		return fmt.Errorf("delete label %q: %w", label, err)
	}
	b.cache.Remove(label)

	if err := b.releaseAddress(ctx, label, key); err != nil {
		return fmt.Errorf("release address of %q: %w", label, err)
	}

	return nil
}

// Seed stores the well-known mints under their symbol.
func (b *Book) Seed(ctx context.Context) error {
	for _, known := range mint.KnownMints() {
		if err := b.PutKey(ctx, known.Symbol, known.Key); err != nil {
			return fmt.Errorf("seed %s: %w", known.Symbol, err)
		}
	}
	return nil
}

// releaseAddress points the reverse entry of key, when owned by label, to the
// first other label holding key, or removes it when none is left.
func (b *Book) releaseAddress(ctx context.Context, label string, key mint.PublicKey) error {
	owned, err := b.ownsAddress(ctx, label, key)
	if err != nil || !owned {
		return err
	}

	heir, found, err := b.holderOf(ctx, key, label)
	if err != nil {
		return err
	}

	if !found {
		return b.kv.BatchDelete(ctx, [][]byte{addressKey(key)})
	}

	logging.Logger(ctx, b.logger).Debug("handing address over", zap.Stringer("key", key), zap.String("from", label), zap.String("to", heir))
	if err := b.kv.Put(ctx, addressKey(key), []byte(heir)); err != nil {
		return fmt.Errorf("put address of %q: %w", heir, err)
	}

	return b.kv.FlushPuts(ctx)
}

// holderOf returns the first label, other than excluded, whose value is key.
func (b *Book) holderOf(ctx context.Context, key mint.PublicKey, excluded string) (string, bool, error) {
	kvs, err := b.kv.Prefix(ctx, labelKey(""), store.Unlimited).All()
	if err != nil {
		return "", false, fmt.Errorf("scan labels: %w", err)
	}

	for _, kv := range kvs {
		label := labelFromKey(kv.Key)
		if label != excluded && bytes.Equal(kv.Value, key[:]) {
			return label, true, nil
		}
	}

	return "", false, nil
}

func (b *Book) ownsAddress(ctx context.Context, label string, key mint.PublicKey) (bool, error) {
	raw, err := b.kv.Get(ctx, addressKey(key))
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get address %s: %w", key, err)
	}

	return bytes.Equal(raw, []byte(label)), nil
}
