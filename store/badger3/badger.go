package badger3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	"github.com/streamingfast/logging"
	"github.com/streamingfast/mintkey/store"
	"go.uber.org/zap"
)

var zlog, _ = logging.PackageLogger("badger3", "github.com/streamingfast/mintkey/store/badger3")

type Store struct {
	dsn          string
	db           *badger.DB
	writeBatch   *badger.WriteBatch
	compressor   store.Compressor
	emptyEnabled bool
	logger       *zap.Logger
}

func (s *Store) String() string {
	return fmt.Sprintf("badger3 kv store with dsn: %q", s.dsn)
}

func init() {
	store.Register(&store.Registration{
		Name:        "badger3",
		Title:       "Badger v3",
		FactoryFunc: NewStore,
	})
}

// NewStore opens (creating it when missing) the Badger database pointed to
// by a `badger3:///path/to/db` DSN. The `compression` option accepts `zstd`
// (default) or `none`.
func NewStore(dsnString string) (store.KVStore, error) {
	dsn, err := store.ParseDSN(dsnString)
	if err != nil {
		return nil, fmt.Errorf("badger3 new: dsn: %w", err)
	}

	if dsn.Path == "" {
		return nil, fmt.Errorf("badger3 new: dsn %q has no database path", dsnString)
	}

	createPath := filepath.Dir(dsn.Path)
	if err := os.MkdirAll(createPath, 0755); err != nil {
		return nil, fmt.Errorf("creating path %q: %w", createPath, err)
	}

	compressor, err := store.NewCompressor(dsn.Params.Get("compression"), store.DefaultCompressionThreshold)
	if err != nil {
		return nil, fmt.Errorf("badger3 new: %w", err)
	}

	// Value compression is handled by our own compressor, block compression is left out
	db, err := badger.Open(badger.DefaultOptions(dsn.Path).WithLogger(nil).WithCompression(options.None))
	if err != nil {
		return nil, fmt.Errorf("badger3 new: open badger db: %w", err)
	}

	cleanDSN, err := store.RemoveDSNOptions(dsnString, "compression")
	if err != nil {
		cleanDSN = dsnString
	}

	zlog.Debug("badger3 store opened", zap.String("dsn", cleanDSN), zap.String("path", dsn.Path))
	return &Store{
		dsn:        dsnString,
		db:         db,
		compressor: compressor,
		logger:     zlog,
	}, nil
}

func (s *Store) SetLogger(logger *zap.Logger) {
	s.logger = logger
}

func (s *Store) EnableEmpty() {
	s.emptyEnabled = true
}

func (s *Store) Close() error {
	if s.writeBatch != nil {
		s.writeBatch.Cancel()
		s.writeBatch = nil
	}
	return s.db.Close()
}

func (s *Store) Put(ctx context.Context, key, value []byte) (err error) {
	if len(value) == 0 && !s.emptyEnabled {
		return store.ErrEmptyValue
	}

	zlogger := logging.Logger(ctx, s.logger)
	zlogger.Debug("putting", zap.Object("kv", store.KV{Key: key, Value: value}))
	if s.writeBatch == nil {
		s.writeBatch = s.db.NewWriteBatch()
	}

	value = s.compressor.Compress(value)

	err = s.writeBatch.SetEntry(badger.NewEntry(key, value))
	if errors.Is(err, badger.ErrTxnTooBig) {
		zlogger.Debug("txn too big pre-emptively pushing")
		if err := s.writeBatch.Flush(); err != nil {
			return err
		}

		s.writeBatch = s.db.NewWriteBatch()
		if err := s.writeBatch.SetEntry(badger.NewEntry(key, value)); err != nil {
			return fmt.Errorf("after txn too big: %w", err)
		}
		return nil
	}

	return err
}

func (s *Store) FlushPuts(ctx context.Context) error {
	if s.writeBatch == nil {
		return nil
	}

	err := s.writeBatch.Flush()
	s.writeBatch = nil
	return err
}

func wrapNotFoundError(err error) error {
	if errors.Is(err, badger.ErrKeyNotFound) {
		return store.ErrNotFound
	}
	return err
}

func (s *Store) Get(ctx context.Context, key []byte) (value []byte, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return wrapNotFoundError(err)
		}

		value, err = s.itemValue(item)
		return err
	})
	return
}

func (s *Store) itemValue(item *badger.Item) ([]byte, error) {
	value, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}

	return s.compressor.Decompress(value)
}

func (s *Store) BatchDelete(ctx context.Context, keys [][]byte) (err error) {
	zlogger := logging.Logger(ctx, s.logger)
	zlogger.Debug("batch deletion", zap.Int("key_count", len(keys)))

	deletionBatch := s.db.NewWriteBatch()
	for _, key := range keys {
		err = deletionBatch.Delete(key)
		if errors.Is(err, badger.ErrTxnTooBig) {
			zlogger.Debug("txn too big pre-emptively pushing")
			if err := deletionBatch.Flush(); err != nil {
				return err
			}

			deletionBatch = s.db.NewWriteBatch()
			err = deletionBatch.Delete(key)
		}

		if err != nil {
			deletionBatch.Cancel()
			return err
		}
	}

	return deletionBatch.Flush()
}

func (s *Store) BatchGet(ctx context.Context, keys [][]byte) *store.Iterator {
	kr := store.NewIterator(ctx)

	go func() {
		err := s.db.View(func(txn *badger.Txn) error {
			for _, key := range keys {
				item, err := txn.Get(key)
				if err != nil {
					return wrapNotFoundError(err)
				}

				value, err := s.itemValue(item)
				if err != nil {
					return err
				}

				if !kr.PushItem(store.KV{Key: item.KeyCopy(nil), Value: value}) {
					break
				}
			}
			return nil
		})
		if err != nil {
			kr.PushError(err)
			return
		}
		kr.PushFinished()
	}()
	return kr
}

func (s *Store) Scan(ctx context.Context, start, exclusiveEnd []byte, limit int, options ...store.ReadOption) *store.Iterator {
	zlogger := logging.Logger(ctx, s.logger)
	sit := store.NewIterator(ctx)
	zlogger.Debug("scanning", zap.Stringer("start", store.Key(start)), zap.Stringer("exclusive_end", store.Key(exclusiveEnd)), zap.Stringer("limit", store.Limit(limit)))

	go func() {
		err := s.db.View(func(txn *badger.Txn) error {
			badgerOptions := badgerIteratorOptions(store.Limit(limit), options)
			bit := txn.NewIterator(badgerOptions)
			defer bit.Close()

			count := uint64(0)
			for bit.Seek(start); bit.Valid() && bytes.Compare(bit.Item().Key(), exclusiveEnd) == -1; bit.Next() {
				count++

				kv, err := s.iteratedKV(bit.Item(), badgerOptions)
				if err != nil {
					return err
				}

				if !sit.PushItem(kv) {
					break
				}

				if store.Limit(limit).Reached(count) {
					break
				}
			}
			return nil
		})
		if err != nil {
			sit.PushError(err)
			return
		}

		sit.PushFinished()
	}()

	return sit
}

func (s *Store) Prefix(ctx context.Context, prefix []byte, limit int, options ...store.ReadOption) *store.Iterator {
	zlogger := logging.Logger(ctx, s.logger)
	kr := store.NewIterator(ctx)
	zlogger.Debug("prefix scanning", zap.Stringer("prefix", store.Key(prefix)), zap.Stringer("limit", store.Limit(limit)))

	go func() {
		err := s.db.View(func(txn *badger.Txn) error {
			badgerOptions := badgerIteratorOptions(store.Limit(limit), options)
			badgerOptions.Prefix = prefix

			it := txn.NewIterator(badgerOptions)
			defer it.Close()

			count := uint64(0)
			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				count++

				kv, err := s.iteratedKV(it.Item(), badgerOptions)
				if err != nil {
					return err
				}

				if !kr.PushItem(kv) {
					break
				}

				if store.Limit(limit).Reached(count) {
					break
				}
			}
			return nil
		})
		if err != nil {
			kr.PushError(err)
			return
		}

		kr.PushFinished()
	}()

	return kr
}

// iteratedKV only fetches the value when `PrefetchValues` is true, otherwise
// this is a key-only iteration.
func (s *Store) iteratedKV(item *badger.Item, opts badger.IteratorOptions) (store.KV, error) {
	kv := store.KV{Key: item.KeyCopy(nil)}
	if !opts.PrefetchValues {
		return kv, nil
	}

	value, err := s.itemValue(item)
	if err != nil {
		return kv, err
	}

	kv.Value = value
	return kv, nil
}

func badgerIteratorOptions(limit store.Limit, options []store.ReadOption) badger.IteratorOptions {
	if limit.Unbounded() && len(options) == 0 {
		return badger.DefaultIteratorOptions
	}

	readOptions := store.ReadOptions{}
	for _, opt := range options {
		opt.Apply(&readOptions)
	}

	opts := badger.DefaultIteratorOptions
	if readOptions.KeyOnly {
		opts.PrefetchValues = false
	} else if limit.Bounded() && int(limit) < opts.PrefetchSize {
		opts.PrefetchSize = int(limit)
	}

	return opts
}
