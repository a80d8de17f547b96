package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamingfast/mintkey/book"
	"github.com/streamingfast/mintkey/store"
	"go.uber.org/zap"
)

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// getBook opens the configured store, the caller must close the returned
// store once done.
func getBook() (*book.Book, store.KVStore, error) {
	dsn := viper.GetString("book-global-dsn")
	if dsn == "" {
		return nil, nil, fmt.Errorf("dsn is required")
	}

	zlog.Info("setting up store", zap.String("dsn", dsn))
	kv, err := store.New(dsn, store.WithLogger(zlog))
	if err != nil {
		return nil, nil, fmt.Errorf("create store: %w", err)
	}

	b, err := book.New(kv, book.WithLogger(zlog))
	if err != nil {
		kv.Close()
		return nil, nil, fmt.Errorf("create book: %w", err)
	}

	return b, kv, nil
}

func closeStore(kv store.KVStore) {
	if err := kv.Close(); err != nil {
		zlog.Warn("unable to close store cleanly", zap.Error(err))
	}
}
