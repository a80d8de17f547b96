package book

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/streamingfast/logging"
	"github.com/streamingfast/mintkey/mint"
	"github.com/streamingfast/mintkey/store"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var ImportBatchSize = 500

// Import reads `<label> <address>` lines from r. Blank lines and lines
// starting with `#` are skipped. A bad line does not stop the import, every
// failure is reported in the returned error and count is the number of
// entries written.
func (b *Book) Import(ctx context.Context, r io.Reader) (count int, err error) {
	logger := logging.Logger(ctx, b.logger)
	batch := store.NewBatchPut(0, ImportBatchSize, 0)
	staged := make([]Entry, 0, ImportBatchSize)

	flush := func() error {
		if batch.Len() == 0 {
			return nil
		}

		for _, kv := range batch.GetBatch() {
			if err := b.kv.Put(ctx, kv.Key, kv.Value); err != nil {
				return fmt.Errorf("put: %w", err)
			}
		}
		if err := b.kv.FlushPuts(ctx); err != nil {
			return fmt.Errorf("flush: %w", err)
		}

		for _, entry := range staged {
			b.cache.Add(entry.Label, entry.Key)
		}

		logger.Debug("flushed import batch", zap.Int("entry_count", len(staged)))
		count += len(staged)
		staged = staged[:0]
		batch.Reset()
		return nil
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, lineErr := parseImportLine(line)
		if lineErr != nil {
			err = multierr.Append(err, fmt.Errorf("line %d: %w", lineNum, lineErr))
			continue
		}

		// Moving a label to another key leaves its old reverse entry behind, Lookup ignores it
		batch.Put(labelKey(entry.Label), entry.Key[:])
		batch.Put(addressKey(entry.Key), []byte(entry.Label))
		b.cache.Remove(entry.Label)
		staged = append(staged, entry)

		if batch.ShouldFlush() {
			if flushErr := flush(); flushErr != nil {
				return count, multierr.Append(err, flushErr)
			}
		}
	}

	if scanErr := scanner.Err(); scanErr != nil {
		err = multierr.Append(err, fmt.Errorf("read: %w", scanErr))
	}

	if flushErr := flush(); flushErr != nil {
		err = multierr.Append(err, flushErr)
	}

	logger.Info("import completed", zap.Int("entry_count", count), zap.Int("line_count", lineNum), zap.Bool("with_errors", err != nil))
	return count, err
}

func parseImportLine(line string) (entry Entry, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entry, fmt.Errorf("expected `<label> <address>`, got %d fields", len(fields))
	}

	if err := ValidateLabel(fields[0]); err != nil {
		return entry, err
	}

	key, err := mint.ParsePublicKey(fields[1])
	if err != nil {
		return entry, err
	}

	return Entry{Label: fields[0], Key: key}, nil
}
