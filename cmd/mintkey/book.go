package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/streamingfast/mintkey/book"
	"github.com/streamingfast/mintkey/cmd/mintkey/printer"
	"go.uber.org/zap"

	. "github.com/streamingfast/cli"
)

var BookPutCmd = Command(bookPutRunE,
	"put <label> <address>",
	"Store a mint address under a label",
	ExactArgs(2),
)

var BookGetCmd = Command(bookGetRunE,
	"get <label>",
	"Print the mint stored under a label",
	ExactArgs(1),
)

var BookLookupCmd = Command(bookLookupRunE,
	"lookup <address>",
	"Print the label a mint address is stored under",
	ExactArgs(1),
)

var BookListCmd = Command(bookListRunE,
	"list [<prefix>]",
	"List stored mints, optionally restricted to labels starting with prefix",
	Flags(func(flags *pflag.FlagSet) {
		flags.Uint64("limit", 100, "Number of entries to return, 0 is unbounded")
		flags.Bool("labels-only", false, "Only print the labels")
	}),
	CommandOptionFunc(func(cmd *cobra.Command) {
		cmd.Args = cobra.MaximumNArgs(1)
	}),
)

var BookDeleteCmd = Command(bookDeleteRunE,
	"delete <label>",
	"Remove a label from the book",
	ExactArgs(1),
)

var BookImportCmd = Command(bookImportRunE,
	"import <file|->",
	"Import '<label> <address>' lines from a file or standard input",
	ExactArgs(1),
)

var BookSeedCmd = Command(bookSeedRunE,
	"seed",
	"Store the well-known USDT and USDC mints",
	ExactArgs(0),
)

func bookPrinter() (printer.Print, error) {
	p, err := printer.NewPrinter(viper.GetString("book-global-print"))
	if err != nil {
		return nil, fmt.Errorf("printer: %w", err)
	}
	return p, nil
}

func bookPutRunE(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	outputPrinter, err := bookPrinter()
	if err != nil {
		return err
	}

	b, kv, err := getBook()
	if err != nil {
		return err
	}
	defer closeStore(kv)

	label, address := args[0], args[1]
	zlog.Info("book put", zap.String("label", label), zap.String("address", address))

	key, err := b.Put(ctx, label, address)
	if err != nil {
		return fmt.Errorf("put %q: %w", label, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Stored\t%s\t->\t%s\n", label, outputPrinter.Print(key[:]))
	return nil
}

func bookGetRunE(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	outputPrinter, err := bookPrinter()
	if err != nil {
		return err
	}

	b, kv, err := getBook()
	if err != nil {
		return err
	}
	defer closeStore(kv)

	label := args[0]
	key, err := b.Get(ctx, label)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			fmt.Fprintf(cmd.OutOrStdout(), "Label\t->\t%s\tNOT FOUND\n", label)
			return nil
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\t->\t%s\n", label, outputPrinter.Print(key[:]))
	return nil
}

func bookLookupRunE(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	b, kv, err := getBook()
	if err != nil {
		return err
	}
	defer closeStore(kv)

	address := args[0]
	label, err := b.Lookup(ctx, address)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			fmt.Fprintf(cmd.OutOrStdout(), "Address\t->\t%s\tNOT FOUND\n", address)
			return nil
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\t->\t%s\n", address, label)
	return nil
}

func bookListRunE(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	outputPrinter, err := bookPrinter()
	if err != nil {
		return err
	}

	b, kv, err := getBook()
	if err != nil {
		return err
	}
	defer closeStore(kv)

	prefix := ""
	if len(args) == 1 {
		prefix = args[0]
	}
	limit := viper.GetUint64("book-list-limit")
	zlog.Info("book list", zap.String("prefix", prefix), zap.Uint64("limit", limit))

	out := cmd.OutOrStdout()
	if viper.GetBool("book-list-labels-only") {
		labels, err := b.Labels(ctx, prefix, int(limit))
		if err != nil {
			return err
		}

		for _, label := range labels {
			fmt.Fprintln(out, label)
		}
		fmt.Fprintf(out, "\nFound %d labels\n", len(labels))
		return nil
	}

	entries, err := b.List(ctx, prefix, int(limit))
	if err != nil {
		return err
	}

	for _, entry := range entries {
		fmt.Fprintf(out, "%s\t->\t%s\n", entry.Label, outputPrinter.Print(entry.Key[:]))
	}
	fmt.Fprintf(out, "\nFound %d entries\n", len(entries))
	return nil
}

func bookDeleteRunE(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	b, kv, err := getBook()
	if err != nil {
		return err
	}
	defer closeStore(kv)

	if err := b.Delete(ctx, args[0]); err != nil {
		return fmt.Errorf("delete %q: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted\t%s\n", args[0])
	return nil
}

func bookImportRunE(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()
		in = f
	}

	b, kv, err := getBook()
	if err != nil {
		return err
	}
	defer closeStore(kv)

	count, err := b.Import(ctx, in)
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries\n", count)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	return nil
}

func bookSeedRunE(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	b, kv, err := getBook()
	if err != nil {
		return err
	}
	defer closeStore(kv)

	if err := b.Seed(ctx); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Seeded USDT and USDC")
	return nil
}
