package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/streamingfast/mintkey/cmd/mintkey/formatter"
	"github.com/streamingfast/mintkey/cmd/mintkey/printer"
	"github.com/streamingfast/mintkey/mint"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	. "github.com/streamingfast/cli"
)

var DecodeCmd = Command(decodeRunE,
	"decode [<address>|-]...",
	"Decode base58 addresses into raw bytes, the USDT and USDC mints when none is given",
	Flags(func(flags *pflag.FlagSet) {
		flags.String("print", "list", fmt.Sprintf("output rendering. Supported schemes: %s", strings.Join(printer.Schemes, ", ")))
		flags.Bool("mint", false, "require every address to decode to a 32 bytes public key")
	}),
	CommandOptionFunc(func(cmd *cobra.Command) {
		cmd.Long = "Decode base58 addresses into raw bytes. Use '-' to read whitespace separated addresses from standard input."
		cmd.Args = cobra.ArbitraryArgs
	}),
)

type decodeTarget struct {
	label   string
	address string
}

func decodeRunE(cmd *cobra.Command, args []string) error {
	outputPrinter, err := printer.NewPrinter(viper.GetString("decode-print"))
	if err != nil {
		return fmt.Errorf("printer: %w", err)
	}

	inputScheme := "base58"
	if viper.GetBool("decode-mint") {
		inputScheme = "mint"
	}

	inputFormatter, err := formatter.NewFormatter(inputScheme)
	if err != nil {
		return fmt.Errorf("formatter: %w", err)
	}

	targets, err := decodeTargets(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	var errs error
	for _, target := range targets {
		data, err := inputFormatter.Format(target.address)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		zlog.Debug("decoded address", zap.String("address", target.address), zap.Int("byte_count", len(data)))
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", target.label, outputPrinter.Print(data))
	}

	return errs
}

func decodeTargets(args []string, stdin io.Reader) (out []decodeTarget, err error) {
	if len(args) == 0 {
		for _, known := range mint.KnownMints() {
			out = append(out, decodeTarget{label: known.Label, address: known.Address})
		}
		return out, nil
	}

	for _, arg := range args {
		if arg != "-" {
			out = append(out, decodeTarget{label: arg, address: arg})
			continue
		}

		scanner := bufio.NewScanner(stdin)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			out = append(out, decodeTarget{label: scanner.Text(), address: scanner.Text()})
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read standard input: %w", err)
		}
	}

	return out, nil
}
