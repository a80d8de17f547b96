package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/streamingfast/mintkey/base58"
	"github.com/streamingfast/mintkey/cmd/mintkey/formatter"

	. "github.com/streamingfast/cli"
)

var EncodeCmd = Command(encodeRunE,
	"encode <input>...",
	"Encode raw bytes into base58",
	Flags(func(flags *pflag.FlagSet) {
		flags.String("input", "hex", "input format. Supported schemes: 'hex', 'ascii', 'base58', 'mint'")
	}),
	CommandOptionFunc(func(cmd *cobra.Command) {
		cmd.Args = cobra.MinimumNArgs(1)
	}),
)

func encodeRunE(cmd *cobra.Command, args []string) error {
	inputFormatter, err := formatter.NewFormatter(viper.GetString("encode-input"))
	if err != nil {
		return fmt.Errorf("formatter: %w", err)
	}

	for _, arg := range args {
		data, err := inputFormatter.Format(arg)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), base58.Encode(data))
	}

	return nil
}
