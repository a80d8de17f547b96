package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/streamingfast/logging"
	"github.com/streamingfast/mintkey/cmd/mintkey/printer"
	"github.com/streamingfast/mintkey/store"

	. "github.com/streamingfast/cli"
	_ "github.com/streamingfast/mintkey/store/badger3"
)

// Commit sha1 value, injected via go build `ldflags` at build time
var commit = ""

// Version value, injected via go build `ldflags` at build time
var version = "dev"

// Date value, injected via go build `ldflags` at build time
var date = ""

var zlog, tracer = logging.RootLogger("mintkey", "github.com/streamingfast/mintkey/cmd/mintkey")

func init() {
	logging.InstantiateLoggers()
}

func main() {
	Run("mintkey", "Decode base58 mint addresses into raw bytes and keep a book of named mints",
		ConfigureViper("MINTKEY"),
		ConfigureVersion(),

		DecodeCmd,
		EncodeCmd,

		Group("book", "Persistent address book of named mints",
			BookPutCmd,
			BookGetCmd,
			BookLookupCmd,
			BookListCmd,
			BookDeleteCmd,
			BookImportCmd,
			BookSeedCmd,

			PersistentFlags(
				func(flags *pflag.FlagSet) {
					flags.String("dsn", "badger3://./mintkey-book.db", fmt.Sprintf("URL of the KV store holding the book. Supported schemes: %s (ex: 'badger3:///tmp/mintkey-book.db?compression=none')", strings.Join(store.Names(), ", ")))
					flags.String("print", "base58", fmt.Sprintf("output rendering of stored keys. Supported schemes: %s", strings.Join(printer.Schemes, ", ")))
				},
			),
		),
	)
}

func ConfigureVersion() CommandOption {
	return CommandOptionFunc(func(cmd *cobra.Command) {
		cmd.Version = versionString(version)
	})
}

func versionString(version string) string {
	var labels []string
	if len(commit) >= 7 {
		labels = append(labels, fmt.Sprintf("Commit %s", commit[0:7]))
	}

	if date != "" {
		labels = append(labels, fmt.Sprintf("Built %s", date))
	}

	if len(labels) == 0 {
		return version
	}

	return fmt.Sprintf("%s (%s)", version, strings.Join(labels, ", "))
}
