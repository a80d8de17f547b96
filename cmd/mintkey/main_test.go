package main

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownMintsOutput = `USDT Mint Byte Array: [206, 1, 14, 96, 175, 237, 178, 39, 23, 189, 99, 25, 47, 84, 20, 90, 63, 150, 90, 51, 187, 130, 210, 199, 2, 158, 178, 206, 30, 32, 130, 100]
USDC Mint Byte Array: [198, 250, 122, 243, 190, 219, 173, 58, 61, 101, 243, 106, 171, 201, 116, 49, 177, 187, 228, 194, 210, 246, 224, 228, 124, 166, 2, 3, 69, 47, 93, 97]
`

func runCommand(t *testing.T, runE func(cmd *cobra.Command, args []string) error, stdin string, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader(stdin))

	err := runE(cmd, args)
	return out.String(), err
}

func TestDecode_DefaultsToKnownMints(t *testing.T) {
	viper.Set("decode-print", "list")
	viper.Set("decode-mint", false)

	out, err := runCommand(t, decodeRunE, "")
	require.NoError(t, err)
	assert.Equal(t, knownMintsOutput, out)
}

func TestDecode_Arguments(t *testing.T) {
	viper.Set("decode-print", "hex")
	viper.Set("decode-mint", false)

	out, err := runCommand(t, decodeRunE, "", "111", "5Q")
	require.NoError(t, err)
	assert.Equal(t, "111: 000000\n5Q: ff\n", out)
}

func TestDecode_Stdin(t *testing.T) {
	viper.Set("decode-print", "list")
	viper.Set("decode-mint", false)

	out, err := runCommand(t, decodeRunE, "1  2\n\t21\n", "-")
	require.NoError(t, err)
	assert.Equal(t, "1: [0]\n2: [1]\n21: [58]\n", out)
}

func TestDecode_ReportsEveryFailure(t *testing.T) {
	viper.Set("decode-print", "list")
	viper.Set("decode-mint", true)

	out, err := runCommand(t, decodeRunE, "", "0bad", "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", "25JnwSn7XKfNQ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid base58 character '0' at position 0`)
	assert.Contains(t, err.Error(), "invalid public key length: expected 32 bytes, got 9")
	assert.True(t, strings.HasPrefix(out, "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v: [198, 250,"))
}

func TestDecode_UnknownPrinter(t *testing.T) {
	viper.Set("decode-print", "yaml")

	_, err := runCommand(t, decodeRunE, "")
	assert.EqualError(t, err, `printer: unknown printing scheme "yaml"`)
}

func TestEncode(t *testing.T) {
	viper.Set("encode-input", "hex")

	out, err := runCommand(t, encodeRunE, "", "000001", "ce010e60afedb22717bd63192f54145a3f965a33bb82d2c7029eb2ce1e208264")
	require.NoError(t, err)
	assert.Equal(t, "112\nEs9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB\n", out)
}

func TestBookCommands(t *testing.T) {
	viper.Set("book-global-dsn", fmt.Sprintf("badger3://%s", path.Join(t.TempDir(), "book.db")))
	viper.Set("book-global-print", "list")
	viper.Set("book-list-limit", 100)
	viper.Set("book-list-labels-only", false)

	out, err := runCommand(t, bookSeedRunE, "")
	require.NoError(t, err)
	assert.Equal(t, "Seeded USDT and USDC\n", out)

	out, err = runCommand(t, bookImportRunE, "Token TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA\n", "-")
	require.NoError(t, err)
	assert.Equal(t, "Imported 1 entries\n", out)

	out, err = runCommand(t, bookGetRunE, "", "USDT")
	require.NoError(t, err)
	assert.Equal(t, "USDT\t->\t[206, 1, 14, 96, 175, 237, 178, 39, 23, 189, 99, 25, 47, 84, 20, 90, 63, 150, 90, 51, 187, 130, 210, 199, 2, 158, 178, 206, 30, 32, 130, 100]\n", out)

	out, err = runCommand(t, bookLookupRunE, "", "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	require.NoError(t, err)
	assert.Equal(t, "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v\t->\tUSDC\n", out)

	viper.Set("book-list-labels-only", true)
	out, err = runCommand(t, bookListRunE, "")
	require.NoError(t, err)
	assert.Equal(t, "Token\nUSDC\nUSDT\n\nFound 3 labels\n", out)

	out, err = runCommand(t, bookDeleteRunE, "", "Token")
	require.NoError(t, err)
	assert.Equal(t, "Deleted\tToken\n", out)

	out, err = runCommand(t, bookGetRunE, "", "Token")
	require.NoError(t, err)
	assert.Equal(t, "Label\t->\tToken\tNOT FOUND\n", out)
}

func TestVersionString(t *testing.T) {
	defer func(c, d string) { commit, date = c, d }(commit, date)

	commit, date = "", ""
	assert.Equal(t, "dev", versionString("dev"))

	commit, date = "0123456789abcdef", "2026-10-18"
	assert.Equal(t, "v1.0.0 (Commit 0123456, Built 2026-10-18)", versionString("v1.0.0"))
}
