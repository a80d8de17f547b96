package formatter

import (
	"github.com/streamingfast/mintkey/base58"
)

var _ Format = (*Base58Formatter)(nil)

type Base58Formatter struct {
}

func (f *Base58Formatter) Format(data string) ([]byte, error) {
	return base58.Decode(data)
}
