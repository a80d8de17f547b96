package printer

import (
	"github.com/streamingfast/mintkey/base58"
)

var _ Print = (*Base58Printer)(nil)

type Base58Printer struct {
}

func (h *Base58Printer) Print(data []byte) string {
	return base58.Encode(data)
}
