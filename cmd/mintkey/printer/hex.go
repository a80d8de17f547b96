package printer

import "encoding/hex"

var _ Print = (*HexPrinter)(nil)

type HexPrinter struct {
}

func (h *HexPrinter) Print(data []byte) string {
	return hex.EncodeToString(data)
}
