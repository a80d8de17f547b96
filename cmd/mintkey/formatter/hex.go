package formatter

import (
	"encoding/hex"
	"fmt"
	"strings"
)

var _ Format = (*HexFormatter)(nil)

type HexFormatter struct {
}

func (f *HexFormatter) Format(data string) ([]byte, error) {
	out, err := hex.DecodeString(strings.TrimPrefix(data, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", data, err)
	}
	return out, nil
}
