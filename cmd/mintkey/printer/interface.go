package printer

import (
	"fmt"
)

type Print interface {
	Print([]byte) string
}

// Schemes lists the accepted NewPrinter schemes.
var Schemes = []string{"list", "rust", "hex", "base58"}

func NewPrinter(scheme string) (Print, error) {
	switch scheme {
	case "", "list":
		return &ListPrinter{}, nil
	case "rust":
		return &RustPrinter{}, nil
	case "hex":
		return &HexPrinter{}, nil
	case "base58":
		return &Base58Printer{}, nil
	}

	return nil, fmt.Errorf("unknown printing scheme %q", scheme)
}
