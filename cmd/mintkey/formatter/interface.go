package formatter

import (
	"fmt"
)

type Format interface {
	Format(data string) ([]byte, error)
}

func NewFormatter(scheme string) (Format, error) {
	switch scheme {
	case "ascii":
		return &AsciiFormatter{}, nil
	case "", "base58":
		return &Base58Formatter{}, nil
	case "mint":
		return &MintFormatter{}, nil
	case "hex":
		return &HexFormatter{}, nil
	}

	return nil, fmt.Errorf("unknown formatting scheme %q", scheme)
}
