package formatter

import (
	"github.com/streamingfast/mintkey/mint"
)

var _ Format = (*MintFormatter)(nil)

// MintFormatter is the base58 scheme restricted to 32 bytes public keys.
type MintFormatter struct {
}

func (f *MintFormatter) Format(data string) ([]byte, error) {
	key, err := mint.ParsePublicKey(data)
	if err != nil {
		return nil, err
	}
	return key.Bytes(), nil
}
