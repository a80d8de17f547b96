package mint

import (
	"errors"
	"fmt"

	"github.com/streamingfast/mintkey/base58"
	"go.uber.org/zap/zapcore"
)

const PublicKeyLength = 32

var ErrInvalidLength = errors.New("invalid public key length")

// PublicKey is a 32 bytes Solana account address, mints included.
type PublicKey [PublicKeyLength]byte

// ParsePublicKey decodes a base58 address and ensures it is exactly
// PublicKeyLength bytes long.
func ParsePublicKey(address string) (out PublicKey, err error) {
	raw, err := base58.Decode(address)
	if err != nil {
		return out, fmt.Errorf("decode address %q: %w", address, err)
	}

	return PublicKeyFromBytes(raw)
}

func MustParsePublicKey(address string) PublicKey {
	out, err := ParsePublicKey(address)
	if err != nil {
		panic(err)
	}

	return out
}

func PublicKeyFromBytes(raw []byte) (out PublicKey, err error) {
	if len(raw) != PublicKeyLength {
		return out, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, PublicKeyLength, len(raw))
	}

	copy(out[:], raw)
	return out, nil
}

func (k PublicKey) Bytes() []byte {
	out := make([]byte, PublicKeyLength)
	copy(out, k[:])
	return out
}

func (k PublicKey) IsZero() bool {
	return k == PublicKey{}
}

func (k PublicKey) String() string {
	return base58.Encode(k[:])
}

func (k PublicKey) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("address", k.String())
	return nil
}
