package mint

import (
	"errors"
	"testing"

	"github.com/streamingfast/mintkey/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParsePublicKey(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		expected    PublicKey
		expectedErr error
	}{
		{
			name: "usdt",
			in:   "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB",
			expected: PublicKey{
				206, 1, 14, 96, 175, 237, 178, 39, 23, 189, 99, 25, 47, 84, 20, 90, 63, 150, 90, 51, 187, 130,
				210, 199, 2, 158, 178, 206, 30, 32, 130, 100,
			},
		},
		{
			name: "usdc",
			in:   "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
			expected: PublicKey{
				198, 250, 122, 243, 190, 219, 173, 58, 61, 101, 243, 106, 171, 201, 116, 49, 177, 187, 228,
				194, 210, 246, 224, 228, 124, 166, 2, 3, 69, 47, 93, 97,
			},
		},
		{
			name:     "system program",
			in:       "11111111111111111111111111111111",
			expected: PublicKey{},
		},
		{name: "too short", in: "25JnwSn7XKfNQ", expectedErr: ErrInvalidLength},
		{name: "empty", in: "", expectedErr: ErrInvalidLength},
		{name: "invalid character", in: "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNY0", expectedErr: base58.ErrInvalidCharacter},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := ParsePublicKey(test.in)
			if test.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, test.expectedErr), "got %s", err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, actual)
			assert.Equal(t, test.in, actual.String())
		})
	}
}

func TestPublicKeyFromBytes(t *testing.T) {
	_, err := PublicKeyFromBytes(make([]byte, 33))
	require.Error(t, err)
	assert.Equal(t, "invalid public key length: expected 32 bytes, got 33", err.Error())

	key, err := PublicKeyFromBytes(USDT.Bytes())
	require.NoError(t, err)
	assert.Equal(t, USDT, key)
}

func TestPublicKey_Bytes(t *testing.T) {
	raw := USDC.Bytes()
	raw[0] = 0
	assert.Equal(t, byte(198), USDC[0], "Bytes must return a copy")
}

func TestPublicKey_IsZero(t *testing.T) {
	assert.True(t, PublicKey{}.IsZero())
	assert.False(t, USDT.IsZero())
}

func TestPublicKey_MarshalLogObject(t *testing.T) {
	encoder := zapcore.NewMapObjectEncoder()
	require.NoError(t, USDT.MarshalLogObject(encoder))
	assert.Equal(t, map[string]interface{}{"address": "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"}, encoder.Fields)
}

func TestKnownMints(t *testing.T) {
	known := KnownMints()
	require.Len(t, known, 2)

	assert.Equal(t, "USDT Mint Byte Array", known[0].Label)
	assert.Equal(t, "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB", known[0].Address)
	assert.Equal(t, USDT, known[0].Key)

	assert.Equal(t, "USDC Mint Byte Array", known[1].Label)
	assert.Equal(t, "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", known[1].Address)
	assert.Equal(t, USDC, known[1].Key)
}
