package base58

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	mrtron "github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

var usdtMintBytes = []byte{
	206, 1, 14, 96, 175, 237, 178, 39, 23, 189, 99, 25, 47, 84, 20, 90, 63, 150, 90, 51, 187, 130,
	210, 199, 2, 158, 178, 206, 30, 32, 130, 100,
}

var usdcMintBytes = []byte{
	198, 250, 122, 243, 190, 219, 173, 58, 61, 101, 243, 106, 171, 201, 116, 49, 177, 187, 228,
	194, 210, 246, 224, 228, 124, 166, 2, 3, 69, 47, 93, 97,
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected []byte
	}{
		{"empty", "", []byte{}},
		{"single zero digit", "1", []byte{0}},
		{"three zero digits", "111", []byte{0, 0, 0}},
		{"single digit", "2", []byte{1}},
		{"last digit", "z", []byte{57}},
		{"two digits", "21", []byte{58}},
		{"one byte boundary", "5Q", []byte{255}},
		{"leading zeros kept", "112", []byte{0, 0, 1}},
		{"zero then max", "15Q", []byte{0, 255}},
		{"ascii text", "25JnwSn7XKfNQ", []byte("Test data")},
		{"hello world", "StV1DL6CwTryKyV", []byte("hello world")},
		{"system program", "11111111111111111111111111111111", make([]byte, 32)},
		{"usdt mint", "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB", usdtMintBytes},
		{"usdc mint", "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", usdcMintBytes},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := Decode(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.expected, actual)
		})
	}
}

func TestDecode_InvalidCharacter(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		expectedChar rune
		expectedPos  int
	}{
		{"zero", "0", '0', 0},
		{"upper o", "abcO", 'O', 3},
		{"upper i", "1I", 'I', 1},
		{"lower l", "Es9vlMF", 'l', 4},
		{"space", "Es9v MF", ' ', 4},
		{"first offending reported", "0OIl", '0', 0},
		{"non ascii", "abé", 'é', 2},
		{"invalid utf8", "ab\xff", '\uFFFD', 2},
		{"first non ascii reported before invalid utf8", "1é\xffz", 'é', 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := Decode(test.in)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.Is(err, ErrInvalidCharacter))

			var charErr *InvalidCharacterError
			require.True(t, errors.As(err, &charErr))
			assert.Equal(t, test.expectedChar, charErr.Char)
			assert.Equal(t, test.expectedPos, charErr.Pos)
		})
	}
}

func TestInvalidCharacterError_Error(t *testing.T) {
	err := &InvalidCharacterError{Char: 'l', Pos: 7}
	assert.Equal(t, `invalid base58 character 'l' at position 7`, err.Error())
}

func TestDecode_LengthIsZerosPlusMinimalBody(t *testing.T) {
	out, err := Decode("11z")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 57}, out)

	out, err = Decode("1111")
	require.NoError(t, err)
	assert.Len(t, out, 4)
}

func TestDecode_Deterministic(t *testing.T) {
	first, err := Decode("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Decode("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		in       []byte
		expected string
	}{
		{"nil", nil, ""},
		{"empty", []byte{}, ""},
		{"single zero", []byte{0}, "1"},
		{"zeros", []byte{0, 0, 0}, "111"},
		{"leading zeros", []byte{0, 0, 1}, "112"},
		{"max byte", []byte{255}, "5Q"},
		{"ascii text", []byte("Test data"), "25JnwSn7XKfNQ"},
		{"usdt mint", usdtMintBytes, "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Encode(test.in))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	random := rand.New(rand.NewSource(58))

	for i := 0; i < 500; i++ {
		in := make([]byte, random.Intn(64))
		random.Read(in)
		if len(in) > 0 && random.Intn(4) == 0 {
			in[0] = 0
		}

		decoded, err := Decode(Encode(in))
		require.NoError(t, err)
		require.True(t, bytes.Equal(in, decoded), "round trip of %x gave %x", in, decoded)
	}
}

func TestAgreesWithReferenceImplementation(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		in := make([]byte, 1+random.Intn(48))
		random.Read(in)
		zeros := random.Intn(3)
		for j := 0; j < zeros && j < len(in); j++ {
			in[j] = 0
		}

		encoded := Encode(in)
		require.Equal(t, mrtron.Encode(in), encoded)

		expected, err := mrtron.Decode(encoded)
		require.NoError(t, err)

		actual, err := Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, expected, actual)
	}
}

func TestValue(t *testing.T) {
	for i := 0; i < len(Alphabet); i++ {
		v, ok := Value(Alphabet[i])
		require.True(t, ok)
		assert.Equal(t, i, v)
	}

	for _, c := range []byte{'0', 'O', 'I', 'l', '+', '/', 0, 200} {
		_, ok := Value(c)
		assert.False(t, ok, "character %q", c)
	}
}

func TestDecodeAll(t *testing.T) {
	out, err := DecodeAll("1", "0bad", "2", "Il")
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.True(t, errors.Is(errs[0], ErrInvalidCharacter))
	assert.Contains(t, errs[0].Error(), `input #1 "0bad"`)
	assert.Contains(t, errs[1].Error(), `input #3 "Il"`)

	assert.Equal(t, [][]byte{{0}, nil, {1}, nil}, out)
}

func TestDecodeAll_NoError(t *testing.T) {
	out, err := DecodeAll("Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB", "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{usdtMintBytes, usdcMintBytes}, out)
}

func TestMustDecode(t *testing.T) {
	assert.Equal(t, []byte{0, 57}, MustDecode("1z"))
	assert.Panics(t, func() { MustDecode("0") })
}
