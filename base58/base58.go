// Package base58 implements the Bitcoin flavored base-58 encoding used for
// Solana addresses and mints.
package base58

import (
	"fmt"
	"math/big"
)

// Alphabet is the Bitcoin base-58 alphabet. The index of a character is its
// digit value.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const zeroDigit = '1'

var (
	bigZero  = big.NewInt(0)
	bigRadix = big.NewInt(58)
)

var digitValues = func() (out [256]int8) {
	for i := range out {
		out[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		out[Alphabet[i]] = int8(i)
	}
	return
}()

// Value returns the digit value of c and whether c belongs to the alphabet.
func Value(c byte) (int, bool) {
	v := digitValues[c]
	if v < 0 {
		return 0, false
	}
	return int(v), true
}

// Decode decodes a base-58 string into its big-endian byte representation.
// Each leading '1' yields a leading zero byte. The empty string decodes to an
// empty slice.
func Decode(input string) ([]byte, error) {
	zeros := 0
	for zeros < len(input) && input[zeros] == zeroDigit {
		zeros++
	}

	acc := new(big.Int)
	digit := new(big.Int)
	for i, r := range input {
		if r > 127 {
			return nil, &InvalidCharacterError{Char: r, Pos: i}
		}

		v, ok := Value(byte(r))
		if !ok {
			return nil, &InvalidCharacterError{Char: r, Pos: i}
		}

		acc.Mul(acc, bigRadix)
		acc.Add(acc, digit.SetInt64(int64(v)))
	}

	body := acc.Bytes()
	out := make([]byte, zeros+len(body))
	copy(out[zeros:], body)

	return out, nil
}

// MustDecode is Decode that panics on invalid input, meant for constants and
// tests.
func MustDecode(input string) []byte {
	out, err := Decode(input)
	if err != nil {
		panic(fmt.Errorf("should be able to decode base58 %q: %w", input, err))
	}

	return out
}

// Encode encodes b as a base-58 string, the inverse of Decode.
func Encode(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	x := new(big.Int).SetBytes(b[zeros:])
	mod := new(big.Int)

	// log(256)/log(58) is about 1.37, enough room for every digit
	digits := make([]byte, 0, len(b)*138/100+1)
	for x.Cmp(bigZero) > 0 {
		x.DivMod(x, bigRadix, mod)
		digits = append(digits, Alphabet[mod.Int64()])
	}

	out := make([]byte, zeros, zeros+len(digits))
	for i := range out {
		out[i] = zeroDigit
	}
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}

	return string(out)
}
