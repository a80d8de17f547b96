package base58

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ErrInvalidCharacter is matched by every *InvalidCharacterError through
// errors.Is.
var ErrInvalidCharacter = errors.New("invalid base58 character")

// InvalidCharacterError reports a character outside of the alphabet. Pos is
// the 0-based byte offset of the character in the input.
type InvalidCharacterError struct {
	Char rune
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid base58 character %q at position %d", e.Char, e.Pos)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// DecodeAll decodes every input. Failures do not stop the remaining inputs
// from being decoded, they are all combined in the returned error and the
// matching entry in the result is nil.
func DecodeAll(inputs ...string) (out [][]byte, err error) {
	out = make([][]byte, len(inputs))
	for i, input := range inputs {
		decoded, decodeErr := Decode(input)
		if decodeErr != nil {
			err = multierr.Append(err, fmt.Errorf("input #%d %q: %w", i, input, decodeErr))
			continue
		}

		out[i] = decoded
	}

	return out, err
}
