package book

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/streamingfast/mintkey/mint"
)

const (
	labelPrefix   = "l:"
	addressPrefix = "a:"

	MaxLabelLength = 64
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidLabel = errors.New("invalid label")
)

func labelKey(label string) []byte {
	return []byte(labelPrefix + label)
}

func labelFromKey(key []byte) string {
	return strings.TrimPrefix(string(key), labelPrefix)
}

func addressKey(key mint.PublicKey) []byte {
	return append([]byte(addressPrefix), key[:]...)
}

func ValidateLabel(label string) error {
	if label == "" {
		return fmt.Errorf("%w: empty", ErrInvalidLabel)
	}

	if len(label) > MaxLabelLength {
		return fmt.Errorf("%w: %q is longer than %d bytes", ErrInvalidLabel, label, MaxLabelLength)
	}

	if strings.IndexFunc(label, unicode.IsSpace) != -1 {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidLabel, label)
	}

	return nil
}
