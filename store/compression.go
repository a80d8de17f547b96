package store

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// DefaultCompressionThreshold is the value size, in bytes, above which zstd
// kicks in.
const DefaultCompressionThreshold = 256

type Compressor interface {
	Compress(in []byte) []byte
	Decompress(in []byte) ([]byte, error)
}

func NewCompressor(mode string, threshold int) (Compressor, error) {
	switch mode {
	case "", "zstd":
		return NewZstdCompressor(threshold), nil
	case "none", "false", "no":
		return NewNoOpCompressor(), nil
	default:
		return nil, fmt.Errorf("invalid compression value %q, use zstd (by default) or 'none'", mode)
	}
}

type NoOpCompressor struct{}

func NewNoOpCompressor() *NoOpCompressor {
	return &NoOpCompressor{}
}

func (NoOpCompressor) Compress(in []byte) []byte {
	return in
}

func (NoOpCompressor) Decompress(in []byte) ([]byte, error) {
	return in, nil
}

type ZstdCompressor struct {
	threshold int
	dec       *zstd.Decoder
	enc       *zstd.Encoder
}

func NewZstdCompressor(threshold int) *ZstdCompressor {
	enc, _ := zstd.NewWriter(nil) // Errors only on failed `opts` application
	dec, _ := zstd.NewReader(nil)
	return &ZstdCompressor{
		threshold: threshold,
		dec:       dec,
		enc:       enc,
	}
}

func (c *ZstdCompressor) Compress(in []byte) []byte {
	if len(in) > c.threshold {
		return c.enc.EncodeAll(in, nil)
	}
	return in
}

var zstdMagicBytes = []byte{0x28, 0xB5, 0x2F, 0xFD}

func (c *ZstdCompressor) Decompress(in []byte) ([]byte, error) {
	if len(in) > 4 && bytes.Equal(in[:4], zstdMagicBytes) {
		buf, err := c.dec.DecodeAll(in, nil)
		if err != nil {
			return nil, err
		}
		return buf, nil
	}

	return in, nil
}
