package store

import (
	"encoding/hex"
	"strconv"

	"go.uber.org/zap/zapcore"
)

// Unlimited disables the limit of Scan and Prefix.
const Unlimited = 0

// KV is a single row returned by an Iterator. Value is nil when the read was
// made with KeyOnly.
type KV struct {
	Key, Value []byte
}

// MarshalLogObject logs the key in hex and only the size of the value,
// values can be compressed blobs.
func (kv KV) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("key", Key(kv.Key).String())
	enc.AddInt("value_size", len(kv.Value))
	return nil
}

// Key renders raw store keys in hex when logged. Book keys mix a text prefix
// with raw mint bytes.
type Key []byte

func (k Key) String() string {
	return hex.EncodeToString(k)
}

// Limit caps the number of rows an iteration yields, zero or below meaning
// no cap.
type Limit int

func (l Limit) Reached(count uint64) bool {
	return l.Bounded() && count >= uint64(l)
}

func (l Limit) Bounded() bool   { return int(l) > 0 }
func (l Limit) Unbounded() bool { return !l.Bounded() }

func (l Limit) String() string {
	if l.Unbounded() {
		return "unlimited"
	}
	return strconv.Itoa(int(l))
}
