package storetest

import (
	"testing"

	"github.com/streamingfast/mintkey/store"
)

type DriverCleanupFunc func()
type DriverFactory func(opts ...store.Option) (store.KVStore, DriverCleanupFunc)

// TestAll runs the conformance suite every driver must pass.
func TestAll(t *testing.T, driverName string, driverFactory DriverFactory) {
	TestAllKVStore(t, driverName, driverFactory)
}
