package storetest

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/streamingfast/mintkey/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kvstoreTests = []struct {
	name string
	opts []store.Option
	test func(t *testing.T, driver store.KVStore)
}{
	{"basic", nil, TestBasic},
	{"limit", nil, TestLimit},
	{"key_only", nil, TestKeyOnly},
	{"batch_get", nil, TestBatchGet},
	{"batch_delete", nil, TestBatchDelete},
	{"empty_value_rejected", nil, TestEmptyValueRejected},
	{"empty_value_enabled", []store.Option{store.WithEmptyValue()}, TestEmptyValueEnabled},
	{"context_cancelled", nil, TestContextCancelled},
}

func TestAllKVStore(t *testing.T, driverName string, driverFactory DriverFactory) {
	for _, rt := range kvstoreTests {
		t.Run(driverName+"/"+rt.name, func(t *testing.T) {
			driver, closer := driverFactory(rt.opts...)
			defer closer()
			rt.test(t, driver)
		})
	}
}

var basicKVs = []store.KV{
	{Key: []byte("a"), Value: []byte("1")},
	{Key: []byte("ba"), Value: []byte("2")},
	{Key: []byte("ba1"), Value: []byte("3")},
	{Key: []byte("ba2"), Value: []byte("4")},
	{Key: []byte("bb"), Value: []byte("5")},
	{Key: []byte("c"), Value: []byte("6")},
}

func putAll(t *testing.T, driver store.KVStore, kvs []store.KV) {
	t.Helper()

	for _, kv := range kvs {
		require.NoError(t, driver.Put(context.Background(), kv.Key, kv.Value))
	}
	require.NoError(t, driver.FlushPuts(context.Background()))
}

func TestBasic(t *testing.T, driver store.KVStore) {
	all := basicKVs
	putAll(t, driver, all)

	for _, kv := range all {
		v, err := driver.Get(context.Background(), kv.Key)
		require.NoError(t, err)
		require.Equal(t, kv.Value, v)
	}

	_, err := driver.Get(context.Background(), []byte("keydoesnotexists"))
	require.Equal(t, store.ErrNotFound, err)

	testPrefix(t, driver, nil, all)
	testPrefix(t, driver, []byte("a"), all[:1])
	testPrefix(t, driver, []byte("c"), all[5:])
	testPrefix(t, driver, []byte("b"), all[1:5])
	testPrefix(t, driver, []byte("ba"), all[1:4])
	testPrefix(t, driver, []byte("d"), nil)

	testScan(t, driver, []byte("a"), []byte("a"), 0, nil)
	testScan(t, driver, []byte("a"), []byte("b"), 0, all[:1])
	testScan(t, driver, []byte("b"), []byte("a"), 0, nil)
	testScan(t, driver, []byte("b"), []byte("bb"), 0, all[1:4])
	testScan(t, driver, []byte("b"), []byte("c"), 0, all[1:5])
	testScan(t, driver, []byte("a"), []byte("c"), 0, all[:5])
	testScan(t, driver, []byte("ba"), []byte("bb"), 0, all[1:4])
	testScan(t, driver, nil, nil, 0, nil)
	testScan(t, driver, nil, []byte("c"), 0, all[:5])
	testScan(t, driver, []byte(""), []byte("c"), 0, all[:5])
	testScan(t, driver, []byte("b"), nil, 0, nil)

	// Overwrite
	putAll(t, driver, []store.KV{{Key: []byte("a"), Value: []byte("10")}})
	v, err := driver.Get(context.Background(), []byte("a"))
	require.NoError(t, err)
	require.Equal(t, []byte("10"), v)
}

func TestLimit(t *testing.T, driver store.KVStore) {
	all := basicKVs
	putAll(t, driver, all)

	testScan(t, driver, []byte("a"), []byte("c"), 2, all[:2])
	testScan(t, driver, []byte("a"), []byte("c"), 100, all[:5])

	got, err := driver.Prefix(context.Background(), []byte("b"), 3).All()
	require.NoError(t, err)
	require.Equal(t, all[1:4], got)
}

func TestKeyOnly(t *testing.T, driver store.KVStore) {
	putAll(t, driver, basicKVs)

	got, err := driver.Prefix(context.Background(), []byte("ba"), store.Unlimited, store.KeyOnly()).All()
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, kv := range got {
		assert.Equal(t, basicKVs[1+i].Key, kv.Key)
		assert.Nil(t, kv.Value)
	}

	got, err = driver.Scan(context.Background(), []byte("a"), []byte("b"), store.Unlimited, store.KeyOnly()).All()
	require.NoError(t, err)
	require.Equal(t, []store.KV{{Key: []byte("a")}}, got)
}

func TestBatchGet(t *testing.T, driver store.KVStore) {
	putAll(t, driver, basicKVs)

	got, err := driver.BatchGet(context.Background(), [][]byte{[]byte("c"), []byte("a"), []byte("bb")}).All()
	require.NoError(t, err)
	require.Equal(t, []store.KV{basicKVs[5], basicKVs[0], basicKVs[4]}, got)

	_, err = driver.BatchGet(context.Background(), [][]byte{[]byte("a"), []byte("missing")}).All()
	require.Equal(t, store.ErrNotFound, err)
}

func TestBatchDelete(t *testing.T, driver store.KVStore) {
	putAll(t, driver, basicKVs)

	require.NoError(t, driver.BatchDelete(context.Background(), [][]byte{[]byte("a"), []byte("bb"), []byte("notthere")}))

	_, err := driver.Get(context.Background(), []byte("a"))
	require.Equal(t, store.ErrNotFound, err)

	testPrefix(t, driver, nil, []store.KV{basicKVs[1], basicKVs[2], basicKVs[3], basicKVs[5]})
}

func TestEmptyValueRejected(t *testing.T, driver store.KVStore) {
	err := driver.Put(context.Background(), []byte("a"), nil)
	require.Equal(t, store.ErrEmptyValue, err)
}

func TestEmptyValueEnabled(t *testing.T, driver store.KVStore) {
	putAll(t, driver, []store.KV{{Key: []byte("a"), Value: []byte{}}})

	v, err := driver.Get(context.Background(), []byte("a"))
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestContextCancelled(t *testing.T, driver store.KVStore) {
	var kvs []store.KV
	for i := 0; i < 250; i++ {
		kvs = append(kvs, store.KV{Key: []byte(fmt.Sprintf("k%04d", i)), Value: []byte("v")})
	}
	putAll(t, driver, kvs)

	ctx, cancel := context.WithCancel(context.Background())
	itr := driver.Prefix(ctx, []byte("k"), store.Unlimited)
	cancel()

	count := 0
	for itr.Next() {
		count++
	}

	require.Error(t, itr.Err())
	assert.True(t, errors.Is(itr.Err(), context.Canceled))
	assert.Less(t, count, len(kvs))
}

func testPrefix(t *testing.T, driver store.KVStore, prefix []byte, exp []store.KV) {
	t.Helper()

	got, err := driver.Prefix(context.Background(), prefix, store.Unlimited).All()
	require.NoError(t, err, "prefix %q", string(prefix))
	require.Equal(t, exp, got, "prefix %q", string(prefix))
}

func testScan(t *testing.T, driver store.KVStore, start, end []byte, limit int, exp []store.KV) {
	t.Helper()

	got, err := driver.Scan(context.Background(), start, end, limit).All()
	require.NoError(t, err, "scan [%q, %q)", string(start), string(end))
	require.Equal(t, exp, got, "scan [%q, %q)", string(start), string(end))
}
