package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempCache(t *testing.T) {
	t.Helper()
	old := CACHE_PATH
	CACHE_PATH = filepath.Join(t.TempDir(), "nested", "cache.json")
	Reset()
	t.Cleanup(func() {
		CACHE_PATH = old
		Reset()
	})
}

func TestCachePersists(t *testing.T) {
	useTempCache(t)

	_, found := GetCache("missing")
	assert.False(t, found)

	require.NoError(t, SetCache("Asset_31566704", "USDC"))
	Reset()

	// keys are case insensitive and survive a reload from disk
	v, found := GetCache("asset_31566704")
	assert.True(t, found)
	assert.Equal(t, "USDC", v)
}

func TestJSONCache(t *testing.T) {
	useTempCache(t)

	type asset struct {
		Name     string
		Decimals uint64
	}
	require.NoError(t, SetJSONCache("asset", asset{"USDC", 6}))
	Reset()

	var got asset
	require.True(t, GetJSONCache("asset", &got))
	assert.Equal(t, asset{"USDC", 6}, got)

	require.NoError(t, SetCache("broken", "{"))
	assert.False(t, GetJSONCache("broken", &got))
}
