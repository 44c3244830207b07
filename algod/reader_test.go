package algod

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/algosend/transfer"
	"github.com/tranvictor/algosend/util/cache"
)

func TestAssetInfoServedFromCache(t *testing.T) {
	old := cache.CACHE_PATH
	cache.CACHE_PATH = filepath.Join(t.TempDir(), "cache.json")
	cache.Reset()
	t.Cleanup(func() {
		cache.CACHE_PATH = old
		cache.Reset()
	})

	want := transfer.Asset{Index: usdc, Name: "USDC", UnitName: "USDC", Decimals: 6}
	require.NoError(t, cache.SetJSONCache(assetCacheKey("testnet-v1.0", usdc), want))

	// a nil client proves no request is made
	r := NewReader(nil, "testnet-v1.0")
	got, err := r.AssetInfo(context.Background(), usdc)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.NotEqual(t, assetCacheKey("mainnet-v1.0", usdc), assetCacheKey("testnet-v1.0", usdc))
}
