package algod

import (
	"context"
	"fmt"

	sdkalgod "github.com/algorand/go-algorand-sdk/v2/client/v2/algod"
	"github.com/algorand/go-algorand-sdk/v2/types"

	"github.com/tranvictor/algosend/transfer"
	"github.com/tranvictor/algosend/util/cache"
	"github.com/tranvictor/algosend/util/log"
)

// Reader queries asset data from an algod node.
type Reader struct {
	client  *sdkalgod.Client
	genesis string
}

// NewReader returns a reader over client. genesis namespaces cached asset
// descriptors so the same index on two networks doesn't collide.
func NewReader(client *sdkalgod.Client, genesis string) *Reader {
	return &Reader{client: client, genesis: genesis}
}

func assetCacheKey(genesis string, index uint64) string {
	return fmt.Sprintf("%s_asset_%d", genesis, index)
}

// AssetInfo returns the descriptor of the asset. Asset params are immutable
// once created so descriptors are served from the local cache when present.
func (r *Reader) AssetInfo(ctx context.Context, index uint64) (transfer.Asset, error) {
	key := assetCacheKey(r.genesis, index)
	asset := transfer.Asset{}
	if cache.GetJSONCache(key, &asset) && asset.Index == index {
		return asset, nil
	}

	res, err := r.client.GetAssetByID(index).Do(ctx)
	if err != nil {
		return transfer.Asset{}, fmt.Errorf("couldn't get asset %d: %w", index, err)
	}
	asset = transfer.Asset{
		Index:    index,
		Name:     res.Params.Name,
		UnitName: res.Params.UnitName,
		Decimals: res.Params.Decimals,
	}
	if err := cache.SetJSONCache(key, asset); err != nil {
		log.Chain.Warn().Err(err).Uint64("asset", index).Msg("couldn't cache asset descriptor")
	}
	return asset, nil
}

// AssetBalance returns the holding of addr in raw units. It fails when addr
// is not opted in to the asset.
func (r *Reader) AssetBalance(ctx context.Context, addr string, index uint64) (uint64, error) {
	res, err := r.client.AccountAssetInformation(addr, index).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("couldn't get %s holding of asset %d: %w", addr, index, err)
	}
	log.Chain.Debug().
		Str("address", addr).
		Uint64("asset", index).
		Uint64("amount", res.AssetHolding.Amount).
		Uint64("round", res.Round).
		Msg("asset holding")
	return res.AssetHolding.Amount, nil
}

func (r *Reader) SuggestedParams(ctx context.Context) (types.SuggestedParams, error) {
	sp, err := r.client.SuggestedParams().Do(ctx)
	if err != nil {
		return types.SuggestedParams{}, fmt.Errorf("couldn't get suggested params: %w", err)
	}
	return sp, nil
}
