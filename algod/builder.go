package algod

import (
	"context"
	"fmt"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/transaction"
	"github.com/algorand/go-algorand-sdk/v2/types"

	"github.com/tranvictor/algosend/transfer"
	"github.com/tranvictor/algosend/util/log"
)

// maxGroupSize is the protocol limit of transactions in an atomic group.
const maxGroupSize = 16

type ParamsSource interface {
	SuggestedParams(ctx context.Context) (types.SuggestedParams, error)
}

// TransferBuilder builds one asset transfer per item, all sent from the
// signer's address. More than one item makes an atomic group.
type TransferBuilder struct {
	Params ParamsSource
	Signer Signer
	Note   []byte
}

func (b *TransferBuilder) BuildAndSign(ctx context.Context, items []transfer.Item) ([]byte, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("nothing to send")
	}
	if len(items) > maxGroupSize {
		return nil, fmt.Errorf("can't group %d transfers, the limit is %d", len(items), maxGroupSize)
	}

	sp, err := b.Params.SuggestedParams(ctx)
	if err != nil {
		return nil, err
	}

	from := b.Signer.Address()
	txns := make([]types.Transaction, 0, len(items))
	for _, it := range items {
		amount, err := it.BaseUnits()
		if err != nil {
			return nil, fmt.Errorf("invalid amount %v: %w", it.Amount, err)
		}
		tx, err := transaction.MakeAssetTransferTxn(from, it.Receiver, amount, b.Note, sp, "", it.Index)
		if err != nil {
			return nil, fmt.Errorf("couldn't build transfer to %s: %w", it.Receiver, err)
		}
		txns = append(txns, tx)
	}

	if len(txns) > 1 {
		gid, err := crypto.ComputeGroupID(txns)
		if err != nil {
			return nil, fmt.Errorf("couldn't compute group id: %w", err)
		}
		for i := range txns {
			txns[i].Group = gid
		}
	}

	signed := []byte{}
	for _, tx := range txns {
		txid, stx, err := b.Signer.SignTransaction(tx)
		if err != nil {
			return nil, fmt.Errorf("couldn't sign transaction: %w", err)
		}
		log.Chain.Debug().
			Str("txid", txid).
			Str("from", from).
			Str("to", tx.AssetReceiver.String()).
			Uint64("asset", uint64(tx.XferAsset)).
			Uint64("amount", tx.AssetAmount).
			Msg("signed asset transfer")
		signed = append(signed, stx...)
	}
	return signed, nil
}
