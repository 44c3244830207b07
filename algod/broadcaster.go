package algod

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/types"

	"github.com/tranvictor/algosend/transfer"
	"github.com/tranvictor/algosend/util/log"
)

// DefaultWaitRounds is how many rounds Submit waits for the transaction to
// be confirmed.
const DefaultWaitRounds = 10

// Broadcaster submits signed payloads to one algod node. A pool rejection
// comes back as the node's error text so callers can extract the reason.
type Broadcaster struct {
	node Node
	// WaitRounds is zero when Submit returns as soon as the node accepted
	// the payload.
	WaitRounds uint64
}

func NewBroadcaster(node Node, waitRounds uint64) *Broadcaster {
	return &Broadcaster{node: node, WaitRounds: waitRounds}
}

func (b *Broadcaster) Submit(ctx context.Context, signed []byte) (transfer.Confirmation, error) {
	start := time.Now()
	txid, err := b.node.SendRawTransaction(ctx, signed)
	if err != nil {
		log.Chain.Debug().Err(err).Msg("broadcast rejected")
		return transfer.Confirmation{}, fmt.Errorf("broadcasting: %w", err)
	}
	log.Chain.Info().Str("txid", txid).Dur("took", time.Since(start)).Msg("broadcasted")

	conf := transfer.Confirmation{TxID: txid}
	if b.WaitRounds == 0 {
		return conf, nil
	}
	round, err := b.node.WaitForConfirmation(ctx, txid, b.WaitRounds)
	if err != nil {
		return conf, fmt.Errorf("waiting for %s: %w", txid, err)
	}
	conf.ConfirmedRound = round
	log.Chain.Info().Str("txid", txid).Uint64("round", round).Msg("confirmed")
	return conf, nil
}

// DryBroadcaster writes the base64 encoded payload to Out instead of
// broadcasting it. The output can be fed to `goal clerk rawsend`.
type DryBroadcaster struct {
	Out io.Writer
}

func (b *DryBroadcaster) Submit(ctx context.Context, signed []byte) (transfer.Confirmation, error) {
	txid, err := FirstTxID(signed)
	if err != nil {
		return transfer.Confirmation{}, err
	}
	if _, err := fmt.Fprintln(b.Out, base64.StdEncoding.EncodeToString(signed)); err != nil {
		return transfer.Confirmation{}, err
	}
	return transfer.Confirmation{TxID: txid}, nil
}

// FirstTxID returns the id of the first transaction of a signed payload,
// which is the id algod reports for the whole payload.
func FirstTxID(signed []byte) (string, error) {
	stx := types.SignedTxn{}
	if err := msgpack.Decode(signed, &stx); err != nil {
		return "", fmt.Errorf("payload is not a signed transaction: %w", err)
	}
	return crypto.GetTxID(stx.Txn), nil
}
