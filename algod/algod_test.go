package algod

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/algosend/transfer"
)

const usdc = 31566704

type stubParams struct {
	err error
}

func (p stubParams) SuggestedParams(context.Context) (types.SuggestedParams, error) {
	if p.err != nil {
		return types.SuggestedParams{}, p.err
	}
	return types.SuggestedParams{
		Fee:             1000,
		FlatFee:         true,
		MinFee:          1000,
		GenesisID:       "testnet-v1.0",
		GenesisHash:     bytes.Repeat([]byte{7}, 32),
		FirstRoundValid: 1000,
		LastRoundValid:  2000,
	}, nil
}

func newSigner(t *testing.T) *KeySigner {
	t.Helper()
	acc := crypto.GenerateAccount()
	s, err := NewKeySigner(acc.PrivateKey)
	require.NoError(t, err)
	require.Equal(t, acc.Address.String(), s.Address())
	return s
}

func decodeSigned(t *testing.T, payload []byte) []types.SignedTxn {
	t.Helper()
	res := []types.SignedTxn{}
	for len(payload) > 0 {
		stx := types.SignedTxn{}
		require.NoError(t, msgpack.Decode(payload, &stx))
		res = append(res, stx)
		payload = payload[len(msgpack.Encode(stx)):]
	}
	return res
}

func TestValidator(t *testing.T) {
	v := Validator{}
	addr := crypto.GenerateAccount().Address.String()
	assert.True(t, v.IsValidAddress(addr))
	assert.False(t, v.IsValidAddress(""))
	assert.False(t, v.IsValidAddress("alice.algo"))
	assert.False(t, v.IsValidAddress(strings.ToLower(addr)))

	// changing the public key part breaks the checksum
	flipped := byte('A')
	if addr[10] == 'A' {
		flipped = 'B'
	}
	assert.False(t, v.IsValidAddress(addr[:10]+string(flipped)+addr[11:]))
}

func TestBuildAndSignSingleTransfer(t *testing.T) {
	signer := newSigner(t)
	receiver := crypto.GenerateAccount().Address
	b := &TransferBuilder{Params: stubParams{}, Signer: signer}

	payload, err := b.BuildAndSign(context.Background(), []transfer.Item{
		{Amount: 1.5, Receiver: receiver.String(), Decimals: 6, Index: usdc},
	})
	require.NoError(t, err)

	txns := decodeSigned(t, payload)
	require.Len(t, txns, 1)
	tx := txns[0].Txn
	assert.Equal(t, types.AssetTransferTx, tx.Type)
	assert.Equal(t, signer.Address(), tx.Sender.String())
	assert.Equal(t, receiver, tx.AssetReceiver)
	assert.Equal(t, uint64(1500000), tx.AssetAmount)
	assert.Equal(t, types.AssetIndex(usdc), tx.XferAsset)
	assert.Equal(t, types.Digest{}, tx.Group)
	assert.NotEqual(t, types.Signature{}, txns[0].Sig)

	txid, err := FirstTxID(payload)
	require.NoError(t, err)
	assert.Equal(t, crypto.GetTxID(tx), txid)
}

func TestBuildAndSignGroup(t *testing.T) {
	signer := newSigner(t)
	b := &TransferBuilder{Params: stubParams{}, Signer: signer, Note: []byte("algosend")}
	items := []transfer.Item{
		{Amount: 1, Receiver: crypto.GenerateAccount().Address.String(), Decimals: 0, Index: usdc},
		{Amount: 2, Receiver: crypto.GenerateAccount().Address.String(), Decimals: 0, Index: usdc},
	}

	payload, err := b.BuildAndSign(context.Background(), items)
	require.NoError(t, err)

	txns := decodeSigned(t, payload)
	require.Len(t, txns, 2)
	assert.NotEqual(t, types.Digest{}, txns[0].Txn.Group)
	assert.Equal(t, txns[0].Txn.Group, txns[1].Txn.Group)
	assert.Equal(t, uint64(2), txns[1].Txn.AssetAmount)
	assert.Equal(t, []byte("algosend"), txns[1].Txn.Note)
}

func TestBuildAndSignErrors(t *testing.T) {
	signer := newSigner(t)
	receiver := crypto.GenerateAccount().Address.String()
	ctx := context.Background()

	b := &TransferBuilder{Params: stubParams{}, Signer: signer}
	_, err := b.BuildAndSign(ctx, nil)
	assert.Error(t, err)

	_, err = b.BuildAndSign(ctx, []transfer.Item{{Amount: 0.0000001, Receiver: receiver, Decimals: 6, Index: usdc}})
	assert.ErrorContains(t, err, "invalid amount")

	_, err = b.BuildAndSign(ctx, []transfer.Item{{Amount: 1, Receiver: "alice.algo", Decimals: 6, Index: usdc}})
	assert.ErrorContains(t, err, "alice.algo")

	tooMany := make([]transfer.Item, maxGroupSize+1)
	_, err = b.BuildAndSign(ctx, tooMany)
	assert.ErrorContains(t, err, "limit")

	down := errors.New("node down")
	b = &TransferBuilder{Params: stubParams{err: down}, Signer: signer}
	_, err = b.BuildAndSign(ctx, []transfer.Item{{Amount: 1, Receiver: receiver, Decimals: 6, Index: usdc}})
	assert.ErrorIs(t, err, down)
}

type mockNode struct {
	mock.Mock
}

func (m *mockNode) SendRawTransaction(ctx context.Context, signed []byte) (string, error) {
	args := m.Called(ctx, signed)
	return args.String(0), args.Error(1)
}

func (m *mockNode) WaitForConfirmation(ctx context.Context, txid string, rounds uint64) (uint64, error) {
	args := m.Called(ctx, txid, rounds)
	return args.Get(0).(uint64), args.Error(1)
}

func TestBroadcasterWaitsForConfirmation(t *testing.T) {
	ctx := context.Background()
	node := &mockNode{}
	node.On("SendRawTransaction", ctx, []byte("signed")).Return("TXID", nil).Once()
	node.On("WaitForConfirmation", ctx, "TXID", uint64(DefaultWaitRounds)).Return(uint64(4242), nil).Once()

	conf, err := NewBroadcaster(node, DefaultWaitRounds).Submit(ctx, []byte("signed"))
	require.NoError(t, err)
	assert.Equal(t, transfer.Confirmation{TxID: "TXID", ConfirmedRound: 4242}, conf)
	node.AssertExpectations(t)
}

func TestBroadcasterNoWait(t *testing.T) {
	ctx := context.Background()
	node := &mockNode{}
	node.On("SendRawTransaction", ctx, []byte("signed")).Return("TXID", nil).Once()

	conf, err := NewBroadcaster(node, 0).Submit(ctx, []byte("signed"))
	require.NoError(t, err)
	assert.Equal(t, transfer.Confirmation{TxID: "TXID"}, conf)
	node.AssertNotCalled(t, "WaitForConfirmation", mock.Anything, mock.Anything, mock.Anything)
}

func TestBroadcasterKeepsPoolRejection(t *testing.T) {
	ctx := context.Background()
	node := &mockNode{}
	rejection := errors.New("HTTP 400 Bad Request: TransactionPool.Remember: transaction already in ledger")
	node.On("SendRawTransaction", ctx, mock.Anything).Return("", rejection)

	_, err := NewBroadcaster(node, DefaultWaitRounds).Submit(ctx, []byte("signed"))
	require.ErrorIs(t, err, rejection)
	assert.Equal(t, "transaction already in ledger", transfer.FailureMessage(err))
}

func TestBroadcasterWaitFailure(t *testing.T) {
	ctx := context.Background()
	node := &mockNode{}
	node.On("SendRawTransaction", ctx, mock.Anything).Return("TXID", nil)
	node.On("WaitForConfirmation", ctx, "TXID", uint64(3)).Return(uint64(0), errors.New("timed out"))

	conf, err := NewBroadcaster(node, 3).Submit(ctx, []byte("signed"))
	assert.ErrorContains(t, err, "timed out")
	assert.Equal(t, "TXID", conf.TxID)
}

func TestDryBroadcaster(t *testing.T) {
	signer := newSigner(t)
	b := &TransferBuilder{Params: stubParams{}, Signer: signer}
	payload, err := b.BuildAndSign(context.Background(), []transfer.Item{
		{Amount: 1, Receiver: crypto.GenerateAccount().Address.String(), Decimals: 6, Index: usdc},
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	conf, err := (&DryBroadcaster{Out: out}).Submit(context.Background(), payload)
	require.NoError(t, err)
	assert.NotEmpty(t, conf.TxID)
	assert.Zero(t, conf.ConfirmedRound)
	assert.Equal(t, base64.StdEncoding.EncodeToString(payload)+"\n", out.String())

	_, err = (&DryBroadcaster{Out: out}).Submit(context.Background(), []byte{0xc1})
	assert.Error(t, err)
}
