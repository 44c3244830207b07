// Package algod is the chain side of a transfer: it reads asset data from an
// algod node, builds and signs asset transfer transactions and broadcasts
// them.
package algod

import (
	"context"
	"fmt"
	"os"

	sdkalgod "github.com/algorand/go-algorand-sdk/v2/client/v2/algod"
	"github.com/algorand/go-algorand-sdk/v2/transaction"

	"github.com/tranvictor/algosend/networks"
)

// TokenVariableName is read when no algod token is configured. Public
// endpoints such as algonode accept an empty token.
const TokenVariableName = "ALGOD_TOKEN"

// NewClient dials the algod endpoint of n, or node when it is not empty.
func NewClient(n networks.Network, node string, token string) (*sdkalgod.Client, error) {
	if token == "" {
		token = os.Getenv(TokenVariableName)
	}
	url := node
	if url == "" {
		url = networks.GetNodeURL(n)
	}
	if url == "" {
		return nil, fmt.Errorf("network %s has no algod node configured, set %s", n.GetName(), n.GetNodeVariableName())
	}
	client, err := sdkalgod.MakeClient(url, token)
	if err != nil {
		return nil, fmt.Errorf("couldn't create algod client for %s: %w", url, err)
	}
	return client, nil
}

// Node is the part of algod a Broadcaster needs.
type Node interface {
	SendRawTransaction(ctx context.Context, signed []byte) (string, error)
	// WaitForConfirmation returns the round txid was confirmed in.
	WaitForConfirmation(ctx context.Context, txid string, rounds uint64) (uint64, error)
}

type sdkNode struct {
	client *sdkalgod.Client
}

// NewNode adapts an sdk client to Node.
func NewNode(client *sdkalgod.Client) Node {
	return &sdkNode{client: client}
}

func (n *sdkNode) SendRawTransaction(ctx context.Context, signed []byte) (string, error) {
	return n.client.SendRawTransaction(signed).Do(ctx)
}

func (n *sdkNode) WaitForConfirmation(ctx context.Context, txid string, rounds uint64) (uint64, error) {
	info, err := transaction.WaitForConfirmation(n.client, txid, rounds, ctx)
	if err != nil {
		return 0, err
	}
	return info.ConfirmedRound, nil
}
