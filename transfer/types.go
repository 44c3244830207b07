// Package transfer implements the asset transfer dialog: the form state an
// operator fills in (amount and receiver), its validation, the resolution of
// `.algo` names to ledger addresses and the hand-off to the wallet tooling
// that builds, signs and broadcasts the transaction.
//
// The package has no knowledge of how the dialog is drawn. The interactive
// modal lives in package tui, the one-shot command in package cmd; both drive
// the same Dialog.
package transfer

import (
	"context"
	"fmt"

	"github.com/tranvictor/algosend/common"
)

// Asset describes the fungible token being sent. It is supplied by the
// caller and never changed by the dialog.
type Asset struct {
	Index    uint64
	Name     string
	UnitName string
	Decimals uint64
}

func (a Asset) String() string {
	return fmt.Sprintf("%s - %d", a.Name, a.Index)
}

// Props are the inbound properties of a Dialog.
type Props struct {
	Open bool
	// Balance is the sender's holding of Asset in raw ledger units.
	Balance uint64
	// OnClose is invoked every time the dialog transitions to closed.
	OnClose func()
	Asset   Asset
}

// Item is a single transfer handed to a Builder. Amount is token
// denominated; scaling by 10^Decimals is the builder's job.
type Item struct {
	Amount   float64
	Receiver string
	Decimals uint64
	Index    uint64
}

// BaseUnits returns Amount scaled to raw ledger units.
func (it Item) BaseUnits() (uint64, error) {
	return common.FloatToBaseUnits(it.Amount, it.Decimals)
}

// Confirmation is what a Broadcaster reports back for an accepted payload.
type Confirmation struct {
	TxID string
	// ConfirmedRound is zero when the broadcaster did not wait for the
	// transaction to be included in a block.
	ConfirmedRound uint64
}

// AddressValidator performs a syntactic address check.
type AddressValidator interface {
	IsValidAddress(addr string) bool
}

// NameResolver maps a lower-cased domain name (eg. "alice.algo") to a ledger
// address. The returned string is not trusted: callers validate it.
type NameResolver interface {
	ResolveDomain(ctx context.Context, name string) (string, error)
}

// Builder builds and signs the transaction(s) for items and returns the
// payload ready to be broadcasted.
type Builder interface {
	BuildAndSign(ctx context.Context, items []Item) ([]byte, error)
}

// Broadcaster submits a signed payload to the network.
type Broadcaster interface {
	Submit(ctx context.Context, signed []byte) (Confirmation, error)
}

type NoticeKind uint8

const (
	NoticeInfo NoticeKind = iota
	NoticeError
	NoticeSuccess
	NoticePending
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeInfo:
		return "info"
	case NoticeError:
		return "error"
	case NoticeSuccess:
		return "success"
	case NoticePending:
		return "pending"
	}
	return fmt.Sprintf("NoticeKind(%d)", uint8(k))
}

// Notifier is the side channel the dialog reports to. A pending notice stays
// up until the next notice replaces it.
type Notifier interface {
	Notify(kind NoticeKind, msg string)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(kind NoticeKind, msg string)

func (f NotifierFunc) Notify(kind NoticeKind, msg string) {
	f(kind, msg)
}

type nopNotifier struct{}

func (nopNotifier) Notify(NoticeKind, string) {}
