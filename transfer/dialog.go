package transfer

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/tranvictor/algosend/common"
	"github.com/tranvictor/algosend/util/log"
)

// DomainSuffix marks receivers that must go through the name resolver.
const DomainSuffix = ".algo"

const (
	msgFillAllFields   = "Please fill all fields"
	msgAmountNotPosit  = "Amount must be greater than 0"
	msgInsufficient    = "Insufficient balance"
	msgInvalidReceiver = "Invalid receiver address!"
	msgSending         = "Sending transaction..."
	msgSent            = "Transaction sent successfully!"

	labelSend    = "Send"
	labelSending = "Sending..."
)

// Deps are the collaborators of a Dialog. Notifier may be nil.
type Deps struct {
	Validator   AddressValidator
	Resolver    NameResolver
	Builder     Builder
	Broadcaster Broadcaster
	Notifier    Notifier
}

// Dialog owns one transfer form. It is not safe for concurrent mutation:
// SetAmount, SetReceiver, Max, Open, Close, Begin and Finish must be called
// from a single goroutine (the UI loop). ResolveReceiver and Send do not touch
// the form and may run on a worker.
type Dialog struct {
	props Props
	deps  Deps

	form Form
	open bool
	// session changes every time the dialog opens or closes so results of
	// abandoned work can be told apart.
	session uint64
}

func NewDialog(props Props, deps Deps) *Dialog {
	if deps.Notifier == nil {
		deps.Notifier = nopNotifier{}
	}
	return &Dialog{
		props: props,
		deps:  deps,
		open:  props.Open,
	}
}

func (d *Dialog) Form() Form {
	return d.form
}

func (d *Dialog) IsOpen() bool {
	return d.open
}

func (d *Dialog) Session() uint64 {
	return d.session
}

func (d *Dialog) Asset() Asset {
	return d.props.Asset
}

// Balance is the available balance in raw ledger units.
func (d *Dialog) Balance() uint64 {
	return d.props.Balance
}

func (d *Dialog) Title() string {
	return d.props.Asset.String()
}

// Available is the balance in token units.
func (d *Dialog) Available() float64 {
	return common.BaseUnitsToFloat(d.props.Balance, d.props.Asset.Decimals)
}

func (d *Dialog) AmountPlaceholder() string {
	return "Balance: " + FormatAmount(d.Available())
}

func (d *Dialog) ReceiverPlaceholder() string {
	return "algo or .algo address"
}

// SendLabel is the label of the Send action.
func (d *Dialog) SendLabel() string {
	if d.form.Submitting() {
		return labelSending
	}
	return labelSend
}

// CanSend reports whether the Send action is enabled.
func (d *Dialog) CanSend() bool {
	return d.open && !d.form.Submitting()
}

func (d *Dialog) SetAmount(text string) {
	if !d.open {
		return
	}
	d.form.Amount = text
}

func (d *Dialog) SetReceiver(text string) {
	if !d.open {
		return
	}
	d.form.Receiver = text
}

// Max fills the amount field with the whole available balance. It never
// submits.
func (d *Dialog) Max() {
	d.SetAmount(FormatAmount(d.Available()))
}

// Open shows a closed dialog again with an empty form.
func (d *Dialog) Open() {
	if d.open {
		return
	}
	d.form = Form{}
	d.open = true
	d.session++
}

// Close clears the form and closes the dialog whatever it is doing. Work in
// flight is abandoned: its outcome will be ignored by Finish.
func (d *Dialog) Close() {
	d.form, _, _ = d.form.Transition(EventReset)
	if !d.open {
		return
	}
	d.open = false
	d.session++
	log.Dialog.Debug().Uint64("asset", d.props.Asset.Index).Msg("dialog closed")
	if d.props.OnClose != nil {
		d.props.OnClose()
	}
}

func (d *Dialog) info(msg string) error {
	d.deps.Notifier.Notify(NoticeInfo, msg)
	return &ValidationError{Message: msg}
}

// Validate checks the form fields in order and returns the parsed amount.
// The first failing check is reported as an info notice.
func (d *Dialog) Validate() (float64, error) {
	if d.form.Amount == "" || d.form.Receiver == "" {
		return 0, d.info(msgFillAllFields)
	}
	amount, ok := ParseAmount(d.form.Amount)
	if !ok || !(amount > 0) {
		return 0, d.info(msgAmountNotPosit)
	}
	if amount > d.Available() {
		return 0, d.info(msgInsufficient)
	}
	return amount, nil
}

// ResolveReceiver turns the receiver text into a ledger address. Text
// containing DomainSuffix (case insensitive) is resolved through the name
// resolver, anything else must already be an address.
func (d *Dialog) ResolveReceiver(ctx context.Context, text string) (string, error) {
	addr := strings.TrimSpace(text)
	lower := strings.ToLower(addr)
	if strings.Contains(lower, DomainSuffix) {
		resolved, err := d.deps.Resolver.ResolveDomain(ctx, lower)
		if err != nil {
			log.Dialog.Debug().Err(err).Str("name", lower).Msg("name resolution failed")
			return "", d.invalidReceiver(err)
		}
		if !d.deps.Validator.IsValidAddress(resolved) {
			log.Dialog.Debug().Str("name", lower).Str("resolved", resolved).Msg("name resolved to an invalid address")
			return "", d.invalidReceiver(nil)
		}
		return resolved, nil
	}
	if !d.deps.Validator.IsValidAddress(addr) {
		return "", d.invalidReceiver(nil)
	}
	return addr, nil
}

func (d *Dialog) invalidReceiver(cause error) error {
	d.deps.Notifier.Notify(NoticeError, msgInvalidReceiver)
	return &ValidationError{Message: msgInvalidReceiver, Err: cause}
}

// Begin enters the submitting state and returns the session the send belongs
// to, to be handed back to Finish.
func (d *Dialog) Begin() (uint64, error) {
	if !d.open {
		return 0, ErrClosed
	}
	next, _, err := d.form.Transition(EventBegin)
	if err != nil {
		return 0, err
	}
	d.form = next
	return d.session, nil
}

// Send builds, signs and broadcasts a single transfer of amount tokens to
// address. It only reads immutable dialog properties.
func (d *Dialog) Send(ctx context.Context, amount float64, address string) (Confirmation, error) {
	asset := d.props.Asset
	items := []Item{{
		Amount:   amount,
		Receiver: address,
		Decimals: asset.Decimals,
		Index:    asset.Index,
	}}
	signed, err := d.deps.Builder.BuildAndSign(ctx, items)
	if err != nil {
		return Confirmation{}, d.failed(err)
	}

	d.deps.Notifier.Notify(NoticePending, msgSending)
	conf, err := d.deps.Broadcaster.Submit(ctx, signed)
	if err != nil {
		return Confirmation{}, d.failed(err)
	}
	log.Dialog.Info().
		Str("txid", conf.TxID).
		Uint64("asset", asset.Index).
		Str("receiver", address).
		Msg("transfer submitted")
	d.deps.Notifier.Notify(NoticeSuccess, msgSent)
	return conf, nil
}

func (d *Dialog) failed(err error) error {
	failure := newSubmissionFailure(err)
	log.Dialog.Warn().Err(err).Msg("transfer failed")
	d.deps.Notifier.Notify(NoticeError, failure.Message)
	return failure
}

// Finish leaves the submitting state of session. On success the fields are
// cleared and the dialog closes; on failure the fields are kept and the
// dialog stays open. It returns false when session was abandoned by a close
// in the meantime, in which case nothing changes.
func (d *Dialog) Finish(session uint64, sendErr error) bool {
	if !d.open || session != d.session {
		return false
	}
	ev := EventSucceeded
	if sendErr != nil {
		ev = EventFailed
	}
	next, closing, err := d.form.Transition(ev)
	if err != nil {
		return false
	}
	d.form = next
	if closing {
		d.open = false
		d.session++
		if d.props.OnClose != nil {
			d.props.OnClose()
		}
	}
	return true
}

// Submit runs the whole send flow synchronously: validation, receiver
// resolution, build/sign/broadcast and the final state transition.
func (d *Dialog) Submit(ctx context.Context) (Confirmation, error) {
	if !d.open {
		return Confirmation{}, ErrClosed
	}
	amount, err := d.Validate()
	if err != nil {
		return Confirmation{}, err
	}
	address, err := d.ResolveReceiver(ctx, d.form.Receiver)
	if err != nil {
		return Confirmation{}, err
	}
	session, err := d.Begin()
	if err != nil {
		return Confirmation{}, err
	}
	conf, err := d.Send(ctx, amount, address)
	d.Finish(session, err)
	return conf, err
}

// ParseAmount parses user typed amount text. Surrounding blanks are ignored.
func ParseAmount(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		// out of range input still parses, to +-Inf or 0
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
			return 0, false
		}
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// FormatAmount renders v as the shortest decimal string that parses back to
// v, eg. 5 -> "5", 0.5 -> "0.5".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
