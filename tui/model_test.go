package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/algosend/transfer"
)

const bobAddr = "BOBBYB3QTMJGQ3NNEJNLJ2W4ND7FR5JTHQRIJA5TZN2BSM57QNKX62NETA"

type validator struct{}

func (validator) IsValidAddress(addr string) bool {
	return len(addr) == 58 && strings.ToUpper(addr) == addr
}

type resolver map[string]string

func (r resolver) ResolveDomain(_ context.Context, name string) (string, error) {
	if addr, ok := r[name]; ok {
		return addr, nil
	}
	return "", errors.New("not found")
}

type builder struct{}

func (builder) BuildAndSign(context.Context, []transfer.Item) ([]byte, error) {
	return []byte("signed"), nil
}

type broadcaster struct {
	err error
}

func (b broadcaster) Submit(context.Context, []byte) (transfer.Confirmation, error) {
	if b.err != nil {
		return transfer.Confirmation{}, b.err
	}
	return transfer.Confirmation{TxID: "TX1", ConfirmedRound: 7}, nil
}

type harness struct {
	model   *Model
	dialog  *transfer.Dialog
	notices *ChannelNotifier
	closes  int
}

func newHarness(t *testing.T, bc broadcaster) *harness {
	t.Helper()
	h := &harness{notices: NewChannelNotifier(16)}
	h.dialog = transfer.NewDialog(transfer.Props{
		Open:    true,
		Balance: 5_000_000,
		OnClose: func() { h.closes++ },
		Asset:   transfer.Asset{Index: 31566704, Name: "USDC", Decimals: 6},
	}, transfer.Deps{
		Validator:   validator{},
		Resolver:    resolver{"bob.algo": bobAddr},
		Builder:     builder{},
		Broadcaster: bc,
		Notifier:    h.notices,
	})
	h.model = New(context.Background(), h.dialog, h.notices)
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	_, cmd := h.model.Update(msg)
	return cmd
}

func (h *harness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *harness) fill(amount, receiver string) {
	h.typeText(amount)
	h.send(tea.KeyMsg{Type: tea.KeyTab})
	h.typeText(receiver)
}

func (h *harness) messages() []string {
	res := []string{}
	for _, n := range h.notices.Drain() {
		res = append(res, n.Message)
	}
	return res
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTypingUpdatesTheForm(t *testing.T) {
	h := newHarness(t, broadcaster{})
	h.fill("1.5", "bob.algo")

	assert.Equal(t, transfer.Form{Amount: "1.5", Receiver: "bob.algo"}, h.dialog.Form())
	assert.Equal(t, fieldReceiver, h.model.focus)

	h.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldAmount, h.model.focus)
}

func TestSendFlow(t *testing.T) {
	h := newHarness(t, broadcaster{})
	h.fill("1.5", "Bob.ALGO")

	resolve := h.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, resolve)
	assert.Equal(t, transfer.StateIdle, h.dialog.Form().State)

	// a second press while resolving is ignored
	assert.Nil(t, h.send(tea.KeyMsg{Type: tea.KeyCtrlS}))

	resolved := resolve()
	require.IsType(t, resolvedMsg{}, resolved)
	assert.Equal(t, bobAddr, resolved.(resolvedMsg).address)

	send := h.send(resolved)
	require.NotNil(t, send)
	assert.Equal(t, transfer.StateSubmitting, h.dialog.Form().State)
	assert.Equal(t, "Sending...", h.dialog.SendLabel())

	quit := h.send(send())
	assert.True(t, isQuit(quit))
	require.NotNil(t, h.model.Result())
	assert.Equal(t, "TX1", h.model.Result().TxID)
	assert.False(t, h.dialog.IsOpen())
	assert.Equal(t, transfer.Form{}, h.dialog.Form())
	assert.Equal(t, 1, h.closes)
	assert.Equal(t, []string{"Sending transaction...", "Transaction sent successfully!"}, h.messages())
}

func TestSendFailureKeepsTheForm(t *testing.T) {
	h := newHarness(t, broadcaster{err: errors.New("TransactionPool.Remember: overspend")})
	h.fill("1", bobAddr)

	resolve := h.send(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, resolve)
	send := h.send(resolve())
	require.NotNil(t, send)

	assert.Nil(t, h.send(send()))
	assert.Nil(t, h.model.Result())
	assert.True(t, h.dialog.IsOpen())
	assert.Equal(t, transfer.Form{Amount: "1", Receiver: bobAddr}, h.dialog.Form())
	assert.Equal(t, []string{"Sending transaction...", "overspend"}, h.messages())
}

func TestValidationStopsBeforeResolving(t *testing.T) {
	h := newHarness(t, broadcaster{})

	assert.Nil(t, h.send(tea.KeyMsg{Type: tea.KeyCtrlS}))
	h.fill("9", bobAddr)
	assert.Nil(t, h.send(tea.KeyMsg{Type: tea.KeyCtrlS}))

	assert.Equal(t, []string{"Please fill all fields", "Insufficient balance"}, h.messages())
	assert.False(t, h.model.resolving)
}

func TestUnresolvableReceiver(t *testing.T) {
	h := newHarness(t, broadcaster{})
	h.fill("1", "nobody.algo")

	resolve := h.send(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, resolve)
	assert.Nil(t, h.send(resolve()))

	assert.False(t, h.model.resolving)
	assert.Equal(t, transfer.StateIdle, h.dialog.Form().State)
	assert.Equal(t, []string{"Invalid receiver address!"}, h.messages())
}

func TestCloseAbandonsSend(t *testing.T) {
	h := newHarness(t, broadcaster{})
	h.fill("1", bobAddr)

	resolve := h.send(tea.KeyMsg{Type: tea.KeyCtrlS})
	send := h.send(resolve())
	require.NotNil(t, send)

	assert.True(t, isQuit(h.send(tea.KeyMsg{Type: tea.KeyEsc})))
	assert.False(t, h.dialog.IsOpen())
	assert.Equal(t, 1, h.closes)

	assert.Nil(t, h.send(send()))
	assert.Nil(t, h.model.Result())
	assert.Equal(t, 1, h.closes)
	assert.Empty(t, h.model.View())
}

func TestMaxFillsAmount(t *testing.T) {
	h := newHarness(t, broadcaster{})
	h.send(tea.KeyMsg{Type: tea.KeyCtrlA})

	assert.Equal(t, "5", h.model.inputs[fieldAmount].Value())
	assert.Equal(t, "5", h.dialog.Form().Amount)
	assert.Empty(t, h.messages())
}

func TestViewShowsNotice(t *testing.T) {
	h := newHarness(t, broadcaster{})
	view := h.model.View()
	assert.Contains(t, view, "USDC - 31566704")
	assert.Contains(t, view, "Balance: 5")
	assert.Contains(t, view, "algo or .algo address")
	assert.Contains(t, view, "Send")

	cmd := h.send(noticeMsg{Kind: transfer.NoticeError, Message: "Invalid receiver address!"})
	assert.NotNil(t, cmd)
	assert.Contains(t, h.model.View(), "Invalid receiver address!")
}

func TestChannelNotifierDropsWhenFull(t *testing.T) {
	n := NewChannelNotifier(1)
	n.Notify(transfer.NoticeInfo, "first")
	n.Notify(transfer.NoticeInfo, "second")

	msg := n.WaitForNotice()()
	assert.Equal(t, noticeMsg{Kind: transfer.NoticeInfo, Message: "first"}, msg)
	assert.Empty(t, n.Drain())
}
