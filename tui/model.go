// Package tui is the interactive transfer modal: two text fields, a Send
// action and a notice line, all driven by a transfer.Dialog.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tranvictor/algosend/transfer"
)

const (
	fieldAmount = iota
	fieldReceiver
	fieldCount
)

type resolvedMsg struct {
	session uint64
	amount  float64
	address string
	err     error
}

type sentMsg struct {
	session uint64
	conf    transfer.Confirmation
	err     error
}

// Model is the bubbletea model of the transfer modal. The dialog must have
// been created with the model's notifier.
type Model struct {
	ctx     context.Context
	dialog  *transfer.Dialog
	notices *ChannelNotifier

	inputs  [fieldCount]textinput.Model
	focus   int
	spinner spinner.Model
	notice  *Notice
	// resolving is set while a receiver lookup is in flight, before the
	// dialog enters its submitting state.
	resolving bool
	width     int

	result *transfer.Confirmation
}

func New(ctx context.Context, dialog *transfer.Dialog, notices *ChannelNotifier) *Model {
	amount := textinput.New()
	amount.Prompt = ""
	amount.Placeholder = dialog.AmountPlaceholder()
	amount.Focus()

	receiver := textinput.New()
	receiver.Prompt = ""
	receiver.Placeholder = dialog.ReceiverPlaceholder()

	return &Model{
		ctx:     ctx,
		dialog:  dialog,
		notices: notices,
		inputs:  [fieldCount]textinput.Model{amount, receiver},
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Result is the confirmation of the transfer the modal sent, nil when it was
// closed without sending.
func (m *Model) Result() *transfer.Confirmation {
	return m.result
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.notices.WaitForNotice())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case noticeMsg:
		n := Notice(msg)
		m.notice = &n
		cmds := []tea.Cmd{m.notices.WaitForNotice()}
		if n.Kind == transfer.NoticePending {
			cmds = append(cmds, m.spinner.Tick)
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if m.notice == nil || m.notice.Kind != transfer.NoticePending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resolvedMsg:
		return m, m.handleResolved(msg)

	case sentMsg:
		return m, m.handleSent(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, m.updateFocused(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Close):
		m.dialog.Close()
		return tea.Quit
	case key.Matches(msg, keys.Next):
		return m.setFocus((m.focus + 1) % fieldCount)
	case key.Matches(msg, keys.Prev):
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case key.Matches(msg, keys.Max):
		m.dialog.Max()
		m.inputs[fieldAmount].SetValue(m.dialog.Form().Amount)
		m.inputs[fieldAmount].CursorEnd()
		return nil
	case key.Matches(msg, keys.Send):
		return m.submit()
	case key.Matches(msg, keys.Enter):
		if m.focus == fieldAmount {
			return m.setFocus(fieldReceiver)
		}
		return m.submit()
	}
	return m.updateFocused(msg)
}

func (m *Model) setFocus(field int) tea.Cmd {
	m.focus = field
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == field {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

// updateFocused forwards msg to the focused field and copies the field
// values into the dialog.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.dialog.SetAmount(m.inputs[fieldAmount].Value())
	m.dialog.SetReceiver(m.inputs[fieldReceiver].Value())
	return cmd
}

// submit validates the form and, when it is valid, starts resolving the
// receiver.
func (m *Model) submit() tea.Cmd {
	if !m.dialog.CanSend() || m.resolving {
		return nil
	}
	amount, err := m.dialog.Validate()
	if err != nil {
		return nil
	}

	m.resolving = true
	ctx, dialog := m.ctx, m.dialog
	session := dialog.Session()
	receiver := dialog.Form().Receiver
	return func() tea.Msg {
		address, err := dialog.ResolveReceiver(ctx, receiver)
		return resolvedMsg{session: session, amount: amount, address: address, err: err}
	}
}

func (m *Model) handleResolved(msg resolvedMsg) tea.Cmd {
	m.resolving = false
	if msg.err != nil || msg.session != m.dialog.Session() {
		return nil
	}
	session, err := m.dialog.Begin()
	if err != nil {
		return nil
	}

	ctx, dialog := m.ctx, m.dialog
	return func() tea.Msg {
		conf, err := dialog.Send(ctx, msg.amount, msg.address)
		return sentMsg{session: session, conf: conf, err: err}
	}
}

func (m *Model) handleSent(msg sentMsg) tea.Cmd {
	if !m.dialog.Finish(msg.session, msg.err) {
		return nil
	}
	if msg.err != nil {
		return nil
	}
	conf := msg.conf
	m.result = &conf
	return tea.Quit
}

// Run shows the modal until it is closed or the transfer succeeded.
func Run(ctx context.Context, dialog *transfer.Dialog, notices *ChannelNotifier) (*transfer.Confirmation, error) {
	m := New(ctx, dialog, notices)
	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return nil, err
	}
	return m.Result(), nil
}
