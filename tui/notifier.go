package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tranvictor/algosend/transfer"
	"github.com/tranvictor/algosend/util/log"
)

type Notice struct {
	Kind    transfer.NoticeKind
	Message string
}

type noticeMsg Notice

// ChannelNotifier hands dialog notices over to the bubbletea loop. Notify
// may be called from any goroutine.
type ChannelNotifier struct {
	ch chan Notice
}

func NewChannelNotifier(size int) *ChannelNotifier {
	return &ChannelNotifier{ch: make(chan Notice, size)}
}

// Notify never blocks: a notice that doesn't fit in the buffer is dropped.
func (n *ChannelNotifier) Notify(kind transfer.NoticeKind, msg string) {
	select {
	case n.ch <- Notice{Kind: kind, Message: msg}:
	default:
		log.Dialog.Warn().Str("notice", msg).Msg("notice buffer is full, dropping notice")
	}
}

// WaitForNotice delivers the next notice as a message.
func (n *ChannelNotifier) WaitForNotice() tea.Cmd {
	return func() tea.Msg {
		return noticeMsg(<-n.ch)
	}
}

// Drain returns the notices nobody consumed yet, eg. the ones emitted right
// before the program quit.
func (n *ChannelNotifier) Drain() []Notice {
	res := []Notice{}
	for {
		select {
		case notice := <-n.ch:
			res = append(res, notice)
		default:
			return res
		}
	}
}
