package util

import (
	"fmt"
	"strings"

	"github.com/tranvictor/algosend/ui"
)

type StringValidator func(st string) error

var ErrAborted = fmt.Errorf("aborted by user")

// PromptInput shows a label and returns whatever the user enters.
func PromptInput(u ui.UI, label string) string {
	if label != "" {
		u.Info(label)
	}
	return strings.TrimSpace(u.Ask(nil))
}

// PromptInputWithValidation shows a label, then loops until the validator passes.
func PromptInputWithValidation(u ui.UI, label string, validator StringValidator) string {
	if label != "" {
		u.Info(label)
	}
	return strings.TrimSpace(u.Ask(func(s string) error {
		return validator(strings.TrimSpace(s))
	}))
}

func PromptFilePath(u ui.UI, label string) string {
	return PromptInput(u, label)
}

// TransferSummary is what the user reviews before signing a transfer.
type TransferSummary struct {
	Network string
	From    string
	// To is what the user typed, Receiver the address it resolved to.
	To       string
	Receiver string
	Asset    string
	Amount   string
	Note     string
}

// PromptTransferConfirmation shows the transfer and asks the user to go on.
// It returns ErrAborted when they don't.
func PromptTransferConfirmation(u ui.UI, s TransferSummary) error {
	u.Section("Transfer")
	to := s.Receiver
	if !strings.EqualFold(strings.TrimSpace(s.To), s.Receiver) {
		to = fmt.Sprintf("%s (%s)", s.Receiver, strings.TrimSpace(s.To))
	}
	rows := [][2]string{
		{"Network", s.Network},
		{"From", s.From},
		{"To", u.Style(ui.StyledText{Text: to, Severity: ui.SeverityCritical})},
		{"Asset", s.Asset},
		{"Amount", u.Style(ui.StyledText{Text: s.Amount, Severity: ui.SeverityCritical})},
	}
	if s.Note != "" {
		rows = append(rows, [2]string{"Note", s.Note})
	}
	u.KeyValue(rows)
	if !u.Confirm("Confirm?", false) {
		return ErrAborted
	}
	return nil
}
