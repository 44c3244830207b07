package ui

import (
	"io"
)

// Severity classifies the visual weight of a piece of inline text. The
// terminal maps each value to a colour; RecordingUI ignores it.
type Severity uint8

const (
	SeverityInfo     Severity = iota // plain
	SeveritySuccess                  // green
	SeverityWarn                     // yellow
	SeverityError                    // red
	SeverityCritical                 // bold
)

// StyledText pairs a plain string with a Severity annotation.
type StyledText struct {
	Text     string
	Severity Severity
}

// UI provides all terminal interaction for algosend commands.
//
// Production code uses TerminalUI (writes to os.Stdout, reads from os.Stdin),
// tests use RecordingUI (captures all output, serves scripted inputs).
type UI interface {
	// --- Output ---

	// Style returns the text from t coloured according to its Severity.
	//
	//	u.Info("To: %s", u.Style(ui.StyledText{Text: addr, Severity: ui.SeverityCritical}))
	Style(t StyledText) string

	// Info writes a neutral status line.
	Info(format string, args ...any)

	// Success writes a positive outcome in green.
	Success(format string, args ...any)

	// Warn writes a non-fatal warning in yellow.
	Warn(format string, args ...any)

	// Error writes a failure in red. It does not exit.
	Error(format string, args ...any)

	// Critical writes data the user must review before an irreversible
	// action, like the transfer they are about to sign.
	Critical(format string, args ...any)

	// Section writes a separator centred around title.
	Section(title string)

	// KeyValue renders an aligned 2-column block.
	KeyValue(rows [][2]string)

	// Table renders a bordered table with an optional header row.
	Table(headers []string, rows [][]string)

	// Spinner starts an animated spinner with msg and returns the function
	// that stops it. On non terminals the message is printed once.
	Spinner(msg string) func()

	// --- Input ---

	// Ask displays a "> " prompt and reads a line, looping until validate
	// returns nil. A nil validate accepts any input.
	Ask(validate func(string) error) string

	// AskSecret is Ask without echoing what the user types.
	AskSecret(prompt string) string

	// Confirm asks a yes/no question.
	Confirm(prompt string, defaultYes bool) bool

	// Choose prints a numbered list of options and returns the 0-based index
	// of the chosen one.
	Choose(prompt string, options []string) int

	// --- Nesting ---

	// Indent returns a child UI one level deeper sharing the same writer and
	// reader.
	Indent() UI

	// Writer returns an io.Writer prepending the current indentation to every
	// line.
	Writer() io.Writer
}
