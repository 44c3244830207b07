package transfer

import (
	"errors"
	"strings"
)

// PoolRejectionMarker separates algod's generic prefix from the actual reason
// in transaction pool rejections, eg.
// "TransactionPool.Remember: transaction already in ledger: ..."
const PoolRejectionMarker = "TransactionPool.Remember:"

const fallbackFailureMessage = "Something went wrong"

var ErrClosed = errors.New("transfer dialog is closed")

// ValidationError is a local, recoverable input problem. Message is what the
// user was shown.
type ValidationError struct {
	Message string
	// Err is the underlying cause when the problem came from a collaborator,
	// eg. a name resolver failure.
	Err error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// SubmissionFailure is returned when the builder or the broadcaster rejects
// the transfer.
type SubmissionFailure struct {
	Message string
	Err     error
}

func (e *SubmissionFailure) Error() string {
	return e.Message
}

func (e *SubmissionFailure) Unwrap() error {
	return e.Err
}

func newSubmissionFailure(err error) *SubmissionFailure {
	return &SubmissionFailure{Message: FailureMessage(err), Err: err}
}

// FailureMessage picks the text shown to the user for a failed submission:
// the reason following PoolRejectionMarker if there is one, then the raw
// error text, then a generic message.
func FailureMessage(err error) string {
	if err == nil {
		return fallbackFailureMessage
	}
	raw := err.Error()
	if reason := PoolRejectionReason(raw); reason != "" {
		return reason
	}
	if strings.TrimSpace(raw) != "" {
		return raw
	}
	return fallbackFailureMessage
}

// PoolRejectionReason returns the segment of msg right after the first
// PoolRejectionMarker, up to the next marker if any. It returns "" when the
// marker is absent or nothing follows it.
func PoolRejectionReason(msg string) string {
	parts := strings.Split(msg, PoolRejectionMarker)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
