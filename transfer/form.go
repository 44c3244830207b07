package transfer

import "fmt"

// State is the externally observable state of an open dialog.
type State uint8

const (
	StateIdle State = iota
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Form is the mutable part of a dialog, as typed by the user.
type Form struct {
	Amount   string
	Receiver string
	State    State
}

// Submitting reports whether a send is in flight.
func (f Form) Submitting() bool {
	return f.State == StateSubmitting
}

// Event drives Form transitions.
type Event uint8

const (
	// EventBegin is fired once the receiver resolved to a valid address.
	EventBegin Event = iota
	// EventSucceeded is fired when the broadcaster accepted the payload.
	EventSucceeded
	// EventFailed is fired when building, signing or broadcasting failed.
	EventFailed
	// EventReset is fired by an explicit close.
	EventReset
)

// Transition applies ev to f. It returns the next form and whether the
// dialog must close as a consequence.
//
//	idle       --Begin-->     submitting
//	submitting --Succeeded--> idle, fields cleared, closed
//	submitting --Failed-->    idle, fields kept
//	any        --Reset-->     idle, fields cleared, closed
func (f Form) Transition(ev Event) (Form, bool, error) {
	switch ev {
	case EventBegin:
		if f.State != StateIdle {
			return f, false, fmt.Errorf("can't begin a send while %s", f.State)
		}
		f.State = StateSubmitting
		return f, false, nil
	case EventSucceeded:
		if f.State != StateSubmitting {
			return f, false, fmt.Errorf("no send in flight")
		}
		return Form{}, true, nil
	case EventFailed:
		if f.State != StateSubmitting {
			return f, false, fmt.Errorf("no send in flight")
		}
		f.State = StateIdle
		return f, false, nil
	case EventReset:
		return Form{}, true, nil
	}
	return f, false, fmt.Errorf("unknown event %d", ev)
}
