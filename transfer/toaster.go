package transfer

import (
	"sync"

	"github.com/tranvictor/algosend/ui"
)

// Toaster shows dialog notices on a ui.UI. A pending notice runs a spinner
// until the next notice (or Dismiss) replaces it.
type Toaster struct {
	UI ui.UI

	mu   sync.Mutex
	stop func()
}

func NewToaster(u ui.UI) *Toaster {
	return &Toaster{UI: u}
}

func (t *Toaster) Notify(kind NoticeKind, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.dismiss()
	switch kind {
	case NoticeError:
		t.UI.Error("%s", msg)
	case NoticeSuccess:
		t.UI.Success("%s", msg)
	case NoticePending:
		t.stop = t.UI.Spinner(msg)
	default:
		t.UI.Info("%s", msg)
	}
}

// Dismiss stops a pending notice, if any.
func (t *Toaster) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dismiss()
}

func (t *Toaster) dismiss() {
	if t.stop != nil {
		t.stop()
		t.stop = nil
	}
}
