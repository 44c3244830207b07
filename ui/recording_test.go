package ui_test

import (
	"testing"

	"github.com/tranvictor/algosend/ui"
)

func TestRecordingUIServesScriptedInputs(t *testing.T) {
	rec := ui.NewRecordingUI("first", "y", "2", "s3cret")

	if got := rec.Ask(nil); got != "first" {
		t.Fatalf("Ask: want %q, got %q", "first", got)
	}
	if !rec.Confirm("go on?", false) {
		t.Fatalf("Confirm: want true")
	}
	if got := rec.Choose("pick", []string{"a", "b", "c"}); got != 1 {
		t.Fatalf("Choose: want 1, got %d", got)
	}
	// nested scopes share the input cursor
	if got := rec.Indent().AskSecret("passphrase: "); got != "s3cret" {
		t.Fatalf("AskSecret: want %q, got %q", "s3cret", got)
	}
	if rec.HasMessage("s3cret") {
		t.Errorf("secret input must not be recorded")
	}
}

func TestRecordingUISpinner(t *testing.T) {
	rec := ui.NewRecordingUI()
	stop := rec.Spinner("Sending transaction...")
	if !rec.Spinning() {
		t.Fatalf("expected a running spinner")
	}
	stop()
	stop()
	if rec.Spinning() {
		t.Fatalf("expected the spinner to be stopped")
	}

	var stops int
	for _, e := range rec.Entries() {
		if e.Method == "SpinnerStop" {
			stops++
		}
	}
	if stops != 1 {
		t.Errorf("want exactly one SpinnerStop entry, got %d", stops)
	}
}

func TestRecordingUITableAndKeyValue(t *testing.T) {
	rec := ui.NewRecordingUI()
	rec.Table([]string{"#", "Address"}, [][]string{{"1", "AAAA"}, {"2", "BBBB"}})
	rec.KeyValue([][2]string{{"Asset", "USDC - 31566704"}})

	want := []ui.Entry{
		{Method: "Table", Value: "# | Address"},
		{Method: "Table", Value: "1 | AAAA"},
		{Method: "Table", Value: "2 | BBBB"},
		{Method: "KeyValue", Value: "Asset | USDC - 31566704"},
	}
	got := rec.Entries()
	if len(got) != len(want) {
		t.Fatalf("want %d entries, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d:\n  want: %+v\n   got: %+v", i, want[i], got[i])
		}
	}
}
