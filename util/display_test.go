package util_test

import (
	"testing"

	"github.com/tranvictor/algosend/networks"
	"github.com/tranvictor/algosend/transfer"
	"github.com/tranvictor/algosend/ui"
	"github.com/tranvictor/algosend/util"
)

func TestDisplayConfirmedTransfer(t *testing.T) {
	u := ui.NewRecordingUI()
	d := util.DisplayTransfer(u, transfer.Confirmation{TxID: "TXID", ConfirmedRound: 4242}, networks.AlgorandMainnet, true)

	if d.Status.Text != "✓ "+util.StatusConfirmed {
		t.Fatalf("unexpected status %q", d.Status.Text)
	}
	for _, want := range []string{"Tx | TXID", "Round | 4242", "Explorer | https://allo.info/tx/TXID", "Network | mainnet"} {
		if !u.HasMessage(want) {
			t.Fatalf("missing %q in:\n%v", want, u.Entries())
		}
	}
}

func TestDisplayBroadcastedTransfer(t *testing.T) {
	u := ui.NewRecordingUI()
	d := util.DisplayTransfer(u, transfer.Confirmation{TxID: "TXID"}, networks.AlgorandBetanet, true)

	if d.Status.Text != util.StatusBroadcasted {
		t.Fatalf("unexpected status %q", d.Status.Text)
	}
	if d.Round != "" || d.Explorer != "" {
		t.Fatalf("betanet has no explorer and the tx isn't confirmed: %+v", d)
	}
	if u.HasMessage("Round |") || u.HasMessage("Explorer |") {
		t.Fatalf("unexpected rows:\n%v", u.Entries())
	}
}

func TestDisplayDryRun(t *testing.T) {
	u := ui.NewRecordingUI()
	d := util.DisplayTransfer(u, transfer.Confirmation{TxID: "TXID"}, networks.AlgorandMainnet, false)

	if d.Status.Text != util.StatusSigned {
		t.Fatalf("unexpected status %q", d.Status.Text)
	}
	if d.Explorer != "" {
		t.Fatalf("a dry run has nothing to explore, got %s", d.Explorer)
	}
}
