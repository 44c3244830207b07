// Package util renders the outcome of chain operations for the terminal.
package util

import (
	"strconv"

	"github.com/tranvictor/algosend/networks"
	"github.com/tranvictor/algosend/transfer"
	"github.com/tranvictor/algosend/ui"
)

const (
	StatusSigned      = "signed, not broadcasted"
	StatusBroadcasted = "broadcasted"
	StatusConfirmed   = "confirmed"
)

func buildTransferDisplay(conf transfer.Confirmation, network networks.Network, broadcasted bool) *TransferDisplay {
	d := &TransferDisplay{
		TxID:    conf.TxID,
		Network: network.GetName(),
	}
	switch {
	case !broadcasted:
		d.Status = ui.StyledText{Text: StatusSigned, Severity: ui.SeverityWarn}
	case conf.ConfirmedRound == 0:
		d.Status = ui.StyledText{Text: StatusBroadcasted, Severity: ui.SeverityInfo}
	default:
		d.Status = ui.StyledText{Text: "✓ " + StatusConfirmed, Severity: ui.SeveritySuccess}
		d.Round = strconv.FormatUint(conf.ConfirmedRound, 10)
	}
	if broadcasted {
		d.Explorer = network.GetExplorerTxURL(conf.TxID)
	}
	return d
}

func printTransferDisplay(u ui.UI, d *TransferDisplay) {
	rows := [][]string{
		{"Tx", d.TxID},
		{"Status", u.Style(d.Status)},
		{"Network", d.Network},
	}
	if d.Round != "" {
		rows = append(rows, []string{"Round", d.Round})
	}
	if d.Explorer != "" {
		rows = append(rows, []string{"Explorer", d.Explorer})
	}
	u.Table(nil, rows)
}

// DisplayTransfer builds the view-model of a submitted transfer and writes
// it to u. broadcasted is false for dry runs.
func DisplayTransfer(u ui.UI, conf transfer.Confirmation, network networks.Network, broadcasted bool) *TransferDisplay {
	d := buildTransferDisplay(conf, network, broadcasted)
	printTransferDisplay(u, d)
	return d
}
