package util

import "github.com/tranvictor/algosend/ui"

// TransferDisplay is the human-readable view-model of a submitted transfer.
type TransferDisplay struct {
	TxID     string
	Status   ui.StyledText
	Network  string
	Round    string
	Explorer string
}
