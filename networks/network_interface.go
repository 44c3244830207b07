package networks

import (
	"time"
)

type Network interface {
	GetName() string
	GetAlternativeNames() []string
	GetGenesisID() string
	GetBlockTime() time.Duration

	GetNodeVariableName() string
	GetDefaultNode() string

	// GetNFDAPIURL is empty when NFDomains is not deployed on the network.
	GetNFDAPIURL() string
	GetExplorerTxURL(txid string) string

	MarshalJSON() ([]byte, error)
}
