package networks

import (
	"encoding/json"
	"os"
	"strings"
	"time"
)

type GenericAlgorandNetworkConfig struct {
	Name             string   `json:"name"`
	AlternativeNames []string `json:"alternative_names"`
	GenesisID        string   `json:"genesis_id"`
	BlockTime        uint64   `json:"block_time"`
	NodeVariableName string   `json:"node_variable_name"`
	DefaultNode      string   `json:"default_node"`
	NFDAPIURL        string   `json:"nfd_api_url"`
	// ExplorerTxURL is prefixed to a transaction id to link to it, eg.
	// "https://allo.info/tx/"
	ExplorerTxURL string `json:"explorer_tx_url"`
}

// GenericAlgorandNetwork is a network reachable through an algod REST
// endpoint.
type GenericAlgorandNetwork struct {
	config GenericAlgorandNetworkConfig
}

func NewGenericAlgorandNetwork(config GenericAlgorandNetworkConfig) *GenericAlgorandNetwork {
	return &GenericAlgorandNetwork{config: config}
}

func (gn *GenericAlgorandNetwork) GetName() string {
	return gn.config.Name
}

func (gn *GenericAlgorandNetwork) GetAlternativeNames() []string {
	return gn.config.AlternativeNames
}

func (gn *GenericAlgorandNetwork) GetGenesisID() string {
	return gn.config.GenesisID
}

func (gn *GenericAlgorandNetwork) GetBlockTime() time.Duration {
	return time.Duration(gn.config.BlockTime) * time.Second
}

func (gn *GenericAlgorandNetwork) GetNodeVariableName() string {
	return gn.config.NodeVariableName
}

func (gn *GenericAlgorandNetwork) GetDefaultNode() string {
	return gn.config.DefaultNode
}

func (gn *GenericAlgorandNetwork) GetNFDAPIURL() string {
	return gn.config.NFDAPIURL
}

func (gn *GenericAlgorandNetwork) GetExplorerTxURL(txid string) string {
	if gn.config.ExplorerTxURL == "" {
		return ""
	}
	return gn.config.ExplorerTxURL + txid
}

func (gn *GenericAlgorandNetwork) MarshalJSON() ([]byte, error) {
	return json.MarshalIndent(gn.config, "", "  ")
}

// GetNodeURL returns the algod endpoint of n: the value of its node variable
// when set, its default node otherwise.
func GetNodeURL(n Network) string {
	if n.GetNodeVariableName() != "" {
		if node := strings.TrimSpace(os.Getenv(n.GetNodeVariableName())); node != "" {
			return node
		}
	}
	return n.GetDefaultNode()
}
