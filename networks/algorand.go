package networks

import "github.com/tranvictor/algosend/nfd"

var AlgorandMainnet Network = NewGenericAlgorandNetwork(GenericAlgorandNetworkConfig{
	Name:             "mainnet",
	AlternativeNames: []string{"algorand"},
	GenesisID:        "mainnet-v1.0",
	BlockTime:        3,
	NodeVariableName: "ALGOD_MAINNET_NODE",
	DefaultNode:      "https://mainnet-api.algonode.cloud",
	NFDAPIURL:        nfd.MainnetAPI,
	ExplorerTxURL:    "https://allo.info/tx/",
})

var AlgorandTestnet Network = NewGenericAlgorandNetwork(GenericAlgorandNetworkConfig{
	Name:             "testnet",
	AlternativeNames: []string{"algorand-testnet"},
	GenesisID:        "testnet-v1.0",
	BlockTime:        3,
	NodeVariableName: "ALGOD_TESTNET_NODE",
	DefaultNode:      "https://testnet-api.algonode.cloud",
	NFDAPIURL:        nfd.TestnetAPI,
	ExplorerTxURL:    "https://testnet.allo.info/tx/",
})

var AlgorandBetanet Network = NewGenericAlgorandNetwork(GenericAlgorandNetworkConfig{
	Name:             "betanet",
	GenesisID:        "betanet-v1.0",
	BlockTime:        3,
	NodeVariableName: "ALGOD_BETANET_NODE",
	DefaultNode:      "https://betanet-api.algonode.cloud",
})
