package networks

import (
	"sync"

	"github.com/tranvictor/algosend/util/log"
)

var (
	cachedNetwork Network
	mu            sync.Mutex

	// NetworkString is bound to the --network flag.
	NetworkString string
)

func CurrentNetwork() Network {
	mu.Lock()
	n := cachedNetwork
	mu.Unlock()
	if n != nil {
		return n
	}

	SetNetwork(NetworkString)
	mu.Lock()
	defer mu.Unlock()
	return cachedNetwork
}

// SetNetwork switches the current network. Unknown names fall back to
// mainnet.
func SetNetwork(networkStr string) {
	mu.Lock()
	defer mu.Unlock()

	inited := cachedNetwork != nil
	n, err := GetNetwork(networkStr)
	if err != nil {
		if networkStr != "" {
			log.Root.Warn().Str("network", networkStr).Msg("unknown network, using mainnet")
		}
		n = AlgorandMainnet
	}
	cachedNetwork = n
	if inited {
		log.Root.Info().Str("network", n.GetName()).Msg("switched network")
	} else {
		log.Root.Debug().Str("network", n.GetName()).Msg("network selected")
	}
}
