package networks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tranvictor/algosend/util/log"
)

// Insert more Network implementation here to support
// more Algorand deployments
var supportedNetworks = []Network{
	AlgorandMainnet,
	AlgorandTestnet,
	AlgorandBetanet,
}

var (
	// CUSTOM_NETWORKS_DIR holds user defined networks, one json file per
	// network.
	CUSTOM_NETWORKS_DIR = filepath.Join(getHomeDir(), ".algosend", "networks")

	globalSupportedNetworks = newSupportedNetworks()
	ErrNetworkNotFound      = fmt.Errorf("network not found")
)

func getHomeDir() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return dir
}

type networks struct {
	networks    map[string]Network
	byGenesisID map[string]Network
}

func (n *networks) getSupportedNetworkNames() []string {
	res := []string{}
	for name := range n.networks {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

func (n *networks) getNetworkByGenesisID(id string) (Network, error) {
	res, found := n.byGenesisID[id]
	if !found {
		return nil, fmt.Errorf("genesis id '%s' is not supported", id)
	}
	return res, nil
}

func (n *networks) getNetwork(name string) (Network, error) {
	res, found := n.networks[name]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func (n *networks) add(network Network) error {
	for _, an := range network.GetAlternativeNames() {
		if existing, found := n.networks[an]; found && existing.GetName() != network.GetName() {
			return fmt.Errorf("network with name or alternative name of '%s' already exists", an)
		}
	}
	n.networks[network.GetName()] = network
	for _, an := range network.GetAlternativeNames() {
		n.networks[an] = network
	}
	if network.GetGenesisID() != "" {
		n.byGenesisID[network.GetGenesisID()] = network
	}
	return nil
}

func newSupportedNetworks() *networks {
	result := &networks{
		networks:    map[string]Network{},
		byGenesisID: map[string]Network{},
	}
	for _, n := range supportedNetworks {
		if _, found := result.networks[n.GetName()]; found {
			panic(fmt.Errorf("network with name or alternative name of '%s' already exists", n.GetName()))
		}
		if err := result.add(n); err != nil {
			panic(err)
		}
	}

	customNetworks, err := loadCustomNetworks(CUSTOM_NETWORKS_DIR)
	if err != nil {
		log.Root.Warn().Err(err).Msg("failed to load custom networks, continuing with built-in networks")
		return result
	}
	for _, n := range customNetworks {
		if _, found := result.networks[n.GetName()]; found {
			log.Root.Info().Str("network", n.GetName()).Msg("custom network overrides a built-in one")
		}
		if err := result.add(n); err != nil {
			log.Root.Warn().Err(err).Str("network", n.GetName()).Msg("ignoring custom network")
		}
	}
	return result
}

func loadCustomNetworks(dir string) ([]Network, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob json files in %s: %w", dir, err)
	}

	networks := []Network{}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", file, err)
		}
		network, err := NewNetworkFromJSON(content)
		if err != nil {
			log.Root.Warn().Err(err).Str("file", file).Msg("failed to parse custom network, skipping it")
			continue
		}
		networks = append(networks, network)
	}
	return networks, nil
}

func NewNetworkFromJSON(content []byte) (Network, error) {
	config := GenericAlgorandNetworkConfig{}
	if err := json.Unmarshal(content, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal network config: %w", err)
	}
	if config.Name == "" {
		return nil, fmt.Errorf("network config has no name")
	}
	if config.DefaultNode == "" && config.NodeVariableName == "" {
		return nil, fmt.Errorf("network %s has neither a default node nor a node variable", config.Name)
	}
	return NewGenericAlgorandNetwork(config), nil
}

// GetSupportedNetworks returns every distinct network, sorted by name.
func GetSupportedNetworks() []Network {
	seen := map[string]bool{}
	res := []Network{}
	for _, n := range globalSupportedNetworks.networks {
		if seen[n.GetName()] {
			continue
		}
		seen[n.GetName()] = true
		res = append(res, n)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].GetName() < res[j].GetName() })
	return res
}

func GetNetwork(name string) (Network, error) {
	return globalSupportedNetworks.getNetwork(name)
}

func GetNetworkByGenesisID(id string) (Network, error) {
	return globalSupportedNetworks.getNetworkByGenesisID(id)
}

func GetSupportedNetworkNames() []string {
	return globalSupportedNetworks.getSupportedNetworkNames()
}

// AddNetwork registers network and stores it in CUSTOM_NETWORKS_DIR so it is
// available to later runs.
func AddNetwork(network Network) error {
	if err := globalSupportedNetworks.add(network); err != nil {
		return err
	}

	if err := os.MkdirAll(CUSTOM_NETWORKS_DIR, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", CUSTOM_NETWORKS_DIR, err)
	}
	content, err := network.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal network: %w", err)
	}
	path := filepath.Join(CUSTOM_NETWORKS_DIR, fmt.Sprintf("%s.json", network.GetName()))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write the new network to file: %w", err)
	}
	return nil
}
