package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/algosend/networks"
)

var (
	NetworkConfig string
	NetworkForce  bool
)

var addNetworkCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new network to the supported networks list locally",
	Long: `--config flag is supported to pass a new network config json filepath OR pass a json string. The json should be in the following format:
	{
		"name": "localnet",
		"alternative_names": ["sandbox"],
		"genesis_id": "dockernet-v1",
		"block_time": 3,
		"node_variable_name": "ALGOD_LOCALNET_NODE",
		"default_node": "http://localhost:4001",
		"nfd_api_url": "",
		"explorer_tx_url": ""
	}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := strings.TrimSpace(NetworkConfig)
		if raw == "" {
			return fmt.Errorf("--config is required")
		}

		content := []byte(raw)
		if !strings.HasPrefix(raw, "{") {
			// in this case, config is supposed to be a path to a json file
			var err error
			content, err = os.ReadFile(raw)
			if err != nil {
				return fmt.Errorf("couldn't read the provided json file: %w", err)
			}
		}
		newNetwork, err := networks.NewNetworkFromJSON(content)
		if err != nil {
			return fmt.Errorf("the provided json is not a valid network config: %w", err)
		}

		allNames := append([]string{newNetwork.GetName()}, newNetwork.GetAlternativeNames()...)
		for _, name := range allNames {
			if _, err := networks.GetNetwork(name); err == nil {
				if !NetworkForce {
					return fmt.Errorf("network with name %s already exists. If you want to update the network, use flag --force", name)
				}
				appUI.Warn("Network with name %s already exists. It will be replaced with the new network.", name)
			}
		}

		if err := networks.AddNetwork(newNetwork); err != nil {
			return fmt.Errorf("failed to add the new network: %w", err)
		}
		appUI.Success("Network %s (%s) added and saved to %s.", newNetwork.GetName(), newNetwork.GetGenesisID(), networks.CUSTOM_NETWORKS_DIR)
		return nil
	},
}

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of supported networks",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		rows := [][]string{}
		for i, n := range networks.GetSupportedNetworks() {
			nfdAPI := n.GetNFDAPIURL()
			if nfdAPI == "" {
				nfdAPI = "-"
			}
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				n.GetName(),
				n.GetGenesisID(),
				networks.GetNodeURL(n),
				nfdAPI,
			})
		}
		appUI.Table([]string{"#", "Name", "Genesis", "Algod node", "NFD API"}, rows)

		appUI.Info("\nIf you want to add more networks to the list, use following command:\n> algosend network add")
		appUI.Info("If you want to delete a network, just delete the corresponding json file in %s.", networks.CUSTOM_NETWORKS_DIR)
	},
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Manage all networks that algosend supports",
	Long:  ``,
}

func init() {
	addNetworkCmd.PersistentFlags().StringVarP(&NetworkConfig, "config", "c", "", "Path to the network config json file, or the json itself")
	addNetworkCmd.PersistentFlags().BoolVarP(&NetworkForce, "force", "f", false, "Force adding the network even if it already exists")

	networkCmd.AddCommand(listNetworkCmd)
	networkCmd.AddCommand(addNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}
