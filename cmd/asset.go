package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tranvictor/algosend/common"
	"github.com/tranvictor/algosend/config"
)

var assetCmd = &cobra.Command{
	Use:   "asset [index]",
	Short: "Show an asset and your balance of it",
	Long:  `Show the descriptor of an asset. With --from, also show the balance of that wallet.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid asset index %q: %w", args[0], err)
		}
		ctx, cancel := commandContext()
		defer cancel()

		reader, _, err := algodReader()
		if err != nil {
			return err
		}
		asset, err := reader.AssetInfo(ctx, index)
		if err != nil {
			return err
		}
		rows := [][2]string{
			{"Asset", asset.String()},
			{"Unit", asset.UnitName},
			{"Decimals", strconv.FormatUint(asset.Decimals, 10)},
		}
		if config.From != "" {
			desc, err := pickAccount(config.From)
			if err != nil {
				return err
			}
			balance, err := reader.AssetBalance(ctx, desc.Address, asset.Index)
			if err != nil {
				return err
			}
			rows = append(rows,
				[2]string{"Wallet", fmt.Sprintf("%s (%s)", desc.Address, desc.Desc)},
				[2]string{"Balance", common.FormatBaseUnits(balance, asset.Decimals) + " " + asset.UnitName},
			)
		}
		appUI.KeyValue(rows)
		return nil
	},
}

func init() {
	assetCmd.Flags().StringVarP(&config.From, "from", "f", "", "wallet to show the balance of")
	rootCmd.AddCommand(assetCmd)
}
