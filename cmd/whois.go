package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/algosend/algod"
	"github.com/tranvictor/algosend/transfer"
)

var whoisCmd = &cobra.Command{
	Use:   "whois",
	Short: "Resolve one or multiple .algo names to their addresses",
	Long:  ``,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		resolver := nameResolver()
		validator := algod.Validator{}
		rows := [][2]string{}
		for _, arg := range args {
			name := strings.ToLower(strings.TrimSpace(arg))
			if !strings.Contains(name, transfer.DomainSuffix) {
				name += transfer.DomainSuffix
			}
			addr, err := resolver.ResolveDomain(ctx, name)
			switch {
			case err != nil:
				rows = append(rows, [2]string{name, "not found: " + err.Error()})
			case !validator.IsValidAddress(addr):
				rows = append(rows, [2]string{name, "invalid address: " + addr})
			default:
				rows = append(rows, [2]string{name, addr})
			}
		}
		appUI.KeyValue(rows)
	},
}

func init() {
	rootCmd.AddCommand(whoisCmd)
}
