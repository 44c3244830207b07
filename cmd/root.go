// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tranvictor/algosend/config"
	"github.com/tranvictor/algosend/networks"
	"github.com/tranvictor/algosend/transfer"
	"github.com/tranvictor/algosend/util/log"
)

// settings are loaded from ~/.algosend/config.toml before any command runs.
var settings config.Settings

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "algosend",
	Short: "Send Algorand standard assets from the command line",
	Long: fmt.Sprintf(`algosend sends Algorand standard assets (ASA) from the wallets it manages.

Receivers are either plain Algorand addresses or NFDomains names such as
"alice.algo", which are resolved to their deposit account before sending.

By default algosend talks to the public algonode endpoints. You can use your
own node by setting the following env vars:
	1. For mainnet: ALGOD_MAINNET_NODE
	2. For testnet: ALGOD_TESTNET_NODE
	3. For betanet: ALGOD_BETANET_NODE
and %s when your node requires an API token.

Settings are read from %s and can be overridden with
%s_* env vars, eg. %s_NETWORK=testnet.`,
		"ALGOD_TOKEN", config.Path(), config.EnvPrefix, config.EnvPrefix,
	),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = config.Load()
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("log-level") {
			config.LogLevel = settings.Log.Level
		}
		if !cmd.Flags().Changed("log-format") {
			config.LogFormat = settings.Log.Format
		}
		level, err := log.ParseLogLevel(config.LogLevel)
		if err != nil {
			return err
		}
		loggerType, err := log.ParseLoggerType(config.LogFormat)
		if err != nil {
			return err
		}
		log.Init(log.Options{LogLevel: level, Type: loggerType})

		if !cmd.Flags().Changed("network") && settings.Network != "" {
			networks.NetworkString = settings.Network
		}
		if _, err := networks.GetNetwork(networks.NetworkString); err != nil {
			return fmt.Errorf("%w. Valid values: %v", err, networks.GetSupportedNetworkNames())
		}
		networks.SetNetwork(networks.NetworkString)
		return nil
	},
}

// alreadyReported tells errors the user has seen as a dialog notice.
func alreadyReported(err error) bool {
	var invalid *transfer.ValidationError
	var failure *transfer.SubmissionFailure
	return errors.As(err, &invalid) || errors.As(err, &failure)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&networks.NetworkString, "network", "k", "mainnet", "algorand network. Valid values: \"mainnet\", \"testnet\", \"betanet\" or a custom network name.")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "warn", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat, "log-format", "console", "log format: console or json")

	if err := rootCmd.Execute(); err != nil {
		if !alreadyReported(err) {
			appUI.Error("%s", err)
		}
		os.Exit(1)
	}
}
