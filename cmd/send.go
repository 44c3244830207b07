package cmd

import (
	"context"
	"fmt"
	"strings"

	sdkalgod "github.com/algorand/go-algorand-sdk/v2/client/v2/algod"
	"github.com/spf13/cobra"

	"github.com/tranvictor/algosend/accounts"
	"github.com/tranvictor/algosend/algod"
	cmdutil "github.com/tranvictor/algosend/cmd/util"
	"github.com/tranvictor/algosend/common"
	"github.com/tranvictor/algosend/config"
	"github.com/tranvictor/algosend/networks"
	"github.com/tranvictor/algosend/transfer"
	"github.com/tranvictor/algosend/tui"
	"github.com/tranvictor/algosend/ui"
)

type sendOptions struct {
	Amount  string
	To      string
	Max     bool
	Yes     bool
	Network string
	From    string
	Note    string
}

// interactive reports whether the modal is needed to complete the form.
func (o sendOptions) interactive() bool {
	return strings.TrimSpace(o.To) == "" || (o.Amount == "" && !o.Max)
}

// sendOnce drives d without the modal: it fills the form from opts, shows
// the resolved transfer for confirmation and sends it.
func sendOnce(ctx context.Context, u ui.UI, d *transfer.Dialog, opts sendOptions) (transfer.Confirmation, error) {
	if opts.Max {
		d.Max()
	} else {
		d.SetAmount(opts.Amount)
	}
	d.SetReceiver(opts.To)

	amount, err := d.Validate()
	if err != nil {
		return transfer.Confirmation{}, err
	}
	receiver, err := d.ResolveReceiver(ctx, d.Form().Receiver)
	if err != nil {
		return transfer.Confirmation{}, err
	}

	if !opts.Yes {
		asset := d.Asset()
		err = cmdutil.PromptTransferConfirmation(u, cmdutil.TransferSummary{
			Network:  opts.Network,
			From:     opts.From,
			To:       opts.To,
			Receiver: receiver,
			Asset:    asset.String(),
			Amount:   strings.TrimSpace(transfer.FormatAmount(amount) + " " + asset.UnitName),
			Note:     opts.Note,
		})
		if err != nil {
			d.Close()
			return transfer.Confirmation{}, err
		}
	}

	session, err := d.Begin()
	if err != nil {
		return transfer.Confirmation{}, err
	}
	conf, err := d.Send(ctx, amount, receiver)
	d.Finish(session, err)
	return conf, err
}

func newBroadcaster(cmd *cobra.Command, client *sdkalgod.Client) transfer.Broadcaster {
	if config.DontBroadcast {
		return &algod.DryBroadcaster{Out: appUI.Writer()}
	}
	rounds := settings.Send.WaitRounds
	if cmd.Flags().Changed("wait-rounds") {
		rounds = config.WaitRounds
	}
	if config.DontWaitToBeMined {
		rounds = 0
	}
	return algod.NewBroadcaster(algod.NewNode(client), rounds)
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send an asset to an address or a .algo name",
	Long: `Send an Algorand standard asset from one of your wallets.

The receiver can be an Algorand address or an NFDomains name (eg. alice.algo).
Without --amount or --to, an interactive form is shown to fill them in.`,
	Example: `  algosend send -f treasury -a 31566704 -v 12.5 -t alice.algo
  algosend send -k testnet -f hot -a 10458941 --max -t BOBBY...NETA
  algosend send -f treasury -a 31566704`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if config.Asset == 0 {
			return fmt.Errorf("--asset is required")
		}
		ctx, cancel := commandContext()
		defer cancel()

		desc, err := pickAccount(config.From)
		if err != nil {
			return err
		}
		config.FromAcc = desc

		reader, client, err := algodReader()
		if err != nil {
			return err
		}
		asset, err := reader.AssetInfo(ctx, config.Asset)
		if err != nil {
			return err
		}
		balance, err := reader.AssetBalance(ctx, desc.Address, asset.Index)
		if err != nil {
			return err
		}
		appUI.Info("From: %s (%s)", desc.Address, desc.Desc)
		appUI.Info("Balance: %s %s", common.FormatBaseUnits(balance, asset.Decimals), asset.UnitName)

		passphrase := appUI.AskSecret(fmt.Sprintf("Enter passphrase of %s: ", desc.Keypath))
		account, err := accounts.UnlockAccount(desc, passphrase)
		if err != nil {
			return err
		}

		props := transfer.Props{Open: true, Balance: balance, Asset: asset}
		deps := transfer.Deps{
			Validator:   algod.Validator{},
			Resolver:    nameResolver(),
			Builder:     &algod.TransferBuilder{Params: reader, Signer: account, Note: []byte(config.Note)},
			Broadcaster: newBroadcaster(cmd, client),
		}
		opts := sendOptions{
			Amount:  config.Amount,
			To:      config.To,
			Max:     config.Max,
			Yes:     config.YesToAllPrompt,
			Network: networks.CurrentNetwork().GetName(),
			From:    fmt.Sprintf("%s (%s)", desc.Address, desc.Desc),
			Note:    config.Note,
		}

		toaster := transfer.NewToaster(appUI)
		defer toaster.Dismiss()

		if opts.interactive() {
			notices := tui.NewChannelNotifier(16)
			deps.Notifier = notices
			conf, err := tui.Run(ctx, transfer.NewDialog(props, deps), notices)
			for _, n := range notices.Drain() {
				toaster.Notify(n.Kind, n.Message)
			}
			if err != nil {
				return err
			}
			if conf == nil {
				appUI.Info("Closed without sending.")
				return nil
			}
			showConfirmation(*conf)
			return nil
		}

		deps.Notifier = toaster
		conf, err := sendOnce(ctx, appUI, transfer.NewDialog(props, deps), opts)
		if err != nil {
			return err
		}
		showConfirmation(conf)
		return nil
	},
}

func init() {
	sendCmd.Flags().StringVarP(&config.From, "from", "f", "", "wallet to send from: an address or keywords of its description")
	sendCmd.Flags().Uint64VarP(&config.Asset, "asset", "a", 0, "index of the asset to send")
	sendCmd.Flags().StringVarP(&config.Amount, "amount", "v", "", "amount to send in asset units, eg. 1.5")
	sendCmd.Flags().BoolVarP(&config.Max, "max", "m", false, "send the whole balance")
	sendCmd.Flags().StringVarP(&config.To, "to", "t", "", "receiver: an algorand address or a .algo name")
	sendCmd.Flags().StringVar(&config.Note, "note", "", "note attached to the transaction")
	sendCmd.Flags().BoolVarP(&config.DontBroadcast, "dry", "d", false, "print the signed transaction instead of broadcasting it")
	sendCmd.Flags().BoolVarP(&config.DontWaitToBeMined, "no-wait", "F", false, "don't wait for the transaction to be confirmed")
	sendCmd.Flags().Uint64Var(&config.WaitRounds, "wait-rounds", algod.DefaultWaitRounds, "rounds to wait for the transaction to be confirmed")
	sendCmd.Flags().BoolVarP(&config.YesToAllPrompt, "yes", "y", false, "don't ask for confirmation")
	sendCmd.MarkFlagsMutuallyExclusive("amount", "max")
	rootCmd.AddCommand(sendCmd)
}
