package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	sdkalgod "github.com/algorand/go-algorand-sdk/v2/client/v2/algod"

	"github.com/tranvictor/algosend/accounts"
	"github.com/tranvictor/algosend/algod"
	"github.com/tranvictor/algosend/config"
	"github.com/tranvictor/algosend/networks"
	"github.com/tranvictor/algosend/nfd"
	"github.com/tranvictor/algosend/transfer"
	"github.com/tranvictor/algosend/ui"
	"github.com/tranvictor/algosend/util"
)

var appUI ui.UI = ui.NewTerminalUI()

// commandContext is cancelled on ctrl+c.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func algodClient() (*sdkalgod.Client, error) {
	return algod.NewClient(networks.CurrentNetwork(), settings.Algod.Node, settings.Algod.Token)
}

func algodReader() (*algod.Reader, *sdkalgod.Client, error) {
	client, err := algodClient()
	if err != nil {
		return nil, nil, err
	}
	return algod.NewReader(client, networks.CurrentNetwork().GetGenesisID()), client, nil
}

type noResolver struct {
	network string
}

func (r noResolver) ResolveDomain(context.Context, string) (string, error) {
	return "", fmt.Errorf("NFDomains is not available on %s", r.network)
}

// nameResolver returns the NFD client of the current network.
func nameResolver() transfer.NameResolver {
	n := networks.CurrentNetwork()
	api := settings.NFD.API
	if api == "" {
		api = n.GetNFDAPIURL()
	}
	if api == "" {
		return noResolver{network: n.GetName()}
	}
	return nfd.NewClient(api)
}

// pickAccount finds the wallet matching hint. An empty hint is fine when
// there is exactly one wallet.
func pickAccount(hint string) (accounts.AccDesc, error) {
	if hint != "" {
		return accounts.GetAccount(hint)
	}
	accs := accounts.GetAccounts()
	switch len(accs) {
	case 0:
		return accounts.AccDesc{}, fmt.Errorf("you don't have any wallet yet, add one with: algosend wallet add")
	case 1:
		for _, acc := range accs {
			return acc, nil
		}
	}
	return accounts.AccDesc{}, fmt.Errorf("you have %d wallets, pick one with --from", len(accs))
}

func showConfirmation(conf transfer.Confirmation) {
	util.DisplayTransfer(appUI, conf, networks.CurrentNetwork(), !config.DontBroadcast)
}
