package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tranvictor/algosend/accounts"
	cmdutil "github.com/tranvictor/algosend/cmd/util"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage your wallets",
	Long:  ``,
}

func handleAddMnemonic() error {
	appUI.Warn("Storing a plain mnemonic is NOT secure. Let's encrypt it to a keystore.")
	appUI.Info("Please enter or paste your 25 words mnemonic. It will not be displayed on your terminal to avoid stdout logging.")
	words := appUI.AskSecret("Paste your mnemonic now: ")
	passphrase := appUI.AskSecret("Enter your passphrase to encrypt the key: ")
	if passphrase != appUI.AskSecret("Repeat your passphrase: ") {
		return fmt.Errorf("passphrases don't match")
	}
	path, _, err := accounts.StoreMnemonicWithKeystore(words, passphrase)
	if err != nil {
		return fmt.Errorf("mnemonic encryption failed: %w", err)
	}
	appUI.Success("Stored encrypted key at %s.", path)
	return handleAddKeystoreGivenPath(path)
}

func handleAddKeystoreGivenPath(keystorePath string) error {
	address, err := accounts.VerifyKeystore(keystorePath)
	if err != nil {
		return fmt.Errorf("keystore path verification failed: %w", err)
	}
	appUI.Info("This keystore is with %s", address)
	accDesc := accounts.AccDesc{
		Address: address,
		Kind:    accounts.KindKeystore,
		Keypath: keystorePath,
		Desc:    cmdutil.PromptInput(appUI, "Please enter description of this wallet, it will be used to search your wallet by keywords"),
	}
	if err = accounts.StoreAccountRecord(accDesc); err != nil {
		return fmt.Errorf("couldn't store your wallet info: %w", err)
	}
	appUI.Success("Created %s.json in %s to store the wallet info. Please don't move the keystore file later.", address, accounts.ACCOUNTS_DIR)
	appUI.Info("Your wallet is added successfully. You can check your list of wallets using the following command:\n> algosend wallet list")
	return nil
}

var addWalletCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a wallet to algosend",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch appUI.Choose("Key type", []string{"mnemonic", "keystore"}) {
		case 0:
			return handleAddMnemonic()
		default:
			path := cmdutil.PromptFilePath(appUI, "Please enter the path to your keystore file")
			return handleAddKeystoreGivenPath(path)
		}
	},
}

var listWalletCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of your wallets",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		accs := accounts.GetAccounts()
		appUI.Info("You have %d wallets:", len(accs))

		accountList := []accounts.AccDesc{}
		for _, acc := range accs {
			accountList = append(accountList, acc)
		}
		sort.Slice(accountList, func(i, j int) bool {
			return accountList[i].Desc < accountList[j].Desc
		})
		rows := [][]string{}
		for index, acc := range accountList {
			rows = append(rows, []string{fmt.Sprintf("%d", index+1), acc.Address, acc.Kind, acc.Desc})
		}
		if len(rows) > 0 {
			appUI.Table([]string{"#", "Address", "Kind", "Description"}, rows)
		}
		appUI.Info("\nIf you want to add more wallets to the list, use following command:\n> algosend wallet add")
	},
}

func init() {
	walletCmd.AddCommand(listWalletCmd)
	walletCmd.AddCommand(addWalletCmd)
	rootCmd.AddCommand(walletCmd)
}
