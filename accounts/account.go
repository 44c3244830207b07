// Package accounts manages the wallets algosend can send from. An account is
// described by a small json record in ~/.algosend and, for keystore
// accounts, an encrypted keystore file under ~/.algosend/keystores.
package accounts

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/algorand/go-algorand-sdk/v2/types"
	gethkeystore "github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"

	"github.com/tranvictor/algosend/algod"
	"github.com/tranvictor/algosend/util/log"
)

const (
	KindKeystore = "keystore"

	keystoreVersion = 3
)

var (
	// ACCOUNTS_DIR holds one AccDesc json per account, named after its
	// address.
	ACCOUNTS_DIR = filepath.Join(getHomeDir(), ".algosend")

	// scrypt cost of new keystores.
	ScryptN = gethkeystore.StandardScryptN
	ScryptP = gethkeystore.StandardScryptP
)

type AccDesc struct {
	Address string
	Kind    string
	Keypath string
	Desc    string
}

func getHomeDir() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return dir
}

func keystoresDir() string {
	return filepath.Join(ACCOUNTS_DIR, "keystores")
}

// keystore is a Web3 secret storage v3 file holding an ed25519 seed instead
// of a secp256k1 key.
type keystore struct {
	Address string                  `json:"address"`
	ID      string                  `json:"id"`
	Version int                     `json:"version"`
	Crypto  gethkeystore.CryptoJSON `json:"crypto"`
}

// StoreMnemonicWithKeystore encrypts the key behind a 25 word mnemonic with
// passphrase and writes it to the keystores directory. It returns the path
// of the keystore and the address of the key.
func StoreMnemonicWithKeystore(words string, passphrase string) (string, string, error) {
	sk, err := mnemonic.ToPrivateKey(strings.Join(strings.Fields(words), " "))
	if err != nil {
		return "", "", fmt.Errorf("invalid mnemonic: %w", err)
	}
	acc, err := crypto.AccountFromPrivateKey(sk)
	if err != nil {
		return "", "", err
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return "", "", err
	}
	cj, err := gethkeystore.EncryptDataV3(sk.Seed(), []byte(passphrase), ScryptN, ScryptP)
	if err != nil {
		return "", "", fmt.Errorf("couldn't encrypt key: %w", err)
	}
	content, err := json.MarshalIndent(keystore{
		Address: acc.Address.String(),
		ID:      id.String(),
		Version: keystoreVersion,
		Crypto:  cj,
	}, "", "  ")
	if err != nil {
		return "", "", err
	}

	if err := os.MkdirAll(keystoresDir(), 0o700); err != nil {
		return "", "", err
	}
	path := filepath.Join(keystoresDir(), fmt.Sprintf("%s.json", acc.Address))
	return path, acc.Address.String(), os.WriteFile(path, content, 0o600)
}

func readKeystore(path string) (*keystore, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	k := &keystore{}
	if err := json.Unmarshal(content, k); err != nil {
		return nil, fmt.Errorf("%s is not a keystore: %w", path, err)
	}
	if k.Version != keystoreVersion {
		return nil, fmt.Errorf("keystore version %d is not supported", k.Version)
	}
	if _, err := types.DecodeAddress(k.Address); err != nil {
		return nil, fmt.Errorf("keystore address %q: %w", k.Address, err)
	}
	return k, nil
}

// VerifyKeystore returns the address a keystore file claims to hold without
// decrypting it.
func VerifyKeystore(path string) (string, error) {
	k, err := readKeystore(path)
	if err != nil {
		return "", err
	}
	return k.Address, nil
}

// UnlockKeystore decrypts the key of a keystore file.
func UnlockKeystore(path string, passphrase string) (ed25519.PrivateKey, error) {
	k, err := readKeystore(path)
	if err != nil {
		return nil, err
	}
	seed, err := gethkeystore.DecryptDataV3(k.Crypto, passphrase)
	if err != nil {
		return nil, err
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("keystore %s holds a %d bytes key, expected %d", path, len(seed), ed25519.SeedSize)
	}
	sk := ed25519.NewKeyFromSeed(seed)
	acc, err := crypto.AccountFromPrivateKey(sk)
	if err != nil {
		return nil, err
	}
	if acc.Address.String() != k.Address {
		return nil, fmt.Errorf("keystore %s decrypts to %s instead of %s", path, acc.Address, k.Address)
	}
	return sk, nil
}

func StoreAccountRecord(accDesc AccDesc) error {
	if err := os.MkdirAll(ACCOUNTS_DIR, 0o700); err != nil {
		return err
	}
	path := filepath.Join(ACCOUNTS_DIR, fmt.Sprintf("%s.json", accDesc.Address))
	content, err := json.MarshalIndent(accDesc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o600)
}

// Account is an unlocked wallet able to sign transfers.
type Account struct {
	*algod.KeySigner
	Desc AccDesc
}

func UnlockAccount(ad AccDesc, passphrase string) (*Account, error) {
	switch ad.Kind {
	case KindKeystore:
		log.Root.Debug().Str("keystore", ad.Keypath).Msg("unlocking account")
		sk, err := UnlockKeystore(ad.Keypath, passphrase)
		if err != nil {
			return nil, fmt.Errorf("unlocking keystore '%s' failed: %w", ad.Keypath, err)
		}
		signer, err := algod.NewKeySigner(sk)
		if err != nil {
			return nil, err
		}
		if signer.Address() != ad.Address {
			return nil, fmt.Errorf("keystore '%s' is not the key of %s", ad.Keypath, ad.Address)
		}
		return &Account{KeySigner: signer, Desc: ad}, nil
	}
	return nil, fmt.Errorf("account kind '%s' is not supported", ad.Kind)
}

func GetAccount(input string) (AccDesc, error) {
	source := NewFuzzySource()
	matches := fuzzy.FindFrom(strings.ReplaceAll(input, " ", "_"), source)
	if len(matches) == 0 {
		return AccDesc{}, fmt.Errorf("no account is found with '%s'", input)
	}
	return source[matches[0].Index], nil
}

// GetAccounts returns a map address -> account description
// Each description is stored in a json file whose name is
// the address and content is the description.
// All files are kept in ACCOUNTS_DIR.
func GetAccounts() map[string]AccDesc {
	paths, err := filepath.Glob(filepath.Join(ACCOUNTS_DIR, "*.json"))
	if err != nil {
		log.Root.Warn().Err(err).Msg("listing accounts failed")
		return map[string]AccDesc{}
	}
	result := map[string]AccDesc{}
	for _, p := range paths {
		addr := strings.TrimSuffix(filepath.Base(p), ".json")
		if _, err := types.DecodeAddress(addr); err != nil {
			// cache.json and friends
			continue
		}
		content, err := os.ReadFile(p)
		if err != nil {
			log.Root.Warn().Err(err).Str("path", p).Msg("reading account description failed, skipping it")
			continue
		}
		desc := AccDesc{}
		if err := json.Unmarshal(content, &desc); err != nil {
			log.Root.Warn().Err(err).Str("path", p).Msg("parsing account description failed, skipping it")
			continue
		}
		result[addr] = desc
	}
	return result
}
