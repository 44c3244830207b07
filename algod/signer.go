package algod

import (
	"crypto/ed25519"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/types"
)

type Signer interface {
	Address() string
	// SignTransaction returns the id of tx and its msgpack encoded signed
	// form.
	SignTransaction(tx types.Transaction) (string, []byte, error)
}

type KeySigner struct {
	account crypto.Account
}

func NewKeySigner(sk ed25519.PrivateKey) (*KeySigner, error) {
	acc, err := crypto.AccountFromPrivateKey(sk)
	if err != nil {
		return nil, err
	}
	return &KeySigner{account: acc}, nil
}

func (s *KeySigner) Address() string {
	return s.account.Address.String()
}

func (s *KeySigner) SignTransaction(tx types.Transaction) (string, []byte, error) {
	return crypto.SignTransaction(s.account.PrivateKey, tx)
}
