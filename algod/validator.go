package algod

import (
	"github.com/algorand/go-algorand-sdk/v2/types"
)

// Validator checks the base32 encoding and checksum of Algorand addresses.
type Validator struct{}

func (Validator) IsValidAddress(addr string) bool {
	_, err := types.DecodeAddress(addr)
	return err == nil
}
