package testutils

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/smartcontractkit/govproposer/types"
)

// Note: should only be used for testing purposes
type ECDSASigner struct {
	Key *ecdsa.PrivateKey
}

func NewECDSASigner() *ECDSASigner {
	key, _ := crypto.GenerateKey()
	return &ECDSASigner{Key: key}
}

// NewECDSASignerFromHex panics when hexKey is not a valid secp256k1 private key.
func NewECDSASignerFromHex(hexKey string) *ECDSASigner {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		panic(err)
	}

	return &ECDSASigner{Key: key}
}

func (s *ECDSASigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.Key.PublicKey)
}

func (s *ECDSASigner) PublicKey() *ecdsa.PublicKey {
	return &s.Key.PublicKey
}

func (s *ECDSASigner) SignDigest(digest []byte) (types.Signature, error) {
	sig, err := crypto.Sign(digest, s.Key)
	if err != nil {
		return types.Signature{}, err
	}

	return types.NewSignatureFromBytes(sig)
}
