package govproposer

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/smartcontractkit/govproposer/sdk"
	"github.com/smartcontractkit/govproposer/types"
)

var _ sdk.Signer = &PrivateKeySigner{}

// PrivateKeySigner signs transaction digests with a secp256k1 private key.
type PrivateKeySigner struct {
	pk *ecdsa.PrivateKey
}

// NewPrivateKeySigner creates a new PrivateKeySigner.
func NewPrivateKeySigner(pk *ecdsa.PrivateKey) *PrivateKeySigner {
	return &PrivateKeySigner{pk: pk}
}

// NewPrivateKeySignerFromHex parses a hex encoded private key. The 0x prefix is optional.
func NewPrivateKeySignerFromHex(hexKey string) (*PrivateKeySigner, error) {
	hexKey = strings.TrimSpace(hexKey)
	hexKey = strings.TrimPrefix(strings.TrimPrefix(hexKey, "0x"), "0X")

	pk, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, NewUsageError("invalid private key: %v", err)
	}

	return NewPrivateKeySigner(pk), nil
}

// SignDigest signs a 32 byte digest. The digest is signed as is, without any prefix.
func (s *PrivateKeySigner) SignDigest(digest []byte) (types.Signature, error) {
	sig, err := crypto.Sign(digest, s.pk)
	if err != nil {
		return types.Signature{}, fmt.Errorf("failed to sign digest: %w", err)
	}

	return types.NewSignatureFromBytes(sig)
}

// PublicKey returns the public key of the signer.
func (s *PrivateKeySigner) PublicKey() *ecdsa.PublicKey {
	return &s.pk.PublicKey
}

// Address returns the Ethereum address of the signer.
func (s *PrivateKeySigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.pk.PublicKey)
}
