package types

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// SignatureLength is the length of a recoverable secp256k1 signature: R (32) | S (32) | V (1).
	SignatureLength = crypto.SignatureLength

	// SignatureVOffset is the Ethereum legacy offset applied to the recovery id.
	SignatureVOffset = 27
)

// Signature is a recoverable secp256k1 signature in [R || S || V] layout.
//
// Substrate verifies these with the recovery id in {0, 1}; Bytes always returns that form.
type Signature [SignatureLength]byte

// NewSignatureFromBytes creates a Signature from its 65 byte encoding. A V of 27 or 28 is
// normalized to 0 or 1.
func NewSignatureFromBytes(sig []byte) (Signature, error) {
	var s Signature
	if len(sig) != SignatureLength {
		return s, fmt.Errorf("invalid signature length: %d", len(sig))
	}

	copy(s[:], sig)
	if s[SignatureLength-1] >= SignatureVOffset {
		s[SignatureLength-1] -= SignatureVOffset
	}

	if s[SignatureLength-1] > 1 {
		return Signature{}, fmt.Errorf("invalid signature recovery id: %d", sig[SignatureLength-1])
	}

	return s, nil
}

// R returns the R component.
func (s Signature) R() common.Hash { return common.BytesToHash(s[:32]) }

// S returns the S component.
func (s Signature) S() common.Hash { return common.BytesToHash(s[32:64]) }

// V returns the recovery id, 0 or 1.
func (s Signature) V() uint8 { return s[SignatureLength-1] }

// Bytes returns a copy of the 65 byte encoding.
func (s Signature) Bytes() []byte {
	out := make([]byte, SignatureLength)
	copy(out, s[:])

	return out
}

// RecoverPublicKey returns the public key that produced the signature over digest.
func (s Signature) RecoverPublicKey(digest []byte) (*ecdsa.PublicKey, error) {
	pub, err := crypto.SigToPub(digest, s.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to recover public key: %w", err)
	}

	return pub, nil
}

// RecoverAddress returns the Ethereum-style address of the key that signed digest.
func (s Signature) RecoverAddress(digest []byte) (common.Address, error) {
	pub, err := s.RecoverPublicKey(digest)
	if err != nil {
		return common.Address{}, err
	}

	return crypto.PubkeyToAddress(*pub), nil
}
