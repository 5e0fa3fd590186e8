package types

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/blake2b"
)

// Call is an encoded runtime call together with its content hash.
//
// The hash is always blake2b-256 over Data, so two calls with identical bytes share a hash.
// Use NewCall to construct one; the zero value has an empty encoding and a zero hash.
type Call struct {
	Pallet string      `json:"pallet"`
	Name   string      `json:"name"`
	Data   []byte      `json:"data"`
	Hash   common.Hash `json:"hash"`
}

// NewCall returns a Call for the given encoding, computing its content hash.
func NewCall(pallet, name string, data []byte) Call {
	return Call{
		Pallet: pallet,
		Name:   name,
		Data:   bytes.Clone(data),
		Hash:   Blake2b256(data),
	}
}

// Method returns the "pallet.call" identifier of the call.
func (c Call) Method() string {
	return c.Pallet + "." + c.Name
}

// Hex returns the 0x-prefixed hex encoding of the call.
func (c Call) Hex() string {
	return hexutil.Encode(c.Data)
}

// Len returns the length of the call encoding in bytes.
func (c Call) Len() int {
	return len(c.Data)
}

// Clone returns a deep copy of the call.
func (c Call) Clone() Call {
	c.Data = bytes.Clone(c.Data)
	return c
}

// Blake2b256 returns the 256-bit blake2b digest of data.
func Blake2b256(data []byte) common.Hash {
	return common.Hash(blake2b.Sum256(data))
}
