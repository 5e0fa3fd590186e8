package types

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// AccountID20Length is the length of an Ethereum-style account identifier.
	AccountID20Length = 20
	// AccountID32Length is the length of a Substrate account identifier.
	AccountID32Length = 32
)

// AccountID is a raw on-chain account identifier, either 20 or 32 bytes long.
type AccountID []byte

// ParseAccountID parses a hex encoded account identifier. The 0x prefix is optional.
func ParseAccountID(s string) (AccountID, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}

	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid account id %q: %w", s, err)
	}

	if len(b) != AccountID20Length && len(b) != AccountID32Length {
		return nil, fmt.Errorf("invalid account id length: %d", len(b))
	}

	return AccountID(b), nil
}

// MustParseAccountID is like ParseAccountID but panics on error.
func MustParseAccountID(s string) AccountID {
	id, err := ParseAccountID(s)
	if err != nil {
		panic(err)
	}

	return id
}

// Hex returns the 0x-prefixed hex encoding of the account.
func (a AccountID) Hex() string {
	return hexutil.Encode(a)
}

// String implements fmt.Stringer.
func (a AccountID) String() string {
	return a.Hex()
}

// Equal reports whether both identifiers hold the same bytes.
func (a AccountID) Equal(b AccountID) bool {
	return bytes.Equal(a, b)
}
