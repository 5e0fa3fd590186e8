package sdk

import (
	"github.com/smartcontractkit/govproposer/types"
)

// Encoder encodes runtime calls.
//
// Arguments are matched positionally against the call's fields in the runtime metadata. The
// accepted Go values are documented on the implementations.
type Encoder interface {
	EncodeCall(pallet, call string, args ...any) (types.Call, error)
}
