package sdk

import (
	"github.com/smartcontractkit/govproposer/types"
)

// Decoder decodes raw call bytes into a Call, validating them against the runtime.
type Decoder interface {
	DecodeCall(data []byte) (types.Call, error)
}
