package govproposer

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/smartcontractkit/govproposer/types"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	tests := []struct {
		err      error
		expected string
	}{
		{NewUsageError("missing %s", "endpoint"), "missing endpoint"},
		{NewUnknownProposalTypeError("foo"), `unknown proposal type "foo", expected one of: runtime-upgrade, any`},
		{NewConnectionError("ws://localhost:9944", ErrConnectionTimeout), "failed to connect to ws://localhost:9944: connection timeout"},
		{NewFetchError("https://example.com/code.wasm", errBoom), "failed to fetch https://example.com/code.wasm: boom"},
		{NewEncodeError(StepWhitelist, errBoom), "failed to encode whitelist: boom"},
		{NewDecodeError("0xzz", errBoom), `failed to decode call data "0xzz": boom`},
		{
			NewSubmissionFailure("Proxy.proxy", types.TxStatus{Kind: types.TxStatusDropped}),
			"submission of Proxy.proxy failed: Dropped",
		},
		{
			NewSubmissionFailure("Proxy.proxy", types.TxStatus{Kind: types.TxStatusError, Err: errBoom}),
			"submission of Proxy.proxy failed: Error: boom",
		},
		{
			NewSubmissionFailure("Proxy.proxy", types.TxStatus{Kind: types.TxStatusUsurped, BlockHash: common.HexToHash("0x01")}),
			"submission of Proxy.proxy failed: Usurped(" + common.HexToHash("0x01").Hex() + ")",
		},
	}

	for _, test := range tests {
		assert.EqualError(t, test.err, test.expected)
	}
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	tests := []error{
		NewConnectionError("ws://localhost:9944", errBoom),
		NewFetchError("uri", errBoom),
		NewEncodeError(StepInitial, errBoom),
		NewDecodeError("0x", errBoom),
		NewSubmissionFailure("Proxy.proxy", types.TxStatus{Kind: types.TxStatusError, Err: errBoom}),
	}

	for _, err := range tests {
		assert.ErrorIs(t, err, errBoom)
	}
}
