package sdkerrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      error
		expected string
	}{
		{NewUnknownPalletError("Whitelist"), "unknown pallet: Whitelist"},
		{NewUnknownCallError("Whitelist", "whitelist_call"), "unknown call Whitelist.whitelist_call"},
		{NewUnknownCallIndexError(99, 1), "unknown call index [99, 1]"},
		{NewArgumentCountError("Proxy.proxy", 3, 2), "call Proxy.proxy expects 3 arguments, received 2"},
		{NewTypeMismatchError(7, "u32", "x"), "cannot encode string as u32 (type 7)"},
		{NewUnknownTypeError(42), "type 42 not found in metadata"},
		{NewUnsupportedSignedExtensionError("CheckFoo"), "unsupported signed extension: CheckFoo"},
		{NewUnsupportedMetadataVersionError(13), "unsupported metadata version: 13"},
		{NewUnsupportedAccountSchemeError("MultiAddress", "sr25519"), "unsupported account scheme: address MultiAddress, signature sr25519"},
		{ErrTruncated, "unexpected end of call data"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.err.Error())
	}
}
