package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignatureFromBytes(t *testing.T) {
	t.Parallel()

	r := bytes.Repeat([]byte{0x12}, 32)
	s := bytes.Repeat([]byte{0x34}, 32)

	tests := []struct {
		name    string
		give    []byte
		wantV   uint8
		wantErr string
	}{
		{
			name:  "success: recovery id 1",
			give:  append(append(append([]byte{}, r...), s...), 0x01),
			wantV: 1,
		},
		{
			name:  "success: legacy v 27 normalized",
			give:  append(append(append([]byte{}, r...), s...), 0x1b),
			wantV: 0,
		},
		{
			name:    "failure: invalid length",
			give:    []byte{0x00},
			wantErr: "invalid signature length: 1",
		},
		{
			name:    "failure: invalid recovery id",
			give:    append(append(append([]byte{}, r...), s...), 0x05),
			wantErr: "invalid signature recovery id: 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewSignatureFromBytes(tt.give)

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantV, got.V())
				assert.Equal(t, common.BytesToHash(r), got.R())
				assert.Equal(t, common.BytesToHash(s), got.S())
				assert.Len(t, got.Bytes(), SignatureLength)
			}
		})
	}
}

func TestSignature_RecoverAddress(t *testing.T) {
	t.Parallel()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	digest := crypto.Keccak256([]byte("payload"))
	raw, err := crypto.Sign(digest, key)
	require.NoError(t, err)

	sig, err := NewSignatureFromBytes(raw)
	require.NoError(t, err)

	got, err := sig.RecoverAddress(digest)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), got)

	other, err := sig.RecoverAddress(crypto.Keccak256([]byte("other")))
	require.NoError(t, err)
	assert.NotEqual(t, crypto.PubkeyToAddress(key.PublicKey), other)
}
