package sdk

import (
	"context"
	"crypto/ecdsa"

	"github.com/smartcontractkit/govproposer/types"
)

// Signer produces recoverable secp256k1 signatures over 32 byte digests.
//
// Which digest is signed depends on the chain's signature scheme and is decided by the
// Submitter implementation.
type Signer interface {
	SignDigest(digest []byte) (types.Signature, error)
	PublicKey() *ecdsa.PublicKey
}

// Submitter signs and broadcasts calls.
type Submitter interface {
	// SubmitAndWatch signs call with signer, using the next nonce the node reports for the
	// signer's account, broadcasts it and subscribes to its status notifications.
	SubmitAndWatch(ctx context.Context, signer Signer, call types.Call) (StatusSubscription, error)
}

// StatusSubscription is a cancellable stream of status notifications for one extrinsic.
type StatusSubscription interface {
	// Statuses delivers notifications in the order the node sent them. The channel is closed
	// when the node ends the stream.
	Statuses() <-chan types.TxStatus

	// Err delivers at most one subscription failure.
	Err() <-chan error

	// Unsubscribe cancels the subscription. It is safe to call more than once.
	Unsubscribe()
}
