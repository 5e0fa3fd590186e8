package sdk

import (
	"context"

	"github.com/smartcontractkit/govproposer/types"
)

// Dialer opens a connection to a chain node.
type Dialer interface {
	Dial(ctx context.Context, endpoint string) (ChainClient, error)
}

// DialerFunc adapts a function to the Dialer interface.
type DialerFunc func(ctx context.Context, endpoint string) (ChainClient, error)

// Dial implements Dialer.
func (f DialerFunc) Dial(ctx context.Context, endpoint string) (ChainClient, error) {
	return f(ctx, endpoint)
}

// ChainClient is a live connection to a node, able to encode calls against the node's runtime
// metadata and to submit signed extrinsics.
//
// A ChainClient is owned by a single workflow run and must be closed by it.
type ChainClient interface {
	Encoder
	Decoder
	Submitter

	// ChainInfo returns the chain name and the node's name and version.
	ChainInfo(ctx context.Context) (types.ChainInfo, error)

	// LatestHeader returns the header of the best block.
	LatestHeader(ctx context.Context) (types.Header, error)

	// Close releases the connection.
	Close()
}
