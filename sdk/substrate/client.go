package substrate

import (
	"context"
	"fmt"

	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	gsrpctypes "github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/govproposer/sdk"
	"github.com/smartcontractkit/govproposer/types"
)

var _ sdk.ChainClient = (*Client)(nil)

// Client is a connection to a Substrate node, together with the runtime metadata and versions
// read when it was established.
type Client struct {
	api     *gsrpc.SubstrateAPI
	reg     *registry
	runtime runtimeInfo
}

// Dial connects to the node at endpoint and loads its runtime metadata.
//
// The underlying websocket dial does not observe ctx; callers that need a connect timeout
// should race Dial against their own deadline.
func Dial(ctx context.Context, endpoint string) (*Client, error) {
	api, err := gsrpc.NewSubstrateAPI(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", endpoint, err)
	}

	c, err := load(ctx, api)
	if err != nil {
		api.Client.Close()
		return nil, err
	}

	return c, nil
}

func load(ctx context.Context, api *gsrpc.SubstrateAPI) (*Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	meta, err := api.RPC.State.GetMetadataLatest()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata: %w", err)
	}
	reg, err := newRegistry(meta)
	if err != nil {
		return nil, err
	}

	version, err := api.RPC.State.GetRuntimeVersionLatest()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch runtime version: %w", err)
	}
	genesis, err := api.RPC.Chain.GetBlockHash(0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch genesis hash: %w", err)
	}

	return &Client{
		api: api,
		reg: reg,
		runtime: runtimeInfo{
			specVersion: uint32(version.SpecVersion),
			txVersion:   uint32(version.TransactionVersion),
			genesis:     common.Hash(genesis),
		},
	}, nil
}

// NewDialer returns a sdk.Dialer that connects with Dial.
func NewDialer() sdk.Dialer {
	return sdk.DialerFunc(func(ctx context.Context, endpoint string) (sdk.ChainClient, error) {
		c, err := Dial(ctx, endpoint)
		if err != nil {
			return nil, err
		}

		return c, nil
	})
}

// ChainInfo implements sdk.ChainClient.
func (c *Client) ChainInfo(_ context.Context) (types.ChainInfo, error) {
	chain, err := c.api.RPC.System.Chain()
	if err != nil {
		return types.ChainInfo{}, fmt.Errorf("failed to fetch chain name: %w", err)
	}
	name, err := c.api.RPC.System.Name()
	if err != nil {
		return types.ChainInfo{}, fmt.Errorf("failed to fetch node name: %w", err)
	}
	version, err := c.api.RPC.System.Version()
	if err != nil {
		return types.ChainInfo{}, fmt.Errorf("failed to fetch node version: %w", err)
	}

	return types.ChainInfo{
		Chain:       string(chain),
		NodeName:    string(name),
		NodeVersion: string(version),
	}, nil
}

// LatestHeader implements sdk.ChainClient.
func (c *Client) LatestHeader(_ context.Context) (types.Header, error) {
	hash, err := c.api.RPC.Chain.GetBlockHashLatest()
	if err != nil {
		return types.Header{}, fmt.Errorf("failed to fetch latest block hash: %w", err)
	}
	header, err := c.api.RPC.Chain.GetHeader(hash)
	if err != nil {
		return types.Header{}, fmt.Errorf("failed to fetch header %s: %w", common.Hash(hash).Hex(), err)
	}

	return types.Header{Number: uint64(header.Number), Hash: common.Hash(hash)}, nil
}

// EncodeCall implements sdk.Encoder.
func (c *Client) EncodeCall(pallet, call string, args ...any) (types.Call, error) {
	return encodeRuntimeCall(c.reg, pallet, call, args)
}

// DecodeCall implements sdk.Decoder.
func (c *Client) DecodeCall(data []byte) (types.Call, error) {
	return decodeRuntimeCall(c.reg, data)
}

// SubmitAndWatch implements sdk.Submitter.
func (c *Client) SubmitAndWatch(
	ctx context.Context, signer sdk.Signer, call types.Call,
) (sdk.StatusSubscription, error) {
	scheme, err := c.reg.detectScheme()
	if err != nil {
		return nil, err
	}

	account := scheme.accountID(signer)
	var nonce uint64
	if err = c.api.Client.Call(&nonce, "system_accountNextIndex", account.Hex()); err != nil {
		return nil, fmt.Errorf("failed to fetch nonce for %s: %w", account.Hex(), err)
	}

	xt, err := c.reg.buildSignedExtrinsic(scheme, c.runtime, signer, nonce, call)
	if err != nil {
		return nil, err
	}

	in := make(chan gsrpctypes.ExtrinsicStatus)
	sub, err := c.api.Client.Subscribe(ctx, "author", "submitAndWatchExtrinsic", "unwatchExtrinsic",
		"extrinsicUpdate", in, codec.HexEncodeToString(xt))
	if err != nil {
		return nil, fmt.Errorf("failed to submit %s: %w", call.Method(), err)
	}

	return newStatusSubscription(sub, in), nil
}

// Close implements sdk.ChainClient.
func (c *Client) Close() {
	c.api.Client.Close()
}

func encodeRuntimeCall(reg *registry, pallet, call string, args []any) (types.Call, error) {
	p, v, err := reg.resolveCall(pallet, call)
	if err != nil {
		return types.Call{}, err
	}
	data, err := reg.encodeCall(p.name, v.name, args)
	if err != nil {
		return types.Call{}, err
	}

	return types.NewCall(p.name, v.name, data), nil
}

func decodeRuntimeCall(reg *registry, data []byte) (types.Call, error) {
	pallet, call, err := reg.decodeCall(data)
	if err != nil {
		return types.Call{}, err
	}

	return types.NewCall(pallet, call, data), nil
}
