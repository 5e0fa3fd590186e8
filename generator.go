package govproposer

import (
	"context"
	"math"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/smartcontractkit/govproposer/sdk"
	"github.com/smartcontractkit/govproposer/types"
)

// CallGenerator produces the initial call governed by a proposal.
type CallGenerator interface {
	Generate(ctx context.Context, client sdk.ChainClient) (types.Call, error)
}

// CodeFetcher downloads runtime code.
type CodeFetcher interface {
	Fetch(ctx context.Context, uri string) ([]byte, error)
}

var _ CallGenerator = (*RuntimeUpgradeGenerator)(nil)

// RuntimeUpgradeGenerator authorizes an upgrade to the runtime code found at a URI.
type RuntimeUpgradeGenerator struct {
	codeURI string
	fetcher CodeFetcher
}

func NewRuntimeUpgradeGenerator(codeURI string, fetcher CodeFetcher) *RuntimeUpgradeGenerator {
	return &RuntimeUpgradeGenerator{codeURI: codeURI, fetcher: fetcher}
}

// Generate downloads the code once and returns System.authorize_upgrade(blake2b256(code)).
func (g *RuntimeUpgradeGenerator) Generate(ctx context.Context, client sdk.ChainClient) (types.Call, error) {
	lggr := sdk.LoggerFrom(ctx)

	lggr.Infof("downloading %s", g.codeURI)
	code, err := g.fetcher.Fetch(ctx, g.codeURI)
	if err != nil {
		return types.Call{}, NewFetchError(g.codeURI, err)
	}
	lggr.Infof("downloaded code(%d KB)", int(math.Round(float64(len(code))/1024)))

	codeHash := types.Blake2b256(code)
	lggr.Infof("code hash: %s", codeHash.Hex())

	call, err := client.EncodeCall("System", "authorize_upgrade", codeHash)
	if err != nil {
		return types.Call{}, NewEncodeError("authorizeUpgrade", err)
	}

	return call, nil
}

var _ CallGenerator = (*RawCallGenerator)(nil)

// RawCallGenerator governs an already encoded call.
type RawCallGenerator struct {
	callData string
}

// NewRawCallGenerator accepts hex call data with or without the 0x prefix.
func NewRawCallGenerator(callData string) *RawCallGenerator {
	callData = strings.TrimSpace(callData)
	if strings.HasPrefix(callData, "0x") || strings.HasPrefix(callData, "0X") {
		callData = callData[2:]
	}

	return &RawCallGenerator{callData: "0x" + callData}
}

// CallData returns the normalized 0x prefixed call data.
func (g *RawCallGenerator) CallData() string {
	return g.callData
}

// Generate decodes the call data against the runtime metadata. It does no network I/O.
func (g *RawCallGenerator) Generate(ctx context.Context, client sdk.ChainClient) (types.Call, error) {
	sdk.LoggerFrom(ctx).Infof("using raw call data: %s", g.callData)

	data, err := hexutil.Decode(g.callData)
	if err != nil {
		return types.Call{}, NewDecodeError(g.callData, err)
	}

	call, err := client.DecodeCall(data)
	if err != nil {
		return types.Call{}, NewDecodeError(g.callData, err)
	}

	return call, nil
}
