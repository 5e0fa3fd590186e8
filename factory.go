package govproposer

import (
	"strings"

	"github.com/smartcontractkit/govproposer/types"
)

// NewCallGenerator returns the generator for proposalType. It only inspects its arguments, so a
// bad command line is reported before any connection is made.
func NewCallGenerator(proposalType string, args []string, fetcher CodeFetcher) (CallGenerator, error) {
	pt, ok := types.StringToProposalType[proposalType]
	if !ok {
		return nil, NewUnknownProposalTypeError(proposalType)
	}

	switch pt {
	case types.ProposalTypeRuntimeUpgrade:
		if len(args) == 0 || args[0] == "" {
			return nil, NewUsageError("runtime-upgrade requires a code URI argument")
		}

		return NewRuntimeUpgradeGenerator(args[0], fetcher), nil
	case types.ProposalTypeAny:
		if len(args) == 0 || args[0] == "" {
			return nil, NewUsageError("any proposal type requires call data as an argument")
		}

		return NewRawCallGenerator(args[0]), nil
	}

	return nil, NewUnknownProposalTypeError(proposalType)
}

// ProposalTypesUsage describes every proposal type with an example.
func ProposalTypesUsage() string {
	var b strings.Builder

	b.WriteString("available proposal types:\n")
	b.WriteString("  runtime-upgrade <code-uri>   - submit runtime upgrade proposal using code from URL\n")
	b.WriteString("                                 example: runtime-upgrade https://example.com/runtime.wasm\n")
	b.WriteString("  any <call-data>              - submit proposal with raw call data (hex-encoded)\n")
	b.WriteString("                                 example: any 0x...\n")

	return b.String()
}
