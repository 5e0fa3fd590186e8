package types

import "slices"

// ProposalType selects how the initial governed call is produced.
type ProposalType string

const (
	// ProposalTypeRuntimeUpgrade authorizes a runtime upgrade to code fetched from a URI.
	ProposalTypeRuntimeUpgrade ProposalType = "runtime-upgrade"
	// ProposalTypeAny governs an arbitrary hex encoded call.
	ProposalTypeAny ProposalType = "any"
)

// StringToProposalType converts a string to a ProposalType.
var StringToProposalType = map[string]ProposalType{
	"runtime-upgrade": ProposalTypeRuntimeUpgrade,
	"any":             ProposalTypeAny,
}

// ProposalTypes returns the recognized proposal types in a stable order.
func ProposalTypes() []ProposalType {
	return []ProposalType{ProposalTypeRuntimeUpgrade, ProposalTypeAny}
}

// IsValid reports whether the proposal type is recognized.
func (p ProposalType) IsValid() bool {
	return slices.Contains(ProposalTypes(), p)
}
