package govproposer

import (
	"github.com/smartcontractkit/govproposer/internal/utils/safecast"
	"github.com/smartcontractkit/govproposer/sdk"
	"github.com/smartcontractkit/govproposer/types"
)

// PlanBuilder derives the governance calls wrapping an initial call.
type PlanBuilder struct {
	encoder sdk.Encoder
	config  Config
}

// NewPlanBuilder creates a new PlanBuilder using DefaultConfig.
func NewPlanBuilder(encoder sdk.Encoder) *PlanBuilder {
	return &PlanBuilder{encoder: encoder, config: DefaultConfig()}
}

// SetConfig replaces every governance parameter.
func (b *PlanBuilder) SetConfig(cfg Config) *PlanBuilder {
	b.config = cfg
	return b
}

// SetTechCommThreshold sets the technical committee approval threshold.
func (b *PlanBuilder) SetTechCommThreshold(threshold uint32) *PlanBuilder {
	b.config.TechCommThreshold = threshold
	return b
}

// SetReferendumDelay sets the referendum enactment delay, in blocks.
func (b *PlanBuilder) SetReferendumDelay(delay uint32) *PlanBuilder {
	b.config.ReferendumDelay = delay
	return b
}

// SetProxyAddress sets the account the signer acts for.
func (b *PlanBuilder) SetProxyAddress(address types.AccountID) *PlanBuilder {
	b.config.ProxyAddress = address
	return b
}

// Build derives the plan for initial. It does no I/O and only fails with an *EncodeError naming
// the step that could not be encoded.
func (b *PlanBuilder) Build(initial types.Call) (*ProposalPlan, error) {
	plan := &ProposalPlan{initial: initial.Clone()}

	var err error
	plan.whitelistCall, err = b.encode(StepWhitelist, "Whitelist", "whitelist_call", initial.Hash)
	if err != nil {
		return nil, err
	}

	length, err := safecast.IntToUint32(plan.whitelistCall.Len())
	if err != nil {
		return nil, NewEncodeError(StepTechCommProposal, err)
	}
	plan.techCommProposal, err = b.encode(StepTechCommProposal, "TechnicalCommittee", "propose",
		b.config.TechCommThreshold, plan.whitelistCall, length)
	if err != nil {
		return nil, err
	}

	plan.whitelistDispatch, err = b.encode(StepWhitelistDispatch, "Whitelist",
		"dispatch_whitelisted_call_with_preimage", initial)
	if err != nil {
		return nil, err
	}

	plan.referendaProposal, err = b.encode(StepReferendaProposal, "Referenda", "submit",
		types.NewVariant("Origins", types.NewVariant("WhitelistedCaller", nil)),
		types.NewVariant("Inline", plan.whitelistDispatch.Data),
		types.NewVariant("After", b.config.ReferendumDelay),
	)
	if err != nil {
		return nil, err
	}

	plan.proxyTechCommProposal, err = b.proxy(StepProxyTechCommProposal, plan.techCommProposal)
	if err != nil {
		return nil, err
	}

	plan.proxyReferendaProposal, err = b.proxy(StepProxyReferendaProposal, plan.referendaProposal)
	if err != nil {
		return nil, err
	}

	return plan, nil
}

func (b *PlanBuilder) proxy(step string, call types.Call) (types.Call, error) {
	return b.encode(step, "Proxy", "proxy",
		b.config.ProxyAddress, types.Some(types.NewVariant("Governance", nil)), call)
}

func (b *PlanBuilder) encode(step, pallet, call string, args ...any) (types.Call, error) {
	encoded, err := b.encoder.EncodeCall(pallet, call, args...)
	if err != nil {
		return types.Call{}, NewEncodeError(step, err)
	}

	return encoded, nil
}
