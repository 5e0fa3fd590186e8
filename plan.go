package govproposer

import (
	"github.com/smartcontractkit/govproposer/types"
)

// Names of the calls of a plan, in the order they are derived.
const (
	StepInitial                = "initial"
	StepWhitelist              = "whitelist"
	StepTechCommProposal       = "techCommProposal"
	StepWhitelistDispatch      = "whitelistDispatch"
	StepReferendaProposal      = "referendaProposal"
	StepProxyTechCommProposal  = "proxyTechCommProposal"
	StepProxyReferendaProposal = "proxyReferendaProposal"
)

// PlanStep is a named call of a ProposalPlan.
type PlanStep struct {
	Name string
	Call types.Call
}

// ProposalPlan is the set of calls derived from one initial call. It is built once by
// PlanBuilder.Build and never modified; accessors return copies.
type ProposalPlan struct {
	initial                types.Call
	whitelistCall          types.Call
	techCommProposal       types.Call
	whitelistDispatch      types.Call
	referendaProposal      types.Call
	proxyTechCommProposal  types.Call
	proxyReferendaProposal types.Call
}

func (p *ProposalPlan) Initial() types.Call { return p.initial.Clone() }

func (p *ProposalPlan) WhitelistCall() types.Call { return p.whitelistCall.Clone() }

func (p *ProposalPlan) TechCommProposal() types.Call { return p.techCommProposal.Clone() }

func (p *ProposalPlan) WhitelistDispatch() types.Call { return p.whitelistDispatch.Clone() }

func (p *ProposalPlan) ReferendaProposal() types.Call { return p.referendaProposal.Clone() }

func (p *ProposalPlan) ProxyTechCommProposal() types.Call { return p.proxyTechCommProposal.Clone() }

func (p *ProposalPlan) ProxyReferendaProposal() types.Call { return p.proxyReferendaProposal.Clone() }

// Steps returns every call of the plan in derivation order, starting with the initial call.
func (p *ProposalPlan) Steps() []PlanStep {
	return []PlanStep{
		{Name: StepInitial, Call: p.Initial()},
		{Name: StepWhitelist, Call: p.WhitelistCall()},
		{Name: StepTechCommProposal, Call: p.TechCommProposal()},
		{Name: StepWhitelistDispatch, Call: p.WhitelistDispatch()},
		{Name: StepReferendaProposal, Call: p.ReferendaProposal()},
		{Name: StepProxyTechCommProposal, Call: p.ProxyTechCommProposal()},
		{Name: StepProxyReferendaProposal, Call: p.ProxyReferendaProposal()},
	}
}

// Submissions returns the calls that are signed and submitted, in submission order.
func (p *ProposalPlan) Submissions() []PlanStep {
	return []PlanStep{
		{Name: StepProxyTechCommProposal, Call: p.ProxyTechCommProposal()},
		{Name: StepProxyReferendaProposal, Call: p.ProxyReferendaProposal()},
	}
}
