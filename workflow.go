package govproposer

import (
	"context"
	"time"

	"github.com/smartcontractkit/govproposer/sdk"
	"github.com/smartcontractkit/govproposer/types"
)

// WorkflowResult holds the plan that was submitted and the outcome of both submissions.
type WorkflowResult struct {
	Plan             *ProposalPlan
	TechCommOutcome  types.SubmissionOutcome
	ReferendaOutcome types.SubmissionOutcome
}

// Workflow connects to a node, builds a governance proposal and submits it.
type Workflow struct {
	dialer         sdk.Dialer
	signer         sdk.Signer
	config         Config
	connectTimeout time.Duration
}

// NewWorkflow creates a new Workflow with the ConnectTimeout.
func NewWorkflow(dialer sdk.Dialer, signer sdk.Signer, cfg Config) *Workflow {
	return &Workflow{
		dialer:         dialer,
		signer:         signer,
		config:         cfg,
		connectTimeout: ConnectTimeout,
	}
}

// SetConnectTimeout overrides the connect timeout.
func (w *Workflow) SetConnectTimeout(timeout time.Duration) *Workflow {
	w.connectTimeout = timeout
	return w
}

// Run generates the initial call, builds the plan and submits the technical committee proposal
// followed by the referendum, each through the proxy. The second submission starts only after
// the first one is included. The connection is closed on every return once established.
func (w *Workflow) Run(ctx context.Context, endpoint string, generator CallGenerator) (*WorkflowResult, error) {
	lggr := sdk.LoggerFrom(ctx)

	client, err := w.connect(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer func() {
		client.Close()
		lggr.Infof("disconnected from node")
	}()

	initial, err := generator.Generate(ctx, client)
	if err != nil {
		return nil, err
	}

	plan, err := NewPlanBuilder(client).SetConfig(w.config).Build(initial)
	if err != nil {
		return nil, err
	}

	for _, step := range plan.Steps() {
		lggr.Infof("%s call data: %s", step.Name, step.Call.Hex())
		lggr.Infof("%s hash: %s", step.Name, step.Call.Hash.Hex())
	}

	submitter := NewSubmitter(client, w.signer, endpoint)
	result := &WorkflowResult{Plan: plan}

	outcomes := map[string]*types.SubmissionOutcome{
		StepProxyTechCommProposal:  &result.TechCommOutcome,
		StepProxyReferendaProposal: &result.ReferendaOutcome,
	}
	for _, step := range plan.Submissions() {
		outcome, err := submitter.Submit(ctx, step.Call)
		if err != nil {
			return nil, err
		}
		*outcomes[step.Name] = outcome
	}

	return result, nil
}

type dialResult struct {
	client sdk.ChainClient
	err    error
}

// connect dials endpoint, giving up after the connect timeout. A connection that completes after
// the timeout is closed without being used.
func (w *Workflow) connect(ctx context.Context, endpoint string) (sdk.ChainClient, error) {
	lggr := sdk.LoggerFrom(ctx)
	lggr.Infof("connecting to %s", endpoint)

	results := make(chan dialResult, 1)
	go func() {
		client, err := w.dialer.Dial(ctx, endpoint)
		results <- dialResult{client: client, err: err}
	}()

	timer := time.NewTimer(w.connectTimeout)
	defer timer.Stop()

	var res dialResult
	select {
	case res = <-results:
	case <-timer.C:
		go discardLateConnection(results)
		res.err = ErrConnectionTimeout
	case <-ctx.Done():
		go discardLateConnection(results)
		res.err = ctx.Err()
	}
	if res.err != nil {
		lggr.Errorf("failed to connect to node: %v", res.err)
		return nil, NewConnectionError(endpoint, res.err)
	}

	client := res.client
	if err := identify(ctx, client); err != nil {
		client.Close()
		lggr.Errorf("failed to connect to node: %v", err)

		return nil, NewConnectionError(endpoint, err)
	}

	return client, nil
}

func discardLateConnection(results <-chan dialResult) {
	if res := <-results; res.err == nil {
		res.client.Close()
	}
}

// identify logs the chain, node and latest block of a fresh connection.
func identify(ctx context.Context, client sdk.ChainClient) error {
	lggr := sdk.LoggerFrom(ctx)

	info, err := client.ChainInfo(ctx)
	if err != nil {
		return err
	}
	lggr.Infof("connected to %s at %s-v%s", info.Chain, info.NodeName, info.NodeVersion)

	header, err := client.LatestHeader(ctx)
	if err != nil {
		return err
	}
	lggr.Infof("latest block: #%d %s", header.Number, header.Hash.Hex())

	return nil
}
