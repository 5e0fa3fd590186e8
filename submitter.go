package govproposer

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartcontractkit/govproposer/sdk"
	"github.com/smartcontractkit/govproposer/types"
)

// errStreamClosed is reported when the node ends the status stream before inclusion.
var errStreamClosed = errors.New("status stream closed before inclusion")

// Submitter signs calls, broadcasts them and waits until they are included in a block.
type Submitter struct {
	client   sdk.Submitter
	signer   sdk.Signer
	endpoint string
}

// NewSubmitter creates a new Submitter. endpoint is only used to log block explorer links and
// may be empty.
func NewSubmitter(client sdk.Submitter, signer sdk.Signer, endpoint string) *Submitter {
	return &Submitter{client: client, signer: signer, endpoint: endpoint}
}

// Submit signs call with the next nonce of the signer's account and blocks until the first
// InBlock or Finalized notification, a failure, or ctx cancellation. There is no timeout.
func (s *Submitter) Submit(ctx context.Context, call types.Call) (types.SubmissionOutcome, error) {
	lggr := sdk.LoggerFrom(ctx)
	method := call.Method()

	lggr.Infof("signing and sending tx: %s", method)
	sub, err := s.client.SubmitAndWatch(ctx, s.signer, call)
	if err != nil {
		return types.SubmissionOutcome{}, NewSubmissionFailure(method, types.TxStatus{Kind: types.TxStatusError, Err: err})
	}
	defer sub.Unsubscribe()

	w := &txWatcher{call: method}
	errc := sub.Err()
	for {
		var status types.TxStatus

		select {
		case <-ctx.Done():
			return types.SubmissionOutcome{}, ctx.Err()
		case subErr, ok := <-errc:
			if !ok {
				errc = nil
				continue
			}
			status = types.TxStatus{Kind: types.TxStatusError, Err: subErr}
		case st, ok := <-sub.Statuses():
			if !ok {
				status = types.TxStatus{Kind: types.TxStatusError, Err: pendingErr(errc)}
				break
			}
			status = st
		}

		lggr.Infof("tx status: %s", status.Kind)
		if !w.observe(status) {
			continue
		}

		if w.err != nil {
			return types.SubmissionOutcome{}, w.err
		}

		lggr.Infof("tx included in block: %s", w.outcome.BlockHash.Hex())
		if s.endpoint != "" {
			lggr.Infof("block explorer URL: %s", ExplorerURL(s.endpoint, w.outcome.BlockHash.Hex()))
		}

		return w.outcome, nil
	}
}

// pendingErr returns the subscription error delivered alongside the end of the stream.
func pendingErr(errc <-chan error) error {
	select {
	case err, ok := <-errc:
		if ok && err != nil {
			return err
		}
	default:
	}

	return errStreamClosed
}

// ExplorerURL returns the polkadot.js explorer link for a block on the node at endpoint.
func ExplorerURL(endpoint, blockHash string) string {
	return fmt.Sprintf("https://polkadot.js.org/apps/?rpc=%s#/explorer/query/%s", endpoint, blockHash)
}

// txWatcher settles a submission exactly once from its status notifications.
type txWatcher struct {
	call    string
	settled bool
	outcome types.SubmissionOutcome
	err     error
}

// observe applies status and reports whether the submission is settled. Notifications after
// settlement are ignored.
func (w *txWatcher) observe(status types.TxStatus) bool {
	if w.settled {
		return true
	}

	switch status.Kind {
	case types.TxStatusInBlock:
		w.succeed(status, types.FinalityInBlock)
	case types.TxStatusFinalized:
		w.succeed(status, types.FinalityFinalized)
	case types.TxStatusError, types.TxStatusDropped, types.TxStatusInvalid:
		w.settled = true
		w.err = NewSubmissionFailure(w.call, status)
	case types.TxStatusFuture, types.TxStatusReady, types.TxStatusBroadcast,
		types.TxStatusRetracted, types.TxStatusFinalityTimeout, types.TxStatusUsurped:
	}

	return w.settled
}

func (w *txWatcher) succeed(status types.TxStatus, finality types.Finality) {
	w.settled = true
	w.outcome = types.SubmissionOutcome{
		Call:      w.call,
		BlockHash: status.BlockHash,
		Finality:  finality,
	}
}
