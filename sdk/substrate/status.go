package substrate

import (
	"sync"

	gsrpctypes "github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/govproposer/sdk"
	"github.com/smartcontractkit/govproposer/types"
)

// toTxStatus converts a node notification into the chain agnostic status.
func toTxStatus(s gsrpctypes.ExtrinsicStatus) types.TxStatus {
	switch {
	case s.IsFuture:
		return types.TxStatus{Kind: types.TxStatusFuture}
	case s.IsReady:
		return types.TxStatus{Kind: types.TxStatusReady}
	case s.IsBroadcast:
		return types.TxStatus{Kind: types.TxStatusBroadcast}
	case s.IsInBlock:
		return types.TxStatus{Kind: types.TxStatusInBlock, BlockHash: common.Hash(s.AsInBlock)}
	case s.IsRetracted:
		return types.TxStatus{Kind: types.TxStatusRetracted, BlockHash: common.Hash(s.AsRetracted)}
	case s.IsFinalityTimeout:
		return types.TxStatus{Kind: types.TxStatusFinalityTimeout, BlockHash: common.Hash(s.AsFinalityTimeout)}
	case s.IsFinalized:
		return types.TxStatus{Kind: types.TxStatusFinalized, BlockHash: common.Hash(s.AsFinalized)}
	case s.IsUsurped:
		return types.TxStatus{Kind: types.TxStatusUsurped, BlockHash: common.Hash(s.AsUsurped)}
	case s.IsDropped:
		return types.TxStatus{Kind: types.TxStatusDropped}
	case s.IsInvalid:
		return types.TxStatus{Kind: types.TxStatusInvalid}
	}

	return types.TxStatus{Kind: types.TxStatusInvalid}
}

// upstream is the part of an RPC client subscription the status stream depends on.
type upstream interface {
	Err() <-chan error
	Unsubscribe()
}

// statusSubscription forwards node notifications as types.TxStatus until the upstream
// subscription ends or Unsubscribe is called.
type statusSubscription struct {
	sub  upstream
	out  chan types.TxStatus
	errc chan error
	quit chan struct{}
	done chan struct{}
	once sync.Once
}

var _ sdk.StatusSubscription = (*statusSubscription)(nil)

func newStatusSubscription(sub upstream, in <-chan gsrpctypes.ExtrinsicStatus) *statusSubscription {
	s := &statusSubscription{
		sub:  sub,
		out:  make(chan types.TxStatus),
		errc: make(chan error, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go s.forward(in)

	return s
}

func (s *statusSubscription) forward(in <-chan gsrpctypes.ExtrinsicStatus) {
	defer close(s.done)
	defer close(s.out)

	for {
		select {
		case <-s.quit:
			return
		case err, ok := <-s.sub.Err():
			if ok && err != nil {
				s.errc <- err
			}

			return
		case raw := <-in:
			select {
			case s.out <- toTxStatus(raw):
			case <-s.quit:
				return
			}
		}
	}
}

func (s *statusSubscription) Statuses() <-chan types.TxStatus { return s.out }

func (s *statusSubscription) Err() <-chan error { return s.errc }

func (s *statusSubscription) Unsubscribe() {
	s.once.Do(func() {
		close(s.quit)
		s.sub.Unsubscribe()
		<-s.done
	})
}
