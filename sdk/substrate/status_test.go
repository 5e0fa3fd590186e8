package substrate

import (
	"errors"
	"sync/atomic"
	"testing"

	gsrpctypes "github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/smartcontractkit/govproposer/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestToTxStatus(t *testing.T) {
	t.Parallel()

	block := gsrpctypes.NewHash(common.HexToHash("0xabc").Bytes())
	want := common.HexToHash("0xabc")

	tests := []struct {
		name string
		give gsrpctypes.ExtrinsicStatus
		want types.TxStatus
	}{
		{name: "future", give: gsrpctypes.ExtrinsicStatus{IsFuture: true}, want: types.TxStatus{Kind: types.TxStatusFuture}},
		{name: "ready", give: gsrpctypes.ExtrinsicStatus{IsReady: true}, want: types.TxStatus{Kind: types.TxStatusReady}},
		{name: "broadcast", give: gsrpctypes.ExtrinsicStatus{IsBroadcast: true}, want: types.TxStatus{Kind: types.TxStatusBroadcast}},
		{
			name: "in block",
			give: gsrpctypes.ExtrinsicStatus{IsInBlock: true, AsInBlock: block},
			want: types.TxStatus{Kind: types.TxStatusInBlock, BlockHash: want},
		},
		{
			name: "retracted",
			give: gsrpctypes.ExtrinsicStatus{IsRetracted: true, AsRetracted: block},
			want: types.TxStatus{Kind: types.TxStatusRetracted, BlockHash: want},
		},
		{
			name: "finality timeout",
			give: gsrpctypes.ExtrinsicStatus{IsFinalityTimeout: true, AsFinalityTimeout: block},
			want: types.TxStatus{Kind: types.TxStatusFinalityTimeout, BlockHash: want},
		},
		{
			name: "finalized",
			give: gsrpctypes.ExtrinsicStatus{IsFinalized: true, AsFinalized: block},
			want: types.TxStatus{Kind: types.TxStatusFinalized, BlockHash: want},
		},
		{
			name: "usurped",
			give: gsrpctypes.ExtrinsicStatus{IsUsurped: true, AsUsurped: block},
			want: types.TxStatus{Kind: types.TxStatusUsurped, BlockHash: want},
		},
		{name: "dropped", give: gsrpctypes.ExtrinsicStatus{IsDropped: true}, want: types.TxStatus{Kind: types.TxStatusDropped}},
		{name: "invalid", give: gsrpctypes.ExtrinsicStatus{IsInvalid: true}, want: types.TxStatus{Kind: types.TxStatusInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, toTxStatus(tt.give))
		})
	}
}

type fakeUpstream struct {
	errc         chan error
	unsubscribed atomic.Int32
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{errc: make(chan error, 1)}
}

func (f *fakeUpstream) Err() <-chan error { return f.errc }

func (f *fakeUpstream) Unsubscribe() { f.unsubscribed.Add(1) }

func TestStatusSubscription_Forwards(t *testing.T) {
	t.Parallel()

	up := newFakeUpstream()
	in := make(chan gsrpctypes.ExtrinsicStatus)
	sub := newStatusSubscription(up, in)
	defer sub.Unsubscribe()

	go func() {
		in <- gsrpctypes.ExtrinsicStatus{IsReady: true}
		in <- gsrpctypes.ExtrinsicStatus{IsBroadcast: true}
		in <- gsrpctypes.ExtrinsicStatus{IsInBlock: true}
	}()

	assert.Equal(t, types.TxStatusReady, (<-sub.Statuses()).Kind)
	assert.Equal(t, types.TxStatusBroadcast, (<-sub.Statuses()).Kind)
	assert.Equal(t, types.TxStatusInBlock, (<-sub.Statuses()).Kind)
}

func TestStatusSubscription_UpstreamError(t *testing.T) {
	t.Parallel()

	up := newFakeUpstream()
	sub := newStatusSubscription(up, make(chan gsrpctypes.ExtrinsicStatus))
	defer sub.Unsubscribe()

	up.errc <- errors.New("connection reset")

	_, ok := <-sub.Statuses()
	assert.False(t, ok)
	require.EqualError(t, <-sub.Err(), "connection reset")
}

func TestStatusSubscription_UpstreamClosed(t *testing.T) {
	t.Parallel()

	up := newFakeUpstream()
	sub := newStatusSubscription(up, make(chan gsrpctypes.ExtrinsicStatus))
	defer sub.Unsubscribe()

	close(up.errc)

	_, ok := <-sub.Statuses()
	assert.False(t, ok)
	select {
	case err := <-sub.Err():
		t.Fatalf("unexpected error: %v", err)
	default:
	}
}

func TestStatusSubscription_Unsubscribe(t *testing.T) {
	t.Parallel()

	up := newFakeUpstream()
	in := make(chan gsrpctypes.ExtrinsicStatus, 1)
	sub := newStatusSubscription(up, in)

	// A notification nobody reads must not block unsubscribing.
	in <- gsrpctypes.ExtrinsicStatus{IsReady: true}

	sub.Unsubscribe()
	sub.Unsubscribe()

	assert.Equal(t, int32(1), up.unsubscribed.Load())
	_, ok := <-sub.Statuses()
	assert.False(t, ok)
}
