package govproposer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/smartcontractkit/govproposer/internal/testutils"
	"github.com/smartcontractkit/govproposer/sdk"
	"github.com/smartcontractkit/govproposer/sdk/mocks"
	"github.com/smartcontractkit/govproposer/types"
)

var (
	testBlockHash1 = common.HexToHash("0x01")
	testBlockHash2 = common.HexToHash("0x02")
	testProxyCall  = types.NewCall("Proxy", "proxy", []byte{0x04, 0x00, 0x01})
)

func observedContext(t *testing.T) (context.Context, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zap.DebugLevel)

	return sdk.ContextWithLogger(context.Background(), zap.New(core).Sugar()), logs
}

func messages(logs *observer.ObservedLogs) []string {
	out := make([]string, 0, logs.Len())
	for _, entry := range logs.AllUntimed() {
		out = append(out, entry.Message)
	}

	return out
}

func txStatus(kind types.TxStatusKind, hash ...common.Hash) types.TxStatus {
	s := types.TxStatus{Kind: kind}
	if len(hash) > 0 {
		s.BlockHash = hash[0]
	}

	return s
}

func TestSubmitter_Submit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		give         []types.TxStatus
		closeStream  bool
		subErr       error
		want         types.SubmissionOutcome
		wantFailKind types.TxStatusKind
		wantErrIs    error
	}{
		{
			name: "success: settles on the first in block notification",
			give: []types.TxStatus{
				txStatus(types.TxStatusReady),
				txStatus(types.TxStatusBroadcast),
				txStatus(types.TxStatusInBlock, testBlockHash1),
				txStatus(types.TxStatusFinalized, testBlockHash2),
			},
			want: types.SubmissionOutcome{Call: "Proxy.proxy", BlockHash: testBlockHash1, Finality: types.FinalityInBlock},
		},
		{
			name: "success: settles on finalized without in block",
			give: []types.TxStatus{
				txStatus(types.TxStatusFuture),
				txStatus(types.TxStatusReady),
				txStatus(types.TxStatusFinalized, testBlockHash2),
			},
			want: types.SubmissionOutcome{Call: "Proxy.proxy", BlockHash: testBlockHash2, Finality: types.FinalityFinalized},
		},
		{
			name: "success: informational statuses do not settle",
			give: []types.TxStatus{
				txStatus(types.TxStatusRetracted, testBlockHash1),
				txStatus(types.TxStatusFinalityTimeout, testBlockHash1),
				txStatus(types.TxStatusUsurped, testBlockHash1),
				txStatus(types.TxStatusInBlock, testBlockHash2),
			},
			want: types.SubmissionOutcome{Call: "Proxy.proxy", BlockHash: testBlockHash2, Finality: types.FinalityInBlock},
		},
		{
			name:         "failure: invalid",
			give:         []types.TxStatus{txStatus(types.TxStatusReady), txStatus(types.TxStatusInvalid)},
			wantFailKind: types.TxStatusInvalid,
		},
		{
			name:         "failure: dropped",
			give:         []types.TxStatus{txStatus(types.TxStatusBroadcast), txStatus(types.TxStatusDropped)},
			wantFailKind: types.TxStatusDropped,
		},
		{
			name:         "failure: stream closed before inclusion",
			give:         []types.TxStatus{txStatus(types.TxStatusReady)},
			closeStream:  true,
			wantFailKind: types.TxStatusError,
			wantErrIs:    errStreamClosed,
		},
		{
			name:         "failure: subscription error",
			give:         []types.TxStatus{txStatus(types.TxStatusReady)},
			subErr:       assert.AnError,
			wantFailKind: types.TxStatusError,
			wantErrIs:    assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sub := newFakeSubscription(len(tt.give))
			for _, s := range tt.give {
				sub.statuses <- s
			}
			if tt.closeStream {
				close(sub.statuses)
			}

			signer := testutils.NewECDSASigner()
			client := mocks.NewChainClient(t)
			client.EXPECT().SubmitAndWatch(mock.Anything, signer, testProxyCall).Return(sub, nil).Once()

			if tt.subErr != nil {
				// delivered once every queued status was consumed
				go func() {
					for len(sub.statuses) > 0 {
						time.Sleep(time.Millisecond)
					}
					sub.errc <- tt.subErr
				}()
			}

			got, err := NewSubmitter(client, signer, "").Submit(context.Background(), testProxyCall)

			assert.True(t, sub.isUnsubscribed())
			if tt.wantFailKind != "" {
				var failure *SubmissionFailure
				require.ErrorAs(t, err, &failure)
				assert.Equal(t, tt.wantFailKind, failure.Status.Kind)
				assert.Equal(t, "Proxy.proxy", failure.Call)
				if tt.wantErrIs != nil {
					require.ErrorIs(t, err, tt.wantErrIs)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubmitter_Submit_SubmitError(t *testing.T) {
	t.Parallel()

	signer := testutils.NewECDSASigner()
	client := mocks.NewChainClient(t)
	client.EXPECT().SubmitAndWatch(mock.Anything, signer, testProxyCall).Return(nil, assert.AnError).Once()

	_, err := NewSubmitter(client, signer, "").Submit(context.Background(), testProxyCall)

	var failure *SubmissionFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, types.TxStatusError, failure.Status.Kind)
	require.ErrorIs(t, err, assert.AnError)
}

func TestSubmitter_Submit_Cancelled(t *testing.T) {
	t.Parallel()

	statuses := make(chan types.TxStatus)
	sub := mocks.NewStatusSubscription(t)
	sub.EXPECT().Statuses().Return(statuses)
	sub.EXPECT().Err().Return(make(chan error))
	sub.EXPECT().Unsubscribe().Return().Once()

	signer := testutils.NewECDSASigner()
	client := mocks.NewChainClient(t)
	client.EXPECT().SubmitAndWatch(mock.Anything, signer, testProxyCall).Return(sub, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		statuses <- txStatus(types.TxStatusReady)
		cancel()
	}()

	_, err := NewSubmitter(client, signer, "").Submit(ctx, testProxyCall)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSubmitter_Submit_Logs(t *testing.T) {
	t.Parallel()

	ctx, logs := observedContext(t)

	sub := newFakeSubscription(3)
	sub.statuses <- txStatus(types.TxStatusReady)
	sub.statuses <- txStatus(types.TxStatusInBlock, testBlockHash1)
	sub.statuses <- txStatus(types.TxStatusInvalid)

	signer := testutils.NewECDSASigner()
	client := mocks.NewChainClient(t)
	client.EXPECT().SubmitAndWatch(mock.Anything, signer, testProxyCall).Return(sub, nil).Once()

	got, err := NewSubmitter(client, signer, "wss://node.example:443").Submit(ctx, testProxyCall)
	require.NoError(t, err)
	assert.Equal(t, types.FinalityInBlock, got.Finality)

	assert.Equal(t, []string{
		"signing and sending tx: Proxy.proxy",
		"tx status: Ready",
		"tx status: InBlock",
		"tx included in block: " + testBlockHash1.Hex(),
		"block explorer URL: https://polkadot.js.org/apps/?rpc=wss://node.example:443#/explorer/query/" + testBlockHash1.Hex(),
	}, messages(logs))
}

func TestTxWatcher_SettlesOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    []types.TxStatus
		want    types.SubmissionOutcome
		wantErr bool
	}{
		{
			name: "success is not overridden by a later failure",
			give: []types.TxStatus{
				txStatus(types.TxStatusInBlock, testBlockHash1),
				txStatus(types.TxStatusInvalid),
				txStatus(types.TxStatusFinalized, testBlockHash2),
			},
			want: types.SubmissionOutcome{Call: "Proxy.proxy", BlockHash: testBlockHash1, Finality: types.FinalityInBlock},
		},
		{
			name: "failure is not overridden by a later success",
			give: []types.TxStatus{
				txStatus(types.TxStatusDropped),
				txStatus(types.TxStatusInBlock, testBlockHash1),
			},
			wantErr: true,
		},
		{
			name: "pending statuses do not settle",
			give: []types.TxStatus{
				txStatus(types.TxStatusFuture),
				txStatus(types.TxStatusReady),
				txStatus(types.TxStatusBroadcast),
				txStatus(types.TxStatusRetracted, testBlockHash1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := &txWatcher{call: "Proxy.proxy"}
			settled := false
			for _, s := range tt.give {
				settled = w.observe(s)
			}

			if tt.wantErr {
				assert.True(t, settled)
				require.Error(t, w.err)
				assert.Equal(t, types.SubmissionOutcome{}, w.outcome)

				return
			}

			assert.Equal(t, tt.want != types.SubmissionOutcome{}, settled)
			require.NoError(t, w.err)
			assert.Equal(t, tt.want, w.outcome)
		})
	}
}

func TestSubmissionFailure_Error(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "submission of Proxy.proxy failed: Invalid",
		NewSubmissionFailure("Proxy.proxy", txStatus(types.TxStatusInvalid)).Error())
	assert.Equal(t, "submission of Proxy.proxy failed: Error: boom",
		NewSubmissionFailure("Proxy.proxy", types.TxStatus{Kind: types.TxStatusError, Err: errors.New("boom")}).Error())
}
