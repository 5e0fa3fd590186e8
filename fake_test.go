package govproposer

import (
	"context"
	"fmt"
	"sync"

	"github.com/smartcontractkit/govproposer/types"
)

// encodedCall records one EncodeCall invocation.
type encodedCall struct {
	Pallet string
	Call   string
	Args   []any
}

// fakeEncoder encodes a call as its method name followed by its arguments. Boxed calls are
// inserted verbatim. It fails for the methods listed in failOn.
type fakeEncoder struct {
	mu     sync.Mutex
	calls  []encodedCall
	failOn map[string]error
}

func newFakeEncoder() *fakeEncoder {
	return &fakeEncoder{failOn: map[string]error{}}
}

func (e *fakeEncoder) EncodeCall(pallet, call string, args ...any) (types.Call, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls = append(e.calls, encodedCall{Pallet: pallet, Call: call, Args: args})
	if err, ok := e.failOn[pallet+"."+call]; ok {
		return types.Call{}, err
	}

	data := []byte(pallet + "." + call)
	for _, arg := range args {
		switch a := arg.(type) {
		case types.Call:
			data = append(data, a.Data...)
		case []byte:
			data = append(data, a...)
		default:
			data = append(data, fmt.Sprint(a)...)
		}
	}

	return types.NewCall(pallet, call, data), nil
}

func (e *fakeEncoder) recorded() []encodedCall {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]encodedCall(nil), e.calls...)
}

// fakeFetcher returns fixed content and counts downloads.
type fakeFetcher struct {
	mu    sync.Mutex
	body  []byte
	err   error
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, uri string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, uri)

	return f.body, f.err
}

// fakeSubscription is a StatusSubscription fed by the test.
type fakeSubscription struct {
	statuses     chan types.TxStatus
	errc         chan error
	once         sync.Once
	unsubscribed chan struct{}
}

func newFakeSubscription(buffer int) *fakeSubscription {
	return &fakeSubscription{
		statuses:     make(chan types.TxStatus, buffer),
		errc:         make(chan error, 1),
		unsubscribed: make(chan struct{}),
	}
}

func (s *fakeSubscription) Statuses() <-chan types.TxStatus { return s.statuses }

func (s *fakeSubscription) Err() <-chan error { return s.errc }

func (s *fakeSubscription) Unsubscribe() {
	s.once.Do(func() { close(s.unsubscribed) })
}

func (s *fakeSubscription) isUnsubscribed() bool {
	select {
	case <-s.unsubscribed:
		return true
	default:
		return false
	}
}
