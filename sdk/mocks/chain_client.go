// Package mocks provides testify mocks of the sdk interfaces in the mockery expecter style.
// They are maintained by hand.
package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	sdk "github.com/smartcontractkit/govproposer/sdk"

	types "github.com/smartcontractkit/govproposer/types"
)

// ChainClient is a mock type for the ChainClient type
type ChainClient struct {
	mock.Mock
}

type ChainClient_Expecter struct {
	mock *mock.Mock
}

func (_m *ChainClient) EXPECT() *ChainClient_Expecter {
	return &ChainClient_Expecter{mock: &_m.Mock}
}

// ChainInfo provides a mock function with given fields: ctx
func (_m *ChainClient) ChainInfo(ctx context.Context) (types.ChainInfo, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ChainInfo")
	}

	var r0 types.ChainInfo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (types.ChainInfo, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) types.ChainInfo); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(types.ChainInfo)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ChainClient_ChainInfo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ChainInfo'
type ChainClient_ChainInfo_Call struct {
	*mock.Call
}

// ChainInfo is a helper method to define mock.On call
//   - ctx context.Context
func (_e *ChainClient_Expecter) ChainInfo(ctx interface{}) *ChainClient_ChainInfo_Call {
	return &ChainClient_ChainInfo_Call{Call: _e.mock.On("ChainInfo", ctx)}
}

func (_c *ChainClient_ChainInfo_Call) Return(_a0 types.ChainInfo, _a1 error) *ChainClient_ChainInfo_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// Close provides a mock function with no fields
func (_m *ChainClient) Close() {
	_m.Called()
}

// ChainClient_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type ChainClient_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *ChainClient_Expecter) Close() *ChainClient_Close_Call {
	return &ChainClient_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *ChainClient_Close_Call) Return() *ChainClient_Close_Call {
	_c.Call.Return()
	return _c
}

// DecodeCall provides a mock function with given fields: data
func (_m *ChainClient) DecodeCall(data []byte) (types.Call, error) {
	ret := _m.Called(data)

	if len(ret) == 0 {
		panic("no return value specified for DecodeCall")
	}

	var r0 types.Call
	var r1 error
	if rf, ok := ret.Get(0).(func([]byte) (types.Call, error)); ok {
		return rf(data)
	}
	if rf, ok := ret.Get(0).(func([]byte) types.Call); ok {
		r0 = rf(data)
	} else {
		r0 = ret.Get(0).(types.Call)
	}

	if rf, ok := ret.Get(1).(func([]byte) error); ok {
		r1 = rf(data)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ChainClient_DecodeCall_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DecodeCall'
type ChainClient_DecodeCall_Call struct {
	*mock.Call
}

// DecodeCall is a helper method to define mock.On call
//   - data []byte
func (_e *ChainClient_Expecter) DecodeCall(data interface{}) *ChainClient_DecodeCall_Call {
	return &ChainClient_DecodeCall_Call{Call: _e.mock.On("DecodeCall", data)}
}

func (_c *ChainClient_DecodeCall_Call) Return(_a0 types.Call, _a1 error) *ChainClient_DecodeCall_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *ChainClient_DecodeCall_Call) RunAndReturn(run func([]byte) (types.Call, error)) *ChainClient_DecodeCall_Call {
	_c.Call.Return(run)
	return _c
}

// EncodeCall provides a mock function with given fields: pallet, call, args
func (_m *ChainClient) EncodeCall(pallet string, call string, args ...interface{}) (types.Call, error) {
	var _ca []interface{}
	_ca = append(_ca, pallet, call)
	_ca = append(_ca, args...)
	ret := _m.Called(_ca...)

	if len(ret) == 0 {
		panic("no return value specified for EncodeCall")
	}

	var r0 types.Call
	var r1 error
	if rf, ok := ret.Get(0).(func(string, string, ...interface{}) (types.Call, error)); ok {
		return rf(pallet, call, args...)
	}
	if rf, ok := ret.Get(0).(func(string, string, ...interface{}) types.Call); ok {
		r0 = rf(pallet, call, args...)
	} else {
		r0 = ret.Get(0).(types.Call)
	}

	if rf, ok := ret.Get(1).(func(string, string, ...interface{}) error); ok {
		r1 = rf(pallet, call, args...)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ChainClient_EncodeCall_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'EncodeCall'
type ChainClient_EncodeCall_Call struct {
	*mock.Call
}

// EncodeCall is a helper method to define mock.On call
//   - pallet string
//   - call string
//   - args ...interface{}
func (_e *ChainClient_Expecter) EncodeCall(pallet interface{}, call interface{}, args ...interface{}) *ChainClient_EncodeCall_Call {
	return &ChainClient_EncodeCall_Call{Call: _e.mock.On("EncodeCall",
		append([]interface{}{pallet, call}, args...)...)}
}

func (_c *ChainClient_EncodeCall_Call) Return(_a0 types.Call, _a1 error) *ChainClient_EncodeCall_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// LatestHeader provides a mock function with given fields: ctx
func (_m *ChainClient) LatestHeader(ctx context.Context) (types.Header, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for LatestHeader")
	}

	var r0 types.Header
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (types.Header, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) types.Header); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(types.Header)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ChainClient_LatestHeader_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LatestHeader'
type ChainClient_LatestHeader_Call struct {
	*mock.Call
}

// LatestHeader is a helper method to define mock.On call
//   - ctx context.Context
func (_e *ChainClient_Expecter) LatestHeader(ctx interface{}) *ChainClient_LatestHeader_Call {
	return &ChainClient_LatestHeader_Call{Call: _e.mock.On("LatestHeader", ctx)}
}

func (_c *ChainClient_LatestHeader_Call) Return(_a0 types.Header, _a1 error) *ChainClient_LatestHeader_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// SubmitAndWatch provides a mock function with given fields: ctx, signer, call
func (_m *ChainClient) SubmitAndWatch(ctx context.Context, signer sdk.Signer, call types.Call) (sdk.StatusSubscription, error) {
	ret := _m.Called(ctx, signer, call)

	if len(ret) == 0 {
		panic("no return value specified for SubmitAndWatch")
	}

	var r0 sdk.StatusSubscription
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, sdk.Signer, types.Call) (sdk.StatusSubscription, error)); ok {
		return rf(ctx, signer, call)
	}
	if rf, ok := ret.Get(0).(func(context.Context, sdk.Signer, types.Call) sdk.StatusSubscription); ok {
		r0 = rf(ctx, signer, call)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(sdk.StatusSubscription)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, sdk.Signer, types.Call) error); ok {
		r1 = rf(ctx, signer, call)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ChainClient_SubmitAndWatch_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SubmitAndWatch'
type ChainClient_SubmitAndWatch_Call struct {
	*mock.Call
}

// SubmitAndWatch is a helper method to define mock.On call
//   - ctx context.Context
//   - signer sdk.Signer
//   - call types.Call
func (_e *ChainClient_Expecter) SubmitAndWatch(ctx interface{}, signer interface{}, call interface{}) *ChainClient_SubmitAndWatch_Call {
	return &ChainClient_SubmitAndWatch_Call{Call: _e.mock.On("SubmitAndWatch", ctx, signer, call)}
}

func (_c *ChainClient_SubmitAndWatch_Call) Return(_a0 sdk.StatusSubscription, _a1 error) *ChainClient_SubmitAndWatch_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewChainClient creates a new instance of ChainClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewChainClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *ChainClient {
	mock := &ChainClient{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
