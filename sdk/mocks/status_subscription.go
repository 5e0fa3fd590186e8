package mocks

import (
	mock "github.com/stretchr/testify/mock"

	types "github.com/smartcontractkit/govproposer/types"
)

// StatusSubscription is a mock type for the StatusSubscription type
type StatusSubscription struct {
	mock.Mock
}

type StatusSubscription_Expecter struct {
	mock *mock.Mock
}

func (_m *StatusSubscription) EXPECT() *StatusSubscription_Expecter {
	return &StatusSubscription_Expecter{mock: &_m.Mock}
}

// Err provides a mock function with no fields
func (_m *StatusSubscription) Err() <-chan error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Err")
	}

	var r0 <-chan error
	if rf, ok := ret.Get(0).(func() <-chan error); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(<-chan error)
		}
	}

	return r0
}

// StatusSubscription_Err_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Err'
type StatusSubscription_Err_Call struct {
	*mock.Call
}

// Err is a helper method to define mock.On call
func (_e *StatusSubscription_Expecter) Err() *StatusSubscription_Err_Call {
	return &StatusSubscription_Err_Call{Call: _e.mock.On("Err")}
}

func (_c *StatusSubscription_Err_Call) Return(_a0 <-chan error) *StatusSubscription_Err_Call {
	_c.Call.Return(_a0)
	return _c
}

// Statuses provides a mock function with no fields
func (_m *StatusSubscription) Statuses() <-chan types.TxStatus {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Statuses")
	}

	var r0 <-chan types.TxStatus
	if rf, ok := ret.Get(0).(func() <-chan types.TxStatus); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(<-chan types.TxStatus)
		}
	}

	return r0
}

// StatusSubscription_Statuses_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Statuses'
type StatusSubscription_Statuses_Call struct {
	*mock.Call
}

// Statuses is a helper method to define mock.On call
func (_e *StatusSubscription_Expecter) Statuses() *StatusSubscription_Statuses_Call {
	return &StatusSubscription_Statuses_Call{Call: _e.mock.On("Statuses")}
}

func (_c *StatusSubscription_Statuses_Call) Return(_a0 <-chan types.TxStatus) *StatusSubscription_Statuses_Call {
	_c.Call.Return(_a0)
	return _c
}

// Unsubscribe provides a mock function with no fields
func (_m *StatusSubscription) Unsubscribe() {
	_m.Called()
}

// StatusSubscription_Unsubscribe_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Unsubscribe'
type StatusSubscription_Unsubscribe_Call struct {
	*mock.Call
}

// Unsubscribe is a helper method to define mock.On call
func (_e *StatusSubscription_Expecter) Unsubscribe() *StatusSubscription_Unsubscribe_Call {
	return &StatusSubscription_Unsubscribe_Call{Call: _e.mock.On("Unsubscribe")}
}

func (_c *StatusSubscription_Unsubscribe_Call) Return() *StatusSubscription_Unsubscribe_Call {
	_c.Call.Return()
	return _c
}

// NewStatusSubscription creates a new instance of StatusSubscription. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewStatusSubscription(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatusSubscription {
	mock := &StatusSubscription{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
