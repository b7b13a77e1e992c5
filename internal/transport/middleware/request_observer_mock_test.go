package middleware

import (
	"sync"
	"time"
)

var _ requestObserver = &requestObserverMock{}

type requestObserverMock struct {
	ObserveRequestFunc func(method string, route string, status int, d time.Duration)

	calls struct {
		ObserveRequest []struct {
			Method string
			Route  string
			Status int
			D      time.Duration
		}
	}
	lockObserveRequest sync.RWMutex
}

func (mock *requestObserverMock) ObserveRequest(method string, route string, status int, d time.Duration) {
	if mock.ObserveRequestFunc == nil {
		panic("requestObserverMock.ObserveRequestFunc: method is nil but requestObserver.ObserveRequest was just called")
	}
	callInfo := struct {
		Method string
		Route  string
		Status int
		D      time.Duration
	}{Method: method, Route: route, Status: status, D: d}
	mock.lockObserveRequest.Lock()
	mock.calls.ObserveRequest = append(mock.calls.ObserveRequest, callInfo)
	mock.lockObserveRequest.Unlock()
	mock.ObserveRequestFunc(method, route, status, d)
}

func (mock *requestObserverMock) ObserveRequestCalls() []struct {
	Method string
	Route  string
	Status int
	D      time.Duration
} {
	mock.lockObserveRequest.RLock()
	calls := mock.calls.ObserveRequest
	mock.lockObserveRequest.RUnlock()
	return calls
}
