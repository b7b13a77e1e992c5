package auth

import (
	"sync"
)

var _ loginObserver = &loginObserverMock{}

type loginObserverMock struct {
	LoginAttemptFunc func(result string)

	calls struct {
		LoginAttempt []struct {
			Result string
		}
	}
	lockLoginAttempt sync.RWMutex
}

func (mock *loginObserverMock) LoginAttempt(result string) {
	if mock.LoginAttemptFunc == nil {
		panic("loginObserverMock.LoginAttemptFunc: method is nil but loginObserver.LoginAttempt was just called")
	}
	callInfo := struct {
		Result string
	}{Result: result}
	mock.lockLoginAttempt.Lock()
	mock.calls.LoginAttempt = append(mock.calls.LoginAttempt, callInfo)
	mock.lockLoginAttempt.Unlock()
	mock.LoginAttemptFunc(result)
}

func (mock *loginObserverMock) LoginAttemptCalls() []struct {
	Result string
} {
	mock.lockLoginAttempt.RLock()
	calls := mock.calls.LoginAttempt
	mock.lockLoginAttempt.RUnlock()
	return calls
}
