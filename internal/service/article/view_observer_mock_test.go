package article

import (
	"sync"
)

var _ viewObserver = &viewObserverMock{}

type viewObserverMock struct {
	ArticleViewedFunc func()

	calls struct {
		ArticleViewed []struct{}
	}
	lockArticleViewed sync.RWMutex
}

func (mock *viewObserverMock) ArticleViewed() {
	if mock.ArticleViewedFunc == nil {
		panic("viewObserverMock.ArticleViewedFunc: method is nil but viewObserver.ArticleViewed was just called")
	}
	mock.lockArticleViewed.Lock()
	mock.calls.ArticleViewed = append(mock.calls.ArticleViewed, struct{}{})
	mock.lockArticleViewed.Unlock()
	mock.ArticleViewedFunc()
}

func (mock *viewObserverMock) ArticleViewedCalls() []struct{} {
	mock.lockArticleViewed.RLock()
	calls := mock.calls.ArticleViewed
	mock.lockArticleViewed.RUnlock()
	return calls
}
