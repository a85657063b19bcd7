package results

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/domain"
)

var _ queryRepo = &queryRepoMock{}

type queryRepoMock struct {
	FindOneFunc func(ctx context.Context, f domain.QueryFilter) (*domain.Query, error)

	calls struct {
		FindOne []struct {
			F domain.QueryFilter
		}
	}
	lockFindOne sync.RWMutex
}

func (mock *queryRepoMock) FindOne(ctx context.Context, f domain.QueryFilter) (*domain.Query, error) {
	if mock.FindOneFunc == nil {
		panic("queryRepoMock.FindOneFunc: method is nil but queryRepo.FindOne was just called")
	}
	mock.lockFindOne.Lock()
	mock.calls.FindOne = append(mock.calls.FindOne, struct {
		F domain.QueryFilter
	}{F: f})
	mock.lockFindOne.Unlock()
	return mock.FindOneFunc(ctx, f)
}

func (mock *queryRepoMock) FindOneCalls() []struct {
	F domain.QueryFilter
} {
	mock.lockFindOne.RLock()
	calls := mock.calls.FindOne
	mock.lockFindOne.RUnlock()
	return calls
}

var _ tweetRepo = &tweetRepoMock{}

type tweetRepoMock struct {
	ListByQueryFunc func(ctx context.Context, queryID uuid.UUID) ([]*domain.Tweet, error)

	calls struct {
		ListByQuery []struct {
			QueryID uuid.UUID
		}
	}
	lockListByQuery sync.RWMutex
}

func (mock *tweetRepoMock) ListByQuery(ctx context.Context, queryID uuid.UUID) ([]*domain.Tweet, error) {
	if mock.ListByQueryFunc == nil {
		panic("tweetRepoMock.ListByQueryFunc: method is nil but tweetRepo.ListByQuery was just called")
	}
	mock.lockListByQuery.Lock()
	mock.calls.ListByQuery = append(mock.calls.ListByQuery, struct {
		QueryID uuid.UUID
	}{QueryID: queryID})
	mock.lockListByQuery.Unlock()
	return mock.ListByQueryFunc(ctx, queryID)
}

func (mock *tweetRepoMock) ListByQueryCalls() []struct {
	QueryID uuid.UUID
} {
	mock.lockListByQuery.RLock()
	calls := mock.calls.ListByQuery
	mock.lockListByQuery.RUnlock()
	return calls
}

var _ jobRegistry = &jobRegistryMock{}

type jobRegistryMock struct {
	ActiveJobFunc func(userID uuid.UUID) (domain.RunningJob, bool)

	calls struct {
		ActiveJob []struct {
			UserID uuid.UUID
		}
	}
	lockActiveJob sync.RWMutex
}

func (mock *jobRegistryMock) ActiveJob(userID uuid.UUID) (domain.RunningJob, bool) {
	if mock.ActiveJobFunc == nil {
		panic("jobRegistryMock.ActiveJobFunc: method is nil but jobRegistry.ActiveJob was just called")
	}
	mock.lockActiveJob.Lock()
	mock.calls.ActiveJob = append(mock.calls.ActiveJob, struct {
		UserID uuid.UUID
	}{UserID: userID})
	mock.lockActiveJob.Unlock()
	return mock.ActiveJobFunc(userID)
}

func (mock *jobRegistryMock) ActiveJobCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockActiveJob.RLock()
	calls := mock.calls.ActiveJob
	mock.lockActiveJob.RUnlock()
	return calls
}

var _ wordCounter = &wordCounterMock{}

type wordCounterMock struct {
	WordCountsFunc func(text string) map[string]int

	calls struct {
		WordCounts []struct {
			Text string
		}
	}
	lockWordCounts sync.RWMutex
}

func (mock *wordCounterMock) WordCounts(text string) map[string]int {
	if mock.WordCountsFunc == nil {
		panic("wordCounterMock.WordCountsFunc: method is nil but wordCounter.WordCounts was just called")
	}
	mock.lockWordCounts.Lock()
	mock.calls.WordCounts = append(mock.calls.WordCounts, struct {
		Text string
	}{Text: text})
	mock.lockWordCounts.Unlock()
	return mock.WordCountsFunc(text)
}

func (mock *wordCounterMock) WordCountsCalls() []struct {
	Text string
} {
	mock.lockWordCounts.RLock()
	calls := mock.calls.WordCounts
	mock.lockWordCounts.RUnlock()
	return calls
}
