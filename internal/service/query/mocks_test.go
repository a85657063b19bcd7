package query

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/domain"
)

var _ queryRepo = &queryRepoMock{}

type queryRepoMock struct {
	CreateFunc  func(ctx context.Context, q *domain.Query) (*domain.Query, error)
	FindOneFunc func(ctx context.Context, f domain.QueryFilter) (*domain.Query, error)
	FindFunc    func(ctx context.Context, f domain.QueryFilter) ([]*domain.Query, error)
	UpdateFunc  func(ctx context.Context, q *domain.Query) error
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Q *domain.Query
		}
		FindOne []struct {
			F domain.QueryFilter
		}
		Find []struct {
			F domain.QueryFilter
		}
		Update []struct {
			Q *domain.Query
		}
		Delete []struct {
			ID uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockFindOne sync.RWMutex
	lockFind    sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *queryRepoMock) Create(ctx context.Context, q *domain.Query) (*domain.Query, error) {
	if mock.CreateFunc == nil {
		panic("queryRepoMock.CreateFunc: method is nil but queryRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Q *domain.Query
	}{Q: q})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, q)
}

func (mock *queryRepoMock) CreateCalls() []struct {
	Q *domain.Query
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *queryRepoMock) Find(ctx context.Context, f domain.QueryFilter) ([]*domain.Query, error) {
	if mock.FindFunc == nil {
		panic("queryRepoMock.FindFunc: method is nil but queryRepo.Find was just called")
	}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, struct {
		F domain.QueryFilter
	}{F: f})
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, f)
}

func (mock *queryRepoMock) FindCalls() []struct {
	F domain.QueryFilter
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *queryRepoMock) Update(ctx context.Context, q *domain.Query) error {
	if mock.UpdateFunc == nil {
		panic("queryRepoMock.UpdateFunc: method is nil but queryRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Q *domain.Query
	}{Q: q})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, q)
}

func (mock *queryRepoMock) UpdateCalls() []struct {
	Q *domain.Query
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *queryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("queryRepoMock.DeleteFunc: method is nil but queryRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		ID uuid.UUID
	}{ID: id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *queryRepoMock) DeleteCalls() []struct {
	ID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ jobRegistry = &jobRegistryMock{}

type jobRegistryMock struct {
	HasActiveJobFunc         func(userID uuid.UUID) bool
	ActiveJobFunc            func(userID uuid.UUID) (domain.RunningJob, bool)
	RegisterFunc             func(userID, queryID uuid.UUID, jobHandle string) (domain.RunningJob, error)
	ClearFunc                func(userID, queryID uuid.UUID) error
	ClearIfQueryFunc         func(userID, queryID uuid.UUID)
	GuardQueryNotRunningFunc func(queryID uuid.UUID, fn func() error) error

	calls struct {
		HasActiveJob []struct {
			UserID uuid.UUID
		}
		ActiveJob []struct {
			UserID uuid.UUID
		}
		Register []struct {
			UserID    uuid.UUID
			QueryID   uuid.UUID
			JobHandle string
		}
		Clear []struct {
			UserID  uuid.UUID
			QueryID uuid.UUID
		}
		ClearIfQuery []struct {
			UserID  uuid.UUID
			QueryID uuid.UUID
		}
		GuardQueryNotRunning []struct {
			QueryID uuid.UUID
		}
	}
	lockHasActiveJob         sync.RWMutex
	lockActiveJob            sync.RWMutex
	lockRegister             sync.RWMutex
	lockClear                sync.RWMutex
	lockClearIfQuery         sync.RWMutex
	lockGuardQueryNotRunning sync.RWMutex
}

func (mock *jobRegistryMock) HasActiveJob(userID uuid.UUID) bool {
	if mock.HasActiveJobFunc == nil {
		panic("jobRegistryMock.HasActiveJobFunc: method is nil but jobRegistry.HasActiveJob was just called")
	}
	mock.lockHasActiveJob.Lock()
	mock.calls.HasActiveJob = append(mock.calls.HasActiveJob, struct {
		UserID uuid.UUID
	}{UserID: userID})
	mock.lockHasActiveJob.Unlock()
	return mock.HasActiveJobFunc(userID)
}

func (mock *jobRegistryMock) HasActiveJobCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockHasActiveJob.RLock()
	calls := mock.calls.HasActiveJob
	mock.lockHasActiveJob.RUnlock()
	return calls
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

func (mock *jobRegistryMock) Register(userID, queryID uuid.UUID, jobHandle string) (domain.RunningJob, error) {
	if mock.RegisterFunc == nil {
		panic("jobRegistryMock.RegisterFunc: method is nil but jobRegistry.Register was just called")
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, struct {
		UserID    uuid.UUID
		QueryID   uuid.UUID
		JobHandle string
	}{UserID: userID, QueryID: queryID, JobHandle: jobHandle})
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(userID, queryID, jobHandle)
}

func (mock *jobRegistryMock) RegisterCalls() []struct {
	UserID    uuid.UUID
	QueryID   uuid.UUID
	JobHandle string
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *jobRegistryMock) Clear(userID, queryID uuid.UUID) error {
	if mock.ClearFunc == nil {
		panic("jobRegistryMock.ClearFunc: method is nil but jobRegistry.Clear was just called")
	}
	mock.lockClear.Lock()
	mock.calls.Clear = append(mock.calls.Clear, struct {
		UserID  uuid.UUID
		QueryID uuid.UUID
	}{UserID: userID, QueryID: queryID})
	mock.lockClear.Unlock()
	return mock.ClearFunc(userID, queryID)
}

func (mock *jobRegistryMock) ClearCalls() []struct {
	UserID  uuid.UUID
	QueryID uuid.UUID
} {
	mock.lockClear.RLock()
	calls := mock.calls.Clear
	mock.lockClear.RUnlock()
	return calls
}

func (mock *jobRegistryMock) ClearIfQuery(userID, queryID uuid.UUID) {
	if mock.ClearIfQueryFunc == nil {
		panic("jobRegistryMock.ClearIfQueryFunc: method is nil but jobRegistry.ClearIfQuery was just called")
	}
	mock.lockClearIfQuery.Lock()
	mock.calls.ClearIfQuery = append(mock.calls.ClearIfQuery, struct {
		UserID  uuid.UUID
		QueryID uuid.UUID
	}{UserID: userID, QueryID: queryID})
	mock.lockClearIfQuery.Unlock()
	mock.ClearIfQueryFunc(userID, queryID)
}

func (mock *jobRegistryMock) ClearIfQueryCalls() []struct {
	UserID  uuid.UUID
	QueryID uuid.UUID
} {
	mock.lockClearIfQuery.RLock()
	calls := mock.calls.ClearIfQuery
	mock.lockClearIfQuery.RUnlock()
	return calls
}

func (mock *jobRegistryMock) GuardQueryNotRunning(queryID uuid.UUID, fn func() error) error {
	if mock.GuardQueryNotRunningFunc == nil {
		panic("jobRegistryMock.GuardQueryNotRunningFunc: method is nil but jobRegistry.GuardQueryNotRunning was just called")
	}
	mock.lockGuardQueryNotRunning.Lock()
	mock.calls.GuardQueryNotRunning = append(mock.calls.GuardQueryNotRunning, struct {
		QueryID uuid.UUID
	}{QueryID: queryID})
	mock.lockGuardQueryNotRunning.Unlock()
	return mock.GuardQueryNotRunningFunc(queryID, fn)
}

func (mock *jobRegistryMock) GuardQueryNotRunningCalls() []struct {
	QueryID uuid.UUID
} {
	mock.lockGuardQueryNotRunning.RLock()
	calls := mock.calls.GuardQueryNotRunning
	mock.lockGuardQueryNotRunning.RUnlock()
	return calls
}

var _ jobDispatcher = &jobDispatcherMock{}

type jobDispatcherMock struct {
	SubmitFunc func(queryID uuid.UUID, search string) (string, error)
	CancelFunc func(jobHandle string)

	calls struct {
		Submit []struct {
			QueryID uuid.UUID
			Search  string
		}
		Cancel []struct {
			JobHandle string
		}
	}
	lockSubmit sync.RWMutex
	lockCancel sync.RWMutex
}

func (mock *jobDispatcherMock) Submit(queryID uuid.UUID, search string) (string, error) {
	if mock.SubmitFunc == nil {
		panic("jobDispatcherMock.SubmitFunc: method is nil but jobDispatcher.Submit was just called")
	}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, struct {
		QueryID uuid.UUID
		Search  string
	}{QueryID: queryID, Search: search})
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(queryID, search)
}

func (mock *jobDispatcherMock) SubmitCalls() []struct {
	QueryID uuid.UUID
	Search  string
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *jobDispatcherMock) Cancel(jobHandle string) {
	if mock.CancelFunc == nil {
		panic("jobDispatcherMock.CancelFunc: method is nil but jobDispatcher.Cancel was just called")
	}
	mock.lockCancel.Lock()
	mock.calls.Cancel = append(mock.calls.Cancel, struct {
		JobHandle string
	}{JobHandle: jobHandle})
	mock.lockCancel.Unlock()
	mock.CancelFunc(jobHandle)
}

func (mock *jobDispatcherMock) CancelCalls() []struct {
	JobHandle string
} {
	mock.lockCancel.RLock()
	calls := mock.calls.Cancel
	mock.lockCancel.RUnlock()
	return calls
}
