// Package registry tracks the single active fetch job per user.
//
// The registry is the only owner of running-job state. All mutation goes
// through its API under one mutex, which is what makes the
// at-most-one-job-per-user invariant hold: Register is check-and-insert in
// a single critical section, and GuardQueryNotRunning lets store mutations
// run inside the same critical section so a concurrent Register cannot
// interleave with an edit or delete.
package registry

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/domain"
)

// Registry is a keyed map user id → active RunningJob.
type Registry struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]domain.RunningJob
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{jobs: make(map[uuid.UUID]domain.RunningJob)}
}

// HasActiveJob reports whether the user has a registered job.
func (r *Registry) HasActiveJob(userID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.jobs[userID]
	return ok
}

// ActiveJob returns the user's registered job, if any.
func (r *Registry) ActiveJob(userID uuid.UUID) (domain.RunningJob, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[userID]
	return job, ok
}

// Register records a new running job for the user. It fails with
// ErrAlreadyRunning if the user already has one; the check and the insert
// happen under the same lock, so of two concurrent registrations exactly one
// succeeds.
func (r *Registry) Register(userID, queryID uuid.UUID, jobHandle string) (domain.RunningJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[userID]; ok {
		return domain.RunningJob{}, domain.ErrAlreadyRunning
	}

	job := domain.RunningJob{
		ID:        uuid.New(),
		UserID:    userID,
		QueryID:   queryID,
		JobHandle: jobHandle,
		StartedAt: time.Now(),
	}
	r.jobs[userID] = job

	return job, nil
}

// Clear removes the user's job only if it references the given query.
// Returns ErrNoActiveJob when the user has no job and ErrNotYourJob when the
// registered job belongs to a different query.
func (r *Registry) Clear(userID, queryID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[userID]
	if !ok {
		return domain.ErrNoActiveJob
	}
	if job.QueryID != queryID {
		return domain.ErrNotYourJob
	}

	delete(r.jobs, userID)
	return nil
}

// ClearIfQuery removes the user's job if it references the given query.
// Unlike Clear it is a no-op when nothing matches; delete uses it as
// defensive cleanup.
func (r *Registry) ClearIfQuery(userID, queryID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job, ok := r.jobs[userID]; ok && job.QueryID == queryID {
		delete(r.jobs, userID)
	}
}

// ClearIfHandle removes the user's job if it still holds the given dispatcher
// handle, reporting whether it did. The compare and the delete share the
// critical section, so an entry re-registered under a fresh handle between a
// caller's snapshot and its eviction is never removed.
func (r *Registry) ClearIfHandle(userID uuid.UUID, jobHandle string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[userID]
	if !ok || job.JobHandle != jobHandle {
		return false
	}

	delete(r.jobs, userID)
	return true
}

// IsQueryRunning reports whether any user's job references the query.
func (r *Registry) IsQueryRunning(queryID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queryRunningLocked(queryID)
}

// GuardQueryNotRunning re-checks that no job references the query and, still
// holding the registry lock, runs fn. Returns ErrQueryRunning without calling
// fn when a job references the query. Edit and delete wrap their store
// mutation in this so a run cannot register a job between the check and the
// write.
func (r *Registry) GuardQueryNotRunning(queryID uuid.UUID, fn func() error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.queryRunningLocked(queryID) {
		return domain.ErrQueryRunning
	}
	return fn()
}

// Snapshot returns a copy of all registered jobs. Used by the reconciler.
func (r *Registry) Snapshot() []domain.RunningJob {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs := make([]domain.RunningJob, 0, len(r.jobs))
	for _, job := range r.jobs {
		jobs = append(jobs, job)
	}
	return jobs
}

func (r *Registry) queryRunningLocked(queryID uuid.UUID) bool {
	for _, job := range r.jobs {
		if job.QueryID == queryID {
			return true
		}
	}
	return false
}
