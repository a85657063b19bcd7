// Package dispatch runs fetch jobs on a fixed worker pool.
//
// Submission is fire-and-forget: Submit returns an opaque handle immediately
// and the job runs whenever a worker picks it up. Cancel performs genuine
// interruption — every job gets its own context derived from the pool root,
// and cancelling the handle cancels that context mid-execution, not merely
// before scheduling. Cancel is idempotent; cancelling a finished or unknown
// handle is not an error.
//
// The pool does not report completion to callers. Finished exists only for
// the reconciliation sweep; request handling never depends on it.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// JobFunc is the work a fetch job performs. It must honor ctx cancellation.
type JobFunc func(ctx context.Context, queryID uuid.UUID, search string) error

// State is the lifecycle state of a submitted job.
type State int

const (
	StatePending State = iota
	StateRunning
	StateDone
	StateFailed
	StateCancelled
)

// retention is how long terminal job records stay queryable before pruning.
const retention = time.Hour

type job struct {
	handle  string
	queryID uuid.UUID
	search  string

	ctx    context.Context
	cancel context.CancelFunc

	state      State
	finishedAt time.Time
}

// Pool is a fixed-size worker pool executing fetch jobs.
type Pool struct {
	run   JobFunc
	log   *slog.Logger
	queue chan *job

	rootCtx    context.Context
	rootCancel context.CancelFunc
	group      *errgroup.Group

	mu   sync.Mutex
	jobs map[string]*job
}

// NewPool creates the pool and starts its workers.
func NewPool(logger *slog.Logger, run JobFunc, workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	rootCtx, rootCancel := context.WithCancel(context.Background())

	p := &Pool{
		run:        run,
		log:        logger.With("component", "dispatch"),
		queue:      make(chan *job, queueSize),
		rootCtx:    rootCtx,
		rootCancel: rootCancel,
		group:      &errgroup.Group{},
		jobs:       make(map[string]*job),
	}

	for range workers {
		p.group.Go(p.worker)
	}

	return p
}

// Submit enqueues a fetch job and returns its cancellation handle.
// It fails when the queue is full or the pool is shut down; such failures are
// terminal for the triggering operation, there is no retry.
func (p *Pool) Submit(queryID uuid.UUID, search string) (string, error) {
	ctx, cancel := context.WithCancel(p.rootCtx)

	j := &job{
		handle:  uuid.NewString(),
		queryID: queryID,
		search:  search,
		ctx:     ctx,
		cancel:  cancel,
		state:   StatePending,
	}

	p.mu.Lock()
	p.pruneLocked(time.Now())
	p.jobs[j.handle] = j
	p.mu.Unlock()

	select {
	case p.queue <- j:
	default:
		cancel()
		p.mu.Lock()
		delete(p.jobs, j.handle)
		p.mu.Unlock()
		return "", fmt.Errorf("dispatch: queue full")
	}

	p.log.Info("job submitted",
		slog.String("handle", j.handle),
		slog.String("query_id", queryID.String()),
	)

	return j.handle, nil
}

// Cancel requests termination of the job identified by handle. Pending jobs
// are skipped by the worker; running jobs have their context cancelled.
// Finished, already-cancelled, and unknown handles are silently accepted.
func (p *Pool) Cancel(handle string) {
	p.mu.Lock()
	j, ok := p.jobs[handle]
	p.mu.Unlock()
	if !ok {
		return
	}

	j.cancel()

	p.log.Info("job cancel requested", slog.String("handle", handle))
}

// Finished reports whether the job behind the handle reached a terminal
// state. Unknown handles (never submitted, or pruned after retention) count
// as finished.
func (p *Pool) Finished(handle string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	j, ok := p.jobs[handle]
	if !ok {
		return true
	}
	return j.state == StateDone || j.state == StateFailed || j.state == StateCancelled
}

// Shutdown cancels every job, stops the workers and waits for them to drain,
// or gives up when ctx expires.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.rootCancel()

	done := make(chan error, 1)
	go func() { done <- p.group.Wait() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) worker() error {
	for {
		select {
		case <-p.rootCtx.Done():
			return nil
		case j := <-p.queue:
			p.execute(j)
		}
	}
}

func (p *Pool) execute(j *job) {
	// Cancelled while still queued: never start.
	if j.ctx.Err() != nil {
		p.finish(j, StateCancelled)
		return
	}

	p.setState(j, StateRunning)

	err := p.run(j.ctx, j.queryID, j.search)
	switch {
	case err == nil:
		p.finish(j, StateDone)
		p.log.Info("job finished", slog.String("handle", j.handle))
	case j.ctx.Err() != nil:
		p.finish(j, StateCancelled)
		p.log.Info("job cancelled", slog.String("handle", j.handle))
	default:
		p.finish(j, StateFailed)
		p.log.Error("job failed",
			slog.String("handle", j.handle),
			slog.String("query_id", j.queryID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (p *Pool) setState(j *job, s State) {
	p.mu.Lock()
	j.state = s
	p.mu.Unlock()
}

func (p *Pool) finish(j *job, s State) {
	j.cancel()
	p.mu.Lock()
	j.state = s
	j.finishedAt = time.Now()
	p.mu.Unlock()
}

// pruneLocked drops terminal job records older than the retention window.
// Caller holds p.mu.
func (p *Pool) pruneLocked(now time.Time) {
	for handle, j := range p.jobs {
		if j.finishedAt.IsZero() {
			continue
		}
		if now.Sub(j.finishedAt) > retention {
			delete(p.jobs, handle)
		}
	}
}
