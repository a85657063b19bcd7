// Package reconcile clears registry entries whose jobs finished on their own.
// A user whose fetch ran to completion without an explicit stop would
// otherwise stay blocked until they stop the query by hand; the sweeper
// restores them on a schedule. It is optional: with sweeping disabled the
// registry entry lives until the owner stops the query.
package reconcile

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/tweetsight/backend/internal/domain"
)

type jobRegistry interface {
	Snapshot() []domain.RunningJob
	ClearIfHandle(userID uuid.UUID, jobHandle string) bool
}

type jobDispatcher interface {
	Finished(jobHandle string) bool
}

// Sweeper periodically reconciles the job registry against the dispatcher.
type Sweeper struct {
	cron       *cron.Cron
	registry   jobRegistry
	dispatcher jobDispatcher
	schedule   string
	log        *slog.Logger
}

// NewSweeper creates a sweeper running on the given cron schedule
// (standard five-field syntax or @every descriptors).
func NewSweeper(
	logger *slog.Logger,
	registry jobRegistry,
	dispatcher jobDispatcher,
	schedule string,
) *Sweeper {
	return &Sweeper{
		cron:       cron.New(),
		registry:   registry,
		dispatcher: dispatcher,
		schedule:   schedule,
		log:        logger.With("component", "reconcile"),
	}
}

// Start registers the sweep and starts the scheduler.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.Sweep); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("reconcile sweeper started", slog.String("schedule", s.schedule))
	return nil
}

// Stop stops the scheduler. A sweep already in flight runs to completion.
func (s *Sweeper) Stop() {
	s.cron.Stop()
	s.log.Info("reconcile sweeper stopped")
}

// Sweep clears every registry entry whose job the dispatcher reports as
// finished. Entries of jobs still running are left alone.
func (s *Sweeper) Sweep() {
	for _, job := range s.registry.Snapshot() {
		if !s.dispatcher.Finished(job.JobHandle) {
			continue
		}

		// Evict only the entry still holding the finished handle. The user may
		// have stopped and re-run since the snapshot, even for the same query;
		// the handle compare-and-delete is atomic inside the registry.
		if !s.registry.ClearIfHandle(job.UserID, job.JobHandle) {
			s.log.Debug("stale entry already gone",
				slog.String("user_id", job.UserID.String()),
				slog.String("job_handle", job.JobHandle),
			)
			continue
		}

		s.log.Info("cleared finished job",
			slog.String("user_id", job.UserID.String()),
			slog.String("query_id", job.QueryID.String()),
			slog.String("job_handle", job.JobHandle),
		)
	}
}
