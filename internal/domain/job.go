package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunningJob is a user's single active fetch job. At most one non-terminal
// RunningJob exists per user; the registry enforces this.
//
// JobHandle is the opaque id issued by the dispatcher and is only ever used
// for cancellation. The job may have finished on the worker side already —
// the entry is still treated as running until explicitly cleared.
type RunningJob struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	QueryID   uuid.UUID
	JobHandle string
	StartedAt time.Time
}
