// Package syncstate tracks live progress counters for running sync jobs, fed
// by the job's SSE subscription. The latest message wins; there is no replay
// or reconnection, a broken stream simply ends the subscription.
package syncstate

import (
	"context"
	"sync"

	"github.com/go-logr/logr"

	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

// Progress is the tracked state of one sync job.
type Progress struct {
	Inserted   int
	Updated    int
	Deleted    int
	Kept       int
	Skipped    int
	IsComplete bool
	IsFailed   bool
}

// Total returns the number of entities processed so far.
func (p Progress) Total() int {
	return p.Inserted + p.Updated + p.Deleted + p.Kept + p.Skipped
}

// ProgressSource opens a progress stream for a job. client.Sync satisfies it.
type ProgressSource interface {
	SubscribeJobProgress(ctx context.Context, jobID string) (<-chan api.SyncProgressUpdate, error)
}

// Store holds the latest progress per job ID. Safe for concurrent use: one
// subscription goroutine writes per job while renderers read.
type Store struct {
	mu     sync.RWMutex
	jobs   map[string]Progress
	logger logr.Logger
}

// NewStore creates an empty progress store.
func NewStore(logger logr.Logger) *Store {
	return &Store{
		jobs:   make(map[string]Progress),
		logger: logger.WithName("syncstate"),
	}
}

// Get returns the latest progress for a job.
func (s *Store) Get(jobID string) (Progress, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.jobs[jobID]
	return p, ok
}

// apply records an update. Counters follow the incoming message (last write
// wins); completion and failure latch so a late counter-only message cannot
// revive a finished job.
func (s *Store) apply(jobID string, u api.SyncProgressUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.jobs[jobID]
	s.jobs[jobID] = Progress{
		Inserted:   u.Inserted,
		Updated:    u.Updated,
		Deleted:    u.Deleted,
		Kept:       u.Kept,
		Skipped:    u.Skipped,
		IsComplete: prev.IsComplete || u.IsComplete,
		IsFailed:   prev.IsFailed || u.IsFailed,
	}
}

// Subscribe opens the job's progress stream and feeds the store until the
// stream ends or ctx is cancelled. The returned channel is closed when the
// subscription stops.
func (s *Store) Subscribe(ctx context.Context, src ProgressSource, jobID string) (<-chan struct{}, error) {
	updates, err := src.SubscribeJobProgress(ctx, jobID)
	if err != nil {
		s.logger.Error(err, "failed to subscribe to job progress", "job_id", jobID)
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case u, ok := <-updates:
				if !ok {
					s.logger.V(1).Info("progress stream ended", "job_id", jobID)
					return
				}
				s.apply(jobID, u)
			}
		}
	}()

	return done, nil
}
