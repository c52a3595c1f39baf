package syncstate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

// fakeSource delivers a fixed sequence of updates.
type fakeSource struct {
	updates []api.SyncProgressUpdate
	err     error
}

func (f *fakeSource) SubscribeJobProgress(ctx context.Context, jobID string) (<-chan api.SyncProgressUpdate, error) {
	if f.err != nil {
		return nil, f.err
	}
	ch := make(chan api.SyncProgressUpdate, len(f.updates))
	for _, u := range f.updates {
		ch <- u
	}
	close(ch)
	return ch, nil
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("subscription did not finish")
	}
}

func TestSubscribeLastWriteWins(t *testing.T) {
	store := NewStore(logr.Discard())
	src := &fakeSource{updates: []api.SyncProgressUpdate{
		{Inserted: 1},
		{Inserted: 5, Updated: 2},
		{Inserted: 10, Updated: 3, Kept: 7},
	}}

	done, err := store.Subscribe(t.Context(), src, "job-1")
	require.NoError(t, err)
	waitDone(t, done)

	p, ok := store.Get("job-1")
	require.True(t, ok)
	assert.Equal(t, 10, p.Inserted)
	assert.Equal(t, 3, p.Updated)
	assert.Equal(t, 7, p.Kept)
	assert.Equal(t, 20, p.Total())
	assert.False(t, p.IsComplete)
	assert.False(t, p.IsFailed)
}

func TestSubscribeCompletionLatches(t *testing.T) {
	store := NewStore(logr.Discard())
	src := &fakeSource{updates: []api.SyncProgressUpdate{
		{Inserted: 4, IsComplete: true},
		// A late counter-only message must not clear completion.
		{Inserted: 4},
	}}

	done, err := store.Subscribe(t.Context(), src, "job-2")
	require.NoError(t, err)
	waitDone(t, done)

	p, ok := store.Get("job-2")
	require.True(t, ok)
	assert.True(t, p.IsComplete)
}

func TestSubscribeFailureLatches(t *testing.T) {
	store := NewStore(logr.Discard())
	src := &fakeSource{updates: []api.SyncProgressUpdate{
		{Inserted: 2, IsFailed: true},
		{Inserted: 2},
	}}

	done, err := store.Subscribe(t.Context(), src, "job-3")
	require.NoError(t, err)
	waitDone(t, done)

	p, ok := store.Get("job-3")
	require.True(t, ok)
	assert.True(t, p.IsFailed)
}

func TestSubscribeError(t *testing.T) {
	store := NewStore(logr.Discard())
	src := &fakeSource{err: errors.New("boom")}

	done, err := store.Subscribe(t.Context(), src, "job-4")
	require.Error(t, err)
	assert.Nil(t, done)

	_, ok := store.Get("job-4")
	assert.False(t, ok)
}

func TestGetUnknownJob(t *testing.T) {
	store := NewStore(logr.Discard())
	_, ok := store.Get("nope")
	assert.False(t, ok)
}
