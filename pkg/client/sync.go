package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/airweave-ai/airweave-go/pkg/client/api"
	"github.com/airweave-ai/airweave-go/pkg/sse"
)

// Sync defines the sync job operations
type Sync interface {
	ListJobs(ctx context.Context) ([]api.SyncJob, error)
	GetJob(ctx context.Context, jobID string) (*api.SyncJob, error)
	// SubscribeJobProgress opens the SSE progress stream for a job. The
	// returned channel is closed when the job stream ends or ctx is cancelled.
	// Messages that fail to decode are dropped.
	SubscribeJobProgress(ctx context.Context, jobID string) (<-chan api.SyncProgressUpdate, error)
}

// syncClient handles sync job requests
type syncClient struct {
	client *BaseClient
}

// NewSyncClient creates a new sync client
func NewSyncClient(client *BaseClient) Sync {
	return &syncClient{client: client}
}

// ListJobs lists sync jobs across all source connections
func (c *syncClient) ListJobs(ctx context.Context) ([]api.SyncJob, error) {
	resp, err := c.client.Get(ctx, "/sync/jobs")
	if err != nil {
		return nil, err
	}

	var jobs []api.SyncJob
	if err := DecodeResponse(resp, &jobs); err != nil {
		return nil, err
	}

	return jobs, nil
}

// GetJob retrieves a specific sync job
func (c *syncClient) GetJob(ctx context.Context, jobID string) (*api.SyncJob, error) {
	path := fmt.Sprintf("/sync/job/%s", url.PathEscape(jobID))
	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var job api.SyncJob
	if err := DecodeResponse(resp, &job); err != nil {
		return nil, err
	}

	return &job, nil
}

// SubscribeJobProgress subscribes to the job's SSE progress stream
func (c *syncClient) SubscribeJobProgress(ctx context.Context, jobID string) (<-chan api.SyncProgressUpdate, error) {
	path := fmt.Sprintf("/sync/job/%s/subscribe", url.PathEscape(jobID))
	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	events := sse.StreamSseResponse(resp.Body)
	updates := make(chan api.SyncProgressUpdate, 10)

	go func() {
		defer close(updates)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				var update api.SyncProgressUpdate
				if err := json.Unmarshal(ev.Data, &update); err != nil {
					continue
				}
				select {
				case updates <- update:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return updates, nil
}
