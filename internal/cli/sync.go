package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-logr/logr"

	"github.com/airweave-ai/airweave-go/internal/config"
	"github.com/airweave-ai/airweave-go/internal/syncstate"
	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

// SyncRunCmd triggers a sync for a source connection and prints the job.
func SyncRunCmd(ctx context.Context, cfg *config.Config, connectionID string) {
	if connectionID == "" {
		fmt.Fprintln(os.Stderr, "A connection ID is required.")
		return
	}

	clientSet := NewClientSet(cfg)
	job, err := clientSet.SourceConnections.RunSync(ctx, connectionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start sync: %v\n", err)
		return
	}

	fmt.Fprintf(os.Stdout, "Started sync job %s (status: %s)\n", job.ID, job.Status)
	fmt.Fprintf(os.Stdout, "Follow it with: airweave sync watch %s\n", job.ID)
}

// SyncJobsCmd lists sync jobs.
func SyncJobsCmd(ctx context.Context, cfg *config.Config) {
	clientSet := NewClientSet(cfg)
	jobs, err := clientSet.Sync.ListJobs(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get sync jobs: %v\n", err)
		return
	}

	if len(jobs) == 0 {
		fmt.Println("No sync jobs found")
		return
	}

	if err := printJobs(jobs); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to print sync jobs: %v\n", err)
		return
	}
}

// SyncWatchCmd subscribes to a job's progress stream and renders the live
// counters until the job completes, fails, or the stream ends.
func SyncWatchCmd(ctx context.Context, cfg *config.Config, logger logr.Logger, jobID string) {
	if jobID == "" {
		fmt.Fprintln(os.Stderr, "A job ID is required.")
		return
	}

	clientSet := NewClientSet(cfg)
	store := syncstate.NewStore(logger)

	done, err := store.Subscribe(ctx, clientSet.Sync, jobID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to subscribe to job %s: %v\n", jobID, err)
		return
	}

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	render := func() syncstate.Progress {
		p, _ := store.Get(jobID)
		fmt.Fprintf(os.Stdout, "\rinserted=%d updated=%d deleted=%d kept=%d skipped=%d",
			p.Inserted, p.Updated, p.Deleted, p.Kept, p.Skipped)
		return p
	}

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(os.Stdout)
			return
		case <-done:
			p := render()
			fmt.Fprintln(os.Stdout)
			switch {
			case p.IsFailed:
				fmt.Fprintln(os.Stdout, "Sync failed.")
			case p.IsComplete:
				fmt.Fprintf(os.Stdout, "Sync complete: %d entities processed.\n", p.Total())
			default:
				fmt.Fprintln(os.Stdout, "Progress stream ended before the job finished.")
			}
			return
		case <-ticker.C:
			render()
		}
	}
}

func printJobs(jobs []api.SyncJob) error {
	headers := []string{"#", "ID", "CONNECTION", "STATUS", "STARTED"}
	rows := make([][]string, len(jobs))
	for i, job := range jobs {
		started := ""
		if job.StartedAt != nil {
			started = job.StartedAt.Format(time.RFC3339)
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			job.ID,
			job.ConnectionID,
			job.Status,
			started,
		}
	}

	return printOutput(jobs, headers, rows)
}
