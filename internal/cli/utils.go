package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/airweave-ai/airweave-go/internal/config"
	"github.com/airweave-ai/airweave-go/internal/store"
	"github.com/airweave-ai/airweave-go/pkg/client"
)

var ErrServerConnection = fmt.Errorf("Error connecting to the Airweave API. Check AIRWEAVE_BASE_URL and AIRWEAVE_API_KEY.")

// NewClientSet builds the API client from the resolved configuration.
func NewClientSet(cfg *config.Config) *client.ClientSet {
	options := []client.ClientOption{}
	if cfg.Organization != "" {
		options = append(options, client.WithOrganizationID(cfg.Organization))
	}
	if cfg.RateLimit > 0 {
		options = append(options, client.WithRateLimit(cfg.RateLimit))
	}
	return client.New(cfg.BaseURL, cfg.APIKey, options...)
}

// CheckServerConnection verifies the API is reachable.
func CheckServerConnection(clientSet *client.ClientSet) error {
	if clientSet == nil {
		return ErrServerConnection
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	_, err := clientSet.Health.GetHealth(ctx)
	if err != nil {
		return ErrServerConnection
	}
	return nil
}

// openCache opens the on-disk cache. Callers must call the returned closer.
func openCache() (store.Client, func(), error) {
	path, err := store.DefaultPath()
	if err != nil {
		return nil, nil, err
	}
	manager, err := store.NewManager(path)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := manager.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close cache: %v\n", err)
		}
	}
	return store.NewClient(manager), closer, nil
}
