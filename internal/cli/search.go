package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/airweave-ai/airweave-go/internal/config"
	"github.com/airweave-ai/airweave-go/internal/store"
	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

// SearchCfg carries the search command's flags.
type SearchCfg struct {
	Config *config.Config

	Collection                string
	ResponseType              string
	Limit                     int
	Offset                    int
	RecencyBias               float64
	ScoreThreshold            float64
	SearchMethod              string
	ExpansionStrategy         string
	EnableReranking           bool
	EnableQueryInterpretation bool
}

// SearchCmd runs a one-shot collection search and prints the response.
// The last-used response type and limit are remembered per collection.
func SearchCmd(ctx context.Context, cfg *SearchCfg, query string) {
	collection := cfg.Collection
	if collection == "" {
		collection = cfg.Config.Collection
	}
	if collection == "" {
		fmt.Fprintf(os.Stderr, "No collection specified. Use --collection or set %s.\n", config.EnvCollection)
		return
	}
	if query == "" {
		fmt.Fprintln(os.Stderr, "A search query is required.")
		return
	}

	request := buildSearchRequest(cfg, query)

	cache, closeCache, cacheErr := openCache()
	if cacheErr == nil {
		defer closeCache()
		applyRememberedSettings(cache, collection, request)
	}

	clientSet := NewClientSet(cfg.Config)
	response, err := clientSet.Collections.Search(ctx, collection, request)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		return
	}

	if cacheErr == nil {
		if err := cache.StoreSearchSettings(&store.SearchSettings{
			Collection:   collection,
			ResponseType: request.ResponseType,
			Limit:        request.Limit,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to remember search settings: %v\n", err)
		}
	}

	if response.Completion != "" {
		fmt.Fprintln(os.Stdout, response.Completion)
		fmt.Fprintln(os.Stdout)
	}
	if err := printJSON(response.Results); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to print results: %v\n", err)
	}
}

// buildSearchRequest maps the command flags onto the API request. Negative
// recency bias and score threshold mean the flag was not set; boolean flags
// only go on the wire when enabled.
func buildSearchRequest(cfg *SearchCfg, query string) *api.SearchRequest {
	request := &api.SearchRequest{
		Query:             query,
		ResponseType:      cfg.ResponseType,
		Limit:             cfg.Limit,
		Offset:            cfg.Offset,
		SearchMethod:      cfg.SearchMethod,
		ExpansionStrategy: cfg.ExpansionStrategy,
	}
	if cfg.RecencyBias >= 0 {
		bias := cfg.RecencyBias
		request.RecencyBias = &bias
	}
	if cfg.ScoreThreshold >= 0 {
		threshold := cfg.ScoreThreshold
		request.ScoreThreshold = &threshold
	}
	if cfg.EnableReranking {
		rerank := true
		request.EnableReranking = &rerank
	}
	if cfg.EnableQueryInterpretation {
		interpret := true
		request.EnableQueryInterpretation = &interpret
	}
	return request
}

// applyRememberedSettings fills unset request fields from the collection's
// remembered settings. Explicit flags always win.
func applyRememberedSettings(cache store.Client, collection string, request *api.SearchRequest) {
	settings, err := cache.GetSearchSettings(collection)
	if err != nil {
		return
	}
	if request.ResponseType == "" {
		request.ResponseType = settings.ResponseType
	}
	if request.Limit == 0 {
		request.Limit = settings.Limit
	}
}
