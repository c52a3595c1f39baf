package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/go-logr/logr"

	"github.com/airweave-ai/airweave-go/internal/config"
	"github.com/airweave-ai/airweave-go/internal/mcpserver"
)

// MCPCmd runs the MCP server. With httpAddr empty it serves over stdio, which
// is what MCP clients like Claude Desktop spawn; otherwise it listens on
// httpAddr with the streamable HTTP transport.
func MCPCmd(ctx context.Context, cfg *config.Config, logger logr.Logger, httpAddr string, mock bool) {
	collection := cfg.Collection
	if collection == "" {
		fmt.Fprintf(os.Stderr, "A collection is required. Set %s or configure one with: airweave config set collection <readable-id>\n", config.EnvCollection)
		return
	}

	// Without an API key a live server could never make a request, so fall
	// back to mock mode rather than failing every tool call.
	if cfg.APIKey == "" && !mock {
		logger.Info("no api key set, running in mock mode", "env", config.EnvAPIKey)
		mock = true
	}

	opts := mcpserver.Options{
		Collection: collection,
		BaseURL:    cfg.BaseURL,
		APIKeySet:  cfg.APIKey != "",
		Mock:       mock,
	}

	var searcher mcpserver.Searcher
	if mock {
		searcher = mcpserver.MockSearcher{}
	} else {
		searcher = NewClientSet(cfg).Collections
	}

	server := mcpserver.New(opts, searcher, logger)

	var err error
	if httpAddr != "" {
		err = server.ServeHTTP(ctx, httpAddr)
	} else {
		err = server.ServeStdio(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
	}
}
