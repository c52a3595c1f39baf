// Package mcpserver exposes Airweave collection search to AI assistants over
// the Model Context Protocol.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/gorilla/mux"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/airweave-ai/airweave-go/internal/metrics"
	"github.com/airweave-ai/airweave-go/internal/version"
	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

const serverName = "airweave-search"

// Searcher runs a search against one collection. client.Collections satisfies
// it; mock mode substitutes a canned implementation.
type Searcher interface {
	Search(ctx context.Context, readableID string, request *api.SearchRequest) (*api.SearchResponse, error)
}

// Options configures the server.
type Options struct {
	// Collection is the readable ID of the collection the search tool targets.
	Collection string
	// BaseURL is reported by get-config.
	BaseURL string
	// APIKeySet is reported by get-config; the key itself is never exposed.
	APIKeySet bool
	// Mock indicates the searcher returns canned results.
	Mock bool
}

// Server wraps an MCP server bound to one collection.
type Server struct {
	mcp      *mcpsrv.MCPServer
	searcher Searcher
	opts     Options
	logger   logr.Logger
}

// New creates the MCP server with the search and get-config tools registered.
// It does not start listening until one of the Serve* methods is called.
func New(opts Options, searcher Searcher, logger logr.Logger) *Server {
	s := &Server{
		searcher: searcher,
		opts:     opts,
		logger:   logger.WithName("mcp"),
	}

	mcpServer := mcpsrv.NewMCPServer(
		serverName,
		version.Version,
		mcpsrv.WithInstructions(instructions(opts)),
	)

	for _, t := range s.tools() {
		mcpServer.AddTool(t.Tool, t.Handler)
	}

	s.mcp = mcpServer
	return s
}

func instructions(opts Options) string {
	mode := "live"
	if opts.Mock {
		mode = "mock (canned results, no network access)"
	}
	return fmt.Sprintf(`You are connected to an Airweave search server for the collection %q.

Use the search tool to run natural-language queries over the collection's synced
data. Results are ranked hits from the hosted search API; with
response_type=completion the API also returns an AI-generated answer grounded
in those hits. Use get-config to inspect the server configuration.

Mode: %s.
`, opts.Collection, mode)
}

func (s *Server) tools() []mcpsrv.ServerTool {
	return []mcpsrv.ServerTool{
		s.toolSearch(),
		s.toolGetConfig(),
	}
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.Info("mcp server listening on stdio", "collection", s.opts.Collection, "mock", s.opts.Mock)
	if err := srv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// ServeHTTP runs the MCP server over streamable HTTP on addr until ctx is
// cancelled. The MCP endpoint is mounted at /mcp next to /health and /metrics.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	registry := prometheus.NewRegistry()
	metrics.Register(registry)

	streamSrv := mcpsrv.NewStreamableHTTPServer(s.mcp)

	router := mux.NewRouter()
	router.PathPrefix("/mcp").Handler(streamSrv)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	httpSrv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	s.logger.Info("mcp server listening on http", "addr", addr, "collection", s.opts.Collection, "mock", s.opts.Mock)

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("mcp http server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("mcp server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("mcp http server shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// resultText wraps text in a successful CallToolResult.
func resultText(text string) *mcplib.CallToolResult {
	return mcplib.NewToolResultText(text)
}

// resultErr wraps an error in a CallToolResult with IsError=true. Tool
// failures are results, not protocol errors.
func resultErr(err error) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(err.Error())},
		IsError: true,
	}
}
