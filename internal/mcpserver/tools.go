package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/airweave-ai/airweave-go/internal/metrics"
	"github.com/airweave-ai/airweave-go/internal/version"
	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

const (
	maxQueryLength = 4096
	defaultLimit   = 100
)

// ─── search-{collection} ──────────────────────────────────────────────────────

func (s *Server) searchToolName() string {
	return "search-" + s.opts.Collection
}

func (s *Server) toolSearch() mcpsrv.ServerTool {
	tool := mcplib.NewTool(s.searchToolName(),
		mcplib.WithDescription(fmt.Sprintf(
			"Search the %q collection with a natural-language query and return ranked results, optionally with an AI completion.",
			s.opts.Collection)),
		mcplib.WithString("query",
			mcplib.Description("The search query (required, at most 4096 characters)."),
			mcplib.Required(),
		),
		mcplib.WithString("response_type",
			mcplib.Description(`"raw" returns ranked results only, "completion" additionally returns an AI-generated answer (default "raw").`),
		),
		mcplib.WithNumber("limit",
			mcplib.Description("Maximum number of results to return (1-1000, default 100)."),
		),
		mcplib.WithNumber("offset",
			mcplib.Description("Number of results to skip for pagination (>= 0)."),
		),
		mcplib.WithNumber("recency_bias",
			mcplib.Description("Weight of recency in ranking, between 0 and 1."),
		),
		mcplib.WithNumber("score_threshold",
			mcplib.Description("Minimum similarity score for a result, between 0 and 1."),
		),
		mcplib.WithString("search_method",
			mcplib.Description(`Retrieval strategy: "hybrid", "neural" or "keyword".`),
		),
		mcplib.WithString("expansion_strategy",
			mcplib.Description(`Query expansion strategy: "auto", "llm" or "no_expansion".`),
		),
		mcplib.WithBoolean("enable_reranking",
			mcplib.Description("Whether to rerank results with an LLM."),
		),
		mcplib.WithBoolean("enable_query_interpretation",
			mcplib.Description("Whether to let the API extract filters from the query."),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSearch}
}

func (s *Server) handleSearch(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	request, err := parseSearchArgs(req.GetArguments())
	if err != nil {
		metrics.ToolCalls.WithLabelValues(s.searchToolName(), "invalid").Inc()
		return resultErr(err), nil
	}

	s.logger.V(1).Info("mcp: search", "collection", s.opts.Collection, "limit", request.Limit)

	response, err := s.searcher.Search(ctx, s.opts.Collection, request)
	if err != nil {
		// The API's error text goes back to the caller verbatim.
		metrics.ToolCalls.WithLabelValues(s.searchToolName(), "error").Inc()
		return resultErr(err), nil
	}

	metrics.ToolCalls.WithLabelValues(s.searchToolName(), "ok").Inc()
	return searchResultText(response)
}

// parseSearchArgs validates the tool arguments and builds the API request.
// Unknown arguments are ignored; known arguments of the wrong type or out of
// range are rejected before any network call.
func parseSearchArgs(args map[string]any) (*api.SearchRequest, error) {
	query, err := stringArg(args, "query")
	if err != nil {
		return nil, err
	}
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if len(query) > maxQueryLength {
		return nil, fmt.Errorf("query must be at most %d characters, got %d", maxQueryLength, len(query))
	}

	request := &api.SearchRequest{Query: query, Limit: defaultLimit}

	if request.ResponseType, err = enumArg(args, "response_type",
		api.ResponseTypeRaw, api.ResponseTypeCompletion); err != nil {
		return nil, err
	}
	if request.SearchMethod, err = enumArg(args, "search_method",
		api.SearchMethodHybrid, api.SearchMethodNeural, api.SearchMethodKeyword); err != nil {
		return nil, err
	}
	if request.ExpansionStrategy, err = enumArg(args, "expansion_strategy",
		api.ExpansionAuto, api.ExpansionLLM, api.ExpansionNone); err != nil {
		return nil, err
	}

	if limit, ok, err := intArg(args, "limit", 1, 1000); err != nil {
		return nil, err
	} else if ok {
		request.Limit = limit
	}
	if offset, ok, err := intArg(args, "offset", 0, math.MaxInt32); err != nil {
		return nil, err
	} else if ok {
		request.Offset = offset
	}

	if request.RecencyBias, err = unitFloatArg(args, "recency_bias"); err != nil {
		return nil, err
	}
	if request.ScoreThreshold, err = unitFloatArg(args, "score_threshold"); err != nil {
		return nil, err
	}

	if request.EnableReranking, err = boolArg(args, "enable_reranking"); err != nil {
		return nil, err
	}
	if request.EnableQueryInterpretation, err = boolArg(args, "enable_query_interpretation"); err != nil {
		return nil, err
	}

	return request, nil
}

// searchResultText renders the API response. A completion, when present, leads;
// the ranked results follow as JSON.
func searchResultText(response *api.SearchResponse) (*mcplib.CallToolResult, error) {
	results, err := json.MarshalIndent(response.Results, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search results: %w", err)
	}

	if response.Completion != "" {
		return resultText(response.Completion + "\n\nResults:\n" + string(results)), nil
	}
	if len(response.Results) == 0 {
		return resultText("No results found."), nil
	}
	return resultText(string(results)), nil
}

// ─── get-config ───────────────────────────────────────────────────────────────

func (s *Server) toolGetConfig() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get-config",
		mcplib.WithDescription("Report the server configuration: base URL, target collection, whether an API key is configured, and whether mock mode is active. Never returns the API key itself."),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetConfig}
}

func (s *Server) handleGetConfig(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	cfg := struct {
		BaseURL    string `json:"base_url"`
		Collection string `json:"collection"`
		APIKeySet  bool   `json:"api_key_set"`
		Mock       bool   `json:"mock"`
		Version    string `json:"version"`
	}{
		BaseURL:    s.opts.BaseURL,
		Collection: s.opts.Collection,
		APIKeySet:  s.opts.APIKeySet,
		Mock:       s.opts.Mock,
		Version:    version.Version,
	}

	metrics.ToolCalls.WithLabelValues("get-config", "ok").Inc()

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}
	return resultText(string(out)), nil
}

// ─── argument helpers ─────────────────────────────────────────────────────────

// stringArg extracts an optional string argument; present non-strings are errors.
func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", name)
	}
	return s, nil
}

// enumArg extracts an optional string argument restricted to allowed values.
func enumArg(args map[string]any, name string, allowed ...string) (string, error) {
	s, err := stringArg(args, name)
	if err != nil || s == "" {
		return "", err
	}
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return "", fmt.Errorf("%s must be one of %v, got %q", name, allowed, s)
}

// intArg extracts an optional integer argument in [lo, hi]. JSON numbers
// arrive as float64; fractional values are rejected.
func intArg(args map[string]any, name string, lo, hi int) (int, bool, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return 0, false, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, false, fmt.Errorf("%s must be a number", name)
	}
	if f != math.Trunc(f) {
		return 0, false, fmt.Errorf("%s must be an integer", name)
	}
	n := int(f)
	if n < lo || n > hi {
		return 0, false, fmt.Errorf("%s must be between %d and %d, got %d", name, lo, hi, n)
	}
	return n, true, nil
}

// unitFloatArg extracts an optional float argument in [0, 1].
func unitFloatArg(args map[string]any, name string) (*float64, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return nil, nil
	}
	f, ok := v.(float64)
	if !ok {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	if f < 0 || f > 1 {
		return nil, fmt.Errorf("%s must be between 0 and 1, got %g", name, f)
	}
	return &f, nil
}

// boolArg extracts an optional boolean argument.
func boolArg(args map[string]any, name string) (*bool, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("%s must be a boolean", name)
	}
	return &b, nil
}
