package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/airweave-ai/airweave-go/internal/cli"
	"github.com/airweave-ai/airweave-go/internal/config"
	"github.com/airweave-ai/airweave-go/internal/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd := &cobra.Command{
		Use:   "airweave",
		Short: "airweave is a CLI for the Airweave search platform",
		Long:  `airweave is a CLI for the Airweave search platform`,
	}

	rootCmd.PersistentFlags().String("base-url", config.DefaultBaseURL, "Airweave API base URL")
	rootCmd.PersistentFlags().StringP("collection", "c", "", "Default collection readable ID")
	rootCmd.PersistentFlags().String("organization", "", "Organization ID sent with every request")
	rootCmd.PersistentFlags().StringP("output-format", "o", "table", "Output format (table|json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("collection", rootCmd.PersistentFlags().Lookup("collection"))
	_ = viper.BindPFlag("organization", rootCmd.PersistentFlags().Lookup("organization"))
	_ = viper.BindPFlag("output_format", rootCmd.PersistentFlags().Lookup("output-format"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	searchCfg := &cli.SearchCfg{}

	searchCmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search a collection",
		Long:  `Search a collection with a natural-language query`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := mustConfig()
			if !ensureServer(cfg) {
				return
			}
			searchCfg.Config = cfg
			cli.SearchCmd(cmd.Context(), searchCfg, args[0])
		},
		Example: `airweave search "quarterly revenue targets" --collection finance-docs --response-type completion`,
	}

	searchCmd.Flags().StringVar(&searchCfg.Collection, "collection", "", "Collection readable ID (overrides the configured default)")
	searchCmd.Flags().StringVar(&searchCfg.ResponseType, "response-type", "", "Response type (raw|completion)")
	searchCmd.Flags().IntVar(&searchCfg.Limit, "limit", 0, "Maximum number of results")
	searchCmd.Flags().IntVar(&searchCfg.Offset, "offset", 0, "Number of results to skip")
	searchCmd.Flags().Float64Var(&searchCfg.RecencyBias, "recency-bias", -1, "Recency bias between 0 and 1")
	searchCmd.Flags().Float64Var(&searchCfg.ScoreThreshold, "score-threshold", -1, "Minimum similarity score between 0 and 1")
	searchCmd.Flags().StringVar(&searchCfg.SearchMethod, "search-method", "", "Search method (hybrid|neural|keyword)")
	searchCmd.Flags().StringVar(&searchCfg.ExpansionStrategy, "expansion-strategy", "", "Query expansion strategy (auto|llm|no_expansion)")
	searchCmd.Flags().BoolVar(&searchCfg.EnableReranking, "rerank", false, "Enable LLM reranking of results")
	searchCmd.Flags().BoolVar(&searchCfg.EnableQueryInterpretation, "query-interpretation", false, "Let the API extract filters from the query")

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Get an Airweave resource",
		Long:  `Get an Airweave resource`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stderr, "No resource type provided\n\n")
			cmd.Help() //nolint:errcheck
			os.Exit(1)
		},
	}

	getCollectionCmd := &cobra.Command{
		Use:     "collection [readable_id]",
		Aliases: []string{"collections"},
		Short:   "Get a collection or list all collections",
		Long:    `Get a collection by readable ID or list all collections`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := mustConfig()
			resourceName := ""
			if len(args) > 0 {
				resourceName = args[0]
			}
			cli.GetCollectionsCmd(cfg, resourceName)
		},
	}

	getConnectionCmd := &cobra.Command{
		Use:     "connection [connection_id]",
		Aliases: []string{"connections"},
		Short:   "Get a source connection or list all source connections",
		Long:    `Get a source connection by ID or list all source connections`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := mustConfig()
			resourceName := ""
			if len(args) > 0 {
				resourceName = args[0]
			}
			cli.GetConnectionsCmd(cfg, resourceName)
		},
	}

	getSourceCmd := &cobra.Command{
		Use:     "source",
		Aliases: []string{"sources"},
		Short:   "List available source types",
		Long:    `List all source types that can be connected`,
		Run: func(cmd *cobra.Command, args []string) {
			cli.GetSourcesCmd(mustConfig())
		},
	}

	getDestinationCmd := &cobra.Command{
		Use:     "destination",
		Aliases: []string{"destinations"},
		Short:   "List available destination types",
		Long:    `List all destination types data can be synced into`,
		Run: func(cmd *cobra.Command, args []string) {
			cli.GetDestinationsCmd(mustConfig())
		},
	}

	getAPIKeyCmd := &cobra.Command{
		Use:     "api-key",
		Aliases: []string{"api-keys"},
		Short:   "List API keys",
		Long:    `List API key metadata (prefixes and expirations, never the keys themselves)`,
		Run: func(cmd *cobra.Command, args []string) {
			cli.GetAPIKeysCmd(mustConfig())
		},
	}

	getOrgCmd := &cobra.Command{
		Use:     "org",
		Aliases: []string{"orgs", "organizations"},
		Short:   "List organizations",
		Long:    `List the organizations the current API key belongs to`,
		Run: func(cmd *cobra.Command, args []string) {
			cli.GetOrgsCmd(mustConfig())
		},
	}

	getUsageCmd := &cobra.Command{
		Use:   "usage",
		Short: "Show usage counters",
		Long:  `Show entity, query, and connection counters for the active organization`,
		Run: func(cmd *cobra.Command, args []string) {
			cli.GetUsageCmd(mustConfig())
		},
	}

	getCmd.AddCommand(getCollectionCmd, getConnectionCmd, getSourceCmd, getDestinationCmd, getAPIKeyCmd, getOrgCmd, getUsageCmd)

	orgCmd := &cobra.Command{
		Use:   "org",
		Short: "Manage organization membership",
		Long:  `Manage organization membership`,
		Run: func(cmd *cobra.Command, args []string) {
			cli.GetOrgsCmd(mustConfig())
		},
	}

	orgSetPrimaryCmd := &cobra.Command{
		Use:   "set-primary [org_id]",
		Short: "Mark an organization as primary",
		Long:  `Mark an organization as the primary one for this account`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cli.OrgSetPrimaryCmd(cmd.Context(), mustConfig(), args[0])
		},
	}

	orgLeaveCmd := &cobra.Command{
		Use:   "leave [org_id]",
		Short: "Leave an organization",
		Long:  `Remove the current account from an organization`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cli.OrgLeaveCmd(cmd.Context(), mustConfig(), args[0])
		},
	}

	orgCmd.AddCommand(orgSetPrimaryCmd, orgLeaveCmd)

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Manage sync jobs",
		Long:  `Trigger, list, and watch sync jobs`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stderr, "No sync subcommand provided\n\n")
			cmd.Help() //nolint:errcheck
			os.Exit(1)
		},
	}

	syncRunCmd := &cobra.Command{
		Use:   "run [connection_id]",
		Short: "Trigger a sync for a source connection",
		Long:  `Trigger a sync for a source connection`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cli.SyncRunCmd(cmd.Context(), mustConfig(), args[0])
		},
	}

	syncJobsCmd := &cobra.Command{
		Use:   "jobs",
		Short: "List sync jobs",
		Long:  `List sync jobs`,
		Run: func(cmd *cobra.Command, args []string) {
			cli.SyncJobsCmd(cmd.Context(), mustConfig())
		},
	}

	syncWatchCmd := &cobra.Command{
		Use:   "watch [job_id]",
		Short: "Watch a sync job's live progress",
		Long:  `Subscribe to a sync job's progress stream and render the counters until it finishes`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := mustConfig()
			if !ensureServer(cfg) {
				return
			}
			logger, zl := logging.New(logLevel(cfg))
			defer zl.Sync() //nolint:errcheck
			cli.SyncWatchCmd(cmd.Context(), cfg, logger, args[0])
		},
	}

	syncCmd.AddCommand(syncRunCmd, syncJobsCmd, syncWatchCmd)

	chatCmd := &cobra.Command{
		Use:   "chat",
		Short: "Work with chats",
		Long:  `List chats and send messages`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := mustConfig()
			if !ensureServer(cfg) {
				return
			}
			cli.ChatListCmd(cmd.Context(), cfg)
		},
	}

	chatSendCmd := &cobra.Command{
		Use:   "send [chat_id] [message]",
		Short: "Send a message to a chat",
		Long:  `Send a message to a chat and print the assistant's reply`,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			cli.ChatSendCmd(cmd.Context(), mustConfig(), args[0], args[1])
		},
	}

	chatCmd.AddCommand(chatSendCmd)

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the CLI configuration",
		Long:  `Show or change the CLI configuration`,
		Run: func(cmd *cobra.Command, args []string) {
			cli.ConfigShowCmd(mustConfig())
		},
	}

	configSetCmd := &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set a configuration value",
		Long:  `Set a configuration value in ~/.airweave/config.yaml`,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			cli.ConfigSetCmd(args[0], args[1])
		},
		Example: `airweave config set collection finance-docs`,
	}

	configCmd.AddCommand(configSetCmd)

	var mcpHTTPAddr string
	var mcpMock bool

	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP search server",
		Long:  `Run an MCP server exposing search and get-config tools for the configured collection`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := mustConfig()
			logger, zl := logging.New(logLevel(cfg))
			defer zl.Sync() //nolint:errcheck
			cli.MCPCmd(cmd.Context(), cfg, logger, mcpHTTPAddr, mcpMock)
		},
		Example: `airweave mcp --collection finance-docs
airweave mcp --http :8085`,
	}

	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "Serve MCP over streamable HTTP on this address instead of stdio")
	mcpCmd.Flags().BoolVar(&mcpMock, "mock", false, "Serve canned results without contacting the API")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the airweave version",
		Long:  `Print the airweave version`,
		Run: func(cmd *cobra.Command, args []string) {
			cli.VersionCmd(cmd.Context(), mustConfig())
		},
	}

	rootCmd.AddCommand(searchCmd, getCmd, orgCmd, syncCmd, chatCmd, configCmd, mcpCmd, versionCmd)

	// Initialize config
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func mustConfig() *config.Config {
	cfg, err := config.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func ensureServer(cfg *config.Config) bool {
	if err := cli.CheckServerConnection(cli.NewClientSet(cfg)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	return true
}

func logLevel(cfg *config.Config) string {
	if cfg.Verbose {
		return "debug"
	}
	return "info"
}
