package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/airweave-ai/airweave-go/internal/config"
	"github.com/airweave-ai/airweave-go/internal/cron"
	"github.com/airweave-ai/airweave-go/pkg/client/api"
)

func GetCollectionsCmd(cfg *config.Config, resourceName string) {
	clientSet := NewClientSet(cfg)

	if resourceName == "" {
		collections, err := clientSet.Collections.ListCollections(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get collections: %v\n", err)
			return
		}

		if len(collections) == 0 {
			fmt.Println("No collections found")
			return
		}

		if err := printCollections(collections); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to print collections: %v\n", err)
			return
		}
	} else {
		collection, err := clientSet.Collections.GetCollection(context.Background(), resourceName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get collection %s: %v\n", resourceName, err)
			return
		}
		byt, _ := json.MarshalIndent(collection, "", "  ")
		fmt.Fprintln(os.Stdout, string(byt)) //nolint:errcheck
	}
}

func GetConnectionsCmd(cfg *config.Config, resourceName string) {
	clientSet := NewClientSet(cfg)

	if resourceName == "" {
		connections, err := clientSet.SourceConnections.ListSourceConnections(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get connections: %v\n", err)
			return
		}

		if len(connections) == 0 {
			fmt.Println("No connections found")
			return
		}

		if err := printConnections(connections); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to print connections: %v\n", err)
			return
		}
	} else {
		connection, err := clientSet.SourceConnections.GetSourceConnection(context.Background(), resourceName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get connection %s: %v\n", resourceName, err)
			return
		}
		byt, _ := json.MarshalIndent(connection, "", "  ")
		fmt.Fprintln(os.Stdout, string(byt)) //nolint:errcheck
	}
}

func GetSourcesCmd(cfg *config.Config) {
	clientSet := NewClientSet(cfg)
	sources, err := clientSet.Sources.ListSources(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get sources: %v\n", err)
		return
	}
	if err := printSources(sources); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to print sources: %v\n", err)
		return
	}
}

func GetDestinationsCmd(cfg *config.Config) {
	clientSet := NewClientSet(cfg)
	destinations, err := clientSet.Destinations.ListDestinations(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get destinations: %v\n", err)
		return
	}
	if err := printDestinations(destinations); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to print destinations: %v\n", err)
		return
	}
}

// GetAPIKeysCmd lists API keys and refreshes the local metadata cache.
func GetAPIKeysCmd(cfg *config.Config) {
	clientSet := NewClientSet(cfg)
	keys, err := clientSet.APIKeys.ListAPIKeys(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get API keys: %v\n", err)
		return
	}

	if cache, closeCache, err := openCache(); err == nil {
		if err := cache.ReplaceAPIKeys(keys); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to update API key cache: %v\n", err)
		}
		closeCache()
	}

	if err := printAPIKeys(keys); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to print API keys: %v\n", err)
		return
	}
}

// GetOrgsCmd lists organizations and refreshes the local cache, keeping the
// single-primary invariant.
func GetOrgsCmd(cfg *config.Config) {
	clientSet := NewClientSet(cfg)
	orgs, err := clientSet.Organizations.ListOrganizations(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get organizations: %v\n", err)
		return
	}

	if cache, closeCache, err := openCache(); err == nil {
		if err := cache.UpsertOrganizations(orgs); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to update organization cache: %v\n", err)
		}
		closeCache()
	}

	if err := printOrgs(orgs); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to print organizations: %v\n", err)
		return
	}
}

// GetUsageCmd shows usage counters for the active organization.
func GetUsageCmd(cfg *config.Config) {
	clientSet := NewClientSet(cfg)
	usage, err := clientSet.Usage.GetUsage(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get usage: %v\n", err)
		return
	}
	if err := printUsage(usage); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to print usage: %v\n", err)
		return
	}
}

func printCollections(collections []api.Collection) error {
	headers := []string{"#", "NAME", "READABLE_ID", "STATUS", "CREATED"}
	rows := make([][]string, len(collections))
	for i, collection := range collections {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			collection.Name,
			collection.ReadableID,
			collection.Status,
			collection.CreatedAt.Format(time.RFC3339),
		}
	}

	return printOutput(collections, headers, rows)
}

func printConnections(connections []api.SourceConnection) error {
	headers := []string{"#", "NAME", "SOURCE", "COLLECTION", "STATUS", "SCHEDULE"}
	rows := make([][]string, len(connections))
	for i, connection := range connections {
		schedule := ""
		if connection.Schedule != "" {
			schedule = cron.Humanize(connection.Schedule)
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			connection.Name,
			connection.ShortName,
			connection.CollectionID,
			connection.Status,
			schedule,
		}
	}

	return printOutput(connections, headers, rows)
}

func printSources(sources []api.Source) error {
	headers := []string{"#", "NAME", "SHORT_NAME", "AUTH_TYPE"}
	rows := make([][]string, len(sources))
	for i, source := range sources {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			source.Name,
			source.ShortName,
			source.AuthType,
		}
	}

	return printOutput(sources, headers, rows)
}

func printDestinations(destinations []api.Destination) error {
	headers := []string{"#", "NAME", "SHORT_NAME", "AUTH_TYPE"}
	rows := make([][]string, len(destinations))
	for i, destination := range destinations {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			destination.Name,
			destination.ShortName,
			destination.AuthType,
		}
	}

	return printOutput(destinations, headers, rows)
}

func printAPIKeys(keys []api.APIKey) error {
	headers := []string{"#", "PREFIX", "EXPIRES", "CREATED"}
	rows := make([][]string, len(keys))
	for i, key := range keys {
		expires := "never"
		if key.ExpirationDate != nil {
			expires = key.ExpirationDate.Format(time.RFC3339)
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			key.KeyPrefix,
			expires,
			key.CreatedAt.Format(time.RFC3339),
		}
	}

	return printOutput(keys, headers, rows)
}

func printUsage(usage *api.Usage) error {
	quota := func(used, max int64) string {
		if max > 0 {
			return fmt.Sprintf("%d / %d", used, max)
		}
		return strconv.FormatInt(used, 10)
	}

	headers := []string{"COUNTER", "USED"}
	rows := [][]string{
		{"entities", quota(usage.Entities, usage.MaxEntities)},
		{"queries", quota(usage.Queries, usage.MaxQueries)},
		{"source_connections", strconv.FormatInt(usage.SourceConnections, 10)},
	}

	return printOutput(usage, headers, rows)
}

func printOrgs(orgs []api.Organization) error {
	headers := []string{"#", "NAME", "ROLE", "PRIMARY", "CREATED"}
	rows := make([][]string, len(orgs))
	for i, org := range orgs {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			org.Name,
			org.Role,
			strconv.FormatBool(org.IsPrimary),
			org.CreatedAt.Format(time.RFC3339),
		}
	}

	return printOutput(orgs, headers, rows)
}
