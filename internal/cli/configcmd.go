package cli

import (
	"fmt"
	"os"

	"github.com/airweave-ai/airweave-go/internal/config"
)

// ConfigShowCmd prints the resolved configuration. The API key itself is never
// printed, only whether one is set.
func ConfigShowCmd(cfg *config.Config) {
	headers := []string{"KEY", "VALUE"}
	rows := [][]string{
		{"base_url", cfg.BaseURL},
		{"collection", cfg.Collection},
		{"organization", cfg.Organization},
		{"output_format", cfg.OutputFormat},
		{"rate_limit", fmt.Sprintf("%g", cfg.RateLimit)},
		{"api_key_set", fmt.Sprintf("%t", cfg.APIKey != "")},
	}

	view := struct {
		BaseURL      string  `json:"base_url"`
		Collection   string  `json:"collection"`
		Organization string  `json:"organization"`
		OutputFormat string  `json:"output_format"`
		RateLimit    float64 `json:"rate_limit"`
		APIKeySet    bool    `json:"api_key_set"`
	}{cfg.BaseURL, cfg.Collection, cfg.Organization, cfg.OutputFormat, cfg.RateLimit, cfg.APIKey != ""}

	if err := printOutput(view, headers, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to print config: %v\n", err)
		return
	}
}

// ConfigSetCmd writes a single key into the config file.
func ConfigSetCmd(key, value string) {
	if err := config.Set(key, value); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set %s: %v\n", key, err)
		return
	}
	fmt.Fprintf(os.Stdout, "Set %s to %q\n", key, value)
}
