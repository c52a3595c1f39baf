package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/airweave-ai/airweave-go/internal/config"
	"github.com/airweave-ai/airweave-go/internal/version"
)

// VersionCmd prints the client version and, when the server is reachable, the
// backend version too.
func VersionCmd(ctx context.Context, cfg *config.Config) {
	fmt.Fprintln(os.Stdout, version.Get().String())

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	clientSet := NewClientSet(cfg)
	serverVersion, err := clientSet.Version.GetVersion(ctx)
	if err != nil {
		fmt.Fprintf(os.Stdout, "Server: unreachable (%s)\n", cfg.BaseURL)
		return
	}
	fmt.Fprintf(os.Stdout, "Server: %s (%s)\n", serverVersion.Version, cfg.BaseURL)
}
