package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/airweave-ai/airweave-go/internal/config"
)

// OrgSetPrimaryCmd marks an organization as primary on the server and in the
// local cache.
func OrgSetPrimaryCmd(ctx context.Context, cfg *config.Config, orgID string) {
	if orgID == "" {
		fmt.Fprintln(os.Stderr, "An organization ID is required.")
		return
	}

	clientSet := NewClientSet(cfg)
	if err := clientSet.Organizations.SetPrimary(ctx, orgID); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set primary organization: %v\n", err)
		return
	}

	if cache, closeCache, err := openCache(); err == nil {
		if err := cache.SetPrimaryOrganization(orgID); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to update organization cache: %v\n", err)
		}
		closeCache()
	}

	fmt.Fprintf(os.Stdout, "Organization %s is now primary\n", orgID)
}

// OrgLeaveCmd removes the caller from an organization and drops it from the
// local cache.
func OrgLeaveCmd(ctx context.Context, cfg *config.Config, orgID string) {
	if orgID == "" {
		fmt.Fprintln(os.Stderr, "An organization ID is required.")
		return
	}

	clientSet := NewClientSet(cfg)
	if err := clientSet.Organizations.Leave(ctx, orgID); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to leave organization: %v\n", err)
		return
	}

	if cache, closeCache, err := openCache(); err == nil {
		if err := cache.DeleteOrganization(orgID); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to update organization cache: %v\n", err)
		}
		closeCache()
	}

	fmt.Fprintf(os.Stdout, "Left organization %s\n", orgID)
}
