// Package cli: server-side encrypted container commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/goironbox/ironboxdx-go/internal/models"
)

// newContainersCmd creates the 'container' command group.
func newContainersCmd() *cobra.Command {
	containerCmd := &cobra.Command{
		Use:   "container",
		Short: "Server-side encrypted container operations",
		Long:  `Commands for creating, listing, and deleting server-side encrypted containers.`,
	}

	containerCmd.AddCommand(newContainerCreateCmd())
	containerCmd.AddCommand(newContainerDeleteCmd())
	containerCmd.AddCommand(newContainerListCmd())

	return containerCmd
}

// newContainerCreateCmd creates the 'container create' command.
func newContainerCreateCmd() *cobra.Command {
	var (
		description     string
		endpointID      string
		humanReadableID string
		anonAccess      bool
		anonPassword    string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a server-side encrypted container",
		Long: `Create a server-side encrypted container on a storage endpoint.

Examples:
  # Create on the default endpoint
  ironboxdx container create reports --endpoint-id ep123

  # Create with anonymous link access behind a password
  ironboxdx container create dropbox --endpoint-id ep123 \
    --anonymous-access --anonymous-password s3cret`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			resp, err := client.CreateContainer(GetContext(), &models.ContainerCreateRequest{
				Name:                         args[0],
				Description:                  description,
				AnonymousAccessEnabled:       anonAccess,
				AnonymousAccessPassword:      anonPassword,
				CloudStorageEndpointPublicID: endpointID,
				HumanReadableID:              humanReadableID,
			})
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Container description")
	cmd.Flags().StringVar(&endpointID, "endpoint-id", "", "Storage endpoint public ID (see 'storage list')")
	cmd.Flags().StringVar(&humanReadableID, "readable-id", "", "Human readable container ID")
	cmd.Flags().BoolVar(&anonAccess, "anonymous-access", false, "Enable anonymous link-based access")
	cmd.Flags().StringVar(&anonPassword, "anonymous-password", "", "Password for anonymous access (requires --anonymous-access)")

	return cmd
}

// newContainerDeleteCmd creates the 'container delete' command.
func newContainerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <container-public-id>",
		Short: "Queue a server-side encrypted container for deletion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return client.DeleteContainer(GetContext(), args[0])
		},
	}
}

// newContainerListCmd creates the 'container list' command.
func newContainerListCmd() *cobra.Command {
	var includeQueued bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List server-side encrypted containers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			containers, err := client.ListContainers(GetContext(), includeQueued)
			if err != nil {
				return err
			}
			return printJSON(containers)
		},
	}

	cmd.Flags().BoolVar(&includeQueued, "include-queued", false, "Include containers queued for deletion")

	return cmd
}
