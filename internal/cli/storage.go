// Package cli: storage endpoint commands.
package cli

import (
	"github.com/spf13/cobra"
)

// newStorageCmd creates the 'storage' command group.
func newStorageCmd() *cobra.Command {
	storageCmd := &cobra.Command{
		Use:   "storage",
		Short: "Cloud storage endpoint operations",
	}

	storageCmd.AddCommand(newStorageListCmd())

	return storageCmd
}

// newStorageListCmd creates the 'storage list' command.
func newStorageListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the storage endpoints available to the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			endpoints, err := client.ListStorageEndpoints(GetContext())
			if err != nil {
				return err
			}
			return printJSON(endpoints)
		},
	}
}
