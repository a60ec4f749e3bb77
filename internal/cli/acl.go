// Package cli: container access-control commands.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/goironbox/ironboxdx-go/internal/api"
	"github.com/goironbox/ironboxdx-go/internal/models"
)

// newACLCmd creates the 'acl' command group.
func newACLCmd() *cobra.Command {
	aclCmd := &cobra.Command{
		Use:   "acl",
		Short: "Container access-control operations",
		Long: `Commands for granting and revoking container access.

Re-adding a member that is already on the ACL fails server-side; remove the
existing entry first. This is deliberate so existing grants are never
silently replaced.`,
	}

	aclCmd.AddCommand(newACLAddUserCmd())
	aclCmd.AddCommand(newACLAddGroupCmd())
	aclCmd.AddCommand(newACLListCmd())
	aclCmd.AddCommand(newACLRemoveCmd())

	return aclCmd
}

// aclGrantFlags registers the shared rights flags and returns a builder for
// the grant they describe.
func aclGrantFlags(cmd *cobra.Command) func() models.ACLGrant {
	var (
		canRead      bool
		canWrite     bool
		isAdmin      bool
		disabled     bool
		availableUTC string
		expiresUTC   string
	)

	cmd.Flags().BoolVar(&canRead, "read", true, "Grant read access")
	cmd.Flags().BoolVar(&canWrite, "write", false, "Grant write access")
	cmd.Flags().BoolVar(&isAdmin, "admin", false, "Grant container admin rights")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "Create the entry disabled")
	cmd.Flags().StringVar(&availableUTC, "available", "", "Access start time, RFC 3339 UTC (empty = immediately)")
	cmd.Flags().StringVar(&expiresUTC, "expires", "", "Access expiry time, RFC 3339 UTC (empty = never)")

	return func() models.ACLGrant {
		return models.ACLGrant{
			CanRead:      canRead,
			CanWrite:     canWrite,
			IsAdmin:      isAdmin,
			Enabled:      !disabled,
			AvailableUtc: availableUTC,
			ExpiresUtc:   expiresUTC,
		}
	}
}

// newACLAddUserCmd creates the 'acl add-user' command.
func newACLAddUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-user <container-public-id> <user-email>",
		Short: "Grant a user access to a container",
		Long: `Grant a user access to a server-side encrypted container.

Emails outside the organization are filed under the container's external
access list with admin rights forced off.

Examples:
  ironboxdx acl add-user cont123 user@example.com --write
  ironboxdx acl add-user cont123 auditor@example.com --expires 2027-01-01T00:00:00Z`,
		Args: cobra.ExactArgs(2),
	}
	grant := aclGrantFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.AddUserToContainerACL(GetContext(), &models.ACLUserAddRequest{
			ContainerPublicID: args[0],
			UserEmail:         args[1],
			ACLGrant:          grant(),
		})
		if err != nil {
			if api.IsAlreadyExistsError(err) {
				GetLogger().Warn().Msg("member is already on the ACL; remove the existing entry to change its rights")
			}
			return err
		}
		return printJSON(resp)
	}

	return cmd
}

// newACLAddGroupCmd creates the 'acl add-group' command.
func newACLAddGroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-group <container-public-id> <group-public-id>",
		Short: "Grant a custom security group access to a container",
		Args:  cobra.ExactArgs(2),
	}
	grant := aclGrantFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.AddSecurityGroupToContainerACL(GetContext(), &models.ACLSecurityGroupAddRequest{
			ContainerPublicID:           args[0],
			CustomSecurityGroupPublicID: args[1],
			ACLGrant:                    grant(),
		})
		if err != nil {
			if api.IsAlreadyExistsError(err) {
				GetLogger().Warn().Msg("group is already on the ACL; remove the existing entry to change its rights")
			}
			return err
		}
		return printJSON(resp)
	}

	return cmd
}

// newACLListCmd creates the 'acl list' command.
func newACLListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <container-public-id>",
		Short: "List the access-control entries of a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			acls, err := client.ListContainerACLs(GetContext(), args[0])
			if err != nil {
				return err
			}
			return printJSON(acls)
		},
	}
}

// newACLRemoveCmd creates the 'acl remove' command.
func newACLRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <container-public-id> <membership-public-id>",
		Short: "Remove an access-control entry from a container",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return client.DeleteContainerACL(GetContext(), args[0], args[1])
		},
	}
}

// newNotificationsCmd creates the 'notifications' command group.
func newNotificationsCmd() *cobra.Command {
	notifyCmd := &cobra.Command{
		Use:   "notifications",
		Short: "Container notification list operations",
	}

	notifyCmd.AddCommand(newNotificationsGetCmd())
	notifyCmd.AddCommand(newNotificationsSetCmd())

	return notifyCmd
}

// newNotificationsGetCmd creates the 'notifications get' command.
func newNotificationsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <container-public-id>",
		Short: "Show a container's upload and download notification lists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			settings, err := client.ContainerNotificationSettings(GetContext(), args[0])
			if err != nil {
				return err
			}
			return printJSON(settings)
		},
	}
}

// newNotificationsSetCmd creates the 'notifications set' command.
func newNotificationsSetCmd() *cobra.Command {
	var uploadList, downloadList string

	cmd := &cobra.Command{
		Use:   "set <container-public-id>",
		Short: "Replace a container's notification lists",
		Long: `Replace the upload and download notification lists of a container.

Both lists are comma-separated email addresses; an empty flag clears the
corresponding list.

Example:
  ironboxdx notifications set cont123 \
    --on-upload ops@example.com,audit@example.com --on-download audit@example.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			return client.SetContainerNotificationSettings(GetContext(), args[0],
				splitEmailList(uploadList), splitEmailList(downloadList))
		},
	}

	cmd.Flags().StringVar(&uploadList, "on-upload", "", "Comma-separated emails notified on upload")
	cmd.Flags().StringVar(&downloadList, "on-download", "", "Comma-separated emails notified on download")

	return cmd
}

// splitEmailList splits a comma-separated flag value, dropping empty items.
func splitEmailList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
