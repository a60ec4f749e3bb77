// Package cli: organization management commands. These routes require the
// API key pair of an organization administrator.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/goironbox/ironboxdx-go/internal/models"
)

// newMgmtCmd creates the 'mgmt' command group.
func newMgmtCmd() *cobra.Command {
	mgmtCmd := &cobra.Command{
		Use:   "mgmt",
		Short: "Organization management operations (administrators only)",
		Long: `Administrative commands: container metadata and policies, organization
entities, and security groups. The management routes reject API keys that do
not belong to an organization administrator.`,
	}

	mgmtCmd.AddCommand(newMgmtMetadataCmd())
	mgmtCmd.AddCommand(newMgmtTTLCmd())
	mgmtCmd.AddCommand(newMgmtLinkAccessCmd())
	mgmtCmd.AddCommand(newMgmtEntityCmd())
	mgmtCmd.AddCommand(newMgmtGroupCmd())
	mgmtCmd.AddCommand(newMgmtBuiltInGroupCmd())

	return mgmtCmd
}

// newMgmtMetadataCmd creates the 'mgmt metadata' command group.
func newMgmtMetadataCmd() *cobra.Command {
	metadataCmd := &cobra.Command{
		Use:   "metadata",
		Short: "Container metadata operations",
	}

	metadataCmd.AddCommand(&cobra.Command{
		Use:   "get <container-public-id>",
		Short: "Read a container's management metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			metadata, err := client.ReadContainerMetadata(GetContext(), args[0])
			if err != nil {
				return err
			}
			return printJSON(metadata)
		},
	})

	var name, description, readableID string
	setCmd := &cobra.Command{
		Use:   "set <container-public-id>",
		Short: "Update a container's name, description, or readable ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return client.SetContainerMetadata(GetContext(), &models.ContainerMetadataSetRequest{
				ContainerPublicID: args[0],
				Name:              name,
				Description:       description,
				HumanReadableID:   readableID,
			})
		},
	}
	setCmd.Flags().StringVar(&name, "name", "", "New container name")
	setCmd.Flags().StringVar(&description, "description", "", "New container description")
	setCmd.Flags().StringVar(&readableID, "readable-id", "", "New human readable ID")
	metadataCmd.AddCommand(setCmd)

	return metadataCmd
}

// newMgmtTTLCmd creates the 'mgmt ttl' command group.
func newMgmtTTLCmd() *cobra.Command {
	ttlCmd := &cobra.Command{
		Use:   "ttl",
		Short: "Container data time-to-live policy",
	}

	ttlCmd.AddCommand(&cobra.Command{
		Use:   "get <container-public-id>",
		Short: "Read a container's data TTL policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			ttl, err := client.ReadContainerDataTTL(GetContext(), args[0])
			if err != nil {
				return err
			}
			return printJSON(ttl)
		},
	})

	var days int
	var disable bool
	setCmd := &cobra.Command{
		Use:   "set <container-public-id>",
		Short: "Set a container's data TTL policy",
		Long: `Set a container's data TTL policy. Blobs older than the configured number
of days are purged server-side.

Examples:
  ironboxdx mgmt ttl set cont123 --days 30
  ironboxdx mgmt ttl set cont123 --disable`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return client.SetContainerDataTTL(GetContext(), &models.ContainerDataTTL{
				ContainerPublicID: args[0],
				Enabled:           !disable,
				DaysToLive:        days,
			})
		},
	}
	setCmd.Flags().IntVar(&days, "days", 0, "Days a blob lives before purge")
	setCmd.Flags().BoolVar(&disable, "disable", false, "Disable the TTL policy")
	ttlCmd.AddCommand(setCmd)

	return ttlCmd
}

// newMgmtLinkAccessCmd creates the 'mgmt link-access' command group.
func newMgmtLinkAccessCmd() *cobra.Command {
	linkCmd := &cobra.Command{
		Use:   "link-access",
		Short: "Container link-based (anonymous) access policy",
	}

	linkCmd.AddCommand(&cobra.Command{
		Use:   "get <container-public-id>",
		Short: "Read a container's link-based access settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			settings, err := client.ReadContainerLinkAccess(GetContext(), args[0])
			if err != nil {
				return err
			}
			return printJSON(settings)
		},
	})

	var (
		disable  bool
		canRead  bool
		canWrite bool
		password string
	)
	setCmd := &cobra.Command{
		Use:   "set <container-public-id>",
		Short: "Set a container's link-based access settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return client.SetContainerLinkAccess(GetContext(), &models.ContainerLinkAccessSettings{
				PublicID:       args[0],
				Enabled:        !disable,
				CanRead:        canRead,
				CanWrite:       canWrite,
				AccessPassword: password,
			})
		},
	}
	setCmd.Flags().BoolVar(&disable, "disable", false, "Disable link-based access")
	setCmd.Flags().BoolVar(&canRead, "read", true, "Allow anonymous read")
	setCmd.Flags().BoolVar(&canWrite, "write", false, "Allow anonymous write")
	setCmd.Flags().StringVar(&password, "password", "", "Access password (empty = no password)")
	linkCmd.AddCommand(setCmd)

	return linkCmd
}

// newMgmtEntityCmd creates the 'mgmt entity' command group.
func newMgmtEntityCmd() *cobra.Command {
	entityCmd := &cobra.Command{
		Use:   "entity",
		Short: "Organization user account operations",
	}

	var password string
	var disabled bool
	createCmd := &cobra.Command{
		Use:   "create <member-email>",
		Short: "Create an organization user",
		Long: `Create an organization user account.

The server validates domain security authority, password policy, and
license counts. Disabled accounts can be created without consuming a
license.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberPassword := password
			if memberPassword == "" {
				var err error
				memberPassword, err = promptSecret("Member password (required): ")
				if err != nil {
					return err
				}
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return client.CreateOrganizationEntity(GetContext(), &models.EntityCreateRequest{
				MemberEmail:    args[0],
				MemberPassword: memberPassword,
				Enabled:        !disabled,
			})
		},
	}
	createCmd.Flags().StringVar(&password, "password", "", "Member password (prompted when omitted)")
	createCmd.Flags().BoolVar(&disabled, "disabled", false, "Create the account disabled (no license consumed)")
	entityCmd.AddCommand(createCmd)

	var skip, take int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List organization users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			entities, err := client.ListOrganizationEntities(GetContext(), skip, take)
			if err != nil {
				return err
			}
			return printJSON(entities)
		},
	}
	listCmd.Flags().IntVar(&skip, "skip", 0, "Skip past this many entities")
	listCmd.Flags().IntVar(&take, "take", 0, "Page size (0 = server default)")
	entityCmd.AddCommand(listCmd)

	entityCmd.AddCommand(&cobra.Command{
		Use:   "show <member-email>",
		Short: "Show an organization user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			entity, err := client.ReadOrganizationEntity(GetContext(), args[0])
			if err != nil {
				return err
			}
			return printJSON(entity)
		},
	})

	var disableMember bool
	statusCmd := &cobra.Command{
		Use:   "set-status <member-email>",
		Short: "Enable or disable an organization user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return client.SetEntityMembershipStatus(GetContext(), args[0], !disableMember)
		},
	}
	statusCmd.Flags().BoolVar(&disableMember, "disable", false, "Disable the account (default is enable)")
	entityCmd.AddCommand(statusCmd)

	return entityCmd
}

// newMgmtGroupCmd creates the 'mgmt group' command group for custom
// security groups.
func newMgmtGroupCmd() *cobra.Command {
	groupCmd := &cobra.Command{
		Use:   "group",
		Short: "Custom security group operations",
	}

	var createDisabled bool
	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a custom security group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			group, err := client.CreateSecurityGroup(GetContext(), args[0], !createDisabled)
			if err != nil {
				return err
			}
			return printJSON(group)
		},
	}
	createCmd.Flags().BoolVar(&createDisabled, "disabled", false, "Create the group disabled")
	groupCmd.AddCommand(createCmd)

	groupCmd.AddCommand(&cobra.Command{
		Use:   "delete <group-public-id>",
		Short: "Delete a custom security group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return client.DeleteSecurityGroup(GetContext(), args[0])
		},
	})

	var newName string
	var updateDisabled bool
	updateCmd := &cobra.Command{
		Use:   "update <group-public-id>",
		Short: "Rename or enable/disable a custom security group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return client.UpdateSecurityGroup(GetContext(), &models.SecurityGroupUpdateRequest{
				CustomSecurityGroupPublicID: args[0],
				Name:                        newName,
				Enabled:                     !updateDisabled,
			})
		},
	}
	updateCmd.Flags().StringVar(&newName, "name", "", "New group name")
	updateCmd.Flags().BoolVar(&updateDisabled, "disabled", false, "Disable the group")
	groupCmd.AddCommand(updateCmd)

	groupCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List custom security groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			groups, err := client.ListSecurityGroups(GetContext())
			if err != nil {
				return err
			}
			return printJSON(groups)
		},
	})

	groupCmd.AddCommand(&cobra.Command{
		Use:   "show <group-public-id>",
		Short: "Show a custom security group and its members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			group, err := client.ReadSecurityGroup(GetContext(), args[0])
			if err != nil {
				return err
			}
			return printJSON(group)
		},
	})

	groupCmd.AddCommand(&cobra.Command{
		Use:   "add-member <group-public-id> <member-email>",
		Short: "Add an organization user to a custom security group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return client.AddSecurityGroupMember(GetContext(), args[0], args[1])
		},
	})

	groupCmd.AddCommand(&cobra.Command{
		Use:   "remove-member <group-public-id> <member-email>",
		Short: "Remove an organization user from a custom security group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return client.RemoveSecurityGroupMember(GetContext(), args[0], args[1])
		},
	})

	return groupCmd
}

// newMgmtBuiltInGroupCmd creates the 'mgmt builtin-group' command group.
func newMgmtBuiltInGroupCmd() *cobra.Command {
	builtinCmd := &cobra.Command{
		Use:   "builtin-group",
		Short: "Built-in security group operations",
		Long: `Built-in security group operations.

Group names: sse_creators, sse_readers, administrators, developers. The
administrators and developers groups are read-only through this surface.`,
	}

	builtinCmd.AddCommand(&cobra.Command{
		Use:   "show <group-name>",
		Short: "Show a built-in security group's members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			group, err := client.ReadBuiltInSecurityGroup(GetContext(), args[0])
			if err != nil {
				return err
			}
			return printJSON(group)
		},
	})

	builtinCmd.AddCommand(&cobra.Command{
		Use:   "add-member <group-name> <member-email>",
		Short: "Add an organization user to a built-in security group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return client.AddBuiltInSecurityGroupMember(GetContext(), args[0], args[1])
		},
	})

	builtinCmd.AddCommand(&cobra.Command{
		Use:   "remove-member <group-name> <member-email>",
		Short: "Remove an organization user from a built-in security group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return client.RemoveBuiltInSecurityGroupMember(GetContext(), args[0], args[1])
		},
	})

	return builtinCmd
}
