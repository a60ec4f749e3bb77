package api

import (
	"context"

	"github.com/goironbox/ironboxdx-go/internal/constants"
	"github.com/goironbox/ironboxdx-go/internal/models"
)

// Management surface. Every operation here requires organization
// administrator rights on the server side; the client validates nothing
// locally (domain authority, license counts, and uniqueness are all
// server-enforced) and passes responses through unchanged.

// ReadContainerMetadata reads the management view of a container.
func (c *Client) ReadContainerMetadata(ctx context.Context, containerPublicID string) (*models.ContainerMetadata, error) {
	c.log.Infof("Reading container meta data for container with public ID [%s]", containerPublicID)

	body := struct {
		ContainerPublicID string `json:"containerPublicID"`
	}{containerPublicID}

	var out models.ContainerMetadata
	if err := c.invoke(ctx, "read container metadata", constants.RouteContainerMetadata, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetContainerMetadata updates the mutable metadata fields of a container.
func (c *Client) SetContainerMetadata(ctx context.Context, req *models.ContainerMetadataSetRequest) error {
	c.log.Infof("Setting container meta data for container with public ID [%s]", req.ContainerPublicID)
	return c.invokeNoResult(ctx, "set container metadata", constants.RouteContainerMetadataSet, req)
}

// ReadContainerDataTTL reads the data time-to-live policy of a container.
func (c *Client) ReadContainerDataTTL(ctx context.Context, containerPublicID string) (*models.ContainerDataTTL, error) {
	body := struct {
		ContainerPublicID string `json:"containerPublicID"`
	}{containerPublicID}

	var out models.ContainerDataTTL
	if err := c.invoke(ctx, "read container data TTL", constants.RouteContainerDataTTLGet, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetContainerDataTTL replaces the data time-to-live policy of a container.
func (c *Client) SetContainerDataTTL(ctx context.Context, req *models.ContainerDataTTL) error {
	c.log.Infof("Setting container data TTL policy")
	return c.invokeNoResult(ctx, "set container data TTL", constants.RouteContainerDataTTLSet, req)
}

// ReadContainerLinkAccess reads the link-based access settings of a
// container.
func (c *Client) ReadContainerLinkAccess(ctx context.Context, publicID string) (*models.ContainerLinkAccessSettings, error) {
	body := struct {
		PublicID string `json:"publicID"`
	}{publicID}

	var out models.ContainerLinkAccessSettings
	if err := c.invoke(ctx, "read container link-based access settings", constants.RouteLinkAccessGet, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetContainerLinkAccess applies new link-based access settings to a
// container.
func (c *Client) SetContainerLinkAccess(ctx context.Context, req *models.ContainerLinkAccessSettings) error {
	c.log.Infof("Applying new link-based access settings")
	return c.invokeNoResult(ctx, "set container link-based access settings", constants.RouteLinkAccessSet, req)
}

// CreateOrganizationEntity creates a user in the organization the API key
// pair belongs to. The entity must not already exist, the organization must
// have security authority over the email's domain, and enabling the account
// consumes a user license.
func (c *Client) CreateOrganizationEntity(ctx context.Context, req *models.EntityCreateRequest) error {
	c.log.Infof("Creating organization entity [%s]", req.MemberEmail)
	return c.invokeNoResult(ctx, "create organization entity", constants.RouteEntityCreate, req)
}

// SetEntityMembershipStatus enables or disables an organization member.
func (c *Client) SetEntityMembershipStatus(ctx context.Context, memberEmail string, enabled bool) error {
	c.log.Infof("Setting organization membership for user [%s] to %t", memberEmail, enabled)

	req := models.EntityMembershipStatusRequest{
		MemberEmail: memberEmail,
		Enabled:     enabled,
	}
	return c.invokeNoResult(ctx, "set organization user status", constants.RouteEntityMembershipSet, req)
}

// ListOrganizationEntities pages through the organization's user accounts.
func (c *Client) ListOrganizationEntities(ctx context.Context, skip, take int) (*models.EntityList, error) {
	if take <= 0 {
		take = constants.DefaultBlobListTake
	}
	req := models.EntityListRequest{
		SkipPastNumItems: skip,
		TakeNumItems:     take,
	}

	var out models.EntityList
	if err := c.invoke(ctx, "list organization entities", constants.RouteEntityList, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReadOrganizationEntity reads the metadata of one organization member.
func (c *Client) ReadOrganizationEntity(ctx context.Context, memberEmail string) (*models.OrganizationEntity, error) {
	body := struct {
		MemberEmail string `json:"memberEmail"`
	}{memberEmail}

	var out models.OrganizationEntity
	if err := c.invoke(ctx, "read organization entity", constants.RouteEntityMetadata, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSecurityGroup creates a custom security group.
func (c *Client) CreateSecurityGroup(ctx context.Context, name string, enabled bool) (*models.SecurityGroup, error) {
	c.log.Infof("Creating custom security group [%s]", name)

	req := models.SecurityGroupCreateRequest{Name: name, Enabled: enabled}

	var out models.SecurityGroup
	if err := c.invoke(ctx, "create custom security group", constants.RouteSecurityGroupCreate, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSecurityGroup deletes a custom security group. Container ACL
// entries referencing the group are removed server-side.
func (c *Client) DeleteSecurityGroup(ctx context.Context, groupPublicID string) error {
	c.log.Infof("Deleting custom security group [%s]", groupPublicID)

	body := struct {
		CustomSecurityGroupPublicID string `json:"customSecurityGroupPublicID"`
	}{groupPublicID}
	return c.invokeNoResult(ctx, "delete custom security group", constants.RouteSecurityGroupDelete, body)
}

// UpdateSecurityGroup renames or toggles a custom security group.
func (c *Client) UpdateSecurityGroup(ctx context.Context, req *models.SecurityGroupUpdateRequest) error {
	c.log.Infof("Updating custom security group [%s]", req.CustomSecurityGroupPublicID)
	return c.invokeNoResult(ctx, "update custom security group", constants.RouteSecurityGroupUpdate, req)
}

// AddSecurityGroupMember adds an organization member to a custom security
// group. The member must already exist in the organization.
func (c *Client) AddSecurityGroupMember(ctx context.Context, groupPublicID, memberEmail string) error {
	c.log.Infof("Adding [%s] to custom security group [%s]", memberEmail, groupPublicID)

	req := models.SecurityGroupMemberRequest{
		CustomSecurityGroupPublicID: groupPublicID,
		MemberEmail:                 memberEmail,
	}
	return c.invokeNoResult(ctx, "add custom security group member", constants.RouteSecurityGroupMemberAdd, req)
}

// RemoveSecurityGroupMember removes an organization member from a custom
// security group.
func (c *Client) RemoveSecurityGroupMember(ctx context.Context, groupPublicID, memberEmail string) error {
	c.log.Infof("Removing [%s] from custom security group [%s]", memberEmail, groupPublicID)

	req := models.SecurityGroupMemberRequest{
		CustomSecurityGroupPublicID: groupPublicID,
		MemberEmail:                 memberEmail,
	}
	return c.invokeNoResult(ctx, "remove custom security group member", constants.RouteSecurityGroupMemberRemove, req)
}

// ListSecurityGroups lists the organization's custom security groups.
func (c *Client) ListSecurityGroups(ctx context.Context) (*models.SecurityGroupList, error) {
	var out models.SecurityGroupList
	if err := c.invoke(ctx, "list custom security groups", constants.RouteSecurityGroupList, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReadSecurityGroup reads one custom security group including its member
// list.
func (c *Client) ReadSecurityGroup(ctx context.Context, groupPublicID string) (*models.SecurityGroup, error) {
	body := struct {
		CustomSecurityGroupPublicID string `json:"customSecurityGroupPublicID"`
	}{groupPublicID}

	var out models.SecurityGroup
	if err := c.invoke(ctx, "read custom security group", constants.RouteSecurityGroupRead, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReadBuiltInSecurityGroup reads the membership of a built-in security
// group (sse_creators, sse_readers, administrators, developers).
func (c *Client) ReadBuiltInSecurityGroup(ctx context.Context, groupName string) (*models.BuiltInGroup, error) {
	body := struct {
		GroupName string `json:"groupName"`
	}{groupName}

	var out models.BuiltInGroup
	if err := c.invoke(ctx, "read built-in security group", constants.RouteBuiltInGroupRead, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddBuiltInSecurityGroupMember adds an organization member to a built-in
// security group. Only sse_creators and sse_readers accept membership
// changes; administrators and developers are read-only.
func (c *Client) AddBuiltInSecurityGroupMember(ctx context.Context, groupName, memberEmail string) error {
	c.log.Infof("Adding [%s] to built-in security group [%s]", memberEmail, groupName)

	req := models.BuiltInGroupMemberRequest{GroupName: groupName, MemberEmail: memberEmail}
	return c.invokeNoResult(ctx, "add built-in security group member", constants.RouteBuiltInGroupMemberAdd, req)
}

// RemoveBuiltInSecurityGroupMember removes an organization member from a
// built-in security group.
func (c *Client) RemoveBuiltInSecurityGroupMember(ctx context.Context, groupName, memberEmail string) error {
	c.log.Infof("Removing [%s] from built-in security group [%s]", memberEmail, groupName)

	req := models.BuiltInGroupMemberRequest{GroupName: groupName, MemberEmail: memberEmail}
	return c.invokeNoResult(ctx, "remove built-in security group member", constants.RouteBuiltInGroupMemberRemove, req)
}
