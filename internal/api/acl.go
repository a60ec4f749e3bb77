package api

import (
	"context"

	"github.com/goironbox/ironboxdx-go/internal/constants"
	"github.com/goironbox/ironboxdx-go/internal/models"
)

// AddUserToContainerACL grants a user access to a container. If the email
// is not a registered organization member the server files it under the
// container's external access list and forces IsAdmin off. Adding a user
// already present in the ACLs fails rather than upserting; remove and
// re-add to change an existing grant.
func (c *Client) AddUserToContainerACL(ctx context.Context, req *models.ACLUserAddRequest) (*models.ACLMembershipResponse, error) {
	c.log.Infof("Adding user [%s] to container ACLs", req.UserEmail)

	var out models.ACLMembershipResponse
	if err := c.invoke(ctx, "add user to container ACLs", constants.RouteACLUserAdd, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddSecurityGroupToContainerACL grants a custom security group access to a
// container. The same no-upsert rule as user grants applies.
func (c *Client) AddSecurityGroupToContainerACL(ctx context.Context, req *models.ACLSecurityGroupAddRequest) (*models.ACLMembershipResponse, error) {
	c.log.Infof("Adding custom security group [%s] to container ACLs", req.CustomSecurityGroupPublicID)

	var out models.ACLMembershipResponse
	if err := c.invoke(ctx, "add security group to container ACLs", constants.RouteACLSecurityGroupAdd, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListContainerACLs reads the current access-control entries of a
// container.
func (c *Client) ListContainerACLs(ctx context.Context, containerPublicID string) (*models.ACLList, error) {
	body := struct {
		ContainerPublicID string `json:"containerPublicID"`
	}{containerPublicID}

	var out models.ACLList
	if err := c.invoke(ctx, "list container ACLs", constants.RouteACLList, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteContainerACL removes one membership record from a container's ACLs.
func (c *Client) DeleteContainerACL(ctx context.Context, containerPublicID, membershipPublicID string) error {
	c.log.Infof("Deleting container ACL membership [%s]", membershipPublicID)

	req := models.ACLDeleteRequest{
		ContainerPublicID:  containerPublicID,
		MembershipPublicID: membershipPublicID,
	}
	return c.invokeNoResult(ctx, "delete container ACL", constants.RouteACLDelete, req)
}

// ContainerNotificationSettings reads the upload and download notification
// lists of a container.
func (c *Client) ContainerNotificationSettings(ctx context.Context, containerPublicID string) (*models.ContainerNotificationSettings, error) {
	body := struct {
		ContainerPublicID string `json:"containerPublicID"`
	}{containerPublicID}

	var out models.ContainerNotificationSettings
	if err := c.invoke(ctx, "get container notification settings", constants.RouteNotificationsGet, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetContainerNotificationSettings replaces the upload and download
// notification lists of a container.
func (c *Client) SetContainerNotificationSettings(ctx context.Context, containerPublicID string, uploadList, downloadList []string) error {
	c.log.Infof("Setting container notification lists")

	req := models.ContainerNotificationSettings{
		ContainerPublicID:        containerPublicID,
		UploadNotificationList:   uploadList,
		DownloadNotificationList: downloadList,
	}
	return c.invokeNoResult(ctx, "set container notification settings", constants.RouteNotificationsSet, req)
}
