package api

import (
	"context"

	"github.com/goironbox/ironboxdx-go/internal/constants"
	"github.com/goironbox/ironboxdx-go/internal/models"
)

// ListStorageEndpoints retrieves the cloud storage endpoints the calling
// user can create containers on.
func (c *Client) ListStorageEndpoints(ctx context.Context) (*models.StorageEndpointList, error) {
	c.log.Infof("Retrieving the list of storage endpoints that the current user has access to")

	var out models.StorageEndpointList
	if err := c.invoke(ctx, "list storage endpoints", constants.RouteStorageList, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateContainer creates a server-side encrypted container on the storage
// endpoint named in the request.
func (c *Client) CreateContainer(ctx context.Context, req *models.ContainerCreateRequest) (*models.ContainerCreateResponse, error) {
	c.log.Infof("Creating server-side encrypted container")

	var out models.ContainerCreateResponse
	if err := c.invoke(ctx, "create SSE container", constants.RouteContainerCreate, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteContainer queues a server-side encrypted container for deletion.
func (c *Client) DeleteContainer(ctx context.Context, containerPublicID string) error {
	c.log.Infof("Deleting server-side encrypted container")

	body := struct {
		ContainerPublicID string `json:"containerPublicID"`
	}{containerPublicID}
	return c.invokeNoResult(ctx, "delete SSE container", constants.RouteContainerDelete, body)
}

// ListContainers lists the server-side encrypted containers visible to the
// caller.
func (c *Client) ListContainers(ctx context.Context, includeContainersQueuedForDelete bool) (*models.ContainerList, error) {
	body := struct {
		IncludeContainersQueuedForDelete bool `json:"includeContainersQueuedForDelete"`
	}{includeContainersQueuedForDelete}

	var out models.ContainerList
	if err := c.invoke(ctx, "list SSE containers", constants.RouteContainerList, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListContainerBlobs pages through the blobs of a container filtered by
// state. take falls back to the server default page size when zero or
// negative.
func (c *Client) ListContainerBlobs(ctx context.Context, containerPublicID string, skip, take int, state models.BlobState) (*models.BlobList, error) {
	c.log.Infof("Listing server-side encrypted blobs")

	if take <= 0 {
		take = constants.DefaultBlobListTake
	}
	body := models.BlobListRequest{
		ContainerPublicID: containerPublicID,
		SkipPastNumItems:  skip,
		TakeNumItems:      take,
		State:             state,
	}

	var out models.BlobList
	if err := c.invoke(ctx, "list SSE blobs", constants.RouteBlobList, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBlob deletes a blob from its container. The delete route returns an
// empty body on success.
func (c *Client) DeleteBlob(ctx context.Context, blobPublicID string) error {
	c.log.Infof("Deleting server-side encrypted blob")

	body := struct {
		BlobPublicID string `json:"blobPublicID"`
	}{blobPublicID}
	if err := c.invokeNoResult(ctx, "delete SSE blob", constants.RouteBlobDelete, body); err != nil {
		return err
	}
	c.log.Infof("Delete complete")
	return nil
}
