package models

// ContainerCreateRequest is the body of the container-create route. The
// anonymous access password is ignored server-side unless
// AnonymousAccessEnabled is set.
type ContainerCreateRequest struct {
	Name                         string `json:"name"`
	Description                  string `json:"description"`
	AnonymousAccessEnabled       bool   `json:"anonymousAccessEnabled"`
	AnonymousAccessPassword      string `json:"anonymousAccessPassword"`
	CloudStorageEndpointPublicID string `json:"cloudStorageEndpointPublicID"`
	HumanReadableID              string `json:"humanReadableID"`
}

// ContainerCreateResponse carries the public ID of a newly created container.
type ContainerCreateResponse struct {
	ContainerPublicID string `json:"containerPublicID"`
}

// Container is a single entry of the container listing.
type Container struct {
	ContainerPublicID string `json:"containerPublicID"`
	ContainerName     string `json:"containerName"`
	Description       string `json:"description,omitempty"`
	HumanReadableID   string `json:"humanReadableID,omitempty"`
	QueuedForDelete   bool   `json:"queuedForDelete,omitempty"`
}

// ContainerList is the response of the container listing route.
type ContainerList struct {
	Containers []Container `json:"containers"`
}

// ContainerMetadata is the management view of a container. Only organization
// administrators may read it.
type ContainerMetadata struct {
	ContainerPublicID       string   `json:"containerPublicID"`
	Name                    string   `json:"name"`
	Description             string   `json:"description,omitempty"`
	HumanReadableID         string   `json:"humanReadableID,omitempty"`
	StorageEndpointPublicID string   `json:"storageEndpointPublicID,omitempty"`
	AnonymousAccessEnabled  bool     `json:"anonymousAccessEnabled"`
	CreatedUtc              string   `json:"createdUtc,omitempty"`
	OwnerEmails             []string `json:"ownerEmails,omitempty"`
}

// ContainerMetadataSetRequest updates the mutable metadata fields of a
// container.
type ContainerMetadataSetRequest struct {
	ContainerPublicID string `json:"containerPublicID"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	HumanReadableID   string `json:"humanReadableID"`
}

// ContainerDataTTL is the data time-to-live policy of a container. When
// enabled, blobs older than DaysToLive are purged server-side.
type ContainerDataTTL struct {
	ContainerPublicID string `json:"containerPublicID,omitempty"`
	Enabled           bool   `json:"enabled"`
	DaysToLive        int    `json:"daysToLive"`
}

// ContainerLinkAccessSettings is the link-based (anonymous) access policy of
// a container, keyed by the bare publicID field name the management routes
// use for this resource.
type ContainerLinkAccessSettings struct {
	PublicID       string `json:"publicID,omitempty"`
	Enabled        bool   `json:"enabled"`
	CanRead        bool   `json:"canRead"`
	CanWrite       bool   `json:"canWrite"`
	AccessPassword string `json:"accessPassword,omitempty"`
}
