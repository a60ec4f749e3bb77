// Package models defines the request and response shapes exchanged with the
// IronBox DX control plane. Field names mirror the service's JSON exactly;
// responses are passed through to callers without restructuring.
package models

// StorageEndpoint describes a cloud storage endpoint the calling user can
// create server-side encrypted containers on.
type StorageEndpoint struct {
	PublicID    string `json:"publicID"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Region      string `json:"region,omitempty"`
}

// StorageEndpointList is the response of the storage-endpoint listing route.
type StorageEndpointList struct {
	Endpoints []StorageEndpoint `json:"endpoints"`
}
