package models

// BlobState is the server-defined blob lifecycle enum echoed by listing
// requests. The values are opaque to the client and must be passed through
// unchanged.
type BlobState int

const (
	// BlobStateWaitingForUpload marks a blob that was initialized but never
	// finalized.
	BlobStateWaitingForUpload BlobState = 0

	// BlobStateReady marks a blob whose upload was finalized.
	BlobStateReady BlobState = 1
)

// Blob is a single entry of a container blob listing.
type Blob struct {
	BlobPublicID string    `json:"blobPublicID"`
	BlobName     string    `json:"blobName"`
	Description  string    `json:"description,omitempty"`
	State        BlobState `json:"state"`
	SizeBytes    int64     `json:"sizeBytes"`
}

// BlobListRequest pages through the blobs of a container filtered by state.
type BlobListRequest struct {
	ContainerPublicID string    `json:"containerPublicID"`
	SkipPastNumItems  int       `json:"skipPastNumItems"`
	TakeNumItems      int       `json:"takeNumItems"`
	State             BlobState `json:"state"`
}

// BlobList is the response of the blob listing route.
type BlobList struct {
	ContainerPublicID string `json:"containerPublicID"`
	Blobs             []Blob `json:"blobs"`
}

// BlobInitializeRequest starts the upload handshake for a new blob.
type BlobInitializeRequest struct {
	ContainerPublicID       string `json:"containerPublicID"`
	BlobName                string `json:"blobName"`
	BlobDescription         string `json:"blobDescription"`
	ContainerAccessPassword string `json:"containerAccessPassword"`
}

// BlobInitializeResponse is the transfer handshake produced by the
// initialize route: short-lived storage credentials plus the token needed
// to finalize. It is single-use; expiry is enforced server-side.
//
// The service misspells the blob storage name field as "cloubBlobStorageName"
// on this route only. The download route spells it correctly.
type BlobInitializeResponse struct {
	BlobPublicID              string `json:"blobPublicID"`
	AccessToken               string `json:"accessToken"`
	AccessSignatureURI        string `json:"accessSignatureUri"`
	CloudContainerStorageName string `json:"cloudContainerStorageName"`
	CloudBlobStorageName      string `json:"cloubBlobStorageName"`
	FinalizeToken             string `json:"finalizeToken"`
}

// BlobFinalizeRequest completes the upload handshake. OriginalSizeBytes must
// be the byte count actually observed during the transfer, not local file
// metadata: server-side transformations (text encoding, for one) can change
// the byte length between the two.
type BlobFinalizeRequest struct {
	FinalizeToken     string `json:"finalizeToken"`
	BlobPublicID      string `json:"blobPublicID"`
	OriginalSizeBytes int64  `json:"originalSizeBytes"`
}

// BlobDownloadResponse is the handshake produced by the download route.
// Downloads have no finalize step; the server considers a blob unchanged by
// a read.
type BlobDownloadResponse struct {
	AccessToken               string `json:"accessToken"`
	AccessSignatureURI        string `json:"accessSignatureUri"`
	CloudContainerStorageName string `json:"cloudContainerStorageName"`
	CloudBlobStorageName      string `json:"cloudBlobStorageName"`
}
