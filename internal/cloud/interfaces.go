// Package cloud defines the capability interface the blob-transfer delegate
// must satisfy. The control-plane client depends only on these types; any
// storage SDK able to move a byte stream to and from a container/blob pair
// under a short-lived access token can be substituted.
package cloud

import (
	"context"
	"io"
)

// ProgressFunc reports transfer progress as (bytesTransferred, totalBytes).
// Implementations of BlobTransfer invoke it at chunk granularity, including
// an initial zero-progress call before the first chunk. total may be zero
// when the delegate cannot determine the stream length up front.
type ProgressFunc func(current, total int64)

// BlobTransfer moves byte streams to and from cloud storage using the
// short-lived credentials of one transfer handshake. A BlobTransfer is
// single-use in practice: the access token it was built from expires
// server-side shortly after the handshake.
type BlobTransfer interface {
	// Upload streams size bytes from src into container/blob, invoking
	// onProgress as chunks complete. Returns the byte count actually
	// written.
	Upload(ctx context.Context, src io.Reader, size int64, container, blob string, onProgress ProgressFunc) (int64, error)

	// Download streams container/blob into dst, invoking onProgress as
	// chunks arrive. Returns the byte count actually read.
	Download(ctx context.Context, dst io.Writer, container, blob string, onProgress ProgressFunc) (int64, error)
}

// TransferFactory builds a BlobTransfer from the handshake's access
// signature URI and access token. The control-plane client calls it once
// per transfer.
type TransferFactory func(accessSignatureURI, accessToken string) (BlobTransfer, error)
