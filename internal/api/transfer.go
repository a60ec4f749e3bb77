package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/goironbox/ironboxdx-go/internal/constants"
	"github.com/goironbox/ironboxdx-go/internal/models"
)

// UploadOptions carries the optional fields of the upload handshake.
type UploadOptions struct {
	BlobDescription string

	// ContainerAccessPassword is required only for containers with
	// password-protected anonymous access.
	ContainerAccessPassword string
}

// UploadBlobFromPath uploads a local file as a blob to a server-side
// encrypted container. The three handshake steps run strictly in order:
// initialize, delegate transfer, finalize with the byte count observed
// during the transfer.
func (c *Client) UploadBlobFromPath(ctx context.Context, containerPublicID, blobName, sourceFilePath string, opts *UploadOptions) error {
	c.log.Infof("Uploading [%s] to server-side encrypted container with public ID [%s] as blob with name [%s]",
		sourceFilePath, containerPublicID, blobName)

	f, err := os.Open(sourceFilePath)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source file: %w", err)
	}

	return c.uploadBlob(ctx, containerPublicID, blobName, f, info.Size(), opts)
}

// UploadBlobFromText uploads an in-memory string as a blob, encoded with
// the named text encoding ("utf-8", "utf-16", "latin-1", ...). The encoded
// byte length, not the string length, is what reaches storage and finalize.
func (c *Client) UploadBlobFromText(ctx context.Context, containerPublicID, blobName, sourceText, encoding string, opts *UploadOptions) error {
	c.log.Infof("Uploading text to server-side encrypted container with public ID [%s] as blob with name [%s]",
		containerPublicID, blobName)

	encoded, err := encodeText(sourceText, encoding)
	if err != nil {
		return err
	}

	return c.uploadBlob(ctx, containerPublicID, blobName, bytes.NewReader(encoded), int64(len(encoded)), opts)
}

// uploadBlob runs the upload handshake around one delegate transfer.
func (c *Client) uploadBlob(ctx context.Context, containerPublicID, blobName string, src io.Reader, size int64, opts *UploadOptions) error {
	if opts == nil {
		opts = &UploadOptions{}
	}

	handshake, err := c.initializeBlob(ctx, containerPublicID, blobName, opts.BlobDescription, opts.ContainerAccessPassword)
	if err != nil {
		return err
	}

	c.log.Infof("Uploading contents to cloud storage")
	transfer, err := c.newTransfer(handshake.AccessSignatureURI, handshake.AccessToken)
	if err != nil {
		return err
	}

	// The total reported by the delegate's progress callbacks is the
	// authoritative transferred size. Local file metadata is not trusted:
	// transformations like text encoding change the byte length before the
	// stream reaches storage.
	c.lastUploadTotalBytes = 0
	reporter := c.newReporter("Uploading")
	onProgress := func(current, total int64) {
		if current != 0 {
			c.lastUploadTotalBytes = total
		}
		reporter.Progress(current, total)
	}

	if _, err := transfer.Upload(ctx, src, size, handshake.CloudContainerStorageName, handshake.CloudBlobStorageName, onProgress); err != nil {
		return err
	}
	reporter.Finish()

	if err := c.finalizeBlob(ctx, handshake.FinalizeToken, handshake.BlobPublicID, c.lastUploadTotalBytes); err != nil {
		return err
	}

	c.log.Infof("Upload complete")
	return nil
}

// DownloadBlobToPath downloads a blob to a local destination path. There is
// no finalize step on download; the server considers the blob unchanged by
// a read.
func (c *Client) DownloadBlobToPath(ctx context.Context, blobPublicID, destinationFilePath string) error {
	c.log.Infof("Downloading server-side encrypted blob with publicID = %s", blobPublicID)

	body := struct {
		BlobPublicID string `json:"blobPublicID"`
	}{blobPublicID}

	var handshake models.BlobDownloadResponse
	if err := c.invoke(ctx, "download SSE blob", constants.RouteBlobDownload, body, &handshake); err != nil {
		return err
	}

	transfer, err := c.newTransfer(handshake.AccessSignatureURI, handshake.AccessToken)
	if err != nil {
		return err
	}

	f, err := os.Create(destinationFilePath)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	reporter := c.newReporter("Downloading")
	if _, err := transfer.Download(ctx, f, handshake.CloudContainerStorageName, handshake.CloudBlobStorageName, reporter.Progress); err != nil {
		f.Close()
		return err
	}
	reporter.Finish()

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close destination file: %w", err)
	}

	c.log.Infof("Download complete")
	return nil
}

// initializeBlob starts the upload handshake. The handshake it returns is
// single-use and short-lived; failing to finalize it leaves the blob in the
// waiting-for-upload state server-side.
func (c *Client) initializeBlob(ctx context.Context, containerPublicID, blobName, blobDescription, containerAccessPassword string) (*models.BlobInitializeResponse, error) {
	c.log.Infof("Initializing server-side encrypted blob")

	req := models.BlobInitializeRequest{
		ContainerPublicID:       containerPublicID,
		BlobName:                blobName,
		BlobDescription:         blobDescription,
		ContainerAccessPassword: containerAccessPassword,
	}

	var out models.BlobInitializeResponse
	if err := c.invoke(ctx, "initialize SSE blob", constants.RouteBlobInitialize, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// finalizeBlob completes the upload handshake, marking the blob ready
// server-side. The finalize route returns an empty body on success; that is
// its documented contract, not an error.
func (c *Client) finalizeBlob(ctx context.Context, finalizeToken, blobPublicID string, blobSizeBytes int64) error {
	c.log.Infof("Finalizing server-side encrypted blob")

	req := models.BlobFinalizeRequest{
		FinalizeToken:     finalizeToken,
		BlobPublicID:      blobPublicID,
		OriginalSizeBytes: blobSizeBytes,
	}
	return c.invokeNoResult(ctx, "finalize SSE blob", constants.RouteBlobFinalize, req)
}

// encodeText converts text to bytes in the named encoding. UTF-8 is the
// identity transform; other names resolve through the WHATWG encoding
// index.
func encodeText(text, encoding string) ([]byte, error) {
	if encoding == "" || strings.EqualFold(encoding, "utf-8") || strings.EqualFold(encoding, "utf8") {
		return []byte(text), nil
	}
	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return nil, fmt.Errorf("unknown text encoding %q: %w", encoding, err)
	}
	encoded, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("failed to encode text as %q: %w", encoding, err)
	}
	return encoded, nil
}
