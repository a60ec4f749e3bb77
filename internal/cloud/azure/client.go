// Package azure implements the blob-transfer delegate on Azure blob storage
// using the shared-access signatures issued by the transfer handshake.
package azure

import (
	"fmt"
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"github.com/goironbox/ironboxdx-go/internal/cloud"
)

// Client wraps an azblob client scoped to one handshake's shared-access
// signature. It implements cloud.BlobTransfer.
type Client struct {
	client *azblob.Client
}

// NewTransferFactory returns a cloud.TransferFactory producing Azure
// delegates that share httpClient's transport. Sharing the transport keeps
// the connection pool warm across the handshake's control-plane calls and
// the blob transfer itself.
func NewTransferFactory(httpClient *nethttp.Client) cloud.TransferFactory {
	return func(accessSignatureURI, accessToken string) (cloud.BlobTransfer, error) {
		return NewClient(accessSignatureURI, accessToken, httpClient)
	}
}

// NewClient builds a delegate from a handshake's access-signature URI and
// SAS token. The storage account is derived from the signature URI's host
// name; the service URL carries the account only, with container and blob
// supplied per operation.
func NewClient(accessSignatureURI, accessToken string, httpClient *nethttp.Client) (*Client, error) {
	account, err := StorageAccountName(accessSignatureURI)
	if err != nil {
		return nil, err
	}

	serviceURL := fmt.Sprintf("https://%s.blob.core.windows.net/?%s", account, accessToken)

	opts := &azblob.ClientOptions{}
	if httpClient != nil {
		opts.ClientOptions = azcore.ClientOptions{
			Transport: httpClient,
		}
	}

	client, err := azblob.NewClientWithNoCredential(serviceURL, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure blob client: %w", err)
	}

	return &Client{client: client}, nil
}

// StorageAccountName extracts the Azure storage account name from an access
// signature URI: the first DNS label of its host
// (https://{account}.blob.core.windows.net/... -> account).
func StorageAccountName(accessSignatureURI string) (string, error) {
	u, err := url.Parse(accessSignatureURI)
	if err != nil {
		return "", fmt.Errorf("invalid access signature URI: %w", err)
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("access signature URI %q has no host", accessSignatureURI)
	}
	return strings.Split(host, ".")[0], nil
}
