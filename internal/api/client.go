package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"

	"github.com/goironbox/ironboxdx-go/internal/cloud"
	"github.com/goironbox/ironboxdx-go/internal/cloud/azure"
	"github.com/goironbox/ironboxdx-go/internal/config"
	"github.com/goironbox/ironboxdx-go/internal/constants"
	"github.com/goironbox/ironboxdx-go/internal/http"
	"github.com/goironbox/ironboxdx-go/internal/logging"
	"github.com/goironbox/ironboxdx-go/internal/progress"
)

// ReporterFactory produces a progress reporter for one transfer. The label
// is "Uploading" or "Downloading".
type ReporterFactory func(label string) progress.Reporter

// Client is the IronBox DX API client. Every public operation performs one
// blocking HTTP round trip (transfers additionally stream the blob bytes
// through the delegate) and returns the server response unchanged.
//
// A Client instance supports one operation at a time. Nothing is shared
// across operations except the immutable configuration and the
// last-observed upload byte count, which each upload overwrites; running
// two uploads concurrently on one instance would race that count into
// finalize.
type Client struct {
	cfg         *config.Config
	httpClient  *nethttp.Client
	baseURL     string
	log         *logging.Logger
	newTransfer cloud.TransferFactory
	newReporter ReporterFactory

	// Size of the last upload in bytes, as observed through the transfer
	// progress callbacks. Consumed by finalize.
	lastUploadTotalBytes int64
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithTransferFactory substitutes the blob-transfer delegate. Any storage
// SDK satisfying cloud.BlobTransfer can stand in for the default Azure
// implementation.
func WithTransferFactory(f cloud.TransferFactory) Option {
	return func(c *Client) { c.newTransfer = f }
}

// WithReporterFactory substitutes the progress reporter used during
// transfers.
func WithReporterFactory(f ReporterFactory) Option {
	return func(c *Client) { c.newReporter = f }
}

// WithLogger substitutes the logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithHTTPClient substitutes the HTTP client used for control-plane calls.
func WithHTTPClient(hc *nethttp.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates an API client from cfg. The configuration is fixed for
// the client's lifetime.
func NewClient(cfg *config.Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient, err := http.ConfigureHTTPClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to configure HTTP client: %w", err)
	}

	c := &Client{
		cfg:        cfg,
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(cfg.BaseAPIURL, "/") + "/",
		log:        logging.NewDefault(cfg.Verbose, cfg.Debug),
	}
	c.newTransfer = azure.NewTransferFactory(httpClient)
	c.newReporter = func(label string) progress.Reporter {
		if cfg.Verbose {
			return progress.NewBarReporter(label, nil)
		}
		return progress.Nop{}
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// invoke sends one signed POST to baseURL+route with body as JSON and
// decodes the 200 response into out. A non-200 status yields a
// *RemoteCallError tagged with op and no parse is attempted; a 200 with an
// empty or null body yields ErrInvalidResponse, since out != nil means the
// route's contract requires content.
func (c *Client) invoke(ctx context.Context, op, route string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: failed to marshal request body: %w", op, err)
	}

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost, c.baseURL+route, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.APIKeyPublicIDHeader, c.cfg.APIKeyPublicID)
	req.Header.Set(constants.APIKeySecretHeader, c.cfg.APIKeySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: failed to read response: %w", op, err)
	}

	if c.log.DebugEnabled() {
		c.log.Debug().
			Str("route", route).
			Int("status", resp.StatusCode).
			Str("body", string(respBody)).
			Msg("control-plane response")
	}

	if resp.StatusCode != nethttp.StatusOK {
		return &RemoteCallError{Op: op, StatusCode: resp.StatusCode, Body: respBody}
	}

	if out == nil {
		// Route's documented success shape allows an empty body (finalize,
		// deletes); whatever came back is discarded.
		return nil
	}
	if emptyJSON(respBody) {
		return fmt.Errorf("%s: %w", op, ErrInvalidResponse)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrInvalidResponse, err)
	}
	return nil
}

// invokeNoResult is invoke for routes whose success response is an empty
// body.
func (c *Client) invokeNoResult(ctx context.Context, op, route string, body interface{}) error {
	return c.invoke(ctx, op, route, body, nil)
}

// emptyJSON reports whether b carries no usable content: empty, JSON null,
// or an empty object.
func emptyJSON(b []byte) bool {
	s := string(bytes.TrimSpace(b))
	return s == "" || s == "null" || s == "{}"
}
