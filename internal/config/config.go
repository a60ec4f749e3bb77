// Package config provides configuration for the IronBox DX client.
package config

import (
	"errors"

	"github.com/goironbox/ironboxdx-go/internal/constants"
)

// Config is the immutable configuration set fixed at client construction.
// There is no dynamic reconfiguration: credentials, base URL, and the
// TLS/verbosity flags apply uniformly to every call the client makes.
type Config struct {
	// APIKeyPublicID and APIKeySecret are the developer key pair from the
	// web dashboard, attached as headers to every control-plane request.
	APIKeyPublicID string
	APIKeySecret   string

	// BaseAPIURL is the control-plane base URL. Defaults to the production
	// service; overridden for dev environments.
	BaseAPIURL string

	// SkipTLSVerify disables TLS certificate verification. Dev environments
	// only.
	SkipTLSVerify bool

	// Verbose enables human-friendly narration and the console progress bar.
	Verbose bool

	// Debug additionally dumps raw status codes and response bodies for
	// diagnosis. It never alters control flow.
	Debug bool
}

// Validation errors
var (
	ErrMissingAPIKeyPublicID = errors.New("API key public ID is required")
	ErrMissingAPIKeySecret   = errors.New("API key secret is required")
)

// ApplyDefaults fills unset fields with production defaults.
func (c *Config) ApplyDefaults() {
	if c.BaseAPIURL == "" {
		c.BaseAPIURL = constants.DefaultBaseAPIURL
	}
}

// Validate checks that the required credential fields are present.
func (c *Config) Validate() error {
	if c.APIKeyPublicID == "" {
		return ErrMissingAPIKeyPublicID
	}
	if c.APIKeySecret == "" {
		return ErrMissingAPIKeySecret
	}
	return nil
}
