package config

import (
	"os"
)

// Environment variables recognized as the lowest-priority credential source.
const (
	EnvAPIKeyPublicID = "IRONBOX_APIKEY_PUBLICID"
	EnvAPIKeySecret   = "IRONBOX_APIKEY_SECRET"
	EnvAPIURL         = "IRONBOX_API_URL"
)

// ResolveCredentials returns the API key pair by checking sources in
// priority order:
//
//  1. Explicitly provided values (e.g. from command-line flags)
//  2. The apiconfig INI file at configPath (DefaultAPIConfigPath when empty)
//  3. IRONBOX_APIKEY_PUBLICID / IRONBOX_APIKEY_SECRET environment variables
//
// The two halves of the pair resolve independently, so a flag can override
// just the secret while the public ID comes from the file. Empty strings are
// returned for anything not found; Config.Validate catches missing values.
func ResolveCredentials(publicID, secret, configPath string) (string, string) {
	if publicID != "" && secret != "" {
		return publicID, secret
	}

	if configPath == "" {
		configPath = DefaultAPIConfigPath()
	}
	if configPath != "" {
		if cfg, err := LoadAPIConfig(configPath); err == nil {
			if publicID == "" {
				publicID = cfg.APIKeyPublicID
			}
			if secret == "" {
				secret = cfg.APIKeySecret
			}
		}
	}

	if publicID == "" {
		publicID = os.Getenv(EnvAPIKeyPublicID)
	}
	if secret == "" {
		secret = os.Getenv(EnvAPIKeySecret)
	}
	return publicID, secret
}

// ResolveAPIURL returns the control-plane base URL by priority: explicit
// value, apiconfig file, IRONBOX_API_URL, production default.
func ResolveAPIURL(apiURL, configPath string) string {
	if apiURL != "" {
		return apiURL
	}

	if configPath == "" {
		configPath = DefaultAPIConfigPath()
	}
	if configPath != "" {
		if cfg, err := LoadAPIConfig(configPath); err == nil && cfg.APIURL != "" {
			return cfg.APIURL
		}
	}

	return os.Getenv(EnvAPIURL)
}
