package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/goironbox/ironboxdx-go/internal/constants"
)

// APIConfig is the on-disk configuration read by the ironboxdx CLI.
//
// Config file location:
//   - Windows: %USERPROFILE%\.config\ironboxdx\apiconfig
//   - Unix: ~/.config/ironboxdx/apiconfig
//
// INI format:
//
//	[ironbox]
//	api_url = https://dx-api.ironbox.app/api/v2/
//	apikey_public_id = <public-id>
//	apikey_secret = <secret>
type APIConfig struct {
	APIURL         string `ini:"api_url"`
	APIKeyPublicID string `ini:"apikey_public_id"`
	APIKeySecret   string `ini:"apikey_secret"`
}

const apiConfigSection = "ironbox"

// DefaultAPIConfigPath returns the default path for the apiconfig file, or
// an empty string when the home directory cannot be determined.
func DefaultAPIConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ironboxdx", "apiconfig")
}

// LoadAPIConfig reads an apiconfig INI file.
func LoadAPIConfig(path string) (*APIConfig, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load apiconfig %s: %w", path, err)
	}

	cfg := &APIConfig{}
	if err := file.Section(apiConfigSection).MapTo(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse apiconfig %s: %w", path, err)
	}
	if cfg.APIURL == "" {
		cfg.APIURL = constants.DefaultBaseAPIURL
	}
	return cfg, nil
}

// SaveAPIConfig writes an apiconfig INI file, creating parent directories as
// needed. The file is written 0600: it holds the API secret.
func SaveAPIConfig(path string, cfg *APIConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file := ini.Empty()
	if err := file.Section(apiConfigSection).ReflectFrom(cfg); err != nil {
		return fmt.Errorf("failed to encode apiconfig: %w", err)
	}
	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write apiconfig %s: %w", path, err)
	}
	return os.Chmod(path, 0o600)
}
