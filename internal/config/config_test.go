package config

import (
	"errors"
	"testing"

	"github.com/goironbox/ironboxdx-go/internal/constants"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if cfg.BaseAPIURL != constants.DefaultBaseAPIURL {
		t.Errorf("BaseAPIURL = %q, want production default", cfg.BaseAPIURL)
	}

	cfg = &Config{BaseAPIURL: "https://dev.example/api/v2/"}
	cfg.ApplyDefaults()
	if cfg.BaseAPIURL != "https://dev.example/api/v2/" {
		t.Errorf("ApplyDefaults overwrote explicit BaseAPIURL: %q", cfg.BaseAPIURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"complete", Config{APIKeyPublicID: "p", APIKeySecret: "s"}, nil},
		{"missing public ID", Config{APIKeySecret: "s"}, ErrMissingAPIKeyPublicID},
		{"missing secret", Config{APIKeyPublicID: "p"}, ErrMissingAPIKeySecret},
		{"missing both", Config{}, ErrMissingAPIKeyPublicID},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}
