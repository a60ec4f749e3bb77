package cli

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/goironbox/ironboxdx-go/internal/config"
)

func TestRedactSecret(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "(not set)"},
		{"abc", "****"},
		{"abcd", "****"},
		{"abcdefgh", "abcd****"},
	}
	for _, tc := range tests {
		if got := redactSecret(tc.in); got != tc.want {
			t.Errorf("redactSecret(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSplitEmailList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a@b.c", []string{"a@b.c"}},
		{"a@b.c,d@e.f", []string{"a@b.c", "d@e.f"}},
		{" a@b.c , ,d@e.f ", []string{"a@b.c", "d@e.f"}},
	}
	for _, tc := range tests {
		if got := splitEmailList(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitEmailList(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLoadConfigFlagPriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apiconfig")
	if err := config.SaveAPIConfig(path, &config.APIConfig{
		APIURL:         "https://file.example/api/v2/",
		APIKeyPublicID: "file-pub",
		APIKeySecret:   "file-sec",
	}); err != nil {
		t.Fatal(err)
	}

	defer func() {
		cfgFile, apiPublicID, apiSecret, apiBaseURL = "", "", "", ""
	}()

	cfgFile = path
	apiPublicID = ""
	apiSecret = ""
	apiBaseURL = ""

	cfg := loadConfig()
	if cfg.APIKeyPublicID != "file-pub" || cfg.APIKeySecret != "file-sec" {
		t.Errorf("file credentials not used: %q/%q", cfg.APIKeyPublicID, cfg.APIKeySecret)
	}
	if cfg.BaseAPIURL != "https://file.example/api/v2/" {
		t.Errorf("file API URL not used: %q", cfg.BaseAPIURL)
	}

	apiPublicID = "flag-pub"
	apiSecret = "flag-sec"
	apiBaseURL = "https://flag.example/api/v2/"

	cfg = loadConfig()
	if cfg.APIKeyPublicID != "flag-pub" || cfg.APIKeySecret != "flag-sec" {
		t.Errorf("flag credentials not used: %q/%q", cfg.APIKeyPublicID, cfg.APIKeySecret)
	}
	if cfg.BaseAPIURL != "https://flag.example/api/v2/" {
		t.Errorf("flag API URL not used: %q", cfg.BaseAPIURL)
	}
}
