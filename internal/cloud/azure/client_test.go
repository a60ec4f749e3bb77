package azure

import (
	"testing"
)

func TestStorageAccountName(t *testing.T) {
	tests := []struct {
		uri     string
		want    string
		wantErr bool
	}{
		{"https://myaccount.blob.core.windows.net/container/blob?sv=2021", "myaccount", false},
		{"https://other.blob.core.windows.net/?sv=2021&sig=abc", "other", false},
		{"https://singlelabel/container", "singlelabel", false},
		{"https:///nohost", "", true},
		{"://bad uri", "", true},
	}
	for _, tc := range tests {
		got, err := StorageAccountName(tc.uri)
		if tc.wantErr {
			if err == nil {
				t.Errorf("StorageAccountName(%q): expected error, got %q", tc.uri, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("StorageAccountName(%q): %v", tc.uri, err)
			continue
		}
		if got != tc.want {
			t.Errorf("StorageAccountName(%q) = %q, want %q", tc.uri, got, tc.want)
		}
	}
}

func TestNewClientRejectsBadSignatureURI(t *testing.T) {
	if _, err := NewClient("://bad uri", "token", nil); err == nil {
		t.Error("NewClient accepted an unparseable signature URI")
	}
}

func TestNewClientFromHandshake(t *testing.T) {
	c, err := NewClient("https://myaccount.blob.core.windows.net/store?sv=2021", "sv=2021&sig=abc", nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.client == nil {
		t.Error("underlying azblob client is nil")
	}
}
