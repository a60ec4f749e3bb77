package api

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/goironbox/ironboxdx-go/internal/config"
	"github.com/goironbox/ironboxdx-go/internal/logging"
	"github.com/goironbox/ironboxdx-go/internal/models"
)

const (
	testPublicID = "pub-0123"
	testSecret   = "sec-4567"
)

// newTestClient builds a client pointed at an httptest server running
// handler.
func newTestClient(t *testing.T, handler nethttp.Handler) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		APIKeyPublicID: testPublicID,
		APIKeySecret:   testSecret,
		BaseAPIURL:     srv.URL,
	}
	c, err := NewClient(cfg,
		WithHTTPClient(srv.Client()),
		WithLogger(logging.Nop()),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c, srv
}

func TestInvokeSendsSignedPost(t *testing.T) {
	var gotMethod, gotPath, gotPublicID, gotSecret, gotContentType string
	c, _ := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotPublicID = r.Header.Get("ironbox_apikey_publicid")
		gotSecret = r.Header.Get("ironbox_apikey_secret")
		gotContentType = r.Header.Get("Content-Type")
		json.NewEncoder(w).Encode(models.StorageEndpointList{})
	}))

	if _, err := c.ListStorageEndpoints(context.Background()); err != nil {
		t.Fatalf("ListStorageEndpoints: %v", err)
	}

	if gotMethod != nethttp.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotPath != "/dx/storage/list/api" {
		t.Errorf("path = %s, want /dx/storage/list/api", gotPath)
	}
	if gotPublicID != testPublicID {
		t.Errorf("public ID header = %q, want %q", gotPublicID, testPublicID)
	}
	if gotSecret != testSecret {
		t.Errorf("secret header = %q, want %q", gotSecret, testSecret)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q, want application/json", gotContentType)
	}
}

// Every operation must surface a non-200 response as a *RemoteCallError
// carrying the status and raw body, with no attempt to parse the body.
func TestOperationsReturnRemoteCallError(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		call func(c *Client) error
	}{
		{"ListStorageEndpoints", func(c *Client) error {
			_, err := c.ListStorageEndpoints(ctx)
			return err
		}},
		{"CreateContainer", func(c *Client) error {
			_, err := c.CreateContainer(ctx, &models.ContainerCreateRequest{Name: "x"})
			return err
		}},
		{"DeleteContainer", func(c *Client) error {
			return c.DeleteContainer(ctx, "cid")
		}},
		{"ListContainers", func(c *Client) error {
			_, err := c.ListContainers(ctx, false)
			return err
		}},
		{"ListContainerBlobs", func(c *Client) error {
			_, err := c.ListContainerBlobs(ctx, "cid", 0, 0, models.BlobStateReady)
			return err
		}},
		{"DeleteBlob", func(c *Client) error {
			return c.DeleteBlob(ctx, "bid")
		}},
		{"AddUserToContainerACL", func(c *Client) error {
			_, err := c.AddUserToContainerACL(ctx, &models.ACLUserAddRequest{ContainerPublicID: "cid"})
			return err
		}},
		{"AddSecurityGroupToContainerACL", func(c *Client) error {
			_, err := c.AddSecurityGroupToContainerACL(ctx, &models.ACLSecurityGroupAddRequest{ContainerPublicID: "cid"})
			return err
		}},
		{"ListContainerACLs", func(c *Client) error {
			_, err := c.ListContainerACLs(ctx, "cid")
			return err
		}},
		{"DeleteContainerACL", func(c *Client) error {
			return c.DeleteContainerACL(ctx, "cid", "mid")
		}},
		{"ContainerNotificationSettings", func(c *Client) error {
			_, err := c.ContainerNotificationSettings(ctx, "cid")
			return err
		}},
		{"SetContainerNotificationSettings", func(c *Client) error {
			return c.SetContainerNotificationSettings(ctx, "cid", nil, nil)
		}},
		{"ReadContainerMetadata", func(c *Client) error {
			_, err := c.ReadContainerMetadata(ctx, "cid")
			return err
		}},
		{"SetContainerMetadata", func(c *Client) error {
			return c.SetContainerMetadata(ctx, &models.ContainerMetadataSetRequest{ContainerPublicID: "cid"})
		}},
		{"ReadContainerDataTTL", func(c *Client) error {
			_, err := c.ReadContainerDataTTL(ctx, "cid")
			return err
		}},
		{"SetContainerDataTTL", func(c *Client) error {
			return c.SetContainerDataTTL(ctx, &models.ContainerDataTTL{ContainerPublicID: "cid"})
		}},
		{"ReadContainerLinkAccess", func(c *Client) error {
			_, err := c.ReadContainerLinkAccess(ctx, "cid")
			return err
		}},
		{"SetContainerLinkAccess", func(c *Client) error {
			return c.SetContainerLinkAccess(ctx, &models.ContainerLinkAccessSettings{PublicID: "cid"})
		}},
		{"CreateOrganizationEntity", func(c *Client) error {
			return c.CreateOrganizationEntity(ctx, &models.EntityCreateRequest{MemberEmail: "a@b.c"})
		}},
		{"SetEntityMembershipStatus", func(c *Client) error {
			return c.SetEntityMembershipStatus(ctx, "a@b.c", true)
		}},
		{"ListOrganizationEntities", func(c *Client) error {
			_, err := c.ListOrganizationEntities(ctx, 0, 10)
			return err
		}},
		{"ReadOrganizationEntity", func(c *Client) error {
			_, err := c.ReadOrganizationEntity(ctx, "a@b.c")
			return err
		}},
		{"CreateSecurityGroup", func(c *Client) error {
			_, err := c.CreateSecurityGroup(ctx, "group", true)
			return err
		}},
		{"DeleteSecurityGroup", func(c *Client) error {
			return c.DeleteSecurityGroup(ctx, "gid")
		}},
		{"UpdateSecurityGroup", func(c *Client) error {
			return c.UpdateSecurityGroup(ctx, &models.SecurityGroupUpdateRequest{CustomSecurityGroupPublicID: "gid"})
		}},
		{"AddSecurityGroupMember", func(c *Client) error {
			return c.AddSecurityGroupMember(ctx, "gid", "a@b.c")
		}},
		{"RemoveSecurityGroupMember", func(c *Client) error {
			return c.RemoveSecurityGroupMember(ctx, "gid", "a@b.c")
		}},
		{"ListSecurityGroups", func(c *Client) error {
			_, err := c.ListSecurityGroups(ctx)
			return err
		}},
		{"ReadSecurityGroup", func(c *Client) error {
			_, err := c.ReadSecurityGroup(ctx, "gid")
			return err
		}},
		{"ReadBuiltInSecurityGroup", func(c *Client) error {
			_, err := c.ReadBuiltInSecurityGroup(ctx, models.BuiltInGroupSSECreators)
			return err
		}},
		{"AddBuiltInSecurityGroupMember", func(c *Client) error {
			return c.AddBuiltInSecurityGroupMember(ctx, models.BuiltInGroupSSEReaders, "a@b.c")
		}},
		{"RemoveBuiltInSecurityGroupMember", func(c *Client) error {
			return c.RemoveBuiltInSecurityGroupMember(ctx, models.BuiltInGroupSSEReaders, "a@b.c")
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
				w.WriteHeader(nethttp.StatusInternalServerError)
				w.Write([]byte(`{"message":"boom"}`))
			}))

			err := tc.call(c)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			rce, ok := AsRemoteCallError(err)
			if !ok {
				t.Fatalf("expected *RemoteCallError, got %T: %v", err, err)
			}
			if rce.StatusCode != nethttp.StatusInternalServerError {
				t.Errorf("StatusCode = %d, want 500", rce.StatusCode)
			}
			if string(rce.Body) != `{"message":"boom"}` {
				t.Errorf("Body = %q, want raw server body", rce.Body)
			}
			if rce.Op == "" {
				t.Error("Op is empty")
			}
		})
	}
}

func TestEmptyBodyOnContentRoute(t *testing.T) {
	for _, body := range []string{"", "null", "{}"} {
		t.Run("body="+body, func(t *testing.T) {
			c, _ := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
				w.Write([]byte(body))
			}))

			_, err := c.ListContainers(context.Background(), false)
			if !errors.Is(err, ErrInvalidResponse) {
				t.Errorf("err = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestEmptyBodyOnNoResultRoute(t *testing.T) {
	c, _ := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		// Empty 200 is the documented success shape for deletes.
	}))

	if err := c.DeleteBlob(context.Background(), "bid"); err != nil {
		t.Errorf("DeleteBlob with empty 200 body: %v", err)
	}
}

func TestMalformedBodyOnContentRoute(t *testing.T) {
	c, _ := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))

	_, err := c.ListContainers(context.Background(), false)
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestListContainerBlobsDefaultsTake(t *testing.T) {
	var got models.BlobListRequest
	c, _ := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(models.BlobList{ContainerPublicID: "cid"})
	}))

	if _, err := c.ListContainerBlobs(context.Background(), "cid", 3, 0, models.BlobStateReady); err != nil {
		t.Fatalf("ListContainerBlobs: %v", err)
	}

	if got.TakeNumItems != 500 {
		t.Errorf("takeNumItems = %d, want server default 500", got.TakeNumItems)
	}
	if got.SkipPastNumItems != 3 {
		t.Errorf("skipPastNumItems = %d, want 3", got.SkipPastNumItems)
	}
	if got.State != models.BlobStateReady {
		t.Errorf("state = %d, want %d", got.State, models.BlobStateReady)
	}
}

func TestNewClientValidatesCredentials(t *testing.T) {
	_, err := NewClient(&config.Config{APIKeySecret: "s"})
	if !errors.Is(err, config.ErrMissingAPIKeyPublicID) {
		t.Errorf("err = %v, want ErrMissingAPIKeyPublicID", err)
	}

	_, err = NewClient(&config.Config{APIKeyPublicID: "p"})
	if !errors.Is(err, config.ErrMissingAPIKeySecret) {
		t.Errorf("err = %v, want ErrMissingAPIKeySecret", err)
	}
}

func TestEmptyJSON(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{"", true},
		{"  \n", true},
		{"null", true},
		{"{}", true},
		{`{"a":1}`, false},
		{"[]", false},
		{"0", false},
	}
	for _, tc := range tests {
		if got := emptyJSON([]byte(tc.body)); got != tc.want {
			t.Errorf("emptyJSON(%q) = %v, want %v", tc.body, got, tc.want)
		}
	}
}
