// Package api provides the IronBox DX control-plane client.
package api

import (
	"errors"
	"fmt"
	"strings"
)

// RemoteCallError is returned for any control-plane call that completes the
// HTTP round trip with a non-200 status. Op names the failed operation; Body
// carries the raw response for diagnosis. No JSON parsing is attempted on a
// failed call.
type RemoteCallError struct {
	Op         string
	StatusCode int
	Body       []byte
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("%s failed: status %d", e.Op, e.StatusCode)
}

// ErrInvalidResponse indicates an HTTP 200 with an empty or null body on a
// route whose contract requires content. The initialize route is the
// prominent case; finalize's empty 200 body is its documented success shape
// and does not produce this error.
var ErrInvalidResponse = errors.New("remote service returned an empty or invalid response")

// AsRemoteCallError unwraps err to a *RemoteCallError if one is present.
func AsRemoteCallError(err error) (*RemoteCallError, bool) {
	var rce *RemoteCallError
	if errors.As(err, &rce) {
		return rce, true
	}
	return nil, false
}

// IsAlreadyExistsError checks whether a failed call indicates the target
// record already exists. ACL adds fail this way as a security precaution:
// the server preserves existing entries rather than upserting, so re-adding
// a present member must be removed-then-re-added instead.
func IsAlreadyExistsError(err error) bool {
	rce, ok := AsRemoteCallError(err)
	if !ok {
		return false
	}
	if rce.StatusCode == 409 {
		return true
	}
	body := strings.ToLower(string(rce.Body))
	return strings.Contains(body, "already exists") || strings.Contains(body, "duplicate")
}
