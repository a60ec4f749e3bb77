package api

import (
	"errors"
	"fmt"
	"testing"
)

func TestRemoteCallErrorMessage(t *testing.T) {
	err := &RemoteCallError{Op: "create SSE container", StatusCode: 403, Body: []byte("denied")}
	want := "create SSE container failed: status 403"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestAsRemoteCallErrorUnwraps(t *testing.T) {
	inner := &RemoteCallError{Op: "op", StatusCode: 500}
	wrapped := fmt.Errorf("outer: %w", inner)

	rce, ok := AsRemoteCallError(wrapped)
	if !ok || rce != inner {
		t.Errorf("AsRemoteCallError(wrapped) = %v, %v; want inner, true", rce, ok)
	}

	if _, ok := AsRemoteCallError(errors.New("plain")); ok {
		t.Error("AsRemoteCallError matched a plain error")
	}
}

func TestIsAlreadyExistsError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"conflict status", &RemoteCallError{Op: "op", StatusCode: 409}, true},
		{"already exists body", &RemoteCallError{Op: "op", StatusCode: 400, Body: []byte(`{"message":"record already exists"}`)}, true},
		{"duplicate body", &RemoteCallError{Op: "op", StatusCode: 400, Body: []byte("Duplicate entry")}, true},
		{"unrelated failure", &RemoteCallError{Op: "op", StatusCode: 500, Body: []byte("boom")}, false},
		{"plain error", errors.New("already exists"), false},
		{"nil", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsAlreadyExistsError(tc.err); got != tc.want {
				t.Errorf("IsAlreadyExistsError = %v, want %v", got, tc.want)
			}
		})
	}
}
