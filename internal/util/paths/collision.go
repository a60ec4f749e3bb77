// Package paths provides destination-path helpers for blob downloads.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// NextAvailablePath returns destination unchanged when nothing exists
// there; otherwise it probes "(1)name", "(2)name", ... in the same
// directory until a free path is found. The "(n)" prefix convention matches
// the service's other clients, so files downloaded side by side with them
// collide predictably.
func NextAvailablePath(destination string) string {
	if !pathExists(destination) {
		return destination
	}

	dir, name := filepath.Split(destination)
	for count := 1; ; count++ {
		candidate := filepath.Join(dir, fmt.Sprintf("(%d)%s", count, name))
		if !pathExists(candidate) {
			return candidate
		}
	}
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
