package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNextAvailablePath_NoCollision(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "report.txt")

	if got := NextAvailablePath(dest); got != dest {
		t.Errorf("expected %s, got %s", dest, got)
	}
}

func TestNextAvailablePath_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "report.txt")
	if err := os.WriteFile(dest, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	want := filepath.Join(dir, "(1)report.txt")
	if got := NextAvailablePath(dest); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestNextAvailablePath_SkipsTakenCandidates(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "report.txt")
	for _, name := range []string{"report.txt", "(1)report.txt", "(2)report.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	want := filepath.Join(dir, "(3)report.txt")
	if got := NextAvailablePath(dest); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
