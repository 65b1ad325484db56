package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveEdlPathsExpandsDirectoryGlob(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.edl")
	b := filepath.Join(dir, "b.edl")
	other := filepath.Join(dir, "notes.txt")
	for _, p := range []string{a, b, other} {
		if err := os.WriteFile(p, []byte(""), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	got, err := resolveEdlPaths(dir)
	if err != nil {
		t.Fatalf("resolveEdlPaths: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 .edl files, got %v", got)
	}
}

func TestResolveEdlPathsSplitsCommaList(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.edl")
	b := filepath.Join(dir, "b.edl")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte(""), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	got, err := resolveEdlPaths(a + "," + b)
	if err != nil {
		t.Fatalf("resolveEdlPaths: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 paths, got %v", got)
	}
}

func TestResolveEdlPathsMissingFileErrors(t *testing.T) {
	if _, err := resolveEdlPaths(filepath.Join(t.TempDir(), "missing.edl")); err == nil {
		t.Fatal("expected an error for a missing path")
	}
}
