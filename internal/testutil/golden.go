// Package testutil provides shared test helpers for golden file testing.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

// Update is a flag that, when set, regenerates golden files from current output.
// Usage: go test ./... -update
var Update = flag.Bool("update", false, "update golden files")

// ExpectedFile is the golden file name inside each case directory.
const ExpectedFile = "expected.txt"

// RunFunc produces the output for the case stored in dir.
type RunFunc func(t *testing.T, dir string) string

// hexPattern matches content hashes, which change with any input byte.
var hexPattern = regexp.MustCompile(`\b[0-9a-f]{12}(?:[0-9a-f]{52})?\b`)

// MaskHashes replaces 12 and 64 character hex hashes with <hash>.
func MaskHashes(s string) string {
	return hexPattern.ReplaceAllString(s, "<hash>")
}

// RunGolden runs a single golden file test in the given directory.
// It applies runFn to dir and compares against expected.txt.
func RunGolden(t *testing.T, dir string, runFn RunFunc) {
	t.Helper()

	expectedPath := filepath.Join(dir, ExpectedFile)
	actual := runFn(t, dir)

	if *Update {
		if err := os.WriteFile(expectedPath, []byte(actual), 0o644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", expectedPath, err)
		}
		t.Logf("updated golden file: %s", expectedPath)
		return
	}

	expectedBytes, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", expectedPath, err)
	}

	expected := string(expectedBytes)
	if actual != expected {
		t.Errorf("output mismatch for %s:\n--- expected\n%s\n--- actual\n%s", dir, expected, actual)
	}
}

// RunGoldenDir walks all subdirectories under testdataDir and runs
// RunGolden for each as a subtest.
func RunGoldenDir(t *testing.T, testdataDir string, runFn RunFunc) {
	t.Helper()

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		t.Fatalf("failed to read testdata dir %s: %v", testdataDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		t.Run(entry.Name(), func(t *testing.T) {
			dir := filepath.Join(testdataDir, entry.Name())
			RunGolden(t, dir, runFn)
		})
	}
}
