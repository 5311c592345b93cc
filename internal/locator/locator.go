// Package locator resolves file references from the pipeline configuration
// against the project base directory.
package locator

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is returned when a referenced file does not exist.
var ErrNotFound = errors.New("unable to locate file")

// Locator finds files relative to a base directory.
type Locator struct {
	fs       afero.Fs
	baseDir  string
	buildDir string
}

// New returns a Locator rooted at baseDir. A relative buildDir is taken
// relative to baseDir.
func New(fs afero.Fs, baseDir, buildDir string) *Locator {
	baseDir = filepath.Clean(baseDir)
	if !filepath.IsAbs(buildDir) {
		buildDir = filepath.Join(baseDir, buildDir)
	}
	return &Locator{fs: fs, baseDir: baseDir, buildDir: filepath.Clean(buildDir)}
}

// BaseDir returns the directory relative paths are resolved against.
func (l *Locator) BaseDir() string { return l.baseDir }

// BuildDir returns the directory steps may write build artifacts into.
func (l *Locator) BuildDir() string { return l.buildDir }

// Locate returns the cleaned path of an existing file. A blank path is not
// an error and yields "".
func (l *Locator) Locate(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", nil
	}

	candidate := path
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(l.baseDir, candidate)
	}
	candidate = filepath.Clean(candidate)

	info, err := l.fs.Stat(candidate)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	case err != nil:
		return "", fmt.Errorf("checking %s: %w", candidate, err)
	case info.IsDir():
		return "", fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}
	return candidate, nil
}
