package npm

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrNpmNotFound is returned when no npm executable was configured and none
// could be found on the system.
var ErrNpmNotFound = errors.New("can't automatically determine npm executable and none was specifically supplied; " +
	"set npm_executable or the NPM environment variable")

// PathResolver finds the npm executable and .npmrc for a step. Lookups run
// when called, not when the resolver is constructed.
type PathResolver struct {
	fs            afero.Fs
	explicitNpm   string
	explicitNpmrc string
	baseDir       string

	// Overridable for tests.
	getenv   func(string) string
	lookPath func(string) (string, error)
	homeDir  func() (string, error)
}

// NewPathResolver returns a PathResolver. explicitNpm and explicitNpmrc are
// already located paths or "".
func NewPathResolver(fs afero.Fs, explicitNpm, explicitNpmrc, baseDir string) *PathResolver {
	return &PathResolver{
		fs:            fs,
		explicitNpm:   explicitNpm,
		explicitNpmrc: explicitNpmrc,
		baseDir:       baseDir,
		getenv:        os.Getenv,
		lookPath:      exec.LookPath,
		homeDir:       os.UserHomeDir,
	}
}

// ExplicitNpm returns the configured npm executable, if any.
func (r *PathResolver) ExplicitNpm() string { return r.explicitNpm }

// ExplicitNpmrc returns the configured .npmrc path, if any.
func (r *PathResolver) ExplicitNpmrc() string { return r.explicitNpmrc }

// NpmExecutable returns the npm executable to use. Search order: explicit
// path, $NPM, $NVM_BIN/npm, then PATH.
func (r *PathResolver) NpmExecutable() (string, error) {
	if r.explicitNpm != "" {
		return r.explicitNpm, nil
	}
	if npm := r.getenv("NPM"); npm != "" {
		return npm, nil
	}
	if nvmBin := r.getenv("NVM_BIN"); nvmBin != "" {
		candidate := filepath.Join(nvmBin, "npm")
		if ok, _ := afero.Exists(r.fs, candidate); ok {
			return candidate, nil
		}
	}
	if path, err := r.lookPath("npm"); err == nil {
		return path, nil
	}
	return "", ErrNpmNotFound
}

// NpmrcContent returns the content of the .npmrc to use, or "" when there is
// none. Search order: explicit path, <baseDir>/.npmrc, ~/.npmrc.
func (r *PathResolver) NpmrcContent() (string, error) {
	for _, candidate := range r.npmrcCandidates() {
		data, err := afero.ReadFile(r.fs, candidate)
		if err == nil {
			return string(data), nil
		}
		// Only the fallbacks may be missing.
		if r.explicitNpmrc != "" || !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("reading %s: %w", candidate, err)
		}
	}
	return "", nil
}

func (r *PathResolver) npmrcCandidates() []string {
	if r.explicitNpmrc != "" {
		return []string{r.explicitNpmrc}
	}
	var candidates []string
	if r.baseDir != "" {
		candidates = append(candidates, filepath.Join(r.baseDir, ".npmrc"))
	}
	if home, err := r.homeDir(); err == nil && home != "" {
		candidates = append(candidates, filepath.Join(home, ".npmrc"))
	}
	return candidates
}
