package step

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"maps"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/donaldgifford/prettierstep/internal/npm"
	"github.com/donaldgifford/prettierstep/internal/prettier"
)

// nodeModulesPrefix names the per-step install directory under the build dir.
const nodeModulesPrefix = "spotless-prettier-node-modules-"

// ConstructionError reports that a step could not be built from an
// otherwise resolved configuration.
type ConstructionError struct {
	Reason string
	Err    error
}

func (e *ConstructionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("building prettier step: %s: %v", e.Reason, e.Err)
	}
	return "building prettier step: " + e.Reason
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// Builder implements prettier.StepBuilder.
type Builder struct {
	FS       afero.Fs
	BaseDir  string
	BuildDir string
}

var _ prettier.StepBuilder = (*Builder)(nil)

// Build validates the dependencies and returns a *PrettierStep.
func (b *Builder) Build(deps map[string]string, files prettier.FileHandles, inline *orderedmap.OrderedMap[string, any]) (prettier.FormatterStep, error) {
	if len(deps) == 0 {
		return nil, &ConstructionError{Reason: "no dev dependencies"}
	}
	if _, ok := deps[npm.PrettierPackage]; !ok {
		return nil, &ConstructionError{Reason: fmt.Sprintf("dev dependencies do not include %q", npm.PrettierPackage)}
	}
	for _, name := range slices.Sorted(maps.Keys(deps)) {
		if err := npm.ValidateVersionSpec(deps[name]); err != nil {
			return nil, &ConstructionError{Reason: "dependency " + name, Err: err}
		}
	}

	return &PrettierStep{
		fs:             b.FS,
		deps:           maps.Clone(deps),
		inline:         inline,
		configFile:     files.ConfigFile,
		nodeModulesDir: filepath.Join(b.BuildDir, nodeModulesPrefix+dependencyHash(deps)),
		npm:            npm.NewPathResolver(b.FS, files.NpmExecutable, files.Npmrc, b.BaseDir),
	}, nil
}

// dependencyHash is a short stable hash of the dependency set, so steps
// with different dependencies never share an install directory.
func dependencyHash(deps map[string]string) string {
	h := sha256.New()
	for _, name := range slices.Sorted(maps.Keys(deps)) {
		fmt.Fprintf(h, "%s@%s\n", name, deps[name])
	}
	return hex.EncodeToString(h.Sum(nil))[:12]
}
