// Package steps manages registration of formatter step factories.
package steps

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/donaldgifford/prettierstep/internal/config"
	"github.com/donaldgifford/prettierstep/internal/locator"
	"github.com/donaldgifford/prettierstep/internal/npm"
	"github.com/donaldgifford/prettierstep/internal/prettier"
)

// Env carries what a factory needs to build a step. All file access goes
// through FS. A relative BuildDir is taken relative to BaseDir.
type Env struct {
	FS       afero.Fs
	BaseDir  string
	BuildDir string
	Defaults prettier.DefaultDependencyProvider
}

// NewEnv returns an Env using the stock npm defaults.
func NewEnv(fs afero.Fs, baseDir, buildDir string) *Env {
	return &Env{FS: fs, BaseDir: baseDir, BuildDir: buildDir, Defaults: npm.Defaults{}}
}

// Locator returns a locator over the env's filesystem and directories.
func (e *Env) Locator() *locator.Locator {
	return locator.New(e.FS, e.BaseDir, e.BuildDir)
}

// Factory turns a step declaration of one kind into a formatter step.
type Factory interface {
	// Kind returns the config key for this step kind (e.g., "prettier").
	Kind() string

	// Declared reports whether decl configures this kind.
	Declared(decl *config.Step) bool

	// NewFormatterStep resolves decl and builds the step.
	NewFormatterStep(decl *config.Step, env *Env) (prettier.FormatterStep, error)
}

var factories []Factory

// Register adds a factory to the registry. Factories are consulted in the
// order they are registered. Registering a kind twice panics.
func Register(f Factory) {
	if _, ok := Lookup(f.Kind()); ok {
		panic(fmt.Sprintf("steps: factory %q registered twice", f.Kind()))
	}
	factories = append(factories, f)
}

// Lookup returns the factory for kind.
func Lookup(kind string) (Factory, bool) {
	for _, f := range factories {
		if f.Kind() == kind {
			return f, true
		}
	}
	return nil, false
}

// Kinds returns all registered kinds in registration order.
func Kinds() []string {
	kinds := make([]string, 0, len(factories))
	for _, f := range factories {
		kinds = append(kinds, f.Kind())
	}
	return kinds
}

// For returns the factory that handles decl.
func For(decl *config.Step) (Factory, error) {
	for _, f := range factories {
		if f.Declared(decl) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("step %q declares no known step kind (known: %v)", decl.Name, Kinds())
}
