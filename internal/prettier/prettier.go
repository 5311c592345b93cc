// Package prettier resolves a Prettier step declaration into a single,
// fully typed configuration and hands it to a step builder.
package prettier

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// RawStepConfig is the loosely typed step declaration as it arrives from the
// pipeline configuration. An empty string counts as absent. A nil map counts
// as absent; an empty non-nil map is present.
type RawStepConfig struct {
	PrettierVersion         string
	DevDependencies         map[string]string
	DevDependencyProperties map[string]string

	// Config holds inline Prettier options in declaration order.
	Config *orderedmap.OrderedMap[string, string]

	ConfigFile    string
	NpmExecutable string
	Npmrc         string
}

// FileHandles carries located file paths. An empty string means the file
// was not configured.
type FileHandles struct {
	NpmExecutable string
	Npmrc         string
	ConfigFile    string
}

// ResolvedConfig is the fully typed result of resolving a RawStepConfig.
type ResolvedConfig struct {
	// Dependencies is never nil.
	Dependencies map[string]string

	// InlineConfig is nil when no inline options were declared. An empty
	// map means the options were declared and explicitly left empty.
	InlineConfig *orderedmap.OrderedMap[string, any]

	Files FileHandles
}

// FormatterStep is a ready-to-run step produced by a StepBuilder.
type FormatterStep interface {
	Name() string
}

// PathResolver locates a path reference. A blank path resolves to "" with
// no error.
type PathResolver interface {
	Locate(path string) (string, error)
}

// DefaultDependencyProvider supplies the built-in dependency sets.
type DefaultDependencyProvider interface {
	Defaults() map[string]string
	DefaultsForVersion(version string) map[string]string
}

// StepBuilder constructs the formatter step from a resolved configuration.
type StepBuilder interface {
	Build(deps map[string]string, files FileHandles, inline *orderedmap.OrderedMap[string, any]) (FormatterStep, error)
}
