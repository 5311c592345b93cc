// Package config defines the pipeline configuration types and defaults for
// prettierstep.
package config

// Config is the top-level configuration.
type Config struct {
	// BaseDir is the directory file references are resolved against. When
	// empty, the directory of the loaded config file is used.
	BaseDir string `yaml:"base_dir"`

	// BuildDir receives per-step install directories. Relative to BaseDir.
	BuildDir string `yaml:"build_dir" validate:"required"`

	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// LogFormat selects text or json log lines.
	LogFormat string `yaml:"log_format" validate:"omitempty,oneof=text json"`

	Steps []Step `yaml:"steps" validate:"unique=Name,dive"`
}

// Step declares one formatter step of the pipeline.
type Step struct {
	Name     string        `yaml:"name" validate:"required"`
	Prettier *PrettierStep `yaml:"prettier" validate:"required"`
}

// PrettierStep holds the raw settings of a Prettier step as written in the
// config file. Nothing here is validated beyond YAML shape; resolution
// happens in package prettier.
type PrettierStep struct {
	PrettierVersion         string            `yaml:"prettier_version"`
	DevDependencies         map[string]string `yaml:"dev_dependencies"`
	DevDependencyProperties Properties        `yaml:"dev_dependency_properties"`
	Config                  *InlineOptions    `yaml:"config"`
	ConfigFile              string            `yaml:"config_file"`
	NpmExecutable           string            `yaml:"npm_executable"`
	Npmrc                   string            `yaml:"npmrc"`
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		BuildDir:  "build",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Lookup returns the step with the given name.
func (c *Config) Lookup(name string) (*Step, bool) {
	for i := range c.Steps {
		if c.Steps[i].Name == name {
			return &c.Steps[i], true
		}
	}
	return nil, false
}
