package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// configFileNames is the ordered list of config file names to search for.
var configFileNames = []string{
	"prettierstep.yml",
	"prettierstep.yaml",
	".prettierstep.yml",
	".prettierstep.yaml",
}

// Discover returns the path of the first config file found in dir,
// following the standard search order. It returns an empty string if
// no config file is found.
func Discover(dir string) string {
	return DiscoverFS(afero.NewOsFs(), dir)
}

// DiscoverFS is Discover over fsys.
func DiscoverFS(fsys afero.Fs, dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := fsys.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads and parses a prettierstep config file. If configPath is
// non-empty, that file is loaded directly. Otherwise, Load searches the
// current working directory using Discover. If no config file is found,
// DefaultConfig is returned with BaseDir set to the working directory.
//
// Partial YAML files are supported: any fields not specified in the YAML
// retain their default values. A relative base_dir is taken relative to the
// config file.
func Load(configPath string) (*Config, error) {
	return LoadFS(afero.NewOsFs(), configPath)
}

// LoadFS is Load reading from fsys. The working directory is still taken
// from the process.
func LoadFS(fsys afero.Fs, configPath string) (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	if configPath == "" {
		configPath = DiscoverFS(fsys, wd)
	}

	if configPath == "" {
		cfg := DefaultConfig()
		cfg.BaseDir = wd
		return cfg, nil
	}

	data, err := afero.ReadFile(fsys, configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
	}

	configDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, fmt.Errorf("resolving config directory: %w", err)
	}
	switch {
	case cfg.BaseDir == "":
		cfg.BaseDir = configDir
	case !filepath.IsAbs(cfg.BaseDir):
		cfg.BaseDir = filepath.Join(configDir, cfg.BaseDir)
	}

	return cfg, nil
}

// Parse decodes YAML config data on top of DefaultConfig. BaseDir is left
// as written.
func Parse(data []byte) (*Config, error) {
	// Start from defaults so missing YAML fields retain non-zero defaults.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
