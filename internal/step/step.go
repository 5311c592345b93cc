// Package step builds the immutable Prettier formatter step from a resolved
// configuration.
package step

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"maps"
	"path/filepath"

	"github.com/spf13/afero"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/donaldgifford/prettierstep/internal/npm"
)

// Name is the name of every Prettier step.
const Name = "prettier-format"

// PrettierStep is a ready-to-run Prettier step. It is not modified after
// construction.
type PrettierStep struct {
	fs             afero.Fs
	deps           map[string]string
	inline         *orderedmap.OrderedMap[string, any]
	configFile     string
	nodeModulesDir string
	npm            *npm.PathResolver
}

// Name implements prettier.FormatterStep.
func (s *PrettierStep) Name() string { return Name }

// Dependencies returns a copy of the npm dev dependencies.
func (s *PrettierStep) Dependencies() map[string]string {
	return maps.Clone(s.deps)
}

// InlineConfig returns the typed inline options, or nil when none were
// declared. Callers must not modify it.
func (s *PrettierStep) InlineConfig() *orderedmap.OrderedMap[string, any] { return s.inline }

// ConfigFile returns the located Prettier config file, or "".
func (s *PrettierStep) ConfigFile() string { return s.configFile }

// NodeModulesDir is where the step's npm packages are installed.
func (s *PrettierStep) NodeModulesDir() string { return s.nodeModulesDir }

// Npm returns the npm path resolver of the step.
func (s *PrettierStep) Npm() *npm.PathResolver { return s.npm }

// state is the canonical input to Fingerprint.
type state struct {
	Dependencies map[string]string                   `json:"dependencies"`
	Inline       *orderedmap.OrderedMap[string, any] `json:"inline,omitempty"`
	InlineSet    bool                                `json:"inlineSet"`
	ConfigFile   string                              `json:"configFile,omitempty"`
	Npmrc        string                              `json:"npmrc,omitempty"`
}

// Fingerprint identifies everything that influences formatting output:
// dependencies, inline options, config file content and .npmrc content.
func (s *PrettierStep) Fingerprint() (string, error) {
	st := state{
		Dependencies: s.deps,
		Inline:       s.inline,
		InlineSet:    s.inline != nil,
	}

	if s.configFile != "" {
		data, err := afero.ReadFile(s.fs, s.configFile)
		if err != nil {
			return "", fmt.Errorf("reading prettier config %s: %w", s.configFile, err)
		}
		st.ConfigFile = string(data)
	}

	npmrc, err := s.npm.NpmrcContent()
	if err != nil {
		return "", err
	}
	st.Npmrc = npmrc

	data, err := json.Marshal(st)
	if err != nil {
		return "", fmt.Errorf("encoding step state: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Prepare writes package.json, and .npmrc when one applies, into the node
// modules directory. It does not run npm.
func (s *PrettierStep) Prepare() error {
	if err := s.fs.MkdirAll(s.nodeModulesDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", s.nodeModulesDir, err)
	}

	manifest, err := npm.PackageJSON(s.deps)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(s.fs, filepath.Join(s.nodeModulesDir, "package.json"), manifest, 0o644); err != nil {
		return fmt.Errorf("writing package.json: %w", err)
	}

	npmrc, err := s.npm.NpmrcContent()
	if err != nil {
		return err
	}
	if npmrc != "" {
		if err := afero.WriteFile(s.fs, filepath.Join(s.nodeModulesDir, ".npmrc"), []byte(npmrc), 0o644); err != nil {
			return fmt.Errorf("writing .npmrc: %w", err)
		}
	}
	return nil
}
