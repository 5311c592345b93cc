package npm

import (
	"encoding/json"
	"fmt"
)

// Manifest fields of the generated package.json.
const (
	manifestName    = "spotless-prettier-formatter-step"
	manifestVersion = "1.0.0"
)

type manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Private         bool              `json:"private"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// PackageJSON renders the package manifest for the given dev dependencies.
// encoding/json sorts map keys, so the output is deterministic.
func PackageJSON(deps map[string]string) ([]byte, error) {
	if deps == nil {
		deps = map[string]string{}
	}
	data, err := json.MarshalIndent(manifest{
		Name:            manifestName,
		Version:         manifestVersion,
		Description:     "Prettier formatter step",
		Private:         true,
		DevDependencies: deps,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("rendering package.json: %w", err)
	}
	return append(data, '\n'), nil
}
