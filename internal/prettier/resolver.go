package prettier

import "errors"

// Resolver turns a RawStepConfig into a formatter step.
type Resolver struct {
	Paths    PathResolver
	Defaults DefaultDependencyProvider
	Builder  StepBuilder
}

// Resolve validates and resolves raw, then builds the step. Errors from the
// step builder are returned as is.
func (r *Resolver) Resolve(raw *RawStepConfig) (FormatterStep, error) {
	resolved, err := r.ResolveConfig(raw)
	if err != nil {
		return nil, err
	}
	return r.Builder.Build(resolved.Dependencies, resolved.Files, resolved.InlineConfig)
}

// ResolveConfig performs every resolution step except building.
func (r *Resolver) ResolveConfig(raw *RawStepConfig) (*ResolvedConfig, error) {
	if raw == nil {
		return nil, errors.New("prettier: nil step config")
	}

	source, err := ParseDependencySource(raw)
	if err != nil {
		return nil, err
	}

	deps := source.Dependencies(r.Defaults)
	if deps == nil {
		deps = map[string]string{}
	}

	files, err := r.locateFiles(raw)
	if err != nil {
		return nil, err
	}

	return &ResolvedConfig{
		Dependencies: deps,
		InlineConfig: CoerceOptions(raw.Config),
		Files:        files,
	}, nil
}

func (r *Resolver) locateFiles(raw *RawStepConfig) (FileHandles, error) {
	var files FileHandles

	refs := []struct {
		field string
		path  string
		dst   *string
	}{
		{FieldNpmExecutable, raw.NpmExecutable, &files.NpmExecutable},
		{FieldNpmrc, raw.Npmrc, &files.Npmrc},
		{FieldConfigFile, raw.ConfigFile, &files.ConfigFile},
	}

	for _, ref := range refs {
		if ref.path == "" {
			continue
		}
		located, err := r.Paths.Locate(ref.path)
		if err != nil {
			return FileHandles{}, &PathNotFoundError{Field: ref.field, Path: ref.path, Err: err}
		}
		*ref.dst = located
	}

	return files, nil
}
