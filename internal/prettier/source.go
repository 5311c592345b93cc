package prettier

import "maps"

// DependencySource is where the dependency mapping of a step comes from.
// Exactly one of ByVersion, ByDependencyMap, ByProperties or DefaultSource.
type DependencySource interface {
	Dependencies(p DefaultDependencyProvider) map[string]string
	isDependencySource()
}

// ByVersion pins the default dependency set to a Prettier version.
type ByVersion string

// ByDependencyMap is an explicit package-name to version mapping.
type ByDependencyMap map[string]string

// ByProperties is a dependency mapping given as a properties bag.
type ByProperties map[string]string

// DefaultSource selects the built-in default dependency set.
type DefaultSource struct{}

func (v ByVersion) Dependencies(p DefaultDependencyProvider) map[string]string {
	return p.DefaultsForVersion(string(v))
}

func (m ByDependencyMap) Dependencies(DefaultDependencyProvider) map[string]string {
	out := make(map[string]string, len(m))
	maps.Copy(out, m)
	return out
}

func (m ByProperties) Dependencies(DefaultDependencyProvider) map[string]string {
	out := make(map[string]string, len(m))
	maps.Copy(out, m)
	return out
}

func (DefaultSource) Dependencies(p DefaultDependencyProvider) map[string]string {
	return p.Defaults()
}

func (ByVersion) isDependencySource()       {}
func (ByDependencyMap) isDependencySource() {}
func (ByProperties) isDependencySource()    {}
func (DefaultSource) isDependencySource()   {}

// ParseDependencySource validates that at most one dependency source is
// declared and returns it.
func ParseDependencySource(raw *RawStepConfig) (DependencySource, error) {
	if countSources(raw) > 1 {
		return nil, ErrConflictingDependencySources
	}
	return SelectDependencySource(raw), nil
}

// SelectDependencySource picks the dependency source without validating
// exclusivity. Precedence, highest first: version, properties, explicit
// map, defaults.
func SelectDependencySource(raw *RawStepConfig) DependencySource {
	switch {
	case raw.PrettierVersion != "":
		return ByVersion(raw.PrettierVersion)
	case raw.DevDependencyProperties != nil:
		return ByProperties(raw.DevDependencyProperties)
	case raw.DevDependencies != nil:
		return ByDependencyMap(raw.DevDependencies)
	default:
		return DefaultSource{}
	}
}

// countSources counts declared sources. Maps count when non-nil, even if
// empty; the version counts only when non-empty.
func countSources(raw *RawStepConfig) int {
	n := 0
	if raw.PrettierVersion != "" {
		n++
	}
	if raw.DevDependencies != nil {
		n++
	}
	if raw.DevDependencyProperties != nil {
		n++
	}
	return n
}
