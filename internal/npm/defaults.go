// Package npm provides the npm-side collaborators of a Prettier step:
// default dependency sets, npm executable and .npmrc lookup, and the
// package manifest the step installs from.
package npm

// DefaultPrettierVersion is the Prettier version used when a step declares
// no dependencies at all.
const DefaultPrettierVersion = "2.0.5"

// PrettierPackage is the npm package name of Prettier.
const PrettierPackage = "prettier"

// Defaults is the built-in default dependency provider.
type Defaults struct{}

// Defaults returns the default dev dependencies.
func (Defaults) Defaults() map[string]string {
	return withPrettier(DefaultPrettierVersion)
}

// DefaultsForVersion returns the default dev dependencies pinned to the
// given Prettier version.
func (Defaults) DefaultsForVersion(version string) map[string]string {
	return withPrettier(version)
}

func withPrettier(version string) map[string]string {
	return map[string]string{PrettierPackage: version}
}
