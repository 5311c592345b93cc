package prettier

import (
	"errors"
	"fmt"
)

// ErrConflictingDependencySources is returned when more than one of
// prettier_version, dev_dependencies and dev_dependency_properties is set.
var ErrConflictingDependencySources = errors.New("must specify exactly one prettierVersion, devDependencies or devDependencyProperties")

// Field names reported by PathNotFoundError.
const (
	FieldNpmExecutable = "npmExecutable"
	FieldNpmrc         = "npmrc"
	FieldConfigFile    = "configFile"
)

// PathNotFoundError reports a path reference that could not be located.
type PathNotFoundError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("locating %s: %v", e.Field, e.Err)
}

func (e *PathNotFoundError) Unwrap() error {
	return e.Err
}
