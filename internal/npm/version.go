package npm

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// distTagPattern matches npm dist-tags such as "latest" or "next".
var distTagPattern = regexp.MustCompile(`^[a-z][a-z0-9._-]*$`)

// ValidateVersionSpec reports whether spec is something npm can install:
// a dist-tag, a URL, path or protocol spec, or a semver range.
func ValidateVersionSpec(spec string) error {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return errors.New("empty version")
	}
	if distTagPattern.MatchString(spec) {
		return nil
	}
	if strings.ContainsAny(spec, ":/") {
		return nil
	}
	if _, err := semver.NewConstraint(spec); err != nil {
		return fmt.Errorf("invalid version %q: %w", spec, err)
	}
	return nil
}
