package generator

import (
	"errors"
	"fmt"
	"strings"
)

// FormatVersion tags the catalog layout. Readers accept any version that
// shares the major component of CurrentVersion; minor bumps may only add
// fields.
type FormatVersion string

// CurrentVersion is the version written by this generator.
const CurrentVersion FormatVersion = "1.0"

// ErrUnsupportedVersion is returned for catalogs with an incompatible major version.
var ErrUnsupportedVersion = errors.New("unsupported catalog version")

// Major returns the part before the first dot.
func (v FormatVersion) Major() string {
	major, _, _ := strings.Cut(string(v), ".")
	return major
}

// Compatible reports whether a catalog tagged v can be read by this build.
func (v FormatVersion) Compatible() error {
	if v == "" {
		return fmt.Errorf("%w: missing version", ErrUnsupportedVersion)
	}
	if v.Major() != CurrentVersion.Major() {
		return fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedVersion, v, CurrentVersion.Major())
	}
	return nil
}
