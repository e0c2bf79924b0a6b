// Package boilerplate resolves and materializes the plugin boilerplate.
package boilerplate

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"

	oerrors "github.com/wpscaffold/cli/internal/errors"
)

// Latest selects the repository's default branch.
const Latest = "Latest"

// Reference names a boilerplate package and the version to fetch.
type Reference struct {
	Name    string
	Version string
}

// ParseReference validates name and version. An empty version means Latest.
func ParseReference(name, version string) (Reference, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Reference{}, oerrors.NewValidationError("boilerplate package name is empty", "",
			"Set boilerplate.name in the config file.")
	}

	if version == "" {
		version = Latest
	}
	if strings.ContainsRune(version, '/') || strings.IndexFunc(version, unicode.IsSpace) >= 0 {
		return Reference{}, oerrors.NewValidationError(
			fmt.Sprintf("invalid boilerplate version %q", version), "",
			"Use a tag or branch name of the boilerplate repository, or 'Latest'.")
	}

	return Reference{Name: name, Version: version}, nil
}

// IsLatest reports whether the reference tracks the default branch.
func (r Reference) IsLatest() bool {
	return r.Version == "" || r.Version == Latest
}

// DistURL returns the zip archive URL of the reference in repository.
func (r Reference) DistURL(repository string) string {
	repository = strings.TrimSuffix(repository, "/")
	if r.IsLatest() {
		return repository + "/archive/master.zip"
	}
	return fmt.Sprintf("%s/archive/%s.zip", repository, r.Version)
}

// Release returns the parsed semantic version when the tag is a release.
func (r Reference) Release() (*semver.Version, bool) {
	if r.IsLatest() {
		return nil, false
	}
	v, err := semver.NewVersion(r.Version)
	if err != nil {
		return nil, false
	}
	return v, true
}

func (r Reference) String() string {
	version := r.Version
	if version == "" {
		version = Latest
	}
	return r.Name + "@" + version
}
