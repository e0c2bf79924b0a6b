package version

import (
	"bytes"
	"context"
	"os/exec"
	"regexp"
	"time"

	"github.com/Masterminds/semver/v3"
)

// composerVersionRegex matches output like "Composer version 2.7.1 2024-02-09 15:26:28".
var composerVersionRegex = regexp.MustCompile(`\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// composerConstraint is the range of Composer versions the generated autoload entries target.
const composerConstraint = ">= 2.0.0"

// ComposerInfo describes the composer binary found on PATH.
type ComposerInfo struct {
	// Version is the composer version without a "v" prefix.
	Version string `json:"version"`

	// Path is the path to the composer binary.
	Path string `json:"path"`

	// Found indicates if composer was found.
	Found bool `json:"found"`

	// Compatible indicates the version satisfies composerConstraint.
	Compatible bool `json:"compatible"`

	// Message provides additional information.
	Message string `json:"message,omitempty"`
}

// DetectComposer finds the composer binary and checks its version.
func DetectComposer() ComposerInfo {
	path, err := exec.LookPath("composer")
	if err != nil {
		return ComposerInfo{Message: "composer not found in PATH"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--version", "--no-ansi")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return ComposerInfo{
			Path:    path,
			Found:   true,
			Message: "failed to get composer version: " + err.Error(),
		}
	}

	return inspectComposerOutput(path, out.String())
}

// inspectComposerOutput parses `composer --version` output.
func inspectComposerOutput(path, output string) ComposerInfo {
	info := ComposerInfo{Path: path, Found: true}

	match := composerVersionRegex.FindString(output)
	if match == "" {
		info.Message = "failed to parse composer version from output: " + output
		return info
	}
	info.Version = match

	v, err := semver.NewVersion(match)
	if err != nil {
		info.Message = err.Error()
		return info
	}

	c, err := semver.NewConstraint(composerConstraint)
	if err != nil {
		info.Message = err.Error()
		return info
	}

	info.Compatible = c.Check(v)
	if info.Compatible {
		info.Message = "compatible"
	} else {
		info.Message = "incompatible - composer " + composerConstraint + " required"
	}
	return info
}

// String returns a human-readable composer info string.
func (c ComposerInfo) String() string {
	if !c.Found {
		return "  Version: not found\n  Path:    -"
	}
	if c.Version == "" {
		return "  Version: unknown (" + c.Message + ")\n  Path:    " + c.Path
	}
	return "  Version: " + c.Version + " (" + c.Message + ")\n  Path:    " + c.Path
}
