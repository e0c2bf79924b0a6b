// Package layout classifies a fetched boilerplate and plans the file
// operations that turn it into a plugin tree.
package layout

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	oerrors "github.com/wpscaffold/cli/internal/errors"
	"github.com/wpscaffold/cli/internal/output"
)

// Variant is the boilerplate's code layout generation.
type Variant int

const (
	// Legacy boilerplates ship autoload.php and lower-case class files.
	Legacy Variant = iota
	// PSR4 boilerplates use capitalized class files loaded by composer.
	PSR4
)

// LegacyMarker is the file whose presence identifies a Legacy boilerplate.
const LegacyMarker = "autoload.php"

// EntrySource is the boilerplate's plugin entry file, renamed to <folder>.php.
const EntrySource = "bea-plugin-boilerplate.php"

// String returns the human name of the variant.
func (v Variant) String() string {
	switch v {
	case Legacy:
		return "legacy"
	case PSR4:
		return "psr-4"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Detect classifies the boilerplate rooted at root.
func Detect(fs afero.Fs, root string) (Variant, error) {
	isDir, err := afero.DirExists(fs, root)
	if err != nil {
		return Legacy, fmt.Errorf("inspecting %s: %w", root, err)
	}
	if !isDir {
		return Legacy, oerrors.NewNotFoundError("boilerplate directory does not exist", root,
			"Run 'wpscaffold boilerplate fetch' or remove the cache directory to fetch it again.")
	}

	legacy, err := afero.Exists(fs, filepath.Join(root, LegacyMarker))
	if err != nil {
		return Legacy, fmt.Errorf("inspecting %s: %w", root, err)
	}
	if legacy {
		return Legacy, nil
	}
	return PSR4, nil
}

// OpKind distinguishes directory creation from file moves.
type OpKind int

const (
	// MakeDir creates a directory under the plugin root.
	MakeDir OpKind = iota
	// Move relocates a boilerplate file into the plugin.
	Move
)

// String returns the operation verb.
func (k OpKind) String() string {
	if k == MakeDir {
		return "mkdir"
	}
	return "move"
}

// FileOp is one step of a plan. Source is relative to the boilerplate root,
// Dest to the plugin root. MakeDir ops only use Dest.
type FileOp struct {
	Kind    OpKind
	Source  string
	Dest    string
	Parents bool
}

func (op FileOp) String() string {
	if op.Kind == MakeDir {
		return "mkdir " + op.Dest
	}
	return fmt.Sprintf("move %s -> %s", op.Source, op.Dest)
}

// Warning is a non-fatal planning outcome.
type Warning struct {
	Component Component
	Reason    string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s component skipped: %s", w.Component, w.Reason)
}

// Plan is the ordered list of operations for one scaffold.
type Plan struct {
	Variant    Variant
	Ops        []FileOp
	Components []Component
	Warnings   []Warning
}

// Resolver builds plans for a boilerplate at Root.
type Resolver struct {
	Fs      afero.Fs
	Root    string
	Variant Variant
	// Vocabulary orders and bounds the components a plan may include.
	// Nil means the package Vocabulary.
	Vocabulary []Component
}

// Plan returns the base operations followed by each selected component's
// operations in vocabulary order. entryFile is the destination name of the
// plugin entry file.
func (r *Resolver) Plan(entryFile string, components []Component) (Plan, error) {
	if strings.TrimSpace(entryFile) == "" || strings.ContainsAny(entryFile, `/\`) {
		return Plan{}, oerrors.NewValidationError(
			fmt.Sprintf("invalid plugin entry file name %q", entryFile), "", "")
	}

	base, ok := baseFiles[r.Variant]
	if !ok {
		return Plan{}, fmt.Errorf("no layout known for variant %s", r.Variant)
	}

	plan := Plan{Variant: r.Variant}
	for _, op := range base {
		if op.Kind == Move && op.Source == EntrySource {
			op.Dest = entryFile
		}
		plan.Ops = append(plan.Ops, op)
	}

	selected := make(map[Component]bool, len(components))
	for _, c := range components {
		selected[c] = true
	}

	vocabulary := r.Vocabulary
	if vocabulary == nil {
		vocabulary = Vocabulary
	}
	for _, c := range vocabulary {
		if !selected[c] {
			continue
		}
		if reason, ok := r.supports(c); !ok {
			w := Warning{Component: c, Reason: reason}
			output.Warn(w.String())
			plan.Warnings = append(plan.Warnings, w)
			continue
		}
		plan.Ops = append(plan.Ops, componentFiles[r.Variant][c]...)
		plan.Components = append(plan.Components, c)
	}

	output.Debug("planned file operations",
		"variant", r.Variant, "ops", len(plan.Ops), "components", len(plan.Components))

	return plan, nil
}

// supports reports whether the boilerplate can provide component c, with a
// reason when it cannot.
func (r *Resolver) supports(c Component) (string, bool) {
	if c != Widget {
		return "", true
	}
	ok, err := afero.DirExists(r.Fs, filepath.Join(r.Root, "views"))
	if err != nil || !ok {
		return "the boilerplate has no views directory", false
	}
	return "", true
}

func mkdir(dir string) FileOp {
	return FileOp{Kind: MakeDir, Dest: dir}
}

func mkdirAll(dir string) FileOp {
	return FileOp{Kind: MakeDir, Dest: dir, Parents: true}
}

// move keeps the same relative path on both sides.
func move(rel string) FileOp {
	return FileOp{Kind: Move, Source: rel, Dest: rel}
}

func moves(dir string, names ...string) []FileOp {
	ops := make([]FileOp, 0, len(names))
	for _, name := range names {
		ops = append(ops, move(path.Join(dir, name)))
	}
	return ops
}

func join(groups ...[]FileOp) []FileOp {
	var out []FileOp
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
