// Package scaffold sequences a plugin scaffold: fetch the boilerplate, lay
// out the plugin tree, rename identifiers and register the autoloader.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/spf13/afero"

	"github.com/wpscaffold/cli/internal/boilerplate"
	oerrors "github.com/wpscaffold/cli/internal/errors"
	"github.com/wpscaffold/cli/internal/fileop"
	"github.com/wpscaffold/cli/internal/layout"
	"github.com/wpscaffold/cli/internal/manifest"
	"github.com/wpscaffold/cli/internal/output"
	"github.com/wpscaffold/cli/internal/prompt"
	"github.com/wpscaffold/cli/internal/substitute"
)

// Options are the per-invocation inputs of a scaffold.
type Options struct {
	// Folder is the plugin directory name and text domain.
	Folder string

	// Components are raw component identifiers; unknown ones are ignored.
	Components []string

	// BoilerplateVersion is a tag or branch; empty means Latest.
	BoilerplateVersion string

	// NoAutoload skips composer.json registration.
	NoAutoload bool

	// ManifestPath locates composer.json. Its directory is the project root.
	ManifestPath string

	// Yes skips the component confirmation.
	Yes bool
}

// Result describes a completed scaffold.
type Result struct {
	Variant         layout.Variant
	InstallPath     string
	AutoloadPath    string
	Components      []layout.Component
	Created         []string
	Warnings        []string
	Params          Parameters
	ManifestUpdated bool
}

// Scaffolder runs scaffolds against a filesystem.
type Scaffolder struct {
	Fs       afero.Fs
	Fetcher  *boilerplate.Fetcher
	Prompter prompt.Prompter

	// PackageName names the boilerplate package when resolving archives.
	PackageName string

	// CacheDir overrides <project>/<vendor-dir>/boilerplate.
	CacheDir string

	// MaxAttempts bounds each question's ask-confirm loop; 0 means unbounded.
	MaxAttempts int

	// Vocabulary lists the components that may be selected.
	Vocabulary []layout.Component
}

// run carries the state of one Run call.
type run struct {
	*Scaffolder
	opts   Options
	result *Result

	ref        boilerplate.Reference
	components []layout.Component
	project    string
	doc        *manifest.Document
	docFound   bool
	cacheDir   string
	plan       layout.Plan
	vocabulary []layout.Component
}

// Run performs a scaffold. Fatal conditions stop the run immediately and
// nothing already written is rolled back. A declined confirmation returns
// an error wrapping ErrDeclined.
func (s *Scaffolder) Run(ctx context.Context, opts Options) (*Result, error) {
	r := &run{Scaffolder: s, opts: opts, result: &Result{}}

	steps := []struct {
		state State
		fn    func(context.Context) error
	}{
		{CollectingInputs, r.collectInputs},
		{ConfirmingComponents, r.confirmComponents},
		{CheckingTargetAbsence, r.checkTarget},
		{Fetching, r.fetch},
		{ValidatingFetch, r.validateFetch},
		{ClassifyingLayout, r.classify},
		{ExecutingFileOps, r.executeFileOps},
		{RewritingIdentifiers, r.rewriteIdentifiers},
		{CollectingParameters, r.collectParameters},
		{RewritingParameters, r.rewriteParameters},
		{RegisteringManifest, r.registerManifest},
	}

	for _, step := range steps {
		output.Debug("scaffold step", "state", step.state)
		if err := ctx.Err(); err != nil {
			return r.result, err
		}
		if err := step.fn(ctx); err != nil {
			output.StepLogger(step.state.String()).Debug("scaffold stopped", "error", err)
			return r.result, err
		}
	}
	output.Debug("scaffold step", "state", Done)

	return r.result, nil
}

func (r *run) warn(msg string, keyvals ...interface{}) {
	output.Warn(msg, keyvals...)
	r.result.Warnings = append(r.result.Warnings, msg)
}

func (r *run) collectInputs(_ context.Context) error {
	folder := strings.TrimSpace(r.opts.Folder)
	if err := validateFolder(folder); err != nil {
		return err
	}
	if !slug.IsSlug(folder) {
		r.warn(fmt.Sprintf("folder name %q is not a slug; consider %q", folder, slug.Make(folder)))
	}
	r.result.Params.Folder = folder

	r.vocabulary = r.Vocabulary
	if r.vocabulary == nil {
		r.vocabulary = layout.Vocabulary
	}
	r.components, _ = layout.ParseComponents(r.vocabulary, r.opts.Components)

	ref, err := boilerplate.ParseReference(r.PackageName, r.opts.BoilerplateVersion)
	if err != nil {
		return err
	}
	r.ref = ref

	manifestPath := r.opts.ManifestPath
	if manifestPath == "" {
		manifestPath = "composer.json"
	}
	r.opts.ManifestPath = manifestPath
	r.project = filepath.Dir(manifestPath)

	r.doc, r.docFound, err = readManifest(r.Fs, manifestPath)
	if err != nil {
		return err
	}
	if !r.docFound {
		r.warn(fmt.Sprintf("%s not found; using default vendor and plugin directories", manifestPath))
	}

	output.Println(output.FormatBanner("", "WordPress plugin generator", ""))
	output.Println("")
	output.Println("Scaffolding plugin: " + output.StyleNoun.Render(folder))
	output.Println("")
	return nil
}

func (r *run) confirmComponents(_ context.Context) error {
	if len(r.components) > 0 {
		output.Println("You have selected those components for your plugin: " +
			output.FormatList(layout.Names(r.components)))
	} else {
		output.Println("You have not selected any additional components for your plugin")
		output.Println("(Available components are: " + output.FormatList(layout.Names(r.vocabulary)) + ")")
	}

	if r.opts.Yes {
		return nil
	}
	ok, err := r.Prompter.Confirm("Is that OK for you?", true)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("component selection: %w", oerrors.ErrDeclined)
	}
	return nil
}

func (r *run) checkTarget(_ context.Context) error {
	rel := r.doc.InstallPath(r.result.Params.Folder, manifest.PluginPackageType)
	r.result.InstallPath = filepath.Join(r.project, filepath.FromSlash(rel))

	exists, err := afero.Exists(r.Fs, r.result.InstallPath)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", r.result.InstallPath, err)
	}
	if exists {
		return oerrors.NewExistsError(r.result.InstallPath)
	}
	return nil
}

func (r *run) fetch(ctx context.Context) error {
	r.cacheDir = r.cacheDirFor(r.project, r.doc)

	return output.RunWithSpinner(ctx, func(ctx context.Context) error {
		return r.Fetcher.Ensure(ctx, r.ref, r.cacheDir)
	}, output.WithTitle("Fetching plugin boilerplate"))
}

func (r *run) validateFetch(_ context.Context) error {
	if !r.Fetcher.Cached(r.cacheDir) {
		return oerrors.NewFetchError(r.ref.DistURL(r.Fetcher.Repository), r.cacheDir, nil)
	}
	return nil
}

func (r *run) classify(_ context.Context) error {
	variant, err := layout.Detect(r.Fs, r.cacheDir)
	if err != nil {
		return err
	}
	r.result.Variant = variant
	output.Debug("detected boilerplate layout", "variant", variant)

	resolver := &layout.Resolver{Fs: r.Fs, Root: r.cacheDir, Variant: variant, Vocabulary: r.vocabulary}
	p, err := resolver.Plan(r.result.Params.Folder+".php", r.components)
	if err != nil {
		return err
	}
	for _, w := range p.Warnings {
		r.result.Warnings = append(r.result.Warnings, w.String())
	}
	r.result.Components = p.Components
	r.plan = p
	return nil
}

func (r *run) executeFileOps(_ context.Context) error {
	created, err := fileop.NewExecutor(r.Fs).Execute(r.cacheDir, r.result.InstallPath, r.plan.Ops)
	r.result.Created = created
	return err
}

func (r *run) rewriteIdentifiers(_ context.Context) error {
	_, err := substitute.ReplaceAll(r.Fs, r.result.InstallPath, r.result.Params.identifierRules()...)
	return err
}

func (r *run) collectParameters(_ context.Context) error {
	loop := &prompt.Loop{Prompter: r.Prompter, MaxAttempts: r.MaxAttempts}
	p := &r.result.Params

	output.Println("")
	for _, q := range []struct {
		question string
		dest     *string
	}{
		{HumanNameQuestion, &p.HumanName},
		{NamespaceQuestion, &p.Namespace},
		{ConstantsPrefixQuestion, &p.ConstantsPrefix},
		{ViewFolderQuestion, &p.ViewFolder},
	} {
		answer, err := loop.AskAndConfirm(q.question, "")
		if err != nil {
			return err
		}
		*q.dest = answer
	}
	p.ConstantsPrefix = prompt.NormalizeConstantsPrefix(p.ConstantsPrefix)
	return nil
}

func (r *run) rewriteParameters(_ context.Context) error {
	_, err := substitute.ReplaceAll(r.Fs, r.result.InstallPath, r.result.Params.parameterRules()...)
	return err
}

func (r *run) registerManifest(_ context.Context) error {
	if r.opts.NoAutoload {
		output.Debug("autoload registration disabled")
		return nil
	}
	if r.result.Variant != layout.PSR4 {
		output.Debug("legacy boilerplate ships its own autoloader; composer.json left untouched")
		return nil
	}
	if !r.docFound {
		return oerrors.NewManifestError("reading composer.json", r.opts.ManifestPath, os.ErrNotExist)
	}

	dir, err := autoloadDir(r.project, r.result.InstallPath)
	if err != nil {
		return oerrors.NewManifestError("computing autoload directory", r.result.InstallPath, err)
	}

	// The file may have been edited while the prompts were open.
	doc, err := manifest.Read(r.Fs, r.opts.ManifestPath)
	if err != nil {
		return err
	}
	if err := doc.RegisterAutoload(r.result.Params.Namespace, dir); err != nil {
		return err
	}
	if err := manifest.Write(r.Fs, r.opts.ManifestPath, doc); err != nil {
		return err
	}
	r.doc = doc

	r.result.AutoloadPath = dir
	r.result.ManifestUpdated = true
	output.Info("registered PSR-4 namespace", "namespace", r.result.Params.Namespace+`\`, "path", dir)
	return nil
}

// autoloadDir is the slash-separated classes directory relative to project.
func autoloadDir(project, installPath string) (string, error) {
	rel, err := filepath.Rel(project, installPath)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join(rel, "classes")) + "/", nil
}

func validateFolder(folder string) error {
	switch {
	case folder == "":
		return oerrors.NewValidationError("plugin folder name is required", "", "Pass the folder name as the first argument.")
	case folder == "." || folder == "..", strings.ContainsAny(folder, `/\`):
		return oerrors.NewValidationError(fmt.Sprintf("invalid plugin folder name %q", folder), "",
			"Use a single directory name such as 'my-plugin'.")
	}
	return nil
}

// IsDeclined reports whether err ends a run at the user's request.
func IsDeclined(err error) bool {
	return errors.Is(err, oerrors.ErrDeclined)
}
