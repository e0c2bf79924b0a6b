package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/wpscaffold/cli/internal/boilerplate"
	oerrors "github.com/wpscaffold/cli/internal/errors"
	"github.com/wpscaffold/cli/internal/manifest"
	"github.com/wpscaffold/cli/internal/output"
)

// PrefetchResult describes a boilerplate cache warm-up.
type PrefetchResult struct {
	Reference boilerplate.Reference
	Dir       string

	// Cached is true when the boilerplate was already present and nothing was downloaded.
	Cached bool
}

// Prefetch materializes the boilerplate in the cache Run would use, without
// scaffolding a plugin. With refresh, an existing cache is removed first.
func (s *Scaffolder) Prefetch(ctx context.Context, version, manifestPath string, refresh bool) (*PrefetchResult, error) {
	ref, err := boilerplate.ParseReference(s.PackageName, version)
	if err != nil {
		return nil, err
	}
	if manifestPath == "" {
		manifestPath = "composer.json"
	}

	doc, _, err := readManifest(s.Fs, manifestPath)
	if err != nil {
		return nil, err
	}

	res := &PrefetchResult{
		Reference: ref,
		Dir:       s.cacheDirFor(filepath.Dir(manifestPath), doc),
	}

	if refresh {
		output.Debug("removing cached boilerplate", "path", res.Dir)
		if err := s.Fs.RemoveAll(res.Dir); err != nil {
			return res, oerrors.NewFilesystemError("Couldn't remove the cached boilerplate.", res.Dir, err)
		}
	}

	if s.Fetcher.Cached(res.Dir) {
		res.Cached = true
		return res, nil
	}

	err = output.RunWithSpinner(ctx, func(ctx context.Context) error {
		return s.Fetcher.Ensure(ctx, ref, res.Dir)
	}, output.WithTitle("Fetching plugin boilerplate"))
	return res, err
}

// cacheDirFor is CacheDir, or <vendor-dir>/boilerplate under project.
func (s *Scaffolder) cacheDirFor(project string, doc *manifest.Document) string {
	if s.CacheDir != "" {
		return s.CacheDir
	}
	return filepath.Join(project, filepath.FromSlash(doc.VendorDir()), "boilerplate")
}

// readManifest reads composer.json, falling back to an empty document when absent.
func readManifest(fs afero.Fs, path string) (*manifest.Document, bool, error) {
	found, err := afero.Exists(fs, path)
	if err != nil {
		return nil, false, fmt.Errorf("inspecting %s: %w", path, err)
	}
	if !found {
		return manifest.Empty(), false, nil
	}
	doc, err := manifest.Read(fs, path)
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}
