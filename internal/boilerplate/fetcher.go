package boilerplate

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/wpscaffold/cli/internal/errors"
	"github.com/wpscaffold/cli/internal/output"
)

// DefaultMarker is the file whose presence proves a usable boilerplate copy.
const DefaultMarker = "bea-plugin-boilerplate.php"

// Package is a resolved, downloadable boilerplate distribution.
type Package struct {
	Name     string
	DistURL  string
	DistType string

	archive string
}

// Source retrieves packages. Download must complete before Install.
type Source interface {
	Resolve(name, distURL string) (*Package, error)
	Download(ctx context.Context, pkg *Package, path string) error
	Install(ctx context.Context, pkg *Package, path string) error
}

// Fetcher ensures a boilerplate copy exists in a cache directory.
type Fetcher struct {
	Fs         afero.Fs
	Source     Source
	Repository string
	Marker     string
}

// NewFetcher returns a fetcher with the default marker.
func NewFetcher(fs afero.Fs, source Source, repository string) *Fetcher {
	return &Fetcher{Fs: fs, Source: source, Repository: repository, Marker: DefaultMarker}
}

func (f *Fetcher) marker() string {
	if f.Marker == "" {
		return DefaultMarker
	}
	return f.Marker
}

// Cached reports whether dir already holds a boilerplate copy.
func (f *Fetcher) Cached(dir string) bool {
	ok, err := afero.Exists(f.Fs, filepath.Join(dir, f.marker()))
	return err == nil && ok
}

// Ensure makes dir hold the boilerplate described by ref. A cached copy is
// used as is, whatever version it was fetched at.
func (f *Fetcher) Ensure(ctx context.Context, ref Reference, dir string) error {
	if f.Cached(dir) {
		output.Debug("using cached boilerplate", "dir", dir)
		return nil
	}

	url := ref.DistURL(f.Repository)
	output.Debug("fetching boilerplate", "ref", ref.String(), "url", url, "dir", dir)

	pkg, err := f.Source.Resolve(ref.Name, url)
	if err != nil {
		return oerrors.NewFetchError(url, dir, err)
	}
	if err := f.Source.Download(ctx, pkg, dir); err != nil {
		return oerrors.NewFetchError(url, dir, err)
	}
	if err := f.Source.Install(ctx, pkg, dir); err != nil {
		return oerrors.NewFetchError(url, dir, err)
	}

	if !f.Cached(dir) {
		return oerrors.NewFetchError(url, dir, nil)
	}
	return nil
}
