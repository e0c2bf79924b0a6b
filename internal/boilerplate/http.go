package boilerplate

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/wpscaffold/cli/internal/output"
	"github.com/wpscaffold/cli/internal/version"
)

const defaultHTTPTimeout = 5 * time.Minute

// HTTPSource downloads zip distributions over HTTP and unpacks them.
type HTTPSource struct {
	Fs        afero.Fs
	Client    *http.Client
	UserAgent string
}

// NewHTTPSource returns a source writing to fs.
func NewHTTPSource(fs afero.Fs) *HTTPSource {
	return &HTTPSource{
		Fs:        fs,
		Client:    &http.Client{Timeout: defaultHTTPTimeout},
		UserAgent: "wpscaffold/" + version.Get().Version,
	}
}

// Resolve validates the dist URL and describes the package.
func (s *HTTPSource) Resolve(name, distURL string) (*Package, error) {
	u, err := url.Parse(distURL)
	if err != nil {
		return nil, fmt.Errorf("parsing dist URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported dist URL scheme %q", u.Scheme)
	}
	return &Package{Name: name, DistURL: distURL, DistType: "zip"}, nil
}

// Download streams the archive next to path.
func (s *HTTPSource) Download(ctx context.Context, pkg *Package, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pkg.DistURL, nil)
	if err != nil {
		return fmt.Errorf("creating download request: %w", err)
	}
	req.Header.Set("User-Agent", s.UserAgent)

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", pkg.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	parent := filepath.Dir(filepath.Clean(dest))
	if err := s.Fs.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("creating download directory: %w", err)
	}

	tmp, err := afero.TempFile(s.Fs, parent, "boilerplate-*.zip")
	if err != nil {
		return fmt.Errorf("creating download file: %w", err)
	}
	n, err := io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = s.Fs.Remove(tmp.Name())
		return fmt.Errorf("saving download: %w", err)
	}

	output.Debug("downloaded boilerplate archive", "bytes", n, "archive", tmp.Name())
	pkg.archive = tmp.Name()
	return nil
}

// Install extracts the downloaded archive into dest, dropping the single
// top-level directory GitHub archives carry. The archive is removed afterwards.
func (s *HTTPSource) Install(ctx context.Context, pkg *Package, dest string) error {
	if pkg.archive == "" {
		return fmt.Errorf("package %s has not been downloaded", pkg.Name)
	}
	defer func() {
		_ = s.Fs.Remove(pkg.archive)
		pkg.archive = ""
	}()

	f, err := s.Fs.Open(pkg.archive)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	reader, err := zip.NewReader(f, info.Size())
	if err != nil {
		return fmt.Errorf("opening zip archive: %w", err)
	}

	return extract(ctx, s.Fs, reader.File, dest)
}

func extract(ctx context.Context, fs afero.Fs, files []*zip.File, dest string) error {
	dest = filepath.Clean(dest)
	if err := fs.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}

	prefix := commonRoot(files)
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := strings.TrimPrefix(file.Name, prefix)
		if name == "" || file.Name+"/" == prefix {
			continue
		}

		target := filepath.Join(dest, filepath.FromSlash(name))
		if !within(dest, target) {
			return fmt.Errorf("archive entry %q escapes the destination", file.Name)
		}

		mode := file.Mode()
		switch {
		case mode.IsDir():
			if err := fs.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case mode.IsRegular():
			if err := writeEntry(fs, file, target); err != nil {
				return fmt.Errorf("extracting %s: %w", file.Name, err)
			}
		default:
			output.Debug("skipping archive entry", "entry", file.Name, "mode", mode)
		}
	}
	return nil
}

func writeEntry(fs afero.Fs, file *zip.File, target string) error {
	if err := fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	rc, err := file.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	perm := file.Mode().Perm()
	if perm == 0 {
		perm = 0o644
	}
	out, err := fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// commonRoot returns "<dir>/" when every entry lives under one top-level
// directory, and "" otherwise.
func commonRoot(files []*zip.File) string {
	root := ""
	for _, f := range files {
		name := path.Clean(f.Name)
		top, _, nested := strings.Cut(name, "/")
		if !nested && !f.Mode().IsDir() {
			return ""
		}
		if root == "" {
			root = top
		} else if top != root {
			return ""
		}
	}
	if root == "" || root == "." || root == ".." {
		return ""
	}
	return root + "/"
}

func within(dir, target string) bool {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
