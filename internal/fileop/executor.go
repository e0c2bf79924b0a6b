// Package fileop executes layout plans against a filesystem.
package fileop

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/wpscaffold/cli/internal/errors"
	"github.com/wpscaffold/cli/internal/layout"
	"github.com/wpscaffold/cli/internal/output"
)

const dirPerm = 0o755

// Executor applies file operations in order. There is no rollback: on
// failure, everything already created stays in place.
type Executor struct {
	Fs afero.Fs
}

// NewExecutor returns an executor bound to fs.
func NewExecutor(fs afero.Fs) *Executor {
	return &Executor{Fs: fs}
}

// Execute moves files from src into a new plugin root dst. dst must not
// exist. It returns the created paths relative to dst, in order; directories
// carry a trailing slash.
func (e *Executor) Execute(src, dst string, ops []layout.FileOp) ([]string, error) {
	exists, err := afero.Exists(e.Fs, dst)
	if err != nil {
		return nil, fmt.Errorf("inspecting %s: %w", dst, err)
	}
	if exists {
		return nil, oerrors.NewExistsError(dst)
	}

	if err := e.Fs.MkdirAll(dst, dirPerm); err != nil {
		return nil, oerrors.NewFilesystemError("Couldn't create the plugin directory.", dst, err)
	}

	created := make([]string, 0, len(ops))
	for _, op := range ops {
		switch op.Kind {
		case layout.MakeDir:
			if err := e.mkdir(filepath.Join(dst, op.Dest), op.Parents); err != nil {
				return created, err
			}
			created = append(created, op.Dest+"/")
		case layout.Move:
			from := filepath.Join(src, op.Source)
			to := filepath.Join(dst, op.Dest)
			if err := e.move(from, to); err != nil {
				return created, err
			}
			created = append(created, op.Dest)
		default:
			return created, fmt.Errorf("unknown file operation kind %d", op.Kind)
		}
		output.Debug("applied file operation", "op", op.String())
	}

	return created, nil
}

func (e *Executor) mkdir(dir string, parents bool) error {
	var err error
	if parents {
		err = e.Fs.MkdirAll(dir, dirPerm)
	} else {
		err = e.Fs.Mkdir(dir, dirPerm)
	}
	if err == nil {
		return nil
	}
	if ok, _ := afero.DirExists(e.Fs, dir); ok {
		return nil
	}
	return oerrors.NewFilesystemError("Couldn't create directory.", dir, err)
}

func (e *Executor) move(from, to string) error {
	info, err := e.Fs.Stat(from)
	if err != nil {
		return oerrors.NewNotFoundError("boilerplate file is missing", from,
			"The cached boilerplate is incomplete; remove it and fetch again.")
	}
	if info.IsDir() {
		return oerrors.NewFilesystemError("expected a file, found a directory", from, nil)
	}

	if err := e.Fs.Rename(from, to); err == nil {
		return nil
	}

	// Rename fails across devices; copy then remove instead.
	if err := copyFile(e.Fs, from, to, info.Mode().Perm()); err != nil {
		return oerrors.NewFilesystemError("Couldn't move boilerplate file.", to, err)
	}
	if err := e.Fs.Remove(from); err != nil {
		return oerrors.NewFilesystemError("Couldn't remove moved boilerplate file.", from, err)
	}
	return nil
}

func copyFile(fs afero.Fs, from, to string, perm os.FileMode) error {
	in, err := fs.Open(from)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fs.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
