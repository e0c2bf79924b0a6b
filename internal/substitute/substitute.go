// Package substitute rewrites literal placeholders across a directory tree.
package substitute

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DefaultExtension is the file extension rewritten when a Rule leaves it empty.
const DefaultExtension = "php"

// Rule is one literal, case-sensitive replacement applied tree-wide.
type Rule struct {
	Needle      string
	Replacement string

	// Extension selects files by name suffix ".<Extension>", case-insensitively.
	Extension string
}

func (r Rule) extension() string {
	if r.Extension == "" {
		return DefaultExtension
	}
	return strings.TrimPrefix(r.Extension, ".")
}

// Matches reports whether a file path is selected by the rule's extension filter.
func (r Rule) Matches(path string) bool {
	return strings.HasSuffix(strings.ToLower(filepath.Base(path)), "."+strings.ToLower(r.extension()))
}

// Replace walks root in pre-order and rewrites every matching file in full.
// It returns the number of files whose content changed. An empty needle is a no-op.
func Replace(fs afero.Fs, root string, rule Rule) (int, error) {
	if root == "" || rule.Needle == "" {
		return 0, nil
	}

	needle := []byte(rule.Needle)
	replacement := []byte(rule.Replacement)
	changed := 0

	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() || !rule.Matches(path) {
			return nil
		}

		content, err := afero.ReadFile(fs, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if !bytes.Contains(content, needle) {
			return nil
		}

		out := bytes.ReplaceAll(content, needle, replacement)
		if err := afero.WriteFile(fs, path, out, info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		changed++
		return nil
	})
	if err != nil {
		return changed, fmt.Errorf("replacing %q in %s: %w", rule.Needle, root, err)
	}

	return changed, nil
}

// ReplaceAll applies rules in order, each as a complete tree pass.
func ReplaceAll(fs afero.Fs, root string, rules ...Rule) (int, error) {
	total := 0
	for _, rule := range rules {
		n, err := Replace(fs, root, rule)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
