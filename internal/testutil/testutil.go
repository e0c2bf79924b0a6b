// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/wpscaffold/cli/internal/boilerplate"
)

// TempDir creates a temporary directory for tests and returns a cleanup function.
func TempDir(t *testing.T) (string, func()) {
	t.Helper()
	dir, err := os.MkdirTemp("", "wpscaffold-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	return dir, func() {
		if err := os.RemoveAll(dir); err != nil {
			t.Logf("warning: failed to remove temp dir %s: %v", dir, err)
		}
	}
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, fs afero.Fs, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// Fixture is a boilerplate tree keyed by slash-separated relative path.
type Fixture map[string]string

// Write materializes the fixture under dir.
func (f Fixture) Write(t *testing.T, fs afero.Fs, dir string) {
	t.Helper()
	for name, content := range f {
		WriteFile(t, fs, dir, filepath.FromSlash(name), content)
	}
}

// Without returns a copy of the fixture minus paths under any of prefixes.
func (f Fixture) Without(prefixes ...string) Fixture {
	out := make(Fixture, len(f))
next:
	for name, content := range f {
		for _, p := range prefixes {
			if name == p || len(name) > len(p) && name[:len(p)+1] == p+"/" {
				continue next
			}
		}
		out[name] = content
	}
	return out
}

const entryFile = `<?php
/*
 Plugin Name: BEA Plugin Name
 Text Domain: bea-plugin-boilerplate
*/
namespace BEA\PB;

define( 'BEA_PB_VERSION', '1.0.0' );
define( 'BEA_PB_VIEWS_FOLDER_NAME', 'bea-pb' );

function init_bea_pb_plugin() {
	Main::get_instance();
}
add_action( 'plugins_loaded', __NAMESPACE__ . '\\init_bea_pb_plugin' );
`

func class(name string) string {
	return "<?php\nnamespace BEA\\PB;\n\nclass " + name + " {\n\tconst PREFIX = BEA_PB_VERSION;\n}\n"
}

const view = "<?php // views for bea-pb, see BEA Plugin Name\n"

// LegacyBoilerplate mirrors the pre-PSR-4 boilerplate layout.
func LegacyBoilerplate() Fixture {
	return Fixture{
		"bea-plugin-boilerplate.php":               entryFile,
		"compat.php":                               "<?php\nnamespace BEA\\PB;\n",
		"autoload.php":                             "<?php\n// BEA\\PB autoloader\n",
		"readme.txt":                               "=== BEA Plugin Name ===\nbea-plugin-boilerplate\n",
		"classes/plugin.php":                       class("Plugin"),
		"classes/main.php":                         class("Main"),
		"classes/helpers.php":                      class("Helpers"),
		"classes/singleton.php":                    class("Singleton"),
		"classes/admin/main.php":                   class("Admin_Main"),
		"classes/controllers/controller.php":       class("Controller"),
		"classes/cron/cron.php":                    class("Cron"),
		"classes/models/model.php":                 class("Model"),
		"classes/models/user.php":                  class("User"),
		"classes/routes/router.php":                class("Router"),
		"classes/widgets/main.php":                 class("Widget"),
		"classes/shortcodes/shortcode.php":         class("Shortcode"),
		"classes/shortcodes/shortcode-factory.php": class("Shortcode_Factory"),
		"views/admin/widget.php":                   view,
		"views/client/widget.php":                  view,
	}
}

// PSR4Boilerplate mirrors the composer-autoloaded boilerplate layout.
func PSR4Boilerplate() Fixture {
	return Fixture{
		"bea-plugin-boilerplate.php":               entryFile,
		"compat.php":                               "<?php\nnamespace BEA\\PB;\n",
		"readme.txt":                               "=== BEA Plugin Name ===\nbea-plugin-boilerplate\n",
		"classes/Plugin.php":                       class("Plugin"),
		"classes/Main.php":                         class("Main"),
		"classes/Helpers.php":                      class("Helpers"),
		"classes/Singleton.php":                    class("Singleton"),
		"classes/Admin/Main.php":                   class("Main"),
		"classes/Controllers/Controller.php":       class("Controller"),
		"classes/Cron/Cron.php":                    class("Cron"),
		"classes/Models/Model.php":                 class("Model"),
		"classes/Models/User.php":                  class("User"),
		"classes/Routes/Router.php":                class("Router"),
		"classes/Widgets/Main.php":                 class("Main"),
		"classes/Shortcodes/Shortcode.php":         class("Shortcode"),
		"classes/Shortcodes/Shortcode_Factory.php": class("Shortcode_Factory"),
		"views/admin/widget.php":                   view,
		"views/client/widget.php":                  view,
	}
}

// FakeSource installs a fixture instead of downloading an archive.
type FakeSource struct {
	Fs      afero.Fs
	Fixture Fixture
	T       *testing.T

	// Err fails Download when set.
	Err error

	URLs []string
}

var _ boilerplate.Source = (*FakeSource)(nil)

func (s *FakeSource) Resolve(name, distURL string) (*boilerplate.Package, error) {
	s.URLs = append(s.URLs, distURL)
	return &boilerplate.Package{Name: name, DistURL: distURL, DistType: "zip"}, nil
}

func (s *FakeSource) Download(ctx context.Context, _ *boilerplate.Package, _ string) error {
	if s.Err != nil {
		return s.Err
	}
	return ctx.Err()
}

func (s *FakeSource) Install(_ context.Context, _ *boilerplate.Package, dir string) error {
	if s.Fixture == nil {
		return errors.New("fake source has no fixture")
	}
	s.Fixture.Write(s.T, s.Fs, dir)
	return nil
}

// Prompter replays scripted answers. Inputs are consumed by Input, Confirms
// by Confirm. Running out of script fails with ErrScriptExhausted, or with
// InputErr for Input when it is set.
type Prompter struct {
	Inputs   []string
	Confirms []bool
	InputErr error

	Asked     []string
	Confirmed []string
}

// ErrScriptExhausted is returned when a Prompter has no answer left.
var ErrScriptExhausted = errors.New("prompt script exhausted")

func (p *Prompter) Input(message string) (string, error) {
	p.Asked = append(p.Asked, message)
	if len(p.Inputs) == 0 {
		if p.InputErr != nil {
			return "", p.InputErr
		}
		return "", ErrScriptExhausted
	}
	v := p.Inputs[0]
	p.Inputs = p.Inputs[1:]
	return v, nil
}

func (p *Prompter) Confirm(message string, _ bool) (bool, error) {
	p.Confirmed = append(p.Confirmed, message)
	if len(p.Confirms) == 0 {
		return false, ErrScriptExhausted
	}
	v := p.Confirms[0]
	p.Confirms = p.Confirms[1:]
	return v, nil
}
