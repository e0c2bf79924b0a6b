package substitute

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTree(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return fs
}

func read(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestReplace_RewritesMatchingFilesRecursively(t *testing.T) {
	fs := newTree(t, map[string]string{
		"/p/my-plugin.php":          "Text Domain: bea-plugin-boilerplate",
		"/p/classes/Main.php":       "__( 'x', 'bea-plugin-boilerplate' ); 'bea-plugin-boilerplate'",
		"/p/classes/Admin/Main.PHP": "bea-plugin-boilerplate",
		"/p/readme.txt":             "bea-plugin-boilerplate",
	})

	n, err := Replace(fs, "/p", Rule{Needle: "bea-plugin-boilerplate", Replacement: "my-plugin"})
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, "Text Domain: my-plugin", read(t, fs, "/p/my-plugin.php"))
	assert.Equal(t, "__( 'x', 'my-plugin' ); 'my-plugin'", read(t, fs, "/p/classes/Main.php"))
	assert.Equal(t, "my-plugin", read(t, fs, "/p/classes/Admin/Main.PHP"))
	assert.Equal(t, "bea-plugin-boilerplate", read(t, fs, "/p/readme.txt"), "non-php files are untouched")
}

func TestReplace_CaseSensitive(t *testing.T) {
	fs := newTree(t, map[string]string{"/p/a.php": "BEA_PB_ bea_pb_"})

	_, err := Replace(fs, "/p", Rule{Needle: "BEA_PB_", Replacement: "MY_"})
	require.NoError(t, err)
	assert.Equal(t, "MY_ bea_pb_", read(t, fs, "/p/a.php"))
}

func TestReplace_Idempotent(t *testing.T) {
	fs := newTree(t, map[string]string{"/p/a.php": `namespace BEA\PB; use BEA\PB\Helpers;`})
	rule := Rule{Needle: `BEA\PB`, Replacement: `Acme\Shop`}

	_, err := Replace(fs, "/p", rule)
	require.NoError(t, err)
	once := read(t, fs, "/p/a.php")

	n, err := Replace(fs, "/p", rule)
	require.NoError(t, err)

	assert.Equal(t, 0, n, "second pass changes nothing")
	assert.Equal(t, once, read(t, fs, "/p/a.php"))
	assert.Equal(t, `namespace Acme\Shop; use Acme\Shop\Helpers;`, once)
}

func TestReplace_ExtensionIsSuffixNotSubstring(t *testing.T) {
	fs := newTree(t, map[string]string{
		"/php-sites/p/phpfoo.txt": "needle",
		"/php-sites/p/notes.phps": "needle",
		"/php-sites/p/plugin.php": "needle",
	})

	n, err := Replace(fs, "/php-sites/p", Rule{Needle: "needle", Replacement: "pin"})
	require.NoError(t, err)

	assert.Equal(t, 1, n)
	assert.Equal(t, "needle", read(t, fs, "/php-sites/p/phpfoo.txt"))
	assert.Equal(t, "needle", read(t, fs, "/php-sites/p/notes.phps"))
	assert.Equal(t, "pin", read(t, fs, "/php-sites/p/plugin.php"))
}

func TestReplace_CustomExtension(t *testing.T) {
	fs := newTree(t, map[string]string{
		"/p/readme.txt": "BEA Plugin Name",
		"/p/a.php":      "BEA Plugin Name",
	})

	_, err := Replace(fs, "/p", Rule{Needle: "BEA Plugin Name", Replacement: "Shop", Extension: ".txt"})
	require.NoError(t, err)

	assert.Equal(t, "Shop", read(t, fs, "/p/readme.txt"))
	assert.Equal(t, "BEA Plugin Name", read(t, fs, "/p/a.php"))
}

func TestReplace_EmptyNeedleIsNoop(t *testing.T) {
	fs := newTree(t, map[string]string{"/p/a.php": "abc"})

	n, err := Replace(fs, "/p", Rule{Needle: "", Replacement: "x"})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "abc", read(t, fs, "/p/a.php"))
}

func TestReplace_MissingRoot(t *testing.T) {
	_, err := Replace(afero.NewMemMapFs(), "/missing", Rule{Needle: "a", Replacement: "b"})
	assert.Error(t, err)
}

func TestReplaceAll_AppliesInOrder(t *testing.T) {
	fs := newTree(t, map[string]string{"/p/a.php": "init_bea_pb_plugin bea-plugin-boilerplate bea-pb"})

	n, err := ReplaceAll(fs, "/p",
		Rule{Needle: "bea-plugin-boilerplate", Replacement: "my-shop"},
		Rule{Needle: "init_bea_pb_plugin", Replacement: "init_my_shop_plugin"},
		Rule{Needle: "bea-pb", Replacement: "my-shop-views"},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, "init_my_shop_plugin my-shop my-shop-views", read(t, fs, "/p/a.php"))
}

func TestRuleMatches(t *testing.T) {
	r := Rule{}
	assert.True(t, r.Matches("/a/b/plugin.php"))
	assert.True(t, r.Matches("/a/b/PLUGIN.PHP"))
	assert.False(t, r.Matches("/a/php/readme.txt"))
	assert.False(t, r.Matches("/a/b/php"))
}
