package layout

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/wpscaffold/cli/internal/errors"
)

func fsWith(t *testing.T, root string, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(root, 0o755))
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(root, f), []byte("<?php\n"), 0o644))
	}
	return fs
}

func TestDetect(t *testing.T) {
	t.Run("autoload.php means legacy", func(t *testing.T) {
		fs := fsWith(t, "/bp", EntrySource, LegacyMarker)
		v, err := Detect(fs, "/bp")
		require.NoError(t, err)
		assert.Equal(t, Legacy, v)
	})

	t.Run("no autoload.php means psr-4", func(t *testing.T) {
		fs := fsWith(t, "/bp", EntrySource)
		v, err := Detect(fs, "/bp")
		require.NoError(t, err)
		assert.Equal(t, PSR4, v)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := Detect(afero.NewMemMapFs(), "/nope")
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrNotFound)
	})
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "legacy", Legacy.String())
	assert.Equal(t, "psr-4", PSR4.String())
	assert.Equal(t, "Variant(7)", Variant(7).String())
}

func dests(ops []FileOp) []string {
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		out = append(out, op.Dest)
	}
	return out
}

func TestPlan_BaseFiles(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		want    []string
	}{
		{
			name:    "legacy",
			variant: Legacy,
			want: []string{
				"classes/admin", "my-plugin.php", "compat.php", "autoload.php",
				"classes/plugin.php", "classes/main.php", "classes/helpers.php", "classes/singleton.php",
				"classes/admin/main.php",
			},
		},
		{
			name:    "psr-4",
			variant: PSR4,
			want: []string{
				"classes/Admin", "my-plugin.php", "compat.php",
				"classes/Plugin.php", "classes/Main.php", "classes/Helpers.php", "classes/Singleton.php",
				"classes/Admin/Main.php",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resolver{Fs: fsWith(t, "/bp"), Root: "/bp", Variant: tt.variant}
			plan, err := r.Plan("my-plugin.php", nil)
			require.NoError(t, err)

			assert.Equal(t, tt.want, dests(plan.Ops))
			assert.Empty(t, plan.Warnings)
			assert.Empty(t, plan.Components)

			first := plan.Ops[0]
			assert.Equal(t, MakeDir, first.Kind)
			assert.True(t, first.Parents)

			entry := plan.Ops[1]
			assert.Equal(t, Move, entry.Kind)
			assert.Equal(t, EntrySource, entry.Source)
		})
	}
}

func TestPlan_ComponentsFollowVocabularyOrder(t *testing.T) {
	r := &Resolver{Fs: fsWith(t, "/bp"), Root: "/bp", Variant: PSR4}

	plan, err := r.Plan("x.php", []Component{Shortcode, Controller})
	require.NoError(t, err)

	assert.Equal(t, []Component{Controller, Shortcode}, plan.Components)
	got := dests(plan.Ops)
	assert.Equal(t, []string{
		"classes/Controllers", "classes/Controllers/Controller.php",
		"classes/Shortcodes", "classes/Shortcodes/Shortcode.php", "classes/Shortcodes/Shortcode_Factory.php",
	}, got[len(got)-5:])
}

func TestPlan_ResolverVocabulary(t *testing.T) {
	r := &Resolver{
		Fs:         fsWith(t, "/bp"),
		Root:       "/bp",
		Variant:    PSR4,
		Vocabulary: []Component{Shortcode, Controller},
	}

	plan, err := r.Plan("x.php", []Component{Controller, Model, Shortcode})
	require.NoError(t, err)

	assert.Equal(t, []Component{Shortcode, Controller}, plan.Components)
	assert.NotContains(t, dests(plan.Ops), "classes/Models")
	assert.Empty(t, plan.Warnings)
}

func TestPlan_EveryComponentBothVariants(t *testing.T) {
	want := map[Variant]map[Component][]string{
		Legacy: {
			Controller: {"classes/controllers/controller.php"},
			Cron:       {"classes/cron/cron.php"},
			Model:      {"classes/models/model.php", "classes/models/user.php"},
			Route:      {"classes/routes/router.php"},
			Widget:     {"classes/widgets/main.php", "views/admin/widget.php", "views/client/widget.php"},
			Shortcode:  {"classes/shortcodes/shortcode.php", "classes/shortcodes/shortcode-factory.php"},
		},
		PSR4: {
			Controller: {"classes/Controllers/Controller.php"},
			Cron:       {"classes/Cron/Cron.php"},
			Model:      {"classes/Models/Model.php", "classes/Models/User.php"},
			Route:      {"classes/Routes/Router.php"},
			Widget:     {"classes/Widgets/Main.php", "views/admin/widget.php", "views/client/widget.php"},
			Shortcode:  {"classes/Shortcodes/Shortcode.php", "classes/Shortcodes/Shortcode_Factory.php"},
		},
	}

	for variant, byComponent := range want {
		for component, files := range byComponent {
			t.Run(variant.String()+"/"+string(component), func(t *testing.T) {
				fs := fsWith(t, "/bp")
				require.NoError(t, fs.MkdirAll("/bp/views", 0o755))
				r := &Resolver{Fs: fs, Root: "/bp", Variant: variant}

				base, err := r.Plan("p.php", nil)
				require.NoError(t, err)
				plan, err := r.Plan("p.php", []Component{component})
				require.NoError(t, err)

				extra := plan.Ops[len(base.Ops):]
				var moved []string
				seenMove := false
				for _, op := range extra {
					if op.Kind == Move {
						seenMove = true
						assert.Equal(t, op.Source, op.Dest)
						moved = append(moved, op.Dest)
					} else {
						assert.False(t, seenMove, "directories are created before files move")
					}
				}
				assert.Equal(t, files, moved)
			})
		}
	}
}

func TestPlan_WidgetWithoutViewsIsSkipped(t *testing.T) {
	r := &Resolver{Fs: fsWith(t, "/bp"), Root: "/bp", Variant: Legacy}

	plan, err := r.Plan("p.php", []Component{Widget, Cron})
	require.NoError(t, err)

	assert.Equal(t, []Component{Cron}, plan.Components)
	require.Len(t, plan.Warnings, 1)
	assert.Equal(t, Widget, plan.Warnings[0].Component)
	assert.Contains(t, plan.Warnings[0].String(), "views")
	for _, op := range plan.Ops {
		assert.NotContains(t, op.Dest, "widget")
	}
}

func TestPlan_InvalidEntryFile(t *testing.T) {
	r := &Resolver{Fs: fsWith(t, "/bp"), Root: "/bp", Variant: PSR4}

	for _, name := range []string{"", "  ", "a/b.php"} {
		_, err := r.Plan(name, nil)
		assert.ErrorIs(t, err, oerrors.ErrValidation, name)
	}
}

func TestPlan_UnknownVariant(t *testing.T) {
	r := &Resolver{Fs: fsWith(t, "/bp"), Root: "/bp", Variant: Variant(9)}
	_, err := r.Plan("p.php", nil)
	assert.Error(t, err)
}

func TestFileOpString(t *testing.T) {
	assert.Equal(t, "mkdir classes/Cron", mkdir("classes/Cron").String())
	assert.Equal(t, "move compat.php -> compat.php", move("compat.php").String())
	assert.Equal(t, "mkdir", MakeDir.String())
	assert.Equal(t, "move", Move.String())
}

func TestParseComponents(t *testing.T) {
	selected, unknown := ParseComponents(Vocabulary, []string{" Widget", "CRON", "bogus", "cron", ""})

	assert.Equal(t, []Component{Cron, Widget}, selected)
	assert.Equal(t, []string{"bogus"}, unknown)
}

func TestParseComponents_RestrictedVocabulary(t *testing.T) {
	selected, unknown := ParseComponents([]Component{Model}, []string{"model", "route"})

	assert.Equal(t, []Component{Model}, selected)
	assert.Equal(t, []string{"route"}, unknown)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"controller", "cron", "model", "route", "widget", "shortcode"}, Names(Vocabulary))
}

func TestComponentFilesAndDescription(t *testing.T) {
	assert.Equal(t, []string{"classes/Models/Model.php", "classes/Models/User.php"}, Model.Files(PSR4))
	assert.Equal(t, []string{"classes/cron/cron.php"}, Cron.Files(Legacy))
	assert.Equal(t, []string{
		"classes/Widgets/Main.php", "views/admin/widget.php", "views/client/widget.php",
	}, Widget.Files(PSR4))
	assert.Nil(t, Component("bogus").Files(PSR4))

	for _, c := range Vocabulary {
		assert.NotEmpty(t, c.Description(), c)
	}
}
