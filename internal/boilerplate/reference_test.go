package boilerplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/wpscaffold/cli/internal/errors"
)

const repo = "https://github.com/BeAPI/bea-plugin-boilerplate"

func TestParseReference(t *testing.T) {
	ref, err := ParseReference("plugin-boilerplate", "")
	require.NoError(t, err)
	assert.Equal(t, Latest, ref.Version)
	assert.True(t, ref.IsLatest())
	assert.Equal(t, "plugin-boilerplate@Latest", ref.String())

	ref, err = ParseReference(" plugin-boilerplate ", "3.1.0")
	require.NoError(t, err)
	assert.Equal(t, "plugin-boilerplate", ref.Name)
	assert.False(t, ref.IsLatest())
}

func TestParseReference_Invalid(t *testing.T) {
	tests := []struct {
		name, pkg, version string
	}{
		{"empty name", "", "1.0.0"},
		{"slash", "plugin-boilerplate", "refs/heads/main"},
		{"whitespace", "plugin-boilerplate", "1.0 .0"},
		{"tab", "plugin-boilerplate", "\t1.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReference(tt.pkg, tt.version)
			assert.ErrorIs(t, err, oerrors.ErrValidation)
		})
	}
}

func TestDistURL(t *testing.T) {
	assert.Equal(t, repo+"/archive/master.zip", Reference{Name: "x", Version: Latest}.DistURL(repo))
	assert.Equal(t, repo+"/archive/master.zip", Reference{Name: "x"}.DistURL(repo+"/"))
	assert.Equal(t, repo+"/archive/3.1.0.zip", Reference{Name: "x", Version: "3.1.0"}.DistURL(repo))
	assert.Equal(t, repo+"/archive/develop.zip", Reference{Name: "x", Version: "develop"}.DistURL(repo))
}

func TestRelease(t *testing.T) {
	v, ok := Reference{Version: "v2.4.1"}.Release()
	require.True(t, ok)
	assert.Equal(t, "2.4.1", v.String())

	_, ok = Reference{Version: "develop"}.Release()
	assert.False(t, ok)

	_, ok = Reference{Version: Latest}.Release()
	assert.False(t, ok)
}
