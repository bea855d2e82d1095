package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type material struct{ ID int }

func TestAssetsAddGetRemove(t *testing.T) {
	a := NewAssets[material]()

	h1 := a.Add(material{ID: 1})
	h2 := a.Add(material{ID: 2})
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, 2, a.Len())

	m, ok := a.Get(h1)
	require.True(t, ok)
	assert.Equal(t, 1, m.ID)

	// mutation through the resolved reference sticks
	m.ID = 42
	m, _ = a.Get(h1)
	assert.Equal(t, 42, m.ID)

	a.Remove(h1)
	_, ok = a.Get(h1)
	assert.False(t, ok)
	_, ok = a.Get(h2)
	assert.True(t, ok)
}

func TestZeroHandleNeverResolves(t *testing.T) {
	a := NewAssets[material]()
	a.Add(material{ID: 1})

	var zero Handle[material]
	assert.True(t, zero.IsZero())
	_, ok := a.Get(zero)
	assert.False(t, ok)
}

func TestShaderRegistry(t *testing.T) {
	r := NewShaderRegistry()

	_, ok := r.Lookup("ui/bar.frag")
	assert.False(t, ok)

	r.Register("ui/bar.frag", "void main() {}")
	src, ok := r.Lookup("ui/bar.frag")
	require.True(t, ok)
	assert.Equal(t, "void main() {}", src)

	// same id overwrites
	r.Register("ui/bar.frag", "// v2")
	src, _ = r.Lookup("ui/bar.frag")
	assert.Equal(t, "// v2", src)
}

func TestShaderRegistryRegisterFile(t *testing.T) {
	r := NewShaderRegistry()
	path := filepath.Join(t.TempDir(), "quad.vert")
	require.NoError(t, os.WriteFile(path, []byte("#version 430 core\n"), 0o644))

	require.NoError(t, r.RegisterFile("quad.vert", path))
	src, ok := r.Lookup("quad.vert")
	require.True(t, ok)
	assert.Equal(t, "#version 430 core\n", src)

	err := r.RegisterFile("missing", filepath.Join(t.TempDir(), "nope.frag"))
	assert.ErrorContains(t, err, `load shader "missing"`)
}
