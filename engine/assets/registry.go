package assets

import (
	"fmt"
	"os"
)

// ShaderRegistry maps stable string ids to shader source. Plugins register
// their embedded sources at attach time; render backends look them up when
// compiling pipelines. Ids are process-wide constants, so a second Register
// with the same id overwrites (last plugin wins, matching attach order).
type ShaderRegistry struct {
	sources map[string]string
}

func NewShaderRegistry() *ShaderRegistry {
	return &ShaderRegistry{sources: map[string]string{}}
}

// Register associates source with id.
func (r *ShaderRegistry) Register(id, source string) {
	r.sources[id] = source
}

// Lookup returns the source registered under id.
func (r *ShaderRegistry) Lookup(id string) (string, bool) {
	src, ok := r.sources[id]
	return src, ok
}

// RegisterFile reads a shader from disk and registers it under id.
func (r *ShaderRegistry) RegisterFile(id, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load shader %q: %w", id, err)
	}
	r.Register(id, string(b))
	return nil
}

// Shaders is the default registry used when plugins and backends are not
// wired with an explicit one.
var Shaders = NewShaderRegistry()
