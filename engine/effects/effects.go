// Package effects is the catalog of ready-made shader extensions: named
// bundles of hook snippets, uniforms, and lifecycle callbacks that the shader
// engine splices into stock material sources. Each constructor returns a
// fresh Extension so every application owns its uniform records.
package effects

import (
	"sort"

	"github.com/wendygui/core-components/engine/shader"
)

// Constructor builds a fresh instance of a cataloged effect.
type Constructor func() *shader.Extension

var catalog = map[string]Constructor{
	"noise":  Noise,
	"scroll": Scroll,
	"pulse":  Pulse,
}

// Lookup retrieves a cataloged effect constructor by name.
//
// Parameters:
//   - name: the effect name
//
// Returns:
//   - Constructor: the effect constructor
//   - bool: true if the effect is cataloged
func Lookup(name string) (Constructor, bool) {
	c, ok := catalog[name]
	return c, ok
}

// Names returns the cataloged effect names in sorted order.
//
// Returns:
//   - []string: the effect names
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
