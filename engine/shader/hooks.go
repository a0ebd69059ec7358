// Package shader implements the material modifier / shader extension engine.
// It keeps per-stage tables of named hook points, splices caller-supplied
// GLSL snippets into stock material shader source at those points, and
// synthesizes new material classes that behave like their base family but
// render with the patched source and an independent uniform set.
//
// The engine runs cooperatively inside the host's single-threaded render
// loop; it holds no locks of its own beyond the lazily-built descriptor
// registry.
package shader

import "regexp"

// HookOp identifies the insertion mode a hook directive encodes.
type HookOp int

const (
	// HookOpInsertBefore injects the snippet immediately before the anchor,
	// preserving the anchor text.
	HookOpInsertBefore HookOp = iota

	// HookOpInsertAfter injects the snippet immediately after the anchor,
	// preserving the anchor text.
	HookOpInsertAfter

	// HookOpReplace substitutes the snippet for the anchor text.
	HookOpReplace
)

// Directive is a parsed hook directive: an insertion mode plus the literal
// anchor text it locates in stock shader source.
type Directive struct {
	// Op is the insertion mode.
	Op HookOp

	// Anchor is the literal substring of the stock source the directive
	// anchors against.
	Anchor string
}

// directivePattern recognizes the three directive forms. The anchor part is
// matched in dot-all mode because chunk anchors conventionally include their
// trailing newline.
var directivePattern = regexp.MustCompile(`(?s)^(insertbefore|insertafter|replace):(.*)$`)

// ParseDirective parses a raw directive string into its structured form.
// A string matching none of the three forms reports ok = false; callers
// treat such directives as silently inert, never as errors.
//
// Parameters:
//   - raw: the directive string, e.g. "insertafter:#include <begin_vertex>\n"
//
// Returns:
//   - Directive: the parsed directive
//   - bool: false if raw matches none of the three directive forms
func ParseDirective(raw string) (Directive, bool) {
	groups := directivePattern.FindStringSubmatch(raw)
	if groups == nil {
		return Directive{}, false
	}
	d := Directive{Anchor: groups[2]}
	switch groups[1] {
	case "insertbefore":
		d.Op = HookOpInsertBefore
	case "insertafter":
		d.Op = HookOpInsertAfter
	case "replace":
		d.Op = HookOpReplace
	}
	return d, true
}

// Hook pairs a hook name with its raw directive string. Hooks are the unit
// of registration on a HookTable.
type Hook struct {
	// Name is the hook point's name, the key extension bundles supply
	// snippets under.
	Name string

	// Directive is the raw directive string for this hook point.
	Directive string
}

// HookTable is an insertion-ordered mapping from hook name to directive.
// Patching iterates hooks in the order they were first defined; redefining
// an existing hook overwrites its directive but keeps its original slot.
type HookTable struct {
	names      []string
	directives map[string]string
}

// NewHookTable creates a hook table from the given hooks, preserving their
// order.
//
// Parameters:
//   - hooks: the initial hook definitions, in iteration order
//
// Returns:
//   - *HookTable: the new table
func NewHookTable(hooks ...Hook) *HookTable {
	t := &HookTable{directives: make(map[string]string, len(hooks))}
	t.Define(hooks...)
	return t
}

// Define merges hook definitions into the table. A hook name already present
// has its directive overwritten in place; new names are appended. There is
// no removal operation.
//
// Parameters:
//   - hooks: the hook definitions to merge
func (t *HookTable) Define(hooks ...Hook) {
	for _, h := range hooks {
		if _, exists := t.directives[h.Name]; !exists {
			t.names = append(t.names, h.Name)
		}
		t.directives[h.Name] = h.Directive
	}
}

// Names returns the hook names in table order.
//
// Returns:
//   - []string: the hook names, in insertion order
func (t *HookTable) Names() []string {
	return t.names
}

// Directive retrieves the raw directive registered for a hook name.
//
// Parameters:
//   - name: the hook name
//
// Returns:
//   - string: the raw directive, or "" if absent
//   - bool: true if the hook is defined
func (t *HookTable) Directive(name string) (string, bool) {
	d, ok := t.directives[name]
	return d, ok
}

// DefaultVertexHooks builds the stock vertex-stage hook table targeting the
// host engine's standard shader chunks. The table is configuration: callers
// may replace it wholesale or extend it through the Extender.
//
// Returns:
//   - *HookTable: the default vertex hook table
func DefaultVertexHooks() *HookTable {
	return NewHookTable(
		Hook{"uniforms", "insertbefore:#include <common>\n"},
		Hook{"functions", "insertbefore:void main() {\n"},
		Hook{"preTransform", "insertafter:#include <begin_vertex>\n"},
		Hook{"postTransform", "insertafter:#include <project_vertex>\n"},
		Hook{"preNormal", "insertafter:#include <beginnormal_vertex>\n"},
	)
}

// DefaultFragmentHooks builds the stock fragment-stage hook table. Not every
// base family's source contains every anchor; hooks whose anchor is absent
// do nothing for that family.
//
// Returns:
//   - *HookTable: the default fragment hook table
func DefaultFragmentHooks() *HookTable {
	return NewHookTable(
		Hook{"uniforms", "insertbefore:#include <common>\n"},
		Hook{"functions", "insertbefore:void main() {\n"},
		Hook{"preMap", "insertbefore:#include <map_fragment>\n"},
		Hook{"replaceMap", "replace:#include <map_fragment>\n"},
		Hook{"postMap", "insertafter:#include <map_fragment>\n"},
		Hook{"preLights", "insertbefore:#include <lights_fragment_begin>\n"},
		Hook{"postFragColor", "insertafter:gl_FragColor = vec4( outgoingLight, diffuseColor.a );\n"},
	)
}
