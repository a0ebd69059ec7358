package shader

import "strings"

// applyHooks splices supplied GLSL snippets into a shader-stage source at
// the hook points the table defines. Hooks fire in table order, each against
// the already-patched string from prior hooks, so table order is the implicit
// contract when two anchors could overlap.
//
// Only the first occurrence of an anchor is touched. Three situations are
// silent no-ops rather than errors, because a fixed hook table serves many
// structurally different base shaders:
//   - the anchor is absent from the source
//   - a supplied snippet names a hook the table does not define
//   - the table's directive matches none of the three directive forms
func applyHooks(source string, table *HookTable, snippets map[string]string) string {
	if table == nil || len(snippets) == 0 {
		return source
	}
	for _, name := range table.Names() {
		snippet, supplied := snippets[name]
		if !supplied {
			continue
		}
		raw, _ := table.Directive(name)
		directive, ok := ParseDirective(raw)
		if !ok {
			continue
		}
		switch directive.Op {
		case HookOpInsertBefore:
			source = strings.Replace(source, directive.Anchor, snippet+"\n"+directive.Anchor, 1)
		case HookOpInsertAfter:
			source = strings.Replace(source, directive.Anchor, directive.Anchor+"\n"+snippet, 1)
		case HookOpReplace:
			source = strings.Replace(source, directive.Anchor, snippet, 1)
		}
	}
	return source
}
