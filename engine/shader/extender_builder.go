package shader

// ExtenderBuilderOption is a function that configures an extender during
// construction.
type ExtenderBuilderOption func(*extender)

// WithVertexHookTable is an option builder that replaces the default vertex
// hook-point table.
//
// Parameters:
//   - table: the vertex hook table to use
//
// Returns:
//   - ExtenderBuilderOption: a function that applies the table to an extender
func WithVertexHookTable(table *HookTable) ExtenderBuilderOption {
	return func(e *extender) {
		e.vertexHooks = table
	}
}

// WithFragmentHookTable is an option builder that replaces the default
// fragment hook-point table.
//
// Parameters:
//   - table: the fragment hook table to use
//
// Returns:
//   - ExtenderBuilderOption: a function that applies the table to an extender
func WithFragmentHookTable(table *HookTable) ExtenderBuilderOption {
	return func(e *extender) {
		e.fragmentHooks = table
	}
}
