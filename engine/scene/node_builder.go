package scene

// NodeBuilderOption is a functional option for configuring a Node during
// construction.
type NodeBuilderOption func(*node)

// WithMesh attaches a mesh to the node.
//
// Parameters:
//   - m: the mesh to attach
//
// Returns:
//   - NodeBuilderOption: functional option to set the mesh
func WithMesh(m Mesh) NodeBuilderOption {
	return func(n *node) {
		n.mesh = m
	}
}

// WithEnabled sets whether the node participates in updates.
//
// Parameters:
//   - enabled: true to enable the node
//
// Returns:
//   - NodeBuilderOption: functional option to set the enabled state
func WithEnabled(enabled bool) NodeBuilderOption {
	return func(n *node) {
		n.enabled.Store(enabled)
	}
}
