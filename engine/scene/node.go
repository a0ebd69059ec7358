// Package scene holds the minimal host-side object model the shader engine
// plugs into: nodes carrying meshes, meshes carrying a current material, and
// a scene that ticks live program materials and swaps materials when an
// effect is applied.
package scene

import (
	"sync/atomic"

	"github.com/wendygui/core-components/engine/material"
)

// Mesh is a renderable surface: a named geometry reference plus the material
// currently bound to it. The material slot is the mutation point effect
// application targets.
type Mesh interface {
	// Name returns the mesh's geometry identifier.
	//
	// Returns:
	//   - string: the geometry name
	Name() string

	// Material returns the mesh's current material, or nil if none is bound.
	//
	// Returns:
	//   - material.Material: the current material or nil
	Material() material.Material

	// SetMaterial binds a material to the mesh.
	//
	// Parameters:
	//   - m: the material to bind, or nil to unbind
	SetMaterial(m material.Material)
}

type mesh struct {
	name string
	mat  material.Material
}

var _ Mesh = &mesh{}

// NewMesh creates a mesh with the given geometry name and initial material.
//
// Parameters:
//   - name: the geometry name
//   - mat: the initial material, may be nil
//
// Returns:
//   - Mesh: the new mesh
func NewMesh(name string, mat material.Material) Mesh {
	return &mesh{name: name, mat: mat}
}

func (m *mesh) Name() string                      { return m.name }
func (m *mesh) Material() material.Material       { return m.mat }
func (m *mesh) SetMaterial(mat material.Material) { m.mat = mat }

// Node is a scene entity: an identified, toggleable carrier for a mesh.
type Node interface {
	// ID returns the node's unique identifier, assigned when the node is
	// added to a scene.
	//
	// Returns:
	//   - uint64: the node ID, 0 before the node joins a scene
	ID() uint64

	// SetID sets the node's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// Name returns the node's name.
	//
	// Returns:
	//   - string: the node name
	Name() string

	// Enabled returns whether this node participates in updates.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether this node participates in updates.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Mesh returns the node's mesh, or nil for empty nodes.
	//
	// Returns:
	//   - Mesh: the node's mesh or nil
	Mesh() Mesh
}

type node struct {
	id      uint64
	name    string
	enabled atomic.Bool
	mesh    Mesh
}

var _ Node = &node{}

// NewNode creates an enabled node, then applies the given options.
//
// Parameters:
//   - name: the node name
//   - options: functional options to configure the node
//
// Returns:
//   - Node: the new node
func NewNode(name string, options ...NodeBuilderOption) Node {
	n := &node{name: name}
	n.enabled.Store(true)
	for _, option := range options {
		option(n)
	}
	return n
}

func (n *node) ID() uint64      { return n.id }
func (n *node) SetID(id uint64) { n.id = id }
func (n *node) Name() string    { return n.name }
func (n *node) Enabled() bool   { return n.enabled.Load() }
func (n *node) Mesh() Mesh      { return n.mesh }

func (n *node) SetEnabled(enabled bool) {
	n.enabled.Store(enabled)
}
