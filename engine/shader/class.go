package shader

import "github.com/wendygui/core-components/engine/material"

// MaterialClass is a synthesized material type produced by Extend: the Go
// rendition of a dynamically created subclass. The class-level state — the
// patched stage sources, the merged uniform template, and the class name —
// is baked at synthesis time and shared read-only by every instance; writes
// to the sources after creation are not supported. Family membership is the
// wrapped base instance's own tag, so host code dispatching on the family
// still recognizes instances as members of the original family.
type MaterialClass struct {
	name           string
	desc           *descriptor
	vertexShader   string
	fragmentShader string
	uniforms       material.Uniforms
	ext            *Extension
}

// Name retrieves the class name, which every instance reports as its type.
//
// Returns:
//   - string: the synthesized class name
func (c *MaterialClass) Name() string {
	return c.name
}

// Family retrieves the base family this class was synthesized from.
//
// Returns:
//   - material.Family: the base family tag
func (c *MaterialClass) Family() material.Family {
	return c.desc.family
}

// VertexShader retrieves the class's patched vertex-stage source.
//
// Returns:
//   - string: the patched vertex shader source
func (c *MaterialClass) VertexShader() string {
	return c.vertexShader
}

// FragmentShader retrieves the class's patched fragment-stage source.
//
// Returns:
//   - string: the patched fragment shader source
func (c *MaterialClass) FragmentShader() string {
	return c.fragmentShader
}

// New constructs an instance of the synthesized class:
//
//  1. the base family's own constructor runs with params, so family-specific
//     construction side effects still happen
//  2. the class's uniform template is deep-cloned into the instance, so
//     siblings never alias mutable uniform state
//  3. the patched sources and the class name are assigned onto the instance
//  4. the base family's standard option parsing (SetValues) is applied
//
// The extension's Init callback then runs once, seeding per-instance derived
// uniforms.
//
// Parameters:
//   - params: the material options for the new instance
//
// Returns:
//   - ProgramMaterial: the new instance
func (c *MaterialClass) New(params material.Params) ProgramMaterial {
	m := &programMaterial{
		Material:       c.desc.construct(params),
		class:          c,
		uniforms:       material.CloneUniforms(c.uniforms),
		vertexShader:   c.vertexShader,
		fragmentShader: c.fragmentShader,
		typeName:       c.name,
	}
	m.Material.SetValues(params)
	if c.ext != nil && c.ext.Init != nil {
		c.ext.Init(m)
	}
	return m
}

// ProgramMaterial is the contract instances of a synthesized class satisfy:
// the full base material contract plus the patched program source and the
// instance-owned uniform table.
type ProgramMaterial interface {
	material.Material

	// Uniforms retrieves the instance's own uniform table. The instance owns
	// the table exclusively; mutating it never affects siblings.
	//
	// Returns:
	//   - material.Uniforms: the instance uniform table
	Uniforms() material.Uniforms

	// VertexShader retrieves the instance's patched vertex-stage source.
	//
	// Returns:
	//   - string: the patched vertex shader source
	VertexShader() string

	// FragmentShader retrieves the instance's patched fragment-stage source.
	//
	// Returns:
	//   - string: the patched fragment shader source
	FragmentShader() string

	// Class retrieves the synthesized class this instance was created from.
	//
	// Returns:
	//   - *MaterialClass: the owning class
	Class() *MaterialClass

	// UpdateUniforms advances the instance's animated uniforms through the
	// extension's per-tick callback. No-op when the extension declares none.
	//
	// Parameters:
	//   - elapsed: elapsed time in seconds
	UpdateUniforms(elapsed float64)
}

// programMaterial wraps a base family instance; the embedded Material
// delegates the full base contract, the Go analog of setting the synthesized
// prototype to inherit from the base family's prototype.
type programMaterial struct {
	material.Material

	class          *MaterialClass
	uniforms       material.Uniforms
	vertexShader   string
	fragmentShader string
	typeName       string
}

var _ ProgramMaterial = &programMaterial{}
var _ material.Unwrapper = &programMaterial{}

func (m *programMaterial) TypeName() string {
	return m.typeName
}

// Unwrap exposes the wrapped family instance so family-level copies reach
// its concrete fields.
func (m *programMaterial) Unwrap() material.Material {
	return m.Material
}

func (m *programMaterial) Uniforms() material.Uniforms {
	return m.uniforms
}

func (m *programMaterial) VertexShader() string {
	return m.vertexShader
}

func (m *programMaterial) FragmentShader() string {
	return m.fragmentShader
}

func (m *programMaterial) Class() *MaterialClass {
	return m.class
}

func (m *programMaterial) UpdateUniforms(elapsed float64) {
	if m.class.ext != nil && m.class.ext.UpdateUniforms != nil {
		m.class.ext.UpdateUniforms(elapsed, m)
	}
}

// Copy delegates to the base family's own copy first, replicating all
// base-level copy semantics, then re-applies the uniform table, the patched
// sources, and the type name from src.
//
// The uniform re-apply is a shallow, per-record reference copy — not a deep
// clone like construction. The asymmetry is inherited, intentional behavior:
// downstream code may depend on post-copy uniform record aliasing.
func (m *programMaterial) Copy(src material.Material) material.Material {
	m.Material.Copy(src)
	if s, ok := src.(ProgramMaterial); ok {
		m.uniforms = material.ShallowCopyUniforms(s.Uniforms())
		m.vertexShader = s.VertexShader()
		m.fragmentShader = s.FragmentShader()
		m.typeName = s.TypeName()
	}
	return m
}
