package shader

import "github.com/wendygui/core-components/engine/material"

// Extension is the caller-authored payload describing one visual effect: the
// per-stage hook snippets, the effect's live uniform table, and its lifecycle
// callbacks. One Extension is expected per logical effect; extending the same
// Extension repeatedly synthesizes a fresh class each time.
type Extension struct {
	// Name overrides the auto-generated class name when non-empty.
	Name string

	// VertexHooks maps vertex hook names to GLSL snippets.
	VertexHooks map[string]string

	// FragmentHooks maps fragment hook names to GLSL snippets.
	FragmentHooks map[string]string

	// Uniforms is the effect's uniform table, merged over the base family's
	// stock uniforms when a class is synthesized.
	Uniforms material.Uniforms

	// PostModifyVertex, when set, receives the fully patched vertex source
	// for a last-mile string transform before it is baked into the class.
	PostModifyVertex func(source string) string

	// PostModifyFragment is the fragment-stage counterpart of
	// PostModifyVertex.
	PostModifyFragment func(source string) string

	// Init is called once per synthesized material instance right after
	// construction, to seed per-instance derived uniforms (e.g. copying
	// texture repeat/offset from whatever map the target mesh already had).
	Init func(m ProgramMaterial)

	// UpdateUniforms is called every render tick by the owning component to
	// advance animated uniforms. External resources referenced here (such as
	// a shared noise texture that loads asynchronously) are re-read on every
	// tick rather than required to be ready at construction time.
	UpdateUniforms func(elapsed float64, m ProgramMaterial)
}

// ShaderSpec is the patched-source preview returned by Modify: the two
// patched stage sources plus the shallow-merged uniform table. No class is
// synthesized and no uniform isolation is performed on this path.
type ShaderSpec struct {
	// VertexShader is the patched vertex-stage source.
	VertexShader string

	// FragmentShader is the patched fragment-stage source.
	FragmentShader string

	// Uniforms is the stock table shallow-merged with the extension's table
	// (extension entries win). Records are shared, not cloned.
	Uniforms material.Uniforms
}

// Extender is the shader extension engine's public façade. It holds the two
// per-stage hook-point tables and exposes the patch-only Modify operation
// and the class-synthesizing Extend operation. It is a pure request/response
// façade: the hook tables and the process-wide descriptor cache are its only
// state.
type Extender interface {
	// DefineVertexHooks merges hook definitions into the vertex hook table.
	// Later registrations for an existing hook name overwrite its directive.
	//
	// Parameters:
	//   - hooks: the hook definitions to merge
	DefineVertexHooks(hooks ...Hook)

	// DefineFragmentHooks merges hook definitions into the fragment hook
	// table.
	//
	// Parameters:
	//   - hooks: the hook definitions to merge
	DefineFragmentHooks(hooks ...Hook)

	// Modify patches the selected base family's stock sources with the
	// extension's hook snippets and returns the result without synthesizing
	// a class.
	//
	// Parameters:
	//   - selector: the base-material selector (see resolveDescriptor)
	//   - ext: the extension supplying hook snippets and uniforms
	//
	// Returns:
	//   - ShaderSpec: patched sources plus shallow-merged uniforms
	//   - error: ErrNoShader when the selector matches no family
	Modify(selector any, ext *Extension) (ShaderSpec, error)

	// Extend patches the selected base family's stock sources, applies the
	// extension's post-modify callbacks, and synthesizes a new material
	// class whose instances behave like the base family but carry the
	// patched source and an independent uniform set.
	//
	// Parameters:
	//   - selector: the base-material selector (see resolveDescriptor)
	//   - ext: the extension describing the effect
	//
	// Returns:
	//   - *MaterialClass: the synthesized class
	//   - error: ErrNoShader when the selector matches no family
	Extend(selector any, ext *Extension) (*MaterialClass, error)
}

type extender struct {
	vertexHooks   *HookTable
	fragmentHooks *HookTable
}

var _ Extender = &extender{}

// NewExtender creates an Extender seeded with the default per-stage hook
// tables, then applies the given options.
//
// Parameters:
//   - options: functional options to configure the extender
//
// Returns:
//   - Extender: the new extender
func NewExtender(options ...ExtenderBuilderOption) Extender {
	e := &extender{
		vertexHooks:   DefaultVertexHooks(),
		fragmentHooks: DefaultFragmentHooks(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *extender) DefineVertexHooks(hooks ...Hook) {
	e.vertexHooks.Define(hooks...)
}

func (e *extender) DefineFragmentHooks(hooks ...Hook) {
	e.fragmentHooks.Define(hooks...)
}

func (e *extender) Modify(selector any, ext *Extension) (ShaderSpec, error) {
	d, err := resolveDescriptor(selector)
	if err != nil {
		return ShaderSpec{}, err
	}
	return ShaderSpec{
		VertexShader:   applyHooks(d.vertexSource, e.vertexHooks, ext.VertexHooks),
		FragmentShader: applyHooks(d.fragmentSource, e.fragmentHooks, ext.FragmentHooks),
		Uniforms:       material.MergeUniforms(d.stockUniforms(), ext.Uniforms),
	}, nil
}

func (e *extender) Extend(selector any, ext *Extension) (*MaterialClass, error) {
	d, err := resolveDescriptor(selector)
	if err != nil {
		return nil, err
	}

	vertexShader := applyHooks(d.vertexSource, e.vertexHooks, ext.VertexHooks)
	fragmentShader := applyHooks(d.fragmentSource, e.fragmentHooks, ext.FragmentHooks)
	if ext.PostModifyVertex != nil {
		vertexShader = ext.PostModifyVertex(vertexShader)
	}
	if ext.PostModifyFragment != nil {
		fragmentShader = ext.PostModifyFragment(fragmentShader)
	}

	name := ext.Name
	if name == "" {
		name = d.nextClassName()
	}

	return &MaterialClass{
		name:           name,
		desc:           d,
		vertexShader:   vertexShader,
		fragmentShader: fragmentShader,
		uniforms:       material.MergeUniforms(d.stockUniforms(), ext.Uniforms),
		ext:            ext,
	}, nil
}
