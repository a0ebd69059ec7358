// Package renderer adapts synthesized program materials to the GPU layer:
// it wraps a material's patched stage sources into shader module descriptors
// and flattens its numeric uniforms into an std140 byte view for buffer
// upload.
package renderer

import (
	"sort"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/wendygui/core-components/common"
	"github.com/wendygui/core-components/engine/shader"
)

// Stage identifies a shader pipeline stage.
type Stage int

const (
	// StageVertex is the vertex processing stage.
	StageVertex Stage = iota

	// StageFragment is the fragment processing stage.
	StageFragment
)

// Translator converts a stage source into the dialect the device consumes.
// The default translator is the identity; hosts whose device wants another
// dialect install a cross-compiling translator via WithTranslator.
type Translator func(stage Stage, source string) string

// Program is the GPU-facing view of one program material: labeled module
// descriptors for both stages and a flat byte staging of its numeric
// uniforms.
type Program interface {
	// Label returns the program's label, used on both module descriptors.
	//
	// Returns:
	//   - string: the program label
	Label() string

	// Material returns the program material this program wraps.
	//
	// Returns:
	//   - shader.ProgramMaterial: the wrapped material
	Material() shader.ProgramMaterial

	// VertexModule builds the vertex-stage shader module descriptor.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the vertex module descriptor
	VertexModule() *wgpu.ShaderModuleDescriptor

	// FragmentModule builds the fragment-stage shader module descriptor.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the fragment module descriptor
	FragmentModule() *wgpu.ShaderModuleDescriptor

	// UniformData flattens the material's numeric uniforms into an std140
	// byte view, re-reading the live uniform values on every call so a tick
	// that advanced them is reflected in the next upload. Non-numeric
	// uniforms (textures, strings) are excluded; they bind through their own
	// resource paths.
	//
	// Returns:
	//   - []byte: the staged uniform bytes
	UniformData() []byte

	// UniformOffsets returns the byte offset of each staged uniform within
	// UniformData. The layout is stable for the program's lifetime.
	//
	// Returns:
	//   - map[string]int: uniform name to byte offset
	UniformOffsets() map[string]int
}

type program struct {
	label     string
	mat       shader.ProgramMaterial
	translate Translator

	// layout is computed once at construction; uniform tables do not change
	// shape after an instance is built.
	names   []string
	offsets map[string]int
	size    int
}

var _ Program = &program{}

// NewProgram creates a Program for the given material, then applies the
// given options. NewProgram panics if m is nil.
//
// Parameters:
//   - m: the program material to wrap (must not be nil)
//   - options: functional options to configure the program
//
// Returns:
//   - Program: the new program
func NewProgram(m shader.ProgramMaterial, options ...ProgramBuilderOption) Program {
	if m == nil {
		panic("renderer: NewProgram requires a non-nil program material")
	}
	p := &program{
		label:     m.TypeName(),
		mat:       m,
		translate: func(_ Stage, source string) string { return source },
	}
	for _, option := range options {
		option(p)
	}
	p.buildLayout()
	return p
}

func (p *program) Label() string {
	return p.label
}

func (p *program) Material() shader.ProgramMaterial {
	return p.mat
}

func (p *program) VertexModule() *wgpu.ShaderModuleDescriptor {
	return &wgpu.ShaderModuleDescriptor{
		Label: p.label + ":vertex",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: p.translate(StageVertex, p.mat.VertexShader()),
		},
	}
}

func (p *program) FragmentModule() *wgpu.ShaderModuleDescriptor {
	return &wgpu.ShaderModuleDescriptor{
		Label: p.label + ":fragment",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: p.translate(StageFragment, p.mat.FragmentShader()),
		},
	}
}

// buildLayout computes the std140 offset of every stageable uniform, in
// sorted name order so the layout is deterministic across processes.
func (p *program) buildLayout() {
	names := make([]string, 0, len(p.mat.Uniforms()))
	for name, u := range p.mat.Uniforms() {
		if _, _, ok := stageValue(u.Value); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	p.names = names
	p.offsets = make(map[string]int, len(names))
	offset := 0
	for _, name := range names {
		_, align, _ := stageValue(p.mat.Uniforms()[name].Value)
		offset = alignUp(offset, align)
		p.offsets[name] = offset
		floats, _, _ := stageValue(p.mat.Uniforms()[name].Value)
		offset += len(floats) * 4
	}
	p.size = alignUp(offset, 16)
}

func (p *program) UniformOffsets() map[string]int {
	offsets := make(map[string]int, len(p.offsets))
	for name, off := range p.offsets {
		offsets[name] = off
	}
	return offsets
}

func (p *program) UniformData() []byte {
	staged := make([]float32, p.size/4)
	for _, name := range p.names {
		floats, _, _ := stageValue(p.mat.Uniforms()[name].Value)
		copy(staged[p.offsets[name]/4:], floats)
	}
	return common.SliceToBytes(staged)
}

func alignUp(offset, align int) int {
	rem := offset % align
	if rem == 0 {
		return offset
	}
	return offset + align - rem
}

// stageValue maps a uniform value onto its std140 float representation and
// alignment. Values with no numeric representation report ok = false and are
// excluded from staging.
func stageValue(v any) (floats []float32, align int, ok bool) {
	switch value := v.(type) {
	case float32:
		return []float32{value}, 4, true
	case float64:
		return []float32{float32(value)}, 4, true
	case int:
		return []float32{float32(value)}, 4, true
	case bool:
		f := float32(0)
		if value {
			f = 1
		}
		return []float32{f}, 4, true
	case *common.Color:
		if value == nil {
			return nil, 0, false
		}
		return []float32{value.R, value.G, value.B}, 16, true
	case *mgl32.Vec2:
		if value == nil {
			return nil, 0, false
		}
		return value[:], 8, true
	case *mgl32.Vec3:
		if value == nil {
			return nil, 0, false
		}
		return value[:], 16, true
	case *mgl32.Vec4:
		if value == nil {
			return nil, 0, false
		}
		return value[:], 16, true
	case *mgl32.Mat3:
		if value == nil {
			return nil, 0, false
		}
		// std140 mat3: three vec4-aligned columns.
		padded := make([]float32, 12)
		for col := 0; col < 3; col++ {
			copy(padded[col*4:], value[col*3:col*3+3])
		}
		return padded, 16, true
	case *mgl32.Mat4:
		if value == nil {
			return nil, 0, false
		}
		return value[:], 16, true
	default:
		return nil, 0, false
	}
}
