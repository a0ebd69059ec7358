package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wendygui/core-components/common"
	"github.com/wendygui/core-components/engine/material"
	"github.com/wendygui/core-components/engine/shader"
)

func newTestMaterial(t *testing.T) shader.ProgramMaterial {
	t.Helper()
	e := shader.NewExtender()
	c, err := e.Extend("basic", &shader.Extension{
		Name: "TestProgramMaterial",
		FragmentHooks: map[string]string{
			"postMap": "\tdiffuseColor.rgb *= tint;",
		},
		Uniforms: material.Uniforms{
			"tint":  {Value: common.NewColor(1, 0.5, 0.25)},
			"speed": {Value: float32(2)},
		},
	})
	require.NoError(t, err)
	return c.New(material.Params{})
}

func TestProgramModules(t *testing.T) {
	m := newTestMaterial(t)
	p := NewProgram(m)

	assert.Equal(t, "TestProgramMaterial", p.Label())
	assert.Same(t, m, p.Material())

	vs := p.VertexModule()
	assert.Equal(t, "TestProgramMaterial:vertex", vs.Label)
	assert.Equal(t, m.VertexShader(), vs.WGSLDescriptor.Code)

	fs := p.FragmentModule()
	assert.Equal(t, "TestProgramMaterial:fragment", fs.Label)
	assert.Contains(t, fs.WGSLDescriptor.Code, "diffuseColor.rgb *= tint;")
}

func TestProgramBuilderOptions(t *testing.T) {
	m := newTestMaterial(t)
	p := NewProgram(m,
		WithLabel("custom"),
		WithTranslator(func(stage Stage, source string) string {
			if stage == StageVertex {
				return "// translated\n" + source
			}
			return source
		}),
	)

	assert.Equal(t, "custom", p.Label())
	assert.Contains(t, p.VertexModule().WGSLDescriptor.Code, "// translated")
	assert.NotContains(t, p.FragmentModule().WGSLDescriptor.Code, "// translated")
}

func TestProgramRequiresMaterial(t *testing.T) {
	assert.Panics(t, func() { NewProgram(nil) })
}

func TestUniformStagingLayout(t *testing.T) {
	m := newTestMaterial(t)
	p := NewProgram(m)

	offsets := p.UniformOffsets()
	// Stageable uniforms: diffuse (color), opacity, speed, tint. The map
	// uniform carries a nil texture and is excluded.
	require.Len(t, offsets, 4)
	assert.NotContains(t, offsets, "map")

	data := p.UniformData()
	require.NotEmpty(t, data)
	assert.Zero(t, len(data)%16)
	for name, off := range offsets {
		assert.Less(t, off, len(data), name)
	}

	// Colors land vec4-aligned.
	assert.Zero(t, offsets["diffuse"]%16)
	assert.Zero(t, offsets["tint"]%16)
}

func TestUniformDataReflectsLiveValues(t *testing.T) {
	m := newTestMaterial(t)
	p := NewProgram(m)

	before := p.UniformData()
	m.Uniforms()["speed"].Value = float32(9)
	after := p.UniformData()

	assert.NotEqual(t, before, after)

	off := p.UniformOffsets()["speed"]
	assert.Equal(t, []byte{0, 0, 0x10, 0x41}, after[off:off+4])
}
