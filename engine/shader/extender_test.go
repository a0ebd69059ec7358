package shader

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wendygui/core-components/common"
	"github.com/wendygui/core-components/engine/material"
)

func TestModifyPatchesBothStages(t *testing.T) {
	e := NewExtender()
	spec, err := e.Modify("basic", &Extension{
		VertexHooks: map[string]string{
			"postTransform": "\tgl_Position.x += wobble;",
		},
		FragmentHooks: map[string]string{
			"replaceMap": "\tdiffuseColor = vec4(1.0);",
		},
		Uniforms: material.Uniforms{
			"wobble": {Value: float32(0.5)},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, spec.VertexShader, "#include <project_vertex>\n\n\tgl_Position.x += wobble;")
	assert.Contains(t, spec.FragmentShader, "diffuseColor = vec4(1.0);")
	assert.NotContains(t, spec.FragmentShader, "#include <map_fragment>")

	// Stock entries plus the extension's own, extension wins on collision.
	assert.Contains(t, spec.Uniforms, "diffuse")
	assert.Contains(t, spec.Uniforms, "opacity")
	assert.Equal(t, float32(0.5), spec.Uniforms["wobble"].Value)
}

func TestModifySharesUniformRecords(t *testing.T) {
	e := NewExtender()
	u := &material.Uniform{Value: float32(2)}
	spec, err := e.Modify("basic", &Extension{
		Uniforms: material.Uniforms{"speed": u},
	})
	require.NoError(t, err)

	assert.Same(t, u, spec.Uniforms["speed"])
}

func TestModifyUnknownFamily(t *testing.T) {
	e := NewExtender()
	_, err := e.Modify("toon", &Extension{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoShader))
}

func TestModifyHookAbsentFromFamilyIsNoOp(t *testing.T) {
	// The depth fragment source carries no map chunk, so a map-anchored hook
	// leaves it untouched.
	e := NewExtender()
	spec, err := e.Modify("depth", &Extension{
		FragmentHooks: map[string]string{
			"replaceMap": "\tdiffuseColor = vec4(1.0);",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, material.StockFragmentSource(material.FamilyDepth), spec.FragmentShader)
}

func TestExtendSynthesizesClass(t *testing.T) {
	e := NewExtender()
	c, err := e.Extend("standard", &Extension{
		FragmentHooks: map[string]string{
			"preLights": "\tdiffuseColor.rgb *= pulse;",
		},
		Uniforms: material.Uniforms{
			"pulse": {Value: float32(1)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, material.FamilyStandard, c.Family())
	assert.Contains(t, c.FragmentShader(), "diffuseColor.rgb *= pulse;")
	assert.True(t, strings.HasPrefix(c.Name(), "ModifiedMeshStandardMaterial_"), c.Name())
}

func TestExtendExplicitNameWins(t *testing.T) {
	e := NewExtender()
	c, err := e.Extend("basic", &Extension{Name: "LavaMaterial"})
	require.NoError(t, err)

	assert.Equal(t, "LavaMaterial", c.Name())
	assert.Equal(t, "LavaMaterial", c.New(material.Params{}).TypeName())
}

func TestExtendAutoNamesAreUnique(t *testing.T) {
	e := NewExtender()
	a, err := e.Extend("basic", &Extension{})
	require.NoError(t, err)
	b, err := e.Extend("basic", &Extension{})
	require.NoError(t, err)

	assert.NotEqual(t, a.Name(), b.Name())
}

func TestExtendUnknownFamily(t *testing.T) {
	e := NewExtender()
	_, err := e.Extend(material.Family(42), &Extension{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoShader))
}

func TestExtendPostModifyCallbacks(t *testing.T) {
	e := NewExtender()
	c, err := e.Extend("basic", &Extension{
		VertexHooks: map[string]string{"preTransform": "\ttransformed.y += 1.0;"},
		PostModifyVertex: func(source string) string {
			return "#define WOBBLE\n" + source
		},
		PostModifyFragment: func(source string) string {
			return strings.ReplaceAll(source, "outgoingLight", "finalLight")
		},
	})
	require.NoError(t, err)

	// Post-modify runs on the already-patched source.
	assert.True(t, strings.HasPrefix(c.VertexShader(), "#define WOBBLE\n"))
	assert.Contains(t, c.VertexShader(), "transformed.y += 1.0;")
	assert.Contains(t, c.FragmentShader(), "finalLight")
	assert.NotContains(t, c.FragmentShader(), "outgoingLight")
}

func TestClassNewRunsInitOncePerInstance(t *testing.T) {
	var inits int
	e := NewExtender()
	c, err := e.Extend("basic", &Extension{
		Uniforms: material.Uniforms{"time": {Value: float64(0)}},
		Init: func(m ProgramMaterial) {
			inits++
			m.Uniforms()["time"].Value = float64(7)
		},
	})
	require.NoError(t, err)

	m := c.New(material.Params{})
	assert.Equal(t, 1, inits)
	assert.Equal(t, float64(7), m.Uniforms()["time"].Value)

	c.New(material.Params{})
	assert.Equal(t, 2, inits)
}

func TestClassInstancesOwnIndependentUniforms(t *testing.T) {
	e := NewExtender()
	c, err := e.Extend("basic", &Extension{
		Uniforms: material.Uniforms{
			"tint": {Value: common.NewColor(1, 0, 0)},
		},
	})
	require.NoError(t, err)

	a := c.New(material.Params{})
	b := c.New(material.Params{})

	require.NotSame(t, a.Uniforms()["tint"], b.Uniforms()["tint"])
	a.Uniforms()["tint"].Value.(*common.Color).Set(common.NewColor(0, 1, 0))
	assert.Equal(t, float32(1), b.Uniforms()["tint"].Value.(*common.Color).R)

	// The class template itself stays pristine too.
	d := c.New(material.Params{})
	assert.Equal(t, float32(1), d.Uniforms()["tint"].Value.(*common.Color).R)
}

func TestClassInstanceBehavesLikeBaseFamily(t *testing.T) {
	e := NewExtender()
	c, err := e.Extend("standard", &Extension{Name: "GlowMaterial"})
	require.NoError(t, err)

	opacity := float32(0.3)
	roughness := float32(0.2)
	m := c.New(material.Params{
		Name:      "glow",
		Opacity:   &opacity,
		Roughness: &roughness,
	})

	assert.Equal(t, "GlowMaterial", m.TypeName())
	assert.Equal(t, material.FamilyStandard, m.Family())
	assert.Equal(t, "glow", m.Name())
	assert.Equal(t, float32(0.3), m.Opacity())

	// Family-specific construction still applied through the base family.
	s, ok := material.Concrete(m).(material.StandardMaterial)
	require.True(t, ok)
	assert.Equal(t, float32(0.2), s.Roughness())
}

func TestProgramMaterialCopy(t *testing.T) {
	e := NewExtender()
	c, err := e.Extend("standard", &Extension{
		Name:     "FireMaterial",
		Uniforms: material.Uniforms{"heat": {Value: float32(3)}},
	})
	require.NoError(t, err)

	roughness := float32(0.1)
	src := c.New(material.Params{Name: "fire", Roughness: &roughness})
	dst := c.New(material.Params{})

	out := dst.Copy(src)
	assert.Same(t, dst, out)

	// Base-family state replicates through the family copy path.
	assert.Equal(t, "fire", dst.Name())
	s, ok := material.Concrete(dst).(material.StandardMaterial)
	require.True(t, ok)
	assert.Equal(t, float32(0.1), s.Roughness())

	// Program state follows src; uniform records alias after a copy, unlike
	// the deep clone done at construction.
	assert.Equal(t, "FireMaterial", dst.TypeName())
	assert.Equal(t, src.VertexShader(), dst.VertexShader())
	assert.Same(t, src.Uniforms()["heat"], dst.Uniforms()["heat"])
}

func TestUpdateUniformsAdvancesThroughExtension(t *testing.T) {
	e := NewExtender()
	c, err := e.Extend("basic", &Extension{
		Uniforms: material.Uniforms{"time": {Value: float64(0)}},
		UpdateUniforms: func(elapsed float64, m ProgramMaterial) {
			m.Uniforms()["time"].Value = m.Uniforms()["time"].Value.(float64) + elapsed
		},
	})
	require.NoError(t, err)

	m := c.New(material.Params{})
	m.UpdateUniforms(0.5)
	m.UpdateUniforms(0.25)
	assert.Equal(t, 0.75, m.Uniforms()["time"].Value)

	// Instances advance independently.
	n := c.New(material.Params{})
	assert.Equal(t, float64(0), n.Uniforms()["time"].Value)
}

func TestUpdateUniformsWithoutCallbackIsNoOp(t *testing.T) {
	e := NewExtender()
	c, err := e.Extend("basic", &Extension{})
	require.NoError(t, err)

	m := c.New(material.Params{})
	assert.NotPanics(t, func() { m.UpdateUniforms(1) })
}

func TestCustomHookTablesViaBuilder(t *testing.T) {
	e := NewExtender(
		WithVertexHookTable(NewHookTable(Hook{"only", "replace:#include <begin_vertex>\n"})),
		WithFragmentHookTable(NewHookTable()),
	)

	spec, err := e.Modify("basic", &Extension{
		VertexHooks: map[string]string{"only": "\tvec3 transformed = vec3( position );"},
		// The default fragment hooks were replaced with an empty table, so
		// this snippet has nowhere to land.
		FragmentHooks: map[string]string{"replaceMap": "X"},
	})
	require.NoError(t, err)

	assert.NotContains(t, spec.VertexShader, "#include <begin_vertex>")
	assert.Equal(t, material.StockFragmentSource(material.FamilyBasic), spec.FragmentShader)
}

func TestDefineHooksMergesIntoTables(t *testing.T) {
	e := NewExtender()
	e.DefineFragmentHooks(Hook{"preColor", "insertbefore:gl_FragColor = vec4( outgoingLight, diffuseColor.a );\n"})

	spec, err := e.Modify("basic", &Extension{
		FragmentHooks: map[string]string{"preColor": "\toutgoingLight *= 0.5;"},
	})
	require.NoError(t, err)

	assert.Contains(t, spec.FragmentShader, "outgoingLight *= 0.5;\ngl_FragColor")
}
