package shader

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wendygui/core-components/engine/material"
)

func TestResolveDescriptorSelectorShapes(t *testing.T) {
	byKey, err := resolveDescriptor("standard")
	require.NoError(t, err)

	byClassName, err := resolveDescriptor("MeshStandardMaterial")
	require.NoError(t, err)

	byFamily, err := resolveDescriptor(material.FamilyStandard)
	require.NoError(t, err)

	byConstructor, err := resolveDescriptor(material.NewStandardMaterial)
	require.NoError(t, err)

	byInstance, err := resolveDescriptor(material.NewStandardMaterial(material.Params{}))
	require.NoError(t, err)

	// All five selector shapes land on the same memoized descriptor.
	assert.Same(t, byKey, byClassName)
	assert.Same(t, byKey, byFamily)
	assert.Same(t, byKey, byConstructor)
	assert.Same(t, byKey, byInstance)
	assert.Equal(t, material.FamilyStandard, byKey.family)
}

func TestResolveDescriptorMemoizedAcrossCalls(t *testing.T) {
	a, err := resolveDescriptor("phong")
	require.NoError(t, err)
	b, err := resolveDescriptor("phong")
	require.NoError(t, err)

	assert.Same(t, a, b)
}

func TestResolveDescriptorUnknownSelector(t *testing.T) {
	for _, selector := range []any{"toon", "MeshToonMaterial", material.Family(42), nil, 7} {
		_, err := resolveDescriptor(selector)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoShader))
	}
}

func TestResolveDescriptorErrorNamesSelector(t *testing.T) {
	_, err := resolveDescriptor("toon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toon")
	assert.Contains(t, err.Error(), "no shader found to modify")
}

func TestDescriptorCarriesStockSources(t *testing.T) {
	d, err := resolveDescriptor("basic")
	require.NoError(t, err)

	assert.Equal(t, material.StockVertexSource(material.FamilyBasic), d.vertexSource)
	assert.Equal(t, material.StockFragmentSource(material.FamilyBasic), d.fragmentSource)
}

func TestDescriptorStockUniformsAreFresh(t *testing.T) {
	d, err := resolveDescriptor("lambert")
	require.NoError(t, err)

	a := d.stockUniforms()
	b := d.stockUniforms()
	require.Contains(t, a, "emissive")
	assert.NotSame(t, a["emissive"], b["emissive"])
}

func TestNextClassNameMonotonicPerFamily(t *testing.T) {
	d, err := resolveDescriptor("depth")
	require.NoError(t, err)

	first := d.nextClassName()
	second := d.nextClassName()

	assert.True(t, strings.HasPrefix(first, "ModifiedMeshDepthMaterial_"), first)
	assert.True(t, strings.HasPrefix(second, "ModifiedMeshDepthMaterial_"), second)
	assert.NotEqual(t, first, second)
}
