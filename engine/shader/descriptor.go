package shader

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/wendygui/core-components/engine/material"
)

// ErrNoShader is the engine's single validated failure: no base-material
// descriptor matches the caller's selector. Every other shader-source-shape
// mismatch is a silent no-op; an unknown base family stops the operation
// early instead of producing a shader that would fail to compile on the GPU
// with a far less legible error.
var ErrNoShader = errors.New("no shader found to modify")

// descriptor is the engine's internal record describing how to construct and
// patch one base material family: the family tag, the family constructor,
// the stock shader-stage sources, and the running count of synthesized
// subclasses used for auto-generated class names.
type descriptor struct {
	family         material.Family
	construct      func(material.Params) material.Material
	vertexSource   string
	fragmentSource string

	// counter is guarded by registryMu; it only ever increases.
	counter int
}

// stockUniforms builds a fresh copy of the family's default uniform table.
func (d *descriptor) stockUniforms() material.Uniforms {
	return material.StockUniforms(d.family)
}

// nextClassName generates the next auto class name for this family, e.g.
// "ModifiedMeshStandardMaterial_3". Each call increments the family counter.
func (d *descriptor) nextClassName() string {
	registryMu.Lock()
	defer registryMu.Unlock()
	d.counter++
	return fmt.Sprintf("Modified%s_%d", d.family.TypeName(), d.counter)
}

// The descriptor registry is computed once on first use and reused for the
// life of the process; counters are ordinary mutable fields on the memoized
// descriptors.
var (
	registryOnce sync.Once
	registryMu   sync.Mutex

	descriptorsByFamily map[material.Family]*descriptor
	descriptorsByKey    map[string]*descriptor
)

func buildRegistry() {
	families := []struct {
		family    material.Family
		construct func(material.Params) material.Material
	}{
		{material.FamilyStandard, func(p material.Params) material.Material { return material.NewStandardMaterial(p) }},
		{material.FamilyBasic, func(p material.Params) material.Material { return material.NewBasicMaterial(p) }},
		{material.FamilyPhong, func(p material.Params) material.Material { return material.NewPhongMaterial(p) }},
		{material.FamilyLambert, func(p material.Params) material.Material { return material.NewLambertMaterial(p) }},
		{material.FamilyDepth, func(p material.Params) material.Material { return material.NewDepthMaterial(p) }},
	}

	descriptorsByFamily = make(map[material.Family]*descriptor, len(families))
	descriptorsByKey = make(map[string]*descriptor, len(families)*2)
	for _, f := range families {
		d := &descriptor{
			family:         f.family,
			construct:      f.construct,
			vertexSource:   material.StockVertexSource(f.family),
			fragmentSource: material.StockFragmentSource(f.family),
		}
		descriptorsByFamily[f.family] = d
		// Both the short canonical key and the host engine's class name
		// alias onto the same descriptor.
		descriptorsByKey[f.family.String()] = d
		descriptorsByKey[f.family.TypeName()] = d
	}
}

// resolveDescriptor maps a base-material selector to its memoized family
// descriptor. Accepted selector shapes:
//   - a short canonical key ("standard", "basic", "phong", "lambert", "depth")
//   - a host class name ("MeshStandardMaterial", ...)
//   - a material.Family value
//   - a family constructor reference (material.NewStandardMaterial, ...),
//     resolved through the constructor's function type
//   - a material.Material instance (resolved through its family tag)
//
// Parameters:
//   - selector: the base-material selector
//
// Returns:
//   - *descriptor: the matching descriptor
//   - error: ErrNoShader (wrapped with the selector) when nothing matches
func resolveDescriptor(selector any) (*descriptor, error) {
	registryOnce.Do(buildRegistry)

	switch sel := selector.(type) {
	case string:
		if d, ok := descriptorsByKey[sel]; ok {
			return d, nil
		}
	case material.Family:
		if d, ok := descriptorsByFamily[sel]; ok {
			return d, nil
		}
	case func(material.Params) material.StandardMaterial:
		return descriptorsByFamily[material.FamilyStandard], nil
	case func(material.Params) material.BasicMaterial:
		return descriptorsByFamily[material.FamilyBasic], nil
	case func(material.Params) material.PhongMaterial:
		return descriptorsByFamily[material.FamilyPhong], nil
	case func(material.Params) material.LambertMaterial:
		return descriptorsByFamily[material.FamilyLambert], nil
	case func(material.Params) material.DepthMaterial:
		return descriptorsByFamily[material.FamilyDepth], nil
	case material.Material:
		if sel != nil {
			if d, ok := descriptorsByFamily[sel.Family()]; ok {
				return d, nil
			}
		}
	}
	return nil, errors.Wrapf(ErrNoShader, "material selector %v", selector)
}
