// Package material models the small set of stock surface-shading families the
// host rendering engine ships (standard, basic, phong, lambert, depth), their
// default uniform tables and stock GLSL sources, and the uniform cloning
// utility used when materials are derived from a shared template.
package material

import (
	"fmt"

	"github.com/wendygui/core-components/common"
)

// Family identifies one of the supported stock surface-shading models.
// External code dispatches on the family tag to decide how to bind standard
// material resources, so a derived material must keep reporting the family
// of the stock material it was built from.
type Family int

const (
	// FamilyStandard is the physically-based standard shading model.
	FamilyStandard Family = iota

	// FamilyBasic is the unlit flat shading model.
	FamilyBasic

	// FamilyPhong is the Blinn-Phong specular shading model.
	FamilyPhong

	// FamilyLambert is the diffuse-only Lambertian shading model.
	FamilyLambert

	// FamilyDepth renders fragment depth, used for depth pre-passes.
	FamilyDepth
)

// String returns the family's short canonical key ("standard", "basic", ...).
func (f Family) String() string {
	switch f {
	case FamilyStandard:
		return "standard"
	case FamilyBasic:
		return "basic"
	case FamilyPhong:
		return "phong"
	case FamilyLambert:
		return "lambert"
	case FamilyDepth:
		return "depth"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// TypeName returns the host engine's class name for the family's stock
// material (e.g. "MeshStandardMaterial").
func (f Family) TypeName() string {
	switch f {
	case FamilyStandard:
		return "MeshStandardMaterial"
	case FamilyBasic:
		return "MeshBasicMaterial"
	case FamilyPhong:
		return "MeshPhongMaterial"
	case FamilyLambert:
		return "MeshLambertMaterial"
	case FamilyDepth:
		return "MeshDepthMaterial"
	default:
		return "MeshUnknownMaterial"
	}
}

// Params carries the standard material options parsed by SetValues. Nil
// fields are left untouched, so a partially-populated Params only overrides
// the values it names. Family-specific fields are ignored by families that
// do not carry the corresponding property.
type Params struct {
	// Name is the material identifier. Empty means "leave unchanged".
	Name string

	// Color is the diffuse color.
	Color *common.Color

	// Map is the diffuse texture.
	Map *common.Texture

	// Opacity is the overall opacity in [0, 1].
	Opacity *float32

	// Transparent enables alpha blending.
	Transparent *bool

	// Roughness is the standard family's roughness factor.
	Roughness *float32

	// Metalness is the standard family's metalness factor.
	Metalness *float32

	// Shininess is the phong family's specular exponent.
	Shininess *float32

	// Specular is the phong family's specular color.
	Specular *common.Color

	// Emissive is the emissive color (standard, phong, lambert).
	Emissive *common.Color
}

// Material defines the behavior every stock material family implements:
// identity, family dispatch, standard option parsing, and family-faithful
// copying. Derived materials (see the shader package) wrap a family instance
// and delegate this contract to it.
type Material interface {
	// TypeName retrieves the material's type string (the stock class name for
	// family materials, the synthesized class name for derived materials).
	//
	// Returns:
	//   - string: the type name
	TypeName() string

	// Family retrieves the material's shading family tag.
	//
	// Returns:
	//   - Family: the family this material belongs to
	Family() Family

	// Name retrieves the material's instance identifier.
	//
	// Returns:
	//   - string: the material name
	Name() string

	// Color retrieves the diffuse color.
	//
	// Returns:
	//   - *common.Color: the diffuse color
	Color() *common.Color

	// Map retrieves the diffuse texture, or nil if none is set.
	//
	// Returns:
	//   - *common.Texture: the diffuse texture or nil
	Map() *common.Texture

	// Opacity retrieves the overall opacity.
	//
	// Returns:
	//   - float32: the opacity in [0, 1]
	Opacity() float32

	// Transparent retrieves whether alpha blending is enabled.
	//
	// Returns:
	//   - bool: true if transparent
	Transparent() bool

	// SetColor sets the diffuse color.
	//
	// Parameters:
	//   - c: the new diffuse color
	SetColor(c *common.Color)

	// SetMap sets the diffuse texture.
	//
	// Parameters:
	//   - t: the new diffuse texture, or nil to clear
	SetMap(t *common.Texture)

	// SetValues applies the non-nil fields of params to the material, the
	// standard option-parsing path shared by all families.
	//
	// Parameters:
	//   - params: the options to apply
	SetValues(params Params)

	// Copy overwrites the receiver's family-level state from src and returns
	// the receiver. Family-specific fields are copied when src (or the
	// material it wraps) belongs to the same family.
	//
	// Parameters:
	//   - src: the material to copy from
	//
	// Returns:
	//   - Material: the receiver, for chaining
	Copy(src Material) Material
}

// Unwrapper is implemented by materials that decorate another material.
// Concrete follows the chain to reach the underlying family instance.
type Unwrapper interface {
	// Unwrap retrieves the wrapped material.
	//
	// Returns:
	//   - Material: the material the receiver decorates
	Unwrap() Material
}

// Concrete follows Unwrap chains until it reaches a non-wrapping material.
// Family Copy implementations use it so that copying from a derived material
// still reaches the family fields of the instance it wraps.
//
// Parameters:
//   - m: the material to unwrap
//
// Returns:
//   - Material: the innermost non-wrapping material
func Concrete(m Material) Material {
	for {
		u, ok := m.(Unwrapper)
		if !ok {
			return m
		}
		m = u.Unwrap()
	}
}

// baseMaterial holds the state shared by every family implementation.
type baseMaterial struct {
	name        string
	color       *common.Color
	diffuseMap  *common.Texture
	opacity     float32
	transparent bool
}

func newBaseMaterial() baseMaterial {
	return baseMaterial{
		color:   common.NewColor(1, 1, 1),
		opacity: 1,
	}
}

func (b *baseMaterial) Name() string {
	return b.name
}

func (b *baseMaterial) Color() *common.Color {
	return b.color
}

func (b *baseMaterial) Map() *common.Texture {
	return b.diffuseMap
}

func (b *baseMaterial) Opacity() float32 {
	return b.opacity
}

func (b *baseMaterial) Transparent() bool {
	return b.transparent
}

func (b *baseMaterial) SetColor(c *common.Color) {
	b.color = c
}

func (b *baseMaterial) SetMap(t *common.Texture) {
	b.diffuseMap = t
}

// setValuesBase applies the family-independent fields of params.
func (b *baseMaterial) setValuesBase(params Params) {
	if params.Name != "" {
		b.name = params.Name
	}
	if params.Color != nil {
		b.color = params.Color.Clone()
	}
	if params.Map != nil {
		b.diffuseMap = params.Map
	}
	if params.Opacity != nil {
		b.opacity = *params.Opacity
	}
	if params.Transparent != nil {
		b.transparent = *params.Transparent
	}
}

// copyBase replicates the family-independent state of src onto the receiver.
// The color is duplicated; the texture reference is shared, matching the
// stock copy semantics.
func (b *baseMaterial) copyBase(src Material) {
	b.name = src.Name()
	if c := src.Color(); c != nil {
		b.color = c.Clone()
	}
	b.diffuseMap = src.Map()
	b.opacity = src.Opacity()
	b.transparent = src.Transparent()
}
