package material

import "github.com/wendygui/core-components/common"

// StandardMaterial is the physically-based stock family, extending the base
// material contract with roughness/metalness factors and an emissive color.
type StandardMaterial interface {
	Material

	// Roughness retrieves the roughness factor (0 = smooth, 1 = rough).
	//
	// Returns:
	//   - float32: the roughness factor
	Roughness() float32

	// Metalness retrieves the metalness factor (0 = dielectric, 1 = metal).
	//
	// Returns:
	//   - float32: the metalness factor
	Metalness() float32

	// Emissive retrieves the emissive color.
	//
	// Returns:
	//   - *common.Color: the emissive color
	Emissive() *common.Color
}

type standardMaterial struct {
	baseMaterial
	roughness float32
	metalness float32
	emissive  *common.Color
}

var _ StandardMaterial = &standardMaterial{}

// NewStandardMaterial creates a standard-family material with stock defaults,
// then applies params through the standard option-parsing path.
//
// Parameters:
//   - params: the material options to apply
//
// Returns:
//   - StandardMaterial: the new material
func NewStandardMaterial(params Params) StandardMaterial {
	m := &standardMaterial{
		baseMaterial: newBaseMaterial(),
		roughness:    1,
		metalness:    0,
		emissive:     common.NewColor(0, 0, 0),
	}
	m.SetValues(params)
	return m
}

func (m *standardMaterial) TypeName() string { return FamilyStandard.TypeName() }
func (m *standardMaterial) Family() Family   { return FamilyStandard }

func (m *standardMaterial) Roughness() float32      { return m.roughness }
func (m *standardMaterial) Metalness() float32      { return m.metalness }
func (m *standardMaterial) Emissive() *common.Color { return m.emissive }

func (m *standardMaterial) SetValues(params Params) {
	m.setValuesBase(params)
	if params.Roughness != nil {
		m.roughness = *params.Roughness
	}
	if params.Metalness != nil {
		m.metalness = *params.Metalness
	}
	if params.Emissive != nil {
		m.emissive = params.Emissive.Clone()
	}
}

func (m *standardMaterial) Copy(src Material) Material {
	m.copyBase(src)
	if s, ok := Concrete(src).(StandardMaterial); ok {
		m.roughness = s.Roughness()
		m.metalness = s.Metalness()
		if e := s.Emissive(); e != nil {
			m.emissive = e.Clone()
		}
	}
	return m
}

// BasicMaterial is the unlit stock family. It carries no fields beyond the
// base material contract.
type BasicMaterial interface {
	Material
}

type basicMaterial struct {
	baseMaterial
}

var _ BasicMaterial = &basicMaterial{}

// NewBasicMaterial creates a basic-family material with stock defaults,
// then applies params.
//
// Parameters:
//   - params: the material options to apply
//
// Returns:
//   - BasicMaterial: the new material
func NewBasicMaterial(params Params) BasicMaterial {
	m := &basicMaterial{baseMaterial: newBaseMaterial()}
	m.SetValues(params)
	return m
}

func (m *basicMaterial) TypeName() string { return FamilyBasic.TypeName() }
func (m *basicMaterial) Family() Family   { return FamilyBasic }

func (m *basicMaterial) SetValues(params Params) {
	m.setValuesBase(params)
}

func (m *basicMaterial) Copy(src Material) Material {
	m.copyBase(src)
	return m
}

// PhongMaterial is the Blinn-Phong stock family with a specular color and
// shininess exponent.
type PhongMaterial interface {
	Material

	// Shininess retrieves the specular exponent.
	//
	// Returns:
	//   - float32: the shininess value
	Shininess() float32

	// Specular retrieves the specular color.
	//
	// Returns:
	//   - *common.Color: the specular color
	Specular() *common.Color

	// Emissive retrieves the emissive color.
	//
	// Returns:
	//   - *common.Color: the emissive color
	Emissive() *common.Color
}

type phongMaterial struct {
	baseMaterial
	shininess float32
	specular  *common.Color
	emissive  *common.Color
}

var _ PhongMaterial = &phongMaterial{}

// NewPhongMaterial creates a phong-family material with stock defaults,
// then applies params.
//
// Parameters:
//   - params: the material options to apply
//
// Returns:
//   - PhongMaterial: the new material
func NewPhongMaterial(params Params) PhongMaterial {
	m := &phongMaterial{
		baseMaterial: newBaseMaterial(),
		shininess:    30,
		specular:     common.NewColor(0.067, 0.067, 0.067),
		emissive:     common.NewColor(0, 0, 0),
	}
	m.SetValues(params)
	return m
}

func (m *phongMaterial) TypeName() string { return FamilyPhong.TypeName() }
func (m *phongMaterial) Family() Family   { return FamilyPhong }

func (m *phongMaterial) Shininess() float32      { return m.shininess }
func (m *phongMaterial) Specular() *common.Color { return m.specular }
func (m *phongMaterial) Emissive() *common.Color { return m.emissive }

func (m *phongMaterial) SetValues(params Params) {
	m.setValuesBase(params)
	if params.Shininess != nil {
		m.shininess = *params.Shininess
	}
	if params.Specular != nil {
		m.specular = params.Specular.Clone()
	}
	if params.Emissive != nil {
		m.emissive = params.Emissive.Clone()
	}
}

func (m *phongMaterial) Copy(src Material) Material {
	m.copyBase(src)
	if s, ok := Concrete(src).(PhongMaterial); ok {
		m.shininess = s.Shininess()
		if c := s.Specular(); c != nil {
			m.specular = c.Clone()
		}
		if e := s.Emissive(); e != nil {
			m.emissive = e.Clone()
		}
	}
	return m
}

// LambertMaterial is the diffuse-only stock family with an emissive color.
type LambertMaterial interface {
	Material

	// Emissive retrieves the emissive color.
	//
	// Returns:
	//   - *common.Color: the emissive color
	Emissive() *common.Color
}

type lambertMaterial struct {
	baseMaterial
	emissive *common.Color
}

var _ LambertMaterial = &lambertMaterial{}

// NewLambertMaterial creates a lambert-family material with stock defaults,
// then applies params.
//
// Parameters:
//   - params: the material options to apply
//
// Returns:
//   - LambertMaterial: the new material
func NewLambertMaterial(params Params) LambertMaterial {
	m := &lambertMaterial{
		baseMaterial: newBaseMaterial(),
		emissive:     common.NewColor(0, 0, 0),
	}
	m.SetValues(params)
	return m
}

func (m *lambertMaterial) TypeName() string { return FamilyLambert.TypeName() }
func (m *lambertMaterial) Family() Family   { return FamilyLambert }

func (m *lambertMaterial) Emissive() *common.Color { return m.emissive }

func (m *lambertMaterial) SetValues(params Params) {
	m.setValuesBase(params)
	if params.Emissive != nil {
		m.emissive = params.Emissive.Clone()
	}
}

func (m *lambertMaterial) Copy(src Material) Material {
	m.copyBase(src)
	if s, ok := Concrete(src).(LambertMaterial); ok {
		if e := s.Emissive(); e != nil {
			m.emissive = e.Clone()
		}
	}
	return m
}

// DepthMaterial is the depth-rendering stock family.
type DepthMaterial interface {
	Material
}

type depthMaterial struct {
	baseMaterial
}

var _ DepthMaterial = &depthMaterial{}

// NewDepthMaterial creates a depth-family material with stock defaults,
// then applies params.
//
// Parameters:
//   - params: the material options to apply
//
// Returns:
//   - DepthMaterial: the new material
func NewDepthMaterial(params Params) DepthMaterial {
	m := &depthMaterial{baseMaterial: newBaseMaterial()}
	m.SetValues(params)
	return m
}

func (m *depthMaterial) TypeName() string { return FamilyDepth.TypeName() }
func (m *depthMaterial) Family() Family   { return FamilyDepth }

func (m *depthMaterial) SetValues(params Params) {
	m.setValuesBase(params)
}

func (m *depthMaterial) Copy(src Material) Material {
	m.copyBase(src)
	return m
}

// New constructs a stock material of the given family. This is the
// family-dispatch construction path used when a material type is selected
// at run time.
//
// Parameters:
//   - family: the shading family to construct
//   - params: the material options to apply
//
// Returns:
//   - Material: the new stock material, or nil for an unknown family
func New(family Family, params Params) Material {
	switch family {
	case FamilyStandard:
		return NewStandardMaterial(params)
	case FamilyBasic:
		return NewBasicMaterial(params)
	case FamilyPhong:
		return NewPhongMaterial(params)
	case FamilyLambert:
		return NewLambertMaterial(params)
	case FamilyDepth:
		return NewDepthMaterial(params)
	default:
		return nil
	}
}
