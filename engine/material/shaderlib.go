package material

import "github.com/wendygui/core-components/common"

// shaderlib.go holds the stock, unmodified shader-stage sources and default
// uniform tables for each material family. The sources keep the host
// engine's #include chunk markers unexpanded, which is what the shader
// extension engine anchors its hook points against. Not every family
// contains every chunk marker; hooks whose anchor is absent from a family's
// source intentionally do nothing for that family.

// StockVertexSource returns the family's unmodified vertex-stage source.
//
// Parameters:
//   - f: the material family
//
// Returns:
//   - string: the stock vertex shader source
func StockVertexSource(f Family) string {
	switch f {
	case FamilyStandard:
		return standardVertexSource
	case FamilyBasic:
		return basicVertexSource
	case FamilyPhong:
		return phongVertexSource
	case FamilyLambert:
		return lambertVertexSource
	case FamilyDepth:
		return depthVertexSource
	default:
		return ""
	}
}

// StockFragmentSource returns the family's unmodified fragment-stage source.
//
// Parameters:
//   - f: the material family
//
// Returns:
//   - string: the stock fragment shader source
func StockFragmentSource(f Family) string {
	switch f {
	case FamilyStandard:
		return standardFragmentSource
	case FamilyBasic:
		return basicFragmentSource
	case FamilyPhong:
		return phongFragmentSource
	case FamilyLambert:
		return lambertFragmentSource
	case FamilyDepth:
		return depthFragmentSource
	default:
		return ""
	}
}

// StockUniforms builds a fresh copy of the family's default uniform table.
// A fresh table is returned on every call so callers can never corrupt the
// library defaults through a shared reference.
//
// Parameters:
//   - f: the material family
//
// Returns:
//   - Uniforms: the family's default uniform table
func StockUniforms(f Family) Uniforms {
	table := Uniforms{
		"diffuse": {Value: common.NewColor(1, 1, 1)},
		"opacity": {Value: float32(1)},
		"map":     {Value: (*common.Texture)(nil)},
	}
	switch f {
	case FamilyStandard:
		table["roughness"] = &Uniform{Value: float32(1)}
		table["metalness"] = &Uniform{Value: float32(0)}
		table["emissive"] = &Uniform{Value: newBlack()}
	case FamilyPhong:
		table["shininess"] = &Uniform{Value: float32(30)}
		table["specular"] = &Uniform{Value: newSpecularGray()}
		table["emissive"] = &Uniform{Value: newBlack()}
	case FamilyLambert:
		table["emissive"] = &Uniform{Value: newBlack()}
	case FamilyDepth:
		delete(table, "diffuse")
		delete(table, "map")
	}
	return table
}

func newBlack() *common.Color        { return common.NewColor(0, 0, 0) }
func newSpecularGray() *common.Color { return common.NewColor(0.067, 0.067, 0.067) }

const standardVertexSource = `#include <common>
#include <uv_pars_vertex>
#include <normal_pars_vertex>
#include <fog_pars_vertex>
void main() {
	#include <uv_vertex>
	#include <beginnormal_vertex>
	#include <defaultnormal_vertex>
	#include <begin_vertex>
	#include <project_vertex>
	#include <fog_vertex>
}
`

const standardFragmentSource = `uniform vec3 diffuse;
uniform vec3 emissive;
uniform float roughness;
uniform float metalness;
uniform float opacity;
#include <common>
#include <uv_pars_fragment>
#include <map_pars_fragment>
#include <lights_pars_begin>
void main() {
	vec4 diffuseColor = vec4( diffuse, opacity );
	#include <map_fragment>
	#include <roughnessmap_fragment>
	#include <metalnessmap_fragment>
	#include <normal_fragment_begin>
	#include <lights_fragment_begin>
	#include <lights_fragment_end>
	vec3 outgoingLight = reflectedLight.directDiffuse + reflectedLight.indirectDiffuse + totalEmissiveRadiance;
	gl_FragColor = vec4( outgoingLight, diffuseColor.a );
}
`

const basicVertexSource = `#include <common>
#include <uv_pars_vertex>
#include <fog_pars_vertex>
void main() {
	#include <uv_vertex>
	#include <begin_vertex>
	#include <project_vertex>
	#include <fog_vertex>
}
`

const basicFragmentSource = `uniform vec3 diffuse;
uniform float opacity;
#include <common>
#include <uv_pars_fragment>
#include <map_pars_fragment>
void main() {
	vec4 diffuseColor = vec4( diffuse, opacity );
	#include <map_fragment>
	vec3 outgoingLight = diffuseColor.rgb;
	gl_FragColor = vec4( outgoingLight, diffuseColor.a );
}
`

const phongVertexSource = `#include <common>
#include <uv_pars_vertex>
#include <normal_pars_vertex>
#include <fog_pars_vertex>
void main() {
	#include <uv_vertex>
	#include <beginnormal_vertex>
	#include <defaultnormal_vertex>
	#include <begin_vertex>
	#include <project_vertex>
	#include <fog_vertex>
}
`

const phongFragmentSource = `uniform vec3 diffuse;
uniform vec3 emissive;
uniform vec3 specular;
uniform float shininess;
uniform float opacity;
#include <common>
#include <uv_pars_fragment>
#include <map_pars_fragment>
#include <lights_pars_begin>
void main() {
	vec4 diffuseColor = vec4( diffuse, opacity );
	#include <map_fragment>
	#include <specularmap_fragment>
	#include <normal_fragment_begin>
	#include <lights_fragment_begin>
	#include <lights_fragment_end>
	vec3 outgoingLight = reflectedLight.directDiffuse + reflectedLight.directSpecular + totalEmissiveRadiance;
	gl_FragColor = vec4( outgoingLight, diffuseColor.a );
}
`

const lambertVertexSource = `#include <common>
#include <uv_pars_vertex>
#include <normal_pars_vertex>
#include <fog_pars_vertex>
void main() {
	#include <uv_vertex>
	#include <beginnormal_vertex>
	#include <defaultnormal_vertex>
	#include <begin_vertex>
	#include <project_vertex>
	#include <fog_vertex>
}
`

const lambertFragmentSource = `uniform vec3 diffuse;
uniform vec3 emissive;
uniform float opacity;
#include <common>
#include <uv_pars_fragment>
#include <map_pars_fragment>
#include <lights_pars_begin>
void main() {
	vec4 diffuseColor = vec4( diffuse, opacity );
	#include <map_fragment>
	#include <normal_fragment_begin>
	#include <lights_fragment_begin>
	vec3 outgoingLight = reflectedLight.indirectDiffuse + totalEmissiveRadiance;
	gl_FragColor = vec4( outgoingLight, diffuseColor.a );
}
`

// The depth family deliberately carries neither uv/map chunks nor a lighting
// block, so most fragment hook anchors are absent from it.
const depthVertexSource = `#include <common>
varying vec2 vHighPrecisionZW;
void main() {
	#include <begin_vertex>
	#include <project_vertex>
	vHighPrecisionZW = gl_Position.zw;
}
`

const depthFragmentSource = `uniform float opacity;
#include <common>
varying vec2 vHighPrecisionZW;
void main() {
	float fragCoordZ = 0.5 * vHighPrecisionZW[0] / vHighPrecisionZW[1] + 0.5;
	gl_FragColor = vec4( vec3( 1.0 - fragCoordZ ), opacity );
}
`
