package effects

import (
	"math"

	"github.com/wendygui/core-components/common"
	"github.com/wendygui/core-components/engine/material"
	"github.com/wendygui/core-components/engine/shader"
)

const pulseUniformsSnippet = `uniform vec3 pulseColor;
uniform float pulseStrength;`

const pulsePostMapSnippet = `	diffuseColor.rgb = mix( diffuseColor.rgb, pulseColor, pulseStrength );`

// Pulse builds the color-pulse effect: the diffuse color breathes towards a
// highlight color on a sine wave. The wave phase is tracked on the CPU in the
// pulseTime uniform and folded into pulseStrength each tick, so the GLSL side
// stays a single mix.
//
// Returns:
//   - *shader.Extension: the pulse effect bundle
func Pulse() *shader.Extension {
	return &shader.Extension{
		FragmentHooks: map[string]string{
			"uniforms": pulseUniformsSnippet,
			"postMap":  pulsePostMapSnippet,
		},
		Uniforms: material.Uniforms{
			"pulseColor":    {Value: common.NewColor(1, 0.4, 0.1)},
			"pulseStrength": {Value: float32(0)},
			"pulseTime":     {Value: float32(0)},
		},
		UpdateUniforms: func(elapsed float64, m shader.ProgramMaterial) {
			u := m.Uniforms()
			t := u["pulseTime"].Value.(float32) + float32(elapsed)
			u["pulseTime"].Value = t
			u["pulseStrength"].Value = float32(0.5 + 0.5*math.Sin(float64(t)*2)) * 0.35
		},
	}
}
