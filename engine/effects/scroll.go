package effects

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/wendygui/core-components/engine/material"
	"github.com/wendygui/core-components/engine/shader"
)

const scrollUniformsSnippet = `uniform vec2 scrollRepeat;
uniform vec2 scrollOffset;`

const scrollReplaceMapSnippet = `#ifdef USE_MAP
	vec4 sampledDiffuseColor = texture2D( map, vUv * scrollRepeat + scrollOffset );
	diffuseColor *= sampledDiffuseColor;
#endif`

// Scroll builds the UV-scroll effect: the diffuse map is sampled with an
// offset that advances every tick, replacing the stock map chunk. Init seeds
// the repeat and offset uniforms from whatever diffuse map the target
// material already carries so the scroll picks up where the artist's UV
// transform left off.
//
// Returns:
//   - *shader.Extension: the scroll effect bundle
func Scroll() *shader.Extension {
	speed := mgl32.Vec2{0.1, 0}
	return &shader.Extension{
		FragmentHooks: map[string]string{
			"uniforms":   scrollUniformsSnippet,
			"replaceMap": scrollReplaceMapSnippet,
		},
		Uniforms: material.Uniforms{
			"scrollRepeat": {Value: &mgl32.Vec2{1, 1}},
			"scrollOffset": {Value: &mgl32.Vec2{0, 0}},
		},
		Init: func(m shader.ProgramMaterial) {
			tex := m.Map()
			if tex == nil {
				return
			}
			u := m.Uniforms()
			*u["scrollRepeat"].Value.(*mgl32.Vec2) = tex.Repeat
			*u["scrollOffset"].Value.(*mgl32.Vec2) = tex.Offset
		},
		UpdateUniforms: func(elapsed float64, m shader.ProgramMaterial) {
			offset := m.Uniforms()["scrollOffset"].Value.(*mgl32.Vec2)
			offset[0] += speed[0] * float32(elapsed)
			offset[1] += speed[1] * float32(elapsed)
		},
	}
}
