package effects

import (
	"log"
	"math/rand"
	"os"
	"sync"

	"github.com/wendygui/core-components/common"
	"github.com/wendygui/core-components/engine/material"
	"github.com/wendygui/core-components/engine/shader"
)

const noiseUniformsSnippet = `uniform float noiseTime;
uniform float noiseScale;
uniform sampler2D noiseMap;`

const noiseFunctionsSnippet = `vec3 applySurfaceNoise( vec3 color, vec2 uv ) {
	vec2 nUv = uv * noiseScale + vec2( noiseTime * 0.05, noiseTime * 0.031 );
	float n = texture2D( noiseMap, nUv ).r;
	return color * ( 0.85 + 0.3 * n );
}`

const noisePostMapSnippet = `	diffuseColor.rgb = applySurfaceNoise( diffuseColor.rgb, vUv );`

// Noise builds the animated surface-noise effect. The fragment stage samples
// a shared tiling noise texture with a time-scrolled UV, darkening and
// brightening the diffuse color. Each instance starts at a random point in
// the animation so meshes sharing the effect never pulse in lockstep, and the
// shared noise texture is re-bound every tick so instances created before the
// texture finished loading pick it up once it arrives.
//
// Returns:
//   - *shader.Extension: the noise effect bundle
func Noise() *shader.Extension {
	return &shader.Extension{
		FragmentHooks: map[string]string{
			"uniforms":  noiseUniformsSnippet,
			"functions": noiseFunctionsSnippet,
			"postMap":   noisePostMapSnippet,
		},
		Uniforms: material.Uniforms{
			"noiseTime":  {Value: float32(0)},
			"noiseScale": {Value: float32(4)},
			"noiseMap":   {Value: (*common.Texture)(nil)},
		},
		Init: func(m shader.ProgramMaterial) {
			m.Uniforms()["noiseTime"].Value = rand.Float32() * 100
		},
		UpdateUniforms: func(elapsed float64, m shader.ProgramMaterial) {
			u := m.Uniforms()
			u["noiseTime"].Value = u["noiseTime"].Value.(float32) + float32(elapsed)
			if tex := NoiseTexture(); tex != nil && tex.Loaded {
				u["noiseMap"].Value = tex
			}
		},
	}
}

var (
	noiseTexMu sync.RWMutex
	noiseTex   *common.Texture
)

// NoiseTexture retrieves the shared noise texture, or nil when no load has
// been started.
//
// Returns:
//   - *common.Texture: the shared noise texture or nil
func NoiseTexture() *common.Texture {
	noiseTexMu.RLock()
	defer noiseTexMu.RUnlock()
	return noiseTex
}

// LoadNoiseTexture starts loading the shared noise texture from path in the
// background. Materials using the noise effect render with a nil map uniform
// until the load completes; the texture is picked up on a later tick. Calling
// it again replaces the shared texture once the new load completes.
//
// Parameters:
//   - path: filesystem path of the noise image
func LoadNoiseTexture(path string) {
	go func() {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("effects: noise texture %s: %v", path, err)
			return
		}
		tex := common.NewTexture("noise")
		tex.Path = path
		tex.Data = data
		tex.Loaded = true

		noiseTexMu.Lock()
		noiseTex = tex
		noiseTexMu.Unlock()
	}()
}

// setNoiseTexture installs a texture directly, bypassing the file load.
func setNoiseTexture(tex *common.Texture) {
	noiseTexMu.Lock()
	noiseTex = tex
	noiseTexMu.Unlock()
}
