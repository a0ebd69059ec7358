// package common contains common types that are used throughout the component
// engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// Texture represents image data referenced by a material or a uniform value.
// For embedded textures the Data field contains raw image bytes; for external
// textures the Path field contains the file path. Repeat and Offset carry the
// UV transform the owning mesh applies when sampling.
//
// Texture is one of the clone-capable uniform value types: cloning copies the
// UV transform per texture while the underlying pixel Data stays shared, so
// many materials can reference one loaded image without aliasing UV state.
type Texture struct {
	// Name is an identifier for this texture (e.g. "map", "noise").
	Name string

	// Path is the file path for external textures (empty for embedded).
	Path string

	// Data contains raw image bytes for embedded textures (PNG/JPEG).
	Data []byte

	// MimeType indicates the image format (e.g. "image/png", "image/jpeg").
	MimeType string

	// Width is the texture width in pixels (populated after Decode).
	Width int

	// Height is the texture height in pixels (populated after Decode).
	Height int

	// Repeat is the per-axis UV tiling factor applied when sampling.
	Repeat mgl32.Vec2

	// Offset is the UV offset applied when sampling.
	Offset mgl32.Vec2

	// Loaded reports whether pixel data is available. Textures referenced by
	// uniforms may still be loading when a material is created; per-tick
	// uniform updates re-read the reference until it is populated.
	Loaded bool
}

// NewTexture creates a named texture with the default identity UV transform.
//
// Parameters:
//   - name: identifier for the texture
//
// Returns:
//   - *Texture: the new texture
func NewTexture(name string) *Texture {
	return &Texture{
		Name:   name,
		Repeat: mgl32.Vec2{1, 1},
	}
}

// Clone returns a copy of the texture sharing the same pixel data but owning
// an independent UV transform.
//
// Returns:
//   - *Texture: the cloned texture
func (t *Texture) Clone() *Texture {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

// CloneValue implements the uniform clone capability.
//
// Returns:
//   - any: a new *Texture sharing pixel data with the receiver
func (t *Texture) CloneValue() any {
	return t.Clone()
}

// Decode decodes the texture to raw RGBA pixel data and marks it loaded.
// Uses either embedded Data bytes or loads from Path on disk.
// Supports PNG and JPEG formats.
//
// Returns:
//   - []byte: raw RGBA pixel data (4 bytes per pixel, row-major order)
//   - error: error if decoding fails
func (t *Texture) Decode() ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("texture is nil")
	}

	data := t.Data
	if len(data) == 0 && t.Path != "" {
		fileData, err := os.ReadFile(t.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read texture file %q: %w", t.Path, err)
		}
		data = fileData
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("texture %q has no data or path", t.Name)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %q: %w", t.Name, err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	t.Width = bounds.Dx()
	t.Height = bounds.Dy()
	t.Loaded = true
	return rgba.Pix, nil
}
