package common

// Color is an RGB color with float32 components in the [0, 1] range.
// It is one of the clone-capable uniform value types: cloning a uniform table
// deep-copies Color values so sibling materials never share mutable color state.
type Color struct {
	// R, G, B are the red, green, and blue components in the [0, 1] range.
	R, G, B float32
}

// NewColor creates a Color from the given RGB components.
//
// Parameters:
//   - r, g, b: the color components in the [0, 1] range
//
// Returns:
//   - *Color: the new color
func NewColor(r, g, b float32) *Color {
	return &Color{R: r, G: g, B: b}
}

// Clone returns an independent copy of the color.
//
// Returns:
//   - *Color: a new Color with the same components
func (c *Color) Clone() *Color {
	return &Color{R: c.R, G: c.G, B: c.B}
}

// CloneValue implements the uniform clone capability.
//
// Returns:
//   - any: a new *Color with the same components
func (c *Color) CloneValue() any {
	return c.Clone()
}

// Set overwrites the receiver's components with those of other.
//
// Parameters:
//   - other: the color to copy from
//
// Returns:
//   - *Color: the receiver, for chaining
func (c *Color) Set(other *Color) *Color {
	c.R, c.G, c.B = other.R, other.G, other.B
	return c
}

// Lerp moves the receiver towards target by the interpolation factor t.
//
// Parameters:
//   - target: the color to interpolate towards
//   - t: interpolation factor (0 = receiver unchanged, 1 = target)
//
// Returns:
//   - *Color: the receiver, for chaining
func (c *Color) Lerp(target *Color, t float32) *Color {
	c.R += (target.R - c.R) * t
	c.G += (target.G - c.G) * t
	c.B += (target.B - c.B) * t
	return c
}

// RGBA returns the color as an RGBA float32 quad with the given alpha.
//
// Parameters:
//   - alpha: the alpha component
//
// Returns:
//   - [4]float32: the color as RGBA values
func (c *Color) RGBA(alpha float32) [4]float32 {
	return [4]float32{c.R, c.G, c.B, alpha}
}
