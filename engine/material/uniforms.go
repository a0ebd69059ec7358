package material

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform is a single shader uniform record. The Value field is the live,
// mutable value handed to the GPU program at render time; any other
// bookkeeping fields added to the record are carried over verbatim by
// CloneUniforms.
type Uniform struct {
	// Value is the uniform's current value. Supported shapes are the
	// clone-capable types (Color, Texture, the mgl32 vector and matrix
	// pointers), slices, and plain values (numbers, booleans, strings).
	Value any
}

// Uniforms is a flat uniform table keyed by uniform name.
type Uniforms map[string]*Uniform

// Cloner is the clone capability recognized by CloneUniforms. Values that
// implement it are deep-copied when a uniform table is cloned; everything
// else falls back to the shape-based rules in cloneValue.
type Cloner interface {
	// CloneValue returns an independent copy of the value.
	//
	// Returns:
	//   - any: the cloned value
	CloneValue() any
}

// CloneUniforms deep-copies a uniform table so that two materials derived
// from the same template never alias mutable state. Each record is copied,
// preserving bookkeeping fields, and each value is duplicated according to
// its run-time shape:
//   - clone-capable values (Color, Texture, mgl32 vector/matrix pointers) are deep-copied
//   - slices are shallow-copied (new backing array, element-wise identical)
//   - anything else is copied by reference and intentionally aliased
//
// Malformed records are not validated; a nil record propagates the panic
// indexing it produces.
//
// Parameters:
//   - src: the uniform table to clone
//
// Returns:
//   - Uniforms: a new, independently-mutable table with the same keys
func CloneUniforms(src Uniforms) Uniforms {
	dst := make(Uniforms, len(src))
	for name, u := range src {
		record := *u
		record.Value = cloneValue(u.Value)
		dst[name] = &record
	}
	return dst
}

// cloneValue duplicates a single uniform value according to its shape.
// The explicit mgl32 cases cover the vector and matrix types that carry no
// clone capability of their own.
func cloneValue(v any) any {
	switch value := v.(type) {
	case Cloner:
		return value.CloneValue()
	case *mgl32.Vec2:
		c := *value
		return &c
	case *mgl32.Vec3:
		c := *value
		return &c
	case *mgl32.Vec4:
		c := *value
		return &c
	case *mgl32.Mat3:
		c := *value
		return &c
	case *mgl32.Mat4:
		c := *value
		return &c
	}

	// Slices are shallow-copied: the narrow use case is arrays of numbers or
	// of already-independent objects, so element-wise cloning is not performed.
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(out, rv)
		return out.Interface()
	}

	// Plain values and unrecognized objects (e.g. a shared texture resource
	// multiple materials intentionally reference) are aliased.
	return v
}

// MergeUniforms shallow-merges two uniform tables into a new table. Override
// entries win on key collision. No cloning is performed: the returned table
// shares its records with the inputs.
//
// Parameters:
//   - stock: the base table (typically a family's stock uniforms)
//   - override: the table whose entries win on collision
//
// Returns:
//   - Uniforms: a new table referencing the input records
func MergeUniforms(stock, override Uniforms) Uniforms {
	merged := make(Uniforms, len(stock)+len(override))
	for name, u := range stock {
		merged[name] = u
	}
	for name, u := range override {
		merged[name] = u
	}
	return merged
}

// ShallowCopyUniforms builds a new table whose records are copied by
// reference. Mutating a record through the copy mutates the original; this
// is the asymmetric copy path used when one material copies another.
//
// Parameters:
//   - src: the table to copy
//
// Returns:
//   - Uniforms: a new table sharing records with src
func ShallowCopyUniforms(src Uniforms) Uniforms {
	dst := make(Uniforms, len(src))
	for name, u := range src {
		dst[name] = u
	}
	return dst
}
