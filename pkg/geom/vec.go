// Package geom provides the 2D value types used by the layout engine:
// immutable vectors, strictly positive sizes, and integer pixel boxes.
//
// All arithmetic returns new values; nothing in this package mutates its
// receiver. Vectors carry float64 components so that anchor and frame
// resolution can work in fractional coordinates; conversion to integer
// pixels happens only at the raster boundary (see [Box]).
package geom

import (
	"fmt"
	"math"

	"github.com/ggekit/gge/pkg/errors"
)

// Epsilon is the per-component tolerance used by [Vec.Eq].
const Epsilon = 1e-8

// Vec is an immutable 2-component vector.
type Vec struct {
	X, Y float64
}

// V constructs a vector from its components.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// FromSlice constructs a vector from a 2-element slice.
// It returns a SHAPE_MISMATCH error for any other length.
func FromSlice(s []float64) (Vec, error) {
	if len(s) != 2 {
		return Vec{}, errors.New(errors.ErrCodeShapeMismatch,
			"expected a 2-element value, but got %d elements", len(s))
	}
	return Vec{X: s[0], Y: s[1]}, nil
}

// FromValues constructs a vector from decoded dynamic values, as produced
// by TOML or JSON unmarshalling. Each element must be a numeric type.
// Wrong arity yields SHAPE_MISMATCH; non-numeric elements yield TYPE_MISMATCH.
func FromValues(vals []any) (Vec, error) {
	if len(vals) != 2 {
		return Vec{}, errors.New(errors.ErrCodeShapeMismatch,
			"expected a 2-element value, but got %d elements", len(vals))
	}
	c := [2]float64{}
	for i, v := range vals {
		switch n := v.(type) {
		case float64:
			c[i] = n
		case float32:
			c[i] = float64(n)
		case int:
			c[i] = float64(n)
		case int64:
			c[i] = float64(n)
		default:
			return Vec{}, errors.New(errors.ErrCodeTypeMismatch,
				"expected numeric components, but got %T", v)
		}
	}
	return Vec{X: c[0], Y: c[1]}, nil
}

// String implements fmt.Stringer.
func (v Vec) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Add returns v + o component-wise.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o component-wise.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Mul returns the component-wise product v * o.
func (v Vec) Mul(o Vec) Vec { return Vec{v.X * o.X, v.Y * o.Y} }

// Div returns the component-wise quotient v / o.
func (v Vec) Div(o Vec) Vec { return Vec{v.X / o.X, v.Y / o.Y} }

// FloorDiv returns the component-wise floored quotient v // o.
func (v Vec) FloorDiv(o Vec) Vec {
	return Vec{math.Floor(v.X / o.X), math.Floor(v.Y / o.Y)}
}

// AddScalar returns v + (s, s).
func (v Vec) AddScalar(s float64) Vec { return Vec{v.X + s, v.Y + s} }

// SubScalar returns v - (s, s).
func (v Vec) SubScalar(s float64) Vec { return Vec{v.X - s, v.Y - s} }

// Scale returns v * s.
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// DivScalar returns v / s.
func (v Vec) DivScalar(s float64) Vec { return Vec{v.X / s, v.Y / s} }

// Neg returns -v.
func (v Vec) Neg() Vec { return Vec{-v.X, -v.Y} }

// FlipY returns v with the sign of the y component inverted. The layout
// resolver uses this to reconcile screen coordinates (y grows downward)
// with the math convention used by center coordinate frames.
func (v Vec) FlipY() Vec { return Vec{v.X, -v.Y} }

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Unit returns v scaled to length 1. The zero vector is returned unchanged.
func (v Vec) Unit() Vec {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.DivScalar(n)
}

// Eq reports component-wise equality within [Epsilon].
func (v Vec) Eq(o Vec) bool {
	return math.Abs(v.X-o.X) <= Epsilon && math.Abs(v.Y-o.Y) <= Epsilon
}

// Bool2 is the result of a component-wise comparison. Comparisons between
// vectors do not collapse to a single bool; callers decide whether they
// need All or Any semantics.
type Bool2 struct {
	X, Y bool
}

// All reports whether both components are true.
func (b Bool2) All() bool { return b.X && b.Y }

// Any reports whether at least one component is true.
func (b Bool2) Any() bool { return b.X || b.Y }

// Less returns the component-wise v < o.
func (v Vec) Less(o Vec) Bool2 { return Bool2{v.X < o.X, v.Y < o.Y} }

// LessEq returns the component-wise v <= o.
func (v Vec) LessEq(o Vec) Bool2 { return Bool2{v.X <= o.X, v.Y <= o.Y} }

// Greater returns the component-wise v > o.
func (v Vec) Greater(o Vec) Bool2 { return Bool2{v.X > o.X, v.Y > o.Y} }

// GreaterEq returns the component-wise v >= o.
func (v Vec) GreaterEq(o Vec) Bool2 { return Bool2{v.X >= o.X, v.Y >= o.Y} }

// Clamp returns a new vector with each component clamped into [min, max].
// Either bound may be nil, but not both: clamping with no bounds is a
// caller bug and yields INVALID_ARGUMENT.
func (v Vec) Clamp(min, max *Vec) (Vec, error) {
	if min == nil && max == nil {
		return Vec{}, errors.New(errors.ErrCodeInvalidArgument,
			"clamp requires at least one of min or max")
	}
	c := v
	if min != nil {
		c.X = math.Max(c.X, min.X)
		c.Y = math.Max(c.Y, min.Y)
	}
	if max != nil {
		c.X = math.Min(c.X, max.X)
		c.Y = math.Min(c.Y, max.Y)
	}
	return c, nil
}

// IntXY returns the components truncated toward zero, the conversion used
// when fractional layout coordinates become raster pixels.
func (v Vec) IntXY() (int, int) {
	return int(v.X), int(v.Y)
}
