package geom

import (
	"fmt"

	"github.com/ggekit/gge/pkg/errors"
)

// Size is a strictly positive 2D extent. Both components are > 0; the
// invariant is enforced at construction and on every arithmetic result
// that must remain a Size, so an invalid size cannot be produced by
// shrinking a valid one.
type Size struct {
	w, h float64
}

// NewSize constructs a Size, rejecting non-positive components with
// NON_POSITIVE_VALUE.
func NewSize(w, h float64) (Size, error) {
	if w <= 0 || h <= 0 {
		return Size{}, errors.New(errors.ErrCodeNonPositiveValue,
			"size components must be strictly positive, but got (%g, %g)", w, h)
	}
	return Size{w: w, h: h}, nil
}

// SizeFromVec constructs a Size from a vector.
func SizeFromVec(v Vec) (Size, error) {
	return NewSize(v.X, v.Y)
}

// MustSize is like [NewSize] but panics on invalid input. It is intended
// for package-level constants and tests with known-good literals.
func MustSize(w, h float64) Size {
	s, err := NewSize(w, h)
	if err != nil {
		panic(err)
	}
	return s
}

// W returns the width.
func (s Size) W() float64 { return s.w }

// H returns the height.
func (s Size) H() float64 { return s.h }

// Vec returns the size as a plain vector.
func (s Size) Vec() Vec { return Vec{s.w, s.h} }

// Half returns 0.5 * size as a vector, the center point of the extent.
func (s Size) Half() Vec { return Vec{s.w / 2, s.h / 2} }

// IntWH returns the components truncated toward zero.
func (s Size) IntWH() (int, int) { return int(s.w), int(s.h) }

// IsZero reports whether s is the zero value (never a valid size).
func (s Size) IsZero() bool { return s.w == 0 && s.h == 0 }

// String implements fmt.Stringer.
func (s Size) String() string { return fmt.Sprintf("(%g, %g)", s.w, s.h) }

// Scale returns size * f, failing with NON_POSITIVE_VALUE when the result
// would not be a valid size.
func (s Size) Scale(f float64) (Size, error) {
	return NewSize(s.w*f, s.h*f)
}

// Mul returns the component-wise product with v as a new Size.
func (s Size) Mul(v Vec) (Size, error) {
	return NewSize(s.w*v.X, s.h*v.Y)
}

// Add returns size + v as a new Size.
func (s Size) Add(v Vec) (Size, error) {
	return NewSize(s.w+v.X, s.h+v.Y)
}

// Sub returns size - v as a new Size. Shrinking a size below or to zero
// in either component is rejected rather than clamped.
func (s Size) Sub(v Vec) (Size, error) {
	return NewSize(s.w-v.X, s.h-v.Y)
}

// SubScalar returns size - (f, f) as a new Size.
func (s Size) SubScalar(f float64) (Size, error) {
	return NewSize(s.w-f, s.h-f)
}

// Contains reports whether v fits inside the extent in both dimensions.
func (s Size) Contains(v Vec) bool {
	return v.LessEq(s.Vec()).All()
}
