package geom

import (
	"fmt"
	"image"
)

// Box is an integer pixel rectangle in (left, top, right, bottom) order,
// the coordinate convention used by every raster backend call.
type Box struct {
	Left, Top, Right, Bottom int
}

// BoxFromCorners builds a box from fractional top-left and bottom-right
// corners, truncating toward zero.
func BoxFromCorners(tl, br Vec) Box {
	l, t := tl.IntXY()
	r, b := br.IntXY()
	return Box{Left: l, Top: t, Right: r, Bottom: b}
}

// BoxOfSize returns the box spanning (0, 0) to the truncated size.
func BoxOfSize(s Size) Box {
	w, h := s.IntWH()
	return Box{Right: w, Bottom: h}
}

// Width returns right - left.
func (b Box) Width() int { return b.Right - b.Left }

// Height returns bottom - top.
func (b Box) Height() int { return b.Bottom - b.Top }

// Empty reports whether the box covers no pixels.
func (b Box) Empty() bool { return b.Width() <= 0 || b.Height() <= 0 }

// Delta returns the per-edge difference b - o. The layout resolver uses
// this to derive how many pixels the clamped box shaved off the free box
// on each edge.
func (b Box) Delta(o Box) Box {
	return Box{
		Left:   b.Left - o.Left,
		Top:    b.Top - o.Top,
		Right:  b.Right - o.Right,
		Bottom: b.Bottom - o.Bottom,
	}
}

// Shift returns the box translated by (dx, dy).
func (b Box) Shift(dx, dy int) Box {
	return Box{b.Left + dx, b.Top + dy, b.Right + dx, b.Bottom + dy}
}

// IsZero reports whether all four edges are zero.
func (b Box) IsZero() bool {
	return b == Box{}
}

// Rect converts the box to a stdlib image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right, b.Bottom)
}

// String implements fmt.Stringer.
func (b Box) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", b.Left, b.Top, b.Right, b.Bottom)
}
