package shape

import (
	"image/color"
	"math"

	"github.com/ggekit/gge/pkg/errors"
	"github.com/ggekit/gge/pkg/geom"
	"github.com/ggekit/gge/pkg/graphic"
)

// opaque is the fill used for outline masks; only its alpha matters.
var opaque = color.NRGBA{A: 255}

// RectangleGeometry is an axis-aligned rectangle with faces n/w/s/e and
// corners nw/sw/se/ne.
type RectangleGeometry struct{}

func (RectangleGeometry) FaceAngles() map[string]float64 {
	return map[string]float64{"n": 0, "w": 90, "s": 180, "e": 270}
}

func (RectangleGeometry) FaceVectors(size geom.Size) map[string]geom.Vec {
	w, h := size.Half().X, size.Half().Y
	return map[string]geom.Vec{
		"n": geom.V(0, h),
		"w": geom.V(-w, 0),
		"s": geom.V(0, -h),
		"e": geom.V(w, 0),
	}
}

func (RectangleGeometry) CornerAngles() map[string]float64 {
	return map[string]float64{"nw": 45, "sw": 135, "se": 225, "ne": 315}
}

func (RectangleGeometry) CornerVectors(size geom.Size) map[string]geom.Vec {
	w, h := size.Half().X, size.Half().Y
	return map[string]geom.Vec{
		"nw": geom.V(-w, h),
		"sw": geom.V(-w, -h),
		"se": geom.V(w, -h),
		"ne": geom.V(w, h),
	}
}

func (RectangleGeometry) Polygon(size geom.Size) []geom.Vec {
	w, h := size.IntWH()
	fw, fh := float64(w), float64(h)
	return []geom.Vec{
		geom.V(0, 0),
		geom.V(fw, 0),
		geom.V(fw, fh),
		geom.V(0, fh),
	}
}

// HexGeometry is a flat-top hexagon inscribed in the node box, with
// faces n/nw/sw/s/se/ne and corners nw/w/sw/se/e/ne.
type HexGeometry struct{}

func (HexGeometry) FaceAngles() map[string]float64 {
	return map[string]float64{"n": 0, "nw": 60, "sw": 120, "s": 180, "se": 240, "ne": 300}
}

func (HexGeometry) FaceVectors(size geom.Size) map[string]geom.Vec {
	r, h := size.Half().X, size.Half().Y
	x := math.Sqrt(0.75) * r * math.Cos(math.Pi/6)
	y := math.Sqrt(0.75) * r * math.Sin(math.Pi/6)
	return map[string]geom.Vec{
		"n":  geom.V(0, h),
		"nw": geom.V(-x, y),
		"sw": geom.V(-x, -y),
		"s":  geom.V(0, -h),
		"se": geom.V(x, -y),
		"ne": geom.V(x, y),
	}
}

func (HexGeometry) CornerAngles() map[string]float64 {
	return map[string]float64{"nw": 30, "w": 90, "sw": 150, "se": 210, "e": 270, "ne": 330}
}

func (HexGeometry) CornerVectors(size geom.Size) map[string]geom.Vec {
	r, h := size.Half().X, size.Half().Y
	x := r * math.Sin(math.Pi/6)
	return map[string]geom.Vec{
		"nw": geom.V(-x, h),
		"w":  geom.V(-r, 0),
		"sw": geom.V(-x, -h),
		"se": geom.V(x, -h),
		"e":  geom.V(r, 0),
		"ne": geom.V(x, h),
	}
}

func (HexGeometry) Polygon(size geom.Size) []geom.Vec {
	w, h := size.IntWH()
	cy := float64(int(size.H() / 2))
	xl := float64(int(size.W() / 4))
	xr := float64(int(3 * size.W() / 4))
	return []geom.Vec{
		geom.V(xl, 0),
		geom.V(xr, 0),
		geom.V(float64(w), cy),
		geom.V(xr, float64(h)),
		geom.V(xl, float64(h)),
		geom.V(0, cy),
	}
}

// EllipseGeometry is an ellipse inscribed in the node box. All eight
// compass directions act as both faces and corners.
type EllipseGeometry struct{}

// curveResolution is the number of polygon points approximating the
// ellipse outline.
const curveResolution = 360

func (EllipseGeometry) FaceAngles() map[string]float64 {
	return map[string]float64{
		"n": 0, "w": 90, "s": 180, "e": 270,
		"nw": 45, "sw": 135, "se": 225, "ne": 315,
	}
}

func (EllipseGeometry) FaceVectors(size geom.Size) map[string]geom.Vec {
	w, h := size.Half().X, size.Half().Y
	return map[string]geom.Vec{
		"n":  geom.V(0, h),
		"w":  geom.V(-w, 0),
		"s":  geom.V(0, -h),
		"e":  geom.V(w, 0),
		"nw": geom.V(-w, h),
		"sw": geom.V(-w, -h),
		"se": geom.V(w, -h),
		"ne": geom.V(w, h),
	}
}

func (g EllipseGeometry) CornerAngles() map[string]float64 {
	return g.FaceAngles()
}

func (g EllipseGeometry) CornerVectors(size geom.Size) map[string]geom.Vec {
	return g.FaceVectors(size)
}

func (EllipseGeometry) Polygon(size geom.Size) []geom.Vec {
	w, h := size.W(), size.H()
	pts := make([]geom.Vec, 0, curveResolution)
	for i := 0; i < curveResolution; i++ {
		theta := 2 * math.Pi * float64(i) / curveResolution
		pts = append(pts, geom.V(
			0.5*w*(1+math.Sin(theta)),
			0.5*h*(1+math.Cos(theta)),
		))
	}
	return pts
}

// NewRectangle builds a rectangular shape node.
func NewRectangle(size geom.Size, opts ...graphic.Option) *Shape {
	return New(RectangleGeometry{}, size, opts...)
}

// NewSquare builds a square shape node. The rectangle geometry applies;
// only the equal-sides constraint is added.
func NewSquare(side float64, opts ...graphic.Option) (*Shape, error) {
	size, err := geom.NewSize(side, side)
	if err != nil {
		return nil, err
	}
	return New(RectangleGeometry{}, size, opts...), nil
}

// NewHex builds a hexagonal shape node.
func NewHex(size geom.Size, opts ...graphic.Option) *Shape {
	return New(HexGeometry{}, size, opts...)
}

// NewEllipse builds an elliptical shape node.
func NewEllipse(size geom.Size, opts ...graphic.Option) *Shape {
	return New(EllipseGeometry{}, size, opts...)
}

// NewCircle builds a circular shape node: ellipse geometry with the
// equal-sides constraint.
func NewCircle(diameter float64, opts ...graphic.Option) (*Shape, error) {
	size, err := geom.NewSize(diameter, diameter)
	if err != nil {
		return nil, err
	}
	return New(EllipseGeometry{}, size, opts...), nil
}

// CheckSquare validates that a size has equal sides, for callers that
// construct squares and circles from decoded manifests.
func CheckSquare(size geom.Size) error {
	if size.W() != size.H() {
		return errors.New(errors.ErrCodeInvalidArgument,
			"sides must be equal, but got %s", size)
	}
	return nil
}
