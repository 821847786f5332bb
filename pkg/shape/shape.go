// Package shape builds graphic nodes with a geometric outline: the
// rendered composite is cut to the outline's polygon, and children can
// be attached relative to the outline's faces and corners by compass
// direction.
//
// Geometry is a capability attached to a node, not a node subtype: a
// [Shape] composes a plain [graphic.Node] with a [Geometry] that knows
// the outline polygon and the face/corner tables. Face and corner
// vectors are expressed in the center coordinate frame (origin at the
// shape's center, positive y up), matching the frame used when children
// are attached through the placement helpers.
package shape

import (
	"strings"

	"github.com/ggekit/gge/pkg/errors"
	"github.com/ggekit/gge/pkg/geom"
	"github.com/ggekit/gge/pkg/graphic"
	"github.com/ggekit/gge/pkg/raster"
)

// Geometry describes a shape outline for a given extent.
type Geometry interface {
	// FaceAngles maps compass directions to the rotation, in degrees,
	// of each face.
	FaceAngles() map[string]float64

	// FaceVectors maps compass directions to the vector from the shape
	// center to the middle of each face, in the center frame.
	FaceVectors(size geom.Size) map[string]geom.Vec

	// CornerAngles maps compass directions to the rotation, in degrees,
	// of each corner.
	CornerAngles() map[string]float64

	// CornerVectors maps compass directions to the vector from the
	// shape center to each corner, in the center frame.
	CornerVectors(size geom.Size) map[string]geom.Vec

	// Polygon returns the outline as pixel coordinates over a box of
	// the given extent.
	Polygon(size geom.Size) []geom.Vec
}

// Shape is a graphic node cut to a geometric outline.
type Shape struct {
	*graphic.Node
	geometry Geometry
}

// New builds a shape node of the given geometry and extent. Graphic
// options apply to the underlying node.
func New(g Geometry, size geom.Size, opts ...graphic.Option) *Shape {
	s := &Shape{geometry: g}
	opts = append(opts, graphic.WithMask(s.cutMask))
	s.Node = graphic.New(size, opts...)
	return s
}

// Geometry returns the shape's outline description.
func (s *Shape) Geometry() Geometry { return s.geometry }

// CutOut returns img cut to the shape's outline: pixels inside the
// polygon survive, pixels outside are cleared.
func (s *Shape) CutOut(img *raster.Image) *raster.Image {
	b := s.Backend()
	w, h := s.Size().IntWH()
	mask := b.New(w, h, nil)
	b.FillPolygon(mask, s.geometry.Polygon(s.Size()), opaque)
	return b.ApplyAlphaMask(img, mask)
}

func (s *Shape) cutMask(_ raster.Backend, img *raster.Image) (*raster.Image, error) {
	return s.CutOut(img), nil
}

// Angle resolves a direction to its rotation in degrees, checking faces
// first and corners second.
func (s *Shape) Angle(direction string) (float64, error) {
	d := strings.ToLower(direction)
	if a, ok := s.geometry.FaceAngles()[d]; ok {
		return a, nil
	}
	if a, ok := s.geometry.CornerAngles()[d]; ok {
		return a, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidArgument,
		"shape has no face or corner %q", direction)
}

// DirectionVector resolves a direction to the vector from the shape
// center, checking faces first and corners second.
func (s *Shape) DirectionVector(direction string) (geom.Vec, error) {
	d := strings.ToLower(direction)
	if v, ok := s.geometry.FaceVectors(s.Size())[d]; ok {
		return v, nil
	}
	if v, ok := s.geometry.CornerVectors(s.Size())[d]; ok {
		return v, nil
	}
	return geom.Vec{}, errors.New(errors.ErrCodeInvalidArgument,
		"shape has no face or corner %q", direction)
}

// AddCentered attaches child centered at the given position in the
// shape's center frame. The child's anchor, frame and position are
// overwritten.
func (s *Shape) AddCentered(name string, child *graphic.Node, pos geom.Vec) error {
	child.SetAnchor(graphic.AnchorCenter)
	child.SetFrame(graphic.FrameCenter)
	child.SetPosition(pos)
	return s.Children().Attach(name, child)
}

// AddToCenter attaches child at the shape's center.
func (s *Shape) AddToCenter(name string, child *graphic.Node) error {
	return s.AddCentered(name, child, geom.V(0, 0))
}

// AddToFace attaches child centered on the middle of the named face,
// pulled inward by buffer pixels and rotated to read from that face.
func (s *Shape) AddToFace(name string, child *graphic.Node, face string, buffer float64) error {
	d := strings.ToLower(face)
	angle, ok := s.geometry.FaceAngles()[d]
	if !ok {
		return errors.New(errors.ErrCodeInvalidArgument, "shape has no face %q", face)
	}
	vec := s.geometry.FaceVectors(s.Size())[d]
	return s.addDirected(name, child, vec, angle, buffer)
}

// AddToCorner attaches child centered on the named corner, pulled
// inward by buffer pixels and rotated to read from that corner.
func (s *Shape) AddToCorner(name string, child *graphic.Node, corner string, buffer float64) error {
	d := strings.ToLower(corner)
	angle, ok := s.geometry.CornerAngles()[d]
	if !ok {
		return errors.New(errors.ErrCodeInvalidArgument, "shape has no corner %q", corner)
	}
	vec := s.geometry.CornerVectors(s.Size())[d]
	return s.addDirected(name, child, vec, angle, buffer)
}

func (s *Shape) addDirected(name string, child *graphic.Node, vec geom.Vec, angle, buffer float64) error {
	pos := vec.Sub(vec.Unit().Scale(buffer))
	// Plus 180 so the child reads inward from its face or corner.
	child.SetAngle(angle + 180)
	return s.AddCentered(name, child, pos)
}
