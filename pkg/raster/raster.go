// Package raster provides the pixel-level drawing capability consumed by
// the layout engine. The engine never touches pixels itself; everything it
// needs is expressed through the [Backend] interface: buffer creation,
// paste-with-mask compositing, cropping, resizing, rotation, polygon and
// line drawing, and text measurement/drawing.
//
// The default implementation is a pure-CPU backend built on
// github.com/disintegration/imaging for geometric transforms and
// github.com/fogleman/gg for anti-aliased vector drawing. All coordinates
// handed to a Backend are integer pixel boxes in (left, top, right, bottom)
// order; fractional layout math stays in pkg/geom.
package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"

	"github.com/ggekit/gge/pkg/geom"
)

// Resample selects the interpolation filter for resize operations.
type Resample int

const (
	// ResampleNearest is nearest-neighbor sampling, the fastest and
	// blockiest option.
	ResampleNearest Resample = iota
	// ResampleBox averages source pixels per destination pixel.
	ResampleBox
	// ResampleLinear is bilinear interpolation.
	ResampleLinear
	// ResampleCatmullRom is a sharp cubic filter, a good default for
	// downscaling photographic content.
	ResampleCatmullRom
	// ResampleLanczos is a high-quality windowed sinc filter.
	ResampleLanczos
)

// Backend is the raster capability required by the compositing engine.
//
// Implementations own the pixel representation behind [Image]; callers
// treat Image values as opaque handles. A destination image passed to
// Paste, DrawText, FillPolygon or DrawLine is mutated in place; every
// other operation returns a fresh image and leaves its input untouched.
type Backend interface {
	// New allocates a w x h image filled with the given color.
	// A nil fill produces a fully transparent buffer.
	New(w, h int, fill color.Color) *Image

	// Paste composites src onto dst inside box. When srcAlphaMask is
	// true the source's own alpha channel masks the paste (transparent
	// source pixels leave dst untouched); otherwise the source replaces
	// the destination rectangle outright.
	Paste(dst, src *Image, box geom.Box, srcAlphaMask bool)

	// Crop returns the sub-image of src covered by box.
	Crop(src *Image, box geom.Box) *Image

	// ApplyAlphaMask returns src multiplied by mask's alpha channel on
	// a transparent canvas: pixels where the mask is opaque survive,
	// pixels where it is transparent are cleared. Shape cut-outs are
	// built on this.
	ApplyAlphaMask(src, mask *Image) *Image

	// Resize scales src to w x h using the given filter.
	Resize(src *Image, w, h int, mode Resample) *Image

	// Rotate turns src counter-clockwise by the given angle in degrees.
	// With expand the canvas grows to the rotated bounding box; without
	// it the result is center-cropped back to the source dimensions.
	// Revealed background is transparent. mode selects the sampling
	// filter where the implementation supports a choice.
	Rotate(src *Image, degrees float64, mode Resample, expand bool) *Image

	// MeasureText returns the pixel extent of text drawn with face.
	// Text may contain newlines; the width is the widest line and the
	// height covers all lines at the face's line height.
	MeasureText(text string, face font.Face) (w, h int)

	// DrawText draws text with its top-left corner at pos. Newlines
	// start new lines at the face's line height.
	DrawText(dst *Image, pos geom.Vec, text string, face font.Face, col color.Color)

	// FillPolygon fills the closed polygon described by pts.
	FillPolygon(dst *Image, pts []geom.Vec, col color.Color)

	// DrawLine strokes a straight line from a to b.
	DrawLine(dst *Image, a, b geom.Vec, col color.Color, width float64)
}

// Image is an opaque raster buffer handle.
type Image struct {
	nrgba *image.NRGBA
}

// FromImage wraps an arbitrary stdlib image as a backend image,
// converting to the internal representation if necessary.
func FromImage(img image.Image) *Image {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == image.Pt(0, 0) {
		return &Image{nrgba: n}
	}
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			n.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return &Image{nrgba: n}
}

// Width returns the pixel width.
func (i *Image) Width() int { return i.nrgba.Bounds().Dx() }

// Height returns the pixel height.
func (i *Image) Height() int { return i.nrgba.Bounds().Dy() }

// SizeVec returns the image extent as a vector.
func (i *Image) SizeVec() geom.Vec {
	return geom.V(float64(i.Width()), float64(i.Height()))
}

// Bounds returns the image extent as a box anchored at the origin.
func (i *Image) Bounds() geom.Box {
	return geom.Box{Right: i.Width(), Bottom: i.Height()}
}

// At returns the color of the pixel at (x, y).
func (i *Image) At(x, y int) color.NRGBA {
	return i.nrgba.NRGBAAt(x, y)
}

// Std exposes the underlying stdlib image for encoding and interop.
// The returned image shares pixels with the handle; treat it as read-only.
func (i *Image) Std() image.Image { return i.nrgba }
