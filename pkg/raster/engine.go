package raster

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ggekit/gge/pkg/geom"
)

// Engine is the default CPU raster backend.
//
// Geometric transforms (crop, resize, rotate) delegate to
// github.com/disintegration/imaging; anti-aliased polygon fills and line
// strokes go through a github.com/fogleman/gg context; text runs through
// an x/image font.Drawer so that measurement and drawing share the exact
// same metrics. Engine is stateless and safe to share.
type Engine struct{}

// Default returns the shared CPU backend.
func Default() Backend { return Engine{} }

var resampleFilters = map[Resample]imaging.ResampleFilter{
	ResampleNearest:    imaging.NearestNeighbor,
	ResampleBox:        imaging.Box,
	ResampleLinear:     imaging.Linear,
	ResampleCatmullRom: imaging.CatmullRom,
	ResampleLanczos:    imaging.Lanczos,
}

func filterFor(mode Resample) imaging.ResampleFilter {
	if f, ok := resampleFilters[mode]; ok {
		return f
	}
	return imaging.NearestNeighbor
}

// New allocates a w x h buffer filled with the given color.
func (Engine) New(w, h int, fill color.Color) *Image {
	if fill == nil {
		fill = color.NRGBA{}
	}
	return &Image{nrgba: imaging.New(w, h, fill)}
}

// Paste composites src onto dst inside box.
func (Engine) Paste(dst, src *Image, box geom.Box, srcAlphaMask bool) {
	op := draw.Src
	if srcAlphaMask {
		// Over respects the source's own alpha, matching a paste that
		// uses the source as its own mask.
		op = draw.Over
	}
	draw.Draw(dst.nrgba, box.Rect(), src.nrgba, image.Point{}, op)
}

// Crop returns the sub-image of src covered by box.
func (Engine) Crop(src *Image, box geom.Box) *Image {
	return &Image{nrgba: imaging.Crop(src.nrgba, box.Rect())}
}

// ApplyAlphaMask returns src multiplied by mask's alpha channel.
func (Engine) ApplyAlphaMask(src, mask *Image) *Image {
	out := image.NewNRGBA(src.nrgba.Bounds())
	draw.DrawMask(out, out.Bounds(), src.nrgba, image.Point{}, mask.nrgba, image.Point{}, draw.Over)
	return &Image{nrgba: out}
}

// Resize scales src to w x h.
func (Engine) Resize(src *Image, w, h int, mode Resample) *Image {
	return &Image{nrgba: imaging.Resize(src.nrgba, w, h, filterFor(mode))}
}

// Rotate turns src counter-clockwise by degrees around its center.
// The CPU backend always rotates with imaging's built-in interpolation;
// mode is accepted for interface compatibility.
func (Engine) Rotate(src *Image, degrees float64, mode Resample, expand bool) *Image {
	_ = mode
	rotated := imaging.Rotate(src.nrgba, degrees, color.NRGBA{})
	if !expand {
		rotated = imaging.CropCenter(rotated, src.Width(), src.Height())
	}
	return &Image{nrgba: rotated}
}

// MeasureText returns the pixel extent of text rendered with face.
func (Engine) MeasureText(text string, face font.Face) (int, int) {
	lines := strings.Split(text, "\n")
	lineHeight := face.Metrics().Height.Ceil()
	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	return width, lineHeight * len(lines)
}

// DrawText draws text with its top-left corner at pos.
func (Engine) DrawText(dst *Image, pos geom.Vec, text string, face font.Face, col color.Color) {
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	x, y := pos.IntXY()
	d := font.Drawer{
		Dst:  dst.nrgba,
		Src:  image.NewUniform(col),
		Face: face,
	}
	for i, line := range strings.Split(text, "\n") {
		d.Dot = fixedPoint(x, y+ascent+i*lineHeight)
		d.DrawString(line)
	}
}

// FillPolygon fills the closed polygon described by pts.
func (Engine) FillPolygon(dst *Image, pts []geom.Vec, col color.Color) {
	if len(pts) < 3 {
		return
	}
	withContext(dst, func(c *gg.Context) {
		c.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetColor(col)
		c.Fill()
	})
}

// DrawLine strokes a straight line from a to b.
func (Engine) DrawLine(dst *Image, a, b geom.Vec, col color.Color, width float64) {
	withContext(dst, func(c *gg.Context) {
		c.SetColor(col)
		c.SetLineWidth(width)
		c.DrawLine(a.X, a.Y, b.X, b.Y)
		c.Stroke()
	})
}

// withContext runs vector drawing against a gg context over a copy of dst
// and writes the result back. gg works on RGBA internally, so a round trip
// through the context is unavoidable.
func withContext(dst *Image, fn func(*gg.Context)) {
	c := gg.NewContextForImage(dst.nrgba)
	fn(c)
	out := c.Image()
	draw.Draw(dst.nrgba, dst.nrgba.Bounds(), out, out.Bounds().Min, draw.Src)
}

func fixedPoint(x, y int) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
}

var _ Backend = Engine{}
