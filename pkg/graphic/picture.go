package graphic

import (
	"image"
	"math"

	"github.com/ggekit/gge/pkg/errors"
	"github.com/ggekit/gge/pkg/geom"
	"github.com/ggekit/gge/pkg/raster"
)

// Picture is node content that fills the node's box with an image. The
// source may be a file path, a named or hex color string, a stdlib
// image, or an already-loaded raster image.
//
// Non-color sources are cover-fitted: scaled preserving aspect ratio
// until both dimensions cover the box, then center-cropped to the box.
// An optional SampleBox selects a sub-region of the source before
// fitting.
type Picture struct {
	Source    any
	SampleBox *geom.Box
	Resample  raster.Resample
}

func (p *Picture) render(n *Node) (*raster.Image, error) {
	w, h := n.size.IntWH()
	b := n.backend

	if s, ok := p.Source.(string); ok && raster.IsColorString(s) {
		col, err := raster.ParseColor(s)
		if err != nil {
			return nil, err
		}
		return b.New(w, h, col), nil
	}

	src, err := p.sourceImage(n)
	if err != nil {
		return nil, err
	}
	if p.SampleBox != nil {
		if p.SampleBox.Empty() {
			return nil, n.fail(errors.ErrCodeInvalidArgument,
				"sample box %s covers no pixels", p.SampleBox)
		}
		src = b.Crop(src, *p.SampleBox)
	}

	// Cover fit: the larger of the two per-axis ratios scales the source
	// so both dimensions reach the box.
	scale := math.Max(
		float64(w)/float64(src.Width()),
		float64(h)/float64(src.Height()),
	)
	sw := max(int(math.Ceil(float64(src.Width())*scale)), w)
	sh := max(int(math.Ceil(float64(src.Height())*scale)), h)
	scaled := b.Resize(src, sw, sh, p.Resample)

	left := (sw - w) / 2
	top := (sh - h) / 2
	return b.Crop(scaled, geom.Box{Left: left, Top: top, Right: left + w, Bottom: top + h}), nil
}

func (p *Picture) sourceImage(n *Node) (*raster.Image, error) {
	switch src := p.Source.(type) {
	case *raster.Image:
		return src, nil
	case image.Image:
		return raster.FromImage(src), nil
	case string:
		return raster.Open(src)
	case nil:
		return nil, n.fail(errors.ErrCodeImageSource, "picture has no source")
	default:
		return nil, n.fail(errors.ErrCodeImageSource,
			"unsupported picture source type %T", p.Source)
	}
}
