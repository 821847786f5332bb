package graphic

import (
	"github.com/ggekit/gge/pkg/errors"
	"github.com/ggekit/gge/pkg/raster"
)

// Image returns the node's rendered image, rendering once on first use.
// Subsequent calls return the cached buffer until a mutation invalidates
// it.
func (n *Node) Image() (*raster.Image, error) {
	if n.image == nil {
		if err := n.Render(); err != nil {
			return nil, err
		}
	}
	return n.image, nil
}

// Render rebuilds the node's image from scratch: base buffer, then
// children composited depth-first in ascending (layer, attach order),
// then the mask hook, then rotation of the finished composite.
//
// Rendering the same tree twice yields identical pixels; no state other
// than the cached image is touched.
func (n *Node) Render() error {
	if (n.parent == nil) != (n.position == nil) {
		if n.position != nil {
			return n.fail(errors.ErrCodeDetachedPosition,
				"position %s is set but the node has no parent", n.position)
		}
		return n.fail(errors.ErrCodeDetachedPosition,
			"node is attached but has no position")
	}

	img, err := n.base()
	if err != nil {
		return err
	}

	for child := range n.children.InLayerOrder() {
		if err := child.Render(); err != nil {
			return err
		}
		cimg := child.image
		csize := cimg.SizeVec()
		if csize.Greater(n.size.Vec()).Any() {
			return child.fail(errors.ErrCodeOversizedChild,
				"rendered extent %s exceeds parent extent %s", csize, n.size)
		}

		pl, err := resolvePlacement(child, csize)
		if err != nil {
			return err
		}
		if pl.clamped.Empty() {
			// Entirely outside the parent: nothing to paste.
			continue
		}
		src := cimg
		if !pl.crop.IsZero() {
			src = n.backend.Crop(src, pl.crop)
		}
		n.backend.Paste(img, src, pl.clamped, true)
	}

	if n.mask != nil {
		img, err = n.mask(n.backend, img)
		if err != nil {
			return err
		}
	}
	if n.angle != 0 {
		img = n.backend.Rotate(img, n.angle, n.resample, true)
	}

	n.image = img
	return nil
}

// base produces the node's own buffer before children: content when
// present, otherwise a background-filled (or transparent) buffer.
func (n *Node) base() (*raster.Image, error) {
	if n.content != nil {
		return n.content.render(n)
	}
	w, h := n.size.IntWH()
	return n.backend.New(w, h, n.background), nil
}

// Invalidate drops cached images for this node and every ancestor, so
// the next Image call re-renders the affected path. Mutating setters
// call this for the node itself; explicit invalidation is only needed
// after out-of-band changes such as content field edits.
func (n *Node) Invalidate() {
	for p := n; p != nil; p = p.parent {
		p.image = nil
	}
}
