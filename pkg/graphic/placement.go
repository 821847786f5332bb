package graphic

import (
	"github.com/ggekit/gge/pkg/errors"
	"github.com/ggekit/gge/pkg/geom"
)

// placement is the result of resolving a child's position against its
// parent: the free (unclamped) box the child would occupy, the box
// clamped to the parent's bounds, and the source-space crop needed to
// make the child's image fit the clamped box.
type placement struct {
	free    geom.Box
	clamped geom.Box
	crop    geom.Box // zero when no cropping is needed
}

// resolvePlacement computes where a child's image of extent ownSize
// lands on its parent. ownSize is the rendered image extent, which
// differs from the declared size when the child is rotated.
//
// The resolution order is fixed: pick the parent reference point from
// the coordinate frame, adjust the position for the frame's y
// direction, subtract the anchor offset to get the upper-left corner,
// then clamp to the parent. Fractional coordinates truncate toward
// zero when the boxes are formed.
func resolvePlacement(child *Node, ownSize geom.Vec) (placement, error) {
	parent := child.parent
	pos := *child.position

	var ref geom.Vec
	switch child.frame {
	case FrameUpperLeft:
		ref = geom.V(0, 0)
	case FrameCenter:
		ref = parent.size.Half()
		// Center frames use the math convention: positive y is up.
		pos = pos.FlipY()
	default:
		return placement{}, child.fail(errors.ErrCodeInvalidEnum,
			"unknown coordinate frame %d", int(child.frame))
	}

	var anchorOff geom.Vec
	switch child.anchor {
	case AnchorUpperLeft:
		anchorOff = geom.V(0, 0)
	case AnchorCenter:
		anchorOff = ownSize.Scale(0.5)
	default:
		return placement{}, child.fail(errors.ErrCodeInvalidEnum,
			"unknown anchor %d", int(child.anchor))
	}

	tl := ref.Add(pos).Sub(anchorOff)
	br := tl.Add(ownSize)
	free := geom.BoxFromCorners(tl, br)

	lo := geom.V(0, 0)
	hi := parent.size.Vec()
	ctl, err := tl.Clamp(&lo, &hi)
	if err != nil {
		return placement{}, err
	}
	cbr, err := br.Clamp(&lo, &hi)
	if err != nil {
		return placement{}, err
	}
	clamped := geom.BoxFromCorners(ctl, cbr)

	p := placement{free: free, clamped: clamped}
	if delta := clamped.Delta(free); !delta.IsZero() {
		w, h := ownSize.IntXY()
		p.crop = geom.Box{
			Left:   delta.Left,
			Top:    delta.Top,
			Right:  w + delta.Right,
			Bottom: h + delta.Bottom,
		}
	}
	return p, nil
}
