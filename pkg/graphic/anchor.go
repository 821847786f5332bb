package graphic

import "github.com/ggekit/gge/pkg/errors"

// Anchor selects which point of a node's own box lands on its resolved
// position.
type Anchor int

const (
	// AnchorUpperLeft places the node's upper-left corner on the
	// resolved position.
	AnchorUpperLeft Anchor = iota
	// AnchorCenter places the node's center on the resolved position.
	AnchorCenter
)

// String returns the canonical name used in manifests and error messages.
func (a Anchor) String() string {
	switch a {
	case AnchorUpperLeft:
		return "upper left"
	case AnchorCenter:
		return "center"
	default:
		return "unknown"
	}
}

// ParseAnchor converts a manifest string into an Anchor.
func ParseAnchor(s string) (Anchor, error) {
	switch s {
	case "upper left", "upper_left", "upperleft":
		return AnchorUpperLeft, nil
	case "center":
		return AnchorCenter, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidEnum, "unknown anchor %q (expected \"upper left\" or \"center\")", s)
	}
}

// Frame selects the reference point on the parent that positions are
// measured from.
type Frame int

const (
	// FrameUpperLeft measures positions from the parent's upper-left
	// corner, y growing downward.
	FrameUpperLeft Frame = iota
	// FrameCenter measures positions from the parent's center, y growing
	// upward.
	FrameCenter
)

func (f Frame) String() string {
	switch f {
	case FrameUpperLeft:
		return "upper left"
	case FrameCenter:
		return "center"
	default:
		return "unknown"
	}
}

// ParseFrame converts a manifest string into a Frame.
func ParseFrame(s string) (Frame, error) {
	switch s {
	case "upper left", "upper_left", "upperleft":
		return FrameUpperLeft, nil
	case "center":
		return FrameCenter, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidEnum, "unknown coordinate frame %q (expected \"upper left\" or \"center\")", s)
	}
}
