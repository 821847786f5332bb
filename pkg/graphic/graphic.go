package graphic

import (
	"image/color"

	"github.com/ggekit/gge/pkg/errors"
	"github.com/ggekit/gge/pkg/geom"
	"github.com/ggekit/gge/pkg/raster"
)

// Content renders domain-specific pixels (text, pictures) into a node's
// own buffer before children are composited on top.
type Content interface {
	// render produces the node's base image at the node's size. The
	// returned image replaces the plain background buffer.
	render(n *Node) (*raster.Image, error)
}

// Node is a single element of the graphic tree. It owns a strictly
// positive size, an optional background fill, optional content, and a
// registry of named children composited on top in layer order.
//
// A node is standalone until attached to a parent's registry; attaching
// fixes its parent pointer and name. Position, anchor, frame, layer and
// angle only affect placement on the parent, never the node's own buffer
// (except angle, which rotates the finished composite).
type Node struct {
	size       geom.Size
	background color.Color
	content    Content
	mask       MaskFunc

	parent   *Node
	name     string
	position *geom.Vec
	anchor   Anchor
	frame    Frame
	layer    int
	angle    float64
	resample raster.Resample

	children *Registry
	backend  raster.Backend
	image    *raster.Image
}

// MaskFunc post-processes a node's finished composite, before rotation.
// Shape cut-outs are implemented this way.
type MaskFunc func(b raster.Backend, img *raster.Image) (*raster.Image, error)

// Option configures a Node at construction time.
type Option func(*Node)

// New constructs a standalone node of the given size.
func New(size geom.Size, opts ...Option) *Node {
	n := &Node{
		size:    size,
		anchor:  AnchorUpperLeft,
		frame:   FrameUpperLeft,
		backend: raster.Default(),
	}
	n.children = newRegistry(n)
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// WithBackground sets the background fill color. Nil keeps the buffer
// transparent.
func WithBackground(c color.Color) Option {
	return func(n *Node) { n.background = c }
}

// WithBackgroundColor sets the background from a named or hex color
// string. Unparseable strings are ignored here and rejected by the
// manifest layer, which validates before construction.
func WithBackgroundColor(s string) Option {
	return func(n *Node) {
		if c, err := raster.ParseColor(s); err == nil {
			n.background = c
		}
	}
}

// WithPosition sets the placement position relative to the parent's
// coordinate frame.
func WithPosition(p geom.Vec) Option {
	return func(n *Node) { n.position = &p }
}

// WithAnchor selects the point of the node's own box placed on the
// resolved position.
func WithAnchor(a Anchor) Option {
	return func(n *Node) { n.anchor = a }
}

// WithFrame selects the parent reference point positions are measured
// from.
func WithFrame(f Frame) Option {
	return func(n *Node) { n.frame = f }
}

// WithLayer sets the z-order among siblings. Higher layers paste later.
func WithLayer(l int) Option {
	return func(n *Node) { n.layer = l }
}

// WithAngle sets the counter-clockwise rotation in degrees applied to
// the node's finished composite.
func WithAngle(deg float64) Option {
	return func(n *Node) { n.angle = deg }
}

// WithResample selects the interpolation filter for the node's raster
// transforms.
func WithResample(r raster.Resample) Option {
	return func(n *Node) { n.resample = r }
}

// WithText attaches text content drawn into the node's own box.
func WithText(t *Text) Option {
	return func(n *Node) { n.content = t }
}

// WithPicture attaches picture content filling the node's own box.
func WithPicture(p *Picture) Option {
	return func(n *Node) { n.content = p }
}

// WithMask sets a post-composite mask hook.
func WithMask(m MaskFunc) Option {
	return func(n *Node) { n.mask = m }
}

// WithBackend overrides the raster backend for this node and, through
// recursion, the subtrees it renders.
func WithBackend(b raster.Backend) Option {
	return func(n *Node) {
		if b != nil {
			n.backend = b
		}
	}
}

// Size returns the node's declared extent.
func (n *Node) Size() geom.Size { return n.size }

// SetSize replaces the node's extent and invalidates any cached image.
func (n *Node) SetSize(s geom.Size) {
	n.size = s
	n.image = nil
}

// Background returns the background fill, nil for transparent.
func (n *Node) Background() color.Color { return n.background }

// SetBackground replaces the background fill.
func (n *Node) SetBackground(c color.Color) {
	n.background = c
	n.image = nil
}

// Name returns the name assigned at attach time, empty for a detached
// or root node.
func (n *Node) Name() string { return n.name }

// Parent returns the owning node, nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Position returns a copy of the placement position, or nil when unset.
func (n *Node) Position() *geom.Vec {
	if n.position == nil {
		return nil
	}
	p := *n.position
	return &p
}

// SetPosition sets the placement position.
func (n *Node) SetPosition(p geom.Vec) {
	n.position = &p
	n.image = nil
}

// ClearPosition removes the placement position, returning the node to
// the detached state expected of roots.
func (n *Node) ClearPosition() {
	n.position = nil
	n.image = nil
}

// Anchor returns the node's anchor.
func (n *Node) Anchor() Anchor { return n.anchor }

// SetAnchor replaces the anchor.
func (n *Node) SetAnchor(a Anchor) {
	n.anchor = a
	n.image = nil
}

// Frame returns the node's coordinate frame.
func (n *Node) Frame() Frame { return n.frame }

// SetFrame replaces the coordinate frame.
func (n *Node) SetFrame(f Frame) {
	n.frame = f
	n.image = nil
}

// Layer returns the z-order among siblings.
func (n *Node) Layer() int { return n.layer }

// SetLayer replaces the layer.
func (n *Node) SetLayer(l int) {
	n.layer = l
	n.image = nil
}

// Angle returns the rotation in degrees.
func (n *Node) Angle() float64 { return n.angle }

// SetAngle replaces the rotation.
func (n *Node) SetAngle(deg float64) {
	n.angle = deg
	n.image = nil
}

// Children returns the node's child registry.
func (n *Node) Children() *Registry { return n.children }

// Backend returns the raster backend in use.
func (n *Node) Backend() raster.Backend { return n.backend }

// Path returns the slash-joined names from the root down to this node,
// used to locate a node in error messages. Unnamed nodes (roots and
// detached nodes) render as ".".
func (n *Node) Path() string {
	if n.parent == nil {
		if n.name == "" {
			return "."
		}
		return n.name
	}
	return n.parent.Path() + "/" + n.name
}

// Root walks parent pointers to the tree root.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// isAncestorOf reports whether n lies on other's parent chain.
func (n *Node) isAncestorOf(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// fail wraps an error code with this node's tree path.
func (n *Node) fail(code errors.Code, format string, args ...any) error {
	return errors.New(code, "node %s: "+format, append([]any{n.Path()}, args...)...)
}
