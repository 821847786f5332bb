// Package graphic implements the scene-graph compositing engine: a tree
// of nodes, each owning a size, background, position, anchor, coordinate
// frame, rotation and layer, rendered bottom-up into a single raster
// image.
//
// # Architecture
//
// A [Node] is created standalone and attached to a parent through the
// parent's child [Registry], which fixes the child's parent pointer and
// name atomically. Requesting a node's image triggers a depth-first
// render: every child materializes its own buffer first, the layout
// resolver computes each child's placement box on its parent (anchor and
// coordinate-frame resolution, clamping at parent boundaries), and the
// parent pastes child images in ascending (layer, attach order).
//
// # Coordinate model
//
// Positions are measured from a reference point on the parent selected
// by the coordinate frame: the parent's upper-left corner, or its center
// with the y axis flipped so that positive y moves up. The anchor selects
// which point of the child's own box lands on the resolved position: its
// upper-left corner or its center.
//
// # Failure model
//
// Structural violations fail fast at render time with structured error
// codes: a position without a parent (or vice versa) is DETACHED_POSITION,
// a child larger than its parent is OVERSIZED_CHILD, and unknown anchor
// or frame values are INVALID_ENUM_VALUE. Errors carry the offending
// node's path in the tree. There is no partial-render recovery: if any
// node in a subtree fails, the whole render fails.
//
// # Usage
//
//	card := graphic.New(geom.MustSize(400, 600), graphic.WithBackgroundColor("#ffffff"))
//	title := graphic.New(geom.MustSize(360, 60),
//		graphic.WithPosition(geom.V(0, -20)),
//		graphic.WithFrame(graphic.FrameCenter),
//		graphic.WithAnchor(graphic.AnchorCenter),
//		graphic.WithText(&graphic.Text{Content: "Ancient Fortress", FontSize: 32, Wrap: true}),
//	)
//	if err := card.Children().Attach("title", title); err != nil {
//		return err
//	}
//	img, err := card.Image()
package graphic
