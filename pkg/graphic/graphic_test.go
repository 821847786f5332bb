package graphic

import (
	"image/color"
	"strings"
	"testing"

	"github.com/ggekit/gge/pkg/errors"
	"github.com/ggekit/gge/pkg/geom"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func TestRegistryAttachRemove(t *testing.T) {
	parent := New(geom.MustSize(10, 10))
	child := New(geom.MustSize(4, 4), WithPosition(geom.V(0, 0)))

	if err := parent.Children().Attach("badge", child); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if child.Parent() != parent {
		t.Error("expected child parent to be set on attach")
	}
	if child.Name() != "badge" {
		t.Errorf("expected name badge, got %q", child.Name())
	}
	got, ok := parent.Children().Get("badge")
	if !ok || got != child {
		t.Error("expected Get to return the attached child")
	}

	removed, err := parent.Children().Remove("badge")
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if removed != child {
		t.Error("expected Remove to return the detached child")
	}
	if child.Parent() != nil || child.Name() != "" {
		t.Error("expected parent and name cleared after remove")
	}
	if parent.Children().Len() != 0 {
		t.Errorf("expected empty registry, got %d children", parent.Children().Len())
	}

	// A detached child can be attached again under a new name.
	if err := parent.Children().Attach("crest", child); err != nil {
		t.Fatalf("re-attach failed: %v", err)
	}
}

func TestRegistryAttachErrors(t *testing.T) {
	parent := New(geom.MustSize(10, 10))
	other := New(geom.MustSize(10, 10))
	attached := New(geom.MustSize(2, 2), WithPosition(geom.V(0, 0)))
	if err := other.Children().Attach("taken", attached); err != nil {
		t.Fatalf("setup attach failed: %v", err)
	}
	if err := parent.Children().Attach("dup", New(geom.MustSize(2, 2))); err != nil {
		t.Fatalf("setup attach failed: %v", err)
	}

	tests := []struct {
		testName string
		name     string
		child    *Node
		wantCode errors.Code
	}{
		{"nil child", "x", nil, errors.ErrCodeNotAGraphic},
		{"empty name", "", New(geom.MustSize(2, 2)), errors.ErrCodeInvalidArgument},
		{"duplicate name", "dup", New(geom.MustSize(2, 2)), errors.ErrCodeDuplicateName},
		{"already parented", "y", attached, errors.ErrCodeAlreadyParented},
		{"self cycle", "self", parent, errors.ErrCodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			err := parent.Children().Attach(tt.name, tt.child)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("expected code %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestRegistryLayerOrder(t *testing.T) {
	parent := New(geom.MustSize(10, 10))
	top := New(geom.MustSize(2, 2), WithPosition(geom.V(0, 0)), WithLayer(2))
	first := New(geom.MustSize(2, 2), WithPosition(geom.V(0, 0)), WithLayer(1))
	second := New(geom.MustSize(2, 2), WithPosition(geom.V(0, 0)), WithLayer(1))

	for _, c := range []struct {
		name string
		node *Node
	}{{"top", top}, {"first", first}, {"second", second}} {
		if err := parent.Children().Attach(c.name, c.node); err != nil {
			t.Fatalf("Attach %s failed: %v", c.name, err)
		}
	}

	var got []string
	for c := range parent.Children().InLayerOrder() {
		got = append(got, c.Name())
	}
	want := []string{"first", "second", "top"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected layer order %v, got %v", want, got)
		}
	}
}

func TestRenderLayerStacking(t *testing.T) {
	parent := New(geom.MustSize(4, 4))
	below := New(geom.MustSize(4, 4), WithPosition(geom.V(0, 0)), WithLayer(1), WithBackground(red))
	above := New(geom.MustSize(4, 4), WithPosition(geom.V(0, 0)), WithLayer(2), WithBackground(blue))
	if err := parent.Children().Attach("below", below); err != nil {
		t.Fatal(err)
	}
	if err := parent.Children().Attach("above", above); err != nil {
		t.Fatal(err)
	}

	img, err := parent.Image()
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}
	if got := img.At(2, 2); got != blue {
		t.Errorf("expected higher layer on top, got %v", got)
	}
}

func TestRenderCenterFrameAndAnchor(t *testing.T) {
	// A 2x2 child centered in a 4x4 parent resolves to corner (1, 1).
	parent := New(geom.MustSize(4, 4))
	child := New(geom.MustSize(2, 2),
		WithPosition(geom.V(0, 0)),
		WithFrame(FrameCenter),
		WithAnchor(AnchorCenter),
		WithBackground(red),
	)
	if err := parent.Children().Attach("pip", child); err != nil {
		t.Fatal(err)
	}

	img, err := parent.Image()
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}
	for _, p := range []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{}},
		{1, 1, red},
		{2, 2, red},
		{3, 3, color.NRGBA{}},
	} {
		if got := img.At(p.x, p.y); got != p.want {
			t.Errorf("pixel (%d, %d): expected %v, got %v", p.x, p.y, p.want, got)
		}
	}
}

func TestRenderCenterFrameYFlip(t *testing.T) {
	// In a center frame positive y moves up, so (0, 1) lands above the
	// parent center.
	parent := New(geom.MustSize(8, 8))
	child := New(geom.MustSize(2, 2),
		WithPosition(geom.V(0, 1)),
		WithFrame(FrameCenter),
		WithAnchor(AnchorCenter),
		WithBackground(red),
	)
	if err := parent.Children().Attach("pip", child); err != nil {
		t.Fatal(err)
	}
	img, err := parent.Image()
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}
	// Corner is (4, 4) - (0, 1) - (1, 1) = (3, 2).
	if got := img.At(3, 2); got != red {
		t.Errorf("expected child shifted up, got %v at (3, 2)", got)
	}
	if got := img.At(3, 5); got != (color.NRGBA{}) {
		t.Errorf("expected transparency below center, got %v at (3, 5)", got)
	}
}

func TestRenderClampsAtBoundary(t *testing.T) {
	parent := New(geom.MustSize(4, 4))
	child := New(geom.MustSize(2, 2),
		WithPosition(geom.V(-1, -1)),
		WithBackground(red),
	)
	if err := parent.Children().Attach("edge", child); err != nil {
		t.Fatal(err)
	}
	img, err := parent.Image()
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}
	if got := img.At(0, 0); got != red {
		t.Errorf("expected the surviving corner pasted, got %v", got)
	}
	if got := img.At(1, 1); got != (color.NRGBA{}) {
		t.Errorf("expected transparency outside the clamped box, got %v", got)
	}
}

func TestRenderSkipsFullyClampedChild(t *testing.T) {
	parent := New(geom.MustSize(4, 4))
	child := New(geom.MustSize(2, 2),
		WithPosition(geom.V(10, 10)),
		WithBackground(red),
	)
	if err := parent.Children().Attach("off", child); err != nil {
		t.Fatal(err)
	}
	img, err := parent.Image()
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := img.At(x, y); got != (color.NRGBA{}) {
				t.Fatalf("expected fully transparent parent, got %v at (%d, %d)", got, x, y)
			}
		}
	}
}

func TestRenderOversizedChild(t *testing.T) {
	parent := New(geom.MustSize(5, 5))
	child := New(geom.MustSize(10, 10), WithPosition(geom.V(0, 0)))
	if err := parent.Children().Attach("big", child); err != nil {
		t.Fatal(err)
	}
	_, err := parent.Image()
	if !errors.Is(err, errors.ErrCodeOversizedChild) {
		t.Fatalf("expected OVERSIZED_CHILD, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "big") {
		t.Errorf("expected error to name the offending node, got %v", err)
	}
}

func TestRenderOversizedAfterRotation(t *testing.T) {
	// 4x2 fits a 4x3 parent, but rotated 90 degrees it becomes 2x4 and
	// no longer fits the height.
	parent := New(geom.MustSize(4, 3))
	child := New(geom.MustSize(4, 2),
		WithPosition(geom.V(0, 0)),
		WithAngle(90),
	)
	if err := parent.Children().Attach("bar", child); err != nil {
		t.Fatal(err)
	}
	_, err := parent.Image()
	if !errors.Is(err, errors.ErrCodeOversizedChild) {
		t.Fatalf("expected OVERSIZED_CHILD, got %v", err)
	}
}

func TestRenderRotatedChildPlacement(t *testing.T) {
	// A rotated child is placed using its post-rotation extent.
	parent := New(geom.MustSize(6, 6))
	child := New(geom.MustSize(4, 2),
		WithPosition(geom.V(0, 0)),
		WithFrame(FrameCenter),
		WithAnchor(AnchorCenter),
		WithAngle(90),
		WithBackground(red),
	)
	if err := parent.Children().Attach("bar", child); err != nil {
		t.Fatal(err)
	}
	img, err := parent.Image()
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}
	// Post-rotation extent is 2x4, so the centered corner is (2, 1).
	if got := img.At(3, 1); got != red {
		t.Errorf("expected rotated child pixel at (3, 1), got %v", got)
	}
	if got := img.At(1, 3); got != (color.NRGBA{}) {
		t.Errorf("expected transparency beside rotated child, got %v at (1, 3)", got)
	}
}

func TestRenderDetachedPosition(t *testing.T) {
	t.Run("position without parent", func(t *testing.T) {
		root := New(geom.MustSize(4, 4), WithPosition(geom.V(1, 1)))
		_, err := root.Image()
		if !errors.Is(err, errors.ErrCodeDetachedPosition) {
			t.Fatalf("expected DETACHED_POSITION, got %v", err)
		}
	})

	t.Run("parent without position", func(t *testing.T) {
		parent := New(geom.MustSize(4, 4))
		child := New(geom.MustSize(2, 2))
		if err := parent.Children().Attach("c", child); err != nil {
			t.Fatal(err)
		}
		_, err := parent.Image()
		if !errors.Is(err, errors.ErrCodeDetachedPosition) {
			t.Fatalf("expected DETACHED_POSITION, got %v", err)
		}
	})
}

func TestRenderInvalidEnum(t *testing.T) {
	parent := New(geom.MustSize(4, 4))
	child := New(geom.MustSize(2, 2),
		WithPosition(geom.V(0, 0)),
		WithAnchor(Anchor(99)),
	)
	if err := parent.Children().Attach("c", child); err != nil {
		t.Fatal(err)
	}
	_, err := parent.Image()
	if !errors.Is(err, errors.ErrCodeInvalidEnum) {
		t.Fatalf("expected INVALID_ENUM_VALUE, got %v", err)
	}
}

func TestRenderDeterministic(t *testing.T) {
	build := func() *Node {
		parent := New(geom.MustSize(16, 16), WithBackground(color.NRGBA{R: 10, G: 20, B: 30, A: 255}))
		a := New(geom.MustSize(6, 6),
			WithPosition(geom.V(1, 1)),
			WithBackground(red),
			WithAngle(45),
			WithLayer(1),
		)
		b := New(geom.MustSize(4, 4),
			WithPosition(geom.V(0, 0)),
			WithFrame(FrameCenter),
			WithAnchor(AnchorCenter),
			WithBackground(blue),
			WithLayer(2),
		)
		if err := parent.Children().Attach("a", a); err != nil {
			t.Fatal(err)
		}
		if err := parent.Children().Attach("b", b); err != nil {
			t.Fatal(err)
		}
		return parent
	}

	first := build()
	second := build()
	img1, err := first.Image()
	if err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	img2, err := second.Image()
	if err != nil {
		t.Fatalf("second render failed: %v", err)
	}
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		t.Fatal("expected identical dimensions")
	}
	for y := 0; y < img1.Height(); y++ {
		for x := 0; x < img1.Width(); x++ {
			if img1.At(x, y) != img2.At(x, y) {
				t.Fatalf("pixel (%d, %d) differs between renders", x, y)
			}
		}
	}

	// Re-rendering the same tree also yields the same pixels.
	if err := first.Render(); err != nil {
		t.Fatalf("re-render failed: %v", err)
	}
	img3, _ := first.Image()
	for y := 0; y < img1.Height(); y++ {
		for x := 0; x < img1.Width(); x++ {
			if img1.At(x, y) != img3.At(x, y) {
				t.Fatalf("pixel (%d, %d) differs after re-render", x, y)
			}
		}
	}
}

func TestRenderCacheInvalidation(t *testing.T) {
	node := New(geom.MustSize(4, 4), WithBackground(red))
	img1, err := node.Image()
	if err != nil {
		t.Fatal(err)
	}
	img2, err := node.Image()
	if err != nil {
		t.Fatal(err)
	}
	if img1 != img2 {
		t.Error("expected cached image on repeated calls")
	}

	node.SetBackground(blue)
	img3, err := node.Image()
	if err != nil {
		t.Fatal(err)
	}
	if img3 == img1 {
		t.Error("expected mutation to invalidate the cache")
	}
	if got := img3.At(0, 0); got != blue {
		t.Errorf("expected new background, got %v", got)
	}
}

func TestNodePath(t *testing.T) {
	root := New(geom.MustSize(10, 10))
	mid := New(geom.MustSize(5, 5), WithPosition(geom.V(0, 0)))
	leaf := New(geom.MustSize(2, 2), WithPosition(geom.V(0, 0)))
	if err := root.Children().Attach("mid", mid); err != nil {
		t.Fatal(err)
	}
	if err := mid.Children().Attach("leaf", leaf); err != nil {
		t.Fatal(err)
	}
	if got := leaf.Path(); got != "./mid/leaf" {
		t.Errorf("expected path ./mid/leaf, got %q", got)
	}
	if leaf.Root() != root {
		t.Error("expected Root to reach the tree root")
	}
}
