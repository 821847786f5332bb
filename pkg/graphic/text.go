package graphic

import (
	"image/color"
	"strings"

	xfont "golang.org/x/image/font"

	"github.com/ggekit/gge/pkg/errors"
	"github.com/ggekit/gge/pkg/fonts"
	"github.com/ggekit/gge/pkg/geom"
	"github.com/ggekit/gge/pkg/raster"
)

// Text is node content that draws a string into the node's own box.
//
// With Wrap off the string is drawn as-is at FontSize and must fit the
// box, otherwise rendering fails with TEXT_OVERFLOW. With Wrap on the
// engine searches for the largest layout that fits: for each font size,
// counting down from FontSize, it tries ever shorter line widths until
// the wrapped block fits the box width, and accepts the first size
// whose block also fits the box height. When no size greater than zero
// fits, rendering fails with NO_FITTING_SIZE.
type Text struct {
	Content  string
	Font     string // font reference: empty for the bundled default, a file path, or a family name
	FontSize int
	Color    color.Color // nil draws black
	Wrap     bool
}

func (t *Text) render(n *Node) (*raster.Image, error) {
	if t.FontSize <= 0 {
		return nil, n.fail(errors.ErrCodeNonPositiveValue,
			"font size must be strictly positive, but got %d", t.FontSize)
	}

	b := n.backend
	w, h := n.size.IntWH()
	img := b.New(w, h, n.background)
	if t.Content == "" {
		return img, nil
	}

	fnt, err := fonts.Resolve(t.Font)
	if err != nil {
		return nil, err
	}
	col := t.Color
	if col == nil {
		col = color.NRGBA{A: 255}
	}

	var (
		block  string
		bw, bh int
	)
	var face xfont.Face
	if t.Wrap {
		block, face, bw, bh = t.shrinkToFit(b, fnt, w, h)
		if face == nil {
			return nil, n.fail(errors.ErrCodeNoFittingSize,
				"no font size fits %q in a %s box", t.Content, n.size)
		}
	} else {
		block = t.Content
		face = fonts.Face(fnt, float64(t.FontSize))
		bw, bh = b.MeasureText(block, face)
		if bw > w || bh > h {
			return nil, n.fail(errors.ErrCodeTextOverflow,
				"text extent (%d, %d) exceeds box %s", bw, bh, n.size)
		}
	}

	pos, err := textOrigin(n, w, h, bw, bh)
	if err != nil {
		return nil, err
	}
	b.DrawText(img, pos, block, face, col)
	return img, nil
}

// shrinkToFit walks font sizes downward from FontSize. At each size it
// wraps the content into 1, 2, 3, ... lines (line width is the rune
// count divided by the line count) until the block fits the box width,
// then accepts the size if the block also fits the box height. A nil
// face signals that no size fits.
func (t *Text) shrinkToFit(b raster.Backend, fnt *fonts.Font, boxW, boxH int) (string, xfont.Face, int, int) {
	for size := t.FontSize; size > 0; size-- {
		face := fonts.Face(fnt, float64(size))
		block, w, h, ok := fitWidth(b, t.Content, face, boxW)
		if ok && h <= boxH {
			return block, face, w, h
		}
	}
	return "", nil, 0, 0
}

func fitWidth(b raster.Backend, content string, face xfont.Face, boxW int) (string, int, int, bool) {
	runes := len([]rune(content))
	for lines := 1; lines <= runes; lines++ {
		width := runes / lines
		if width < 1 {
			break
		}
		block := wrapText(content, width)
		w, h := b.MeasureText(block, face)
		if w <= boxW {
			return block, w, h, true
		}
	}
	return "", 0, 0, false
}

// wrapText greedily wraps content at whitespace so no line exceeds
// width runes; words longer than width are hard-broken.
func wrapText(content string, width int) string {
	var lines []string
	var line []rune
	flush := func() {
		if len(line) > 0 {
			lines = append(lines, string(line))
			line = line[:0]
		}
	}
	for _, word := range strings.Fields(content) {
		runes := []rune(word)
		for len(runes) > width {
			flush()
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
		}
		switch {
		case len(line) == 0:
			line = append(line, runes...)
		case len(line)+1+len(runes) <= width:
			line = append(line, ' ')
			line = append(line, runes...)
		default:
			flush()
			line = append(line, runes...)
		}
	}
	flush()
	return strings.Join(lines, "\n")
}

// textOrigin places the measured text block inside the node's box
// following the node's anchor.
func textOrigin(n *Node, boxW, boxH, textW, textH int) (geom.Vec, error) {
	switch n.anchor {
	case AnchorUpperLeft:
		return geom.V(0, 0), nil
	case AnchorCenter:
		return geom.V(float64(boxW-textW)/2, float64(boxH-textH)/2), nil
	default:
		return geom.Vec{}, n.fail(errors.ErrCodeInvalidEnum,
			"unknown anchor %d", int(n.anchor))
	}
}
