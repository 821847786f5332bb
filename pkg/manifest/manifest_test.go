package manifest

import (
	"testing"

	"github.com/ggekit/gge/pkg/config"
	"github.com/ggekit/gge/pkg/errors"
	"github.com/ggekit/gge/pkg/geom"
)

const pieceManifest = `
[piece]
name = "fortress"
shape = "hex"
size = [300, 300]
background = "#338833"

[[piece.children]]
name = "title"
type = "text"
size = [220, 60]
position = [0, 90]
anchor = "center"
frame = "center"
layer = 2
text = "Ancient Fortress"
font_size = 32
wrap = true

[[piece.children]]
name = "banner"
type = "picture"
size = [200, 120]
position = [0, -40]
anchor = "center"
frame = "center"
layer = 1
source = "#aa3322"

[[piece.children]]
name = "crest"
size = [40, 40]
face = "n"
buffer = 24
background = "#ffffff"
`

func TestParseAndBuild(t *testing.T) {
	f, err := Parse([]byte(pieceManifest))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if f.Piece.Name != "fortress" || f.Piece.Shape != "hex" {
		t.Errorf("unexpected piece header: %+v", f.Piece)
	}
	if len(f.Piece.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(f.Piece.Children))
	}

	root, err := Build(f, config.Default())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := root.Size(); got.W() != 300 || got.H() != 300 {
		t.Errorf("unexpected root size %s", got)
	}
	if root.Children().Len() != 3 {
		t.Fatalf("expected 3 attached children, got %d", root.Children().Len())
	}

	crest, ok := root.Children().Get("crest")
	if !ok {
		t.Fatal("expected crest child")
	}
	// Face placement centers the child on the north face, pulled in by
	// the buffer: (0, 150 - 24).
	if pos := crest.Position(); pos == nil || !pos.Eq(geom.V(0, 126)) {
		t.Errorf("expected face-placed position (0, 126), got %v", pos)
	}

	img, err := root.Image()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if img.Width() != 300 || img.Height() != 300 {
		t.Errorf("unexpected image size %dx%d", img.Width(), img.Height())
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("[piece]\nsize = [10, 10]\nshpae = \"hex\"\n"))
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Fatalf("expected INVALID_MANIFEST for a typo, got %v", err)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		toml     string
		wantCode errors.Code
	}{
		{
			"wrong arity size",
			"[piece]\nsize = [300]\n",
			errors.ErrCodeShapeMismatch,
		},
		{
			"non-numeric size",
			"[piece]\nsize = [300, \"wide\"]\n",
			errors.ErrCodeTypeMismatch,
		},
		{
			"non-positive size",
			"[piece]\nsize = [300, 0]\n",
			errors.ErrCodeNonPositiveValue,
		},
		{
			"unknown shape",
			"[piece]\nshape = \"triangle\"\nsize = [10, 10]\n",
			errors.ErrCodeInvalidEnum,
		},
		{
			"unequal square",
			"[piece]\nshape = \"square\"\nsize = [10, 20]\n",
			errors.ErrCodeInvalidArgument,
		},
		{
			"unknown child type",
			"[piece]\nsize = [10, 10]\n[[piece.children]]\nname = \"x\"\ntype = \"video\"\nsize = [2, 2]\nposition = [0, 0]\n",
			errors.ErrCodeInvalidManifest,
		},
		{
			"missing position",
			"[piece]\nsize = [10, 10]\n[[piece.children]]\nname = \"x\"\nsize = [2, 2]\n",
			errors.ErrCodeInvalidManifest,
		},
		{
			"face placement without shape",
			"[piece]\nsize = [10, 10]\n[[piece.children]]\nname = \"x\"\nsize = [2, 2]\nface = \"n\"\n",
			errors.ErrCodeInvalidManifest,
		},
		{
			"bad anchor",
			"[piece]\nsize = [10, 10]\n[[piece.children]]\nname = \"x\"\nsize = [2, 2]\nposition = [0, 0]\nanchor = \"middle\"\n",
			errors.ErrCodeInvalidEnum,
		},
		{
			"traversal picture source",
			"[piece]\nsize = [10, 10]\n[[piece.children]]\nname = \"x\"\ntype = \"picture\"\nsize = [2, 2]\nposition = [0, 0]\nsource = \"../../etc/passwd\"\n",
			errors.ErrCodeInvalidPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.toml))
			if err == nil {
				_, err = Build(f, config.Default())
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}
}
