// Package manifest parses declarative TOML piece descriptions and
// builds the corresponding graphic trees.
//
// A manifest describes one piece: its outline shape, size and
// background, and a list of named children (plain boxes, text, or
// pictures) with placement attributes. Children may nest.
//
//	[piece]
//	name = "fortress"
//	shape = "hex"
//	size = [300, 300]
//	background = "#338833"
//
//	[[piece.children]]
//	name = "title"
//	type = "text"
//	size = [220, 60]
//	position = [0, 90]
//	anchor = "center"
//	frame = "center"
//	text = "Ancient Fortress"
//	font_size = 32
//	wrap = true
package manifest

import (
	"bytes"

	"github.com/BurntSushi/toml"

	"github.com/ggekit/gge/pkg/errors"
)

// File is a decoded piece manifest.
type File struct {
	Piece Piece `toml:"piece"`
}

// Piece is the root element of a manifest.
type Piece struct {
	Name       string  `toml:"name"`
	Shape      string  `toml:"shape"` // box, rectangle, square, hex, ellipse, circle
	Size       []any   `toml:"size"`
	Background string  `toml:"background"`
	Angle      float64 `toml:"angle"`
	Children   []Child `toml:"children"`
}

// Child is one node description. Type selects the content: "box" (the
// default) renders only a background, "text" and "picture" carry the
// respective content fields.
type Child struct {
	Name     string  `toml:"name"`
	Type     string  `toml:"type"`
	Size     []any   `toml:"size"`
	Position []any   `toml:"position"`
	Anchor   string  `toml:"anchor"`
	Frame    string  `toml:"frame"`
	Layer    int     `toml:"layer"`
	Angle    float64 `toml:"angle"`

	Background string `toml:"background"`

	// Text content
	Text     string `toml:"text"`
	Font     string `toml:"font"`
	FontSize int    `toml:"font_size"`
	Color    string `toml:"color"`
	Wrap     bool   `toml:"wrap"`

	// Picture content
	Source string `toml:"source"`

	// Shape-relative placement, only valid under a shaped piece.
	Face   string  `toml:"face"`
	Corner string  `toml:"corner"`
	Buffer float64 `toml:"buffer"`

	Children []Child `toml:"children"`
}

// Load reads and decodes a manifest file.
func Load(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err,
			"cannot parse manifest %s", path)
	}
	return checkDecoded(&f, md)
}

// Parse decodes a manifest from memory.
func Parse(data []byte) (*File, error) {
	var f File
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err,
			"cannot parse manifest")
	}
	return checkDecoded(&f, md)
}

// checkDecoded rejects manifests with unknown keys so typos fail loudly
// instead of silently dropping attributes.
func checkDecoded(f *File, md toml.MetaData) (*File, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest,
			"manifest has unknown key %q", undecoded[0].String())
	}
	return f, nil
}
