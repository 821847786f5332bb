package manifest

import (
	"github.com/ggekit/gge/pkg/config"
	"github.com/ggekit/gge/pkg/errors"
	"github.com/ggekit/gge/pkg/geom"
	"github.com/ggekit/gge/pkg/graphic"
	"github.com/ggekit/gge/pkg/raster"
	"github.com/ggekit/gge/pkg/shape"
)

// Build constructs the graphic tree described by the manifest. Asset
// references in picture sources resolve relative to the configured
// assets directory.
//
// The returned root is the piece node; when the piece declares an
// outline shape, the root carries the shape's cut-out mask.
func Build(f *File, cfg config.Config) (*graphic.Node, error) {
	size, err := decodeSize(f.Piece.Size)
	if err != nil {
		return nil, err
	}

	opts, err := rootOptions(&f.Piece)
	if err != nil {
		return nil, err
	}

	var (
		root *graphic.Node
		sh   *shape.Shape
	)
	switch f.Piece.Shape {
	case "", "box":
		root = graphic.New(size, opts...)
	case "rectangle":
		sh = shape.NewRectangle(size, opts...)
	case "square":
		if err := shape.CheckSquare(size); err != nil {
			return nil, err
		}
		sh = shape.NewRectangle(size, opts...)
	case "hex":
		sh = shape.NewHex(size, opts...)
	case "ellipse":
		sh = shape.NewEllipse(size, opts...)
	case "circle":
		if err := shape.CheckSquare(size); err != nil {
			return nil, err
		}
		sh = shape.NewEllipse(size, opts...)
	default:
		return nil, errors.New(errors.ErrCodeInvalidEnum,
			"unknown piece shape %q", f.Piece.Shape)
	}
	if sh != nil {
		root = sh.Node
	}

	for i := range f.Piece.Children {
		if err := buildChild(root, sh, &f.Piece.Children[i], cfg); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func rootOptions(p *Piece) ([]graphic.Option, error) {
	var opts []graphic.Option
	if p.Background != "" {
		col, err := raster.ParseColor(p.Background)
		if err != nil {
			return nil, err
		}
		opts = append(opts, graphic.WithBackground(col))
	}
	if p.Angle != 0 {
		opts = append(opts, graphic.WithAngle(p.Angle))
	}
	return opts, nil
}

func buildChild(parent *graphic.Node, parentShape *shape.Shape, c *Child, cfg config.Config) (err error) {
	if err := errors.ValidateNodeName(c.Name); err != nil {
		return err
	}
	size, err := decodeSize(c.Size)
	if err != nil {
		return err
	}

	opts, err := childOptions(c)
	if err != nil {
		return err
	}
	switch c.Type {
	case "", "box":
	case "text":
		text, err := decodeText(c)
		if err != nil {
			return err
		}
		opts = append(opts, graphic.WithText(text))
	case "picture":
		pic, err := decodePicture(c, cfg)
		if err != nil {
			return err
		}
		opts = append(opts, graphic.WithPicture(pic))
	default:
		return errors.New(errors.ErrCodeInvalidManifest,
			"child %q has unknown type %q (expected box, text, or picture)", c.Name, c.Type)
	}

	node := graphic.New(size, opts...)

	switch {
	case c.Face != "" || c.Corner != "":
		if parentShape == nil {
			return errors.New(errors.ErrCodeInvalidManifest,
				"child %q uses face or corner placement, but the piece has no shape", c.Name)
		}
		if c.Face != "" {
			err = parentShape.AddToFace(c.Name, node, c.Face, c.Buffer)
		} else {
			err = parentShape.AddToCorner(c.Name, node, c.Corner, c.Buffer)
		}
	default:
		if c.Position == nil {
			return errors.New(errors.ErrCodeInvalidManifest,
				"child %q needs a position or a face/corner placement", c.Name)
		}
		err = parent.Children().Attach(c.Name, node)
	}
	if err != nil {
		return err
	}

	for i := range c.Children {
		if err := buildChild(node, nil, &c.Children[i], cfg); err != nil {
			return err
		}
	}
	return nil
}

func childOptions(c *Child) ([]graphic.Option, error) {
	var opts []graphic.Option

	if c.Position != nil {
		pos, err := geom.FromValues(c.Position)
		if err != nil {
			return nil, err
		}
		opts = append(opts, graphic.WithPosition(pos))
	}
	if c.Anchor != "" {
		anchor, err := graphic.ParseAnchor(c.Anchor)
		if err != nil {
			return nil, err
		}
		opts = append(opts, graphic.WithAnchor(anchor))
	}
	if c.Frame != "" {
		frame, err := graphic.ParseFrame(c.Frame)
		if err != nil {
			return nil, err
		}
		opts = append(opts, graphic.WithFrame(frame))
	}
	if c.Background != "" {
		col, err := raster.ParseColor(c.Background)
		if err != nil {
			return nil, err
		}
		opts = append(opts, graphic.WithBackground(col))
	}
	opts = append(opts, graphic.WithLayer(c.Layer))
	if c.Angle != 0 {
		opts = append(opts, graphic.WithAngle(c.Angle))
	}
	return opts, nil
}

func decodeText(c *Child) (*graphic.Text, error) {
	text := &graphic.Text{
		Content:  c.Text,
		Font:     c.Font,
		FontSize: c.FontSize,
		Wrap:     c.Wrap,
	}
	if c.Color != "" {
		col, err := raster.ParseColor(c.Color)
		if err != nil {
			return nil, err
		}
		text.Color = col
	}
	return text, nil
}

func decodePicture(c *Child, cfg config.Config) (*graphic.Picture, error) {
	if c.Source == "" {
		return nil, errors.New(errors.ErrCodeInvalidManifest,
			"picture child %q needs a source", c.Name)
	}
	source := c.Source
	if !raster.IsColorString(source) {
		path, err := cfg.AssetPath(source)
		if err != nil {
			return nil, err
		}
		source = path
	}
	return &graphic.Picture{Source: source}, nil
}

// decodeSize turns a decoded TOML value list into a strictly positive
// size. Wrong arity and non-numeric components surface the same codes
// layout math uses.
func decodeSize(vals []any) (geom.Size, error) {
	v, err := geom.FromValues(vals)
	if err != nil {
		return geom.Size{}, err
	}
	return geom.SizeFromVec(v)
}
