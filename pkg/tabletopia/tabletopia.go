// Package tabletopia generates platform assets for tabletopia.com game
// pieces. A magnetic map is a solid-color image in the piece's outline
// that tells the platform how a piece snaps and flips: green leaves the
// piece alone, blue forces it back-up, red forces it front-up. An
// orientation line from the center to a face or corner marks which way
// the piece points when snapped.
package tabletopia

import (
	"image/color"
	"strings"

	"github.com/ggekit/gge/pkg/errors"
	"github.com/ggekit/gge/pkg/raster"
	"github.com/ggekit/gge/pkg/shape"
)

// MapColor selects the snap behavior encoded in a magnetic map.
type MapColor string

const (
	// MapGreen snaps without altering the piece.
	MapGreen MapColor = "green"
	// MapRed forces the piece front-up.
	MapRed MapColor = "red"
	// MapBlue forces the piece back-up.
	MapBlue MapColor = "blue"
)

var mapFills = map[MapColor]color.NRGBA{
	MapGreen: {G: 255, A: 255},
	MapRed:   {R: 255, A: 255},
	MapBlue:  {B: 255, A: 255},
}

// orientation line color, fixed by the platform convention.
var lineColor = color.NRGBA{R: 128, B: 128, A: 255}

// Options configures magnetic map generation.
type Options struct {
	// Color selects the snap behavior. Defaults to MapGreen.
	Color MapColor
	// Orientable draws the orientation line from the center toward
	// Endpoint.
	Orientable bool
	// Endpoint is the face or corner direction the orientation line
	// points at. Defaults to "n".
	Endpoint string
}

// MagneticMap renders a magnetic map in the outline of the given shape.
func MagneticMap(s *shape.Shape, opts Options) (*raster.Image, error) {
	if opts.Color == "" {
		opts.Color = MapGreen
	}
	fill, ok := mapFills[opts.Color]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidEnum,
			"unknown magnetic map color %q (expected green, red, or blue)", opts.Color)
	}

	b := s.Backend()
	w, h := s.Size().IntWH()
	img := b.New(w, h, fill)

	if opts.Orientable {
		endpoint := opts.Endpoint
		if endpoint == "" {
			endpoint = "n"
		}
		vector, err := s.DirectionVector(strings.ToLower(endpoint))
		if err != nil {
			return nil, err
		}
		center := s.Size().Half()
		// The direction vector lives in the center frame (y up); flip
		// into pixel coordinates before drawing.
		end := center.Add(vector.FlipY())
		b.DrawLine(img, center, end, lineColor, 1)
	}

	return s.CutOut(img), nil
}
