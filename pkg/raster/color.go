package raster

import (
	"image/color"
	"strings"

	"github.com/ggekit/gge/pkg/errors"
)

// Named colors accepted by [ParseColor] in addition to hex notation.
// The set covers the colors used by piece manifests and magnetic maps.
var namedColors = map[string]color.NRGBA{
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 255, 0, 255},
	"blue":        {0, 0, 255, 255},
	"purple":      {128, 0, 128, 255},
	"yellow":      {255, 255, 0, 255},
	"gray":        {128, 128, 128, 255},
	"grey":        {128, 128, 128, 255},
	"transparent": {},
}

// ParseColor parses a color string: a CSS-style hex code (#RGB, #RGBA,
// #RRGGBB, #RRGGBBAA) or one of a small set of named colors. It returns
// an IMAGE_SOURCE error for anything else.
func ParseColor(s string) (color.NRGBA, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, errors.New(errors.ErrCodeImageSource,
			"unrecognized color %q", s)
	}

	hex := s[1:]
	var digits []uint8
	for _, r := range hex {
		d, ok := hexDigit(r)
		if !ok {
			return color.NRGBA{}, errors.New(errors.ErrCodeImageSource,
				"invalid hex color %q", s)
		}
		digits = append(digits, d)
	}

	switch len(digits) {
	case 3:
		return color.NRGBA{digits[0] * 17, digits[1] * 17, digits[2] * 17, 255}, nil
	case 4:
		return color.NRGBA{digits[0] * 17, digits[1] * 17, digits[2] * 17, digits[3] * 17}, nil
	case 6:
		return color.NRGBA{digits[0]<<4 | digits[1], digits[2]<<4 | digits[3], digits[4]<<4 | digits[5], 255}, nil
	case 8:
		return color.NRGBA{digits[0]<<4 | digits[1], digits[2]<<4 | digits[3], digits[4]<<4 | digits[5], digits[6]<<4 | digits[7]}, nil
	default:
		return color.NRGBA{}, errors.New(errors.ErrCodeImageSource,
			"invalid hex color %q", s)
	}
}

// IsColorString reports whether s looks like a color rather than a file
// path: hex notation or a known color name.
func IsColorString(s string) bool {
	if strings.HasPrefix(s, "#") {
		return true
	}
	_, ok := namedColors[strings.ToLower(s)]
	return ok
}

func hexDigit(r rune) (uint8, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint8(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint8(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint8(r-'A') + 10, true
	}
	return 0, false
}
