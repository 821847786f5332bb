// Package io persists rendered images to disk and encodes them for
// in-memory consumers.
package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/ggekit/gge/pkg/errors"
	"github.com/ggekit/gge/pkg/raster"
)

// Format identifies an output encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
)

var imagingFormats = map[Format]imaging.Format{
	FormatPNG:  imaging.PNG,
	FormatJPEG: imaging.JPEG,
	FormatGIF:  imaging.GIF,
}

// ParseFormat maps a format name or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "gif":
		return FormatGIF, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported,
			"unsupported output format %q (expected png, jpeg, or gif)", s)
	}
}

// Save writes img to path, picking the encoding from the file extension.
func Save(img *raster.Image, path string) error {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	data, err := Encode(img, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot save %s image to %s", format, path)
	}
	return nil
}

// Encode serializes img in the given format.
func Encode(img *raster.Image, format Format) ([]byte, error) {
	f, ok := imagingFormats[format]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported output format %q", format)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img.Std(), f, imaging.JPEGQuality(95)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "cannot encode %s image", format)
	}
	return buf.Bytes(), nil
}
