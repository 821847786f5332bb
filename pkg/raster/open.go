package raster

import (
	"github.com/disintegration/imaging"

	"github.com/ggekit/gge/pkg/errors"
)

// Open loads an image file from disk. The format is detected from the
// file content; EXIF orientation is applied for JPEG sources.
func Open(path string) (*Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeImageSource, err,
			"failed to open image %q", path)
	}
	return FromImage(img), nil
}
