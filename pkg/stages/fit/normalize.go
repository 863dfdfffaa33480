package fit

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/user/reframe/pkg/pipeline"
)

// Normalize copies img into an opaque NRGBA raster with its origin at (0,0).
// Alpha is discarded rather than composited: each pixel keeps its stored
// colour and becomes fully opaque. The input is never modified.
func Normalize(img image.Image) (*image.NRGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", pipeline.ErrUnsupportedPixelFormat)
	}
	switch img.ColorModel() {
	case color.AlphaModel, color.Alpha16Model:
		return nil, fmt.Errorf("%w: alpha-only image has no colour channels", pipeline.ErrUnsupportedPixelFormat)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: source %dx%d", pipeline.ErrInvalidDimensions, b.Dx(), b.Dy())
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.NRGBA); ok {
		// Row copy keeps the colour of fully transparent pixels, which a
		// premultiplied draw would turn black.
		rowLen := b.Dx() * 4
		for y := 0; y < b.Dy(); y++ {
			so := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowLen], src.Pix[so:so+rowLen])
		}
	} else {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	}

	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst, nil
}

// cropImage copies the rect region of img into a new image with bounds
// starting at (0,0). rect is relative to img's top-left corner.
func cropImage(img image.Image, rect image.Rectangle) *image.NRGBA {
	b := img.Bounds()
	rect = rect.Add(b.Min).Intersect(b)
	dst := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), img, rect.Min, draw.Src)
	return dst
}
