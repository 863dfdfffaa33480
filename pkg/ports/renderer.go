package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts the raster operations the fitter and packager need.
// Implementations must be safe for concurrent use and must never mutate
// the images they are given.
type Renderer interface {
	// CreateCanvas creates an opaque canvas filled with bg.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// DecodeImage decodes image data, detecting the format.
	// It returns the decoded image and the format name.
	DecodeImage(data []byte) (image.Image, string, error)

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resamples an image to exactly width x height with a Lanczos filter.
	ResizeImage(img image.Image, width, height int) image.Image

	// BlurImage applies a separable Gaussian blur with the given sigma.
	BlurImage(img image.Image, sigma float64) image.Image
}

// Canvas is a mutable drawing surface with an origin at (0,0).
type Canvas interface {
	// DrawImage copies img onto the canvas with its top-left corner at (x, y).
	// Pixels are overwritten, not blended.
	DrawImage(img image.Image, x, y int)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
)

// Extension returns the file extension used for the format, without a dot.
func (f ImageFormat) Extension() string {
	switch f {
	case FormatPNG:
		return "png"
	default:
		return "jpg"
	}
}
