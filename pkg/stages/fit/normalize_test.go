package fit

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/user/reframe/pkg/pipeline"
)

func TestNormalize_DiscardsAlphaKeepsColour(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 0})
	src.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 128})

	got, err := Normalize(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c := got.NRGBAAt(0, 0); c != (color.NRGBA{R: 200, G: 100, B: 50, A: 255}) {
		t.Errorf("transparent pixel: got %+v", c)
	}
	if c := got.NRGBAAt(1, 0); c != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("translucent pixel: got %+v", c)
	}
	if src.NRGBAAt(0, 0).A != 0 {
		t.Error("source must not be modified")
	}
}

func TestNormalize_ConvertsFormats(t *testing.T) {
	palette := image.NewPaletted(image.Rect(0, 0, 3, 3), color.Palette{color.RGBA{R: 255, A: 255}, color.RGBA{B: 255, A: 255}})
	palette.SetColorIndex(1, 1, 1)

	gray := image.NewGray(image.Rect(0, 0, 3, 3))
	gray.SetGray(1, 1, color.Gray{Y: 77})

	ycbcr := image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio420)
	cmyk := image.NewCMYK(image.Rect(0, 0, 3, 3))
	rgba64 := image.NewRGBA64(image.Rect(0, 0, 3, 3))

	tests := []struct {
		name string
		img  image.Image
	}{
		{"paletted", palette},
		{"gray", gray},
		{"ycbcr", ycbcr},
		{"cmyk", cmyk},
		{"rgba64", rgba64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.img)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Bounds() != image.Rect(0, 0, tt.img.Bounds().Dx(), tt.img.Bounds().Dy()) {
				t.Errorf("unexpected bounds %v", got.Bounds())
			}
			for i := 3; i < len(got.Pix); i += 4 {
				if got.Pix[i] != 0xff {
					t.Fatalf("pixel %d is not opaque", i/4)
				}
			}
		})
	}

	got, _ := Normalize(palette)
	if c := got.NRGBAAt(1, 1); c != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("palette index not converted: %+v", c)
	}
	got, _ = Normalize(gray)
	if c := got.NRGBAAt(1, 1); c != (color.NRGBA{R: 77, G: 77, B: 77, A: 255}) {
		t.Errorf("gray not converted: %+v", c)
	}
}

func TestNormalize_MovesOriginToZero(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 14, 22))
	src.SetNRGBA(10, 20, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	got, err := Normalize(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Bounds() != image.Rect(0, 0, 4, 2) {
		t.Errorf("expected 4x2 at origin, got %v", got.Bounds())
	}
	if c := got.NRGBAAt(0, 0); c != (color.NRGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("origin pixel not copied: %+v", c)
	}
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want error
	}{
		{"nil", nil, pipeline.ErrUnsupportedPixelFormat},
		{"alpha mask", image.NewAlpha(image.Rect(0, 0, 2, 2)), pipeline.ErrUnsupportedPixelFormat},
		{"alpha16 mask", image.NewAlpha16(image.Rect(0, 0, 2, 2)), pipeline.ErrUnsupportedPixelFormat},
		{"zero width", image.NewRGBA(image.Rect(0, 0, 0, 10)), pipeline.ErrInvalidDimensions},
		{"zero height", image.NewRGBA(image.Rect(0, 0, 10, 0)), pipeline.ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.img)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCropImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	img.SetNRGBA(30, 40, color.NRGBA{R: 9, A: 255})

	sub := cropImage(img, image.Rect(30, 40, 80, 90))
	if sub.Bounds() != image.Rect(0, 0, 50, 50) {
		t.Errorf("expected 50x50 at origin, got %v", sub.Bounds())
	}
	if sub.NRGBAAt(0, 0).R != 9 {
		t.Error("expected crop to start at the requested corner")
	}

	clamped := cropImage(img, image.Rect(80, 80, 130, 130))
	if clamped.Bounds().Dx() != 20 || clamped.Bounds().Dy() != 20 {
		t.Errorf("expected 20x20 after clamping, got %v", clamped.Bounds())
	}
}
