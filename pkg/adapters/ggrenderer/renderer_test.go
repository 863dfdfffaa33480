package ggrenderer

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/user/reframe/pkg/ports"
)

func TestRenderer_CreateCanvas(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(100, 100, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	if canvas == nil {
		t.Fatal("expected canvas to be created")
	}

	img := canvas.ToImage()
	bounds := img.Bounds()

	if bounds.Dx() != 100 || bounds.Dy() != 100 {
		t.Errorf("expected 100x100, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	got := color.RGBAModel.Convert(img.At(50, 50)).(color.RGBA)
	if got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("expected background colour, got %+v", got)
	}
}

func TestRenderer_CreateCanvas_Opaque(t *testing.T) {
	r := New()

	tests := []struct {
		name string
		bg   color.Color
		want color.RGBA
	}{
		{"nil is white", nil, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"transparent keeps colour", color.NRGBA{R: 200, G: 100, B: 0, A: 0}, color.RGBA{R: 200, G: 100, B: 0, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := r.CreateCanvas(2, 2, tt.bg).ToImage()
			got := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestRenderer_EncodeDecodeJPEG(t *testing.T) {
	r := New()

	// Create test image
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 0, B: 0, A: 255})
		}
	}

	// Encode
	data, err := r.EncodeImage(img, ports.FormatJPEG, 80)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty data")
	}

	// Decode
	decoded, format, err := r.DecodeImage(data)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("expected jpeg, got %s", format)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("expected 50x50, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_EncodeDecodePNG(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 30, 30))

	// Encode
	data, err := r.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	// Decode
	decoded, format, err := r.DecodeImage(data)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	if format != "png" {
		t.Errorf("expected png, got %s", format)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 30 {
		t.Errorf("expected 30x30, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_DecodeBMP(t *testing.T) {
	r := New()

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 7, 3))); err != nil {
		t.Fatalf("bmp encode failed: %v", err)
	}

	decoded, format, err := r.DecodeImage(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	if format != "bmp" {
		t.Errorf("expected bmp, got %s", format)
	}
	if b := decoded.Bounds(); b.Dx() != 7 || b.Dy() != 3 {
		t.Errorf("expected 7x3, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRenderer_DecodeInvalid(t *testing.T) {
	r := New()

	if _, _, err := r.DecodeImage([]byte("not an image")); err == nil {
		t.Error("expected error for invalid data")
	}
}

func TestRenderer_EncodeUnsupportedFormat(t *testing.T) {
	r := New()

	if _, err := r.EncodeImage(image.NewRGBA(image.Rect(0, 0, 1, 1)), ports.ImageFormat(99), 0); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestRenderer_ResizeImage(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	resized := r.ResizeImage(img, 50, 30)

	bounds := resized.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 30 {
		t.Errorf("expected 50x30, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_ResizeImage_Deterministic(t *testing.T) {
	r := New()

	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7)
	}

	a := r.ResizeImage(img, 23, 17).(*image.NRGBA)
	b := r.ResizeImage(img, 23, 17).(*image.NRGBA)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("expected identical output for identical input")
	}
}

func TestRenderer_BlurImage(t *testing.T) {
	r := New()

	// Single white column on black
	img := image.NewNRGBA(image.Rect(0, 0, 21, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 21; x++ {
			img.Set(x, y, color.Black)
		}
		img.Set(10, y, color.White)
	}

	blurred := r.BlurImage(img, 2)
	if b := blurred.Bounds(); b.Dx() != 21 || b.Dy() != 5 {
		t.Fatalf("expected 21x5, got %dx%d", b.Dx(), b.Dy())
	}

	centre := color.GrayModel.Convert(blurred.At(10, 2)).(color.Gray).Y
	side := color.GrayModel.Convert(blurred.At(8, 2)).(color.Gray).Y
	if centre == 255 || side == 0 {
		t.Errorf("expected energy to spread: centre %d, side %d", centre, side)
	}
	if side >= centre {
		t.Errorf("expected centre %d brighter than side %d", centre, side)
	}

	// Source untouched
	if c := color.GrayModel.Convert(img.At(10, 2)).(color.Gray).Y; c != 255 {
		t.Error("source image was modified")
	}
}

func TestCanvas_DrawImage(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(10, 10, color.White)

	// Source pixels replace the canvas pixels
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}

	canvas.DrawImage(src, 4, 5)
	img := canvas.ToImage()

	inside := color.RGBAModel.Convert(img.At(4, 5)).(color.RGBA)
	if inside != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("expected red inside draw rect, got %+v", inside)
	}
	last := color.RGBAModel.Convert(img.At(6, 6)).(color.RGBA)
	if last != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("expected red at draw rect corner, got %+v", last)
	}
	outside := color.RGBAModel.Convert(img.At(7, 5)).(color.RGBA)
	if outside != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("expected white outside draw rect, got %+v", outside)
	}
}

func TestCanvas_DrawImage_OffsetSource(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(4, 4, color.Black)

	// Source whose bounds do not start at the origin
	src := image.NewRGBA(image.Rect(10, 10, 12, 12))
	src.Set(10, 10, color.White)

	canvas.DrawImage(src, 1, 1)
	img := canvas.ToImage()

	if c := color.GrayModel.Convert(img.At(1, 1)).(color.Gray).Y; c != 255 {
		t.Errorf("expected source origin at (1,1), got %d", c)
	}
}
