package mocks

import (
	"image"
	"image/color"
	"sync"

	"github.com/user/reframe/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
// Without funcs set it returns blank images of the requested size and
// records resize and blur calls.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	DecodeImageFunc  func(data []byte) (image.Image, string, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image
	BlurImageFunc    func(img image.Image, sigma float64) image.Image

	mu          sync.Mutex
	ResizeCalls []image.Point
	BlurCalls   []float64
	EncodeCalls int
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	return &Canvas{width: width, height: height, Background: bg}
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, string, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), "png", nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	m.mu.Lock()
	m.EncodeCalls++
	m.mu.Unlock()
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{0xFF, 0xD8, 0xFF, 0xD9}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	m.mu.Lock()
	m.ResizeCalls = append(m.ResizeCalls, image.Pt(width, height))
	m.mu.Unlock()
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) BlurImage(img image.Image, sigma float64) image.Image {
	m.mu.Lock()
	m.BlurCalls = append(m.BlurCalls, sigma)
	m.mu.Unlock()
	if m.BlurImageFunc != nil {
		return m.BlurImageFunc(img, sigma)
	}
	return img
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas is a mock implementation of ports.Canvas that records draws.
type Canvas struct {
	width      int
	height     int
	Background color.Color
	Draws      []image.Rectangle
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	m.Draws = append(m.Draws, image.Rect(x, y, x+b.Dx(), y+b.Dy()))
}

func (m *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

var _ ports.Canvas = (*Canvas)(nil)
