// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path"
	"path/filepath"
	"strings"

	"github.com/user/reframe/pkg/ports"
)

// Sink saves debug output to files.
//
// Layout under baseDir:
//
//	previews/{image}/{layout}.png
//	manifest.json
//	advice/{image}.txt
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SavePreview saves a rendered canvas as PNG, mirroring the archive entry path.
func (s *Sink) SavePreview(entryPath string, img image.Image) error {
	rel := strings.TrimSuffix(entryPath, filepath.Ext(entryPath)) + "." + ports.FormatPNG.Extension()
	file := filepath.Join(s.baseDir, "previews", filepath.FromSlash(rel))
	if err := s.fs.MkdirAll(filepath.Dir(file)); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return s.fs.WriteFile(file, data)
}

// SaveManifest saves the archive entry list.
func (s *Sink) SaveManifest(data []byte) error {
	file := filepath.Join(s.baseDir, "manifest.json")
	return s.fs.WriteFile(file, data)
}

// SaveAdvice saves the advice text for one image.
func (s *Sink) SaveAdvice(imageName string, text string) error {
	dir := filepath.Join(s.baseDir, "advice")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	file := filepath.Join(dir, adviceName(imageName)+".txt")
	return s.fs.WriteFile(file, []byte(text))
}

// adviceName strips the directory and extension from an upload name, the same
// way archive entries and previews are named. An empty result becomes "image".
func adviceName(imageName string) string {
	name := imageName
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, path.Ext(name))
	if name == "" {
		return "image"
	}
	return name
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
