// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/reframe/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SavePreview does nothing.
func (s *Sink) SavePreview(entryPath string, img image.Image) error {
	return nil
}

// SaveManifest does nothing.
func (s *Sink) SaveManifest(data []byte) error {
	return nil
}

// SaveAdvice does nothing.
func (s *Sink) SaveAdvice(imageName string, text string) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
