package mocks

import (
	"image"
	"sync"

	"github.com/user/reframe/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Previews     map[string]image.Image
	PreviewCalls []string
	Manifest []byte
	Advice   map[string]string
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:  enabled,
		Previews: make(map[string]image.Image),
		Advice:   make(map[string]string),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SavePreview(entryPath string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Previews[entryPath] = img
	m.PreviewCalls = append(m.PreviewCalls, entryPath)
	return nil
}

func (m *DebugSink) SaveManifest(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Manifest = data
	return nil
}

func (m *DebugSink) SaveAdvice(imageName string, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Advice[imageName] = text
	return nil
}

// PreviewCount returns the number of saved previews.
func (m *DebugSink) PreviewCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.Previews)
}

var _ ports.DebugSink = (*DebugSink)(nil)
