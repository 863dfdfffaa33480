// Package summarizer provides summary generation for packaging runs.
package summarizer

import "time"

// Summary contains all data collected during a packaging run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Uploaded images
	Inputs []InputInfo

	// Rendering settings
	Settings Settings

	// Archive output details
	Archive ArchiveInfo

	// Advice results, empty when advice was not requested
	Advice []AdviceInfo
}

// InputInfo describes one uploaded image.
type InputInfo struct {
	Name   string
	Width  int
	Height int
	Format string
}

// LayoutInfo describes one target layout.
type LayoutInfo struct {
	Label  string
	Width  int
	Height int
}

// Settings contains the rendering configuration.
type Settings struct {
	Layouts []LayoutInfo
	Fill    string // e.g. "solid(#ffffff)" or "blur(30)"
	Quality int
}

// EntryInfo describes one archive entry.
type EntryInfo struct {
	Path string
	Size int
}

// ArchiveInfo contains information about the output archive.
type ArchiveInfo struct {
	Path     string
	FileSize int64
	Entries  []EntryInfo
}

// AdviceInfo contains the advice returned for one image.
type AdviceInfo struct {
	ImageName string
	Status    string
	Text      string
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput appends an uploaded image.
func (b *Builder) WithInput(name string, width, height int, format string) *Builder {
	b.summary.Inputs = append(b.summary.Inputs, InputInfo{
		Name:   name,
		Width:  width,
		Height: height,
		Format: format,
	})
	return b
}

// WithSettings sets rendering settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithArchive sets archive output information.
func (b *Builder) WithArchive(archive ArchiveInfo) *Builder {
	b.summary.Archive = archive
	return b
}

// WithAdvice appends the advice for one image.
func (b *Builder) WithAdvice(imageName, status, text string) *Builder {
	b.summary.Advice = append(b.summary.Advice, AdviceInfo{
		ImageName: imageName,
		Status:    status,
		Text:      text,
	})
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
