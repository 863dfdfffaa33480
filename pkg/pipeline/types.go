package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/user/reframe/pkg/ports"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int
	Height int
}

// Valid reports whether both sides are positive.
func (d Dimension) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

// String returns "WxH".
func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Placement is the rectangle the subject occupies on a rendered canvas.
type Placement struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Rect returns the placement as an image.Rectangle.
func (p Placement) Rect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
}

// TargetLayout is a named output placement with a fixed pixel size.
type TargetLayout struct {
	Label  string // Display label, e.g. "Feed (1:1)"
	Width  int
	Height int
}

// Size returns the layout dimensions.
func (l TargetLayout) Size() Dimension {
	return Dimension{Width: l.Width, Height: l.Height}
}

// =============================================================================
// Fill Strategy
// =============================================================================

// FillKind selects how the canvas area outside the subject is filled.
type FillKind int

const (
	// FillSolid fills with a fixed colour.
	FillSolid FillKind = iota
	// FillSampledCorner fills with the colour of the source's top-left pixel.
	FillSampledCorner
	// FillBlurExtend fills with a blurred copy of the source centre, scaled to cover the canvas.
	FillBlurExtend
)

// DefaultBlurRadius is the Gaussian sigma used when BlurExtend has no radius.
const DefaultBlurRadius = 30.0

// String returns the configuration name of the kind.
func (k FillKind) String() string {
	switch k {
	case FillSolid:
		return "solid"
	case FillSampledCorner:
		return "corner"
	case FillBlurExtend:
		return "blur"
	default:
		return "unknown"
	}
}

// ParseFillKind parses a configuration name ("solid", "corner", "blur").
func ParseFillKind(s string) (FillKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solid", "color", "colour":
		return FillSolid, nil
	case "corner", "sampled", "sampled-corner":
		return FillSampledCorner, nil
	case "blur", "blur-extend":
		return FillBlurExtend, nil
	default:
		return FillSolid, fmt.Errorf("unknown fill strategy %q", s)
	}
}

// FillStrategy is a tagged fill choice. Build it with SolidColor, SampledCorner or BlurExtend.
type FillStrategy struct {
	Kind   FillKind
	Color  color.Color // FillSolid only; nil means white
	Radius float64     // FillBlurExtend only; <= 0 means DefaultBlurRadius
}

// SolidColor fills the background with c.
func SolidColor(c color.Color) FillStrategy {
	return FillStrategy{Kind: FillSolid, Color: c}
}

// SampledCorner fills the background with the source's top-left pixel colour.
func SampledCorner() FillStrategy {
	return FillStrategy{Kind: FillSampledCorner}
}

// BlurExtend fills the background with a blurred enlargement of the source.
func BlurExtend(radius float64) FillStrategy {
	return FillStrategy{Kind: FillBlurExtend, Radius: radius}
}

// BlurRadius returns the effective blur sigma.
func (s FillStrategy) BlurRadius() float64 {
	if s.Radius <= 0 {
		return DefaultBlurRadius
	}
	return s.Radius
}

// String describes the strategy for logs and summaries.
func (s FillStrategy) String() string {
	switch s.Kind {
	case FillSolid:
		c := s.Color
		if c == nil {
			c = color.White
		}
		r, g, b, _ := c.RGBA()
		return fmt.Sprintf("solid(#%02x%02x%02x)", r>>8, g>>8, b>>8)
	case FillBlurExtend:
		return fmt.Sprintf("blur(%g)", s.BlurRadius())
	default:
		return s.Kind.String()
	}
}

// =============================================================================
// Load Stage Types
// =============================================================================

// NamedImage is an uploaded image with the name it was uploaded under.
type NamedImage struct {
	Name   string
	Image  image.Image
	Data   []byte // Original encoded bytes, for the advice collaborator
	Format string // Decoder name, e.g. "jpeg" or "png"
}

// LoadInput lists the files or directories to load.
type LoadInput struct {
	Paths []string
}

// LoadResult contains the decoded images in input order.
type LoadResult struct {
	Images []NamedImage
}

// =============================================================================
// Fit Stage Types
// =============================================================================

// FitInput contains parameters for a single fit.
type FitInput struct {
	Source   image.Image
	Target   Dimension
	Strategy FillStrategy
}

// RenderResult is a rendered canvas plus the subject placement used.
type RenderResult struct {
	Image     image.Image
	Placement Placement
}

// =============================================================================
// Pack Stage Types
// =============================================================================

// Quality bounds accepted by the packager.
const (
	MinQuality = 1
	MaxQuality = 100
)

// PackageInput contains parameters for batch packaging.
type PackageInput struct {
	Images   []NamedImage
	Layouts  []TargetLayout
	Strategy FillStrategy
	Quality  int // JPEG quality, 1-100
}

// ArchiveEntry describes one file written into the archive.
type ArchiveEntry struct {
	Path string
	Size int // Encoded JPEG size in bytes
}

// PackageResult contains the zip archive and its entries in archive order.
type PackageResult struct {
	Archive []byte
	Entries []ArchiveEntry
}

// =============================================================================
// Advise Stage Types
// =============================================================================

// AdviseInput contains the images to ask about and the target layout labels.
type AdviseInput struct {
	Images  []NamedImage
	Layouts []TargetLayout
}

// AdviseResult holds one advice per input image, in input order.
type AdviseResult struct {
	Advice []ports.Advice
}
