package ports

import (
	"image"
)

// DebugSink receives intermediate results for inspection.
// The packager and orchestrator only call it when Enabled reports true.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SavePreview saves one rendered canvas under its archive entry path.
	SavePreview(entryPath string, img image.Image) error

	// SaveManifest saves the archive entry list as JSON.
	SaveManifest(data []byte) error

	// SaveAdvice saves the advice text returned for one image.
	SaveAdvice(imageName string, text string) error
}
