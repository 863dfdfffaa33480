package pipeline

import "errors"

// Errors originated by the core. Callers match them with errors.Is; the
// returned error usually wraps one of these with the failing operation.
var (
	// ErrInvalidDimensions reports a zero or negative source or target size.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrInvalidQuality reports a JPEG quality outside [MinQuality, MaxQuality].
	ErrInvalidQuality = errors.New("invalid quality")

	// ErrUnsupportedPixelFormat reports an input that cannot be converted to a colour raster.
	ErrUnsupportedPixelFormat = errors.New("unsupported pixel format")

	// ErrEncodingFailure reports that the JPEG encoder rejected a rendered canvas.
	ErrEncodingFailure = errors.New("encoding failure")

	// ErrUnknownLayout reports a layout name missing from the catalog.
	ErrUnknownLayout = errors.New("unknown layout")

	// ErrNoInputs reports a load request that resolved to no image files.
	ErrNoInputs = errors.New("no input images")
)
