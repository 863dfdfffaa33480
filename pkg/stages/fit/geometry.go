package fit

import (
	"image"
	"math"

	"github.com/user/reframe/pkg/pipeline"
)

// ContainSize scales src to the largest size that fits inside target while
// keeping its aspect ratio. Sides are rounded and clamped to [1, target].
func ContainSize(src, target pipeline.Dimension) pipeline.Dimension {
	r := math.Min(
		float64(target.Width)/float64(src.Width),
		float64(target.Height)/float64(src.Height),
	)
	return pipeline.Dimension{
		Width:  clamp(int(math.Round(float64(src.Width)*r)), 1, target.Width),
		Height: clamp(int(math.Round(float64(src.Height)*r)), 1, target.Height),
	}
}

// CoverCrop returns the region of src that, scaled up or down to target,
// covers it exactly: the centred window with the target's aspect ratio.
// Sides are rounded and clamped to [1, src], and the window is centred with
// floor division. Working in source coordinates keeps the intermediate image
// no larger than the source however extreme the aspect ratios are.
func CoverCrop(src, target pipeline.Dimension) image.Rectangle {
	r := math.Max(
		float64(target.Width)/float64(src.Width),
		float64(target.Height)/float64(src.Height),
	)
	window := pipeline.Dimension{
		Width:  clamp(int(math.Round(float64(target.Width)/r)), 1, src.Width),
		Height: clamp(int(math.Round(float64(target.Height)/r)), 1, src.Height),
	}
	at := CenterOffset(src, window)
	return image.Rect(at.X, at.Y, at.X+window.Width, at.Y+window.Height)
}

// CenterOffset returns the top-left point that centres inner within outer.
// Integer division floors, so an odd leftover pixel goes to the bottom/right.
func CenterOffset(outer, inner pipeline.Dimension) image.Point {
	return image.Point{
		X: (outer.Width - inner.Width) / 2,
		Y: (outer.Height - inner.Height) / 2,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
