// Package fit implements the fitter: it places a whole source image on a
// fixed-size canvas without cropping or distortion and fills the rest.
package fit

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/user/reframe/pkg/pipeline"
	"github.com/user/reframe/pkg/ports"
)

// Stage fits images onto target canvases.
// It is a pure function of its inputs and safe for concurrent use.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new fit stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("fit"),
	}
}

// Execute implements pipeline.Stage.
func (s *Stage) Execute(ctx context.Context, input pipeline.FitInput) (pipeline.RenderResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.RenderResult{}, err
	}
	return s.Fit(input.Source, input.Target, input.Strategy)
}

// Fit renders source onto a target-sized canvas.
//
// The subject is Lanczos-scaled with the contain ratio and centred with floor
// division. The background depends on strategy:
//   - FillSolid: the strategy colour (white when nil)
//   - FillSampledCorner: the colour of the source's top-left pixel
//   - FillBlurExtend: the centre crop that covers target, scaled to it, then Gaussian-blurred
func (s *Stage) Fit(source image.Image, target pipeline.Dimension, strategy pipeline.FillStrategy) (pipeline.RenderResult, error) {
	if !target.Valid() {
		return pipeline.RenderResult{}, fmt.Errorf("%w: target %s", pipeline.ErrInvalidDimensions, target)
	}

	src, err := Normalize(source)
	if err != nil {
		return pipeline.RenderResult{}, err
	}
	srcSize := pipeline.Dimension{Width: src.Bounds().Dx(), Height: src.Bounds().Dy()}

	subjectSize := ContainSize(srcSize, target)
	offset := CenterOffset(target, subjectSize)

	s.logger.Debug("Fitting %s source into %s: subject %s at (%d,%d), fill %s",
		srcSize, target, subjectSize, offset.X, offset.Y, strategy)

	var canvas ports.Canvas
	switch strategy.Kind {
	case pipeline.FillSolid:
		bg := strategy.Color
		if bg == nil {
			bg = color.White
		}
		canvas = s.renderer.CreateCanvas(target.Width, target.Height, bg)
	case pipeline.FillSampledCorner:
		canvas = s.renderer.CreateCanvas(target.Width, target.Height, src.NRGBAAt(0, 0))
	case pipeline.FillBlurExtend:
		canvas = s.renderer.CreateCanvas(target.Width, target.Height, color.Black)
		canvas.DrawImage(s.blurBackground(src, srcSize, target, strategy.BlurRadius()), 0, 0)
	default:
		return pipeline.RenderResult{}, fmt.Errorf("unknown fill strategy: %d", strategy.Kind)
	}

	subject := s.renderer.ResizeImage(src, subjectSize.Width, subjectSize.Height)
	canvas.DrawImage(subject, offset.X, offset.Y)

	return pipeline.RenderResult{
		Image: canvas.ToImage(),
		Placement: pipeline.Placement{
			X:      offset.X,
			Y:      offset.Y,
			Width:  subjectSize.Width,
			Height: subjectSize.Height,
		},
	}, nil
}

// blurBackground crops the centre of the source to the target's aspect
// ratio, scales the crop to exactly target and blurs it.
func (s *Stage) blurBackground(src image.Image, srcSize, target pipeline.Dimension, radius float64) image.Image {
	window := cropImage(src, CoverCrop(srcSize, target))
	background := s.renderer.ResizeImage(window, target.Width, target.Height)
	return s.renderer.BlurImage(background, radius)
}
