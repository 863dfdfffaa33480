package reframe

import (
	"context"
	"image"

	"github.com/user/reframe/pkg/adapters/ggrenderer"
	"github.com/user/reframe/pkg/adapters/logger"
	"github.com/user/reframe/pkg/adapters/nullsink"
	"github.com/user/reframe/pkg/pipeline"
	"github.com/user/reframe/pkg/stages/fit"
	"github.com/user/reframe/pkg/stages/pack"
)

// Fit renders source onto a target-sized canvas without cropping it.
func Fit(source image.Image, target pipeline.Dimension, strategy pipeline.FillStrategy) (pipeline.RenderResult, error) {
	stage := fit.NewStage(ggrenderer.New(), logger.NewNoop())
	return stage.Fit(source, target, strategy)
}

// PackageAll renders every image into every layout and returns a zip
// archive of JPEG entries named "{image}/{layout}.jpg".
func PackageAll(
	ctx context.Context,
	images []pipeline.NamedImage,
	layouts []pipeline.TargetLayout,
	strategy pipeline.FillStrategy,
	quality int,
) (pipeline.PackageResult, error) {
	stage := pack.NewStage(ggrenderer.New(), nullsink.New(), logger.NewNoop(), 0)
	return stage.Execute(ctx, pipeline.PackageInput{
		Images:   images,
		Layouts:  layouts,
		Strategy: strategy,
		Quality:  quality,
	})
}
