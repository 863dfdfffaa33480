// Package advise asks the external advice collaborator about each image.
// Collaborator failures are reported as data and never abort the run.
package advise

import (
	"context"
	"fmt"

	"github.com/user/reframe/pkg/pipeline"
	"github.com/user/reframe/pkg/ports"
)

// Stage requests advice for every image in order.
type Stage struct {
	advisor ports.Advisor
	sink    ports.DebugSink
	logger  ports.Logger
}

// NewStage creates a new advise stage.
func NewStage(advisor ports.Advisor, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		advisor: advisor,
		sink:    sink,
		logger:  logger.WithComponent("advise"),
	}
}

// Execute returns one Advice per image. The only error is a cancelled context.
func (s *Stage) Execute(ctx context.Context, input pipeline.AdviseInput) (pipeline.AdviseResult, error) {
	labels := make([]string, len(input.Layouts))
	for i, l := range input.Layouts {
		labels[i] = fmt.Sprintf("%s %dx%d", l.Label, l.Width, l.Height)
	}

	advice := make([]ports.Advice, 0, len(input.Images))
	for _, img := range input.Images {
		if err := ctx.Err(); err != nil {
			return pipeline.AdviseResult{}, err
		}

		a := s.advisor.Advise(ctx, ports.AdviceRequest{
			ImageName: img.Name,
			ImageData: img.Data,
			MIMEType:  MIMEType(img.Format),
			Layouts:   labels,
		})
		a.ImageName = img.Name

		switch a.Status {
		case ports.AdviceOK:
			s.logger.Debug("Advice received for %s", img.Name)
		case ports.AdviceRateLimited:
			s.logger.Warn("Advice for %s skipped: rate limited", img.Name)
		default:
			s.logger.Warn("Advice for %s failed: %s", img.Name, a.Text)
		}

		if s.sink.Enabled() && a.Status == ports.AdviceOK {
			if err := s.sink.SaveAdvice(img.Name, a.Text); err != nil {
				s.logger.Warn("Failed to save advice for %s: %v", img.Name, err)
			}
		}

		advice = append(advice, a)
	}

	return pipeline.AdviseResult{Advice: advice}, nil
}

// MIMEType maps a decoder name to the MIME type sent with the image bytes.
func MIMEType(format string) string {
	switch format {
	case "jpeg":
		return "image/jpeg"
	case "png", "gif", "webp", "bmp", "tiff":
		return "image/" + format
	default:
		return "application/octet-stream"
	}
}
