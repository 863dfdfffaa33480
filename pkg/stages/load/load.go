// Package load implements the input stage that reads and decodes image files.
package load

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/reframe/pkg/pipeline"
	"github.com/user/reframe/pkg/ports"
)

// imageExtensions are the extensions picked up when a directory is expanded.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// IsImageFile reports whether path has a known image extension.
func IsImageFile(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// Stage loads input images.
type Stage struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new load stage.
func NewStage(fs ports.FileSystem, renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		fs:       fs,
		renderer: renderer,
		logger:   logger.WithComponent("load"),
	}
}

// Execute expands directories and decodes every file in order.
func (s *Stage) Execute(ctx context.Context, input pipeline.LoadInput) (pipeline.LoadResult, error) {
	paths, err := s.expand(input.Paths)
	if err != nil {
		return pipeline.LoadResult{}, err
	}
	if len(paths) == 0 {
		return pipeline.LoadResult{}, pipeline.ErrNoInputs
	}

	images := make([]pipeline.NamedImage, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return pipeline.LoadResult{}, err
		}

		data, err := s.fs.ReadFile(path)
		if err != nil {
			return pipeline.LoadResult{}, fmt.Errorf("read %s: %w", path, err)
		}

		img, format, err := s.renderer.DecodeImage(data)
		if err != nil {
			return pipeline.LoadResult{}, fmt.Errorf("%s: %w", path, err)
		}

		b := img.Bounds()
		s.logger.Debug("Loaded %s (%s, %dx%d)", path, format, b.Dx(), b.Dy())

		images = append(images, pipeline.NamedImage{
			Name:   path,
			Image:  img,
			Data:   data,
			Format: format,
		})
	}

	return pipeline.LoadResult{Images: images}, nil
}

// expand replaces each directory with its image files. Plain files pass through.
func (s *Stage) expand(paths []string) ([]string, error) {
	var out []string
	for _, path := range paths {
		isDir, err := s.fs.IsDir(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !isDir {
			out = append(out, path)
			continue
		}

		files, err := s.fs.List(path)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", path, err)
		}
		n := 0
		for _, f := range files {
			if IsImageFile(f) {
				out = append(out, f)
				n++
			}
		}
		s.logger.Debug("Expanded %s to %d images", path, n)
	}
	return out, nil
}
