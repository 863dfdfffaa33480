// Package pack implements the packager: it renders every image into every
// layout and bundles the JPEG renderings into one zip archive.
package pack

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/user/reframe/pkg/layouts"
	"github.com/user/reframe/pkg/pipeline"
	"github.com/user/reframe/pkg/ports"
	"github.com/user/reframe/pkg/stages/fit"
)

// entryTime is stamped on every archive entry so that equal inputs produce
// byte-identical archives.
var entryTime = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

// Stage renders and archives image x layout batches.
type Stage struct {
	fitter     *fit.Stage
	renderer   ports.Renderer
	sink       ports.DebugSink
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new pack stage.
// numWorkers <= 0 uses one worker per CPU.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	l := logger.WithComponent("pack")
	return &Stage{
		fitter:     fit.NewStage(renderer, l),
		renderer:   renderer,
		sink:       sink,
		logger:     l,
		numWorkers: numWorkers,
	}
}

// workItem is one (image, layout) pair in image-major order.
type workItem struct {
	image  pipeline.NamedImage
	layout pipeline.TargetLayout
	path   string
}

// Execute renders all pairs and builds the archive.
func (s *Stage) Execute(ctx context.Context, input pipeline.PackageInput) (pipeline.PackageResult, error) {
	if input.Quality < pipeline.MinQuality || input.Quality > pipeline.MaxQuality {
		return pipeline.PackageResult{}, fmt.Errorf("%w: %d (want %d-%d)",
			pipeline.ErrInvalidQuality, input.Quality, pipeline.MinQuality, pipeline.MaxQuality)
	}

	items := make([]workItem, 0, len(input.Images)*len(input.Layouts))
	for _, img := range input.Images {
		base := BaseName(img.Name)
		for _, layout := range input.Layouts {
			items = append(items, workItem{
				image:  img,
				layout: layout,
				path:   EntryPath(base, layout.Label),
			})
		}
	}

	s.logger.Debug("Packaging %d images x %d layouts with %d workers, fill %s, quality %d",
		len(input.Images), len(input.Layouts), s.numWorkers, input.Strategy, input.Quality)

	last := lastIndexByPath(items)
	outputs := make([][]byte, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.numWorkers)
	for i := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := s.renderItem(items[i], input.Strategy, input.Quality, last[items[i].path] == i)
			if err != nil {
				return err
			}
			outputs[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return pipeline.PackageResult{}, ctxErr
		}
		return pipeline.PackageResult{}, err
	}

	archive, entries, err := s.writeArchive(items, outputs, last)
	if err != nil {
		return pipeline.PackageResult{}, err
	}

	if s.sink.Enabled() {
		if err := s.saveManifest(entries); err != nil {
			s.logger.Warn("Failed to save manifest: %v", err)
		}
	}

	s.logger.Debug("Archive built: %d entries, %d bytes", len(entries), len(archive))
	return pipeline.PackageResult{Archive: archive, Entries: entries}, nil
}

// renderItem fits and encodes one pair. Only the item that ends up in the
// archive saves a preview, so duplicates never race on the same file.
func (s *Stage) renderItem(item workItem, strategy pipeline.FillStrategy, quality int, preview bool) ([]byte, error) {
	result, err := s.fitter.Fit(item.image.Image, item.layout.Size(), strategy)
	if err != nil {
		return nil, fmt.Errorf("fit %s/%s: %w", item.image.Name, item.layout.Label, err)
	}

	data, err := s.renderer.EncodeImage(result.Image, ports.FormatJPEG, quality)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", pipeline.ErrEncodingFailure, item.path, err)
	}

	if preview && s.sink.Enabled() {
		if err := s.sink.SavePreview(item.path, result.Image); err != nil {
			s.logger.Warn("Failed to save preview %s: %v", item.path, err)
		}
	}

	return data, nil
}

// lastIndexByPath maps each entry path to the index of the last item using it.
func lastIndexByPath(items []workItem) map[string]int {
	last := make(map[string]int, len(items))
	for i, item := range items {
		last[item.path] = i
	}
	return last
}

// writeArchive writes the surviving entries sequentially in item order.
// When several items share a path only the last one is written, at its own position.
func (s *Stage) writeArchive(items []workItem, outputs [][]byte, last map[string]int) ([]byte, []pipeline.ArchiveEntry, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := make([]pipeline.ArchiveEntry, 0, len(last))

	for i, item := range items {
		if last[item.path] != i {
			s.logger.Debug("Entry %s is overwritten by a later image", item.path)
			continue
		}

		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     item.path,
			Method:   zip.Deflate,
			Modified: entryTime,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("create entry %s: %w", item.path, err)
		}
		if _, err := w.Write(outputs[i]); err != nil {
			return nil, nil, fmt.Errorf("write entry %s: %w", item.path, err)
		}
		entries = append(entries, pipeline.ArchiveEntry{Path: item.path, Size: len(outputs[i])})
	}

	if err := zw.Close(); err != nil {
		return nil, nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), entries, nil
}

func (s *Stage) saveManifest(entries []pipeline.ArchiveEntry) error {
	type manifestEntry struct {
		Path string `json:"path"`
		Size int    `json:"size"`
	}
	m := make([]manifestEntry, len(entries))
	for i, e := range entries {
		m[i] = manifestEntry{Path: e.Path, Size: e.Size}
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return s.sink.SaveManifest(data)
}

// BaseName strips any directory part (either separator) and the last
// extension from an upload name. An empty result becomes "image".
func BaseName(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, path.Ext(name))
	if name == "" {
		return "image"
	}
	return name
}

// EntryPath returns "{base}/{ShortName(label)}.jpg".
func EntryPath(base, label string) string {
	return base + "/" + layouts.ShortName(label) + "." + ports.FormatJPEG.Extension()
}
