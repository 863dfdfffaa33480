package summarizer

import "github.com/user/reframe/pkg/orchestrator"

// FromRunResult starts a Builder populated from an orchestrator run.
func FromRunResult(result orchestrator.RunResult) *Builder {
	b := NewBuilder()

	for _, in := range result.Inputs {
		b.WithInput(in.Name, in.Width, in.Height, in.Format)
	}

	layouts := make([]LayoutInfo, len(result.Layouts))
	for i, l := range result.Layouts {
		layouts[i] = LayoutInfo{Label: l.Label, Width: l.Width, Height: l.Height}
	}
	b.WithSettings(Settings{
		Layouts: layouts,
		Fill:    result.Strategy,
		Quality: result.Quality,
	})

	entries := make([]EntryInfo, len(result.Entries))
	for i, e := range result.Entries {
		entries[i] = EntryInfo{Path: e.Path, Size: e.Size}
	}
	b.WithArchive(ArchiveInfo{
		Path:     result.OutputPath,
		FileSize: int64(result.ArchiveSize),
		Entries:  entries,
	})

	for _, a := range result.Advice {
		b.WithAdvice(a.ImageName, a.Status.String(), a.Text)
	}

	return b
}
