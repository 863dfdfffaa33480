package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate headings and labels.
func WithTranslator(fn func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// WithVersion sets the tool version shown in the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Packaging Summary"))
	fmt.Fprintf(&b, "%s: %s\n\n", t("Generated"), s.GeneratedAt.Format(time.RFC3339))

	// Inputs
	fmt.Fprintf(&b, "## %s\n\n", t("Images"))
	if len(s.Inputs) == 0 {
		fmt.Fprintf(&b, "%s\n\n", t("No images"))
	} else {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", t("Name"), t("Size"), t("Format"))
		b.WriteString("|---|---|---|\n")
		for _, in := range s.Inputs {
			fmt.Fprintf(&b, "| %s | %dx%d | %s |\n", escape(in.Name), in.Width, in.Height, in.Format)
		}
		b.WriteString("\n")
	}

	// Settings
	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Item"), t("Value"))
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| %s | %s |\n", t("Fill"), s.Settings.Fill)
	fmt.Fprintf(&b, "| %s | %d |\n", t("JPEG Quality"), s.Settings.Quality)
	for _, l := range s.Settings.Layouts {
		fmt.Fprintf(&b, "| %s | %s %dx%d |\n", t("Layout"), escape(l.Label), l.Width, l.Height)
	}
	b.WriteString("\n")

	// Archive
	fmt.Fprintf(&b, "## %s\n\n", t("Archive"))
	if s.Archive.Path != "" {
		fmt.Fprintf(&b, "- %s: %s\n", t("Output"), s.Archive.Path)
	}
	fmt.Fprintf(&b, "- %s: %s\n", t("File Size"), formatBytes(s.Archive.FileSize))
	fmt.Fprintf(&b, "- %s: %d\n\n", t("Entries"), len(s.Archive.Entries))
	if len(s.Archive.Entries) > 0 {
		fmt.Fprintf(&b, "| %s | %s |\n", t("Entry"), t("Size"))
		b.WriteString("|---|---|\n")
		for _, e := range s.Archive.Entries {
			fmt.Fprintf(&b, "| %s | %s |\n", escape(e.Path), formatBytes(int64(e.Size)))
		}
		b.WriteString("\n")
	}

	// Advice
	if len(s.Advice) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t("Advice"))
		for _, a := range s.Advice {
			fmt.Fprintf(&b, "### %s\n\n", a.ImageName)
			if a.Status != "ok" {
				fmt.Fprintf(&b, "_%s: %s_\n\n", t("Unavailable"), t(a.Status))
			}
			if a.Text != "" {
				fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(a.Text))
			}
		}
	}

	b.WriteString("---\n")
	if f.version != "" {
		fmt.Fprintf(&b, "%s reframe %s\n", t("Generated by"), f.version)
	} else {
		fmt.Fprintf(&b, "%s reframe\n", t("Generated by"))
	}

	return b.String()
}

// escape keeps pipes in names from breaking table rows.
func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// formatBytes formats a byte count with binary units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit && exp < 2; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}
