// Package layouts holds the fixed catalog of social-media placements.
package layouts

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/user/reframe/pkg/pipeline"
)

// catalog is the static placement table, in display order.
var catalog = []pipeline.TargetLayout{
	{Label: "Feed (1:1)", Width: 1080, Height: 1080},
	{Label: "Portrait (4:5)", Width: 1080, Height: 1350},
	{Label: "Stories (9:16)", Width: 1080, Height: 1920},
	{Label: "Landscape (1.91:1)", Width: 1200, Height: 628},
}

// fallbackShortName is used when a label has no leading word.
const fallbackShortName = "layout"

// All returns a copy of the catalog in display order.
func All() []pipeline.TargetLayout {
	out := make([]pipeline.TargetLayout, len(catalog))
	copy(out, catalog)
	return out
}

// ShortName returns the archive file stem for a layout label: everything up
// to the first space or separator. "Feed (1:1)" becomes "Feed".
func ShortName(label string) string {
	label = strings.TrimLeftFunc(label, unicode.IsSpace)
	if i := strings.IndexFunc(label, isSeparator); i >= 0 {
		label = label[:i]
	}
	if label == "" {
		return fallbackShortName
	}
	return label
}

func isSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '(', ')', '/', '\\', ':', '|', ',':
		return true
	}
	return false
}

// Lookup finds a layout by label or short name, ignoring case.
func Lookup(name string) (pipeline.TargetLayout, error) {
	name = strings.TrimSpace(name)
	for _, l := range catalog {
		if strings.EqualFold(l.Label, name) || strings.EqualFold(ShortName(l.Label), name) {
			return l, nil
		}
	}
	return pipeline.TargetLayout{}, fmt.Errorf("%w: %q", pipeline.ErrUnknownLayout, name)
}

// Select resolves names in the given order. No names selects the whole catalog.
func Select(names []string) ([]pipeline.TargetLayout, error) {
	if len(names) == 0 {
		return All(), nil
	}
	out := make([]pipeline.TargetLayout, 0, len(names))
	for _, name := range names {
		l, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}
