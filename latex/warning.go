package latex

import "strings"

// Warning describes a non-fatal problem during export
type Warning struct {
	Stage   string // e.g. "compile"
	Path    string
	Message string
}

func (w Warning) String() string {
	if w.Path == "" {
		return w.Stage + ": " + w.Message
	}
	return w.Stage + " " + w.Path + ": " + w.Message
}

// FormatWarnings joins warnings into a single line
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
