package latex

// PageStyle is a fancyhdr page style applied to the current page only.
// The id names the style; two blocks in one document must use different ids.
type PageStyle struct {
	id    string
	lines []string
}

// NewPageStyle creates an empty page style block named id
func NewPageStyle(id string) *PageStyle {
	return &PageStyle{id: id}
}

func (s *PageStyle) Type() ElementType { return ElementTypePageStyle }

// ID returns the style name
func (s *PageStyle) ID() string { return s.id }

// SetType adds a \pagestyle directive, e.g. SetType("{fancy}")
func (s *PageStyle) SetType(styleType string) {
	s.AddLine(`\pagestyle` + styleType)
}

// AddLine appends a raw style directive
func (s *PageStyle) AddLine(line string) {
	s.lines = append(s.lines, line)
}

func (s *PageStyle) Lines() []string {
	lines := make([]string, 0, len(s.lines)+3)
	lines = append(lines, `\fancypagestyle{`+s.id+`}{`)
	lines = append(lines, "")
	lines = append(lines, s.lines...)
	return append(lines, `}\thispagestyle{`+s.id+`}`)
}
