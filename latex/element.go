package latex

import "strings"

// ElementType represents the type of document element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeText
	ElementTypeNewPage
	ElementTypeSection
	ElementTypeEnvironment
	ElementTypeTable
	ElementTypePageStyle
	ElementTypePageNumbers
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeText:
		return "Text"
	case ElementTypeNewPage:
		return "NewPage"
	case ElementTypeSection:
		return "Section"
	case ElementTypeEnvironment:
		return "Environment"
	case ElementTypeTable:
		return "Table"
	case ElementTypePageStyle:
		return "PageStyle"
	case ElementTypePageNumbers:
		return "PageNumbers"
	default:
		return "Unknown"
	}
}

// Element is the interface for all document elements.
// Lines is recomputed on every call.
type Element interface {
	Type() ElementType
	Lines() []string
}

// Text is a literal sequence of markup lines
type Text struct {
	lines []string
	kind  ElementType
}

// NewText creates a text element, splitting s on line breaks
func NewText(s string) *Text {
	return &Text{lines: strings.Split(s, "\n"), kind: ElementTypeText}
}

// NewTextLines creates a text element from already split lines
func NewTextLines(lines []string) *Text {
	return &Text{lines: append([]string(nil), lines...), kind: ElementTypeText}
}

func (t *Text) Type() ElementType { return t.kind }

// Lines returns a copy of the element's lines
func (t *Text) Lines() []string {
	return append([]string(nil), t.lines...)
}

// AddLine appends a line of markup
func (t *Text) AddLine(line string) {
	t.lines = append(t.lines, line)
}

// NewPage ends the current page and starts a new one
func NewPage() *Text {
	return &Text{lines: []string{`\newpage`}, kind: ElementTypeNewPage}
}

// Section begins an unnumbered section
func Section(name string) *Text {
	return &Text{lines: []string{`\section*{` + name + `}`}, kind: ElementTypeSection}
}

// PageNumbersOff disables page numbering
func PageNumbersOff() *Text {
	return &Text{lines: []string{`\pagenumbering{gobble}`}, kind: ElementTypePageNumbers}
}

// Bounded wraps an inner element in \begin{name}params ... \end{name}
type Bounded struct {
	Name   string
	Params string
	Inner  Element
}

// Environment creates a bounded element. A nil inner element renders as a
// single empty line.
func Environment(name, params string, inner Element) *Bounded {
	return &Bounded{Name: name, Params: params, Inner: inner}
}

func (b *Bounded) Type() ElementType { return ElementTypeEnvironment }

// Begin returns the opening marker line
func (b *Bounded) Begin() string { return `\begin{` + b.Name + `}` + b.Params }

// End returns the closing marker line
func (b *Bounded) End() string { return `\end{` + b.Name + `}` }

func (b *Bounded) Lines() []string {
	inner := []string{""}
	if b.Inner != nil {
		inner = b.Inner.Lines()
	}
	lines := make([]string, 0, len(inner)+2)
	lines = append(lines, b.Begin())
	lines = append(lines, inner...)
	return append(lines, b.End())
}

// FlushLeft aligns its contents to the left
func FlushLeft(inner Element) *Bounded {
	return Environment("flushleft", "", inner)
}

// Center centers its contents
func Center(inner Element) *Bounded {
	return Environment("center", "", inner)
}

// FlushRight aligns its contents to the right
func FlushRight(inner Element) *Bounded {
	return Environment("flushright", "", inner)
}
