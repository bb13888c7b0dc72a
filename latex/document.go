package latex

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Document holds the preamble and the ordered list of body elements
type Document struct {
	preamble []string
	seen     map[string]bool
	elements []Element
	compiler Compiler
	styles   int // page styles handed out by NewPageStyle
}

// NewDocument creates a document whose preamble imports fancyhdr
func NewDocument() *Document {
	d := &Document{
		seen:     make(map[string]bool),
		elements: make([]Element, 0),
		compiler: DefaultCompiler(),
	}
	d.UsePackage("{fancyhdr}")
	return d
}

// NewAcademicDocument creates a document with the presets used for
// worksheets: 1in margins, English babel, UTF-8 input, array and rotating.
func NewAcademicDocument() *Document {
	return NewAcademicDocumentFor(language.English)
}

// NewAcademicDocumentFor is NewAcademicDocument with the babel language
// taken from tag.
func NewAcademicDocumentFor(tag language.Tag) *Document {
	d := NewDocument()
	d.SetMargin("1in")
	d.UsePackage("[" + BabelLanguage(tag) + "]{babel}")
	d.UsePackage("[utf8]{inputenc}")
	d.UsePackage("{array}")
	d.UsePackage("{rotating}")
	return d
}

// BabelLanguage returns the babel option name for tag, e.g. "french" for fr-CA.
// Unknown tags fall back to "english".
func BabelLanguage(tag language.Tag) string {
	base, _ := tag.Base()
	name := display.English.Languages().Name(base)
	if name == "" {
		return "english"
	}
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

// AddToPreamble adds each line of text to the preamble. Lines already
// present are ignored.
func (d *Document) AddToPreamble(text string) {
	for _, line := range strings.Split(text, "\n") {
		if d.seen[line] {
			continue
		}
		d.seen[line] = true
		d.preamble = append(d.preamble, line)
	}
}

// UsePackage imports a package; spec is the option and name part,
// e.g. "[utf8]{inputenc}".
func (d *Document) UsePackage(spec string) {
	d.AddToPreamble(`\usepackage` + spec)
}

// SetMargin sets the page margin through geometry. amount is not validated.
func (d *Document) SetMargin(amount string) {
	d.UsePackage("[margin=" + amount + "]{geometry}")
}

// AddElement appends an element to the body
func (d *Document) AddElement(elem Element) {
	d.elements = append(d.elements, elem)
}

// AddRaw appends raw markup to the body
func (d *Document) AddRaw(text string) {
	d.AddElement(NewText(text))
}

// NewPageStyle returns a page style block with an id unique within d
func (d *Document) NewPageStyle() *PageStyle {
	d.styles++
	return NewPageStyle("pagestyle" + strconv.Itoa(d.styles))
}

// Preamble returns the preamble lines in insertion order
func (d *Document) Preamble() []string {
	return append([]string(nil), d.preamble...)
}

// Elements returns the body elements in order
func (d *Document) Elements() []Element {
	return append([]Element(nil), d.elements...)
}

// SetCompiler replaces the compiler used by Export. A nil compiler disables
// rendering.
func (d *Document) SetCompiler(c Compiler) {
	d.compiler = c
}

// Lines returns every line of the serialized document
func (d *Document) Lines() []string {
	lines := []string{`\documentclass{article}`}
	lines = append(lines, d.preamble...)
	lines = append(lines, `\begin{document}`)
	for _, elem := range d.elements {
		lines = append(lines, elem.Lines()...)
	}
	return append(lines, `\end{document}`)
}

// WriteTo writes the serialized document, one line per Lines entry
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, line := range d.Lines() {
		m, err := bw.WriteString(line + "\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// Export writes <name>.tex and compiles it. name may include a directory.
// Failing to write the markup is an error; a failed compile is a warning.
func (d *Document) Export(ctx context.Context, name string) ([]Warning, error) {
	texPath := name + ".tex"
	if err := d.writeFile(texPath); err != nil {
		return nil, err
	}

	if d.compiler == nil {
		return nil, nil
	}
	if err := d.compiler.Compile(ctx, texPath); err != nil {
		return []Warning{{
			Stage:   "compile",
			Path:    texPath,
			Message: err.Error(),
		}}, nil
	}
	return nil, nil
}

func (d *Document) writeFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := d.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
