// Package htmldoc renders an HTML preview of a worksheet, for checking a
// sheet in a browser when no LaTeX installation is available.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/mathsheet/problem"
)

// Page describes the content of a preview
type Page struct {
	Title        string
	Instructions string // LaTeX markup is reduced to plain text
	Columns      int
	Problems     []problem.Problem
	ShowAnswers  bool
}

// latexText maps the markup used in prompts and instructions to plain text
var latexText = strings.NewReplacer(
	`\times`, "×",
	`\div`, "÷",
	`\bigskip`, "",
	`\\`, "",
	"$", "",
)

// PlainText reduces worksheet markup to display text
func PlainText(s string) string {
	return strings.TrimSpace(latexText.Replace(s))
}

// Render writes the page as a complete HTML document
func Render(w io.Writer, p Page) error {
	if err := html.Render(w, Build(p)); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}

// WriteFile renders the page to path
func WriteFile(path string, p Page) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Render(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Build returns the document node tree for the page
func Build(p Page) *html.Node {
	columns := p.Columns
	if columns < 1 {
		columns = 4
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	meta := element(atom.Meta)
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)
	head.AppendChild(withText(element(atom.Title), p.Title))
	style := element(atom.Style)
	style.AppendChild(text(stylesheet(columns)))
	head.AppendChild(style)
	root.AppendChild(head)

	body := element(atom.Body)
	body.AppendChild(withText(element(atom.H1), p.Title))
	if p.Instructions != "" {
		body.AppendChild(withText(element(atom.P), PlainText(p.Instructions)))
	}
	body.AppendChild(problemList("questions", p.Problems, func(pr problem.Problem) string { return pr.Prompt }))

	if p.ShowAnswers {
		body.AppendChild(withText(element(atom.H2), "Answer Key"))
		body.AppendChild(problemList("answers", p.Problems, func(pr problem.Problem) string { return pr.Answer }))
	}
	root.AppendChild(body)

	return doc
}

func problemList(class string, problems []problem.Problem, field func(problem.Problem) string) *html.Node {
	list := element(atom.Ol)
	list.Attr = []html.Attribute{{Key: "class", Val: class}}
	for i, pr := range problems {
		item := withText(element(atom.Li), PlainText(field(pr)))
		item.Attr = []html.Attribute{{Key: "value", Val: strconv.Itoa(i + 1)}}
		list.AppendChild(item)
	}
	return list
}

func stylesheet(columns int) string {
	return "ol{display:grid;grid-template-columns:repeat(" + strconv.Itoa(columns) +
		",1fr);gap:2em 1em}ol.answers{gap:.5em 1em}"
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func withText(n *html.Node, s string) *html.Node {
	n.AppendChild(text(s))
	return n
}
