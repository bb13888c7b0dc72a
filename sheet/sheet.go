// Package sheet assembles a timed practice worksheet: a question table on
// the front page and an upside-down answer key on the back.
package sheet

import (
	"strconv"

	"golang.org/x/text/language"

	"github.com/tsawler/mathsheet/latex"
	"github.com/tsawler/mathsheet/problem"
)

// DefaultInstructions is printed above the question table
const DefaultInstructions = "Solve as many of the problems below as you can in the allotted time. " +
	"If the problem expression contains only whole numbers, " +
	"your answer should be a whole number. " +
	"If the problem expression contains decimals, " +
	`your answer should too.\bigskip\bigskip\\`

// Layout holds the presentation settings of a worksheet
type Layout struct {
	Title           string
	Instructions    string
	Count           int    // Number of problems
	Columns         int    // Columns in both tables
	ColumnWidth     string // Width of every column, e.g. "4cm"
	QuestionSpacing string // Row spacing of the question table
	AnswerSpacing   string // Row spacing of the answer key
	Outlined        bool
	Language        language.Tag
}

// DefaultLayout returns the standard 20-problem, 4-column sheet
func DefaultLayout() Layout {
	return Layout{
		Title:           "Timed Math Practice Sheet",
		Instructions:    DefaultInstructions,
		Count:           20,
		Columns:         4,
		ColumnWidth:     "4cm",
		QuestionSpacing: "3.5cm",
		AnswerSpacing:   "10pt",
		Outlined:        false,
		Language:        language.English,
	}
}

// Sheet is a built worksheet
type Sheet struct {
	Problems  []problem.Problem
	Questions *latex.Table
	Answers   *latex.Table
	Document  *latex.Document
}

// Build draws layout.Count problems from gen and lays them out
func Build(gen problem.Generator, layout Layout) *Sheet {
	problems := make([]problem.Problem, 0, layout.Count)
	prompts := make([]latex.Element, 0, layout.Count)
	answers := make([]latex.Element, 0, layout.Count)
	for n := 1; n <= layout.Count; n++ {
		p := gen()
		problems = append(problems, p)
		prompts = append(prompts, Numbered(n, p.Prompt))
		answers = append(answers, Numbered(n, p.Answer))
	}

	questions := latex.NewTable(layout.Columns, layout.ColumnWidth, layout.QuestionSpacing, layout.Outlined)
	questions.SetItems(prompts)
	answerKey := latex.NewTable(layout.Columns, layout.ColumnWidth, layout.AnswerSpacing, layout.Outlined)
	answerKey.SetItems(answers)

	doc := latex.NewAcademicDocumentFor(layout.Language)

	// Front page
	doc.AddElement(latex.PageNumbersOff())
	doc.AddElement(header(doc))
	doc.AddElement(latex.Section(layout.Title))
	doc.AddElement(latex.NewText(layout.Instructions))
	doc.AddElement(questions)

	// Back page, rotated so the key reads correctly when the sheet is flipped
	doc.AddElement(latex.NewPage())
	doc.AddElement(latex.NewText(`\vspace*{\fill}`))
	doc.AddElement(latex.FlushRight(latex.Environment("turn", "{180}", answerKey)))

	return &Sheet{
		Problems:  problems,
		Questions: questions,
		Answers:   answerKey,
		Document:  doc,
	}
}

// Numbered renders item n as inline math: "n. $math$"
func Numbered(n int, math string) *latex.Text {
	return latex.NewText(strconv.Itoa(n) + ". $" + math + "$")
}

func header(doc *latex.Document) *latex.PageStyle {
	style := doc.NewPageStyle()
	style.SetType("{fancy}")
	style.AddLine(`\lhead{Date: \underline{\hspace{3cm}}}`)
	style.AddLine(`\chead{Time: \underline{\hspace{3cm}}}`)
	style.AddLine(`\rhead{Score: \underline{\hspace{4cm}}}`)
	return style
}
