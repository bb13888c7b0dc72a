// Package latex provides a small object model over LaTeX markup.
//
// A worksheet is assembled from [Element] values, each of which renders to an
// ordered list of markup lines. Elements are composed into a [Document] which
// owns the preamble and serializes everything into a .tex file.
//
// # Elements
//
// All content implements the [Element] interface. The concrete types are:
//
//   - [Text] - literal lines of markup
//   - [Bounded] - an environment wrapping another element (\begin ... \end)
//   - [Table] - a fixed-column tabular grid
//   - [PageStyle] - a fancyhdr page style applied to the current page only
//
// Helper constructors cover the common cases:
//
//	doc := latex.NewAcademicDocument()
//	doc.AddElement(latex.PageNumbersOff())
//	doc.AddElement(latex.Section("Practice"))
//	doc.AddElement(latex.Center(latex.NewText("Hello")))
//
// # Tables
//
// The [Table] type lays a flat list of elements into a grid, inserting column
// separators and row terminators:
//
//	t := latex.NewTable(4, "4cm", "10pt", false)
//	t.SetItems(items)
//
// # Export
//
// [Document.Export] writes <name>.tex and then hands the file to a
// [Compiler]. Compiler failures are reported as [Warning] values; only
// failures to write the markup file are returned as errors.
package latex
