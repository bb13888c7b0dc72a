package latex

import "strings"

// Table is a tabular grid with a fixed column count and uniform column width
type Table struct {
	columns    int
	width      string
	rowSpacing string
	outlined   bool // Whether cells are separated by vertical rules
	lines      []string
}

// NewTable creates an empty table. A column count below 1 is raised to 1.
func NewTable(columns int, width, rowSpacing string, outlined bool) *Table {
	if columns < 1 {
		columns = 1
	}
	return &Table{
		columns:    columns,
		width:      width,
		rowSpacing: rowSpacing,
		outlined:   outlined,
	}
}

func (t *Table) Type() ElementType { return ElementTypeTable }

// Columns returns the number of columns
func (t *Table) Columns() int { return t.columns }

// RowSpacing returns the spacing appended to each row terminator
func (t *Table) RowSpacing() string { return t.rowSpacing }

// SetRowSpacing sets the spacing used by subsequent SetItems calls
func (t *Table) SetRowSpacing(spacing string) {
	t.rowSpacing = spacing
}

// ColumnSpec returns the tabular column specification, e.g. "{ m{4cm} m{4cm} }"
func (t *Table) ColumnSpec() string {
	spacer := " "
	if t.outlined {
		spacer = "|"
	}
	var sb strings.Builder
	sb.WriteString("{")
	sb.WriteString(spacer)
	for i := 0; i < t.columns; i++ {
		sb.WriteString("m{" + t.width + "}")
		sb.WriteString(spacer)
	}
	sb.WriteString("}")
	return sb.String()
}

// SetItems lays items out row by row. Every item is followed by a column
// separator, or by a row terminator when it closes a row. A final row with
// fewer than Columns items is left unterminated.
func (t *Table) SetItems(items []Element) {
	t.lines = t.lines[:0]
	for i, item := range items {
		t.lines = append(t.lines, item.Lines()...)
		if t.lastInRow(i) {
			t.lines = append(t.lines, RowTerminator(t.rowSpacing))
		} else {
			t.lines = append(t.lines, ColumnSeparator)
		}
	}
}

func (t *Table) lastInRow(i int) bool {
	return i%t.columns == t.columns-1
}

func (t *Table) Lines() []string {
	return Environment("tabular", t.ColumnSpec(), NewTextLines(t.lines)).Lines()
}

// ColumnSeparator is the line emitted between cells of a row
const ColumnSeparator = " & "

// RowTerminator returns the line that ends a table row
func RowTerminator(spacing string) string {
	return ` \\[` + spacing + `]`
}
