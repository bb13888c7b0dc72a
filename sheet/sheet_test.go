package sheet

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/tsawler/mathsheet/latex"
	"github.com/tsawler/mathsheet/problem"
)

var promptPattern = regexp.MustCompile(`^(\d+)\. \$(\d+) \\times (\d+) =\$$`)
var answerPattern = regexp.MustCompile(`^(\d+)\. \$(\d+)\$$`)

func itemLines(table *latex.Table) []string {
	var lines []string
	for _, line := range table.Lines() {
		if strings.HasPrefix(line, `\begin{`) || strings.HasPrefix(line, `\end{`) {
			continue
		}
		if line == latex.ColumnSeparator || strings.HasPrefix(line, ` \\[`) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func TestBuildIntegerMultiplicationSheet(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	s := Build(problem.IntMultiplication(r, 1, 1000), DefaultLayout())

	prompts := itemLines(s.Questions)
	answers := itemLines(s.Answers)
	if len(prompts) != 20 || len(answers) != 20 {
		t.Fatalf("got %d prompts and %d answers, want 20 each", len(prompts), len(answers))
	}

	for i := range prompts {
		m := promptPattern.FindStringSubmatch(prompts[i])
		if m == nil {
			t.Fatalf("prompt %q does not match", prompts[i])
		}
		n, _ := strconv.Atoi(m[1])
		a, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		if n != i+1 {
			t.Errorf("prompt %d numbered %d", i+1, n)
		}
		if a < 1 || a >= 1000 || b < 1 || b >= 1000 {
			t.Errorf("operands out of range in %q", prompts[i])
		}

		am := answerPattern.FindStringSubmatch(answers[i])
		if am == nil {
			t.Fatalf("answer %q does not match", answers[i])
		}
		if am[1] != m[1] {
			t.Errorf("answer %q numbered differently from prompt %q", answers[i], prompts[i])
		}
		if got, _ := strconv.Atoi(am[2]); got != a*b {
			t.Errorf("answer %d = %d, want %d", n, got, a*b)
		}
	}

	if len(s.Problems) != 20 {
		t.Errorf("Problems len = %d, want 20", len(s.Problems))
	}
}

func TestBuildDocumentStructure(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	s := Build(problem.IntMultiplication(r, 1, 10), DefaultLayout())

	var types []latex.ElementType
	for _, e := range s.Document.Elements() {
		types = append(types, e.Type())
	}
	want := []latex.ElementType{
		latex.ElementTypePageNumbers,
		latex.ElementTypePageStyle,
		latex.ElementTypeSection,
		latex.ElementTypeText,
		latex.ElementTypeTable,
		latex.ElementTypeNewPage,
		latex.ElementTypeText,
		latex.ElementTypeEnvironment,
	}
	if len(types) != len(want) {
		t.Fatalf("element types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, types[i], want[i])
		}
	}

	back := s.Document.Elements()[7].Lines()
	if back[0] != `\begin{flushright}` || back[1] != `\begin{turn}{180}` {
		t.Errorf("answer key wrapper = %q", back[:2])
	}
	if back[len(back)-1] != `\end{flushright}` {
		t.Errorf("answer key ends with %q", back[len(back)-1])
	}
}

func TestBuildRespectsLayout(t *testing.T) {
	layout := DefaultLayout()
	layout.Count = 6
	layout.Columns = 3
	layout.Title = "Quiz"
	layout.AnswerSpacing = "2pt"

	r := rand.New(rand.NewSource(1))
	s := Build(problem.IntMultiplication(r, 1, 10), layout)

	if len(s.Problems) != 6 {
		t.Fatalf("Problems len = %d, want 6", len(s.Problems))
	}
	terminators := 0
	for _, line := range s.Answers.Lines() {
		if line == latex.RowTerminator("2pt") {
			terminators++
		}
	}
	if terminators != 2 {
		t.Errorf("answer key has %d row terminators, want 2", terminators)
	}
	if got := s.Document.Elements()[2].Lines()[0]; got != `\section*{Quiz}` {
		t.Errorf("section = %q", got)
	}
}

func TestNumbered(t *testing.T) {
	got := Numbered(3, `4 \div 2 =`).Lines()
	if len(got) != 1 || got[0] != `3. $4 \div 2 =$` {
		t.Errorf("Numbered() = %q", got)
	}
}
