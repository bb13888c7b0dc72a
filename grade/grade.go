package grade

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/mathsheet/answerkey"
)

// Recognizer turns an image into text. *ocr.Client satisfies it.
type Recognizer interface {
	RecognizeImage(imageData []byte) (string, error)
}

// Result is the outcome of one problem
type Result struct {
	Number   int
	Expected string
	Given    string // Empty when no response was found
	Correct  bool
}

// Report summarizes a graded sheet
type Report struct {
	Name    string
	Results []Result
	Correct int
	Total   int
}

// Score formats the report as "correct/total"
func (r *Report) Score() string {
	return strconv.Itoa(r.Correct) + "/" + strconv.Itoa(r.Total)
}

// Missing returns the numbers of problems with no response
func (r *Report) Missing() []int {
	var missing []int
	for _, res := range r.Results {
		if res.Given == "" {
			missing = append(missing, res.Number)
		}
	}
	return missing
}

// responsePattern matches "12. 45.5" and "3. 7 r 2"; a label needs
// whitespace after its period so decimals are not split.
var responsePattern = regexp.MustCompile(`(\d{1,3})\s*\.\s+(\d+(?:\.\d+)?(?:\s*r\s*\d+)?)`)

// ParseResponses extracts numbered responses from OCR text. When a number
// appears more than once the first occurrence wins.
func ParseResponses(text string) map[int]string {
	text = norm.NFKC.String(text)
	responses := make(map[int]string)
	for _, m := range responsePattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if _, ok := responses[n]; ok {
			continue
		}
		responses[n] = normalize(m[2])
	}
	return responses
}

// Grade compares responses with the key
func Grade(key *answerkey.Key, responses map[int]string) *Report {
	report := &Report{Name: key.Name, Total: len(key.Problems)}
	for i, p := range key.Problems {
		n := i + 1
		given := responses[n]
		res := Result{
			Number:   n,
			Expected: p.Answer,
			Given:    given,
			Correct:  given != "" && Equal(p.Answer, given),
		}
		if res.Correct {
			report.Correct++
		}
		report.Results = append(report.Results, res)
	}
	return report
}

// Equal reports whether a response matches an expected answer. Whitespace
// and math delimiters are ignored, and numbers compare by value.
func Equal(expected, given string) bool {
	e, g := normalize(expected), normalize(given)
	if e == g {
		return true
	}
	ef, err1 := strconv.ParseFloat(e, 64)
	gf, err2 := strconv.ParseFloat(g, 64)
	return err1 == nil && err2 == nil && ef == gf
}

func normalize(s string) string {
	s = norm.NFKC.String(s)
	return strings.Map(func(r rune) rune {
		if r == '$' || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
}

// Scan grades the image at scanPath against the key at keyPath
func Scan(ctx context.Context, keyPath, scanPath string, rec Recognizer) (*Report, error) {
	key, err := answerkey.Load(keyPath)
	if err != nil {
		return nil, err
	}
	img, err := LoadScan(scanPath)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text, err := rec.RecognizeImage(img)
	if err != nil {
		return nil, fmt.Errorf("recognizing %s: %w", scanPath, err)
	}
	return Grade(key, ParseResponses(text)), nil
}
