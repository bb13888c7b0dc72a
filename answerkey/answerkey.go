// Package answerkey stores the problems of a generated sheet so that a
// filled-in copy can be graded later.
package answerkey

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/mathsheet/problem"
)

// Extension is appended to a sheet name to form its key file name
const Extension = ".key.yaml"

// ErrNoSuchProblem is returned when a problem number is outside the key.
var ErrNoSuchProblem = errors.New("no such problem")

// Key is the answer key of one sheet
type Key struct {
	Name     string            `yaml:"name"`
	Seed     int64             `yaml:"seed"`
	Mix      []problem.Spec    `yaml:"mix,omitempty"`
	Problems []problem.Problem `yaml:"problems"`
}

// Path returns the key file path for a sheet name
func Path(name string) string {
	return name + Extension
}

// Answer returns the answer to problem n (1-indexed)
func (k *Key) Answer(n int) (string, error) {
	if n < 1 || n > len(k.Problems) {
		return "", fmt.Errorf("%w: %d of %d", ErrNoSuchProblem, n, len(k.Problems))
	}
	return k.Problems[n-1].Answer, nil
}

// Encode writes the key as YAML
func (k *Key) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(k); err != nil {
		return fmt.Errorf("encoding answer key: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML key
func Decode(r io.Reader) (*Key, error) {
	var k Key
	if err := yaml.NewDecoder(r).Decode(&k); err != nil {
		return nil, fmt.Errorf("decoding answer key: %w", err)
	}
	return &k, nil
}

// Save writes the key to path
func Save(path string, k *Key) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := k.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads the key stored at path, which may be either the key file itself
// or the sheet's .tex file.
func Load(path string) (*Key, error) {
	if strings.HasSuffix(path, ".tex") {
		path = Path(strings.TrimSuffix(path, ".tex"))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening answer key: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
