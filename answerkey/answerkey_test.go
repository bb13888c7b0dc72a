package answerkey

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/tsawler/mathsheet/problem"
)

func sampleKey() *Key {
	return &Key{
		Name: "week1",
		Seed: 99,
		Mix:  []problem.Spec{{Kind: problem.KindIntMultiplication, Low: 1, High: 10}},
		Problems: []problem.Problem{
			{Prompt: `2 \times 3 =`, Answer: "6"},
			{Prompt: `7 \div 2 =`, Answer: "3r1"},
		},
	}
}

func TestSaveLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "week1")
	if err := Save(Path(name), sampleKey()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	for _, path := range []string{Path(name), name + ".tex"} {
		k, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) error: %v", path, err)
		}
		if k.Name != "week1" || k.Seed != 99 || len(k.Problems) != 2 || len(k.Mix) != 1 {
			t.Errorf("Load(%q) = %+v", path, k)
		}
		if k.Problems[1].Prompt != `7 \div 2 =` {
			t.Errorf("prompt round trip = %q", k.Problems[1].Prompt)
		}
	}
}

func TestAnswer(t *testing.T) {
	k := sampleKey()
	if a, err := k.Answer(2); err != nil || a != "3r1" {
		t.Errorf("Answer(2) = %q, %v", a, err)
	}
	for _, n := range []int{0, 3} {
		if _, err := k.Answer(n); !errors.Is(err, ErrNoSuchProblem) {
			t.Errorf("Answer(%d) error = %v, want ErrNoSuchProblem", n, err)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.key.yaml")); err == nil {
		t.Error("expected error for missing key")
	}
}
