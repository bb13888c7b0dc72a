package problem

import "math/rand"

// Problem is a prompt with its expected answer, both in LaTeX math notation
type Problem struct {
	Prompt string `yaml:"prompt"`
	Answer string `yaml:"answer"`
}

// Generator returns a new random problem on each call
type Generator func() Problem

// Random returns a generator that delegates each call to one of gens,
// chosen uniformly at random. Calls are independent, so repeats happen.
func Random(r *rand.Rand, gens ...Generator) Generator {
	return func() Problem {
		return gens[Int(r, 0, len(gens))]()
	}
}
