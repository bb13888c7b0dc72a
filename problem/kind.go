package problem

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"gopkg.in/yaml.v3"
)

// Kind names a problem generator family
type Kind string

const (
	KindIntMultiplication Kind = "int-mul"
	KindDecMultiplication Kind = "dec-mul"
	KindIntDivision       Kind = "int-div"
	KindDecDivision       Kind = "dec-div"
)

var (
	// ErrUnknownKind is returned for a Spec whose Kind is not registered.
	ErrUnknownKind = errors.New("unknown problem kind")
	// ErrInvalidBounds is returned when a Spec's bounds cannot produce problems.
	ErrInvalidBounds = errors.New("invalid problem bounds")
)

// Kinds returns every registered kind
func Kinds() []Kind {
	return []Kind{KindIntMultiplication, KindDecMultiplication, KindIntDivision, KindDecDivision}
}

// Decimal reports whether the kind works with decimal numbers
func (k Kind) Decimal() bool {
	return k == KindDecMultiplication || k == KindDecDivision
}

// Spec describes one generator of a problem mix
type Spec struct {
	Kind      Kind    `yaml:"kind"`
	Low       float64 `yaml:"low"`
	High      float64 `yaml:"high"`
	Precision int     `yaml:"precision,omitempty"`
}

func (s Spec) String() string {
	if s.Kind.Decimal() {
		return fmt.Sprintf("%s[%g,%g)p%d", s.Kind, s.Low, s.High, s.Precision)
	}
	return fmt.Sprintf("%s[%g,%g)", s.Kind, s.Low, s.High)
}

// Validate checks that the spec names a known kind and that its bounds can
// produce problems without dividing by zero.
func (s Spec) Validate() error {
	switch s.Kind {
	case KindIntMultiplication, KindIntDivision, KindDecMultiplication, KindDecDivision:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}

	if s.High <= s.Low {
		return fmt.Errorf("%w: %s: high must exceed low", ErrInvalidBounds, s)
	}

	if s.Kind.Decimal() {
		if s.Precision < 1 {
			return fmt.Errorf("%w: %s: precision must be at least 1", ErrInvalidBounds, s)
		}
	} else if s.Low != math.Trunc(s.Low) || s.High != math.Trunc(s.High) {
		return fmt.Errorf("%w: %s: integer kinds need whole bounds", ErrInvalidBounds, s)
	}

	switch s.Kind {
	case KindIntDivision:
		if s.High < 10 {
			return fmt.Errorf("%w: %s: high must be at least 10", ErrInvalidBounds, s)
		}
	case KindDecDivision:
		if s.Low <= 0 || floorDivFloat(s.High, 10) <= s.Low {
			return fmt.Errorf("%w: %s: need 0 < low < high/10", ErrInvalidBounds, s)
		}
	}
	return nil
}

// Build validates the spec and returns its generator
func (s Spec) Build(r *rand.Rand) (Generator, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	switch s.Kind {
	case KindIntMultiplication:
		return IntMultiplication(r, int(s.Low), int(s.High)), nil
	case KindDecMultiplication:
		return DecMultiplication(r, s.Low, s.High, s.Precision), nil
	case KindIntDivision:
		return IntDivision(r, int(s.Low), int(s.High)), nil
	default:
		return DecDivision(r, s.Low, s.High, s.Precision), nil
	}
}

// DefaultMix is the worksheet's standard problem mix
func DefaultMix() []Spec {
	return []Spec{
		{Kind: KindIntMultiplication, Low: 1, High: 1000},
		{Kind: KindDecMultiplication, Low: 1, High: 100, Precision: 1},
		{Kind: KindDecMultiplication, Low: 1, High: 10, Precision: 2},
		{Kind: KindIntDivision, Low: 1, High: 1000},
		{Kind: KindDecDivision, Low: 1, High: 1000, Precision: 1},
	}
}

// BuildMix builds every spec and combines them with Random
func BuildMix(r *rand.Rand, specs []Spec) (Generator, error) {
	if len(specs) == 0 {
		return nil, errors.New("empty problem mix")
	}
	gens := make([]Generator, 0, len(specs))
	for i, s := range specs {
		g, err := s.Build(r)
		if err != nil {
			return nil, fmt.Errorf("mix entry %d: %w", i+1, err)
		}
		gens = append(gens, g)
	}
	return Random(r, gens...), nil
}

// LoadMix reads a YAML list of specs:
//
//	- kind: int-mul
//	  low: 1
//	  high: 1000
//	- kind: dec-div
//	  low: 1
//	  high: 1000
//	  precision: 1
func LoadMix(r io.Reader) ([]Spec, error) {
	var specs []Spec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&specs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty problem mix")
		}
		return nil, fmt.Errorf("parsing problem mix: %w", err)
	}
	for i, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("mix entry %d: %w", i+1, err)
		}
	}
	return specs, nil
}
