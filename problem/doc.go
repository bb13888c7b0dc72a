// Package problem generates random arithmetic practice problems.
//
// A [Generator] is a zero-argument function returning a fresh [Problem] on
// every call. Factories build generators for integer and decimal
// multiplication and division; [Random] combines several generators into one
// that picks uniformly among them on each call.
//
//	r := rand.New(rand.NewSource(seed))
//	gen := problem.Random(r,
//	    problem.IntMultiplication(r, 1, 1000),
//	    problem.DecDivision(r, 1, 1000, 1),
//	)
//	p := gen() // e.g. Prompt `312 \times 48 =`, Answer "14976"
//
// All randomness flows from the *rand.Rand handed to the factories, so a sheet
// can be reproduced from its seed.
//
// # Bounds
//
// Bounds are half-open, [low, high). The factories do not check them; bounds
// with high <= low, or a division range whose divisor can be zero, are a
// precondition violation. [Spec.Validate] checks the bounds of a named
// problem kind before building it.
package problem
