// Package random generates slices of integers used to seed lists.
package random

import "math/rand/v2"

// Generator produces random integer slices from its own source.
type Generator struct {
	rand *rand.Rand
}

// NewGenerator returns a Generator whose output is fully determined by seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rand: rand.New(rand.NewPCG(seed, seed))}
}

// Unique returns the integers from 0 to n-1 in a random order.
func (g *Generator) Unique(n int) []int {
	if n <= 0 {
		return []int{}
	}
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	g.Shuffle(values)
	return values
}

// Array returns n integers drawn uniformly from the closed range [min, max].
// The bounds are swapped if min is greater than max.
func (g *Generator) Array(n, min, max int) []int {
	if n <= 0 {
		return []int{}
	}
	if min > max {
		min, max = max, min
	}
	span := uint64(max-min) + 1
	values := make([]int, n)
	for i := range values {
		if span == 0 { // the range covers every int
			values[i] = int(g.rand.Uint64())
		} else {
			values[i] = min + int(g.rand.Uint64N(span))
		}
	}
	return values
}

// Shuffle randomizes the order of values in place.
func (g *Generator) Shuffle(values []int) {
	for i := len(values) - 1; i > 0; i-- {
		j := g.rand.IntN(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}

var global = &Generator{rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}

// Unique is like Generator.Unique but uses a randomly seeded generator.
func Unique(n int) []int { return global.Unique(n) }

// Array is like Generator.Array but uses a randomly seeded generator.
func Array(n, min, max int) []int { return global.Array(n, min, max) }

// Shuffle is like Generator.Shuffle but uses a randomly seeded generator.
func Shuffle(values []int) { global.Shuffle(values) }
