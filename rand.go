package main

import (
	"math/rand/v2"
)

// Rand is the only source of randomness the World is allowed to use. It is a
// value type: copying a Rand copies its state, so a copy produces exactly the
// same numbers as the original from that point on. This is what makes a World
// reproducible from a seed and a list of inputs.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	return
}

// RInt returns a random number in the interval [min, max], both ends included.
func (r *Rand) RInt(min int64, max int64) int64 {
	if min > max {
		panic("RInt: min is greater than max")
	}
	n := uint64(max-min) + 1
	return min + int64(r.pcg.Uint64()%n)
}

// RSign returns either v or -v, with equal probability.
func (r *Rand) RSign(v int64) int64 {
	if r.RInt(0, 1) == 0 {
		return v
	}
	return -v
}
