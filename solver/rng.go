// SPDX-License-Identifier: MIT

package solver

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// perturb scales every x[i] by 1 + k·sign·eps with an independent fair sign
// per coordinate. Zero values stay zero.
//
// Complexity: O(len(x)).
func perturb(x []float64, k int, eps float64, r *rand.Rand) {
	var sign float64
	for i := range x {
		sign = -1
		if r.Float64() >= 0.5 {
			sign = 1
		}
		x[i] *= 1 + float64(k)*sign*eps
	}
}
