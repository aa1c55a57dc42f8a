// SPDX-License-Identifier: MIT

package solver

// Exported aliases of private helpers for the external test package.
var (
	Perturb     = perturb
	RNGFromSeed = rngFromSeed
)
