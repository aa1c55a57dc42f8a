// SPDX-License-Identifier: MIT

package optimize

// Backtracking line search parameters.
const (
	armijoC1      = 1e-4
	backtrackRate = 0.5
	maxBacktracks = 60
)

// backtrack searches along d from x for a step satisfying the Armijo
// condition f(x+αd) ≤ f(x) + c₁·α·slope, halving α from alpha0.
// Non-finite trial values are rejected like too-long steps.
//
// On success xNew holds x+αd. ok is false when no trial was accepted.
func backtrack(c *counted, x []float64, fx, slope float64, d []float64, alpha0 float64, xNew []float64) (alpha, fNew float64, ok bool) {
	var (
		i int
		k int
	)
	alpha = alpha0
	for k = 0; k < maxBacktracks; k++ {
		for i = range x {
			xNew[i] = x[i] + alpha*d[i]
		}
		fNew = c.value(xNew)
		if isFinite(fNew) && fNew <= fx+armijoC1*alpha*slope {
			return alpha, fNew, true
		}
		alpha *= backtrackRate
	}

	return 0, fx, false
}
