// SPDX-License-Identifier: MIT

package matrix

import "math"

// MatVec returns m·x.
// Errors: ErrDimensionMismatch when len(x) != m.Cols().
// Complexity: O(r*c).
func (m *Dense) MatVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, matrixErrorf("MatVec", ErrDimensionMismatch)
	}

	var (
		out  = make([]float64, m.r)
		i, j int
		sum  float64
		base int
	)
	for i = 0; i < m.r; i++ {
		sum = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			sum += m.data[base+j] * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// AddOuter performs the rank-one update m += alpha·x·yᵀ in place.
// Errors: ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Dense) AddOuter(alpha float64, x, y []float64) error {
	if len(x) != m.r || len(y) != m.c {
		return matrixErrorf("AddOuter", ErrDimensionMismatch)
	}

	var (
		i, j int
		ax   float64
		base int
	)
	for i = 0; i < m.r; i++ {
		ax = alpha * x[i]
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] += ax * y[j]
		}
	}

	return nil
}

// AddDiagonal adds v to every diagonal element in place.
// Errors: ErrNonSquare.
func (m *Dense) AddDiagonal(v float64) error {
	if m.r != m.c {
		return matrixErrorf("AddDiagonal", ErrNonSquare)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+i] += v
	}

	return nil
}

// LU is a factorization P·A = L·U with partial pivoting. L (unit lower) and
// U share one packed n×n buffer; perm[i] is the original row now at row i.
type LU struct {
	n    int
	lu   []float64
	perm []int
}

// Factorize computes the LU factorization of a square matrix with partial
// (row) pivoting. The input is not modified.
//
// Stage 1 (Validate): a must be square.
// Stage 2 (Eliminate): for each column pick the row with the largest |pivot|,
// swap it up, then eliminate below.
// Stage 3 (Finalize): a pivot with |p| ≤ SingularTol·max|a| reports ErrSingular.
//
// Complexity: O(n³) time, O(n²) memory.
func Factorize(a *Dense) (*LU, error) {
	if a.r != a.c {
		return nil, matrixErrorf("LU", ErrNonSquare)
	}

	var (
		n     = a.r
		lu    = make([]float64, n*n)
		perm  = make([]int, n)
		scale float64
	)
	copy(lu, a.data)
	for i := range perm {
		perm[i] = i
	}
	for _, v := range lu {
		scale = math.Max(scale, math.Abs(v))
	}
	tol := SingularTol * scale

	var (
		i, j, k, p int
		best, f    float64
	)
	for k = 0; k < n; k++ {
		// pivot search; ties keep the lowest row
		p, best = k, math.Abs(lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(lu[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= tol || math.IsNaN(best) {
			return nil, matrixErrorf("LU", ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				lu[k*n+j], lu[p*n+j] = lu[p*n+j], lu[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}
		for i = k + 1; i < n; i++ {
			f = lu[i*n+k] / lu[k*n+k]
			lu[i*n+k] = f
			for j = k + 1; j < n; j++ {
				lu[i*n+j] -= f * lu[k*n+j]
			}
		}
	}

	return &LU{n: n, lu: lu, perm: perm}, nil
}

// SingularTol is the relative pivot threshold used by Factorize.
const SingularTol = 1e-14

// Solve returns x with A·x = b for the factorized A.
// Errors: ErrDimensionMismatch.
// Complexity: O(n²).
func (f *LU) Solve(b []float64) ([]float64, error) {
	if len(b) != f.n {
		return nil, matrixErrorf("LU.Solve", ErrDimensionMismatch)
	}

	var (
		n   = f.n
		x   = make([]float64, n)
		i   int
		j   int
		sum float64
	)
	// forward substitution on the permuted rhs, L has a unit diagonal
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for j = 0; j < i; j++ {
			sum -= f.lu[i*n+j] * x[j]
		}
		x[i] = sum
	}
	// back substitution
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= f.lu[i*n+j] * x[j]
		}
		x[i] = sum / f.lu[i*n+i]
	}

	return x, nil
}

// Det returns the determinant of the factorized matrix.
func (f *LU) Det() float64 {
	det := 1.0
	for i := 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}
	// parity of the permutation
	seen := make([]bool, f.n)
	for i := 0; i < f.n; i++ {
		if seen[i] {
			continue
		}
		length := 0
		for j := i; !seen[j]; j = f.perm[j] {
			seen[j] = true
			length++
		}
		if length%2 == 0 {
			det = -det
		}
	}

	return det
}

// Solve solves a·x = b in one call.
// Errors: ErrNonSquare, ErrSingular, ErrDimensionMismatch.
func Solve(a *Dense, b []float64) ([]float64, error) {
	f, err := Factorize(a)
	if err != nil {
		return nil, err
	}

	return f.Solve(b)
}
