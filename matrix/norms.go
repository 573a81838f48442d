// SPDX-License-Identifier: MIT

// Package matrix - vector and matrix norms, dot and cross products.
//
// Purpose:
//   - One deterministic kernel per norm with overflow-safe accumulation
//     for the Euclidean case.
//   - Matrix 1-, Inf-, Frobenius- and Max-norms are computed here; the
//     spectral 2-norm needs singular values and lives with factor.SVD.

package matrix

import "math"

// NormOrder selects a matrix norm for Norm.
type NormOrder int

const (
	// NormOne is the maximum absolute column sum.
	NormOne NormOrder = iota
	// NormInf is the maximum absolute row sum.
	NormInf
	// NormFrobenius is the square root of the sum of squared entries.
	NormFrobenius
	// NormMax is the largest absolute entry (not submultiplicative).
	NormMax
)

// VecNorm returns the p-norm of x for p >= 1, with p == math.Inf(1)
// yielding the max norm. The Euclidean case uses scaled accumulation to
// avoid overflow on large magnitudes.
//
// Errors: ErrNilMatrix on a nil slice, ErrBadNorm for p < 1 or NaN.
// Complexity: O(n).
func VecNorm(x []float64, p float64) (float64, error) {
	if x == nil {
		return 0, matrixErrorf(opNorm, ErrNilMatrix)
	}
	if math.IsNaN(p) || p < 1 {
		return 0, matrixErrorf(opNorm, ErrBadNorm)
	}

	switch {
	case math.IsInf(p, 1):
		var max float64
		for _, v := range x {
			if a := math.Abs(v); a > max {
				max = a
			}
		}

		return max, nil
	case p == 1:
		var sum float64
		for _, v := range x {
			sum += math.Abs(v)
		}

		return sum, nil
	case p == 2:
		// Scaled sum of squares: sqrt(scale² · ssq) never overflows for
		// representable inputs.
		var scale, ssq float64
		ssq = 1
		for _, v := range x {
			if v == 0 {
				continue
			}
			a := math.Abs(v)
			if scale < a {
				r := scale / a
				ssq = 1 + ssq*r*r
				scale = a
			} else {
				r := a / scale
				ssq += r * r
			}
		}

		return scale * math.Sqrt(ssq), nil
	default:
		var sum float64
		for _, v := range x {
			sum += math.Pow(math.Abs(v), p)
		}

		return math.Pow(sum, 1/p), nil
	}
}

// VecNorm2 returns the Euclidean norm of x, the default when no order is
// asked for. Shorthand for VecNorm(x, 2).
func VecNorm2(x []float64) (float64, error) {
	return VecNorm(x, 2)
}

// Dot returns the inner product of x and y.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(n).
func Dot(x, y []float64) (float64, error) {
	if x == nil || y == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	if len(x) != len(y) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}
	var sum float64
	for i, v := range x {
		sum += v * y[i]
	}

	return sum, nil
}

// Cross returns the 3-dimensional cross product x × y.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch unless both have length 3.
// Complexity: O(1).
func Cross(x, y []float64) ([]float64, error) {
	if x == nil || y == nil {
		return nil, matrixErrorf(opCross, ErrNilMatrix)
	}
	if len(x) != 3 || len(y) != 3 {
		return nil, matrixErrorf(opCross, ErrDimensionMismatch)
	}

	return []float64{
		x[1]*y[2] - x[2]*y[1],
		x[2]*y[0] - x[0]*y[2],
		x[0]*y[1] - x[1]*y[0],
	}, nil
}

// Norm returns the requested matrix norm of a.
//
// Errors: ErrNilMatrix, ErrBadNorm on an unknown order.
// Complexity: O(r*c) for every order.
func Norm(a Matrix, order NormOrder) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	rows, cols := a.Rows(), a.Cols()

	var v float64
	switch order {
	case NormOne:
		var max float64
		for j := 0; j < cols; j++ {
			var sum float64
			for i := 0; i < rows; i++ {
				v, _ = a.At(i, j)
				sum += math.Abs(v)
			}
			if sum > max {
				max = sum
			}
		}

		return max, nil
	case NormInf:
		var max float64
		for i := 0; i < rows; i++ {
			var sum float64
			for j := 0; j < cols; j++ {
				v, _ = a.At(i, j)
				sum += math.Abs(v)
			}
			if sum > max {
				max = sum
			}
		}

		return max, nil
	case NormFrobenius:
		var scale, ssq float64
		ssq = 1
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				v, _ = a.At(i, j)
				if v == 0 {
					continue
				}
				av := math.Abs(v)
				if scale < av {
					r := scale / av
					ssq = 1 + ssq*r*r
					scale = av
				} else {
					r := av / scale
					ssq += r * r
				}
			}
		}

		return scale * math.Sqrt(ssq), nil
	case NormMax:
		var max float64
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				v, _ = a.At(i, j)
				if av := math.Abs(v); av > max {
					max = av
				}
			}
		}

		return max, nil
	default:
		return 0, matrixErrorf(opNorm, ErrBadNorm)
	}
}
