// SPDX-License-Identifier: MIT

// Package matrix - universal algebra kernels on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, scalar
// scaling and matrix-vector products. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Keep one deterministic implementation per kernel: a flat fast path
//     when both operands are *Dense, an At/Set fallback otherwise.
//   - Inputs are never mutated; every kernel allocates its result.

package matrix

// Operation name constants for unified error wrapping and reducing magic
// strings.
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opMul    = "Mul"
	opScale  = "Scale"
	opMatVec = "MatVec"
	opTrace  = "Trace"
	opDet    = "Det"
	opDot    = "Dot"
	opCross  = "Cross"
	opNorm   = "Norm"
)

// addSub computes elementwise out = a + sign*b for sign in {+1, -1}.
// Internal helper for Add/Sub sharing validation, allocation and the
// fast path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate Dense(rows, cols).
//   - Stage 2: fast path if both are *Dense (single flat loop 0..n-1),
//     otherwise At/Set fallback with fixed i→j order.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface access with fixed i→j order.
	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add returns a + b as a fresh Dense.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a - b as a fresh Dense.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the product a*b as a fresh Dense.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate Dense(aRows, bCols).
//   - Stage 2: fast path on flat buffers in i→k→j order (row-major
//     friendly), fallback on At in i→j→k order.
//
// Complexity: Time O(m*k*n), Space O(m*n).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(m, n)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < m; i++ {
				for p := 0; p < k; p++ {
					aip := da.data[i*k+p]
					if aip == 0 {
						continue
					}
					for j := 0; j < n; j++ {
						res.data[i*n+j] += aip * db.data[p*n+j]
					}
				}
			}

			return res, nil
		}
	}

	var av, bv, sum float64
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum = 0
			for p := 0; p < k; p++ {
				av, _ = a.At(i, p)
				bv, _ = b.At(p, j)
				sum += av * bv
			}
			res.data[i*n+j] = sum
		}
	}

	return res, nil
}

// Scale returns c*a as a fresh Dense.
//
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(c float64, a Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if da, ok := a.(*Dense); ok {
		for idx := range res.data {
			res.data[idx] = c * da.data[idx]
		}

		return res, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ = a.At(i, j)
			res.data[i*cols+j] = c * v
		}
	}

	return res, nil
}

// MatVec returns the product a*x as a fresh slice of length a.Rows().
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != a.Cols()).
// Complexity: O(r*c).
func MatVec(a Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, a.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := a.Rows(), a.Cols()
	out := make([]float64, rows)

	if da, ok := a.(*Dense); ok {
		for i := 0; i < rows; i++ {
			var sum float64
			row := da.data[i*cols : (i+1)*cols]
			for j, v := range row {
				sum += v * x[j]
			}
			out[i] = sum
		}

		return out, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		var sum float64
		for j := 0; j < cols; j++ {
			v, _ = a.At(i, j)
			sum += v * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// ToDense materializes any Matrix into a fresh Dense, preserving every
// mathematical element (implicit zeros and unit diagonals included).
//
// Complexity: O(r*c).
func ToDense(a Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	if da, ok := a.(*Dense); ok {
		clone, _ := da.Clone().(*Dense)

		return clone, nil
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols, WithNaNInfValidation(false))
	if err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ = a.At(i, j)
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}
