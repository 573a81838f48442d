// SPDX-License-Identifier: MIT

// Package matrix - UniformScaling: the dimension-free λ·I operator.
//
// Purpose:
//   - Represent shifts like A + λI without materializing an identity of
//     any particular order. UniformScaling is deliberately NOT a Matrix:
//     it has no dimensions until combined with one.

package matrix

import "fmt"

// UniformScaling represents λ·I for every order at once.
type UniformScaling struct {
	// Value is the scalar λ on the implicit diagonal.
	Value float64
}

// Eye returns the uniform scaling with the given diagonal value.
func Eye(v float64) UniformScaling { return UniformScaling{Value: v} }

// At returns λ on the diagonal and 0 elsewhere. Indices are not bounded;
// the operator covers every order.
func (s UniformScaling) At(i, j int) float64 {
	if i == j {
		return s.Value
	}

	return 0
}

// Scale returns the uniform scaling c·s.
func (s UniformScaling) Scale(c float64) UniformScaling {
	return UniformScaling{Value: c * s.Value}
}

// AddUniform returns a + s·I as a fresh matrix, preserving the structured
// type of a where the result still fits it (every variant in this package
// stores its diagonal, so the type is always preserved).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func AddUniform(a Matrix, s UniformScaling) (Matrix, error) {
	const tag = "AddUniform"
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := a.Clone()
	n := out.Rows()
	for i := 0; i < n; i++ {
		x, err := out.At(i, i)
		if err != nil {
			return nil, matrixErrorf(tag, err)
		}
		if err = out.Set(i, i, x+s.Value); err != nil {
			return nil, matrixErrorf(tag, err)
		}
	}

	return out, nil
}

// SubUniform returns a - s·I as a fresh matrix.
func SubUniform(a Matrix, s UniformScaling) (Matrix, error) {
	out, err := AddUniform(a, UniformScaling{Value: -s.Value})
	if err != nil {
		return nil, fmt.Errorf("SubUniform: %w", err)
	}

	return out, nil
}
