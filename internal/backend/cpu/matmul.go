// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/born-ml/tensorcout/internal/ndarray"
	"github.com/born-ml/tensorcout/internal/parallel"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

// MatMul performs matrix multiplication.
// For 2D arrays: (M, K) @ (K, N) -> (M, N).
// A 1D left operand is a row vector and a 1D right operand a column vector;
// the corresponding axis is dropped from the result.
// b is cast to a's data type when they differ.
func (cpu *CPUBackend) MatMul(a, b *ndarray.Array) (*ndarray.Array, error) {
	if a.NDim() == 0 || a.NDim() > 2 || b.NDim() == 0 || b.NDim() > 2 {
		return nil, ndarray.ShapeErrorf("matmul: only 1D and 2D arrays supported, got %dD and %dD", a.NDim(), b.NDim())
	}
	b, err := cpu.sameDType("matmul", a, b)
	if err != nil {
		return nil, err
	}

	m, k := 1, a.Shape()[0]
	if a.NDim() == 2 {
		m, k = a.Shape()[0], a.Shape()[1]
	}
	kAlt, n := b.Shape()[0], 1
	if b.NDim() == 2 {
		n = b.Shape()[1]
	}
	if k != kAlt {
		return nil, ndarray.ShapeErrorf("matmul: shape mismatch %v @ %v", a.Shape(), b.Shape())
	}

	var outShape ndarray.Shape
	if a.NDim() == 2 {
		outShape = append(outShape, m)
	}
	if b.NDim() == 2 {
		outShape = append(outShape, n)
	}
	result, err := ndarray.New(outShape, a.DType())
	if err != nil {
		return nil, err
	}
	if m == 0 || n == 0 || k == 0 {
		return result, nil
	}

	switch a.DType() {
	case ndarray.Float64:
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
			general64(ndarray.Data[float64](a), m, k),
			general64(ndarray.Data[float64](b), k, n),
			0, general64(ndarray.Data[float64](result), m, n))
	case ndarray.Float32:
		blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
			general32(ndarray.Data[float32](a), m, k),
			general32(ndarray.Data[float32](b), k, n),
			0, general32(ndarray.Data[float32](result), m, n))
	case ndarray.Bool:
		return nil, ndarray.DTypeErrorf("matmul: unsupported dtype %s", a.DType())
	default:
		cpu.matmulGeneric(result, a, b, m, k, n)
	}
	return result, nil
}

// MatrixVector computes a @ x for a 2D matrix a (M, K) and a 1D vector x (K),
// returning a vector of length M.
func (cpu *CPUBackend) MatrixVector(a, x *ndarray.Array) (*ndarray.Array, error) {
	if a.NDim() != 2 || x.NDim() != 1 {
		return nil, ndarray.ShapeErrorf("matrix-vector: need a 2D matrix and a 1D vector, got %dD and %dD", a.NDim(), x.NDim())
	}
	m, k := a.Shape()[0], a.Shape()[1]
	if x.Shape()[0] != k {
		return nil, ndarray.ShapeErrorf("matrix-vector: shape mismatch %v @ %v", a.Shape(), x.Shape())
	}
	x, err := cpu.sameDType("matrix-vector", a, x)
	if err != nil {
		return nil, err
	}

	result, err := ndarray.New(ndarray.Shape{m}, a.DType())
	if err != nil {
		return nil, err
	}
	if m == 0 || k == 0 {
		return result, nil
	}

	switch a.DType() {
	case ndarray.Float64:
		blas64.Gemv(blas.NoTrans, 1, general64(ndarray.Data[float64](a), m, k),
			vec64(ndarray.Data[float64](x)), 0, vec64(ndarray.Data[float64](result)))
	case ndarray.Float32:
		blas32.Gemv(blas.NoTrans, 1, general32(ndarray.Data[float32](a), m, k),
			vec32(ndarray.Data[float32](x)), 0, vec32(ndarray.Data[float32](result)))
	case ndarray.Bool:
		return nil, ndarray.DTypeErrorf("matrix-vector: unsupported dtype %s", a.DType())
	default:
		cpu.matmulGeneric(result, a, x, m, k, 1)
	}
	return result, nil
}

// sameDType casts b to a's data type when they differ.
func (cpu *CPUBackend) sameDType(op string, a, b *ndarray.Array) (*ndarray.Array, error) {
	if a.DType() == b.DType() {
		return b, nil
	}
	cast, err := cpu.Cast(b, a.DType())
	if err != nil {
		return nil, ndarray.DTypeErrorf("%s: cannot cast %s to %s", op, b.DType(), a.DType())
	}
	return cast, nil
}

// matmulGeneric is the naive row-parallel product for non-BLAS data types.
// C[i,j] = sum_k A[i,k] * B[k,j]
func (cpu *CPUBackend) matmulGeneric(c, a, b *ndarray.Array, m, k, n int) {
	integer := a.DType().IsInteger()
	parallel.Rows(m, func(i int) {
		for j := 0; j < n; j++ {
			if integer {
				var sum int64
				for kIdx := 0; kIdx < k; kIdx++ {
					sum += a.IntAt(i*k+kIdx) * b.IntAt(kIdx*n+j)
				}
				c.SetIntAt(i*n+j, sum)
				continue
			}
			var sum float64
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a.At(i*k+kIdx) * b.At(kIdx*n+j)
			}
			c.SetAt(i*n+j, sum)
		}
	}, cpu.parallel)
}

func general64(d []float64, rows, cols int) blas64.General {
	return blas64.General{Rows: rows, Cols: cols, Data: d, Stride: cols}
}

func general32(d []float32, rows, cols int) blas32.General {
	return blas32.General{Rows: rows, Cols: cols, Data: d, Stride: cols}
}
