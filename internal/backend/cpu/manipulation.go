// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/born-ml/tensorcout/internal/ndarray"
)

// Transpose returns a new array with all dimensions reversed.
// For 2D arrays this is the matrix transpose; 0D and 1D arrays are copied as is.
func (cpu *CPUBackend) Transpose(x *ndarray.Array) (*ndarray.Array, error) {
	shape := x.Shape()
	ndim := len(shape)

	// Default: reverse all dimensions
	axes := make([]int, ndim)
	for i := range axes {
		axes[i] = ndim - 1 - i
	}

	newShape := make(ndarray.Shape, ndim)
	for i, ax := range axes {
		newShape[i] = shape[ax]
	}

	result, err := ndarray.New(newShape, x.DType())
	if err != nil {
		return nil, err
	}
	transposeData(result, x, axes)
	return result, nil
}

// transposeData moves every element of src to its permuted position in
// result, copying raw bytes so that all data types share one loop.
func transposeData(result, src *ndarray.Array, axes []int) {
	elemSize := src.DType().Size()
	srcBytes, dstBytes := src.Bytes(), result.Bytes()
	srcShape := src.Shape()
	srcStrides := src.Strides()
	dstStrides := result.Strides()

	ndim := len(srcShape)
	idx := make([]int, ndim)
	for i := 0; i < src.Size(); i++ {
		// Unravel i into a multi-index over the source shape.
		rem := i
		for d := 0; d < ndim; d++ {
			idx[d] = rem / srcStrides[d]
			rem %= srcStrides[d]
		}

		dst := 0
		for d, ax := range axes {
			dst += idx[ax] * dstStrides[d]
		}
		copy(dstBytes[dst*elemSize:(dst+1)*elemSize], srcBytes[i*elemSize:(i+1)*elemSize])
	}
}

// Squeeze removes a dimension of size 1. Negative axis counts from the end.
// This is a view operation (reshape).
func (cpu *CPUBackend) Squeeze(x *ndarray.Array, axis int) (*ndarray.Array, error) {
	shape := x.Shape()
	ndim := len(shape)

	// Normalize negative dimension
	if axis < 0 {
		axis += ndim
	}
	if axis < 0 || axis >= ndim {
		return nil, ndarray.IndexErrorf("squeeze: dimension %d out of range for %dD array", axis, ndim)
	}
	if shape[axis] != 1 {
		return nil, ndarray.ShapeErrorf("squeeze: dimension %d has size %d, must be 1", axis, shape[axis])
	}

	newShape := make(ndarray.Shape, 0, ndim-1)
	for i := 0; i < ndim; i++ {
		if i != axis {
			newShape = append(newShape, shape[i])
		}
	}
	return x.Reshape(newShape)
}

// Slice returns rows [start, end) of the leading axis as a view of x.
func (cpu *CPUBackend) Slice(x *ndarray.Array, start, end int) (*ndarray.Array, error) {
	return x.Slice(start, end)
}

// Index returns row i of the leading axis as a view of x, dropping that axis.
func (cpu *CPUBackend) Index(x *ndarray.Array, i int) (*ndarray.Array, error) {
	return x.Index(i)
}
