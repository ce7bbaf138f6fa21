// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

// Backend defines the array primitives a Tensor is built on.
// Backends handle the actual computation for tensor operations.
//
// Primitives documented as in place write into their last array argument and
// return it; Tensor always hands them a copy. Index and Slice return views
// sharing memory with their input.
//
// Implementations:
//   - backend/cpu: Pure Go with gonum BLAS
//
// Example:
//
//	import (
//	    "github.com/born-ml/tensorcout/tensor"
//	    "github.com/born-ml/tensorcout/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x, _ := tensor.New(backend, []float32{1, 2})
//	y, _ := x.Add(tensor.Scalar(1)) // Uses backend.Increment under the hood
type Backend interface {
	// Name returns the backend name.
	Name() string

	// Array builds a handle from a Go value: a number, a regular nested slice
	// of numbers, or an existing *Array. Auto picks the backend's default.
	Array(value any, dtype DataType) (*Array, error)

	// Copy returns an independent deep copy.
	Copy(x *Array) *Array

	// Element-wise operations, in place.
	Scale(alpha float64, x *Array) (*Array, error)  // x = alpha*x.
	Increment(x *Array, beta float64) (*Array, error) // x = x + beta.
	Add(x, y *Array, alpha float64) (*Array, error)   // y = alpha*x + y, x broadcast onto y.
	Multiply(x, y *Array) (*Array, error)             // y = x*y, x broadcast onto y.
	Reciprocal(x *Array) (*Array, error)              // x = 1/x.

	// Matrix operations.
	MatMul(a, b *Array) (*Array, error)       // Matrix-matrix product.
	MatrixVector(a, x *Array) (*Array, error) // Matrix-vector product.

	// Shape operations.
	Transpose(x *Array) (*Array, error)             // Reverse all dimensions (new buffer).
	Squeeze(x *Array, axis int) (*Array, error)     // Drop a size-1 axis (view).
	Slice(x *Array, start, end int) (*Array, error) // Rows [start, end) of axis 0 (view).
	Index(x *Array, i int) (*Array, error)          // Row i of axis 0 (view).

	// Assign writes a number or a broadcastable *Array into dst in place.
	Assign(dst *Array, value any) error

	// Render returns the text form of x.
	Render(x *Array, opts RenderOptions) (string, error)
}
