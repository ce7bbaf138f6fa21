// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor wraps a backend array handle with operator methods.
//
// # Overview
//
// A Tensor owns one array handle from a Backend. This package provides:
//   - Operators that never mutate their operands (Add, Sub, Mul, Div)
//   - Matrix products picked by operand rank (Pow)
//   - Transposition with the T marker (Xor)
//   - Indexing, slicing and in-place assignment (Get, Set)
//   - Iteration over the leading axis (All)
//   - Text rendering (String, fmt.Formatter)
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tensorcout/backend/cpu"
//	    "github.com/born-ml/tensorcout/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a, _ := tensor.New(backend, [][]float32{{1, 2}, {3, 4}})
//	    b, _ := tensor.New(backend, [][]float32{{5, 6}, {7, 8}})
//
//	    c, _ := a.Pow(b)        // Matrix product: [[19,22],[43,50]]
//	    d, _ := a.Xor(tensor.T) // Transpose: [[1,3],[2,4]]
//	    e, _ := a.Add(tensor.Scalar(1))
//
//	    fmt.Println(c, d, e)
//	}
//
// # Operands
//
// The right-hand side of every operator is an Operand: a Scalar, another
// *Tensor or a Marker. Combinations an operator does not define fail with
// ErrUnsupportedOperand; a nil operand fails with ErrUnknownValueType.
//
// # Aliasing
//
// Operators copy the left operand before running any in-place backend
// primitive, so neither operand changes. Get returns views: writing through
// Set on a view, or on the Tensor itself, is the only way to mutate a handle.
// New aliases the handle of a *Tensor or *Array it is given.
package tensor
