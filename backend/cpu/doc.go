// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements tensor.Backend with:
//   - gonum BLAS for Float32 and Float64 (scal, axpy, gemm, gemv)
//   - Generic loops for integer, Float16 and Bool arrays
//   - NumPy-compatible broadcasting of the left operand
//   - Zero-copy views for indexing and slicing
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
//	    a, _ := tensor.New(backend, [][]float32{{1, 2}, {3, 4}})
//	    b, _ := a.Pow(a)
//	    fmt.Println(b) // [[7,10],[15,22]]
//	}
//
// # Performance
//
// Element loops larger than a few thousand items are split across a bounded
// set of goroutines (see WithWorkers); every call still returns only after
// all of its work is done.
package cpu
