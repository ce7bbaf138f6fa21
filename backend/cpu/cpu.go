// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/tensorcout/internal/backend/cpu"
	"github.com/born-ml/tensorcout/internal/parallel"
	"github.com/born-ml/tensorcout/tensor"
)

// Backend represents the CPU backend implementation.
//
// Float32 and Float64 arrays run through gonum BLAS; other data types use
// generic element loops.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// Option configures a Backend.
type Option = internalcpu.Option

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/tensorcout/backend/cpu"
//	    "github.com/born-ml/tensorcout/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := tensor.New(backend, [][]float32{{1, 2}, {3, 4}})
//	}
func New(opts ...Option) *Backend {
	return internalcpu.New(opts...)
}

// WithWorkers bounds the number of goroutines used by large element loops.
// n <= 1 runs every loop on the calling goroutine.
func WithWorkers(n int) Option {
	cfg := parallel.DefaultConfig()
	cfg.NumWorkers = n
	cfg.Enabled = n > 1
	return internalcpu.WithParallel(cfg)
}
