// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu implements the reference array backend on top of gonum BLAS.
//
// Float32 and Float64 arrays go through blas32/blas64 (scal, axpy, gemm,
// gemv); every other data type uses generic element loops. In-place
// primitives (Scale, Increment, Add, Multiply, Reciprocal, Assign) write into
// their last array argument and return it.
package cpu

import (
	"github.com/born-ml/tensorcout/internal/ndarray"
	"github.com/born-ml/tensorcout/internal/parallel"
	"k8s.io/klog/v2"
)

// CPUBackend implements array primitives on CPU.
type CPUBackend struct {
	parallel parallel.Config
}

// Option configures a CPUBackend.
type Option func(*CPUBackend)

// WithParallel overrides the worker configuration used by element loops.
func WithParallel(cfg parallel.Config) Option {
	return func(cpu *CPUBackend) {
		cpu.parallel = cfg
	}
}

// New creates a new CPU backend.
func New(opts ...Option) *CPUBackend {
	cpu := &CPUBackend{
		parallel: parallel.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(cpu)
	}
	klog.V(1).Infof("cpu backend: %d worker(s), parallel=%v", cpu.parallel.NumWorkers, cpu.parallel.Enabled)
	return cpu
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Array builds an array from a Go value (see ndarray.FromValue). An existing
// *ndarray.Array is returned as is, or cast into a new array when dtype asks
// for a different data type.
func (cpu *CPUBackend) Array(value any, dtype ndarray.DataType) (*ndarray.Array, error) {
	if a, ok := value.(*ndarray.Array); ok {
		if dtype == ndarray.Auto || dtype == a.DType() {
			return a, nil
		}
		return cpu.Cast(a, dtype)
	}
	return ndarray.FromValue(value, dtype)
}

// Copy returns a deep copy of x.
func (cpu *CPUBackend) Copy(x *ndarray.Array) *ndarray.Array {
	return x.Copy()
}
