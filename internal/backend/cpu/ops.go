// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"math"

	"github.com/born-ml/tensorcout/internal/ndarray"
	"github.com/born-ml/tensorcout/internal/parallel"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"k8s.io/klog/v2"
)

type number interface {
	constraints.Integer | constraints.Float
}

func vec64(d []float64) blas64.Vector {
	return blas64.Vector{N: len(d), Data: d, Inc: 1}
}

func vec32(d []float32) blas32.Vector {
	return blas32.Vector{N: len(d), Data: d, Inc: 1}
}

// Scale multiplies every element of x by alpha, in place.
func (cpu *CPUBackend) Scale(alpha float64, x *ndarray.Array) (*ndarray.Array, error) {
	switch x.DType() {
	case ndarray.Float64:
		d := ndarray.Data[float64](x)
		parallel.For(len(d), func(s, e int) { blas64.Scal(alpha, vec64(d[s:e])) }, cpu.parallel)
	case ndarray.Float32:
		d := ndarray.Data[float32](x)
		parallel.For(len(d), func(s, e int) { blas32.Scal(float32(alpha), vec32(d[s:e])) }, cpu.parallel)
	default:
		if err := cpu.mapElements("scale", x, func(v float64) float64 { return v * alpha }); err != nil {
			return nil, err
		}
	}
	return x, nil
}

// Increment adds beta to every element of x, in place.
func (cpu *CPUBackend) Increment(x *ndarray.Array, beta float64) (*ndarray.Array, error) {
	switch x.DType() {
	case ndarray.Float64:
		d := ndarray.Data[float64](x)
		parallel.For(len(d), func(s, e int) { floats.AddConst(beta, d[s:e]) }, cpu.parallel)
	default:
		if err := cpu.mapElements("increment", x, func(v float64) float64 { return v + beta }); err != nil {
			return nil, err
		}
	}
	return x, nil
}

// Reciprocal replaces every element v of x by 1/v, in place.
// Only floating point arrays are supported.
func (cpu *CPUBackend) Reciprocal(x *ndarray.Array) (*ndarray.Array, error) {
	if !x.DType().IsFloat() {
		return nil, ndarray.DTypeErrorf("reciprocal: %s array, need a floating point type", x.DType())
	}
	if err := cpu.mapElements("reciprocal", x, func(v float64) float64 { return 1 / v }); err != nil {
		return nil, err
	}
	return x, nil
}

// Add computes y = alpha*x + y in place. x is broadcast onto y's shape.
func (cpu *CPUBackend) Add(x, y *ndarray.Array, alpha float64) (*ndarray.Array, error) {
	if err := checkBinary("add", x, y); err != nil {
		return nil, err
	}

	blocks, ok := blockCount(x, y)
	switch {
	case ok && x.DType() == ndarray.Float64 && y.DType() == ndarray.Float64:
		xd, yd := ndarray.Data[float64](x), ndarray.Data[float64](y)
		n := len(xd)
		parallel.Rows(blocks, func(b int) { blas64.Axpy(alpha, vec64(xd), vec64(yd[b*n:(b+1)*n])) }, cpu.parallel)
	case ok && x.DType() == ndarray.Float32 && y.DType() == ndarray.Float32:
		xd, yd := ndarray.Data[float32](x), ndarray.Data[float32](y)
		n := len(xd)
		parallel.Rows(blocks, func(b int) { blas32.Axpy(float32(alpha), vec32(xd), vec32(yd[b*n:(b+1)*n])) }, cpu.parallel)
	default:
		cpu.broadcastInto("add", x, y, func(xv, yv float64) float64 { return alpha*xv + yv })
	}
	return y, nil
}

// Multiply computes y = x * y element-wise in place. x is broadcast onto y's shape.
func (cpu *CPUBackend) Multiply(x, y *ndarray.Array) (*ndarray.Array, error) {
	if err := checkBinary("multiply", x, y); err != nil {
		return nil, err
	}

	blocks, ok := blockCount(x, y)
	switch {
	case ok && x.DType() == ndarray.Float64 && y.DType() == ndarray.Float64:
		xd, yd := ndarray.Data[float64](x), ndarray.Data[float64](y)
		n := len(xd)
		parallel.Rows(blocks, func(b int) { floats.Mul(yd[b*n:(b+1)*n], xd) }, cpu.parallel)
	case ok && x.DType() == ndarray.Float32 && y.DType() == ndarray.Float32:
		xd, yd := ndarray.Data[float32](x), ndarray.Data[float32](y)
		n := len(xd)
		parallel.Rows(blocks, func(b int) { mulSlice(yd[b*n:(b+1)*n], xd) }, cpu.parallel)
	default:
		cpu.broadcastInto("multiply", x, y, func(xv, yv float64) float64 { return xv * yv })
	}
	return y, nil
}

// Assign writes value into dst in place. value is a Go number (filled into
// every element) or an *ndarray.Array broadcastable onto dst.
func (cpu *CPUBackend) Assign(dst *ndarray.Array, value any) error {
	if src, ok := value.(*ndarray.Array); ok {
		if !ndarray.BroadcastsTo(src.Shape(), dst.Shape()) {
			return ndarray.ShapeErrorf("assign: cannot broadcast %v onto %v", src.Shape(), dst.Shape())
		}
		if src.DType() == dst.DType() && src.Size() == dst.Size() {
			copy(dst.Bytes(), src.Bytes())
			return nil
		}
		if src.SharesBuffer(dst) {
			src = src.Copy()
		}
		bothInt := src.DType().IsInteger() && dst.DType().IsInteger()
		for i := 0; i < dst.Size(); i++ {
			j := ndarray.BroadcastIndex(i, dst.Shape(), src.Shape())
			if bothInt {
				dst.SetIntAt(i, src.IntAt(j))
			} else {
				dst.SetAt(i, src.At(j))
			}
		}
		return nil
	}

	v, ok := ndarray.ScalarValue(value)
	if !ok {
		return ndarray.ValueErrorf("assign: unsupported value type %T", value)
	}
	if dst.DType() == ndarray.Bool {
		for i := 0; i < dst.Size(); i++ {
			dst.SetAt(i, v)
		}
		return nil
	}
	return cpu.mapElements("assign", dst, func(float64) float64 { return v })
}

// checkBinary validates operands of the in-place binary primitives.
func checkBinary(op string, x, y *ndarray.Array) error {
	if x.DType() == ndarray.Bool || y.DType() == ndarray.Bool {
		return ndarray.DTypeErrorf("%s: arithmetic on bool arrays", op)
	}
	if !ndarray.BroadcastsTo(x.Shape(), y.Shape()) {
		return ndarray.ShapeErrorf("%s: cannot broadcast %v onto %v", op, x.Shape(), y.Shape())
	}
	return nil
}

// blockCount reports how many times x repeats along y when x's shape (without
// leading ones) is a suffix of y's shape, which lets BLAS run per block.
func blockCount(x, y *ndarray.Array) (int, bool) {
	xs := x.Shape()
	for len(xs) > 0 && xs[0] == 1 {
		xs = xs[1:]
	}
	ys := y.Shape()
	if len(xs) > len(ys) || x.Size() == 0 {
		return 0, false
	}
	if !xs.Equal(ys[len(ys)-len(xs):]) {
		return 0, false
	}
	return y.Size() / x.Size(), true
}

// broadcastInto is the generic path: y[i] = f(x[broadcast(i)], y[i]).
func (cpu *CPUBackend) broadcastInto(op string, x, y *ndarray.Array, f func(xv, yv float64) float64) {
	if klog.V(2).Enabled() {
		klog.Infof("%s: generic path for %s%v onto %s%v", op, x.DType(), x.Shape(), y.DType(), y.Shape())
	}
	if x.SharesBuffer(y) {
		x = x.Copy()
	}
	outShape, inShape := y.Shape(), x.Shape()
	parallel.For(y.Size(), func(s, e int) {
		for i := s; i < e; i++ {
			y.SetAt(i, f(x.At(ndarray.BroadcastIndex(i, outShape, inShape)), y.At(i)))
		}
	}, cpu.parallel)
}

// mapElements applies f to every element of x in place, computing in float64.
func (cpu *CPUBackend) mapElements(op string, x *ndarray.Array, f func(float64) float64) error {
	var body func(s, e int)
	switch x.DType() {
	case ndarray.Int8:
		d := ndarray.Data[int8](x)
		body = func(s, e int) { mapSlice(d[s:e], f) }
	case ndarray.Uint8:
		d := ndarray.Data[uint8](x)
		body = func(s, e int) { mapSlice(d[s:e], f) }
	case ndarray.Int16:
		d := ndarray.Data[int16](x)
		body = func(s, e int) { mapSlice(d[s:e], f) }
	case ndarray.Uint16:
		d := ndarray.Data[uint16](x)
		body = func(s, e int) { mapSlice(d[s:e], f) }
	case ndarray.Int32:
		d := ndarray.Data[int32](x)
		body = func(s, e int) { mapSlice(d[s:e], f) }
	case ndarray.Uint32:
		d := ndarray.Data[uint32](x)
		body = func(s, e int) { mapSlice(d[s:e], f) }
	case ndarray.Int64:
		d := ndarray.Data[int64](x)
		body = func(s, e int) { mapSlice(d[s:e], f) }
	case ndarray.Uint64:
		d := ndarray.Data[uint64](x)
		body = func(s, e int) { mapSlice(d[s:e], f) }
	case ndarray.Float32:
		d := ndarray.Data[float32](x)
		body = func(s, e int) { mapSlice(d[s:e], f) }
	case ndarray.Float64:
		d := ndarray.Data[float64](x)
		body = func(s, e int) { mapSlice(d[s:e], f) }
	case ndarray.Float16:
		body = func(s, e int) {
			for i := s; i < e; i++ {
				x.SetAt(i, f(x.At(i)))
			}
		}
	default:
		return ndarray.DTypeErrorf("%s: unsupported dtype %s", op, x.DType())
	}
	parallel.For(x.Size(), body, cpu.parallel)
	return nil
}

// mapSlice applies f to d in place. Integer results are rounded toward zero;
// NaN and infinities become zero for integer types.
func mapSlice[T number](d []T, f func(float64) float64) {
	half := 0.5
	isInt := T(half) == 0
	for i, v := range d {
		r := f(float64(v))
		if isInt && (math.IsNaN(r) || math.IsInf(r, 0)) {
			r = 0
		}
		d[i] = T(r)
	}
}

func mulSlice[T number](dst, s []T) {
	for i := range dst {
		dst[i] *= s[i]
	}
}
