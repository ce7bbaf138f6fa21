// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides the array handle that backends operate on: a flat
// typed buffer plus shape, strides, data type and an element offset.
//
// Index and Slice return views that alias the parent's buffer, so writing
// through a view is visible in the parent. Copy always allocates.
package ndarray

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/x448/float16"
)

// Array is a contiguous, row-major N-dimensional array.
type Array struct {
	data   []byte // Shared with views.
	shape  Shape
	stride []int
	dtype  DataType
	offset int // In elements.
}

// New allocates a zero-filled array.
func New(shape Shape, dtype DataType) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if dtype == Auto {
		dtype = Default
	}
	if dtype < Bool || dtype > Float64 {
		return nil, DTypeErrorf("cannot allocate array of %s", dtype)
	}

	return &Array{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// FromSlice wraps a copy of data as an array of the given shape.
func FromSlice[T Element](data []T, shape Shape) (*Array, error) {
	if shape.NumElements() != len(data) {
		return nil, ShapeErrorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	a, err := New(shape, dataTypeOf[T]())
	if err != nil {
		return nil, err
	}
	copy(Data[T](a), data)
	return a, nil
}

// Shape returns the array's dimensions. Callers must not modify it.
func (a *Array) Shape() Shape {
	return a.shape
}

// Strides returns the row-major strides in elements.
func (a *Array) Strides() []int {
	return a.stride
}

// DType returns the element type.
func (a *Array) DType() DataType {
	return a.dtype
}

// NDim returns the rank.
func (a *Array) NDim() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return a.shape.NumElements()
}

// Count returns the size of the leading dimension, or 0 for scalars.
func (a *Array) Count() int {
	if len(a.shape) == 0 {
		return 0
	}
	return a.shape[0]
}

// ByteSize returns the memory used by the array's elements.
func (a *Array) ByteSize() int {
	return a.Size() * a.dtype.Size()
}

// Offset returns the element offset of this array into its buffer.
func (a *Array) Offset() int {
	return a.offset
}

// Bytes returns the raw bytes of the array's elements.
func (a *Array) Bytes() []byte {
	start := a.offset * a.dtype.Size()
	return a.data[start : start+a.ByteSize()]
}

// SharesBuffer reports whether a and other alias the same memory.
func (a *Array) SharesBuffer(other *Array) bool {
	if len(a.data) == 0 || len(other.data) == 0 {
		return false
	}
	return &a.data[0] == &other.data[0]
}

// Data returns a typed zero-copy view of the array's elements.
// It panics if T does not match the array's data type.
func Data[T Element](a *Array) []T {
	if want := dataTypeOf[T](); want != a.dtype {
		panic(fmt.Sprintf("array dtype is %s, not %s", a.dtype, want))
	}
	n := a.Size()
	if n == 0 {
		return nil
	}
	data := a.Bytes()
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by Size()
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), n)
}

// At returns element i (flat, row-major) converted to float64.
func (a *Array) At(i int) float64 {
	switch a.dtype {
	case Bool:
		if Data[bool](a)[i] {
			return 1
		}
		return 0
	case Int8:
		return float64(Data[int8](a)[i])
	case Uint8:
		return float64(Data[uint8](a)[i])
	case Int16:
		return float64(Data[int16](a)[i])
	case Uint16:
		return float64(Data[uint16](a)[i])
	case Int32:
		return float64(Data[int32](a)[i])
	case Uint32:
		return float64(Data[uint32](a)[i])
	case Int64:
		return float64(Data[int64](a)[i])
	case Uint64:
		return float64(Data[uint64](a)[i])
	case Float16:
		return float64(Data[float16.Float16](a)[i].Float32())
	case Float32:
		return float64(Data[float32](a)[i])
	case Float64:
		return Data[float64](a)[i]
	default:
		panic(fmt.Sprintf("At: unsupported dtype %s", a.dtype))
	}
}

// IntAt returns element i of an integer array without going through float64.
func (a *Array) IntAt(i int) int64 {
	switch a.dtype {
	case Int8:
		return int64(Data[int8](a)[i])
	case Uint8:
		return int64(Data[uint8](a)[i])
	case Int16:
		return int64(Data[int16](a)[i])
	case Uint16:
		return int64(Data[uint16](a)[i])
	case Int32:
		return int64(Data[int32](a)[i])
	case Uint32:
		return int64(Data[uint32](a)[i])
	case Int64:
		return Data[int64](a)[i]
	case Uint64:
		return int64(Data[uint64](a)[i]) //nolint:gosec // wraps above MaxInt64 like a C cast
	default:
		return int64(a.At(i))
	}
}

// SetAt stores v into element i, converting to the array's data type.
// Integer types truncate toward zero.
func (a *Array) SetAt(i int, v float64) {
	switch a.dtype {
	case Bool:
		Data[bool](a)[i] = v != 0
	case Int8:
		Data[int8](a)[i] = int8(v)
	case Uint8:
		Data[uint8](a)[i] = uint8(v)
	case Int16:
		Data[int16](a)[i] = int16(v)
	case Uint16:
		Data[uint16](a)[i] = uint16(v)
	case Int32:
		Data[int32](a)[i] = int32(v)
	case Uint32:
		Data[uint32](a)[i] = uint32(v)
	case Int64:
		Data[int64](a)[i] = int64(v)
	case Uint64:
		Data[uint64](a)[i] = uint64(v)
	case Float16:
		Data[float16.Float16](a)[i] = float16.Fromfloat32(float32(v))
	case Float32:
		Data[float32](a)[i] = float32(v)
	case Float64:
		Data[float64](a)[i] = v
	default:
		panic(fmt.Sprintf("SetAt: unsupported dtype %s", a.dtype))
	}
}

// SetIntAt stores v into element i without going through float64 for integer types.
func (a *Array) SetIntAt(i int, v int64) {
	switch a.dtype {
	case Int8:
		Data[int8](a)[i] = int8(v)
	case Uint8:
		Data[uint8](a)[i] = uint8(v)
	case Int16:
		Data[int16](a)[i] = int16(v)
	case Uint16:
		Data[uint16](a)[i] = uint16(v)
	case Int32:
		Data[int32](a)[i] = int32(v)
	case Uint32:
		Data[uint32](a)[i] = uint32(v)
	case Int64:
		Data[int64](a)[i] = v
	case Uint64:
		Data[uint64](a)[i] = uint64(v)
	default:
		a.SetAt(i, float64(v))
	}
}

// Copy returns a deep copy with its own buffer.
func (a *Array) Copy() *Array {
	data := make([]byte, a.ByteSize())
	copy(data, a.Bytes())
	return &Array{
		data:   data,
		shape:  a.shape.Clone(),
		stride: append([]int(nil), a.stride...),
		dtype:  a.dtype,
	}
}

// Reshape returns a view with a new shape over the same elements.
func (a *Array) Reshape(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != a.Size() {
		return nil, ShapeErrorf("reshape: incompatible shapes: %v -> %v (different number of elements)", a.shape, shape)
	}
	return a.view(shape, a.offset), nil
}

// Index returns the sub-array at position i of the leading axis as a view.
// Negative i counts from the end.
func (a *Array) Index(i int) (*Array, error) {
	if len(a.shape) == 0 {
		return nil, IndexErrorf("cannot index a scalar")
	}
	n := a.shape[0]
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, IndexErrorf("index %d out of range for axis 0 of size %d", i, n)
	}
	return a.view(a.shape[1:], a.offset+i*a.stride[0]), nil
}

// Slice returns elements [start, end) of the leading axis as a view.
func (a *Array) Slice(start, end int) (*Array, error) {
	if len(a.shape) == 0 {
		return nil, IndexErrorf("cannot slice a scalar")
	}
	n := a.shape[0]
	if start < 0 || end > n || start > end {
		return nil, IndexErrorf("range [%d,%d) out of range for axis 0 of size %d", start, end, n)
	}
	shape := a.shape.Clone()
	shape[0] = end - start
	return a.view(shape, a.offset+start*a.stride[0]), nil
}

func (a *Array) view(shape Shape, offset int) *Array {
	shape = shape.Clone()
	return &Array{
		data:   a.data,
		shape:  shape,
		stride: shape.ComputeStrides(),
		dtype:  a.dtype,
		offset: offset,
	}
}

// AllClose reports whether a and b have equal shapes and elements within tol.
func AllClose(a, b *Array, tol float64) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	for i := 0; i < a.Size(); i++ {
		if math.Abs(a.At(i)-b.At(i)) > tol {
			return false
		}
	}
	return true
}
