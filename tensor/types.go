// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tensorcout/internal/ndarray"
)

// Type aliases for public API

// Array is the backend array handle a Tensor owns.
//
// Array provides:
//   - Shape and type information via Shape(), DType(), Size(), NDim()
//   - Element access via At(i) and SetAt(i, v)
//   - Zero-copy views via Index and Slice
//   - Deep copies via Copy
type Array = ndarray.Array

// DataType represents the element type of an Array.
type DataType = ndarray.DataType

// Data type constants. Auto lets the backend pick (Float32 for numbers).
const (
	Auto    DataType = ndarray.Auto
	Bool    DataType = ndarray.Bool
	Int8    DataType = ndarray.Int8
	Uint8   DataType = ndarray.Uint8
	Int16   DataType = ndarray.Int16
	Uint16  DataType = ndarray.Uint16
	Int32   DataType = ndarray.Int32
	Uint32  DataType = ndarray.Uint32
	Int64   DataType = ndarray.Int64
	Uint64  DataType = ndarray.Uint64
	Float16 DataType = ndarray.Float16
	Float32 DataType = ndarray.Float32
	Float64 DataType = ndarray.Float64
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = ndarray.Shape

// RenderOptions controls Backend.Render.
type RenderOptions = ndarray.RenderOptions

// ParseDataType converts a data type name ("float32", "int64", ...) to a DataType.
func ParseDataType(name string) (DataType, error) {
	return ndarray.ParseDataType(name)
}
