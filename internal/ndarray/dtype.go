// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
)

// DataType represents the element type of an Array.
type DataType int

// Supported data types. Auto asks the backend to pick its default (Float32).
const (
	Auto DataType = iota
	Bool
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float16
	Float32
	Float64
)

// Default is the data type used when Auto is requested.
const Default = Float32

// Element is the set of Go types that back an Array's buffer.
type Element interface {
	constraints.Integer | constraints.Float | ~bool
}

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16, Float16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// IsInteger reports whether dt holds signed or unsigned integers.
func (dt DataType) IsInteger() bool {
	switch dt {
	case Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64:
		return true
	}
	return false
}

// IsUnsigned reports whether dt holds unsigned integers.
func (dt DataType) IsUnsigned() bool {
	switch dt {
	case Uint8, Uint16, Uint32, Uint64:
		return true
	}
	return false
}

// IsFloat reports whether dt holds floating point numbers.
func (dt DataType) IsFloat() bool {
	return dt == Float16 || dt == Float32 || dt == Float64
}

// BitSize is the precision used when printing floating point elements.
func (dt DataType) BitSize() int {
	if dt == Float64 {
		return 64
	}
	return 32
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Auto:
		return "auto"
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// ParseDataType is the inverse of DataType.String.
func ParseDataType(name string) (DataType, error) {
	for dt := Auto; dt <= Float64; dt++ {
		if dt.String() == name {
			return dt, nil
		}
	}
	return Auto, wrapf(ErrUnsupportedDType, "unknown data type %q", name)
}

// dataTypeOf maps a buffer element type to its DataType.
func dataTypeOf[T Element]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case uint8:
		return Uint8
	case int16:
		return Int16
	case uint16:
		return Uint16
	case int32:
		return Int32
	case uint32:
		return Uint32
	case int64:
		return Int64
	case uint64:
		return Uint64
	case float16.Float16:
		return Float16
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported element type")
	}
}
