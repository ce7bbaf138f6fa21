// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"reflect"
)

// FromValue builds an array from a Go scalar or a regular, arbitrarily nested
// slice (or Go array) of scalars. Supported scalars are all Go integer and
// floating point kinds and bool.
//
// With dtype Auto, bool values produce a Bool array and everything else
// produces a Default (Float32) array.
//
//	a, _ := FromValue([][]int{{1, 2}, {3, 4}}, Int32) // (2,2) int32
func FromValue(value any, dtype DataType) (*Array, error) {
	if value == nil {
		return nil, ValueErrorf("cannot build an array from nil")
	}
	if a, ok := value.(*Array); ok {
		return a, nil
	}

	v := reflect.ValueOf(value)
	var shape Shape
	leaf, err := shapeForValue(v, &shape)
	if err != nil {
		return nil, err
	}
	if dtype == Auto {
		dtype = Default
		if leaf == reflect.Bool {
			dtype = Bool
		}
	}

	a, err := New(shape, dtype)
	if err != nil {
		return nil, err
	}
	pos := 0
	if err := fillRecursively(a, v, shape, &pos); err != nil {
		return nil, err
	}
	return a, nil
}

// shapeForValue walks the first element of every nesting level to find the
// shape and leaf kind. Regularity is checked later by fillRecursively.
func shapeForValue(v reflect.Value, shape *Shape) (reflect.Kind, error) {
	for {
		switch v.Kind() {
		case reflect.Slice, reflect.Array:
			*shape = append(*shape, v.Len())
			if v.Len() == 0 {
				return leafKind(v.Type().Elem())
			}
			v = v.Index(0)
		case reflect.Interface, reflect.Pointer:
			if v.IsNil() {
				return reflect.Invalid, ValueErrorf("nil element in array value")
			}
			v = v.Elem()
		default:
			if !isScalarKind(v.Kind()) {
				return reflect.Invalid, ValueErrorf("unsupported element type %s", v.Type())
			}
			return v.Kind(), nil
		}
	}
}

func leafKind(t reflect.Type) (reflect.Kind, error) {
	for t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	if t.Kind() == reflect.Interface {
		return reflect.Float64, nil
	}
	if !isScalarKind(t.Kind()) {
		return reflect.Invalid, ValueErrorf("unsupported element type %s", t)
	}
	return t.Kind(), nil
}

func fillRecursively(a *Array, v reflect.Value, shape Shape, pos *int) error {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ValueErrorf("nil element in array value")
		}
		v = v.Elem()
	}

	if len(shape) == 0 {
		if err := setScalar(a, *pos, v); err != nil {
			return err
		}
		*pos++
		return nil
	}

	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return ShapeErrorf("irregular array value: expected %d elements, got scalar %v", shape[0], v)
	}
	if v.Len() != shape[0] {
		return ShapeErrorf("irregular array value: expected %d elements, got %d", shape[0], v.Len())
	}
	for i := 0; i < v.Len(); i++ {
		if err := fillRecursively(a, v.Index(i), shape[1:], pos); err != nil {
			return err
		}
	}
	return nil
}

func setScalar(a *Array, i int, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			a.SetAt(i, 1)
		} else {
			a.SetAt(i, 0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		a.SetIntAt(i, v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		a.SetIntAt(i, int64(v.Uint())) //nolint:gosec // wraps like a C cast
	case reflect.Float32, reflect.Float64:
		a.SetAt(i, v.Float())
	default:
		return ShapeErrorf("irregular array value: expected scalar, got %s", v.Type())
	}
	return nil
}

func isScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// ScalarValue converts a Go number to float64. ok is false for any other type.
func ScalarValue(value any) (v float64, ok bool) {
	switch x := value.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// IsIntegerValue reports whether value is a Go integer.
func IsIntegerValue(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

// RenderOptions controls Backend text rendering.
type RenderOptions struct {
	// Format is a numfmt specifier ("%10.3f") applied to every element.
	// Empty means the natural text form.
	Format string

	// Indent puts every sub-array of rank >= 1 inside a rank >= 2 array on its
	// own line, indented by its depth.
	Indent bool
}
