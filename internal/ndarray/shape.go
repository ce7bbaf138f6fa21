// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"strconv"
	"strings"
)

// Shape represents the dimensions of an array. An empty Shape is a scalar.
type Shape []int

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no dimension is negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return ShapeErrorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides (in elements) for the shape.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String formats the shape as "(2,3)"; scalars print as "()".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = strconv.Itoa(dim)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Shapes are compared from the rightmost dimension; two dimensions are
// compatible when they are equal or one of them is 1, and missing leading
// dimensions count as 1.
//
// Returns the broadcast shape and whether any operand needs broadcasting.
//
//	(3, 1) + (3, 5) -> (3, 5), true, nil
//	(3, 5) + (3, 5) -> (3, 5), false, nil
//	(3, 4) + (3, 5) -> nil, false, ErrShapeMismatch
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := false

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}
		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, ShapeErrorf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
				a, b, maxLen-1-i, aDim, bDim)
		}
	}
	if len(a) != len(b) {
		needsBroadcast = true
	}

	return result, needsBroadcast, nil
}

// BroadcastsTo reports whether an array of shape from can be broadcast onto
// target without changing target's shape.
func BroadcastsTo(from, target Shape) bool {
	out, _, err := BroadcastShapes(from, target)
	return err == nil && out.Equal(target)
}

// BroadcastIndex maps a flat index in outShape to the flat index of an
// operand of shape inShape that is being broadcast onto outShape.
func BroadcastIndex(flat int, outShape, inShape Shape) int {
	offset := len(outShape) - len(inShape)
	idx := 0
	stride := 1
	for i := len(outShape) - 1; i >= 0; i-- {
		coord := flat % outShape[i]
		flat /= outShape[i]
		j := i - offset
		if j < 0 {
			continue
		}
		if inShape[j] != 1 {
			idx += coord * stride
		}
		stride *= inShape[j]
	}
	return idx
}
