// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		dtype DataType
		shape Shape
		want  DataType
		data  []float64
	}{
		{"scalar", 3, Auto, Shape{}, Float32, []float64{3}},
		{"vector", []int{1, 2}, Auto, Shape{2}, Float32, []float64{1, 2}},
		{"matrix", [][]float64{{1, 2}, {3, 4}}, Float64, Shape{2, 2}, Float64, []float64{1, 2, 3, 4}},
		{"go array", [2][1]int32{{5}, {6}}, Int32, Shape{2, 1}, Int32, []float64{5, 6}},
		{"interfaces", []any{1.5, 2}, Auto, Shape{2}, Float32, []float64{1.5, 2}},
		{"bools", []bool{true, false}, Auto, Shape{2}, Bool, []float64{1, 0}},
		{"empty", []float32{}, Auto, Shape{0}, Float32, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := FromValue(tt.value, tt.dtype)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, a.Shape())
			assert.Equal(t, tt.want, a.DType())
			var got []float64
			for i := 0; i < a.Size(); i++ {
				got = append(got, a.At(i))
			}
			assert.Equal(t, tt.data, got)
		})
	}
}

func TestFromValueErrors(t *testing.T) {
	_, err := FromValue(nil, Auto)
	require.True(t, errors.Is(err, ErrInvalidValue))

	_, err = FromValue("abc", Auto)
	require.True(t, errors.Is(err, ErrInvalidValue))

	_, err = FromValue([][]int{{1, 2}, {3}}, Auto)
	require.True(t, errors.Is(err, ErrShapeMismatch))

	_, err = FromValue([]any{[]any{1}, 2}, Auto)
	require.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestFromValueReturnsArray(t *testing.T) {
	a, err := New(Shape{2}, Int8)
	require.NoError(t, err)
	b, err := FromValue(a, Auto)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestScalarValue(t *testing.T) {
	v, ok := ScalarValue(int16(-3))
	assert.True(t, ok)
	assert.Equal(t, -3.0, v)

	v, ok = ScalarValue(float32(0.5))
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)

	_, ok = ScalarValue("1")
	assert.False(t, ok)
	_, ok = ScalarValue(true)
	assert.False(t, ok)

	assert.True(t, IsIntegerValue(uint8(1)))
	assert.False(t, IsIntegerValue(1.0))
}

func TestDataTypes(t *testing.T) {
	for dt := Bool; dt <= Float64; dt++ {
		parsed, err := ParseDataType(dt.String())
		require.NoError(t, err)
		assert.Equal(t, dt, parsed)
	}
	_, err := ParseDataType("complex64")
	require.True(t, errors.Is(err, ErrUnsupportedDType))

	assert.True(t, Int16.IsInteger())
	assert.True(t, Uint32.IsUnsigned())
	assert.False(t, Float16.IsInteger())
	assert.True(t, Float16.IsFloat())
	assert.Equal(t, 2, Float16.Size())
	assert.Equal(t, 64, Float64.BitSize())
	assert.Equal(t, 32, Float32.BitSize())
}
