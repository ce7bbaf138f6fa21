// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"testing"

	"github.com/born-ml/tensorcout/internal/ndarray"
	"github.com/born-ml/tensorcout/internal/parallel"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPUBackend_Scale(t *testing.T) {
	backend := newTestBackend()

	tests := []struct {
		name  string
		dtype ndarray.DataType
		alpha float64
		want  string
	}{
		{"float32", ndarray.Float32, 2, "[2,4,6]"},
		{"float64", ndarray.Float64, -1, "[-1,-2,-3]"},
		{"int32", ndarray.Int32, 0.5, "[0,1,1]"},
		{"float16", ndarray.Float16, 0.5, "[0.5,1,1.5]"},
		{"uint8", ndarray.Uint8, 3, "[3,6,9]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := array(t, []int{1, 2, 3}, tt.dtype)
			result, err := backend.Scale(tt.alpha, x)
			require.NoError(t, err)
			assert.Same(t, x, result) // In place.
			assert.Equal(t, tt.want, text(t, result))
		})
	}

	_, err := backend.Scale(2, array(t, []bool{true}, ndarray.Auto))
	require.True(t, errors.Is(err, ndarray.ErrUnsupportedDType))
}

func TestCPUBackend_Increment(t *testing.T) {
	backend := newTestBackend()
	for _, dtype := range []ndarray.DataType{ndarray.Float32, ndarray.Float64, ndarray.Int16} {
		t.Run(dtype.String(), func(t *testing.T) {
			x := array(t, [][]int{{1, 2}, {3, 4}}, dtype)
			result, err := backend.Increment(x, -1)
			require.NoError(t, err)
			assert.Equal(t, "[[0,1],[2,3]]", text(t, result))
		})
	}
}

func TestCPUBackend_Reciprocal(t *testing.T) {
	backend := newTestBackend()

	x := array(t, []float64{2, 4, 0.5}, ndarray.Float64)
	result, err := backend.Reciprocal(x)
	require.NoError(t, err)
	assert.Equal(t, "[0.5,0.25,2]", text(t, result))

	_, err = backend.Reciprocal(array(t, []int{1, 2}, ndarray.Int32))
	require.True(t, errors.Is(err, ndarray.ErrUnsupportedDType))
}

func TestCPUBackend_Add(t *testing.T) {
	backend := newTestBackend()

	t.Run("SameShape", func(t *testing.T) {
		x := array(t, []float32{1, 2, 3}, ndarray.Auto)
		y := array(t, []float32{10, 20, 30}, ndarray.Auto)
		result, err := backend.Add(x, y, 1)
		require.NoError(t, err)
		assert.Same(t, y, result)
		assert.Equal(t, "[11,22,33]", text(t, result))
		assert.Equal(t, "[1,2,3]", text(t, x))
	})

	t.Run("Alpha", func(t *testing.T) {
		x := array(t, []float64{1, 2}, ndarray.Float64)
		y := array(t, []float64{10, 20}, ndarray.Float64)
		result, err := backend.Add(x, y, -1)
		require.NoError(t, err)
		assert.Equal(t, "[9,18]", text(t, result))
	})

	t.Run("RowBroadcast", func(t *testing.T) {
		x := array(t, []float32{1, 2}, ndarray.Auto)
		y := array(t, [][]float32{{10, 20}, {30, 40}}, ndarray.Auto)
		result, err := backend.Add(x, y, 1)
		require.NoError(t, err)
		assert.Equal(t, "[[11,22],[31,42]]", text(t, result))
	})

	t.Run("ColumnBroadcast", func(t *testing.T) {
		x := array(t, [][]float32{{1}, {2}}, ndarray.Auto)
		y := array(t, [][]float32{{10, 20}, {30, 40}}, ndarray.Auto)
		result, err := backend.Add(x, y, 1)
		require.NoError(t, err)
		assert.Equal(t, "[[11,21],[32,42]]", text(t, result))
	})

	t.Run("MixedDTypes", func(t *testing.T) {
		x := array(t, []int{1, 2}, ndarray.Int32)
		y := array(t, []float64{0.5, 0.5}, ndarray.Float64)
		result, err := backend.Add(x, y, 1)
		require.NoError(t, err)
		assert.Equal(t, "[1.5,2.5]", text(t, result))
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		x := array(t, []float32{1, 2, 3}, ndarray.Auto)
		y := array(t, []float32{1, 2}, ndarray.Auto)
		_, err := backend.Add(x, y, 1)
		require.True(t, errors.Is(err, ndarray.ErrShapeMismatch))
	})

	t.Run("Parallel", func(t *testing.T) {
		par := New(WithParallel(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 2}))
		values := make([]float32, 64)
		for i := range values {
			values[i] = float32(i)
		}
		x := array(t, [][]float32{{1}, {1}}, ndarray.Auto)
		y, err := ndarray.FromSlice(values, ndarray.Shape{2, 32})
		require.NoError(t, err)
		_, err = par.Add(x, y, 1)
		require.NoError(t, err)
		for i, v := range ndarray.Data[float32](y) {
			assert.Equal(t, float32(i+1), v)
		}
	})
}

func TestCPUBackend_Multiply(t *testing.T) {
	backend := newTestBackend()

	tests := []struct {
		name  string
		x, y  any
		dtype ndarray.DataType
		want  string
	}{
		{"float32", []int{1, 2}, []int{3, 4}, ndarray.Float32, "[3,8]"},
		{"float64 broadcast", []int{2, 3}, [][]int{{1, 1}, {2, 2}}, ndarray.Float64, "[[2,3],[4,6]]"},
		{"int64", []int{2, 3}, []int{4, 5}, ndarray.Int64, "[8,15]"},
		{"column", [][]int{{2}, {3}}, [][]int{{1, 1}, {1, 1}}, ndarray.Float32, "[[2,2],[3,3]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := array(t, tt.x, tt.dtype)
			y := array(t, tt.y, tt.dtype)
			result, err := backend.Multiply(x, y)
			require.NoError(t, err)
			assert.Equal(t, tt.want, text(t, result))
		})
	}
}

func TestCPUBackend_Assign(t *testing.T) {
	backend := newTestBackend()

	t.Run("Scalar", func(t *testing.T) {
		x := array(t, []int{1, 2, 3}, ndarray.Int32)
		require.NoError(t, backend.Assign(x, 7))
		assert.Equal(t, "[7,7,7]", text(t, x))
	})

	t.Run("View", func(t *testing.T) {
		x := array(t, [][]int{{1, 2}, {3, 4}}, ndarray.Auto)
		row, err := backend.Index(x, 1)
		require.NoError(t, err)
		require.NoError(t, backend.Assign(row, array(t, []int{5, 6}, ndarray.Auto)))
		assert.Equal(t, "[[1,2],[5,6]]", text(t, x))
	})

	t.Run("Broadcast", func(t *testing.T) {
		x := array(t, [][]int{{1, 2}, {3, 4}}, ndarray.Int32)
		require.NoError(t, backend.Assign(x, array(t, []int{8, 9}, ndarray.Float64)))
		assert.Equal(t, "[[8,9],[8,9]]", text(t, x))
	})

	t.Run("Bool", func(t *testing.T) {
		x := array(t, []bool{false, false}, ndarray.Auto)
		require.NoError(t, backend.Assign(x, 1))
		assert.Equal(t, "[true,true]", text(t, x))
	})

	t.Run("Errors", func(t *testing.T) {
		x := array(t, []int{1, 2}, ndarray.Auto)
		err := backend.Assign(x, array(t, []int{1, 2, 3}, ndarray.Auto))
		require.True(t, errors.Is(err, ndarray.ErrShapeMismatch))
		err = backend.Assign(x, "one")
		require.True(t, errors.Is(err, ndarray.ErrInvalidValue))
		assert.Equal(t, "[1,2]", text(t, x))
	})
}
