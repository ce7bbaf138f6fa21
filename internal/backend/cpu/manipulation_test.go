// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"testing"

	"github.com/born-ml/tensorcout/internal/ndarray"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPUBackend_Transpose(t *testing.T) {
	backend := newTestBackend()

	t.Run("2D", func(t *testing.T) {
		x := array(t, [][]int{{1, 2}, {3, 4}}, ndarray.Auto)
		result, err := backend.Transpose(x)
		require.NoError(t, err)
		assert.Equal(t, "[[1,3],[2,4]]", text(t, result))
		assert.False(t, result.SharesBuffer(x))
	})

	t.Run("Rectangular", func(t *testing.T) {
		x := array(t, [][]int{{1, 2, 3}, {4, 5, 6}}, ndarray.Int8)
		result, err := backend.Transpose(x)
		require.NoError(t, err)
		assert.Equal(t, ndarray.Shape{3, 2}, result.Shape())
		assert.Equal(t, "[[1,4],[2,5],[3,6]]", text(t, result))
	})

	t.Run("3D", func(t *testing.T) {
		values := make([]float64, 24)
		for i := range values {
			values[i] = float64(i)
		}
		x, err := ndarray.FromSlice(values, ndarray.Shape{2, 3, 4})
		require.NoError(t, err)
		result, err := backend.Transpose(x)
		require.NoError(t, err)
		assert.Equal(t, ndarray.Shape{4, 3, 2}, result.Shape())
		// result[k,j,i] == x[i,j,k]
		assert.Equal(t, x.At(1*12+2*4+3), result.At(3*6+2*2+1))
	})

	t.Run("1D", func(t *testing.T) {
		x := array(t, []int{1, 2}, ndarray.Auto)
		result, err := backend.Transpose(x)
		require.NoError(t, err)
		assert.Equal(t, "[1,2]", text(t, result))
	})
}

func TestCPUBackend_Squeeze(t *testing.T) {
	backend := newTestBackend()

	x := array(t, [][]int{{1, 2}}, ndarray.Auto)
	result, err := backend.Squeeze(x, 0)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2}, result.Shape())
	assert.True(t, result.SharesBuffer(x))

	result, err = backend.Squeeze(array(t, [][]int{{1}, {2}}, ndarray.Auto), -1)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2}, result.Shape())

	_, err = backend.Squeeze(x, 1)
	require.True(t, errors.Is(err, ndarray.ErrShapeMismatch))
	_, err = backend.Squeeze(x, 2)
	require.True(t, errors.Is(err, ndarray.ErrIndexOutOfRange))
}

func TestCPUBackend_SliceIndex(t *testing.T) {
	backend := newTestBackend()
	x := array(t, []int{1, 2, 3}, ndarray.Auto)

	one, err := backend.Slice(x, 1, 2)
	require.NoError(t, err)
	scalar, err := backend.Squeeze(one, 0)
	require.NoError(t, err)
	assert.Equal(t, "2", text(t, scalar))

	m := array(t, [][]int{{1, 2}, {3, 4}}, ndarray.Auto)
	row, err := backend.Index(m, 0)
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", text(t, row))

	_, err = backend.Index(m, 2)
	require.True(t, errors.Is(err, ndarray.ErrIndexOutOfRange))
}
