// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"testing"

	"github.com/born-ml/tensorcout/internal/ndarray"
	"github.com/born-ml/tensorcout/internal/numfmt"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPUBackend_Render(t *testing.T) {
	backend := newTestBackend()

	tests := []struct {
		name  string
		value any
		dtype ndarray.DataType
		opts  ndarray.RenderOptions
		want  string
	}{
		{"scalar", 1.5, ndarray.Auto, ndarray.RenderOptions{}, "1.5"},
		{"vector", []float64{1, 2.5}, ndarray.Auto, ndarray.RenderOptions{}, "[1,2.5]"},
		{"matrix", [][]int{{1, 2}, {3, 4}}, ndarray.Int32, ndarray.RenderOptions{}, "[[1,2],[3,4]]"},
		{"float32 shortest", []float64{0.1}, ndarray.Float32, ndarray.RenderOptions{}, "[0.1]"},
		{"float64 shortest", []float64{0.1}, ndarray.Float64, ndarray.RenderOptions{}, "[0.1]"},
		{"bool", []bool{true, false}, ndarray.Auto, ndarray.RenderOptions{}, "[true,false]"},
		{"empty", []float32{}, ndarray.Auto, ndarray.RenderOptions{}, "[]"},
		{
			"width", []int{1, 2}, ndarray.Auto,
			ndarray.RenderOptions{Format: "%10f", Indent: true}, "[  1.000000,  2.000000]",
		},
		{
			"zero fill int", []int{1, 2}, ndarray.Int64,
			ndarray.RenderOptions{Format: "%010d"}, "[0000000001,0000000002]",
		},
		{
			"scientific", []float64{1234.125, 2345.125}, ndarray.Float64,
			ndarray.RenderOptions{Format: "%.2e"}, "[1.23e+3,2.35e+3]",
		},
		{
			"indent", [][]int{{2, 4}, {6, 8}}, ndarray.Auto,
			ndarray.RenderOptions{Format: "%3.1f", Indent: true}, "[\n [2.0,4.0],\n [6.0,8.0]\n]",
		},
		{
			"indent 3D", [][][]int{{{1, 2}}, {{3, 4}}}, ndarray.Auto,
			ndarray.RenderOptions{Indent: true}, "[\n [\n  [1,2]\n ],\n [\n  [3,4]\n ]\n]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := backend.Render(array(t, tt.value, tt.dtype), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := backend.Render(array(t, []int{1}, ndarray.Auto), ndarray.RenderOptions{Format: "%q"})
	require.True(t, errors.Is(err, numfmt.ErrBadFormat))
}
