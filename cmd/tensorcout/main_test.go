// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"flag"
	"testing"

	"github.com/born-ml/tensorcout/tensor"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runArgs parses command line args into a fresh flag set and runs them.
func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	fs := flag.NewFlagSet("tensorcout", flag.ContinueOnError)
	cfg := registerFlags(fs)
	require.NoError(t, fs.Parse(args))
	var out bytes.Buffer
	err := run(cfg, fs.Args(), &out)
	return out.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		expect string
	}{
		{"print", []string{"[[1,2],[3,4]]"}, "[[1,2],[3,4]]\n"},
		{"add scalar", []string{"-op", "add", "-rhs", "1", "[1,2]"}, "[2,3]\n"},
		{"sub tensor", []string{"-op", "sub", "-rhs", "[1,1]", "[1,2]"}, "[0,1]\n"},
		{"mul", []string{"-op", "mul", "-rhs", "2", "[1,2]"}, "[2,4]\n"},
		{"div", []string{"-op", "div", "-rhs", "3", "-fixed", "-precision", "3", "[1,2]"}, "[0.333,0.667]\n"},
		{"pow matrix", []string{"-op", "pow", "-rhs", "[[5,6],[7,8]]", "[[1,2],[3,4]]"}, "[[19,22],[43,50]]\n"},
		{"pow vector", []string{"-op", "pow", "-rhs", "[5,6]", "[[1,2],[3,4]]"}, "[17,39]\n"},
		{"transpose", []string{"-op", "t", "[[1,2],[3,4]]"}, "[[1,3],[2,4]]\n"},
		{"width fill", []string{"-dtype", "int32", "-width", "10", "-fill", "0", "[1,2]"}, "[0000000001,0000000002]\n"},
		{"width left", []string{"-dtype", "int32", "-width", "3", "-left", "[1,2]"}, "[1  ,2  ]\n"},
		{"scientific", []string{"-scientific", "[1234.125]"}, "[1.234125e+3]\n"},
		{"summary", []string{"-summary", "[1,2]"}, "[1,2]\nTensor[float32][2] (8 B)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runArgs(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, out)
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no array", nil},
		{"two arrays", []string{"[1]", "[2]"}},
		{"bad json", []string{"[1,"}},
		{"bad dtype", []string{"-dtype", "complex64", "[1]"}},
		{"missing rhs", []string{"-op", "add", "[1]"}},
		{"unknown op", []string{"-op", "mod", "-rhs", "2", "[1]"}},
		{"long fill", []string{"-width", "3", "-fill", "ab", "[1]"}},
		{"pow scalar", []string{"-op", "pow", "-rhs", "2", "[1]"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runArgs(t, tt.args...)
			require.Error(t, err)
		})
	}

	_, err := runArgs(t, "-op", "div", "-rhs", "0", "[1]")
	assert.True(t, errors.Is(err, tensor.ErrDivisionByZero))
}
