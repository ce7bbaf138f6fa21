// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Tensor is an N-dimensional array bound to the backend that computes on it.
//
// Tensor provides a high-level API with:
//   - Operator methods returning new tensors (Add, Sub, Mul, Div, Pow, Xor)
//   - Views through Get, in-place writes through Set
//   - Text rendering via String and fmt verbs
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.New(backend, []float32{1, 2})
//	y, _ := x.Mul(tensor.Scalar(2)) // [2,4]
type Tensor struct {
	backend Backend
	handle  *Array
}

// New creates a tensor from value, which is a Go number, a regular nested
// slice of numbers, an existing *Tensor or an *Array.
//
// An optional dtype selects the element type; by default the backend picks
// (Float32 for numbers, Bool for bools). A *Tensor or *Array is aliased, not
// copied, unless a different dtype is requested.
//
// Example:
//
//	backend := cpu.New()
//	a, _ := tensor.New(backend, [][]int{{1, 2}, {3, 4}})            // float32
//	b, _ := tensor.New(backend, [][]int{{1, 2}, {3, 4}}, tensor.Int64) // int64
//	c, _ := tensor.New(backend, a)                                   // shares a's handle
func New(b Backend, value any, dtype ...DataType) (*Tensor, error) {
	if b == nil {
		return nil, errors.New("tensor: nil backend")
	}
	dt := Auto
	if len(dtype) > 0 {
		dt = dtype[0]
	}

	if t, ok := value.(*Tensor); ok {
		if t == nil {
			return nil, errors.Wrap(ErrUnknownValueType, "new tensor: nil *Tensor")
		}
		value = t.handle
	}
	handle, err := b.Array(value, dt)
	if err != nil {
		return nil, errors.Wrap(err, "new tensor")
	}
	return &Tensor{backend: b, handle: handle}, nil
}

// wrap binds a freshly computed handle to t's backend.
func (t *Tensor) wrap(handle *Array) *Tensor {
	return &Tensor{backend: t.backend, handle: handle}
}

// Backend returns the backend the tensor computes on.
func (t *Tensor) Backend() Backend {
	return t.backend
}

// Array returns the tensor's handle. Writing to it mutates the tensor.
func (t *Tensor) Array() *Array {
	return t.handle
}

// Shape returns the tensor's dimensions.
func (t *Tensor) Shape() Shape {
	return t.handle.Shape()
}

// DType returns the element type.
func (t *Tensor) DType() DataType {
	return t.handle.DType()
}

// Size returns the total number of elements.
func (t *Tensor) Size() int {
	return t.handle.Size()
}

// NDim returns the rank.
func (t *Tensor) NDim() int {
	return t.handle.NDim()
}

// Count returns the size of the leading dimension, or 0 for a scalar tensor.
func (t *Tensor) Count() int {
	return t.handle.Count()
}

// String renders the tensor in its natural text form, e.g. "[[1,2],[3,4]]".
func (t *Tensor) String() string {
	s, err := t.backend.Render(t.handle, RenderOptions{})
	if err != nil {
		return fmt.Sprintf("%%!v(%v)", err)
	}
	return s
}

// Summary describes the tensor without its elements: "Tensor[float32][2 2] (16 B)".
func (t *Tensor) Summary() string {
	return fmt.Sprintf("Tensor[%s]%v (%s)", t.DType(), []int(t.Shape()),
		humanize.Bytes(uint64(t.handle.ByteSize()))) //nolint:gosec // ByteSize is never negative.
}

// Format implements fmt.Formatter.
//
// %v and %s print String(); %+v prints Summary(). The numeric verbs d, f, e
// and g (and F, E, G) format every element, honoring width, precision and
// the '-' and '0' flags:
//
//	fmt.Printf("%6.2f", x) // [  1.00,  2.00]
func (t *Tensor) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if verb == 'v' && f.Flag('+') {
			_, _ = io.WriteString(f, t.Summary())
			return
		}
		_, _ = io.WriteString(f, t.String())
	case 'd', 'f', 'F', 'e', 'E', 'g', 'G':
		s, err := t.backend.Render(t.handle, RenderOptions{Format: specifier(f, verb)})
		if err != nil {
			_, _ = fmt.Fprintf(f, "%%!%c(%v)", verb, err)
			return
		}
		_, _ = io.WriteString(f, s)
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(*tensor.Tensor=%s)", verb, t.String())
	}
}

// specifier rebuilds the element format from the fmt.State flags.
func specifier(f fmt.State, verb rune) string {
	var sb strings.Builder
	sb.WriteByte('%')
	if f.Flag('-') {
		sb.WriteByte('-')
	}
	if f.Flag('0') {
		sb.WriteByte('0')
	}
	if w, ok := f.Width(); ok {
		sb.WriteString(strconv.Itoa(w))
	}
	if p, ok := f.Precision(); ok {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(p))
	}
	sb.WriteRune(verb)
	return sb.String()
}
