// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cout prints numbers and tensors through a stream of manipulators,
// in the style of C++ iostreams.
//
// # Basic Usage
//
//	out := cout.New(os.Stdout, cpu.New())
//	out.Put(cout.Fixed{}, cout.SetPrecision(3), x, cout.Endl)
//
// Manipulators (Fixed, Scientific, Precision, Width, Left, Right, Fill)
// persist: they apply to every value put after them into the same Formatter
// and are never reset. Use a new Formatter for a new set of options.
//
// # Formats
//
// Options translate into one printf-style specifier:
//   - Fixed: "%.2f", or "%.Nf" with SetPrecision(N)
//   - Scientific: "%e", or "%.Ne" with SetPrecision(N)
//   - SetPrecision(N) alone: "%.Ng"
//   - SetW(W) alone: "%Wd" for integers, "%Wf" otherwise
//
// Width, Left and Fill prefix the specifier ("%-010d"). Exponents carry no
// zero padding: "1.23e+3". Tensors get the specifier applied to every
// element and print one sub-array per line. Without any option, values print
// in their natural form.
package cout

import (
	"fmt"
	"io"
	"reflect"

	"github.com/born-ml/tensorcout/internal/ndarray"
	"github.com/born-ml/tensorcout/internal/numfmt"
	"github.com/born-ml/tensorcout/tensor"
	"github.com/pkg/errors"
)

// ErrUnknownValueType is returned for values that are neither numbers,
// strings nor tensors.
var ErrUnknownValueType = tensor.ErrUnknownValueType

// Formatter accumulates format options and writes values with them.
// A Formatter is not safe for concurrent use.
type Formatter struct {
	w       io.Writer
	backend tensor.Backend

	fixed      bool
	precision  *int
	scientific bool
	width      *int
	left       bool
	fill       *rune

	err error
}

// New creates a Formatter writing to w. Bare *tensor.Array values are
// rendered with b; tensors are rendered with b too, or with their own
// backend when b is nil.
func New(w io.Writer, b tensor.Backend) *Formatter {
	return &Formatter{w: w, backend: b}
}

// Put processes values left to right: an Attribute updates the options,
// anything else is printed with the current options.
//
// Printable values are Go numbers, strings (always written unchanged),
// *tensor.Tensor and *tensor.Array. After the first failure every later
// value is ignored; see Err.
func (f *Formatter) Put(values ...any) *Formatter {
	for _, value := range values {
		if f.err != nil {
			return f
		}
		if attr, ok := value.(Attribute); ok {
			attr.apply(f)
			continue
		}
		f.err = f.write(value)
	}
	return f
}

// Err returns the first error met by Put, if any.
func (f *Formatter) Err() error {
	return f.err
}

func (f *Formatter) write(value any) error {
	text, err := f.render(value)
	if err != nil {
		return err
	}
	_, err = io.WriteString(f.w, text)
	return errors.Wrap(err, "cout: write")
}

// render turns one printable value into text.
func (f *Formatter) render(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case *tensor.Tensor:
		if v == nil {
			break
		}
		b := f.backend
		if b == nil {
			b = v.Backend()
		}
		return f.renderArray(b, v.Array())
	case *tensor.Array:
		if v == nil || f.backend == nil {
			break
		}
		return f.renderArray(f.backend, v)
	default:
		if _, ok := ndarray.ScalarValue(value); ok {
			return f.renderNumber(value), nil
		}
	}
	return "", errors.Wrapf(ErrUnknownValueType, "cout: cannot print %T", value)
}

func (f *Formatter) renderArray(b tensor.Backend, a *tensor.Array) (string, error) {
	opts := tensor.RenderOptions{}
	if spec, ok := f.spec(a.DType().IsInteger()); ok {
		opts = tensor.RenderOptions{Format: spec.String(), Indent: true}
	}
	text, err := b.Render(a, opts)
	return text, errors.Wrap(err, "cout")
}

// renderNumber formats a Go number; value must satisfy ndarray.ScalarValue.
func (f *Formatter) renderNumber(value any) string {
	integer := ndarray.IsIntegerValue(value)
	spec, ok := f.spec(integer)
	switch {
	case integer && ok:
		return spec.FormatInt(intValue(value))
	case integer:
		return fmt.Sprint(value)
	}

	v, _ := ndarray.ScalarValue(value)
	if ok {
		return spec.FormatFloat(v)
	}
	if _, isFloat32 := value.(float32); isFloat32 {
		return numfmt.Natural(v, 32)
	}
	return numfmt.Natural(v, 64)
}

// spec builds the specifier for the current options. ok is false when no
// option that affects numbers is set.
func (f *Formatter) spec(integer bool) (spec numfmt.Spec, ok bool) {
	spec.Precision = numfmt.NoPrecision
	switch {
	case f.fixed:
		spec.Verb = 'f'
	case f.scientific:
		spec.Verb = 'e'
	case f.precision != nil:
		spec.Verb = 'g'
	case f.width != nil && integer:
		spec.Verb = 'd'
	case f.width != nil:
		spec.Verb = 'f'
	default:
		return spec, false
	}

	if f.width != nil {
		spec.Width = *f.width
		spec.Left = f.left
		if f.fill != nil {
			spec.Fill = *f.fill
		}
	}
	switch {
	case f.precision != nil:
		spec.Precision = *f.precision
	case f.fixed:
		spec.Precision = 2
	}
	return spec, true
}

func intValue(value any) int64 {
	rv := reflect.ValueOf(value)
	if rv.CanInt() {
		return rv.Int()
	}
	return int64(rv.Uint()) //nolint:gosec // wraps above MaxInt64 like a C cast
}

// String describes the current options as the specifier they produce for
// floating point values, or "" when none is set.
func (f *Formatter) String() string {
	spec, ok := f.spec(false)
	if !ok {
		return ""
	}
	return spec.String()
}

var _ fmt.Stringer = (*Formatter)(nil)
