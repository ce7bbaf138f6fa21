// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cout

import (
	"fmt"
	"io"
	"strings"

	"github.com/born-ml/tensorcout/internal/ndarray"
	"github.com/born-ml/tensorcout/internal/numfmt"
	"github.com/born-ml/tensorcout/tensor"
	"github.com/pkg/errors"
)

// Println writes values separated by single spaces and ends the line.
// Tensors and arrays are rendered with b, one sub-array per line; anything
// else prints as with fmt.Sprint.
//
//	cout.Println(os.Stdout, b, x, y) // [2] [3]
func Println(w io.Writer, b tensor.Backend, values ...any) error {
	return printLine(w, values, func(value any) (string, error) {
		if a, ok := arrayOf(value); ok {
			return renderWith(b, value, a, tensor.RenderOptions{Indent: true})
		}
		return fmt.Sprint(value), nil
	})
}

// Printfln is Println with numbers, and every element of tensors and
// arrays, formatted by a printf-style specifier such as "%5.3f".
//
//	cout.Printfln(os.Stdout, b, "%5.3f", x, y) // [2.000] [3.000]
//	cout.Printfln(os.Stdout, b, "%5.3f", 2, 3) // 2.000 3.000
func Printfln(w io.Writer, b tensor.Backend, format string, values ...any) error {
	spec, err := numfmt.Parse(format)
	if err != nil {
		return errors.Wrap(err, "printfln")
	}
	return printLine(w, values, func(value any) (string, error) {
		if a, ok := arrayOf(value); ok {
			return renderWith(b, value, a, tensor.RenderOptions{Format: format, Indent: true})
		}
		if v, ok := ndarray.ScalarValue(value); ok {
			if ndarray.IsIntegerValue(value) {
				return spec.FormatInt(intValue(value)), nil
			}
			return spec.FormatFloat(v), nil
		}
		return fmt.Sprint(value), nil
	})
}

func printLine(w io.Writer, values []any, text func(any) (string, error)) error {
	var sb strings.Builder
	for i, value := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		s, err := text(value)
		if err != nil {
			return err
		}
		sb.WriteString(s)
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "println")
}

// arrayOf returns the handle behind a *tensor.Tensor or *tensor.Array.
func arrayOf(value any) (*tensor.Array, bool) {
	switch v := value.(type) {
	case *tensor.Tensor:
		if v != nil {
			return v.Array(), true
		}
	case *tensor.Array:
		if v != nil {
			return v, true
		}
	}
	return nil, false
}

// renderWith renders a with b, falling back to the tensor's own backend.
func renderWith(b tensor.Backend, value any, a *tensor.Array, opts tensor.RenderOptions) (string, error) {
	if b == nil {
		t, ok := value.(*tensor.Tensor)
		if !ok {
			return "", errors.Wrap(ErrUnknownValueType, "print: array without a backend")
		}
		b = t.Backend()
	}
	text, err := b.Render(a, opts)
	return text, errors.Wrap(err, "print")
}
