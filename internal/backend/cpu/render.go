// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"strconv"
	"strings"

	"github.com/born-ml/tensorcout/internal/ndarray"
	"github.com/born-ml/tensorcout/internal/numfmt"
)

// Render returns the text form of x: a scalar prints as its element,
// anything else as nested brackets with comma separated elements ("[[1,2],[3,4]]").
//
// opts.Format, when set, is a numfmt specifier applied to every element.
// opts.Indent puts each sub-array of a rank >= 2 array on its own line:
//
//	[
//	 [1,2],
//	 [3,4]
//	]
func (cpu *CPUBackend) Render(x *ndarray.Array, opts ndarray.RenderOptions) (string, error) {
	r := renderer{indent: opts.Indent}
	if opts.Format != "" {
		spec, err := numfmt.Parse(opts.Format)
		if err != nil {
			return "", err
		}
		r.spec = &spec
	}

	var sb strings.Builder
	if err := r.write(&sb, x, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type renderer struct {
	spec   *numfmt.Spec
	indent bool
}

func (r *renderer) write(sb *strings.Builder, x *ndarray.Array, depth int) error {
	switch x.NDim() {
	case 0:
		sb.WriteString(r.element(x, 0))
		return nil
	case 1:
		sb.WriteByte('[')
		for i := 0; i < x.Size(); i++ {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(r.element(x, i))
		}
		sb.WriteByte(']')
		return nil
	}

	n := x.Count()
	sb.WriteByte('[')
	if r.indent && n > 0 {
		sb.WriteByte('\n')
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
			if r.indent {
				sb.WriteByte('\n')
			}
		}
		if r.indent {
			sb.WriteString(strings.Repeat(" ", depth+1))
		}
		row, err := x.Index(i)
		if err != nil {
			return err
		}
		if err := r.write(sb, row, depth+1); err != nil {
			return err
		}
	}
	if r.indent && n > 0 {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", depth))
	}
	sb.WriteByte(']')
	return nil
}

// element formats the i-th element (flat) of x.
func (r *renderer) element(x *ndarray.Array, i int) string {
	dtype := x.DType()
	switch {
	case dtype == ndarray.Bool:
		s := strconv.FormatBool(x.At(i) != 0)
		if r.spec != nil {
			return r.spec.FormatText(s)
		}
		return s
	case dtype.IsInteger():
		v := x.IntAt(i)
		if r.spec != nil {
			return r.spec.FormatInt(v)
		}
		if dtype == ndarray.Uint64 {
			return strconv.FormatUint(uint64(v), 10) //nolint:gosec // IntAt wraps, this unwraps.
		}
		return strconv.FormatInt(v, 10)
	default:
		if r.spec != nil {
			return r.spec.FormatFloat(x.At(i))
		}
		return numfmt.Natural(x.At(i), dtype.BitSize())
	}
}
