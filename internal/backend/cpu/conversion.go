// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/born-ml/tensorcout/internal/ndarray"
)

// Cast converts x into a new array of the given data type.
// Integer targets truncate toward zero.
func (cpu *CPUBackend) Cast(x *ndarray.Array, dtype ndarray.DataType) (*ndarray.Array, error) {
	if dtype == ndarray.Auto {
		dtype = ndarray.Default
	}
	if x.DType() == dtype {
		return x.Copy(), nil
	}

	result, err := ndarray.New(x.Shape(), dtype)
	if err != nil {
		return nil, err
	}
	castInto(result, x)
	return result, nil
}

// castInto copies x element by element into result, which must have the same size.
func castInto(result, x *ndarray.Array) {
	bothInt := x.DType().IsInteger() && result.DType().IsInteger()
	for i := 0; i < x.Size(); i++ {
		if bothInt {
			result.SetIntAt(i, x.IntAt(i))
		} else {
			result.SetAt(i, x.At(i))
		}
	}
}
