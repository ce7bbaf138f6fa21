// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "fmt"

// Operand is the right-hand side of a Tensor operator: a Scalar, a *Tensor
// or a Marker. The set is closed.
type Operand interface {
	operand()
}

// Scalar is a number operand, broadcast against every element.
type Scalar float64

// Marker is a symbolic operand. The only marker any operator accepts is T.
type Marker string

// T is the transpose marker: a.Xor(T) transposes a.
const T Marker = "T"

func (Scalar) operand()  {}
func (Marker) operand()  {}
func (*Tensor) operand() {}

// describe names an operand in error messages.
func describe(value Operand) string {
	switch v := value.(type) {
	case Scalar:
		return fmt.Sprintf("scalar %v", float64(v))
	case Marker:
		return fmt.Sprintf("marker %q", string(v))
	case *Tensor:
		return fmt.Sprintf("tensor %s%v", v.DType(), v.Shape())
	default:
		return fmt.Sprintf("%T", value)
	}
}
