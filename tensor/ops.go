// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/pkg/errors"
)

// Add returns t + value. A Scalar is added to every element; a *Tensor is
// added element-wise, broadcast onto t's shape.
func (t *Tensor) Add(value Operand) (*Tensor, error) {
	b := t.backend
	switch v := value.(type) {
	case Scalar:
		return t.result("add")(b.Increment(b.Copy(t.handle), float64(v)))
	case *Tensor:
		if v == nil {
			break
		}
		return t.result("add")(b.Add(v.handle, b.Copy(t.handle), 1))
	case nil:
	default:
		return nil, unsupported("add", value)
	}
	return nil, errors.Wrap(ErrUnknownValueType, "add")
}

// Sub returns t - value, with the same operand rules as Add.
func (t *Tensor) Sub(value Operand) (*Tensor, error) {
	b := t.backend
	switch v := value.(type) {
	case Scalar:
		return t.result("sub")(b.Increment(b.Copy(t.handle), -float64(v)))
	case *Tensor:
		if v == nil {
			break
		}
		return t.result("sub")(b.Add(v.handle, b.Copy(t.handle), -1))
	case nil:
	default:
		return nil, unsupported("sub", value)
	}
	return nil, errors.Wrap(ErrUnknownValueType, "sub")
}

// Mul returns t * value element-wise. A Scalar scales every element; a
// *Tensor is broadcast onto t's shape.
func (t *Tensor) Mul(value Operand) (*Tensor, error) {
	b := t.backend
	switch v := value.(type) {
	case Scalar:
		return t.result("mul")(b.Scale(float64(v), b.Copy(t.handle)))
	case *Tensor:
		if v == nil {
			break
		}
		return t.result("mul")(b.Multiply(v.handle, b.Copy(t.handle)))
	case nil:
	default:
		return nil, unsupported("mul", value)
	}
	return nil, errors.Wrap(ErrUnknownValueType, "mul")
}

// Div returns t / value element-wise.
//
// A Scalar scales t by its reciprocal; zero fails with ErrDivisionByZero.
// For a *Tensor the reciprocal of value is taken on a copy: when it has t's
// shape, t is multiplied into it directly, otherwise it is broadcast into a
// copy of t.
func (t *Tensor) Div(value Operand) (*Tensor, error) {
	b := t.backend
	switch v := value.(type) {
	case Scalar:
		if v == 0 {
			return nil, errors.Wrap(ErrDivisionByZero, "div")
		}
		return t.result("div")(b.Scale(1/float64(v), b.Copy(t.handle)))
	case *Tensor:
		if v == nil {
			break
		}
		rr, err := b.Reciprocal(b.Copy(v.handle))
		if err != nil {
			return nil, errors.Wrap(err, "div")
		}
		if rr.Shape().Equal(t.Shape()) {
			return t.result("div")(b.Multiply(t.handle, rr))
		}
		return t.result("div")(b.Multiply(rr, b.Copy(t.handle)))
	case nil:
	default:
		return nil, unsupported("div", value)
	}
	return nil, errors.Wrap(ErrUnknownValueType, "div")
}

// Pow combines t and value as matrices. When t has a higher rank than value
// the result is the matrix-vector product, otherwise the matrix product.
//
//	[[1,2],[3,4]] ** [[5,6],[7,8]] = [[19,22],[43,50]]
//	[[1,2],[3,4]] ** [5,6]         = [17,39]
func (t *Tensor) Pow(value Operand) (*Tensor, error) {
	b := t.backend
	switch v := value.(type) {
	case *Tensor:
		if v == nil {
			break
		}
		if t.NDim() > v.NDim() {
			return t.result("pow")(b.MatrixVector(t.handle, b.Copy(v.handle)))
		}
		return t.result("pow")(b.MatMul(t.handle, v.handle))
	case nil:
	default:
		return nil, unsupported("pow", value)
	}
	return nil, errors.Wrap(ErrUnknownValueType, "pow")
}

// Xor with the marker T returns the transpose of t. Any other marker fails
// with ErrTransposeMarker.
func (t *Tensor) Xor(value Operand) (*Tensor, error) {
	switch v := value.(type) {
	case Marker:
		if v != T {
			return nil, errors.Wrapf(ErrTransposeMarker, "xor: got %q", string(v))
		}
		return t.result("xor")(t.backend.Transpose(t.handle))
	case nil:
		return nil, errors.Wrap(ErrUnknownValueType, "xor")
	case *Tensor:
		if v == nil {
			return nil, errors.Wrap(ErrUnknownValueType, "xor")
		}
	}
	return nil, unsupported("xor", value)
}

// Neg returns -t.
func (t *Tensor) Neg() (*Tensor, error) {
	return t.Mul(Scalar(-1))
}

// T returns the transpose of t.
func (t *Tensor) T() (*Tensor, error) {
	return t.Xor(T)
}

// Reshape returns a copy of t with the given dimensions. The number of
// elements must not change.
func (t *Tensor) Reshape(dims ...int) (*Tensor, error) {
	return t.result("reshape")(t.backend.Copy(t.handle).Reshape(Shape(dims)))
}

// result returns a function wrapping the outcome of a backend primitive
// into a new Tensor, so calls read t.result(op)(b.Primitive(...)).
func (t *Tensor) result(op string) func(*Array, error) (*Tensor, error) {
	return func(handle *Array, err error) (*Tensor, error) {
		if err != nil {
			return nil, errors.Wrap(err, op)
		}
		return t.wrap(handle), nil
	}
}

func unsupported(op string, value Operand) error {
	return errors.Wrapf(ErrUnsupportedOperand, "%s: %s", op, describe(value))
}
