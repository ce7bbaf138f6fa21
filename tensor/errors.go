// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/pkg/errors"

// Errors returned by Tensor operators. They are wrapped with the operator
// name; match them with errors.Is.
var (
	// ErrUnsupportedOperand is returned when an operator does not define the
	// given kind of right-hand operand.
	ErrUnsupportedOperand = errors.New("unsupported operand type")

	// ErrUnknownValueType is returned for operands or values that are neither
	// numbers nor tensors.
	ErrUnknownValueType = errors.New("unknown value type")

	// ErrTransposeMarker is returned by Xor for any marker other than T.
	ErrTransposeMarker = errors.New("value must be T")

	// ErrDivisionByZero is returned when dividing by the scalar zero.
	ErrDivisionByZero = errors.New("division by zero")
)
