// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "github.com/pkg/errors"

// Sentinel errors reported by arrays and backends. Callers match them with errors.Is.
var (
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrUnsupportedDType = errors.New("unsupported data type")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInvalidValue     = errors.New("invalid value")
)

func wrapf(sentinel error, format string, args ...any) error {
	return errors.Wrapf(sentinel, format, args...)
}

// ShapeErrorf wraps ErrShapeMismatch with a formatted message.
func ShapeErrorf(format string, args ...any) error {
	return wrapf(ErrShapeMismatch, format, args...)
}

// DTypeErrorf wraps ErrUnsupportedDType with a formatted message.
func DTypeErrorf(format string, args ...any) error {
	return wrapf(ErrUnsupportedDType, format, args...)
}

// IndexErrorf wraps ErrIndexOutOfRange with a formatted message.
func IndexErrorf(format string, args ...any) error {
	return wrapf(ErrIndexOutOfRange, format, args...)
}

// ValueErrorf wraps ErrInvalidValue with a formatted message.
func ValueErrorf(format string, args ...any) error {
	return wrapf(ErrInvalidValue, format, args...)
}
