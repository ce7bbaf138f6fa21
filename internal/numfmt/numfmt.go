// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package numfmt implements the printf-style number specifiers used to print
// arrays and scalars: "%[-][fill][width][.precision]verb".
//
// The fill is '0', a space, or any other character introduced by a single
// quote ("%'*10d"). Verbs are d, f, F, e, E, g, G and s. Exponents are written
// without zero padding ("1.23e+3").
package numfmt

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrBadFormat is returned by Parse for malformed specifiers.
var ErrBadFormat = errors.New("bad format specifier")

// NoPrecision marks a Spec without an explicit precision.
const NoPrecision = -1

// defaultPrecision is used by f, e and g when no precision is given.
const defaultPrecision = 6

// Spec is a parsed number specifier.
type Spec struct {
	Left      bool
	Fill      rune // 0 means space.
	Width     int
	Precision int // NoPrecision when unset.
	Verb      byte
}

// Parse reads a specifier such as "%-010.3f". Text around the specifier is not allowed.
func Parse(format string) (Spec, error) {
	spec := Spec{Precision: NoPrecision}
	s := format
	if !strings.HasPrefix(s, "%") {
		return spec, errors.Wrapf(ErrBadFormat, "%q: missing %%", format)
	}
	s = s[1:]

flags:
	for len(s) > 0 {
		switch s[0] {
		case '-':
			spec.Left = true
			s = s[1:]
		case '0', ' ':
			spec.Fill = rune(s[0])
			s = s[1:]
		case '\'':
			r, size := utf8.DecodeRuneInString(s[1:])
			if r == utf8.RuneError {
				return spec, errors.Wrapf(ErrBadFormat, "%q: missing fill character", format)
			}
			spec.Fill = r
			s = s[1+size:]
		default:
			break flags
		}
	}

	var digits string
	digits, s = leadingDigits(s)
	if digits != "" {
		spec.Width, _ = strconv.Atoi(digits)
	}
	if strings.HasPrefix(s, ".") {
		digits, s = leadingDigits(s[1:])
		spec.Precision, _ = strconv.Atoi(digits) // "%.f" means precision 0.
	}

	if len(s) != 1 || !strings.ContainsRune("dfFeEgGs", rune(s[0])) {
		return spec, errors.Wrapf(ErrBadFormat, "%q: unknown verb %q", format, s)
	}
	spec.Verb = s[0]
	return spec, nil
}

func leadingDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

// String prints the specifier so that Parse(spec.String()) == spec.
func (spec Spec) String() string {
	var sb strings.Builder
	sb.WriteByte('%')
	if spec.Left {
		sb.WriteByte('-')
	}
	switch spec.Fill {
	case 0:
	case '0', ' ':
		sb.WriteRune(spec.Fill)
	default:
		sb.WriteByte('\'')
		sb.WriteRune(spec.Fill)
	}
	if spec.Width > 0 {
		sb.WriteString(strconv.Itoa(spec.Width))
	}
	if spec.Precision != NoPrecision {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(spec.Precision))
	}
	sb.WriteByte(spec.Verb)
	return sb.String()
}

// IsInteger reports whether the verb prints integers.
func (spec Spec) IsInteger() bool {
	return spec.Verb == 'd'
}

// FormatFloat formats v according to the specifier.
// The d verb truncates v toward zero.
func (spec Spec) FormatFloat(v float64) string {
	prec := spec.Precision
	if prec == NoPrecision {
		prec = defaultPrecision
	}

	var s string
	switch spec.Verb {
	case 'd':
		if math.IsNaN(v) || math.IsInf(v, 0) {
			s = Natural(v, 64)
		} else {
			s = strconv.FormatInt(int64(v), 10)
		}
	case 'f', 'F':
		s = strconv.FormatFloat(v, 'f', prec, 64)
	case 'e', 'E':
		s = trimExponent(strconv.FormatFloat(v, spec.Verb, prec, 64))
	case 'g', 'G':
		if prec == 0 {
			prec = 1
		}
		s = trimExponent(strconv.FormatFloat(v, spec.Verb, prec, 64))
	default:
		s = Natural(v, 64)
	}
	return spec.pad(s)
}

// FormatInt formats v according to the specifier. Non-integer verbs print v
// as a floating point number.
func (spec Spec) FormatInt(v int64) string {
	switch spec.Verb {
	case 'd', 's':
		return spec.pad(strconv.FormatInt(v, 10))
	default:
		return spec.FormatFloat(float64(v))
	}
}

// FormatText pads s to the specifier's width. Precision is ignored.
func (spec Spec) FormatText(s string) string {
	return spec.pad(s)
}

// pad applies width, alignment and fill. A zero fill on a right aligned
// number goes between the sign and the digits.
func (spec Spec) pad(s string) string {
	n := spec.Width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	fill := spec.Fill
	if fill == 0 {
		fill = ' '
	}
	padding := strings.Repeat(string(fill), n)
	switch {
	case spec.Left:
		return s + padding
	case fill == '0' && (strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+")):
		return s[:1] + padding + s[1:]
	default:
		return padding + s
	}
}

// Natural is the default text form of a number: the shortest representation
// that round-trips at bitSize, in positional notation between 1e-4 and 1e15.
// Integral values have no decimal point.
func Natural(v float64, bitSize int) string {
	abs := math.Abs(v)
	if math.IsNaN(v) || math.IsInf(v, 0) || abs == 0 || (abs >= 1e-4 && abs < 1e15) {
		return strconv.FormatFloat(v, 'f', -1, bitSize)
	}
	return trimExponent(strconv.FormatFloat(v, 'e', -1, bitSize))
}

// trimExponent rewrites Go's two-digit exponents ("e+03") as "e+3".
func trimExponent(s string) string {
	i := strings.LastIndexAny(s, "eE")
	if i < 0 || i+2 >= len(s) {
		return s
	}
	mantissa, sign, digits := s[:i+1], s[i+1:i+2], strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + sign + digits
}
