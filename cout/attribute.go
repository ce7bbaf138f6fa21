// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cout

// Attribute is a format manipulator. Putting one into a Formatter changes how
// every value put after it is printed. The set is closed.
type Attribute interface {
	apply(f *Formatter)
}

// Fixed prints numbers in fixed-point notation ("%.2f" unless a precision is set).
type Fixed struct{}

// Scientific prints numbers in exponent notation ("%e").
type Scientific struct{}

// Precision sets the number of digits: after the point for Fixed and
// Scientific, significant digits otherwise.
type Precision int

// Width sets the minimum field width of every number.
type Width int

// Left aligns numbers to the left of their field.
type Left struct{}

// Right aligns numbers to the right of their field (the default).
type Right struct{}

// Fill sets the character padding numbers to their width.
type Fill rune

func (Fixed) apply(f *Formatter)      { f.fixed = true }
func (Scientific) apply(f *Formatter) { f.scientific = true }
func (Left) apply(f *Formatter)       { f.left = true }
func (Right) apply(f *Formatter)      { f.left = false }

func (p Precision) apply(f *Formatter) {
	n := int(p)
	f.precision = &n
}

func (w Width) apply(f *Formatter) {
	n := int(w)
	f.width = &n
}

func (c Fill) apply(f *Formatter) {
	r := rune(c)
	f.fill = &r
}

// Endl ends a line.
const Endl = "\n"

// SetPrecision returns the Precision manipulator.
func SetPrecision(n int) Attribute { return Precision(n) }

// SetW returns the Width manipulator.
func SetW(n int) Attribute { return Width(n) }

// SetWidth is SetW.
func SetWidth(n int) Attribute { return Width(n) }

// SetFill returns the Fill manipulator.
func SetFill(r rune) Attribute { return Fill(r) }
