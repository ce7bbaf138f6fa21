// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"iter"

	"github.com/born-ml/tensorcout/internal/ndarray"
	"github.com/pkg/errors"
)

// Index selects part of a tensor along its leading axis. Build one with At
// or Range.
type Index struct {
	start, end int
	single     bool
}

// At selects position i of the leading axis. Negative i counts from the end.
func At(i int) Index {
	return Index{start: i, single: true}
}

// Range selects positions [start, end) of the leading axis, keeping the axis.
func Range(start, end int) Index {
	return Index{start: start, end: end}
}

// String returns "3" for At(3) and "[1,3)" for Range(1, 3).
func (idx Index) String() string {
	if idx.single {
		return fmt.Sprint(idx.start)
	}
	return fmt.Sprintf("[%d,%d)", idx.start, idx.end)
}

// Get returns the selected part of t as a view sharing t's memory.
//
// At on a rank-1 tensor yields a rank-0 tensor (one element, its axis
// squeezed); At on a higher rank drops the leading axis. Range keeps it.
//
//	x = [1,2]
//	x.Get(At(0))       // 1
//	x.Get(Range(0, 1)) // [1]
func (t *Tensor) Get(idx Index) (*Tensor, error) {
	view, err := t.view(idx)
	if err != nil {
		return nil, err
	}
	return t.wrap(view), nil
}

// Set writes value into the part of t selected by idx, in place. value is a
// Go number, a *Tensor or an *Array broadcastable onto the selection.
//
// Set is the only Tensor method that mutates t.
func (t *Tensor) Set(idx Index, value any) error {
	view, err := t.view(idx)
	if err != nil {
		return err
	}
	switch v := value.(type) {
	case *Tensor:
		if v == nil {
			return errors.Wrap(ErrUnknownValueType, "set: nil *Tensor")
		}
		value = v.handle
	case nil:
		return errors.Wrap(ErrUnknownValueType, "set: nil value")
	}
	if err := t.backend.Assign(view, value); err != nil {
		return errors.Wrapf(err, "set %s", idx)
	}
	return nil
}

// All iterates over the leading axis, yielding each position and the
// sub-tensor there (as Get(At(i)) would). A rank-0 tensor yields nothing.
//
//	for i, row := range x.All() {
//	    fmt.Println(i, row)
//	}
func (t *Tensor) All() iter.Seq2[int, *Tensor] {
	return func(yield func(int, *Tensor) bool) {
		for i := 0; i < t.Count(); i++ {
			row, err := t.Get(At(i))
			if err != nil {
				return
			}
			if !yield(i, row) {
				return
			}
		}
	}
}

// view resolves idx to a backend view of t's handle.
func (t *Tensor) view(idx Index) (*Array, error) {
	b := t.backend
	if t.NDim() == 0 {
		return nil, ndarray.IndexErrorf("get %s: cannot index a rank-0 tensor", idx)
	}
	if !idx.single {
		view, err := b.Slice(t.handle, idx.start, idx.end)
		return view, errors.Wrapf(err, "get %s", idx)
	}

	i := idx.start
	if i < 0 {
		i += t.Count()
	}
	if i < 0 || i >= t.Count() {
		return nil, ndarray.IndexErrorf("get %s: out of range for axis 0 of size %d", idx, t.Count())
	}
	if t.NDim() > 1 {
		view, err := b.Index(t.handle, i)
		return view, errors.Wrapf(err, "get %s", idx)
	}
	one, err := b.Slice(t.handle, i, i+1)
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", idx)
	}
	view, err := b.Squeeze(one, 0)
	return view, errors.Wrapf(err, "get %s", idx)
}
