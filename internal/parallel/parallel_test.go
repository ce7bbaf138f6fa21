// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}

	n := 1000
	seen := make([]int32, n)
	var chunks int64

	For(n, func(start, end int) {
		atomic.AddInt64(&chunks, 1)
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	}, cfg)

	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
	if chunks < 2 {
		t.Errorf("expected work to be split, got %d chunk(s)", chunks)
	}
}

func TestForSmallRunsInline(t *testing.T) {
	var calls int
	For(10, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("got chunk [%d,%d), want [0,10)", start, end)
		}
	}, DefaultConfig())

	if calls != 1 {
		t.Errorf("expected a single inline call, got %d", calls)
	}
}

func TestForEmpty(t *testing.T) {
	For(0, func(_, _ int) {
		t.Error("f must not be called for n == 0")
	}, DefaultConfig())
}

func TestRows(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 1}

	rows := 7
	results := make([]bool, rows)
	Rows(rows, func(i int) {
		results[i] = true
	}, cfg)

	for i, ok := range results {
		if !ok {
			t.Errorf("missing row %d", i)
		}
	}
}

func TestSequential(t *testing.T) {
	var calls int
	For(1<<20, func(_, _ int) { calls++ }, Sequential())
	if calls != 1 {
		t.Errorf("Sequential config split work into %d calls", calls)
	}
}
