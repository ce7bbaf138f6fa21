// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package factory is the convenience entry point: it owns a process-wide
// default backend and binds a backend and an output stream together so that
// tensors and formatters can be made without passing them around.
//
// Example:
//
//	f := factory.New()
//	x, _ := f.Tensor([]float32{1, 2})
//	f.Cout().Put(f.Fixed(), f.SetPrecision(3), x, f.Endl())
//	_ = f.Println(x, "done")
package factory

import (
	"io"
	"os"
	"sync"

	"github.com/born-ml/tensorcout/backend/cpu"
	"github.com/born-ml/tensorcout/cout"
	"github.com/born-ml/tensorcout/tensor"
	"k8s.io/klog/v2"
)

var (
	defaultOnce    sync.Once
	defaultBackend tensor.Backend
)

// Default returns the shared CPU backend, creating it on first use.
func Default() tensor.Backend {
	defaultOnce.Do(func() {
		defaultBackend = cpu.New()
		klog.V(1).Infof("factory: default backend %s created", defaultBackend.Name())
	})
	return defaultBackend
}

// Factory binds a backend and an output stream.
type Factory struct {
	backend tensor.Backend
	out     io.Writer
}

// Option configures a Factory.
type Option func(*Factory)

// WithBackend makes the Factory use b instead of Default().
func WithBackend(b tensor.Backend) Option {
	return func(f *Factory) {
		f.backend = b
	}
}

// WithOutput makes the Factory print to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(f *Factory) {
		f.out = w
	}
}

// New creates a Factory.
func New(opts ...Option) *Factory {
	f := &Factory{}
	for _, opt := range opts {
		opt(f)
	}
	if f.backend == nil {
		f.backend = Default()
	}
	if f.out == nil {
		f.out = os.Stdout
	}
	return f
}

// Backend returns the Factory's backend.
func (f *Factory) Backend() tensor.Backend {
	return f.backend
}

// Tensor creates a tensor on the Factory's backend; see tensor.New.
func (f *Factory) Tensor(value any, dtype ...tensor.DataType) (*tensor.Tensor, error) {
	return tensor.New(f.backend, value, dtype...)
}

// Cout returns a new Formatter on the Factory's output.
func (f *Factory) Cout() *cout.Formatter {
	return cout.New(f.out, f.backend)
}

// Println is cout.Println on the Factory's output.
func (f *Factory) Println(values ...any) error {
	return cout.Println(f.out, f.backend, values...)
}

// Printfln is cout.Printfln on the Factory's output.
func (f *Factory) Printfln(format string, values ...any) error {
	return cout.Printfln(f.out, f.backend, format, values...)
}

// Manipulator shortcuts.

func (f *Factory) Fixed() cout.Attribute { return cout.Fixed{} }
func (f *Factory) Scientific() cout.Attribute { return cout.Scientific{} }
func (f *Factory) SetPrecision(n int) cout.Attribute { return cout.SetPrecision(n) }
func (f *Factory) SetW(n int) cout.Attribute { return cout.SetW(n) }
func (f *Factory) Left() cout.Attribute { return cout.Left{} }
func (f *Factory) Right() cout.Attribute { return cout.Right{} }
func (f *Factory) SetFill(r rune) cout.Attribute { return cout.SetFill(r) }
func (f *Factory) Endl() string { return cout.Endl }

// Cout returns a Formatter on os.Stdout with the default backend.
func Cout() *cout.Formatter {
	return cout.New(os.Stdout, Default())
}
