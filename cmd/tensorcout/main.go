// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Command tensorcout applies one tensor operator to JSON arrays and prints
// the result through a cout formatter.
//
// Usage:
//
//	tensorcout [flags] ARRAY
//	tensorcout version
//
// Examples:
//
//	tensorcout -op pow -rhs '[5,6]' '[[1,2],[3,4]]'          # [17,39]
//	tensorcout -op t '[[1,2],[3,4]]'                         # [[1,3],[2,4]]
//	tensorcout -dtype int32 -width 10 -fill 0 '[1,2]'        # [0000000001,0000000002]
//	tensorcout -op div -rhs 3 -fixed -precision 3 '[1,2]'    # [0.333,0.667]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/born-ml/tensorcout/cout"
	"github.com/born-ml/tensorcout/factory"
	"github.com/born-ml/tensorcout/tensor"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const version = "v0.1.0-dev"

// config holds the parsed command line flags.
type config struct {
	op         string
	rhs        string
	dtype      string
	fixed      bool
	scientific bool
	precision  int
	width      int
	left       bool
	fill       string
	summary    bool
}

func registerFlags(fs *flag.FlagSet) *config {
	cfg := &config{}
	fs.StringVar(&cfg.op, "op", "", "Operator to apply: add, sub, mul, div, pow or t. Empty prints ARRAY as is.")
	fs.StringVar(&cfg.rhs, "rhs", "", "Right hand side operand: a JSON number or array.")
	fs.StringVar(&cfg.dtype, "dtype", "", "Element type of the arrays (float32 when empty).")
	fs.BoolVar(&cfg.fixed, "fixed", false, "Print numbers in fixed-point notation.")
	fs.BoolVar(&cfg.scientific, "scientific", false, "Print numbers in exponent notation.")
	fs.IntVar(&cfg.precision, "precision", -1, "Number of digits; negative leaves it unset.")
	fs.IntVar(&cfg.width, "width", 0, "Minimum field width of every number; 0 leaves it unset.")
	fs.BoolVar(&cfg.left, "left", false, "Align numbers to the left of their field.")
	fs.StringVar(&cfg.fill, "fill", "", "Single character padding numbers to their width.")
	fs.BoolVar(&cfg.summary, "summary", false, "Also print the dtype, shape and size of the result.")
	return cfg
}

func main() {
	klog.InitFlags(nil)
	must.M(flag.Set("logtostderr", "true"))
	cfg := registerFlags(flag.CommandLine)
	flag.Parse()

	if flag.Arg(0) == "version" {
		fmt.Printf("tensorcout %s\n", version)
		return
	}
	if err := run(cfg, flag.Args(), os.Stdout); err != nil {
		klog.Fatalf("Failed with error: %+v", err)
	}
}

func run(cfg *config, args []string, out io.Writer) error {
	if len(args) != 1 {
		return errors.Errorf("expected exactly one ARRAY argument, got %d", len(args))
	}
	dtype := tensor.Auto
	if cfg.dtype != "" {
		var err error
		if dtype, err = tensor.ParseDataType(cfg.dtype); err != nil {
			return err
		}
	}

	f := factory.New(factory.WithOutput(out))
	x, err := parseTensor(f, args[0], dtype)
	if err != nil {
		return err
	}
	klog.V(1).Infof("tensorcout: %s %s on %s", cfg.op, x.Summary(), f.Backend().Name())

	result, err := apply(f, cfg, x, dtype)
	if err != nil {
		return err
	}

	attrs, err := attributes(cfg)
	if err != nil {
		return err
	}
	values := append(attrs, result, cout.Endl)
	if cfg.summary {
		values = append(values, result.Summary(), cout.Endl)
	}
	return f.Cout().Put(values...).Err()
}

// apply runs cfg.op on x.
func apply(f *factory.Factory, cfg *config, x *tensor.Tensor, dtype tensor.DataType) (*tensor.Tensor, error) {
	switch cfg.op {
	case "":
		return x, nil
	case "t":
		return x.Xor(tensor.T)
	}

	if cfg.rhs == "" {
		return nil, errors.Errorf("-op %s needs -rhs", cfg.op)
	}
	rhs, err := parseOperand(f, cfg.rhs, dtype)
	if err != nil {
		return nil, err
	}
	switch cfg.op {
	case "add":
		return x.Add(rhs)
	case "sub":
		return x.Sub(rhs)
	case "mul":
		return x.Mul(rhs)
	case "div":
		return x.Div(rhs)
	case "pow":
		return x.Pow(rhs)
	}
	return nil, errors.Errorf("unknown -op %q, want add, sub, mul, div, pow or t", cfg.op)
}

// attributes translates the formatting flags into cout manipulators.
func attributes(cfg *config) ([]any, error) {
	var attrs []any
	if cfg.fixed {
		attrs = append(attrs, cout.Fixed{})
	}
	if cfg.scientific {
		attrs = append(attrs, cout.Scientific{})
	}
	if cfg.precision >= 0 {
		attrs = append(attrs, cout.SetPrecision(cfg.precision))
	}
	if cfg.width > 0 {
		attrs = append(attrs, cout.SetW(cfg.width))
	}
	if cfg.left {
		attrs = append(attrs, cout.Left{})
	}
	if cfg.fill != "" {
		if utf8.RuneCountInString(cfg.fill) != 1 {
			return nil, errors.Errorf("-fill must be a single character, got %q", cfg.fill)
		}
		r, _ := utf8.DecodeRuneInString(cfg.fill)
		attrs = append(attrs, cout.SetFill(r))
	}
	return attrs, nil
}

func decodeJSON(text string) (any, error) {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, errors.Wrapf(err, "parsing %q", text)
	}
	return value, nil
}

func parseTensor(f *factory.Factory, text string, dtype tensor.DataType) (*tensor.Tensor, error) {
	value, err := decodeJSON(text)
	if err != nil {
		return nil, err
	}
	return f.Tensor(value, dtype)
}

// parseOperand reads a JSON number as a Scalar and anything else as a tensor.
func parseOperand(f *factory.Factory, text string, dtype tensor.DataType) (tensor.Operand, error) {
	value, err := decodeJSON(text)
	if err != nil {
		return nil, err
	}
	if v, ok := value.(float64); ok {
		return tensor.Scalar(v), nil
	}
	t, err := f.Tensor(value, dtype)
	if err != nil {
		return nil, err
	}
	return t, nil
}
