// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cout_test

import (
	"os"

	"github.com/born-ml/tensorcout/backend/cpu"
	"github.com/born-ml/tensorcout/cout"
	"github.com/born-ml/tensorcout/tensor"
	"github.com/janpfeifer/must"
)

func Example() {
	b := cpu.New()
	x := must.M1(tensor.New(b, []float32{1234.125, 2345.125}))

	cout.New(os.Stdout, b).Put(x, cout.Endl)
	cout.New(os.Stdout, b).Put(cout.Fixed{}, cout.SetPrecision(3), x, cout.Endl)
	cout.New(os.Stdout, b).Put(cout.Scientific{}, x, cout.Endl)
	cout.New(os.Stdout, b).Put(cout.SetPrecision(3), x, cout.Endl)
	// Output:
	// [1234.125,2345.125]
	// [1234.125,2345.125]
	// [1.234125e+3,2.345125e+3]
	// [1.23e+3,2.35e+3]
}

func ExampleFormatter_Put() {
	out := cout.New(os.Stdout, nil)
	out.Put(cout.SetW(6), cout.SetFill('0'), 42, cout.Endl)
	out.Put(cout.Left{}, 42, "|", cout.Endl)
	// Output:
	// 000042
	// 420000|
}

func ExamplePrintfln() {
	b := cpu.New()
	m := must.M1(tensor.New(b, [][]float64{{1, 2}, {3, 4}}, tensor.Float64))
	must.M(cout.Printfln(os.Stdout, b, "%4.1f", "m =", m))
	// Output:
	// m = [
	//  [ 1.0, 2.0],
	//  [ 3.0, 4.0]
	// ]
}
