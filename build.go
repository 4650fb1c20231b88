// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package gearing

import (
	"errors"
	"fmt"

	"go.uber.org/gearing/internal/framework"
)

// BuildParams holds the named inputs for Build.
type BuildParams struct {
	Chainring int
	Cog       int
	Wheel     Wheel
}

// Build is the one place that knows how to construct the upstream
// framework's gear. The framework only takes positional arguments and
// reports its own errors; Build hides both, so callers use named
// parameters and see ErrDivisionByZero like everywhere else in this
// package.
func Build(p BuildParams) Calculator {
	return wrappedGear{
		g:     framework.NewGear(p.Chainring, p.Cog, p.Wheel),
		wheel: p.Wheel,
	}
}

type wrappedGear struct {
	g     *framework.Gear
	wheel Wheel
}

// Wheel returns the Wheel handed to the framework.
func (w wrappedGear) Wheel() Wheel { return w.wheel }

func (w wrappedGear) Ratio() (float64, error) {
	r, err := w.g.Ratio()
	return r, w.translate(err)
}

func (w wrappedGear) GearInches() (float64, error) {
	v, err := w.g.GearInches()
	return v, w.translate(err)
}

func (w wrappedGear) translate(err error) error {
	if errors.Is(err, framework.ErrZeroCog) {
		return fmt.Errorf("gear ratio %d/%d: %w", w.g.Chainring(), w.g.Cog(), ErrDivisionByZero)
	}
	return err
}
