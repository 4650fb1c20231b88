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

// Package framework stands in for a third-party gearing library whose API
// we do not own. Its constructor is positional and its errors are its own;
// code outside this module should reach it only through gearing.Build.
package framework

import "errors"

// ErrZeroCog is returned when a ratio is requested for a zero-tooth cog.
var ErrZeroCog = errors.New("framework: cog has no teeth")

// Wheel is anything with a diameter.
type Wheel interface {
	Diameter() float64
}

// Gear is the framework's gear.
type Gear struct {
	chainring int
	cog       int
	wheel     Wheel
}

// NewGear builds a Gear. Arguments must be passed in this order.
func NewGear(chainring, cog int, wheel Wheel) *Gear {
	return &Gear{chainring: chainring, cog: cog, wheel: wheel}
}

// Chainring is the front tooth count.
func (g *Gear) Chainring() int { return g.chainring }

// Cog is the rear tooth count.
func (g *Gear) Cog() int { return g.cog }

// Ratio is chainring over cog.
func (g *Gear) Ratio() (float64, error) {
	if g.cog == 0 {
		return 0, ErrZeroCog
	}
	return float64(g.chainring) / float64(g.cog), nil
}

// GearInches is Ratio times the wheel diameter.
func (g *Gear) GearInches() (float64, error) {
	r, err := g.Ratio()
	if err != nil {
		return 0, err
	}
	return r * g.wheel.Diameter(), nil
}
