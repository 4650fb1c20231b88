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

// Package gearing computes bicycle gear inches.
//
// A Wheel knows its diameter. A gear combines a chainring and cog tooth
// count with a Wheel; its gear inches are the ratio chainring/cog scaled
// by the wheel diameter.
//
// # Building Gears
//
// There are several ways to hand a gear its wheel, and all of them agree
// on the result:
//
//	wheel := gearing.NewWheel(26, 1.5)
//
//	gearing.NewGear(52, 11, wheel)                                      // positional
//	gearing.New(gearing.GearParams{Cog: 11, Chainring: 52, Wheel: wheel}) // named
//	gearing.NewLazyGear(52, 11, 26, 1.5)                                // wheel built on first use
//	gearing.Build(gearing.BuildParams{Chainring: 52, Cog: 11, Wheel: wheel})
//
// Each reports 137.0909090909091 gear inches.
//
// Build wraps an upstream gear type whose positional constructor we do not
// control. Keep calls to that constructor behind Build so that a change
// upstream touches one function.
//
// # Errors
//
// A cog with zero teeth has no ratio. Ratio and GearInches return an error
// wrapping ErrDivisionByZero instead of an infinite or NaN result.
// Constructors never fail.
package gearing
