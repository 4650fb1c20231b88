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

import "math"

// Wheel describes a bicycle wheel by its rim and tire sizes. Wheels are
// immutable values; copy them freely.
type Wheel struct {
	rim  float64
	tire float64
}

// NewWheel builds a Wheel from a rim diameter and a tire thickness.
//
// No validation is performed. Zero and negative sizes are accepted and flow
// through Diameter and Circumference unchanged.
func NewWheel(rim, tire float64) Wheel {
	return Wheel{rim: rim, tire: tire}
}

// Rim reports the rim diameter the Wheel was built with.
func (w Wheel) Rim() float64 { return w.rim }

// Tire reports the tire thickness the Wheel was built with.
func (w Wheel) Tire() float64 { return w.tire }

// Diameter is the rim plus a tire's thickness on either side.
func (w Wheel) Diameter() float64 {
	return w.rim + w.tire*2
}

// Circumference is the distance covered by one full turn of the Wheel.
func (w Wheel) Circumference() float64 {
	return w.Diameter() * math.Pi
}
