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

package gearevent

// Event defines an event emitted by gearing.
type Event interface {
	event() // Only gearevent can implement this interface.
}

func (*WheelBuilt) event()   {}
func (*Evaluating) event()   {}
func (*Evaluated) event()    {}
func (*ConfigLoaded) event() {}

// WheelBuilt is emitted when a lazily constructed Wheel is built. It fires
// at most once per gear.
type WheelBuilt struct {
	Rim      float64
	Tire     float64
	Diameter float64
}

// Evaluating is emitted before a gear setup is evaluated.
type Evaluating struct {
	// Name of the setup being evaluated.
	Name string
	// Strategy used to construct the gear.
	Strategy string
}

// Evaluated is emitted after a gear setup has been evaluated.
type Evaluated struct {
	Name       string
	Strategy   string
	Ratio      float64
	GearInches float64
	// Err is non-nil if the evaluation failed.
	Err error
}

// ConfigLoaded is emitted once gear setups have been read.
type ConfigLoaded struct {
	// Source is the file the configuration came from, or "default".
	Source string
	// Setups is the number of gear setups found.
	Setups int
	// Err is non-nil if the configuration could not be loaded.
	Err error
}
