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

package config

// Strategy names how a gear gets its wheel.
type Strategy string

// Supported strategies.
const (
	// Ordered passes a prebuilt wheel to a positional constructor.
	Ordered Strategy = "ordered"
	// Named passes a prebuilt wheel through a parameter struct.
	Named Strategy = "named"
	// Deferred hands over raw rim and tire sizes; the gear builds its own
	// wheel on first use.
	Deferred Strategy = "deferred"
	// Wrapped goes through the adapter around the upstream framework gear.
	Wrapped Strategy = "wrapped"
)

// Strategies lists every supported Strategy.
var Strategies = []Strategy{Ordered, Named, Deferred, Wrapped}

// Valid reports whether s is a supported Strategy.
func (s Strategy) Valid() bool {
	for _, v := range Strategies {
		if s == v {
			return true
		}
	}
	return false
}

func (s Strategy) String() string { return string(s) }
