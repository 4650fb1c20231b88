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

// Package gearevent defines the events emitted while gear setups are built
// and evaluated, and the loggers that record them.
//
// # Choosing a Logger
//
// Library code defaults to NopLogger. Wire in a ZapLogger to share the
// application's zap logger:
//
//	evaluator := gearfx.NewEvaluator(gearfx.Params{
//		Logger: log,
//		Events: &gearevent.ZapLogger{Logger: log},
//	})
//
// ConsoleLogger writes short human-readable lines and is handy while
// developing.
//
// # Implementing a Custom Logger
//
// Implement the Logger interface. Event is a closed union; use a type
// switch over the types in event.go.
package gearevent
