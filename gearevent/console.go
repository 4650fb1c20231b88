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

import (
	"fmt"
	"io"
)

// ConsoleLogger is a gearing event logger that attempts to write
// human-readable messages to the console.
//
// Use this during development.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	fmt.Fprintf(l.W, "[Gearing] "+msg+"\n", args...)
}

// LogEvent logs the given event to the provided writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *WheelBuilt:
		l.logf("WHEEL\t\trim=%v tire=%v diameter=%v", e.Rim, e.Tire, e.Diameter)
	case *Evaluating:
		l.logf("EVALUATE\t%s (%s)", e.Name, e.Strategy)
	case *Evaluated:
		if e.Err != nil {
			l.logf("ERROR\t\t%s (%s) failed: %v", e.Name, e.Strategy, e.Err)
		} else {
			l.logf("RESULT\t\t%s (%s) ratio=%v gear_inches=%v", e.Name, e.Strategy, e.Ratio, e.GearInches)
		}
	case *ConfigLoaded:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to load config from %s: %v", e.Source, e.Err)
		} else {
			l.logf("CONFIG\t\t%d setup(s) from %s", e.Setups, e.Source)
		}
	}
}
