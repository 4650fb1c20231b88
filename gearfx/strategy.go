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

package gearfx

import (
	"github.com/uber-go/tally/v4"
	"go.uber.org/dig"
	"go.uber.org/gearing"
	"go.uber.org/gearing/config"
	"go.uber.org/gearing/gearevent"
)

// wheeler is satisfied by every Calculator the builders return.
type wheeler interface {
	Wheel() gearing.Wheel
}

type calculatorParams struct {
	dig.In

	Setup  config.Setup
	Wheel  gearing.Wheel
	Scope  tally.Scope
	Events gearevent.Logger
}

type lazyParams struct {
	dig.In

	Setup  config.Setup
	Scope  tally.Scope
	Events gearevent.Logger
}

var _builders = map[config.Strategy]interface{}{
	config.Ordered:  newOrderedGear,
	config.Named:    newNamedGear,
	config.Deferred: newDeferredGear,
	config.Wrapped:  newWrappedGear,
}

func newWheel(s config.Setup) gearing.Wheel {
	return gearing.NewWheel(s.Rim, s.Tire)
}

func newOrderedGear(p calculatorParams) gearing.Calculator {
	return gearing.NewGear(p.Setup.Chainring, p.Setup.Cog, p.Wheel)
}

func newNamedGear(p calculatorParams) gearing.Calculator {
	return gearing.New(gearing.GearParams{
		Chainring: p.Setup.Chainring,
		Cog:       p.Setup.Cog,
		Wheel:     p.Wheel,
	})
}

// The deferred gear never sees the container's Wheel; it builds its own.
func newDeferredGear(p lazyParams) gearing.Calculator {
	return gearing.NewLazy(gearing.LazyParams{
		Chainring: p.Setup.Chainring,
		Cog:       p.Setup.Cog,
		Rim:       p.Setup.Rim,
		Tire:      p.Setup.Tire,
		Events:    p.Events,
		Scope:     p.Scope,
	})
}

func newWrappedGear(p calculatorParams) gearing.Calculator {
	return gearing.Build(gearing.BuildParams{
		Chainring: p.Setup.Chainring,
		Cog:       p.Setup.Cog,
		Wheel:     p.Wheel,
	})
}
