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
	"sync"

	"github.com/uber-go/tally/v4"
	"go.uber.org/gearing/gearevent"
)

// LazyParams holds the inputs for NewLazy. Instead of a Wheel, the caller
// hands over raw rim and tire sizes and the LazyGear builds its own Wheel
// when one is first needed.
type LazyParams struct {
	Chainring int
	Cog       int
	Rim       float64
	Tire      float64

	// Events, if set, receives a gearevent.WheelBuilt when the Wheel is
	// built.
	Events gearevent.Logger

	// Scope, if set, counts built wheels under "wheels_built".
	Scope tally.Scope
}

// LazyGear is a Gear that derives its Wheel from raw measurements.
//
// The Wheel is built at most once per LazyGear, even when Wheel, Ratio or
// GearInches are called from several goroutines at the same time.
type LazyGear struct {
	chainring int
	cog       int
	rim       float64
	tire      float64

	events gearevent.Logger
	built  tally.Counter

	once  sync.Once
	wheel Wheel
}

var _ Calculator = (*LazyGear)(nil)

// NewLazy builds a LazyGear from named parameters. No Wheel is built yet.
func NewLazy(p LazyParams) *LazyGear {
	g := &LazyGear{
		chainring: p.Chainring,
		cog:       p.Cog,
		rim:       p.Rim,
		tire:      p.Tire,
		events:    p.Events,
	}
	if g.events == nil {
		g.events = gearevent.NopLogger
	}
	if p.Scope != nil {
		g.built = p.Scope.Counter("wheels_built")
	}
	return g
}

// NewLazyGear is the positional form of NewLazy.
func NewLazyGear(chainring, cog int, rim, tire float64) *LazyGear {
	return NewLazy(LazyParams{
		Chainring: chainring,
		Cog:       cog,
		Rim:       rim,
		Tire:      tire,
	})
}

// Chainring is the tooth count of the front gear.
func (g *LazyGear) Chainring() int { return g.chainring }

// Cog is the tooth count of the rear gear.
func (g *LazyGear) Cog() int { return g.cog }

// Rim is the rim diameter the Wheel will be built with.
func (g *LazyGear) Rim() float64 { return g.rim }

// Tire is the tire thickness the Wheel will be built with.
func (g *LazyGear) Tire() float64 { return g.tire }

// Wheel returns the LazyGear's Wheel, building it on the first call.
func (g *LazyGear) Wheel() Wheel {
	g.once.Do(func() {
		g.wheel = NewWheel(g.rim, g.tire)
		if g.built != nil {
			g.built.Inc(1)
		}
		g.events.LogEvent(&gearevent.WheelBuilt{
			Rim:      g.rim,
			Tire:     g.tire,
			Diameter: g.wheel.Diameter(),
		})
	})
	return g.wheel
}

// Ratio returns chainring/cog as a real quotient. It fails with
// ErrDivisionByZero if the cog has no teeth. Ratio never builds the Wheel.
func (g *LazyGear) Ratio() (float64, error) {
	return ratio(g.chainring, g.cog)
}

// GearInches returns Ratio multiplied by the wheel diameter.
func (g *LazyGear) GearInches() (float64, error) {
	r, err := g.Ratio()
	if err != nil {
		return 0, err
	}
	return r * g.Wheel().Diameter(), nil
}
