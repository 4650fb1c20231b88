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

import "fmt"

// Calculator is anything that can report a gear ratio and the gear inches
// that ratio yields on its wheel.
//
// Gear, LazyGear, and the values returned by Build all satisfy Calculator.
type Calculator interface {
	Ratio() (float64, error)
	GearInches() (float64, error)
}

// GearParams holds the named inputs for New. Fields may be set in any order.
type GearParams struct {
	Chainring int
	Cog       int
	Wheel     Wheel
}

// Gear pairs a chainring and cog with a Wheel that was built by the caller.
type Gear struct {
	chainring int
	cog       int
	wheel     Wheel
}

var _ Calculator = (*Gear)(nil)

// New builds a Gear from named parameters.
//
//	gear := gearing.New(gearing.GearParams{
//		Cog:       11,
//		Chainring: 52,
//		Wheel:     gearing.NewWheel(26, 1.5),
//	})
//
// New does not validate its inputs. A zero Cog is reported when the ratio is
// evaluated.
func New(p GearParams) *Gear {
	return &Gear{
		chainring: p.Chainring,
		cog:       p.Cog,
		wheel:     p.Wheel,
	}
}

// NewGear builds a Gear from positional arguments. Callers must pass them in
// exactly this order; prefer New where the call site allows it.
func NewGear(chainring, cog int, wheel Wheel) *Gear {
	return New(GearParams{Chainring: chainring, Cog: cog, Wheel: wheel})
}

// Chainring is the tooth count of the front gear.
func (g *Gear) Chainring() int { return g.chainring }

// Cog is the tooth count of the rear gear.
func (g *Gear) Cog() int { return g.cog }

// Wheel returns the Wheel the Gear was built with.
func (g *Gear) Wheel() Wheel { return g.wheel }

// Ratio returns chainring/cog as a real quotient. It fails with
// ErrDivisionByZero if the cog has no teeth.
func (g *Gear) Ratio() (float64, error) {
	return ratio(g.chainring, g.cog)
}

// GearInches returns Ratio multiplied by the wheel diameter.
func (g *Gear) GearInches() (float64, error) {
	return gearInches(g, g.wheel)
}

// ratio divides chainring by cog as real numbers.
func ratio(chainring, cog int) (float64, error) {
	if cog == 0 {
		return 0, fmt.Errorf("gear ratio %d/%d: %w", chainring, cog, ErrDivisionByZero)
	}
	return float64(chainring) / float64(cog), nil
}

func gearInches(c Calculator, w Wheel) (float64, error) {
	r, err := c.Ratio()
	if err != nil {
		return 0, err
	}
	return r * w.Diameter(), nil
}
