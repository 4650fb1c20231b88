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
	"fmt"

	"github.com/uber-go/tally/v4"
	"go.uber.org/dig"
	"go.uber.org/fx"
	"go.uber.org/gearing"
	"go.uber.org/gearing/config"
	"go.uber.org/gearing/gearevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Params defines the dependencies of an Evaluator.
type Params struct {
	fx.In

	Logger *zap.Logger
	Scope  tally.Scope      `optional:"true"`
	Events gearevent.Logger `optional:"true"`
}

// Result is the outcome of evaluating one gear setup.
type Result struct {
	Name          string
	Strategy      config.Strategy
	Ratio         float64
	Diameter      float64
	Circumference float64
	GearInches    float64
}

// Evaluator builds gears from configured setups and computes their gear
// inches.
type Evaluator struct {
	log    *zap.Logger
	scope  tally.Scope
	events gearevent.Logger
}

// NewEvaluator builds an Evaluator. Events default to the zap logger and
// metrics default to a no-op scope.
func NewEvaluator(p Params) *Evaluator {
	e := &Evaluator{
		log:    p.Logger,
		scope:  p.Scope,
		events: p.Events,
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	if e.scope == nil {
		e.scope = tally.NoopScope
	}
	if e.events == nil {
		e.events = &gearevent.ZapLogger{Logger: e.log}
	}
	return e
}

// Evaluate builds the gear described by s with the strategy it names and
// reports its measurements.
func (e *Evaluator) Evaluate(s config.Setup) (Result, error) {
	e.events.LogEvent(&gearevent.Evaluating{Name: s.Name, Strategy: s.Strategy.String()})

	scope := e.scope.Tagged(map[string]string{"strategy": s.Strategy.String()})
	scope.Counter("evaluations").Inc(1)

	res, err := e.evaluate(s, scope)
	e.events.LogEvent(&gearevent.Evaluated{
		Name:       s.Name,
		Strategy:   s.Strategy.String(),
		Ratio:      res.Ratio,
		GearInches: res.GearInches,
		Err:        err,
	})
	if err != nil {
		scope.Counter("failures").Inc(1)
		return Result{}, err
	}
	return res, nil
}

// EvaluateAll evaluates every setup in order. Results for setups that
// succeed are returned even if others fail; failures are combined into the
// returned error.
func (e *Evaluator) EvaluateAll(setups []config.Setup) ([]Result, error) {
	var (
		results []Result
		errs    error
	)
	for _, s := range setups {
		res, err := e.Evaluate(s)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("evaluate %q: %w", s.Name, err))
			continue
		}
		results = append(results, res)
	}
	return results, errs
}

func (e *Evaluator) evaluate(s config.Setup, scope tally.Scope) (Result, error) {
	build, ok := _builders[s.Strategy]
	if !ok {
		return Result{}, fmt.Errorf("unknown strategy %q", s.Strategy)
	}

	c := dig.New()
	err := multierr.Combine(
		c.Provide(func() config.Setup { return s }),
		c.Provide(func() tally.Scope { return scope }),
		c.Provide(func() gearevent.Logger { return e.events }),
		c.Provide(newWheel),
		c.Provide(build),
	)
	if err != nil {
		return Result{}, err
	}

	var res Result
	err = c.Invoke(func(calc gearing.Calculator) error {
		inches, err := calc.GearInches()
		if err != nil {
			return err
		}
		ratio, err := calc.Ratio()
		if err != nil {
			return err
		}
		wheel := calc.(wheeler).Wheel()

		res = Result{
			Name:          s.Name,
			Strategy:      s.Strategy,
			Ratio:         ratio,
			Diameter:      wheel.Diameter(),
			Circumference: wheel.Circumference(),
			GearInches:    inches,
		}
		return nil
	})
	return res, err
}
