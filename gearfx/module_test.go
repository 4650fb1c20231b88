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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/gearing/config"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestModule(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	var e *Evaluator
	app := fxtest.New(t,
		fx.Supply(zap.New(core)),
		Module,
		fx.Populate(&e),
	)
	defer app.RequireStart().RequireStop()

	res, err := e.Evaluate(config.Default().Gears[0])
	require.NoError(t, err)
	assert.InDelta(t, 137.0909090909091, res.GearInches, 1e-9)

	entries := logs.FilterMessage("evaluated").AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "gearing", entries[0].LoggerName)
}

func TestNewScope(t *testing.T) {
	var scope tally.Scope
	app := fxtest.New(t,
		fx.Supply(config.Metrics{Prefix: "bikes"}, zap.NewNop()),
		fx.Provide(NewScope),
		Module,
		fx.Populate(&scope),
	)
	app.RequireStart()

	assert.NotNil(t, scope)
	scope.Counter("evaluations").Inc(1)

	app.RequireStop()
}

func TestModuleWithStaticConfig(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		var (
			e   *Evaluator
			cfg config.Config
		)
		app := fxtest.New(t,
			fx.Provide(config.Static(config.Config{
				Gears: []config.Setup{canonical(config.Named), canonical(config.Wrapped)},
			})),
			fx.Supply(zap.NewNop()),
			Module,
			fx.Populate(&e, &cfg),
		)
		defer app.RequireStart().RequireStop()

		assert.Equal(t, "static", cfg.Source)

		results, err := e.EvaluateAll(cfg.Gears)
		require.NoError(t, err)
		require.Len(t, results, 2)
		for _, r := range results {
			assert.InDelta(t, 137.0909090909091, r.GearInches, 1e-9, r.Name)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		var cfg config.Config
		app := fx.New(
			fx.NopLogger,
			fx.Provide(config.Static(config.Config{})),
			fx.Populate(&cfg),
		)

		err := app.Err()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no gears configured")
	})
}
