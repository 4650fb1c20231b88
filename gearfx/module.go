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
	"context"
	"time"

	"github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/gearing/config"
	"go.uber.org/zap"
)

// Module provides an *Evaluator.
var Module = fx.Module("gearing",
	fx.Provide(NewEvaluator),
	fx.Decorate(func(log *zap.Logger) *zap.Logger {
		return log.Named("gearing")
	}),
)

// reportInterval is how often the root scope flushes to its reporter.
const reportInterval = time.Second

// NewScope builds a root tally scope for the given configuration. The
// scope is closed when the application stops.
func NewScope(cfg config.Metrics, lc fx.Lifecycle) tally.Scope {
	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:   cfg.Prefix,
		Reporter: tally.NullStatsReporter,
	}, reportInterval)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return closer.Close()
		},
	})
	return scope
}
