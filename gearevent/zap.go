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
	"go.uber.org/zap"
)

// ZapLogger is a gearing event logger that logs events to Zap.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *WheelBuilt:
		l.Logger.Debug("wheel built",
			zap.Float64("rim", e.Rim),
			zap.Float64("tire", e.Tire),
			zap.Float64("diameter", e.Diameter),
		)
	case *Evaluating:
		l.Logger.Debug("evaluating",
			zap.String("setup", e.Name),
			zap.String("strategy", e.Strategy),
		)
	case *Evaluated:
		if e.Err != nil {
			l.Logger.Error("evaluation failed",
				zap.String("setup", e.Name),
				zap.String("strategy", e.Strategy),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("evaluated",
				zap.String("setup", e.Name),
				zap.String("strategy", e.Strategy),
				zap.Float64("ratio", e.Ratio),
				zap.Float64("gearInches", e.GearInches),
			)
		}
	case *ConfigLoaded:
		if e.Err != nil {
			l.Logger.Error("config load failed",
				zap.String("source", e.Source),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("config loaded",
				zap.String("source", e.Source),
				zap.Int("setups", e.Setups),
			)
		}
	}
}
