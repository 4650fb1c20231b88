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
	"log/slog"
)

var _ Logger = (*SlogLogger)(nil)

// SlogLogger is a gearing event logger that logs events using a slog
// logger.
type SlogLogger struct {
	Logger *slog.Logger
}

// LogEvent logs the given event to the provided slog logger.
func (l *SlogLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *WheelBuilt:
		l.Logger.Debug("wheel built",
			slog.Float64("rim", e.Rim),
			slog.Float64("tire", e.Tire),
			slog.Float64("diameter", e.Diameter),
		)
	case *Evaluating:
		l.Logger.Debug("evaluating",
			slog.String("setup", e.Name),
			slog.String("strategy", e.Strategy),
		)
	case *Evaluated:
		if e.Err != nil {
			l.Logger.Error("evaluation failed",
				slog.String("setup", e.Name),
				slog.String("strategy", e.Strategy),
				slog.Any("error", e.Err),
			)
		} else {
			l.Logger.Info("evaluated",
				slog.String("setup", e.Name),
				slog.String("strategy", e.Strategy),
				slog.Float64("ratio", e.Ratio),
				slog.Float64("gearInches", e.GearInches),
			)
		}
	case *ConfigLoaded:
		if e.Err != nil {
			l.Logger.Error("config load failed",
				slog.String("source", e.Source),
				slog.Any("error", e.Err),
			)
		} else {
			l.Logger.Info("config loaded",
				slog.String("source", e.Source),
				slog.Int("setups", e.Setups),
			)
		}
	}
}
