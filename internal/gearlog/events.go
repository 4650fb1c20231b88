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

package gearlog

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"go.uber.org/gearing/config"
	"go.uber.org/gearing/gearevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewEvents picks the gearing event logger for the given configuration.
// Production configurations share the zap logger. Development
// configurations write colorized events to w through tint, filtered by the
// configured level.
func NewEvents(cfg config.Logging, log *zap.Logger, w io.Writer) (gearevent.Logger, error) {
	if !cfg.Development {
		return &gearevent.ZapLogger{Logger: log}, nil
	}

	lvl, err := parseLevel(cfg)
	if err != nil {
		return nil, err
	}

	return &gearevent.SlogLogger{
		Logger: slog.New(tint.NewHandler(w, &tint.Options{
			Level:      slogLevel(lvl),
			TimeFormat: time.Kitchen,
		})),
	}, nil
}

// slogLevel maps a zap level onto the nearest slog level. Levels above
// error (dpanic, panic, fatal) log as errors.
func slogLevel(l zapcore.Level) slog.Level {
	switch {
	case l <= zapcore.DebugLevel:
		return slog.LevelDebug
	case l == zapcore.InfoLevel:
		return slog.LevelInfo
	case l == zapcore.WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
