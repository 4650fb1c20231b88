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

// Package gearlog builds the zap loggers used by gearing binaries and
// provides test helpers for gearing events.
package gearlog

import (
	"io"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/gearing/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger for the given configuration that writes to w.
// Binaries pass stderr so that stdout is left for results.
//
// An empty level means info, or debug for development configurations.
func New(cfg config.Logging, w io.Writer) (*zap.Logger, error) {
	lvl, err := parseLevel(cfg)
	if err != nil {
		return nil, err
	}

	var (
		enc  zapcore.Encoder
		opts []zap.Option
	)
	if cfg.Development {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	ws := zapcore.Lock(zapcore.AddSync(w))
	opts = append(opts, zap.AddCaller(), zap.ErrorOutput(ws))
	return zap.New(zapcore.NewCore(enc, ws, lvl), opts...), nil
}

// Sync flushes log. The EINVAL and ENOTTY errors returned when syncing a
// terminal or pipe are ignored.
func Sync(log *zap.Logger) error {
	err := log.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}

func parseLevel(cfg config.Logging) (zapcore.Level, error) {
	if cfg.Level == "" {
		if cfg.Development {
			return zapcore.DebugLevel, nil
		}
		return zapcore.InfoLevel, nil
	}

	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return lvl, errors.Wrap(err, "parse log level")
	}
	return lvl, nil
}
