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

// gearinches prints the gear inches of every configured gear setup, one
// per line. Without -config it evaluates the canonical 52x11 gear on a
// 26" rim with a 1.5" tire.
//
//	$ gearinches
//	137.0909090909091
//
// Logs go to stderr. The exit code is non-zero if any setup fails.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/gearing/config"
	"go.uber.org/gearing/gearevent"
	"go.uber.org/gearing/gearfx"
	"go.uber.org/gearing/internal/gearlog"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configPath is the -config flag. Empty means config.Default.
type configPath string

func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("gearinches", flag.ContinueOnError)
	flags.SetOutput(stderr)
	path := flags.String("config", "", "YAML file of gear setups")
	if err := flags.Parse(args); err != nil {
		return err
	}

	app := fx.New(
		fx.Supply(configPath(*path)),
		fx.Provide(
			func(p configPath) (config.Config, error) {
				return loadConfig(p, stderr)
			},
			splitConfig,
			func(cfg config.Logging, lc fx.Lifecycle) (*zap.Logger, error) {
				return newLogger(cfg, lc, stderr)
			},
			gearfx.NewScope,
			func(cfg config.Logging, log *zap.Logger) (gearevent.Logger, error) {
				return gearlog.NewEvents(cfg, log, stderr)
			},
		),
		gearfx.Module,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(func(lc fx.Lifecycle, e *gearfx.Evaluator, cfg config.Config, events gearevent.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					events.LogEvent(&gearevent.ConfigLoaded{Source: cfg.Source, Setups: len(cfg.Gears)})
					return report(stdout, e, cfg.Gears)
				},
			})
		}),
	)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	return app.Stop(stopCtx)
}

func loadConfig(path configPath, stderr io.Writer) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.LoadFile(string(path))
	if err != nil {
		// No logger exists yet; its settings live in this file.
		(&gearevent.ConsoleLogger{W: stderr}).LogEvent(&gearevent.ConfigLoaded{
			Source: string(path),
			Err:    err,
		})
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the application logger and flushes it when the
// application stops.
func newLogger(cfg config.Logging, lc fx.Lifecycle, stderr io.Writer) (*zap.Logger, error) {
	log, err := gearlog.New(cfg, stderr)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return gearlog.Sync(log)
		},
	})
	return log, nil
}

func splitConfig(cfg config.Config) (config.Logging, config.Metrics) {
	return cfg.Logging, cfg.Metrics
}

// report writes the gear inches of every setup that evaluates cleanly.
func report(w io.Writer, e *gearfx.Evaluator, setups []config.Setup) error {
	results, err := e.EvaluateAll(setups)
	for _, r := range results {
		if _, werr := fmt.Fprintln(w, strconv.FormatFloat(r.GearInches, 'f', -1, 64)); werr != nil {
			return werr
		}
	}
	return err
}
