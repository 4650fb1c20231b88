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

// Package config loads the gear setups evaluated by the gearinches command.
//
// Configuration is YAML:
//
//	logging:
//	  level: info
//	  development: false
//	metrics:
//	  prefix: gearing
//	gears:
//	  - name: canonical
//	    strategy: deferred
//	    chainring: 52
//	    cog: 11
//	    rim: 26
//	    tire: 1.5
//
// Fields left out of the file keep the values from Default.
package config

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"
)

// DefaultSource is the Source reported for configuration that was not read
// from a file.
const DefaultSource = "default"

// Config is the root of the configuration file.
type Config struct {
	Logging Logging `yaml:"logging"`
	Metrics Metrics `yaml:"metrics"`
	Gears   []Setup `yaml:"gears"`

	// Source is where the configuration was read from.
	Source string `yaml:"-"`
}

// Logging configures the application's zap logger.
type Logging struct {
	// Level is a zap level name such as "debug" or "warn".
	Level string `yaml:"level"`
	// Development switches to zap's human-friendly development encoder.
	Development bool `yaml:"development"`
}

// Metrics configures the application's tally scope.
type Metrics struct {
	Prefix string `yaml:"prefix"`
}

// Setup describes one gear to evaluate.
type Setup struct {
	Name      string   `yaml:"name"`
	Strategy  Strategy `yaml:"strategy"`
	Chainring int      `yaml:"chainring"`
	Cog       int      `yaml:"cog"`
	Rim       float64  `yaml:"rim"`
	Tire      float64  `yaml:"tire"`
}

// Default returns the configuration used when no file is given: the
// canonical 52x11 gear on a 26" rim with a 1.5" tire.
func Default() Config {
	return Config{
		Logging: Logging{Level: "info"},
		Metrics: Metrics{Prefix: "gearing"},
		Gears: []Setup{
			{
				Name:      "canonical",
				Strategy:  Deferred,
				Chainring: 52,
				Cog:       11,
				Rim:       26,
				Tire:      1.5,
			},
		},
		Source: DefaultSource,
	}
}

// Load reads a YAML configuration on top of Default and validates it.
// Unknown keys are rejected.
func Load(r io.Reader) (Config, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	cfg := Default()
	cfg.Gears = nil
	cfg.Source = ""
	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile is Load for a named file. The returned Config's Source is path.
func LoadFile(path string) (Config, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "open config %q", path)
	}

	cfg, err := Load(bytes.NewReader(b))
	if err != nil {
		return Config{}, errors.WithMessagef(err, "load config %q", path)
	}
	cfg.Source = path
	return cfg, nil
}

// Static returns a constructor for the given configuration. It should only
// be used in tests to isolate config from your environment.
func Static(cfg Config) func() (Config, error) {
	return func() (Config, error) {
		if cfg.Source == "" {
			cfg.Source = "static"
		}
		return cfg, cfg.Validate()
	}
}

// Validate reports every problem in the configuration at once.
//
// A zero cog is not a configuration error; it is reported when the gear's
// ratio is evaluated.
func (c Config) Validate() error {
	var err error
	if len(c.Gears) == 0 {
		err = multierr.Append(err, errors.New("no gears configured"))
	}

	seen := make(map[string]struct{}, len(c.Gears))
	for i, s := range c.Gears {
		if s.Name == "" {
			err = multierr.Append(err, fmt.Errorf("gear %d: name is required", i))
		} else if _, ok := seen[s.Name]; ok {
			err = multierr.Append(err, fmt.Errorf("gear %d: duplicate name %q", i, s.Name))
		}
		seen[s.Name] = struct{}{}

		if !s.Strategy.Valid() {
			err = multierr.Append(err, fmt.Errorf("gear %q: unknown strategy %q", s.Name, s.Strategy))
		}
	}
	return err
}
