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

package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/gearing"
	"go.uber.org/gearing/gearfx"
	"go.uber.org/zap"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	dir, err := ioutil.TempDir("", "gearinches")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "gears.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(body), 0o644))
	return path
}

// syncBuffer is a bytes.Buffer that records whether it was synced.
type syncBuffer struct {
	bytes.Buffer

	synced bool
}

func (b *syncBuffer) Sync() error {
	b.synced = true
	return nil
}

func TestRun(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		var stdout bytes.Buffer
		var stderr syncBuffer
		require.NoError(t, run(nil, &stdout, &stderr))
		assert.Equal(t, "137.0909090909091\n", stdout.String())

		assert.Contains(t, stderr.String(), `"msg":"config loaded"`)
		assert.Contains(t, stderr.String(), `"msg":"evaluated"`)
		assert.Contains(t, stderr.String(), `"setup":"canonical"`)
		assert.True(t, stderr.synced, "logger must be synced on stop")
	})

	t.Run("EveryStrategy", func(t *testing.T) {
		path := writeConfig(t, `
logging: {level: error}
gears:
  - {name: a, strategy: ordered, chainring: 52, cog: 11, rim: 26, tire: 1.5}
  - {name: b, strategy: named, chainring: 52, cog: 11, rim: 26, tire: 1.5}
  - {name: c, strategy: deferred, chainring: 52, cog: 11, rim: 26, tire: 1.5}
  - {name: d, strategy: wrapped, chainring: 52, cog: 11, rim: 26, tire: 1.5}
`)

		var stdout, stderr bytes.Buffer
		require.NoError(t, run([]string{"-config", path}, &stdout, &stderr))
		assert.Equal(t,
			"137.0909090909091\n137.0909090909091\n137.0909090909091\n137.0909090909091\n",
			stdout.String())
	})

	t.Run("ZeroCog", func(t *testing.T) {
		path := writeConfig(t, `
logging: {level: error}
gears:
  - {name: ok, strategy: named, chainring: 52, cog: 11, rim: 26, tire: 1.5}
  - {name: broken, strategy: deferred, chainring: 52, cog: 0, rim: 26, tire: 1.5}
`)

		var stdout, stderr bytes.Buffer
		err := run([]string{"-config", path}, &stdout, &stderr)
		require.Error(t, err)
		assert.True(t, errors.Is(err, gearing.ErrDivisionByZero), "got %v", err)
		assert.Equal(t, "137.0909090909091\n", stdout.String(), "good setups are still reported")
		assert.Contains(t, stderr.String(), `"msg":"evaluation failed"`)
		assert.Contains(t, stderr.String(), `"setup":"broken"`)
	})

	t.Run("DevelopmentEvents", func(t *testing.T) {
		path := writeConfig(t, `
logging: {level: debug, development: true}
gears:
  - {name: lazy, strategy: deferred, chainring: 52, cog: 11, rim: 26, tire: 1.5}
`)

		var stdout, stderr bytes.Buffer
		require.NoError(t, run([]string{"-config", path}, &stdout, &stderr))
		assert.Equal(t, "137.0909090909091\n", stdout.String())
		assert.Contains(t, stderr.String(), "config loaded")
		assert.Contains(t, stderr.String(), "wheel built")
	})

	t.Run("DevelopmentEventsFilteredByLevel", func(t *testing.T) {
		path := writeConfig(t, `
logging: {level: error, development: true}
gears:
  - {name: lazy, strategy: deferred, chainring: 52, cog: 11, rim: 26, tire: 1.5}
`)

		var stdout, stderr bytes.Buffer
		require.NoError(t, run([]string{"-config", path}, &stdout, &stderr))
		assert.Equal(t, "137.0909090909091\n", stdout.String())
		assert.NotContains(t, stderr.String(), "config loaded")
		assert.NotContains(t, stderr.String(), "wheel built")
	})

	t.Run("MissingConfig", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := run([]string{"-config", filepath.Join(os.TempDir(), "does-not-exist.yaml")}, &stdout, &stderr)
		require.Error(t, err)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "[Gearing] ERROR")
	})

	t.Run("BadFlag", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Error(t, run([]string{"-nope"}, &stdout, &stderr))
		assert.Contains(t, stderr.String(), "-config")
	})
}

func TestReport(t *testing.T) {
	e := gearfx.NewEvaluator(gearfx.Params{Logger: zap.NewNop()})

	var buf bytes.Buffer
	require.NoError(t, report(&buf, e, nil))
	assert.Empty(t, buf.String())
}
