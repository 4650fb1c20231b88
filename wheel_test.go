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

package gearing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/gearing"
)

func TestWheel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		rim, tire         float64
		wantDiameter      float64
		wantCircumference float64
	}{
		{
			name:              "Canonical",
			rim:               26,
			tire:              1.5,
			wantDiameter:      29,
			wantCircumference: 29 * math.Pi,
		},
		{
			name:              "NoTire",
			rim:               24,
			wantDiameter:      24,
			wantCircumference: 24 * math.Pi,
		},
		{
			name:         "Zero",
			wantDiameter: 0,
		},
		{
			name:              "NegativeIsAccepted",
			rim:               -2,
			tire:              0.5,
			wantDiameter:      -1,
			wantCircumference: -math.Pi,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := gearing.NewWheel(tt.rim, tt.tire)
			assert.Equal(t, tt.rim, w.Rim())
			assert.Equal(t, tt.tire, w.Tire())
			assert.Equal(t, tt.wantDiameter, w.Diameter())
			assert.InDelta(t, tt.wantCircumference, w.Circumference(), 1e-9)
		})
	}
}
