/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGIGKernel(t *testing.T) {
	// g(1, lam, bet) = exp(-bet) independently of lam
	assert.InDelta(t, math.Exp(-0.3), gigKernel(1, 0.5, 0.3), 1e-15)
	assert.InDelta(t, math.Exp(-2), gigKernel(1, 3, 2), 1e-15)
	// g(x, 1, bet) drops the power factor
	x := 2.5
	assert.InDelta(t, math.Exp(-0.4/2*(x+1/x)), gigKernel(x, 1, 0.4), 1e-15)
	// symmetry g(x, lam, bet) = g(1/x, -lam, bet) up to the power flip
	assert.InDelta(t, gigKernel(x, 0.7, 0.4), gigKernel(1/x, -0.7, 0.4)*math.Pow(x, 2*0.7), 1e-15)
}

func TestGIGSelectRegime(t *testing.T) {
	var tests = []struct {
		name     string
		lam, bet float64
		p        float64
		want     interface{}
	}{
		{
			name: "beta above one picks mode shift",
			lam:  0.5, bet: 3, p: 0.5,
			want: &gigRatioShift{},
		},
		{
			name: "lambda above one picks mode shift",
			lam:  2, bet: 0.5, p: 2,
			want: &gigRatioShift{},
		},
		{
			name: "beta exactly one with small lambda picks plain ratio",
			lam:  0.5, bet: 1, p: 0.5,
			want: &gigRatioNoShift{},
		},
		{
			name: "moderate beta picks plain ratio",
			lam:  0.3, bet: 0.6, p: 0.3,
			want: &gigRatioNoShift{},
		},
		{
			name: "small beta picks piecewise envelope",
			lam:  0.3, bet: 0.1, p: 0.3,
			want: &gigConcave{},
		},
		{
			name: "negative p widens the piecewise region",
			lam:  0.3, bet: 0.45, p: -0.3,
			want: &gigConcave{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			regime, err := selectRegime(test.lam, test.bet, test.p)
			assert.NoError(t, err)
			assert.IsType(t, test.want, regime)
		})
	}
}

func TestGIGSelectRegimeUncovered(t *testing.T) {
	var tests = []struct {
		name     string
		lam, bet float64
		p        float64
	}{
		{name: "beta zero", lam: 0.5, bet: 0, p: 0.5},
		{name: "beta NaN", lam: 0.5, bet: math.NaN(), p: 0.5},
		{name: "lambda NaN", lam: math.NaN(), bet: math.NaN(), p: math.NaN()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := selectRegime(test.lam, test.bet, test.p)
			assert.ErrorIs(t, err, ErrNoSamplingMethod)
		})
	}
}

// The dispatch bound on beta uses p rather than |p|, so the piecewise
// region differs between p and -p at the same standardized parameters.
func TestGIGSelectRegimeSignOfP(t *testing.T) {
	pos, err := selectRegime(0.6, 0.45, 0.6)
	assert.NoError(t, err)
	assert.IsType(t, &gigRatioNoShift{}, pos)

	neg, err := selectRegime(0.6, 0.45, -0.6)
	assert.NoError(t, err)
	assert.IsType(t, &gigConcave{}, neg)
}

func TestGIGConcaveEnvelope(t *testing.T) {
	s, err := newConcave(0.3, 0.1)
	assert.NoError(t, err)
	assert.True(t, s.x0 > 0)
	assert.True(t, s.xstar >= s.x0)
	assert.True(t, s.a1 > 0 && s.a2 >= 0 && s.a3 > 0)
	assert.InDelta(t, s.area, s.a1+s.a2+s.a3, 1e-15)

	// lambda = 0 switches the middle piece to its log-piece limit
	s, err = newConcave(0, 0.1)
	assert.NoError(t, err)
	assert.True(t, s.a2 > 0)
}

func TestGIGRatioShiftEnvelope(t *testing.T) {
	s, err := newRatioShift(2, 3)
	assert.NoError(t, err)
	assert.True(t, s.m > 0)
	assert.True(t, s.uminus < 0, "left bound of the shifted region should be negative")
	assert.True(t, s.uplus > 0)
	assert.True(t, s.vplus > 0)
}
