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

	"github.com/pkg/errors"
)

// gigConcave is the rejection sampler for the regime where both
// standardized parameters are small (lam <= 1 and beta below the
// dispatch bound). On a log scale the kernel is covered by three
// concave pieces: a constant over (0, x0], a power (or log) piece over
// (x0, 2/beta], and an exponential tail beyond xstar. A candidate is
// drawn from the piecewise envelope by inverting the area-preserving
// transform of the piece an area-uniform variate falls into.
type gigConcave struct {
	lam, bet float64
	// Piece boundaries
	x0, xstar float64
	// Envelope heights per piece
	k1, k2, k3 float64
	// Piece areas and their total
	a1, a2, a3, area float64
}

// newConcave precomputes the envelope constants for the piecewise
// sampler with standardized parameters lam, bet.
func newConcave(lam, bet float64) (*gigConcave, error) {
	m := bet / ((1 - lam) + math.Sqrt((1-lam)*(1-lam)+bet*bet))
	x0 := bet / (1 - lam)
	xstar := math.Max(x0, 2/bet)

	k1 := gigKernel(m, lam, bet)
	a1 := k1 * x0

	// The middle piece vanishes when the power piece's interval
	// (x0, 2/beta] is empty.
	var k2, a2 float64
	if x0 < 2/bet {
		k2 = math.Exp(-bet)
		if lam > 0 {
			a2 = k2 * (math.Pow(2/bet, lam) - math.Pow(x0, lam)) / lam
		} else {
			a2 = k2 * math.Log(2/(bet*bet))
		}
	}

	k3 := math.Pow(xstar, lam-1)
	a3 := 2 * k3 * math.Exp(-xstar*bet/2) / bet

	s := &gigConcave{
		lam:   lam,
		bet:   bet,
		x0:    x0,
		xstar: xstar,
		k1:    k1,
		k2:    k2,
		k3:    k3,
		a1:    a1,
		a2:    a2,
		a3:    a3,
		area:  a1 + a2 + a3,
	}
	if !allFinite(s.x0, s.xstar, s.k1, s.k2, s.k3, s.area) {
		return nil, errors.Wrapf(ErrNumericalDegeneracy,
			"piecewise envelope: lambda = %v, beta = %v", lam, bet)
	}

	return s, nil
}

// draw runs the rejection loop of the piecewise sampler.
func (s *gigConcave) draw(u UniformSource) (float64, error) {
	for i := 0; i < maxTrials; i++ {
		uu := u.Float64()
		vv := s.area * u.Float64()

		// Locate the piece the area-uniform variate falls into and
		// invert its transform into a candidate x with envelope
		// height h.
		var x, h float64
		switch {
		case vv < s.a1:
			x = s.x0 * vv / s.a1
			h = s.k1
		case vv < s.a1+s.a2:
			vv -= s.a1
			if s.lam > 0 {
				x = math.Pow(math.Pow(s.x0, s.lam)+vv*s.lam/s.k2, 1/s.lam)
			} else {
				x = s.bet * math.Exp(vv*math.Exp(s.bet))
			}
			h = s.k2 * math.Pow(x, s.lam-1)
		default:
			vv -= s.a1 + s.a2
			x = -2 / s.bet * math.Log(math.Exp(-s.xstar*s.bet/2)-vv*s.bet/(2*s.k3))
			h = s.k3 * math.Exp(-x*s.bet/2)
		}

		// The kernel is only defined for positive arguments; x = 0
		// can occur when the uniform source returns exactly 0.
		if !(x > 0) || math.IsInf(x, 0) {
			continue
		}
		if uu*h <= gigKernel(x, s.lam, s.bet) {
			return x, nil
		}
	}

	return 0, errors.Wrap(ErrRejectionLimit, "piecewise envelope sampler")
}
