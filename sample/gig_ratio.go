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

// gigRatioNoShift is the ratio-of-uniforms sampler without mode shift,
// used for moderate beta with lam <= 1. A point drawn uniformly from
// the bounding box [0, uplus) x [0, vplus) of the region
// {(u, v) : 0 < v <= sqrt(g(u/v))} is accepted when it lies inside the
// region; u/v is then a draw from the kernel g.
type gigRatioNoShift struct {
	lam, bet     float64
	uplus, vplus float64
}

// newRatioNoShift precomputes the bounding box for the standardized
// parameters lam, bet.
func newRatioNoShift(lam, bet float64) (*gigRatioNoShift, error) {
	m := bet / ((1 - lam) + math.Sqrt((1-lam)*(1-lam)+bet*bet))
	xplus := ((1 + lam) + math.Sqrt((1+lam)*(1+lam)+bet*bet)) / bet

	s := &gigRatioNoShift{
		lam:   lam,
		bet:   bet,
		uplus: xplus * math.Sqrt(gigKernel(xplus, lam, bet)),
		vplus: math.Sqrt(gigKernel(m, lam, bet)),
	}
	if !allFinite(s.uplus, s.vplus) {
		return nil, errors.Wrapf(ErrNumericalDegeneracy,
			"ratio-of-uniforms envelope: lambda = %v, beta = %v", lam, bet)
	}

	return s, nil
}

// draw runs the rejection loop of the ratio-of-uniforms sampler.
func (s *gigRatioNoShift) draw(u UniformSource) (float64, error) {
	for i := 0; i < maxTrials; i++ {
		uu := s.uplus * u.Float64()
		vv := s.vplus * u.Float64()
		x := uu / vv

		// vv = 0 makes the candidate infinite or NaN and uu = 0 makes
		// it zero; both are outside the kernel's domain and redrawn.
		if !(x > 0) || math.IsInf(x, 0) {
			continue
		}
		if vv*vv <= gigKernel(x, s.lam, s.bet) {
			return x, nil
		}
	}

	return 0, errors.Wrap(ErrRejectionLimit, "ratio-of-uniforms sampler")
}
