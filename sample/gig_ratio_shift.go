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

// gigRatioShift is the ratio-of-uniforms sampler with mode shift, used
// when beta > 1 or lam > 1. Centering the ratio region on the mode m
// keeps the acceptance rate bounded away from zero for skewed kernels.
// The u-extent of the shifted region is the interval [uminus, uplus]
// obtained from the two relevant roots of a depressed cubic.
type gigRatioShift struct {
	lam, bet             float64
	m                    float64
	uminus, uplus, vplus float64
}

// newRatioShift precomputes the mode and the bounding box for the
// standardized parameters lam, bet.
func newRatioShift(lam, bet float64) (*gigRatioShift, error) {
	m := (math.Sqrt((lam-1)*(lam-1)+bet*bet) + (lam - 1)) / bet

	// Trigonometric solution of the depressed cubic whose outer roots
	// bound the shifted ratio region. Cancellation here can produce
	// arguments outside the domains of Sqrt and Acos; the resulting
	// NaN is caught below rather than fed into the rejection loop,
	// where it would defeat the accept test forever.
	ca := -(2*(lam+1)/bet + m)
	cb := 2*(lam-1)*m/bet - 1
	p2 := cb - ca*ca/3
	q := 2*ca*ca*ca/27 - ca*cb/3 + m
	phi := math.Acos(-(q / 2) * math.Sqrt(-27/(p2*p2*p2)))
	fak := math.Sqrt(-4 * p2 / 3)

	xminus := fak*math.Cos(phi/3+4*math.Pi/3) - ca/3
	xplus := fak*math.Cos(phi/3) - ca/3

	s := &gigRatioShift{
		lam:    lam,
		bet:    bet,
		m:      m,
		uminus: (xminus - m) * math.Sqrt(gigKernel(xminus, lam, bet)),
		uplus:  (xplus - m) * math.Sqrt(gigKernel(xplus, lam, bet)),
		vplus:  math.Sqrt(gigKernel(m, lam, bet)),
	}
	if !allFinite(s.m, s.uminus, s.uplus, s.vplus) {
		return nil, errors.Wrapf(ErrNumericalDegeneracy,
			"mode-shift envelope: lambda = %v, beta = %v", lam, bet)
	}

	return s, nil
}

// draw runs the rejection loop of the mode-shifted sampler.
func (s *gigRatioShift) draw(u UniformSource) (float64, error) {
	for i := 0; i < maxTrials; i++ {
		uu := s.uminus + u.Float64()*(s.uplus-s.uminus)
		vv := s.vplus * u.Float64()
		x := uu/vv + s.m

		// Unlike the non-shifted region, the shifted one can produce
		// non-positive candidates; those are rejected before the
		// kernel is evaluated.
		if !(x > 0) || math.IsInf(x, 0) {
			continue
		}
		if vv*vv <= gigKernel(x, s.lam, s.bet) {
			return x, nil
		}
	}

	return 0, errors.Wrap(ErrRejectionLimit, "mode-shift ratio-of-uniforms sampler")
}
