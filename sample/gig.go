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

// maxTrials bounds every rejection loop. The envelopes keep the
// expected number of trials per draw constant, so reaching the limit
// indicates broken arithmetic, not bad luck.
const maxTrials = 1000000

// gigKernel evaluates the unnormalized two-parameter GIG density
// kernel x^(lam-1) * exp(-(bet/2)*(x + 1/x)). Callers must guarantee
// x > 0.
func gigKernel(x, lam, bet float64) float64 {
	return math.Pow(x, lam-1) * math.Exp(-bet/2*(x+1/x))
}

// gigRegime is one of the three rejection algorithms. Envelope
// constants are computed once at construction; draw runs the loop.
type gigRegime interface {
	draw(u UniformSource) (float64, error)
}

var _ Sampler = (*GIG)(nil)

// GIG samples random values from the generalized inverse Gaussian
// distribution, whose density is proportional to
//
//	x^(p-1) * exp(-(a*x + b/x)/2)
//
// on (0, inf), with a > 0, b > 0 and any real p.
type GIG struct {
	// Distribution parameters
	a, b, p float64
	// Scaling between the standardized and the original
	// parameterization, sqrt(a/b)
	alpha float64
	// Selected rejection algorithm with precomputed envelope
	regime gigRegime
}

// NewGIG returns an instance of the GIG sampler. The standardized
// parameters and the envelope constants of the selected rejection
// algorithm are precomputed when this function is called, so that
// Sample only runs the rejection loop.
func NewGIG(a, b, p float64) (*GIG, error) {
	if !(a > 0) || !(b > 0) {
		return nil, errors.Wrapf(ErrInvalidParams, "a = %v, b = %v", a, b)
	}

	alpha := math.Sqrt(a / b)
	bet := math.Sqrt(a * b)
	lam := math.Abs(p)

	regime, err := selectRegime(lam, bet, p)
	if err != nil {
		return nil, err
	}

	return &GIG{
		a:      a,
		b:      b,
		p:      p,
		alpha:  alpha,
		regime: regime,
	}, nil
}

// selectRegime maps the standardized parameters onto one of the three
// rejection algorithms. The bound on beta for the second branch uses
// p rather than lam, so it differs between p and -p. Falling through
// the first case guarantees lam <= 1 and bet <= 1 in the later ones;
// NaN parameters fail every comparison and end up in the default case.
func selectRegime(lam, bet, p float64) (gigRegime, error) {
	switch {
	case bet > 1 || lam > 1:
		return newRatioShift(lam, bet)
	case bet >= math.Min(0.5, 2.0/3.0*math.Sqrt(1-p)):
		return newRatioNoShift(lam, bet)
	case bet > 0:
		return newConcave(lam, bet)
	default:
		return nil, errors.Wrapf(ErrNoSamplingMethod, "lambda = %v, beta = %v", lam, bet)
	}
}

// Sample draws a single value from the distribution, using uniform
// variates from u. The returned value is always finite and positive.
func (s *GIG) Sample(u UniformSource) (float64, error) {
	x, err := s.regime.draw(u)
	if err != nil {
		return 0, err
	}

	// The standardized draw is mapped back to the original
	// parameterization through the symmetry (x, p) <-> (1/x, -p).
	if s.p >= 0 {
		return x / s.alpha, nil
	}
	return 1 / (s.alpha * x), nil
}

// SampleGIG draws a single value from the GIG distribution with
// parameters a, b, p, using uniform variates from u.
func SampleGIG(a, b, p float64, u UniformSource) (float64, error) {
	s, err := NewGIG(a, b, p)
	if err != nil {
		return 0, err
	}

	return s.Sample(u)
}

// allFinite reports whether none of the values is NaN or infinite.
func allFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
