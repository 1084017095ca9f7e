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

package dist

import (
	"math"

	sf "github.com/jtejido/ggsl/specfunc"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/fentec-project/gig/sample"
)

// GIG represents the generalized inverse Gaussian distribution with
// density
//
//	f(x) = (A/B)^(P/2) / (2*K_P(sqrt(A*B))) * x^(P-1) * exp(-(A*x + B/x)/2)
//
// on (0, inf), where K_P is the modified Bessel function of the second
// kind. A and B must be positive; P may be any real number.
type GIG struct {
	A float64
	B float64
	P float64
	// Src is the source of uniform variates used by Rand and RandN.
	// If Src is nil the shared, globally seeded source of the rand
	// package is used.
	Src rand.Source
}

// NewGIG returns an instance of the GIG distribution. It returns an
// error if a or b is outside the valid domain.
func NewGIG(a, b, p float64) (*GIG, error) {
	if !(a > 0) || !(b > 0) {
		return nil, errors.Wrapf(sample.ErrInvalidParams, "a = %v, b = %v", a, b)
	}

	return &GIG{
		A: a,
		B: b,
		P: p,
	}, nil
}

// Mean returns the expected value sqrt(B/A) * K_{P+1}(eta) / K_P(eta)
// with eta = sqrt(A*B).
func (g *GIG) Mean() float64 {
	eta := math.Sqrt(g.A * g.B)
	return math.Sqrt(g.B/g.A) * besselKRatio(g.P+1, g.P, eta)
}

// Variance returns the second central moment
// (B/A) * (K_{P+2}(eta)/K_P(eta) - (K_{P+1}(eta)/K_P(eta))^2).
func (g *GIG) Variance() float64 {
	eta := math.Sqrt(g.A * g.B)
	r1 := besselKRatio(g.P+1, g.P, eta)
	r2 := besselKRatio(g.P+2, g.P, eta)
	return g.B / g.A * (r2 - r1*r1)
}

// StdDev returns the standard deviation.
func (g *GIG) StdDev() float64 {
	return math.Sqrt(g.Variance())
}

// Mode returns the unique maximizer of the density,
// ((P-1) + sqrt((P-1)^2 + A*B)) / A.
func (g *GIG) Mode() float64 {
	return ((g.P - 1) + math.Sqrt((g.P-1)*(g.P-1)+g.A*g.B)) / g.A
}

// LogProb returns the natural logarithm of the density at x.
// For x <= 0 it returns -Inf.
func (g *GIG) LogProb(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}

	eta := math.Sqrt(g.A * g.B)
	logNorm := g.P/2*math.Log(g.A/g.B) - math.Ln2 - sf.Bessel_lnKnu(math.Abs(g.P), eta)
	return logNorm + (g.P-1)*math.Log(x) - (g.A*x+g.B/x)/2
}

// Prob returns the density at x. For x <= 0 it returns 0.
func (g *GIG) Prob(x float64) float64 {
	return math.Exp(g.LogProb(x))
}

// Rand draws a single value from the distribution.
func (g *GIG) Rand() (float64, error) {
	return sample.SampleGIG(g.A, g.B, g.P, g.uniform())
}

// RandN draws n independent values from the distribution.
func (g *GIG) RandN(n int) ([]float64, error) {
	s, err := sample.NewGIG(g.A, g.B, g.P)
	if err != nil {
		return nil, err
	}

	u := g.uniform()
	vec := make([]float64, n)
	for i := 0; i < n; i++ {
		vec[i], err = s.Sample(u)
		if err != nil {
			return nil, errors.Wrap(err, "error while sampling")
		}
	}

	return vec, nil
}

func (g *GIG) uniform() sample.UniformSource {
	if g.Src != nil {
		return rand.New(g.Src)
	}
	return globalUniform{}
}

// globalUniform draws from the shared source of the rand package.
type globalUniform struct{}

func (globalUniform) Float64() float64 {
	return rand.Float64()
}

// besselKRatio returns K_nu1(x) / K_nu2(x), computed on the log scale
// so the ratio survives arguments where K itself under- or overflows.
// K is symmetric in the sign of its order.
func besselKRatio(nu1, nu2, x float64) float64 {
	return math.Exp(sf.Bessel_lnKnu(math.Abs(nu1), x) - sf.Bessel_lnKnu(math.Abs(nu2), x))
}
