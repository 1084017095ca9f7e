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

package data_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fentec-project/gig/data"
	"github.com/fentec-project/gig/sample"
)

func TestVector_NewRandomVector(t *testing.T) {
	sampler, err := sample.NewGIG(1, 1, 0.5)
	assert.NoError(t, err)

	v, err := data.NewRandomVector(1000, sampler, sample.NewPseudoUniform(3))
	assert.NoError(t, err)
	assert.Equal(t, 1000, len(v))
	for _, x := range v {
		assert.True(t, x > 0, "GIG draws should be positive")
	}

	assert.NoError(t, v.CheckBound(math.Inf(1)))
}

func TestVector_Arithmetic(t *testing.T) {
	v := data.NewVector([]float64{1, 2, 3})
	w := data.NewVector([]float64{2, 0, -1})

	assert.Equal(t, data.Vector{3, 2, 2}, v.Add(w))
	assert.Equal(t, data.Vector{-1, 2, 4}, v.Sub(w))
	assert.Equal(t, data.Vector{2, 4, 6}, v.MulScalar(2))
	assert.Equal(t, data.Vector{1, 4, 9}, v.Apply(func(x float64) float64 { return x * x }))

	prod, err := v.Dot(w)
	assert.NoError(t, err)
	assert.Equal(t, -1.0, prod)

	_, err = v.Dot(data.NewVector([]float64{1}))
	assert.Error(t, err)

	cp := v.Copy()
	cp[0] = 100
	assert.Equal(t, 1.0, v[0])
}

func TestVector_Statistics(t *testing.T) {
	v := data.NewVector([]float64{1, 2, 3, 4})
	assert.InDelta(t, 2.5, v.Mean(), 1e-15)
	assert.InDelta(t, 5.0/3, v.Variance(), 1e-15)

	c := data.NewConstantVector(5, 1.5)
	assert.InDelta(t, 1.5, c.Mean(), 1e-15)
	assert.InDelta(t, 0, c.Variance(), 1e-15)
}
