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

// UniformSource is a stream of independent random values distributed
// uniformly on the half-open interval [0, 1). A draw of exactly 0 may
// occur; a draw of exactly 1 must not.
//
// *rand.Rand from golang.org/x/exp/rand satisfies the interface. The
// samplers in this package make no guarantee about concurrent use of a
// source; a caller sampling from multiple goroutines must provide a
// source per goroutine or synchronize access externally.
type UniformSource interface {
	Float64() float64
}

// Sampler is implemented by types that draw a single random value
// using uniform variates from u.
type Sampler interface {
	Sample(u UniformSource) (float64, error)
}
