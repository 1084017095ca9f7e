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

// Package dist provides the generalized inverse Gaussian distribution
// object: parameter storage, closed-form moments, density evaluation
// and random draws through the rejection samplers in package sample.
//
// The normalizing constant of the density involves the modified Bessel
// function of the second kind, which is taken from the ggsl special
// function library. The distribution has no closed-form cumulative
// distribution function, so none is provided.
package dist
