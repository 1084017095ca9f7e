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

// Package sample implements exact rejection sampling from the
// generalized inverse Gaussian (GIG) probability distribution.
//
// Package sample provides the Sampler and UniformSource interfaces
// along with the GIG sampler, which dispatches between three rejection
// algorithms depending on the parameter regime: a piecewise-envelope
// method for small parameters, and ratio-of-uniforms methods with and
// without a mode shift.
//
// All samplers draw their randomness from an explicitly provided
// UniformSource, so reproducibility and thread safety are controlled
// entirely by the caller.
package sample
