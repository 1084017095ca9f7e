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

import "github.com/pkg/errors"

// ErrInvalidParams signals distribution parameters outside the valid
// domain (a <= 0 or b <= 0).
var ErrInvalidParams = errors.New("distribution parameters are not of the proper form")

// ErrNoSamplingMethod signals that no rejection algorithm covers the
// standardized parameters. Reachable only for degenerate inputs, e.g.
// when beta underflows to zero or a parameter is NaN.
var ErrNoSamplingMethod = errors.New("no sampling method covers the given parameters")

// ErrNumericalDegeneracy signals that floating-point cancellation
// produced non-finite envelope constants.
var ErrNumericalDegeneracy = errors.New("envelope constants are not finite")

// ErrRejectionLimit signals that a rejection loop exceeded its trial
// limit. This does not happen for valid parameters.
var ErrRejectionLimit = errors.New("rejection sampling exceeded the trial limit")
