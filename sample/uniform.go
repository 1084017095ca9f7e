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
	"golang.org/x/exp/rand"
)

var _ UniformSource = (*rand.Rand)(nil)

// NewPseudoUniform returns a seeded pseudo-random uniform source.
// Equal seeds give identical streams. The returned source is not safe
// for concurrent use.
func NewPseudoUniform(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
