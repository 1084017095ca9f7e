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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

var floatBits uint = 53

// UniformDet is a deterministic source of uniform [0, 1) variates
// built on the salsa20 stream cipher. The key fully determines the
// stream: two sources with the same key produce identical sequences.
type UniformDet struct {
	key *[32]byte
	ctr uint64
}

// NewUniformDet returns an instance of the UniformDet source with the
// given key.
func NewUniformDet(key *[32]byte) *UniformDet {
	return &UniformDet{
		key: key,
	}
}

// Float64 returns the next variate of the stream. The draw counter is
// used as the cipher nonce, so consecutive draws are independent
// keystream blocks.
func (u *UniformDet) Float64() float64 {
	in := make([]byte, 8)
	out := make([]byte, 8)
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, u.ctr)
	u.ctr++

	salsa20.XORKeyStream(out, in, nonce, u.key)

	r := binary.LittleEndian.Uint64(out) >> (64 - floatBits)
	return float64(r) / float64(uint64(1)<<floatBits)
}
