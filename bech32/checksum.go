// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bech32

// BCH generator coefficients from BIP-0173
var generator = [5]uint32{
	0x3b6a57b2,
	0x26508e6d,
	0x1ea119fa,
	0x3d4233dd,
	0x2a1462b3,
}

// polyMod computes the 30-bit checksum residue of the given 5-bit values
func polyMod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i, g := range generator {
			if (top>>uint(i))&1 == 1 {
				chk ^= g
			}
		}
	}
	return chk
}

// hrpExpand spreads the HRP over 5-bit values: the high 3 bits of every byte,
// a zero, then the low 5 bits of every byte
func hrpExpand(hrp string) []byte {
	ret := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]>>5)
	}
	ret = append(ret, 0)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]&31)
	}
	return ret
}

func createChecksum(hrp string, words []byte) []byte {
	values := hrpExpand(hrp)
	values = append(values, words...)
	values = append(values, make([]byte, checksumLength)...)
	residue := polyMod(values) ^ 1
	ret := make([]byte, checksumLength)
	for i := range ret {
		ret[i] = byte((residue >> (5 * (5 - i))) & 31)
	}
	return ret
}

// verifyChecksum expects words to still carry the trailing checksum words
func verifyChecksum(hrp string, words []byte) bool {
	values := hrpExpand(hrp)
	values = append(values, words...)
	return polyMod(values) == 1
}
