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

import "fmt"

// ConvertBits regroups a sequence of fromBits-wide values into toBits-wide
// values, treating the input as one big-endian bit stream.
//
// With pad set, a trailing partial group is zero-filled on the right. Without
// it the input must end on a group boundary: leftover bits must be fewer than
// fromBits and all zero.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, ErrInvalidBitGroups
	}
	var acc uint32
	var bits uint8
	maxv := uint32(1)<<toBits - 1
	maxAcc := uint32(1)<<(fromBits+toBits-1) - 1
	ret := make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)
	for i, v := range data {
		if uint32(v)>>fromBits != 0 {
			return nil, fmt.Errorf(
				"%w: %d at index %d does not fit in %d bits",
				ErrInvalidValueForBitConversion,
				v,
				i,
				fromBits,
			)
		}
		acc = ((acc << fromBits) | uint32(v)) & maxAcc
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			ret = append(ret, byte((acc>>bits)&maxv))
		}
	}
	if pad {
		if bits > 0 {
			ret = append(ret, byte((acc<<(toBits-bits))&maxv))
		}
	} else if bits >= fromBits || (acc<<(toBits-bits))&maxv != 0 {
		return nil, ErrInvalidPadding
	}
	return ret, nil
}
